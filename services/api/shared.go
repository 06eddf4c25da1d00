package api

type ApiResStatusEnum string

const (
	ApiResStatusOk               ApiResStatusEnum = "OK"
	ApiResStatusRequestBodyError ApiResStatusEnum = "REQUEST_BODY_ERROR"
	ApiResStatusInvalidRequest   ApiResStatusEnum = "INVALID_REQUEST"
	ApiResStatusNotFound         ApiResStatusEnum = "NOT_FOUND"
	ApiResStatusForbidden        ApiResStatusEnum = "FORBIDDEN"
	ApiResStatusTransferError    ApiResStatusEnum = "TRANSFER_ERROR"
	ApiResStatusError            ApiResStatusEnum = "ERROR"
)

// Envelope of all API responses. Callers branch on the status tag for
// expected failure modes instead of HTTP status codes.
type ApiResponseWrapper[T any] struct {
	Status       ApiResStatusEnum `json:"status"`
	ErrorMessage string           `json:"errorMessage,omitempty"`
	ErrorDetails string           `json:"errorDetails,omitempty"`
	Data         T                `json:"data"`
}
