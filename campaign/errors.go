package campaign

import "errors"

var (
	ErrNotFound        = errors.New("campaign not found")
	ErrNotActive       = errors.New("campaign is not active")
	ErrNotCreator      = errors.New("wallet is not the campaign creator")
	ErrExpired         = errors.New("campaign deadline has passed")
	ErrFullyFunded     = errors.New("campaign goal already reached")
	ErrWithdrawLocked  = errors.New("withdrawal requires the goal to be reached or the deadline to have passed")
	ErrInvalidAmount   = errors.New("amount must be positive")
	ErrInvalidDuration = errors.New("duration must be positive")
	ErrInvalidAddress  = errors.New("invalid wallet address")
	ErrMissingField    = errors.New("required field is empty")
	ErrTransferFailed  = errors.New("side-channel transfer failed")
)
