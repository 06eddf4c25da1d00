package utils

import (
	"log"

	"fundrr-backend/chain"

	"github.com/go-playground/validator/v10"
)

var (
	validate *validator.Validate
)

func init() {
	validate = validator.New()
	if err := validate.RegisterValidation("sol-address", ValidateSolAddress); err != nil {
		log.Fatal(err)
	}
}

func ValidateSolAddress(fl validator.FieldLevel) bool {
	return chain.ValidAddress(fl.Field().String())
}
