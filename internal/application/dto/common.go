package dto

import "github.com/go-playground/validator/v10"

// ErrorResponse cuerpo de error HTTP.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

var validate = validator.New()

// Validate aplica las reglas declaradas en los tags `validate` del DTO.
func Validate(s any) error {
	return validate.Struct(s)
}
