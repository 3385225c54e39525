package internal

import "github.com/go-playground/validator/v10"

type SessionInput struct {
	Key string `json:"key" validate:"required"`
}

type ExportInput struct {
	IDs     []string `json:"ids" validate:"required,min=1,dive,required"`
	Profile string   `json:"profile" validate:"omitempty,oneof=default customer"`
	First   int      `json:"first" validate:"omitempty,min=1,max=250"`
	After   string   `json:"after"`
}

func NewValidator() *validator.Validate {
	return validator.New()
}
