package validator

import (
	"strings"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// validateObjectID validates that a string is a 24 character hex ObjectID
func validateObjectID(fl validator.FieldLevel) bool {
	return primitive.IsValidObjectID(fl.Field().String())
}

// validateSortOrder accepts an empty value or ASC/DESC in any case
func validateSortOrder(fl validator.FieldLevel) bool {
	v := fl.Field().String()
	return v == "" || strings.EqualFold(v, "ASC") || strings.EqualFold(v, "DESC")
}

// Register adds the custom validators to v.
func Register(v *validator.Validate) {
	_ = v.RegisterValidation("objectid", validateObjectID)
	_ = v.RegisterValidation("sortorder", validateSortOrder)
}

// RegisterCustomValidators registers all custom validators with gin's validator
func RegisterCustomValidators() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		Register(v)
	}
}
