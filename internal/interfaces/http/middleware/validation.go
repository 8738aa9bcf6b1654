package middleware

import (
	"net/http"
	"reflect"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"github.com/landryjoias/crm/internal/domain/identity"
	"github.com/landryjoias/crm/internal/domain/sales"
	"github.com/landryjoias/crm/internal/interfaces/http/dto"
)

// SetupValidator configures the validator with the custom tags the API
// uses for domain enumerations
func SetupValidator() {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return
	}

	// Use JSON tag names for field names in errors
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		if name == "" {
			name = strings.SplitN(fld.Tag.Get("form"), ",", 2)[0]
		}
		return name
	})

	_ = v.RegisterValidation("accesslevel", func(fl validator.FieldLevel) bool {
		return identity.AccessLevel(fl.Field().String()).Valid()
	})
	_ = v.RegisterValidation("orderstatus", func(fl validator.FieldLevel) bool {
		return sales.OrderStatus(fl.Field().String()).Valid()
	})
	_ = v.RegisterValidation("funnelstage", func(fl validator.FieldLevel) bool {
		return sales.FunnelStage(fl.Field().String()).Valid()
	})
}

// HandleValidationError returns a 400 with the first human-readable
// validation failure
func HandleValidationError(c *gin.Context, err error) {
	message := "Request validation failed"
	if validationErrors, ok := err.(validator.ValidationErrors); ok && len(validationErrors) > 0 {
		e := validationErrors[0]
		message = e.Field() + ": " + validationMessage(e)
	}
	c.JSON(http.StatusBadRequest, dto.NewErrorResponse(dto.ErrCodeValidation, message))
}

// validationMessage returns a human-readable validation message
func validationMessage(e validator.FieldError) string {
	switch e.Tag() {
	case "required":
		return "This field is required"
	case "email":
		return "Invalid email format"
	case "min":
		if e.Type().Kind() == reflect.String {
			return "Must be at least " + e.Param() + " characters"
		}
		return "Must be at least " + e.Param()
	case "max":
		if e.Type().Kind() == reflect.String {
			return "Must be at most " + e.Param() + " characters"
		}
		return "Must be at most " + e.Param()
	case "len":
		return "Must be exactly " + e.Param() + " characters"
	case "uuid":
		return "Invalid UUID format"
	case "oneof":
		return "Must be one of: " + e.Param()
	case "accesslevel":
		return "Unknown access level"
	case "orderstatus":
		return "Unknown order status"
	case "funnelstage":
		return "Unknown funnel stage"
	default:
		return "Invalid value"
	}
}
