package validation

import (
	"fmt"
	"reflect"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

var validate = validator.New()

func init() {
	// Report field names as their json tags so error messages match the wire.
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return fld.Name
		}
		return name
	})
}

// Struct validates a request body and converts the first failure into a 400.
func Struct(s interface{}) error {
	err := validate.Struct(s)
	if err == nil {
		return nil
	}
	if verrs, ok := err.(validator.ValidationErrors); ok && len(verrs) > 0 {
		f := verrs[0]
		if f.Tag() == "required" {
			return fiber.NewError(fiber.StatusBadRequest, fmt.Sprintf("%s is required", f.Field()))
		}
		return fiber.NewError(fiber.StatusBadRequest, fmt.Sprintf("%s is invalid", f.Field()))
	}
	return fiber.NewError(fiber.StatusBadRequest, "Invalid request")
}

var timeLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	"2006-01-02 15:04:05",
}

// ParseTime accepts the timestamp formats clients are known to send.
func ParseTime(field, value string) (time.Time, error) {
	for _, layout := range timeLayouts {
		if t, err := time.ParseInLocation(layout, value, time.Local); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fiber.NewError(fiber.StatusBadRequest, fmt.Sprintf("%s is invalid", field))
}
