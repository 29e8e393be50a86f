package request

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/teatime-labs/moodgate/pkg/domain/emotion"
	"github.com/teatime-labs/moodgate/pkg/domain/post"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	_ = v.RegisterValidation("emotion", func(fl validator.FieldLevel) bool {
		_, ok := emotion.Parse(fl.Field().String())
		return ok
	})
	_ = v.RegisterValidation("category", func(fl validator.FieldLevel) bool {
		_, ok := post.ParseCategory(fl.Field().String())
		return ok
	})
	return v
}

// validateStruct turns the first validation failure into a readable error.
func validateStruct(req interface{}) error {
	err := validate.Struct(req)
	if err == nil {
		return nil
	}
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) || len(fieldErrs) == 0 {
		return err
	}
	fe := fieldErrs[0]
	switch fe.Tag() {
	case "required":
		return fmt.Errorf("%s is required", fe.Field())
	case "max":
		return fmt.Errorf("%s must be at most %s characters", fe.Field(), fe.Param())
	case "emotion":
		return fmt.Errorf("%s must be one of %s", fe.Field(), strings.Join(emotion.Names(), ", "))
	case "category":
		return fmt.Errorf("invalid %s %q", fe.Field(), fe.Value())
	default:
		return fmt.Errorf("invalid %s", fe.Field())
	}
}
