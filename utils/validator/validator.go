package validatorx

import (
	"fmt"
	"reflect"
	"regexp"
	"strings"
	"sync"

	gpvalidator "github.com/go-playground/validator/v10"
)

var (
	v   *gpvalidator.Validate
	mut sync.Mutex
)

// priceRegexp accepts a two-decimal price with up to seven integer digits
// and no leading zero on multi-digit integer parts. The literal value
// "0.00" is rejected separately below; any other "0.xy" still passes
// through the zero branch, e.g. "0.01". That asymmetry is kept on purpose
// to match the documented price format.
var priceRegexp = regexp.MustCompile(`^(([1-9][0-9]{0,6})|0)\.[0-9]{2}$`)

// Init initializes the validator singleton (idempotent)
func Init() {
	mut.Lock()
	defer mut.Unlock()
	if v != nil {
		return
	}
	v = gpvalidator.New()

	// report json field names in violation messages
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	_ = v.RegisterValidation("price", func(fl gpvalidator.FieldLevel) bool {
		value := fl.Field().String()
		if value == "0.00" {
			return false
		}
		return priceRegexp.MatchString(value)
	})
}

// ValidateStruct validates a struct using go-playground/validator
func ValidateStruct(s interface{}) error {
	if v == nil {
		Init()
	}
	return v.Struct(s)
}

// Violations translates a validation error into one human-readable
// message per violated constraint.
func Violations(err error) []string {
	verrs, ok := err.(gpvalidator.ValidationErrors)
	if !ok {
		return []string{"invalid request body"}
	}

	messages := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		messages = append(messages, messageFor(fe))
	}
	return messages
}

func messageFor(fe gpvalidator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("The %s field is required.", fe.Field())
	case "email":
		return fmt.Sprintf("The %s must be a valid email address.", fe.Field())
	case "numeric":
		return fmt.Sprintf("The %s must be a number.", fe.Field())
	case "gt":
		return fmt.Sprintf("The %s must be a positive number.", fe.Field())
	case "min":
		return fmt.Sprintf("The %s must be at least %s characters.", fe.Field(), fe.Param())
	case "price":
		return fmt.Sprintf("The %s format is invalid. "+
			"1- The price must have two decimal places. "+
			"2- The price value must not be zero such as (0 , 00.00 , 0.00). "+
			"3- The price should not be more than 7 digits without the 2 places. "+
			"4- If the price value has two digits or more it cannot start with 0 such as (01.00 , 0100.50 , 029.99).", fe.Field())
	default:
		return fmt.Sprintf("The %s field is invalid.", fe.Field())
	}
}
