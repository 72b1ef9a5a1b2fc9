package validatorx

import (
	"reflect"
	"strings"
	"sync"

	gpvalidator "github.com/go-playground/validator/v10"
)

var (
	v   *gpvalidator.Validate
	mut sync.Mutex
)

// Init initializes the validator singleton (idempotent)
func Init() {
	mut.Lock()
	defer mut.Unlock()
	if v != nil {
		return
	}
	v = gpvalidator.New()
	// report json field names instead of Go field names
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
}

// ValidateStruct validates a struct using go-playground/validator
func ValidateStruct(s interface{}) error {
	if v == nil {
		Init()
	}
	return v.Struct(s)
}

// ValidateVar validates a single value against a tag, e.g. "url"
func ValidateVar(field interface{}, tag string) error {
	if v == nil {
		Init()
	}
	return v.Var(field, tag)
}

// FieldErrors splits validation failures into fields failing "required"
// and fields failing any other rule.
func FieldErrors(err error) (missing, invalid []string) {
	verrs, ok := err.(gpvalidator.ValidationErrors)
	if !ok {
		return nil, nil
	}
	for _, fe := range verrs {
		if fe.Tag() == "required" {
			missing = append(missing, fe.Field())
			continue
		}
		invalid = append(invalid, fe.Field())
	}
	return missing, invalid
}
