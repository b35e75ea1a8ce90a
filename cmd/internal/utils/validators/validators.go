package validators

import (
	"time"

	"github.com/go-playground/validator/v10"
)

// DateYMD accepts calendar dates in YYYY-MM-DD form, the format appointment
// dates are stored in.
func DateYMD(fl validator.FieldLevel) bool {
	_, err := time.Parse("2006-01-02", fl.Field().String())
	return err == nil
}
