package api

import (
	"errors" // Error construction
	"regexp" // Regular expressions
	"sync"   // One-time registration

	"github.com/gin-gonic/gin/binding"       // Gin's request binding
	"github.com/go-playground/validator/v10" // Struct validation behind gin binding
)

var (
	landlinePattern = regexp.MustCompile(`^0[0-9]{7,10}$`)   // Fits homeNumber/workNumber (11)
	mobilePattern   = regexp.MustCompile(`^\+?[0-9]{8,13}$`) // Fits mobileNumber (14)

	registerOnce sync.Once
	registerErr  error
)

// RegisterValidators adds the phone number rules to gin's validator. An
// empty value passes both rules; required_without_all enforces presence.
func RegisterValidators() error {
	registerOnce.Do(func() {
		v, ok := binding.Validator.Engine().(*validator.Validate)
		if !ok {
			registerErr = errors.New("gin binding engine is not validator/v10")
			return
		}
		if err := v.RegisterValidation("landline", matchOrEmpty(landlinePattern)); err != nil {
			registerErr = err
			return
		}
		registerErr = v.RegisterValidation("mobile", matchOrEmpty(mobilePattern))
	})
	return registerErr
}

func matchOrEmpty(re *regexp.Regexp) validator.Func {
	return func(fl validator.FieldLevel) bool {
		s := fl.Field().String()
		return s == "" || re.MatchString(s)
	}
}
