package utils

import (
	"reflect"
	"regexp"
	"strings"
	"time"

	"spectrum-sense-service/internal/pkg/constvars"

	"github.com/go-playground/validator/v10"
)

var (
	validate *validator.Validate

	regexContainAtLeastOneSpecialChar = regexp.MustCompile(`[!@#~$%^&*()+|_.,<>?/\\-]`)
	regexContainAtLeastOneUppercase   = regexp.MustCompile(`[A-Z]`)
)

func init() {
	validate = validator.New()
	validate.RegisterTagNameFunc(jsonFieldName)
	validate.RegisterValidation("password", validatePassword)
	validate.RegisterValidation("not_future", validateNotFutureDate)
}

func ValidateStruct(s interface{}) error {
	return validate.Struct(s)
}

func jsonFieldName(field reflect.StructField) string {
	name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
	if name == "-" || name == "" {
		return field.Name
	}
	return name
}

func validatePassword(fl validator.FieldLevel) bool {
	password := fl.Field().String()
	hasMinLen := len(password) >= 8
	hasSpecialChar := regexContainAtLeastOneSpecialChar.MatchString(password)
	hasUppercase := regexContainAtLeastOneUppercase.MatchString(password)
	return hasMinLen && hasSpecialChar && hasUppercase
}

// validateNotFutureDate accepts YYYY-MM-DD dates up to today. Malformed dates
// are left to the datetime tag.
func validateNotFutureDate(fl validator.FieldLevel) bool {
	date, err := time.ParseInLocation(constvars.DateLayoutISO, fl.Field().String(), time.Local)
	if err != nil {
		return true
	}
	return !date.After(time.Now())
}
