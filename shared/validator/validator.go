package validator

import (
	"encoding/json"
	"fmt"
	"io"
	"slices"
	"venuequote/shared/failure"

	val "github.com/go-playground/validator/v10"
)

var validate *val.Validate

// dayTokens is the ordered week used for day selection. Selection order in
// a request is whatever the client sent; this set only gates membership.
var dayTokens = []string{"Mon", "Tue", "Wed", "Thu", "Fri", "Sat", "Sun"}

func registerDayTokenValidation(field val.FieldLevel) bool {
	day, ok := field.Field().Interface().(string)
	if !ok {
		return false
	}

	return slices.Contains(dayTokens, day)
}

func registerClockHourValidation(field val.FieldLevel) bool {
	hour := field.Field().Float()

	return hour >= 0 && hour < 24
}

func init() {
	validate = val.New(val.WithRequiredStructEnabled())

	err := validate.RegisterValidation("daytoken", registerDayTokenValidation)
	if err != nil {
		panic(err)
	}

	err = validate.RegisterValidation("clockhour", registerClockHourValidation)
	if err != nil {
		panic(err)
	}
}

// Validate reads from the given io.Reader into the given struct, and then performs validation
// on the struct using the validator package. If the struct is invalid according to the
// validation rules, an error is returned. Otherwise, nil is returned.
// https://github.com/go-playground/validator
func Validate[T any](r io.Reader, data *T) error {
	decoder := json.NewDecoder(r)
	err := decoder.Decode(data)

	if err != nil {
		return failure.BadRequest(fmt.Errorf("failed to decode request body: %w", err)) //nolint:wrapcheck
	}

	return ValidateStruct(data)
}

func ValidateStruct[T any](data *T) error {
	err := validate.Struct(data)

	if err != nil {
		msg := message(err)

		return failure.BadRequestFromString(msg) //nolint:wrapcheck
	}

	return nil
}

func ValidateVar(field any, tag string) error {
	err := validate.Var(field, tag)

	if err != nil {
		msg := message(err)

		return failure.BadRequestFromString(msg) //nolint:wrapcheck
	}

	return nil
}
