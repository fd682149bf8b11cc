package domain

import (
	"errors"
	"fmt"
	"math"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

type CreateEateryInput struct {
	Name    string `json:"name" validate:"required,max=256"`
	Address string `json:"address" validate:"max=256"`
	Contact string `json:"contact" validate:"max=20"`
}

type UpdateEateryInput struct {
	Name    string `json:"name" validate:"required,max=256"`
	Address string `json:"address" validate:"max=256"`
	Contact string `json:"contact" validate:"max=20"`
}

type FlagInput struct {
	Reason string `json:"why_flag" validate:"required"`
}

// MaxRatingMagnitude is the bound the rating tag below enforces. It keeps
// rating*count far inside float64 range.
const MaxRatingMagnitude = 1e6

type CreateReviewInput struct {
	ReviewText string   `json:"review_text" validate:"required"`
	Rating     *float64 `json:"rating" validate:"required,finite,min=-1000000,max=1000000"`
}

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
	if err := v.RegisterValidation("finite", isFinite); err != nil {
		panic(fmt.Sprintf("register finite validator: %v", err))
	}
	return v
}

func isFinite(fl validator.FieldLevel) bool {
	f := fl.Field()
	switch f.Kind() {
	case reflect.Float32, reflect.Float64:
		x := f.Float()
		return !math.IsNaN(x) && !math.IsInf(x, 0)
	}
	return false
}

// Validate checks in against its struct tags and reports failures as
// ErrInvalidArgument.
func Validate(in any) error {
	err := validate.Struct(in)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return fmt.Errorf("%w: %v", ErrInvalidArgument, err)
	}
	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		msgs = append(msgs, describe(fe))
	}
	return fmt.Errorf("%w: %s", ErrInvalidArgument, strings.Join(msgs, "; "))
}

func describe(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return fe.Field() + " is required"
	case "max":
		if fe.Kind() == reflect.String {
			return fmt.Sprintf("%s must be at most %s characters", fe.Field(), fe.Param())
		}
		return fmt.Sprintf("%s must be at most %s", fe.Field(), fe.Param())
	case "min":
		return fmt.Sprintf("%s must be at least %s", fe.Field(), fe.Param())
	case "finite":
		return fe.Field() + " must be a finite number"
	}
	return fmt.Sprintf("%s failed %s", fe.Field(), fe.Tag())
}

// Normalize trims the descriptive fields and fills in Unknown for an empty
// address or contact.
func (in *CreateEateryInput) Normalize() {
	in.Name, in.Address, in.Contact = normalizeDescriptive(in.Name, in.Address, in.Contact)
}

func (in *UpdateEateryInput) Normalize() {
	in.Name, in.Address, in.Contact = normalizeDescriptive(in.Name, in.Address, in.Contact)
}

func normalizeDescriptive(name, address, contact string) (string, string, string) {
	name = strings.TrimSpace(name)
	address = strings.TrimSpace(address)
	contact = strings.TrimSpace(contact)
	if address == "" {
		address = Unknown
	}
	if contact == "" {
		contact = Unknown
	}
	return name, address, contact
}

func (in *FlagInput) Normalize() {
	in.Reason = strings.TrimSpace(in.Reason)
}

func (in *CreateReviewInput) Normalize() {
	in.ReviewText = strings.TrimSpace(in.ReviewText)
}
