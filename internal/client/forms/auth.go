package forms

import (
	"errors"
	"strings"
	"unicode"

	"github.com/dmitrijs2005/rentpred/internal/client/models"
	validation "github.com/go-ozzo/ozzo-validation"
	"github.com/go-ozzo/ozzo-validation/is"
	"github.com/nyaruka/phonenumbers"
)

const (
	MinPasswordLength = 8
	MaxNameLength     = 100

	// DefaultRegion is used to parse mobile numbers typed without a country code.
	DefaultRegion = "IN"
)

var (
	errWeakPassword  = errors.New("must contain an uppercase letter, a lowercase letter and a digit")
	errPasswordMatch = errors.New("passwords do not match")
	errPhoneInvalid  = errors.New("must be a valid phone number")
)

type Login struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (f Login) Validate() error {
	f.Email = strings.TrimSpace(f.Email)
	return wrap(validation.ValidateStruct(&f,
		validation.Field(&f.Email, validation.Required, is.Email),
		validation.Field(&f.Password, validation.Required),
	))
}

// Request validates the form and returns the login payload with the email
// trimmed. The password is sent as typed.
func (f Login) Request() (models.LoginRequest, error) {
	if err := f.Validate(); err != nil {
		return models.LoginRequest{}, err
	}
	return models.LoginRequest{Email: strings.TrimSpace(f.Email), Password: f.Password}, nil
}

type Signup struct {
	Email           string `json:"email"`
	Password        string `json:"password"`
	ConfirmPassword string `json:"confirm_password"`
	Name            string `json:"name"`
	Mobile          string `json:"mobile"`
}

func (f Signup) Validate() error {
	f.Email = strings.TrimSpace(f.Email)
	f.Name = strings.TrimSpace(f.Name)
	f.Mobile = strings.TrimSpace(f.Mobile)

	return wrap(validation.ValidateStruct(&f,
		validation.Field(&f.Email, validation.Required, is.Email),
		validation.Field(&f.Password,
			validation.Required,
			validation.RuneLength(MinPasswordLength, 0),
			validation.By(passwordStrength),
		),
		validation.Field(&f.ConfirmPassword,
			validation.Required,
			validation.By(equals(f.Password)),
		),
		validation.Field(&f.Name, validation.RuneLength(0, MaxNameLength)),
		validation.Field(&f.Mobile, validation.By(phoneNumber)),
	))
}

// Request validates the form and returns the signup payload with the email
// trimmed and the mobile number in E.164.
func (f Signup) Request() (models.SignupRequest, error) {
	if err := f.Validate(); err != nil {
		return models.SignupRequest{}, err
	}

	req := models.SignupRequest{
		Email:    strings.TrimSpace(f.Email),
		Password: f.Password,
		Name:     strings.TrimSpace(f.Name),
	}
	if m := strings.TrimSpace(f.Mobile); m != "" {
		e164, err := NormalizeMobile(m)
		if err != nil {
			return models.SignupRequest{}, &ValidationError{Fields: validation.Errors{"mobile": err}}
		}
		req.Mobile = e164
	}
	return req, nil
}

// Profile holds the locally editable account fields.
type Profile struct {
	Name   string `json:"name"`
	Mobile string `json:"mobile"`
}

func (f Profile) Validate() error {
	f.Name = strings.TrimSpace(f.Name)
	f.Mobile = strings.TrimSpace(f.Mobile)
	return wrap(validation.ValidateStruct(&f,
		validation.Field(&f.Name, validation.RuneLength(0, MaxNameLength)),
		validation.Field(&f.Mobile, validation.By(phoneNumber)),
	))
}

// Normalized validates the form and returns the trimmed name and the
// mobile number in E.164 (empty when none was given).
func (f Profile) Normalized() (name, mobile string, err error) {
	if err := f.Validate(); err != nil {
		return "", "", err
	}
	if m := strings.TrimSpace(f.Mobile); m != "" {
		if mobile, err = NormalizeMobile(m); err != nil {
			return "", "", &ValidationError{Fields: validation.Errors{"mobile": err}}
		}
	}
	return strings.TrimSpace(f.Name), mobile, nil
}

// ForgotPassword only collects an address; there is no reset endpoint yet.
type ForgotPassword struct {
	Email string `json:"email"`
}

func (f ForgotPassword) Validate() error {
	f.Email = strings.TrimSpace(f.Email)
	return wrap(validation.ValidateStruct(&f,
		validation.Field(&f.Email, validation.Required, is.Email),
	))
}

// NormalizeMobile parses s (national numbers default to DefaultRegion) and
// formats it as E.164.
func NormalizeMobile(s string) (string, error) {
	num, err := phonenumbers.Parse(s, DefaultRegion)
	if err != nil || !phonenumbers.IsValidNumber(num) {
		return "", errPhoneInvalid
	}
	return phonenumbers.Format(num, phonenumbers.E164), nil
}

func passwordStrength(value interface{}) error {
	s, _ := value.(string)
	if s == "" {
		return nil
	}

	var upper, lower, digit bool
	for _, r := range s {
		switch {
		case unicode.IsUpper(r):
			upper = true
		case unicode.IsLower(r):
			lower = true
		case unicode.IsDigit(r):
			digit = true
		}
	}
	if !upper || !lower || !digit {
		return errWeakPassword
	}
	return nil
}

func equals(want string) validation.RuleFunc {
	return func(value interface{}) error {
		s, _ := value.(string)
		if s != want {
			return errPasswordMatch
		}
		return nil
	}
}

func phoneNumber(value interface{}) error {
	s, _ := value.(string)
	if s == "" {
		return nil
	}
	_, err := NormalizeMobile(s)
	return err
}
