package config

import (
	"errors"
	"fmt"
	"os"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
)

// Env holds the secrets read from the environment (or a .env file)
type Env struct {
	UserID         string `env:"USER_ID" validate:"required"`
	Password       string `env:"PASSWORD_INPUT" validate:"required"`
	EmailAddress   string `env:"EMAIL_ADDRESS" validate:"required,email"`
	EmailPassword  string `env:"EMAIL_PASSWORD" validate:"required"`
	RecipientEmail string `env:"RECIPIENT_EMAIL" validate:"required,email"`
}

var validate = validator.New()

// LoadEnv reads credentials from the process environment. A .env file in the
// working directory is loaded first if present; real environment variables win.
func LoadEnv() Env {
	_ = godotenv.Load()

	return Env{
		UserID:         strings.TrimSpace(os.Getenv("USER_ID")),
		Password:       os.Getenv("PASSWORD_INPUT"),
		EmailAddress:   strings.TrimSpace(os.Getenv("EMAIL_ADDRESS")),
		EmailPassword:  os.Getenv("EMAIL_PASSWORD"),
		RecipientEmail: strings.TrimSpace(os.Getenv("RECIPIENT_EMAIL")),
	}
}

// WithRecipient returns a copy using the saved recipient, if any
func (e Env) WithRecipient(cfg *AppConfig) Env {
	if cfg != nil && cfg.Recipient != "" {
		e.RecipientEmail = cfg.Recipient
	}
	return e
}

// ValidatePortal checks the keys needed to log into the portal
func (e Env) ValidatePortal() error {
	return e.validate("UserID", "Password")
}

// ValidateMail checks the keys needed to send the daily email
func (e Env) ValidateMail() error {
	return e.validate("EmailAddress", "EmailPassword", "RecipientEmail")
}

func (e Env) validate(fields ...string) error {
	err := validate.StructPartial(e, fields...)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}

	var problems []string
	for _, fe := range verrs {
		key := envKey(fe.StructField())
		if fe.Tag() == "required" {
			problems = append(problems, "missing required environment variable: "+key)
		} else {
			problems = append(problems, fmt.Sprintf("invalid value for %s (%s)", key, fe.Tag()))
		}
	}
	return errors.New(strings.Join(problems, "; "))
}

// envKey maps a struct field back to the variable it was read from
func envKey(field string) string {
	if f, ok := reflect.TypeOf(Env{}).FieldByName(field); ok {
		return f.Tag.Get("env")
	}
	return field
}

// ValidEmail checks a single address, e.g. a recipient typed into the settings form
func ValidEmail(address string) error {
	if err := validate.Var(address, "required,email"); err != nil {
		return fmt.Errorf("%q is not a valid email address", address)
	}
	return nil
}
