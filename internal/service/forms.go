package service

import (
	"fmt"
	"strings"

	"github.com/hashicorp/go-hclog"
	"github.com/pawpals/storefront/internal/domain"
)

// ContactSubmission is the contact form payload
//
// swagger:model
type ContactSubmission struct {
	Name    string `json:"name" validate:"required"`
	Email   string `json:"email" validate:"required,email_shape"`
	Message string `json:"message" validate:"required"`
}

// LoginSubmission is the login form payload
//
// swagger:model
type LoginSubmission struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// SignupSubmission is the signup form payload
//
// swagger:model
type SignupSubmission struct {
	Name            string `json:"name" validate:"required"`
	Email           string `json:"email" validate:"required,email_shape"`
	Password        string `json:"password" validate:"required,min=6"`
	ConfirmPassword string `json:"confirmPassword" validate:"required,eqfield=Password"`
}

// FormService runs the three independent validation flows. Nothing is
// persisted anywhere; a passing submission only yields its success message.
type FormService interface {
	SubmitContact(sub ContactSubmission) (string, FieldErrors)
	SubmitLogin(sub LoginSubmission) (string, FieldErrors)
	SubmitSignup(sub SignupSubmission) (string, FieldErrors)
}

type formService struct {
	validator *domain.Validation
	logger    hclog.Logger
}

func NewFormService(validator *domain.Validation, logger hclog.Logger) FormService {
	return &formService{
		validator: validator,
		logger:    logger,
	}
}

// Per-form message tables: field -> validation tag -> message. The error set
// holds at most one message per field; the validator reports only the first
// failing tag of each field, which keeps the required-before-shape ordering.
var contactMessages = map[string]map[string]string{
	"Name":    {"required": "Please enter your name"},
	"Email":   {"required": "Please enter your email", "email_shape": "Please enter a valid email address"},
	"Message": {"required": "Please enter your message"},
}

var loginMessages = map[string]map[string]string{
	"Username": {"required": "Please enter your username"},
	"Password": {"required": "Please enter your password"},
}

var signupMessages = map[string]map[string]string{
	"Name":            {"required": "Please enter your name"},
	"Email":           {"required": "Please enter your email", "email_shape": "Please enter a valid email address"},
	"Password":        {"required": "Please enter a password", "min": "Password must be at least 6 characters"},
	"ConfirmPassword": {"required": "Please confirm your password", "eqfield": "Passwords do not match"},
}

// wire names used as field-error keys in responses
var fieldNames = map[string]string{
	"Name":            "name",
	"Email":           "email",
	"Message":         "message",
	"Username":        "username",
	"Password":        "password",
	"ConfirmPassword": "confirmPassword",
}

func (s *formService) SubmitContact(sub ContactSubmission) (string, FieldErrors) {
	sub.Name = strings.TrimSpace(sub.Name)
	sub.Email = strings.TrimSpace(sub.Email)
	sub.Message = strings.TrimSpace(sub.Message)

	if errs := s.collect(&sub, contactMessages); len(errs) > 0 {
		return "", errs
	}

	s.logger.Debug("Contact form accepted", "email", sub.Email)
	return "Thank you for your message! We will get back to you within 24 hours.", nil
}

func (s *formService) SubmitLogin(sub LoginSubmission) (string, FieldErrors) {
	sub.Username = strings.TrimSpace(sub.Username)
	sub.Password = strings.TrimSpace(sub.Password)

	if errs := s.collect(&sub, loginMessages); len(errs) > 0 {
		return "", errs
	}

	s.logger.Debug("Login form accepted", "username", sub.Username)
	return fmt.Sprintf("Welcome back, %s! Login successful.", sub.Username), nil
}

func (s *formService) SubmitSignup(sub SignupSubmission) (string, FieldErrors) {
	sub.Name = strings.TrimSpace(sub.Name)
	sub.Email = strings.TrimSpace(sub.Email)
	sub.Password = strings.TrimSpace(sub.Password)
	sub.ConfirmPassword = strings.TrimSpace(sub.ConfirmPassword)

	if errs := s.collect(&sub, signupMessages); len(errs) > 0 {
		return "", errs
	}

	s.logger.Debug("Signup form accepted", "email", sub.Email)
	return fmt.Sprintf("Account created successfully! Welcome to the PawPals family, %s!", sub.Name), nil
}

// collect validates the submission and translates failures into the form's
// friendly messages keyed by wire field name.
func (s *formService) collect(sub interface{}, messages map[string]map[string]string) FieldErrors {
	errs := s.validator.Validate(sub)
	if len(errs) == 0 {
		return nil
	}

	fieldErrs := FieldErrors{}
	for _, ve := range errs {
		name := fieldNames[ve.Field]
		if name == "" {
			name = ve.Field
		}

		msg := messages[ve.Field][ve.Tag]
		if msg == "" {
			msg = ve.Message
		}
		fieldErrs[name] = msg
	}

	return fieldErrs
}
