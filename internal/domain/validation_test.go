package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEmailShape(t *testing.T) {
	testCases := []struct {
		name  string
		email string
		valid bool
	}{
		{"minimal valid", "a@b.c", true},
		{"typical address", "jane.doe@example.com", true},
		{"missing domain dot", "a@b", false},
		{"double at", "a@@b.c", false},
		{"space before at", "a b@c.d", false},
		{"empty", "", false},
		{"missing local part", "@b.c", false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.valid, IsValidEmail(tc.email))
		})
	}
}

func TestCardNumberRule(t *testing.T) {
	v := NewValidation()

	assert.True(t, v.Var("4242 4242 4242 4242", "card_number"))
	assert.True(t, v.Var("4242424242424242", "card_number"))
	assert.False(t, v.Var("4242 4242 4242", "card_number"))
}

func TestStructValidationCollectsAllFailures(t *testing.T) {
	v := NewValidation()

	type signup struct {
		Email    string `validate:"required,email_shape"`
		Password string `validate:"required,min=6"`
	}

	errs := v.Validate(&signup{Email: "a@@b.c", Password: "abc12"})
	assert.Len(t, errs, 2, "every invalid field is reported in one pass")
}
