package validator

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type registerForm struct {
	Email     string `json:"email" validate:"required,email_format"`
	Password  string `json:"password" validate:"required,min=8,max_bytes=72"`
	FirstName string `json:"firstName" validate:"required"`
	LastName  string `json:"lastName" validate:"required"`
}

type confirmForm struct {
	Email string `json:"email" validate:"required,email_format"`
	Token string `json:"confirm" validate:"required,uuid4"`
}

// ============================================================================
// IsEmailAddress
// ============================================================================

func TestIsEmailAddress_Valid(t *testing.T) {
	valid := []string{
		"a@b.co",
		"new@user.com",
		"first.last@sub.example.org",
		"user+tag@example.com",
	}
	for _, s := range valid {
		assert.True(t, IsEmailAddress(s), "expected %q to be accepted", s)
	}
}

func TestIsEmailAddress_Invalid(t *testing.T) {
	invalid := []string{
		"",
		"plainaddress",
		"missingdomain@",
		"@missinglocal.com",
		"no-dot-domain@localhost",
		"two@@example.com",
		"a@b@c.com",
		" leading@example.com",
		"trailing@example.com ",
		"embedded space@example.com",
		"dot-at-end@example.com.",
		"a@.com",
	}
	for _, s := range invalid {
		assert.False(t, IsEmailAddress(s), "expected %q to be rejected", s)
	}
}

// ============================================================================
// Validate
// ============================================================================

func TestValidate_Success(t *testing.T) {
	form := registerForm{
		Email:     "new@user.com",
		Password:  "newpassword",
		FirstName: "New",
		LastName:  "User",
	}
	assert.NoError(t, Validate(form))
}

func TestValidate_AggregatesAllViolations(t *testing.T) {
	form := registerForm{
		Email:    "not-an-email",
		Password: "short",
	}

	err := Validate(form)
	require.Error(t, err)

	var ve *ValidationError
	require.True(t, errors.As(err, &ve))
	assert.Len(t, ve.Violations, 4)
	assert.True(t, ve.Has("email"))
	assert.True(t, ve.Has("password"))
	assert.True(t, ve.Has("firstName"))
	assert.True(t, ve.Has("lastName"))
}

func TestValidate_UsesJSONFieldNames(t *testing.T) {
	form := confirmForm{Email: "a@b.co", Token: "not-a-uuid"}

	err := Validate(form)
	require.Error(t, err)

	var ve *ValidationError
	require.True(t, errors.As(err, &ve))
	require.Len(t, ve.Violations, 1)
	assert.Equal(t, "confirm", ve.Violations[0].Field)
	assert.Equal(t, "must be a valid UUID", ve.Violations[0].Message)
}

func TestValidate_UUIDRule(t *testing.T) {
	ok := confirmForm{Email: "a@b.co", Token: "0a0d58bb-9a6c-42a1-8124-4b5b8181b4b0"}
	assert.NoError(t, Validate(ok))

	bad := confirmForm{Email: "a@b.co", Token: "0a0d58bb"}
	assert.Error(t, Validate(bad))
}

func TestValidate_PasswordBoundary(t *testing.T) {
	form := registerForm{
		Email:     "new@user.com",
		Password:  "12345678",
		FirstName: "New",
		LastName:  "User",
	}
	assert.NoError(t, Validate(form), "exactly 8 characters must pass")

	form.Password = "1234567"
	assert.Error(t, Validate(form), "7 characters must fail")
}

func TestValidate_MaxBytesRule(t *testing.T) {
	form := registerForm{
		Email:     "new@user.com",
		Password:  strings.Repeat("x", 72),
		FirstName: "New",
		LastName:  "User",
	}
	assert.NoError(t, Validate(form), "72 bytes must pass")

	form.Password = strings.Repeat("x", 73)
	err := Validate(form)
	require.Error(t, err, "73 bytes must fail")

	var ve *ValidationError
	require.True(t, errors.As(err, &ve))
	assert.Equal(t, []string{"password must be at most 72 bytes"}, ve.List())

	// The rule counts bytes, not runes: 40 two-byte runes are 80 bytes.
	form.Password = strings.Repeat("é", 40)
	assert.Error(t, Validate(form), "80 bytes in 40 runes must fail")
}

// ============================================================================
// ValidationError
// ============================================================================

func TestValidationError_ListAndFields(t *testing.T) {
	ve := &ValidationError{}
	ve.Add("email", "must be a string")
	ve.Add("password", "must be at least 8 characters")

	assert.Equal(t, []string{
		"email must be a string",
		"password must be at least 8 characters",
	}, ve.List())

	assert.Equal(t, map[string]string{
		"email":    "must be a string",
		"password": "must be at least 8 characters",
	}, ve.Fields())

	assert.Contains(t, ve.Error(), "email must be a string")
	assert.False(t, ve.Empty())
}

func TestValidationError_Has(t *testing.T) {
	ve := &ValidationError{}
	assert.True(t, ve.Empty())
	ve.Add("email", "is required")
	assert.True(t, ve.Has("email"))
	assert.False(t, ve.Has("password"))
}
