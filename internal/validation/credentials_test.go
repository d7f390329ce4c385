package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidEmail_Valid(t *testing.T) {
	valids := []string{
		"a@b.com",
		"user.name+tag@sub.example.org",
		"UPPER@DOMAIN.TLD",
		"x@y.z",
	}
	for _, v := range valids {
		assert.True(t, ValidEmail(v), "expected valid: %q", v)
	}
}

func TestValidEmail_Invalid(t *testing.T) {
	invalids := []string{
		"",
		"not-an-email",
		"missing-at.com",
		"no-dot@domain",
		"spaces in@local.com",
		"user@dom ain.com",
		"@nodomain.com",
	}
	for _, v := range invalids {
		assert.False(t, ValidEmail(v), "expected invalid: %q", v)
	}
}

func TestPasswordPolicy_Validate(t *testing.T) {
	cases := []struct {
		pw      string
		ok      bool
		reasons []string
	}{
		{"Passw0rd", true, nil},
		{"short1A", false, []string{"too_short"}},
		{"alllowercase1", false, []string{"missing_upper"}},
		{"NOLOWER1", false, []string{"missing_lower"}},
		{"NoDigitsHere", false, []string{"missing_digit"}},
		{"", false, []string{"too_short", "missing_lower", "missing_upper", "missing_digit"}},
	}
	for _, tc := range cases {
		ok, reasons := DefaultPasswordPolicy.Validate(tc.pw)
		assert.Equal(t, tc.ok, ok, "pw=%q", tc.pw)
		assert.ElementsMatch(t, tc.reasons, reasons, "pw=%q", tc.pw)
	}
}

func TestValidateCredentials(t *testing.T) {
	require.NoError(t, ValidateCredentials("a@b.com", "Passw0rd"))

	err := ValidateCredentials("not-an-email", "Passw0rd")
	require.Error(t, err)
	verr, ok := err.(*ValidationError)
	require.True(t, ok)
	assert.Equal(t, "email", verr.Field)

	err = ValidateCredentials("a@b.com", "weak")
	require.Error(t, err)
	verr, ok = err.(*ValidationError)
	require.True(t, ok)
	assert.Equal(t, "password", verr.Field)
	assert.Contains(t, verr.Reasons, "too_short")

	// El email se corta primero aunque el password también sea inválido
	err = ValidateCredentials("bad", "bad")
	verr = err.(*ValidationError)
	assert.Equal(t, "email", verr.Field)
}
