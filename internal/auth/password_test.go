package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashPassword_NeverStoresPlaintext(t *testing.T) {
	passwords := []string{"Abcdef1!", "p", "correct horse battery staple", ""}

	for _, p := range passwords {
		hash, err := HashPassword(p)
		require.NoError(t, err)
		assert.NotEqual(t, p, hash)
		assert.True(t, CheckPassword(p, hash))
		assert.False(t, CheckPassword(p+"x", hash))
	}
}

func TestHashPassword_SaltedPerCall(t *testing.T) {
	first, err := HashPassword("Abcdef1!")
	require.NoError(t, err)
	second, err := HashPassword("Abcdef1!")
	require.NoError(t, err)

	// bcrypt embeds a random salt, so two hashes of the same input differ.
	assert.NotEqual(t, first, second)
}

func TestCheckPasswordStrength(t *testing.T) {
	tests := []struct {
		name       string
		password   string
		wantValid  bool
		wantErrors int
	}{
		{
			name:       "empty string violates every rule",
			password:   "",
			wantValid:  false,
			wantErrors: 5,
		},
		{
			name:      "meets all rules",
			password:  "Abcdef1!",
			wantValid: true,
		},
		{
			name:       "too short but otherwise fine",
			password:   "Ab1!",
			wantValid:  false,
			wantErrors: 1,
		},
		{
			name:       "no uppercase",
			password:   "abcdefg1!",
			wantValid:  false,
			wantErrors: 1,
		},
		{
			name:       "no lowercase",
			password:   "ABCDEFG1!",
			wantValid:  false,
			wantErrors: 1,
		},
		{
			name:       "no digit",
			password:   "Abcdefgh!",
			wantValid:  false,
			wantErrors: 1,
		},
		{
			name:       "no symbol",
			password:   "Abcdefg1",
			wantValid:  false,
			wantErrors: 1,
		},
		{
			name:       "symbol outside the accepted set",
			password:   "Abcdefg1-",
			wantValid:  false,
			wantErrors: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			valid, violations := CheckPasswordStrength(tt.password)
			assert.Equal(t, tt.wantValid, valid)
			assert.Len(t, violations, tt.wantErrors)
		})
	}
}

func TestIsValidEmail(t *testing.T) {
	tests := []struct {
		email string
		want  bool
	}{
		{"a@b.com", true},
		{"first.last@example.co.uk", true},
		{"", false},
		{"plainaddress", false},
		{"no-domain@", false},
		{"@no-local.com", false},
		{"no-tld@example", false},
		{"spaces in@example.com", false},
	}

	for _, tt := range tests {
		t.Run(tt.email, func(t *testing.T) {
			assert.Equal(t, tt.want, IsValidEmail(tt.email))
		})
	}
}
