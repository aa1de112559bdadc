package credential

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"golang.org/x/crypto/bcrypt"
)

// Low cost keeps the tests fast; production uses DefaultCost.
func newTestHasher() *BcryptHasher {
	return NewBcryptHasher(bcrypt.MinCost)
}

func TestBcryptHasher_HashAndVerify(t *testing.T) {
	h := newTestHasher()

	hashed, err := h.Hash("correct horse battery staple")
	require.NoError(t, err)
	assert.NotEmpty(t, hashed)
	assert.NotContains(t, hashed, "correct horse")

	assert.True(t, h.Verify("correct horse battery staple", hashed))
	assert.False(t, h.Verify("wrong password", hashed))
	assert.False(t, h.Verify("", hashed))
}

func TestBcryptHasher_SaltedOutput(t *testing.T) {
	h := newTestHasher()

	first, err := h.Hash("same secret")
	require.NoError(t, err)
	second, err := h.Hash("same secret")
	require.NoError(t, err)

	// Each hash carries its own salt, so equal inputs produce distinct hashes.
	assert.NotEqual(t, first, second)
	assert.True(t, h.Verify("same secret", first))
	assert.True(t, h.Verify("same secret", second))
}

func TestBcryptHasher_VerifyGarbageHash(t *testing.T) {
	h := newTestHasher()

	assert.False(t, h.Verify("anything", "not-a-bcrypt-hash"))
	assert.False(t, h.Verify("anything", ""))
}

func TestNewBcryptHasher_CostClamping(t *testing.T) {
	tests := []struct {
		name string
		cost int
		want int
	}{
		{name: "valid cost", cost: 10, want: 10},
		{name: "below minimum", cost: 1, want: DefaultCost},
		{name: "above maximum", cost: 40, want: DefaultCost},
		{name: "zero", cost: 0, want: DefaultCost},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := NewBcryptHasher(tt.cost)
			assert.Equal(t, tt.want, h.cost)
		})
	}
}

func TestBcryptHasher_UUIDTokens(t *testing.T) {
	h := newTestHasher()

	token := "3f2c8a1e-9d4b-4c6f-8a2e-1b5d7e9f0a3c"
	hashed, err := h.Hash(token)
	require.NoError(t, err)

	assert.True(t, h.Verify(token, hashed))
	assert.False(t, h.Verify(strings.ToUpper(token), hashed))
}
