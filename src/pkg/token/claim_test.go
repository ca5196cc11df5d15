package token

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret"

func TestGenerateAndParse(t *testing.T) {
	meta := Metadata{UserID: 42, Email: "rider@example.com", Name: "Rider"}

	signed, err := Generate(testSecret, meta, time.Hour)
	require.NoError(t, err)
	require.NotEmpty(t, signed)

	claim, err := Parse(testSecret, signed)
	require.NoError(t, err)
	assert.Equal(t, meta, claim.Metadata)
	assert.Equal(t, meta.Email, claim.Subject)
}

func TestParseWrongSecret(t *testing.T) {
	signed, err := Generate(testSecret, Metadata{UserID: 1}, time.Hour)
	require.NoError(t, err)

	_, err = Parse("another-secret", signed)
	assert.Error(t, err)
}

func TestParseExpired(t *testing.T) {
	signed, err := Generate(testSecret, Metadata{UserID: 1}, -time.Minute)
	require.NoError(t, err)

	_, err = Parse(testSecret, signed)
	assert.Error(t, err)
}

func TestParseGarbage(t *testing.T) {
	_, err := Parse(testSecret, "not.a.token")
	assert.Error(t, err)
}
