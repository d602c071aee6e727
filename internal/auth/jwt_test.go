package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewAccessToken_RoundTrip(t *testing.T) {
	tok, err := NewAccessToken("s3cret", "u1", true, time.Minute)
	require.NoError(t, err)

	claims, err := ParseValidate("s3cret", tok)
	require.NoError(t, err)
	assert.Equal(t, "u1", claims.Sub)
	assert.True(t, claims.Admin)
}

func TestParseValidate_WrongSecret(t *testing.T) {
	tok, err := NewAccessToken("s3cret", "u1", false, time.Minute)
	require.NoError(t, err)

	_, err = ParseValidate("other", tok)
	require.Error(t, err)
}

func TestParseValidate_Expired(t *testing.T) {
	tok, err := NewAccessToken("s3cret", "u1", false, -time.Minute)
	require.NoError(t, err)

	_, err = ParseValidate("s3cret", tok)
	require.Error(t, err)
}

func TestParseValidate_Garbage(t *testing.T) {
	_, err := ParseValidate("s3cret", "not.a.token")
	require.Error(t, err)
}
