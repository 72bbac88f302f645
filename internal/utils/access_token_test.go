package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAccessTokenRoundTrip(t *testing.T) {
	t.Setenv("SECRET_JWT", "test-secret-for-tokens")

	util := NewAccessTokenUtil()

	token, err := util.EncodeToken("66cf2b8e9f1c2a0012345678", "alice@example.com")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := util.DecodeToken(token)
	require.NoError(t, err)
	assert.Equal(t, "66cf2b8e9f1c2a0012345678", claims["sub"])
	assert.Equal(t, "alice@example.com", claims["email"])
	assert.Contains(t, claims, "exp")
	assert.Contains(t, claims, "iat")
}

func TestDecodeTokenRejectsGarbage(t *testing.T) {
	t.Setenv("SECRET_JWT", "test-secret-for-tokens")

	_, err := NewAccessTokenUtil().DecodeToken("not-a-token")
	assert.Error(t, err)
}

func TestDecodeTokenRejectsWrongKey(t *testing.T) {
	t.Setenv("SECRET_JWT", "first-secret")
	token, err := NewAccessTokenUtil().EncodeToken("66cf2b8e9f1c2a0012345678", "alice@example.com")
	require.NoError(t, err)

	t.Setenv("SECRET_JWT", "second-secret")
	_, err = NewAccessTokenUtil().DecodeToken(token)
	assert.Error(t, err)
}

func TestValidateClaimsExpired(t *testing.T) {
	err := validateClaims(map[string]interface{}{
		"exp": float64(1000),
	})
	assert.EqualError(t, err, "token expired")
}

func TestValidateClaimsNotYetValid(t *testing.T) {
	err := validateClaims(map[string]interface{}{
		"iat": float64(99999999999),
	})
	assert.EqualError(t, err, "token is not valid yet")
}
