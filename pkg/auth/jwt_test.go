package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestAccessTokenRoundTrip(t *testing.T) {
	token, err := GenerateAccessToken("lab-notebook", "secret", time.Minute)
	require.NoError(t, err)

	claims, err := ValidateAccessToken(token, "secret")
	require.NoError(t, err)
	require.Equal(t, "lab-notebook", claims.Client)
	require.Equal(t, "lab-notebook", claims.Subject)
}

func TestAccessTokenRejected(t *testing.T) {
	token, err := GenerateAccessToken("client", "secret", time.Minute)
	require.NoError(t, err)

	_, err = ValidateAccessToken(token, "other-secret")
	require.Error(t, err)

	expired, err := GenerateAccessToken("client", "secret", -time.Minute)
	require.NoError(t, err)
	_, err = ValidateAccessToken(expired, "secret")
	require.Error(t, err)

	_, err = GenerateAccessToken("client", "", time.Minute)
	require.Error(t, err)
}

func TestBearerToken(t *testing.T) {
	token, err := BearerToken("Bearer abc.def")
	require.NoError(t, err)
	require.Equal(t, "abc.def", token)

	token, err = BearerToken("bearer xyz")
	require.NoError(t, err)
	require.Equal(t, "xyz", token)

	_, err = BearerToken("Basic abc")
	require.ErrorIs(t, err, ErrMissingToken)
	_, err = BearerToken("")
	require.ErrorIs(t, err, ErrMissingToken)
}
