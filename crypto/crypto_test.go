package crypto

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestGenerateECKeyPair(t *testing.T) {
	privKey, pubKey, err := GenerateECKeyPair()
	require.NoError(t, err)
	require.Len(t, privKey, 64)
	require.Len(t, pubKey, 66)
}

func TestGenerateID(t *testing.T) {
	first, err := GenerateID()
	require.NoError(t, err)
	require.Len(t, first, 6)

	second, err := GenerateID()
	require.NoError(t, err)
	require.NotEqual(t, first, second)
}

func TestGenerateAPICredentials(t *testing.T) {
	apiKey, apiSecret, err := GenerateAPICredentials()
	require.NoError(t, err)
	require.Len(t, apiKey, 32)
	require.Len(t, apiSecret, 64)
}
