package crypto

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"

	"github.com/btcsuite/btcd/btcec/v2"
)

func GenerateECKeyPair() (string, string, error) {
	// Generate an EC key pair with bitcoin library
	privKey, err := btcec.NewPrivateKey()
	if err != nil {
		return "", "", err
	}
	// Generate the public key from the private key
	pubKey := privKey.PubKey()

	// convert keys to hex
	privKeyHex := hex.EncodeToString(privKey.Serialize())
	pubKeyHex := hex.EncodeToString(pubKey.SerializeCompressed())

	return privKeyHex, pubKeyHex, nil
}

const idCharset = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

// GenerateID creates a short random identifier for swap records.
func GenerateID() (string, error) {
	const length = 6

	raw := make([]byte, length)
	if _, err := rand.Read(raw); err != nil {
		return "", fmt.Errorf("failed to read randomness: %w", err)
	}

	id := make([]byte, length)
	for i, b := range raw {
		id[i] = idCharset[int(b)%len(idCharset)]
	}

	return string(id), nil
}

// GenerateAPICredentials creates an API key and secret for a referral.
func GenerateAPICredentials() (apiKey, apiSecret string, err error) {
	key := make([]byte, 16)
	if _, err := rand.Read(key); err != nil {
		return "", "", fmt.Errorf("failed to read randomness: %w", err)
	}

	secret := make([]byte, 32)
	if _, err := rand.Read(secret); err != nil {
		return "", "", fmt.Errorf("failed to read randomness: %w", err)
	}

	return hex.EncodeToString(key), hex.EncodeToString(secret), nil
}
