package utils

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/hmac"
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"strings"
	"unicode"
)

// MinCardDigits is the shortest card number the payment form accepts
const MinCardDigits = 16

// NormalizeCardNumber strips spaces and dashes. It fails on any other
// non-digit or when fewer than MinCardDigits remain.
func NormalizeCardNumber(number string) (string, error) {
	var builder strings.Builder
	for _, r := range number {
		switch {
		case unicode.IsDigit(r):
			builder.WriteRune(r)
		case r == ' ' || r == '-':
		default:
			return "", fmt.Errorf("invalid character %q in card number", r)
		}
	}

	digits := builder.String()
	if len(digits) < MinCardDigits || len(digits) > 19 {
		return "", fmt.Errorf("invalid card number length: %d", len(digits))
	}
	return digits, nil
}

// MaskCardNumber keeps only the last four digits visible
func MaskCardNumber(digits string) string {
	if len(digits) <= 4 {
		return digits
	}
	return strings.Repeat("*", len(digits)-4) + digits[len(digits)-4:]
}

// CardFingerprint is an HMAC over the card details, used to spot the same
// card across payments without storing it in clear.
func CardFingerprint(digits, expiry, secret string) string {
	h := hmac.New(sha256.New, []byte(secret))
	h.Write([]byte(digits + expiry))
	return hex.EncodeToString(h.Sum(nil))
}

// Seal encrypts data with AES-GCM; the hex output carries the nonce first
func Seal(data string, key []byte) (string, error) {
	if len(data) == 0 {
		return "", fmt.Errorf("input data is empty")
	}
	gcm, err := newGCM(key)
	if err != nil {
		return "", err
	}

	nonce := make([]byte, gcm.NonceSize())
	if _, err := rand.Read(nonce); err != nil {
		return "", fmt.Errorf("failed to generate nonce: %w", err)
	}

	sealed := gcm.Seal(nonce, nonce, []byte(data), nil)
	return hex.EncodeToString(sealed), nil
}

// Open reverses Seal
func Open(sealedHex string, key []byte) (string, error) {
	if len(sealedHex) == 0 {
		return "", fmt.Errorf("encrypted data is empty")
	}
	gcm, err := newGCM(key)
	if err != nil {
		return "", err
	}

	data, err := hex.DecodeString(sealedHex)
	if err != nil {
		return "", fmt.Errorf("failed to decode hex: %w", err)
	}
	if len(data) < gcm.NonceSize() {
		return "", fmt.Errorf("encrypted data too short: %d bytes", len(data))
	}

	nonce, ciphertext := data[:gcm.NonceSize()], data[gcm.NonceSize():]
	plaintext, err := gcm.Open(nil, nonce, ciphertext, nil)
	if err != nil {
		return "", fmt.Errorf("failed to decrypt: %w", err)
	}
	return string(plaintext), nil
}

func newGCM(key []byte) (cipher.AEAD, error) {
	if len(key) != 16 && len(key) != 24 && len(key) != 32 {
		return nil, fmt.Errorf("encryption key must be 16, 24, or 32 bytes, got %d", len(key))
	}
	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, fmt.Errorf("failed to create cipher: %w", err)
	}
	gcm, err := cipher.NewGCM(block)
	if err != nil {
		return nil, fmt.Errorf("failed to create GCM: %w", err)
	}
	return gcm, nil
}
