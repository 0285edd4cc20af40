package encoding

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"errors"
	"fmt"
	"strings"

	"github.com/vmihailenco/msgpack/v5"
)

// Sentinel errors returned by Decode.
var (
	ErrInvalidFormat    = errors.New("encoding: invalid manifest format")
	ErrSignatureInvalid = errors.New("encoding: manifest signature verification failed")
)

// Encoder signs and verifies attribute manifests.
//
// The wire form is base64(msgpack) "." base64(hmac): readable with any msgpack
// tool, but rejected by Decode once edited.
type Encoder struct {
	key []byte
}

// NewEncoder creates an encoder with the given signing key.
// Keys shorter than 32 bytes are stretched with SHA-256.
func NewEncoder(key []byte) (*Encoder, error) {
	if len(key) == 0 {
		return nil, errors.New("encoding: empty signing key")
	}
	if len(key) < 32 {
		h := sha256.Sum256(key)
		key = h[:]
	}
	return &Encoder{key: key}, nil
}

// Encode serializes and signs a manifest.
func (e *Encoder) Encode(m *Manifest) (string, error) {
	packed, err := msgpack.Marshal(m)
	if err != nil {
		return "", fmt.Errorf("encoding: marshal manifest: %w", err)
	}
	return e.sign(packed), nil
}

// Decode verifies and deserializes a manifest produced by Encode.
func (e *Encoder) Decode(encoded string) (*Manifest, error) {
	packed, err := e.verify(strings.TrimSpace(encoded))
	if err != nil {
		return nil, err
	}

	var m Manifest
	if err := msgpack.Unmarshal(packed, &m); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidFormat, err)
	}
	return &m, nil
}

// sign returns base64.signature, the signature truncated to 128 bits.
func (e *Encoder) sign(data []byte) string {
	b64 := base64.RawURLEncoding.EncodeToString(data)
	mac := hmac.New(sha256.New, e.key)
	mac.Write(data)
	sig := base64.RawURLEncoding.EncodeToString(mac.Sum(nil)[:16])
	return b64 + "." + sig
}

func (e *Encoder) verify(encoded string) ([]byte, error) {
	payload, sig64, ok := strings.Cut(encoded, ".")
	if !ok {
		return nil, fmt.Errorf("%w: missing signature", ErrInvalidFormat)
	}

	data, err := base64.RawURLEncoding.DecodeString(payload)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidFormat, err)
	}
	sig, err := base64.RawURLEncoding.DecodeString(sig64)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidFormat, err)
	}

	mac := hmac.New(sha256.New, e.key)
	mac.Write(data)
	if !hmac.Equal(sig, mac.Sum(nil)[:16]) {
		return nil, ErrSignatureInvalid
	}
	return data, nil
}
