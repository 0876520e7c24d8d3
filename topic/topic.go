package topic

import (
	"crypto/hmac"
	"crypto/rand"
	"crypto/sha256"
	"encoding/base64"
	"encoding/hex"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// Generation method names accepted by Generate.
const (
	MethodRandom   = "random"
	MethodHMAC     = "hmac"
	MethodUUID     = "uuid"
	MethodCompound = "compound"
)

// Random encoding complexities. Anything other than the named values falls
// back to URL-safe base64.
const (
	ComplexityBase64 = 1
	ComplexityHex    = 2
)

// DefaultRandomLength is the byte count drawn when Generate is called for the
// random method without an explicit length.
const DefaultRandomLength = 32

var (
	ErrMissingSecretKey  = errors.New("hmac topic requires a secret key")
	ErrMissingIdentifier = errors.New("hmac topic requires an identifier")
	ErrInvalidLength     = errors.New("random topic length must be positive")
)

// Params supplies the per-method inputs for Generate. Only the fields the
// chosen method reads are consulted; the rest are ignored.
type Params struct {
	Length     int    // random: bytes to draw, DefaultRandomLength when zero
	Complexity int    // random: encoding, ComplexityHex when zero
	SecretKey  string // hmac
	Identifier string // hmac
	BaseTopic  string // compound: optional deterministic prefix source
}

// Generate dispatches to a strategy by name. Unknown method names fail with
// an error naming the offender; no strategy is silently substituted.
func Generate(method string, params Params) (string, error) {
	switch method {
	case MethodRandom:
		length := params.Length
		if length == 0 {
			length = DefaultRandomLength
		}
		complexity := params.Complexity
		if complexity == 0 {
			complexity = ComplexityHex
		}
		return Random(length, complexity)
	case MethodHMAC:
		return HMAC(params.SecretKey, params.Identifier)
	case MethodUUID:
		return UUID(), nil
	case MethodCompound:
		return Compound(params.BaseTopic)
	default:
		return "", fmt.Errorf("unsupported topic generation method %q", method)
	}
}

// Random draws length cryptographically secure random bytes and encodes them
// per complexity: ComplexityBase64 uses standard base64, ComplexityHex uses
// lowercase hex, and anything else uses URL-safe base64. No variant emits
// padding characters.
func Random(length, complexity int) (string, error) {
	if length < 1 {
		return "", ErrInvalidLength
	}
	buf, err := randomBytes(length)
	if err != nil {
		return "", err
	}
	switch complexity {
	case ComplexityBase64:
		return base64.RawStdEncoding.EncodeToString(buf), nil
	case ComplexityHex:
		return hex.EncodeToString(buf), nil
	default:
		return base64.RawURLEncoding.EncodeToString(buf), nil
	}
}

// HMAC derives a deterministic topic: the lowercase hex HMAC-SHA256 digest of
// identifier keyed by secretKey. Both inputs are required; omission is a
// caller bug, not a condition to default away.
func HMAC(secretKey, identifier string) (string, error) {
	if secretKey == "" {
		return "", ErrMissingSecretKey
	}
	if identifier == "" {
		return "", ErrMissingIdentifier
	}
	mac := hmac.New(sha256.New, []byte(secretKey))
	mac.Write([]byte(identifier))
	return hex.EncodeToString(mac.Sum(nil)), nil
}

// UUID returns a random version-4 UUID in canonical form.
func UUID() string {
	return uuid.NewString()
}

// Compound joins up to three segments with "-": when baseTopic is non-empty,
// the first 16 hex characters of its SHA-256 digest; then 8 random bytes as
// hex; then 12 random bytes as URL-safe base64 without padding.
func Compound(baseTopic string) (string, error) {
	randomHex, err := randomBytes(8)
	if err != nil {
		return "", err
	}
	randomB64, err := randomBytes(12)
	if err != nil {
		return "", err
	}

	parts := make([]string, 0, 3)
	if baseTopic != "" {
		sum := sha256.Sum256([]byte(baseTopic))
		parts = append(parts, hex.EncodeToString(sum[:])[:16])
	}
	parts = append(parts,
		hex.EncodeToString(randomHex),
		base64.RawURLEncoding.EncodeToString(randomB64))
	return strings.Join(parts, "-"), nil
}

func randomBytes(n int) ([]byte, error) {
	buf := make([]byte, n)
	if _, err := rand.Read(buf); err != nil {
		return nil, fmt.Errorf("read random bytes: %w", err)
	}
	return buf, nil
}
