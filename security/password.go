package security

import (
	"crypto/hmac"
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"strconv"
	"strings"

	"golang.org/x/crypto/pbkdf2"
)

const (
	pbkdf2Iterations = 600000
	saltBytes        = 16
	keyBytes         = 32
	methodPrefix     = "pbkdf2:sha256"
)

// PasswordHasher derives storable salted hashes from plaintext passwords
// and verifies plaintexts against stored hashes.
type PasswordHasher interface {
	Hash(password string) (string, error)
	Verify(password, encoded string) bool
}

// PBKDF2Hasher hashes with PBKDF2-HMAC-SHA256. The produced string embeds
// the method, iteration count and salt, so verification needs nothing but
// the string itself:
//
//	pbkdf2:sha256:600000$<salt>$<hex digest>
type PBKDF2Hasher struct {
	iterations int
}

func NewPBKDF2Hasher() *PBKDF2Hasher {
	return &PBKDF2Hasher{iterations: pbkdf2Iterations}
}

// NewPBKDF2HasherWithIterations exists so tests can use a cheap iteration
// count instead of paying the production cost per call.
func NewPBKDF2HasherWithIterations(iterations int) *PBKDF2Hasher {
	return &PBKDF2Hasher{iterations: iterations}
}

func (h *PBKDF2Hasher) Hash(password string) (string, error) {
	salt := make([]byte, saltBytes)
	if _, err := rand.Read(salt); err != nil {
		return "", fmt.Errorf("generating salt: %w", err)
	}
	saltHex := hex.EncodeToString(salt)

	key := pbkdf2.Key([]byte(password), []byte(saltHex), h.iterations, keyBytes, sha256.New)
	return fmt.Sprintf("%s:%d$%s$%s", methodPrefix, h.iterations, saltHex, hex.EncodeToString(key)), nil
}

// Verify reports whether the plaintext matches the stored hash. Malformed
// input is never an error, just a mismatch. The digest comparison is
// constant time.
func (h *PBKDF2Hasher) Verify(password, encoded string) bool {
	iterations, salt, digest, ok := parseHash(encoded)
	if !ok {
		return false
	}
	key := pbkdf2.Key([]byte(password), []byte(salt), iterations, len(digest), sha256.New)
	return hmac.Equal(key, digest)
}

func parseHash(encoded string) (iterations int, salt string, digest []byte, ok bool) {
	parts := strings.SplitN(encoded, "$", 3)
	if len(parts) != 3 {
		return 0, "", nil, false
	}

	method := parts[0]
	if !strings.HasPrefix(method, methodPrefix+":") {
		return 0, "", nil, false
	}
	iterations, err := strconv.Atoi(strings.TrimPrefix(method, methodPrefix+":"))
	if err != nil || iterations <= 0 {
		return 0, "", nil, false
	}

	digest, err = hex.DecodeString(parts[2])
	if err != nil || len(digest) == 0 {
		return 0, "", nil, false
	}
	return iterations, parts[1], digest, true
}
