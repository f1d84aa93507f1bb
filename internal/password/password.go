// Package password hashes and verifies user passwords with Argon2id.
// Hashes are stored in the PHC string format
// ($argon2id$v=19$m=...,t=...,p=...$salt$key), so the parameters travel
// with the hash and can be tightened later without invalidating stored
// credentials.
package password

import (
	"crypto/rand"
	"crypto/subtle"
	"encoding/base64"
	"errors"
	"fmt"
	"strings"

	"golang.org/x/crypto/argon2"
)

var (
	ErrMalformedHash         = errors.New("malformed password hash")
	ErrUnsupportedHashFormat = errors.New("unsupported password hash format")
)

const (
	defaultMemory      = 64 * 1024
	defaultIterations  = 3
	defaultParallelism = 2
	saltLength         = 16
	keyLength          = 32
)

// Hash derives an Argon2id hash of the plaintext with a fresh random
// salt and returns it in PHC string format.
func Hash(plaintext string) (string, error) {
	salt := make([]byte, saltLength)
	if _, err := rand.Read(salt); err != nil {
		return "", fmt.Errorf("salt generation: %w", err)
	}

	key := argon2.IDKey([]byte(plaintext), salt,
		defaultIterations, defaultMemory, defaultParallelism, keyLength)

	return fmt.Sprintf("$argon2id$v=%d$m=%d,t=%d,p=%d$%s$%s",
		argon2.Version, defaultMemory, defaultIterations, defaultParallelism,
		base64.RawStdEncoding.EncodeToString(salt),
		base64.RawStdEncoding.EncodeToString(key)), nil
}

// Verify reports whether the plaintext matches the encoded hash. The
// derivation parameters are taken from the hash itself, so hashes
// produced with older parameters keep verifying.
func Verify(plaintext, encoded string) (bool, error) {
	memory, iterations, parallelism, salt, key, err := decode(encoded)
	if err != nil {
		return false, err
	}

	candidate := argon2.IDKey([]byte(plaintext), salt,
		iterations, memory, parallelism, uint32(len(key)))

	return subtle.ConstantTimeCompare(key, candidate) == 1, nil
}

func decode(encoded string) (memory, iterations uint32, parallelism uint8, salt, key []byte, err error) {
	parts := strings.Split(encoded, "$")
	if len(parts) != 6 || parts[0] != "" {
		err = ErrMalformedHash
		return
	}
	if parts[1] != "argon2id" {
		err = fmt.Errorf("%w: %q", ErrUnsupportedHashFormat, parts[1])
		return
	}

	var version int
	if _, err = fmt.Sscanf(parts[2], "v=%d", &version); err != nil {
		err = fmt.Errorf("%w: %v", ErrMalformedHash, err)
		return
	}
	if version != argon2.Version {
		err = fmt.Errorf("%w: argon2 version %d", ErrUnsupportedHashFormat, version)
		return
	}

	if _, err = fmt.Sscanf(parts[3], "m=%d,t=%d,p=%d", &memory, &iterations, &parallelism); err != nil {
		err = fmt.Errorf("%w: %v", ErrMalformedHash, err)
		return
	}

	if salt, err = base64.RawStdEncoding.DecodeString(parts[4]); err != nil {
		err = fmt.Errorf("%w: %v", ErrMalformedHash, err)
		return
	}
	if key, err = base64.RawStdEncoding.DecodeString(parts[5]); err != nil {
		err = fmt.Errorf("%w: %v", ErrMalformedHash, err)
		return
	}
	return
}
