package sign

import (
	"crypto/ed25519"
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Private key files hold secret material and are not group readable.
const privateKeyMode os.FileMode = 0o600

// Generates a fresh ed25519 key pair.
func GenerateKeyPair() (ed25519.PublicKey, ed25519.PrivateKey, error) {
	pub, priv, err := ed25519.GenerateKey(rand.Reader)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: %w", ErrInvalidKey, err)
	}
	return pub, priv, nil
}

// Writes a key pair to disk as hex-encoded seed and public point.
// Existing files are refused unless force is set.
func SaveKeyPair(priv ed25519.PrivateKey, privPath, pubPath string, force bool) error {
	if !force {
		for _, path := range []string{privPath, pubPath} {
			if _, err := os.Stat(path); err == nil {
				return fmt.Errorf("%w: %s already exists", ErrInvalidKey, path)
			}
		}
	}

	for _, path := range []string{privPath, pubPath} {
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			return fmt.Errorf("%w: %w", ErrInvalidKey, err)
		}
	}

	seed := hex.EncodeToString(priv.Seed())
	if err := os.WriteFile(privPath, []byte(seed+"\n"), privateKeyMode); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidKey, err)
	}

	pub := hex.EncodeToString(priv.Public().(ed25519.PublicKey))
	if err := os.WriteFile(pubPath, []byte(pub+"\n"), 0o644); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidKey, err)
	}

	return nil
}

// Reads a private key from a hex-encoded 32-byte seed file.
func LoadPrivateKey(path string) (ed25519.PrivateKey, error) {
	seed, err := readKeyBytes(path, ed25519.SeedSize)
	if err != nil {
		return nil, err
	}
	return ed25519.NewKeyFromSeed(seed), nil
}

// Reads a public key from a hex-encoded 32-byte file.
func LoadPublicKey(path string) (ed25519.PublicKey, error) {
	raw, err := readKeyBytes(path, ed25519.PublicKeySize)
	if err != nil {
		return nil, err
	}
	return ed25519.PublicKey(raw), nil
}

// Derives the public key from a stored private key and writes it out.
func ExportPublicKey(privPath, pubPath string) error {
	priv, err := LoadPrivateKey(privPath)
	if err != nil {
		return err
	}

	pub := hex.EncodeToString(priv.Public().(ed25519.PublicKey))
	if err := os.WriteFile(pubPath, []byte(pub+"\n"), 0o644); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidKey, err)
	}
	return nil
}

// Computes the hex SHA-256 fingerprint of a public key.
func Fingerprint(pub ed25519.PublicKey) string {
	sum := sha256.Sum256(pub)
	return hex.EncodeToString(sum[:])
}

// Reads and decodes a hex key file, enforcing the decoded length.
func readKeyBytes(path string, size int) ([]byte, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidKey, err)
	}

	raw, err := hex.DecodeString(strings.TrimSpace(string(data)))
	if err != nil {
		return nil, fmt.Errorf("%w: %s is not hex encoded", ErrInvalidKey, path)
	}
	if len(raw) != size {
		return nil, fmt.Errorf("%w: %s decodes to %d bytes, want %d", ErrInvalidKey, path, len(raw), size)
	}
	return raw, nil
}
