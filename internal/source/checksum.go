package source

import (
	"fmt"
	"os"
	"strings"

	"github.com/opencontainers/go-digest"
)

// ChecksumMismatchError reports a downloaded artifact whose digest does
// not match the recipe's declared hash.
type ChecksumMismatchError struct {
	Expected string
	Actual   string
}

func (e *ChecksumMismatchError) Error() string {
	return fmt.Sprintf("%v: expected %s, got %s", ErrChecksumMismatch, e.Expected, e.Actual)
}

func (e *ChecksumMismatchError) Unwrap() error {
	return ErrChecksumMismatch
}

// Computes the hex SHA-256 digest of the file at path.
func fileDigest(path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", err
	}
	defer f.Close()

	d, err := digest.SHA256.FromReader(f)
	if err != nil {
		return "", err
	}
	return d.Encoded(), nil
}

// Verifies the file at path against an expected SHA-256 hash. The hash
// is compared case-insensitively and may carry a "sha256:" prefix.
func verifyChecksum(path, expected string) error {
	actual, err := fileDigest(path)
	if err != nil {
		return err
	}

	want := strings.ToLower(strings.TrimPrefix(expected, "sha256:"))
	if actual != want {
		return &ChecksumMismatchError{Expected: want, Actual: actual}
	}
	return nil
}
