package sign

import (
	"crypto/ed25519"
	"fmt"
	"os"
)

// Suffix of the detached signature written next to an archive.
const SignatureSuffix = ".sig"

// Signs the archive bytes at pkgPath with the private key stored at
// privateKeyPath. Returns the raw 64-byte signature.
func SignPackage(pkgPath, privateKeyPath string) ([]byte, error) {
	priv, err := LoadPrivateKey(privateKeyPath)
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(pkgPath)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidSignature, err)
	}

	return ed25519.Sign(priv, data), nil
}

// Checks sig against the archive bytes at pkgPath using the public key
// stored at publicKeyPath. A well-formed but non-matching signature
// returns (false, nil); malformed inputs return an error.
func VerifyPackage(pkgPath string, sig []byte, publicKeyPath string) (bool, error) {
	pub, err := LoadPublicKey(publicKeyPath)
	if err != nil {
		return false, err
	}

	if len(sig) != ed25519.SignatureSize {
		return false, fmt.Errorf("%w: signature is %d bytes, want %d", ErrInvalidSignature, len(sig), ed25519.SignatureSize)
	}

	data, err := os.ReadFile(pkgPath)
	if err != nil {
		return false, fmt.Errorf("%w: %w", ErrInvalidSignature, err)
	}

	return ed25519.Verify(pub, data, sig), nil
}

// Sidecar path for a package archive, "<archive>.sig".
func SidecarPath(pkgPath string) string {
	return pkgPath + SignatureSuffix
}

// Writes a raw signature to the archive's sidecar file.
func WriteSidecar(pkgPath string, sig []byte) error {
	if err := os.WriteFile(SidecarPath(pkgPath), sig, 0o644); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidSignature, err)
	}
	return nil
}

// Reads the raw signature from the archive's sidecar file.
func ReadSidecar(pkgPath string) ([]byte, error) {
	sig, err := os.ReadFile(SidecarPath(pkgPath))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidSignature, err)
	}
	return sig, nil
}
