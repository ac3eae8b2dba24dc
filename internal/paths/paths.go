package paths

import (
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
)

const (

	// Name used for directory and file naming.
	toolName = "paxbuild"

	// Default permission mode for directories.
	DefaultDirMode os.FileMode = 0755

	// Default permission mode for files.
	DefaultFileMode os.FileMode = 0644
)

// Path to the directory for signing keys.
//
//	Linux:   ~/.local/share/paxbuild/keys
//	macOS:   ~/Library/Application Support/paxbuild/keys
func Keys() string {
	return filepath.Join(xdg.DataHome, toolName, "keys")
}

// Default path to the private signing key.
func DefaultPrivateKey() string {
	return filepath.Join(Keys(), "paxbuild.key")
}

// Default path to the public signing key.
func DefaultPublicKey() string {
	return filepath.Join(Keys(), "paxbuild.pub")
}
