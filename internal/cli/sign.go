package cli

import (
	"context"
	"encoding/hex"
	"fmt"
	"os"

	"github.com/paxhq/paxbuild/internal/paths"
	"github.com/paxhq/paxbuild/internal/sign"
)

// Represents the 'paxbuild sign' command.
type SignCmd struct {
	Package string `arg:"" help:"Package archive to sign." placeholder:"PACKAGE"`
	Key     string `short:"k" required:"" help:"Private key file." placeholder:"FILE"`
	Output  string `short:"o" optional:"" help:"Signature file. Defaults to <package>.sig." placeholder:"FILE"`
}

// Executes the sign command.
func (c *SignCmd) Run(ctx context.Context) error {
	sig, err := sign.SignPackage(c.Package, c.Key)
	if err != nil {
		return err
	}

	dest := c.Output
	if dest == "" {
		dest = sign.SidecarPath(c.Package)
	}
	if err := os.WriteFile(dest, sig, paths.DefaultFileMode); err != nil {
		return fmt.Errorf("%w: %w", sign.ErrInvalidSignature, err)
	}

	fmt.Printf("%s\n", hex.EncodeToString(sig))
	return nil
}
