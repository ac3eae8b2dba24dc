package cli

import (
	"context"
	"fmt"

	"github.com/paxhq/paxbuild/internal/pax"
	"github.com/paxhq/paxbuild/internal/sign"
)

// Represents the 'paxbuild verify' command.
type VerifyCmd struct {
	Package string `arg:"" help:"Package archive to verify." placeholder:"PACKAGE"`
	Key     string `short:"k" optional:"" help:"Public key; also checks the .sig sidecar." placeholder:"FILE"`
}

// Executes the verify command.
//
// Always performs the structural check (archive decompresses, metadata
// readable, files listable). With a public key, additionally verifies
// the detached signature sidecar.
func (c *VerifyCmd) Run(ctx context.Context) error {
	pkg, err := pax.Open(c.Package)
	if err != nil {
		return err
	}

	if err := pkg.Verify(); err != nil {
		return err
	}

	hash, err := pkg.Hash()
	if err != nil {
		return err
	}
	files, err := pkg.ListFiles()
	if err != nil {
		return err
	}

	fmt.Printf("%s: ok\n", c.Package)
	fmt.Printf("  sha256: %s\n", hash)
	fmt.Printf("  files:  %d\n", len(files))

	if c.Key == "" {
		return nil
	}

	sig, err := sign.ReadSidecar(c.Package)
	if err != nil {
		return err
	}

	ok, err := sign.VerifyPackage(c.Package, sig, c.Key)
	if err != nil {
		return err
	}
	if !ok {
		return fmt.Errorf("%w: signature does not match %s", sign.ErrInvalidSignature, c.Package)
	}

	fmt.Println("  signature: ok")
	return nil
}
