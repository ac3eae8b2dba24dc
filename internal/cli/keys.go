package cli

import (
	"context"
	"crypto/ed25519"
	"fmt"

	"github.com/paxhq/paxbuild/internal/paths"
	"github.com/paxhq/paxbuild/internal/sign"
)

// Represents the 'paxbuild keys' command group.
type KeysCmd struct {
	Generate KeysGenerateCmd `cmd:"" help:"Generate a new signing key pair."`
	Export   KeysExportCmd   `cmd:"" help:"Write the public key derived from a private key."`
	Info     KeysInfoCmd     `cmd:"" help:"Show a key's fingerprint."`
}

// Represents the 'paxbuild keys generate' command.
type KeysGenerateCmd struct {
	Private string `short:"p" optional:"" help:"Private key file. Defaults to the XDG data directory." placeholder:"FILE"`
	Public  string `short:"P" optional:"" help:"Public key file. Defaults to the XDG data directory." placeholder:"FILE"`
	Force   bool   `short:"f" help:"Overwrite existing key files."`
}

// Executes the keys generate command.
func (c *KeysGenerateCmd) Run(ctx context.Context) error {
	privPath, pubPath := c.Private, c.Public
	if privPath == "" {
		privPath = paths.DefaultPrivateKey()
	}
	if pubPath == "" {
		pubPath = paths.DefaultPublicKey()
	}

	pub, priv, err := sign.GenerateKeyPair()
	if err != nil {
		return err
	}
	if err := sign.SaveKeyPair(priv, privPath, pubPath, c.Force); err != nil {
		return err
	}

	fmt.Printf("private key: %s\n", privPath)
	fmt.Printf("public key:  %s\n", pubPath)
	fmt.Printf("fingerprint: %s\n", sign.Fingerprint(pub))
	return nil
}

// Represents the 'paxbuild keys export' command.
type KeysExportCmd struct {
	Private string `short:"p" required:"" help:"Private key file." placeholder:"FILE"`
	Public  string `short:"P" required:"" help:"Destination for the public key." placeholder:"FILE"`
}

// Executes the keys export command.
func (c *KeysExportCmd) Run(ctx context.Context) error {
	if err := sign.ExportPublicKey(c.Private, c.Public); err != nil {
		return err
	}
	fmt.Println(c.Public)
	return nil
}

// Represents the 'paxbuild keys info' command.
type KeysInfoCmd struct {
	Key  string `arg:"" help:"Key file to inspect." placeholder:"FILE"`
	Type string `short:"t" enum:"private,public" default:"public" help:"Key type (private or public)."`
}

// Executes the keys info command. Private keys are fingerprinted by
// their derived public key.
func (c *KeysInfoCmd) Run(ctx context.Context) error {
	var pub ed25519.PublicKey

	switch c.Type {
	case "private":
		priv, err := sign.LoadPrivateKey(c.Key)
		if err != nil {
			return err
		}
		pub = priv.Public().(ed25519.PublicKey)
	default:
		var err error
		pub, err = sign.LoadPublicKey(c.Key)
		if err != nil {
			return err
		}
	}

	fmt.Printf("fingerprint: %s\n", sign.Fingerprint(pub))
	return nil
}
