package cli

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/paxhq/paxbuild/internal/pax"
	"github.com/paxhq/paxbuild/internal/recipe"
)

// Represents the 'paxbuild extract' command.
type ExtractCmd struct {
	Package string `arg:"" help:"Package archive to extract." placeholder:"PACKAGE"`
	Output  string `short:"o" optional:"" help:"Destination directory. Defaults to the archive name without its extension." placeholder:"DIR"`
}

// Executes the extract command.
func (c *ExtractCmd) Run(ctx context.Context) error {
	pkg, err := pax.Open(c.Package)
	if err != nil {
		return err
	}

	dest := c.Output
	if dest == "" {
		dest = strings.TrimSuffix(filepath.Base(c.Package), recipe.Extension)
	}

	if err := pkg.ExtractTo(dest); err != nil {
		return err
	}

	fmt.Println(dest)
	return nil
}
