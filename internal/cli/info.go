package cli

import (
	"context"
	"fmt"
	"path/filepath"
	"slices"
	"strings"

	"github.com/paxhq/paxbuild/internal/pax"
	"github.com/paxhq/paxbuild/internal/recipe"
)

// File list entries shown before truncation.
const maxListedFiles = 20

// Represents the 'paxbuild info' command.
type InfoCmd struct {
	Package string `arg:"" help:"Package archive to inspect." placeholder:"PACKAGE"`
}

// Executes the info command.
func (c *InfoCmd) Run(ctx context.Context) error {
	pkg, err := pax.Open(c.Package)
	if err != nil {
		return err
	}

	meta, err := pkg.LoadMetadata()
	if err != nil {
		return err
	}
	size, err := pkg.Size()
	if err != nil {
		return err
	}
	hash, err := pkg.Hash()
	if err != nil {
		return err
	}

	fmt.Printf("package:      %s\n", meta.Name)
	fmt.Printf("version:      %s\n", meta.Version)
	fmt.Printf("architecture: %s\n", strings.Join(meta.Arch, ", "))
	fmt.Printf("description:  %s\n", meta.Description)
	if len(meta.Dependencies) > 0 {
		fmt.Printf("dependencies: %s\n", strings.Join(meta.Dependencies, ", "))
	}
	if len(meta.RuntimeDependencies) > 0 {
		fmt.Printf("runtime deps: %s\n", strings.Join(meta.RuntimeDependencies, ", "))
	}
	fmt.Printf("provides:     %s\n", strings.Join(meta.Provides, ", "))
	if len(meta.Conflicts) > 0 {
		fmt.Printf("conflicts:    %s\n", strings.Join(meta.Conflicts, ", "))
	}
	fmt.Printf("size:         %d bytes\n", size)
	fmt.Printf("sha256:       %s\n", hash)

	if name, version, arch, err := recipe.ParseFilename(filepath.Base(c.Package)); err == nil {
		if name != meta.Name || version != meta.Version || !slices.Contains(meta.Arch, arch) {
			fmt.Printf("filename:     %s-%s-%s (differs from metadata)\n", name, version, arch)
		}
	}

	fmt.Printf("files:        %d\n", len(meta.Files))
	for i, f := range meta.Files {
		if i == maxListedFiles {
			fmt.Printf("  ... and %d more\n", len(meta.Files)-maxListedFiles)
			break
		}
		fmt.Printf("  %s\n", f)
	}

	return nil
}
