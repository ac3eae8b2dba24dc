package cli

import (
	"context"
	"fmt"

	"github.com/paxhq/paxbuild/internal/build"
	"github.com/paxhq/paxbuild/internal/recipe"
)

// Represents the 'paxbuild build' command.
type BuildCmd struct {
	Recipe string   `arg:"" help:"Recipe file or URL." placeholder:"RECIPE"`
	Output string   `short:"o" default:"." help:"Output directory for finished archives." placeholder:"DIR"`
	Arch   []string `short:"a" help:"Architectures to build, a subset of the recipe's list. Defaults to all of it." placeholder:"ARCH"`
}

// Executes the build command.
func (c *BuildCmd) Run(ctx context.Context) error {
	r, err := recipe.Load(ctx, c.Recipe)
	if err != nil {
		return err
	}

	result, err := build.Run(ctx, build.Options{
		Recipe:        r,
		Output:        c.Output,
		Architectures: c.Arch,
	})
	if err != nil {
		return err
	}

	for _, archive := range result.Archives {
		fmt.Println(archive)
	}
	return nil
}
