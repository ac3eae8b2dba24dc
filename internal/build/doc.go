// Package build orchestrates the recipe-to-package pipeline.
//
// A run validates the recipe, acquires the source once, then builds each
// requested architecture sequentially: the build script executes in an
// embedded shell against architecture-namespaced build and install roots,
// and the install root is assembled into a .pax archive. Archives are
// staged inside the temporary workspace and copied to the output
// directory only after every architecture has succeeded, so a failing
// architecture leaves no partial output behind.
//
// Example usage:
//
//	result, err := build.Run(ctx, build.Options{
//	    Recipe: r,
//	    Output: "dist",
//	})
//	if err != nil {
//	    return err
//	}
package build
