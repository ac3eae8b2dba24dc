package build

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"slices"

	"github.com/paxhq/paxbuild/internal/pax"
	"github.com/paxhq/paxbuild/internal/paths"
	"github.com/paxhq/paxbuild/internal/recipe"
	"github.com/paxhq/paxbuild/internal/source"
)

// Options configures a pipeline run.
type Options struct {
	Recipe        *recipe.Recipe // Recipe to build. Validated before anything else runs.
	Output        string         // Directory for finished archives. Created if absent.
	Architectures []string       // Subset of the recipe's list. Empty means all of it.
}

// Returned after every architecture built and packaged successfully.
type Result struct {
	Archives      []string // Final archive paths inside the output directory.
	Architectures []string // Architectures built, in order.
}

// Runs the full pipeline: validate, acquire source once, build and
// package each architecture, then copy the finished archives to the
// output directory.
//
// The temporary workspace is removed on success and on error. Archives
// are staged inside it and reach the output directory only when every
// architecture succeeded, so a failing architecture leaves no partial
// output behind.
func Run(ctx context.Context, opts Options) (*Result, error) {
	r := opts.Recipe
	if err := r.Validate(); err != nil {
		return nil, err
	}

	arches, err := resolveArchitectures(r, opts.Architectures)
	if err != nil {
		return nil, err
	}

	workspace, err := os.MkdirTemp("", "paxbuild-")
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuild, err)
	}
	defer os.RemoveAll(workspace)

	slog.Info("building package", "package", r.PackageID(), "architectures", arches)

	sourceRoot, err := source.New(workspace).Acquire(ctx, r.Source, r.Hash)
	if err != nil {
		return nil, err
	}

	staging := filepath.Join(workspace, "dist")
	if err := os.MkdirAll(staging, 0o755); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuild, err)
	}

	var staged []string
	for _, arch := range arches {
		archivePath := filepath.Join(staging, r.FilenameForArch(arch))
		if err := buildArch(ctx, r, arch, workspace, sourceRoot, archivePath); err != nil {
			return nil, err
		}
		staged = append(staged, archivePath)
	}

	if err := os.MkdirAll(opts.Output, paths.DefaultDirMode); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuild, err)
	}

	result := &Result{Architectures: arches}
	for _, path := range staged {
		dest := filepath.Join(opts.Output, filepath.Base(path))
		if err := copyFile(path, dest); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrBuild, err)
		}
		result.Archives = append(result.Archives, dest)
	}

	slog.Info("build finished", "package", r.PackageID(), "archives", len(result.Archives))
	return result, nil
}

// Builds and packages one architecture against the shared source root.
func buildArch(ctx context.Context, r *recipe.Recipe, arch, workspace, sourceRoot, archivePath string) error {
	buildDir := filepath.Join(workspace, "build-"+arch)
	installRoot := filepath.Join(workspace, "install-"+arch)
	for _, dir := range []string{buildDir, installRoot} {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("%w: %w", ErrBuild, err)
		}
	}

	slog.Info("running build script", "package", r.PackageID(), "arch", arch)

	res, err := runScript(ctx, arch, r.BuildScript(), sourceRoot, []string{
		"PAX_BUILD_ROOT=" + installRoot,
		"PAX_PACKAGE_NAME=" + r.Name,
		"PAX_PACKAGE_VERSION=" + r.Version,
		"PAX_ARCH=" + arch,
		"PAX_TARGET_ARCH=" + arch,
		"PAX_SOURCE_DIR=" + sourceRoot,
		"PAX_BUILD_DIR=" + buildDir,
	})
	if err != nil {
		return err
	}

	if res.ExitCode != 0 {
		if res.Stdout != "" {
			slog.Error("build script stdout", "arch", arch, "output", res.Stdout)
		}
		if res.Stderr != "" {
			slog.Error("build script stderr", "arch", arch, "output", res.Stderr)
		}
		return &ScriptError{Arch: arch, ExitCode: res.ExitCode, Stdout: res.Stdout, Stderr: res.Stderr}
	}

	slog.Debug("build script finished", "arch", arch)
	return pax.Assemble(r, arch, installRoot, archivePath)
}

// Resolves the architecture list for a run: the recipe's own list by
// default, or a requested subset of it.
func resolveArchitectures(r *recipe.Recipe, requested []string) ([]string, error) {
	if len(requested) == 0 {
		return r.Arch, nil
	}

	for _, arch := range requested {
		if !recipe.SupportedArch(arch) {
			return nil, fmt.Errorf("%w: unsupported architecture %q", ErrBuild, arch)
		}
		if !slices.Contains(r.Arch, arch) {
			return nil, fmt.Errorf("%w: architecture %q is not listed by the recipe", ErrBuild, arch)
		}
	}
	return requested, nil
}

// Copies a finished archive to its destination path.
func copyFile(src, dest string) error {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := os.Create(dest)
	if err != nil {
		return err
	}

	if _, err := io.Copy(out, in); err != nil {
		out.Close()
		return err
	}
	return out.Close()
}
