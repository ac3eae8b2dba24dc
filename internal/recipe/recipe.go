package recipe

import (
	"fmt"
	"slices"
	"strings"
	"unicode"

	"github.com/goccy/go-yaml"
)

// Architectures a recipe is allowed to target.
var supportedArchitectures = []string{"x86_64", "aarch64", "armv7", "i686", "riscv64"}

// Build script used when a recipe does not declare one. Covers the common
// autotools case, installing into the package's install root.
const defaultBuildScript = "./configure --prefix=/usr && make -j$(nproc) && make install DESTDIR=$PAX_BUILD_ROOT"

// Describes how to obtain, build, and package one piece of software.
//
// A recipe is parsed from a YAML document, validated once, and treated as
// read-only for the rest of the pipeline. Unknown document fields are
// ignored; absent list fields stay empty and the architecture list defaults
// to the common pair.
type Recipe struct {
	Name        string `yaml:"name"`           // Package name.
	Version     string `yaml:"version"`        // Package version.
	Description string `yaml:"description"`    // Human-readable summary.
	Source      string `yaml:"source"`         // Source archive URL.
	Hash        string `yaml:"hash,omitempty"` // Expected SHA-256 of the source, optional.

	Arch []string `yaml:"arch"` // Target architectures. Defaults to x86_64 and aarch64.

	Dependencies        []string `yaml:"dependencies"`         // Build-time dependencies, recorded only.
	RuntimeDependencies []string `yaml:"runtime_dependencies"` // Runtime dependencies, recorded only.
	Provides            []string `yaml:"provides"`             // Capabilities this package provides.
	Conflicts           []string `yaml:"conflicts"`            // Packages this one conflicts with.

	Build     string `yaml:"build,omitempty"`     // Build script body.
	Install   string `yaml:"install,omitempty"`   // Post-install script body.
	Uninstall string `yaml:"uninstall,omitempty"` // Pre-uninstall script body.
}

// Parses a recipe from YAML text.
//
// Missing optional fields take their documented defaults. The result is not
// validated; call [Recipe.Validate] before building.
func Parse(text []byte) (*Recipe, error) {
	var r Recipe
	if err := yaml.Unmarshal(text, &r); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrParse, err)
	}

	if len(r.Arch) == 0 {
		r.Arch = DefaultArchitectures()
	}

	return &r, nil
}

// Serializes the recipe back to YAML.
func (r *Recipe) Marshal() ([]byte, error) {
	out, err := yaml.Marshal(r)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrParse, err)
	}
	return out, nil
}

// Checks the recipe's invariants without mutating it.
//
// Name, version, description, and source must be non-empty; the name is
// restricted to alphanumerics, dashes, and underscores; the version must
// contain at least one digit; every listed architecture must be supported.
// The first violation is reported and checking stops.
func (r *Recipe) Validate() error {
	switch {
	case r.Name == "":
		return fmt.Errorf("%w: package name cannot be empty", ErrValidation)
	case r.Version == "":
		return fmt.Errorf("%w: package version cannot be empty", ErrValidation)
	case r.Description == "":
		return fmt.Errorf("%w: package description cannot be empty", ErrValidation)
	case r.Source == "":
		return fmt.Errorf("%w: package source cannot be empty", ErrValidation)
	}

	if !validName(r.Name) {
		return fmt.Errorf("%w: package name %q contains invalid characters (allowed: alphanumeric, dash, underscore)", ErrValidation, r.Name)
	}

	if !strings.ContainsFunc(r.Version, unicode.IsDigit) {
		return fmt.Errorf("%w: package version %q must contain at least one digit", ErrValidation, r.Version)
	}

	for _, arch := range r.Arch {
		if !SupportedArch(arch) {
			return fmt.Errorf("%w: invalid architecture %q (supported: %s)", ErrValidation, arch, strings.Join(supportedArchitectures, ", "))
		}
	}

	return nil
}

// Returns the recipe's build script, or the canonical default when the
// recipe does not declare one.
func (r *Recipe) BuildScript() string {
	if r.Build != "" {
		return r.Build
	}
	return defaultBuildScript
}

// Returns the package identifier, "name-version".
func (r *Recipe) PackageID() string {
	return r.Name + "-" + r.Version
}

// Whether the given architecture tag is in the supported whitelist.
func SupportedArch(arch string) bool {
	return slices.Contains(supportedArchitectures, arch)
}

// Returns the default architecture pair for recipes that do not list any.
func DefaultArchitectures() []string {
	return []string{"x86_64", "aarch64"}
}

// Whether the name consists solely of alphanumerics, dashes, and underscores.
func validName(name string) bool {
	for _, c := range name {
		if !unicode.IsLetter(c) && !unicode.IsDigit(c) && c != '-' && c != '_' {
			return false
		}
	}
	return true
}
