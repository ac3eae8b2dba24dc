package recipe

import (
	"fmt"
	"strings"
	"unicode"
)

// File extension for package archives.
const Extension = ".pax"

// Longest segment that is still considered a candidate architecture tag
// when parsing a filename.
const maxArchSegment = 20

// Returns the architecture-less package filename, "name-version.pax".
//
// This is the accepted legacy shape for single-architecture packages; new
// archives are named with [Recipe.FilenameForArch].
func (r *Recipe) Filename() string {
	return r.PackageID() + Extension
}

// Returns the canonical package filename for one architecture,
// "name-version-arch.pax".
func (r *Recipe) FilenameForArch(arch string) string {
	return r.PackageID() + "-" + arch + Extension
}

// Recovers (name, version, arch) from a canonical package filename.
//
// The filename grammar has no reserved separator, so parsing is a heuristic:
// segments are scanned from the right for the first one that looks like a
// supported architecture tag, then leftward for the segment where the
// version starts (the first, from the right, that contains a dot or is
// purely numeric). Names or versions whose own trailing segments look like
// architecture tags or versions are inherently ambiguous and may parse
// differently than they were constructed; this is a documented limitation
// of the format, not corrected here.
func ParseFilename(filename string) (name, version, arch string, err error) {
	if !strings.HasSuffix(filename, Extension) {
		return "", "", "", fmt.Errorf("%w: %q does not end with %s", ErrFilename, filename, Extension)
	}

	parts := strings.Split(strings.TrimSuffix(filename, Extension), "-")
	if len(parts) < 3 {
		return "", "", "", fmt.Errorf("%w: %q has too few segments", ErrFilename, filename)
	}

	archIndex := -1
	for i := len(parts) - 1; i >= 0; i-- {
		if archSegment(parts[i]) {
			archIndex = i
			break
		}
	}
	if archIndex <= 0 {
		return "", "", "", fmt.Errorf("%w: no architecture segment in %q", ErrFilename, filename)
	}

	versionStart := archIndex
	for i := archIndex - 1; i >= 0; i-- {
		if versionSegment(parts[i]) {
			versionStart = i
			break
		}
	}

	name = strings.Join(parts[:versionStart], "-")
	version = strings.Join(parts[versionStart:archIndex], "-")
	arch = parts[archIndex]

	if !strings.ContainsFunc(version, unicode.IsDigit) {
		return "", "", "", fmt.Errorf("%w: no version segment in %q", ErrFilename, filename)
	}

	return name, version, arch, nil
}

// Whether a filename segment is a plausible architecture tag: short,
// alphanumeric/underscore only, no embedded dot, and in the whitelist.
func archSegment(s string) bool {
	if len(s) == 0 || len(s) > maxArchSegment || strings.Contains(s, ".") {
		return false
	}
	for _, c := range s {
		if !unicode.IsLetter(c) && !unicode.IsDigit(c) && c != '_' {
			return false
		}
	}
	return SupportedArch(s)
}

// Whether a filename segment marks the start of a version: contains a dot
// or is purely numeric.
func versionSegment(s string) bool {
	if strings.Contains(s, ".") {
		return true
	}
	if s == "" {
		return false
	}
	for _, c := range s {
		if !unicode.IsDigit(c) {
			return false
		}
	}
	return true
}
