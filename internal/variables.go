package internal

import (
	"fmt"
	"runtime"
	"strings"
)

// Tool name, used for CLI naming and path derivation.
const Name = "paxbuild"

const (

	// Placeholder for build metadata that was never set.
	defaultUndefined = "(undefined)"

	// Version string reported by local (non-pipeline) builds.
	defaultLocalBuild = "(local)"

	// Branch name omitted from version strings.
	mainBranch = "main"
)

var (
	version   = "" // Release version (e.g., "1.2.3")
	stage     = "" // Git branch or release stage (e.g., "main", "beta")
	gitCommit = "" // Git commit hash

	rawQuiet   = "false" // Default for quiet mode
	rawDebug   = "false" // Default for debug logging
	rawVerbose = "false" // Default for verbose logging
)

// Returns the release version with any "v" prefix stripped, or
// "(undefined)" when not set via linker flags.
func Version() string {
	v := strings.TrimSpace(version)
	if v == "" {
		return defaultUndefined
	}

	v = strings.ToLower(v)
	return strings.TrimPrefix(v, "v")
}

// Returns the release stage, normally the git branch the build came from.
func Stage() string {
	s := strings.TrimSpace(stage)
	if s == "" {
		return defaultUndefined
	}
	return strings.ToLower(s)
}

// Returns the git commit hash the build came from.
func GitCommit() string {
	c := strings.TrimSpace(gitCommit)
	if c == "" {
		return defaultUndefined
	}
	return c
}

// Returns the architecture this binary was built for.
func Arch() string {
	return runtime.GOARCH
}

// Reports whether this is a local build. Pipeline builds set version,
// stage, and commit via linker flags; a missing one marks the build
// local.
func IsLocal() bool {
	return strings.TrimSpace(version) == "" ||
		strings.TrimSpace(gitCommit) == "" ||
		strings.TrimSpace(stage) == ""
}

// Returns the full version string, "<version>[+stage] <commit> [<arch>]",
// or "(local)" for local builds. The main branch stage is omitted.
func VersionString() string {
	if IsLocal() {
		return defaultLocalBuild
	}

	s := Stage()
	if s == mainBranch {
		s = ""
	} else {
		s = "+" + s
	}

	return fmt.Sprintf("%s%s %s [%s]", Version(), s, GitCommit(), Arch())
}
