package build

import "errors"

var (
	// ErrBuild indicates a failure in pipeline orchestration outside the
	// script itself.
	ErrBuild = errors.New("build failed")

	// ErrScriptFailed indicates the build script exited non-zero.
	ErrScriptFailed = errors.New("build script failed")
)
