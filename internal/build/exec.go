package build

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"mvdan.cc/sh/v3/expand"
	"mvdan.cc/sh/v3/interp"
	"mvdan.cc/sh/v3/syntax"
)

// ScriptError reports a build script that exited non-zero for one
// architecture, with both captured streams attached.
type ScriptError struct {
	Arch     string
	ExitCode int
	Stdout   string
	Stderr   string
}

func (e *ScriptError) Error() string {
	return fmt.Sprintf("%v: arch %s exited with status %d", ErrScriptFailed, e.Arch, e.ExitCode)
}

func (e *ScriptError) Unwrap() error {
	return ErrScriptFailed
}

// execResult carries the captured streams of a completed script.
type execResult struct {
	ExitCode int
	Stdout   string
	Stderr   string
}

// Runs a shell script in the embedded interpreter with the given working
// directory and environment overrides layered over the process environ.
// A non-zero exit is returned in the result, not as an error. Failures
// before or outside the script's own exit (syntax errors, interpreter
// setup, cancellation) are reported as a ScriptError carrying the
// architecture; syntax errors use exit status 2, the shell convention.
func runScript(ctx context.Context, arch, script, dir string, overrides []string) (*execResult, error) {
	prog, err := syntax.NewParser().Parse(strings.NewReader(script), "build")
	if err != nil {
		return nil, &ScriptError{Arch: arch, ExitCode: 2, Stderr: err.Error()}
	}

	var stdout, stderr bytes.Buffer
	runner, err := interp.New(
		interp.Dir(dir),
		interp.Env(expand.ListEnviron(mergeEnv(os.Environ(), overrides)...)),
		interp.StdIO(nil, &stdout, &stderr),
	)
	if err != nil {
		return nil, &ScriptError{Arch: arch, ExitCode: 1, Stderr: err.Error()}
	}

	result := &execResult{}
	if err := runner.Run(ctx, prog); err != nil {
		var status interp.ExitStatus
		if !errors.As(err, &status) {
			return nil, &ScriptError{Arch: arch, ExitCode: 1, Stdout: stdout.String(), Stderr: err.Error()}
		}
		result.ExitCode = int(status)
	}

	result.Stdout = stdout.String()
	result.Stderr = stderr.String()
	return result, nil
}

// Merges override env vars on top of a base env slice.
func mergeEnv(base, overrides []string) []string {
	merged := make(map[string]string, len(base)+len(overrides))
	for _, entry := range base {
		if k, v, ok := strings.Cut(entry, "="); ok {
			merged[k] = v
		}
	}
	for _, entry := range overrides {
		if k, v, ok := strings.Cut(entry, "="); ok {
			merged[k] = v
		}
	}

	result := make([]string, 0, len(merged))
	for k, v := range merged {
		result = append(result, k+"="+v)
	}
	return result
}
