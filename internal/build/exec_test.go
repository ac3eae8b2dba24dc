package build

import (
	"context"
	"errors"
	"sort"
	"strings"
	"testing"
)

func TestRunScriptCapturesStreams(t *testing.T) {
	res, err := runScript(context.Background(), "x86_64", "echo out; echo err >&2", t.TempDir(), nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.ExitCode != 0 {
		t.Errorf("exit code = %d, want 0", res.ExitCode)
	}
	if res.Stdout != "out\n" {
		t.Errorf("stdout = %q, want out", res.Stdout)
	}
	if res.Stderr != "err\n" {
		t.Errorf("stderr = %q, want err", res.Stderr)
	}
}

func TestRunScriptNonZeroExit(t *testing.T) {
	res, err := runScript(context.Background(), "x86_64", "echo before; exit 7", t.TempDir(), nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.ExitCode != 7 {
		t.Errorf("exit code = %d, want 7", res.ExitCode)
	}
	if res.Stdout != "before\n" {
		t.Errorf("stdout = %q, want output before the exit", res.Stdout)
	}
}

func TestRunScriptSyntaxError(t *testing.T) {
	_, err := runScript(context.Background(), "aarch64", "if then fi (", t.TempDir(), nil)
	if !errors.Is(err, ErrScriptFailed) {
		t.Fatalf("err = %v, want ErrScriptFailed", err)
	}

	var scriptErr *ScriptError
	if !errors.As(err, &scriptErr) {
		t.Fatalf("err = %v, want *ScriptError", err)
	}
	if scriptErr.Arch != "aarch64" {
		t.Errorf("arch = %q, want aarch64", scriptErr.Arch)
	}
	if scriptErr.ExitCode != 2 {
		t.Errorf("exit code = %d, want 2", scriptErr.ExitCode)
	}
	if scriptErr.Stderr == "" {
		t.Error("parser message not attached")
	}
}

func TestRunScriptOverrides(t *testing.T) {
	res, err := runScript(context.Background(), "x86_64", "echo $GREETING", t.TempDir(), []string{"GREETING=hello"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.Stdout != "hello\n" {
		t.Errorf("stdout = %q, want override value", res.Stdout)
	}
}

func TestRunScriptWorkingDirectory(t *testing.T) {
	dir := t.TempDir()
	res, err := runScript(context.Background(), "x86_64", "pwd", dir, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if strings.TrimSpace(res.Stdout) != dir {
		t.Errorf("pwd = %q, want %q", strings.TrimSpace(res.Stdout), dir)
	}
}

func TestMergeEnv(t *testing.T) {
	tests := []struct {
		name      string
		base      []string
		overrides []string
		want      []string
	}{
		{
			name:      "override wins",
			base:      []string{"A=1", "B=2"},
			overrides: []string{"A=9"},
			want:      []string{"A=9", "B=2"},
		},
		{
			name:      "disjoint union",
			base:      []string{"A=1"},
			overrides: []string{"B=2"},
			want:      []string{"A=1", "B=2"},
		},
		{
			name: "empty overrides",
			base: []string{"A=1"},
			want: []string{"A=1"},
		},
		{
			name:      "value containing equals",
			base:      []string{"A=x=y"},
			overrides: nil,
			want:      []string{"A=x=y"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := mergeEnv(tt.base, tt.overrides)
			sort.Strings(got)
			sort.Strings(tt.want)

			if len(got) != len(tt.want) {
				t.Fatalf("len = %d, want %d\ngot:  %v\nwant: %v", len(got), len(tt.want), got, tt.want)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("merged = %v, want %v", got, tt.want)
				}
			}
		})
	}
}
