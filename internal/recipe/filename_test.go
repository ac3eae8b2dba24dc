package recipe

import (
	"errors"
	"testing"
)

func TestFilename(t *testing.T) {
	r := Recipe{Name: "test-package", Version: "1.0.0"}

	if got := r.Filename(); got != "test-package-1.0.0.pax" {
		t.Errorf("filename = %q, want test-package-1.0.0.pax", got)
	}
	if got := r.FilenameForArch("x86_64"); got != "test-package-1.0.0-x86_64.pax" {
		t.Errorf("filename = %q, want test-package-1.0.0-x86_64.pax", got)
	}
	if got := r.FilenameForArch("aarch64"); got != "test-package-1.0.0-aarch64.pax" {
		t.Errorf("filename = %q, want test-package-1.0.0-aarch64.pax", got)
	}
}

func TestParseFilename(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		pkg     string
		version string
		arch    string
		wantErr bool
	}{
		{
			name:    "hyphenated name",
			input:   "hello-world-1.0.0-x86_64.pax",
			pkg:     "hello-world",
			version: "1.0.0",
			arch:    "x86_64",
		},
		{
			name:    "multi part version",
			input:   "my-package-2.1.3-aarch64.pax",
			pkg:     "my-package",
			version: "2.1.3",
			arch:    "aarch64",
		},
		{
			name:    "version with suffix segment",
			input:   "test-app-1.2.3-beta1-x86_64.pax",
			pkg:     "test-app",
			version: "1.2.3-beta1",
			arch:    "x86_64",
		},
		{
			name:    "simple",
			input:   "zlib-1.3-riscv64.pax",
			pkg:     "zlib",
			version: "1.3",
			arch:    "riscv64",
		},
		{
			name:    "too few segments",
			input:   "invalid.pax",
			wantErr: true,
		},
		{
			name:    "no architecture segment",
			input:   "hello-world-1.0.0.pax",
			wantErr: true,
		},
		{
			name:    "no version segment",
			input:   "hello-world-x86_64.pax",
			wantErr: true,
		},
		{
			name:    "unrecognized architecture",
			input:   "no-version-arch.pax",
			wantErr: true,
		},
		{
			name:    "wrong extension",
			input:   "hello-1.0.0-x86_64.tar",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			name, version, arch, err := ParseFilename(tt.input)
			if tt.wantErr {
				if !errors.Is(err, ErrFilename) {
					t.Fatalf("err = %v, want ErrFilename", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if name != tt.pkg || version != tt.version || arch != tt.arch {
				t.Errorf("parsed (%q, %q, %q), want (%q, %q, %q)", name, version, arch, tt.pkg, tt.version, tt.arch)
			}
		})
	}
}

func TestFilenameParseInverse(t *testing.T) {
	r := Recipe{Name: "my-package", Version: "2.1.3"}
	for _, arch := range []string{"x86_64", "aarch64", "armv7"} {
		name, version, got, err := ParseFilename(r.FilenameForArch(arch))
		if err != nil {
			t.Fatalf("unexpected error for %s: %v", arch, err)
		}
		if name != r.Name || version != r.Version || got != arch {
			t.Errorf("inverse for %s = (%q, %q, %q), want (%q, %q, %q)", arch, name, version, got, r.Name, r.Version, arch)
		}
	}
}
