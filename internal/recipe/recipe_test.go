package recipe

import (
	"errors"
	"testing"
)

func TestParse(t *testing.T) {
	text := []byte(`
name: test-package
version: 1.0.0
description: A test package
source: https://example.com/test-1.0.0.tar.gz
dependencies:
  - libc>=2.31
build: |
  make && make install DESTDIR=$PAX_BUILD_ROOT
`)

	r, err := Parse(text)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if r.Name != "test-package" {
		t.Errorf("name = %q, want test-package", r.Name)
	}
	if r.Version != "1.0.0" {
		t.Errorf("version = %q, want 1.0.0", r.Version)
	}
	if len(r.Dependencies) != 1 || r.Dependencies[0] != "libc>=2.31" {
		t.Errorf("dependencies = %v, want [libc>=2.31]", r.Dependencies)
	}
	if r.Build == "" {
		t.Error("build script missing after parse")
	}
}

func TestParseDefaults(t *testing.T) {
	r, err := Parse([]byte("name: hello\nversion: \"1.0\"\ndescription: d\nsource: https://example.com/h.tar.gz\n"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := DefaultArchitectures()
	if len(r.Arch) != len(want) {
		t.Fatalf("arch = %v, want %v", r.Arch, want)
	}
	for i := range want {
		if r.Arch[i] != want[i] {
			t.Fatalf("arch = %v, want %v", r.Arch, want)
		}
	}
	if len(r.Dependencies) != 0 || len(r.Provides) != 0 {
		t.Errorf("list fields not empty by default: deps=%v provides=%v", r.Dependencies, r.Provides)
	}
}

func TestParseUnknownFieldsIgnored(t *testing.T) {
	_, err := Parse([]byte("name: hello\nversion: \"1.0\"\ndescription: d\nsource: s\nmaintainer: nobody\n"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestParseInvalidYAML(t *testing.T) {
	_, err := Parse([]byte("name: [unterminated"))
	if !errors.Is(err, ErrParse) {
		t.Fatalf("err = %v, want ErrParse", err)
	}
}

func TestValidate(t *testing.T) {
	valid := Recipe{
		Name:        "test",
		Version:     "1.0.0",
		Description: "Test",
		Source:      "https://example.com/test.tar.gz",
		Arch:        DefaultArchitectures(),
	}

	tests := []struct {
		name    string
		mutate  func(*Recipe)
		wantErr bool
	}{
		{
			name:   "valid recipe",
			mutate: func(r *Recipe) {},
		},
		{
			name:    "empty name",
			mutate:  func(r *Recipe) { r.Name = "" },
			wantErr: true,
		},
		{
			name:    "empty version",
			mutate:  func(r *Recipe) { r.Version = "" },
			wantErr: true,
		},
		{
			name:    "empty description",
			mutate:  func(r *Recipe) { r.Description = "" },
			wantErr: true,
		},
		{
			name:    "empty source",
			mutate:  func(r *Recipe) { r.Source = "" },
			wantErr: true,
		},
		{
			name:    "invalid name characters",
			mutate:  func(r *Recipe) { r.Name = "bad name!" },
			wantErr: true,
		},
		{
			name:   "underscore and dash in name",
			mutate: func(r *Recipe) { r.Name = "my_pkg-2" },
		},
		{
			name:    "version without digits",
			mutate:  func(r *Recipe) { r.Version = "latest" },
			wantErr: true,
		},
		{
			name:    "unsupported architecture",
			mutate:  func(r *Recipe) { r.Arch = []string{"vax"} },
			wantErr: true,
		},
		{
			name:   "all supported architectures",
			mutate: func(r *Recipe) { r.Arch = []string{"x86_64", "aarch64", "armv7", "i686", "riscv64"} },
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := valid
			tt.mutate(&r)
			err := r.Validate()
			if tt.wantErr {
				if !errors.Is(err, ErrValidation) {
					t.Fatalf("err = %v, want ErrValidation", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
		})
	}
}

func TestBuildScript(t *testing.T) {
	r := Recipe{Build: "make"}
	if got := r.BuildScript(); got != "make" {
		t.Errorf("build script = %q, want make", got)
	}

	r.Build = ""
	if got := r.BuildScript(); got != defaultBuildScript {
		t.Errorf("build script = %q, want default", got)
	}
}

func TestPackageID(t *testing.T) {
	r := Recipe{Name: "test-package", Version: "1.0.0"}
	if got := r.PackageID(); got != "test-package-1.0.0" {
		t.Errorf("package id = %q, want test-package-1.0.0", got)
	}
}

func TestMarshalRoundTrip(t *testing.T) {
	r := Recipe{
		Name:        "hello",
		Version:     "1.0.0",
		Description: "greeter",
		Source:      "https://example.com/hello-1.0.0.tar.gz",
		Arch:        []string{"x86_64"},
		Provides:    []string{"hello"},
		Build:       "make",
	}

	out, err := r.Marshal()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	parsed, err := Parse(out)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if parsed.Name != r.Name || parsed.Version != r.Version || parsed.Build != r.Build {
		t.Errorf("round trip = %+v, want %+v", parsed, r)
	}
}
