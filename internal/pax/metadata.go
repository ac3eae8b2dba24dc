package pax

import (
	"github.com/goccy/go-yaml"

	"github.com/paxhq/paxbuild/internal/recipe"
)

// Name of the metadata entry inside every archive.
const MetadataFilename = "metadata.yaml"

// Metadata is the self-describing manifest embedded in a .pax archive.
// The arch field is a list even though assembly always writes a single
// element; the document format allows multi-architecture packages.
type Metadata struct {
	Name                string   `yaml:"name"`
	Version             string   `yaml:"version"`
	Description         string   `yaml:"description"`
	Arch                []string `yaml:"arch"`
	Dependencies        []string `yaml:"dependencies"`
	RuntimeDependencies []string `yaml:"runtime_dependencies"`
	Provides            []string `yaml:"provides"`
	Conflicts           []string `yaml:"conflicts"`
	Install             string   `yaml:"install_script,omitempty"`
	Uninstall           string   `yaml:"uninstall_script,omitempty"`
	Files               []string `yaml:"files"`
}

// Derives archive metadata from a recipe for one built architecture.
// Provides defaults to the package's own name when the recipe lists none.
func metadataFor(r *recipe.Recipe, arch string, files []string) *Metadata {
	provides := r.Provides
	if len(provides) == 0 {
		provides = []string{r.Name}
	}

	return &Metadata{
		Name:                r.Name,
		Version:             r.Version,
		Description:         r.Description,
		Arch:                []string{arch},
		Dependencies:        r.Dependencies,
		RuntimeDependencies: r.RuntimeDependencies,
		Provides:            provides,
		Conflicts:           r.Conflicts,
		Install:             r.Install,
		Uninstall:           r.Uninstall,
		Files:               files,
	}
}

// Serializes metadata to YAML.
func (m *Metadata) Marshal() ([]byte, error) {
	return yaml.Marshal(m)
}

// Parses metadata from YAML text.
func ParseMetadata(data []byte) (*Metadata, error) {
	var m Metadata
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, err
	}
	return &m, nil
}
