package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// ProjectFileName is the per-repository config file. Teams commit it next to
// their application code so the CLI points at the right Lagoon instance.
const ProjectFileName = ".lagoon.yml"

// ProjectFile is the subset of .lagoon.yml the CLI cares about.
type ProjectFile struct {
	// API overrides the GraphQL endpoint for this repository.
	API string `yaml:"api"`
	// Project is the default project name for project-scoped commands.
	Project string `yaml:"project"`
}

// LoadProjectFile parses the .lagoon.yml at path.
func LoadProjectFile(path string) (*ProjectFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var pf ProjectFile
	if err := yaml.Unmarshal(data, &pf); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	return &pf, nil
}

// FindProjectFile walks up from dir looking for a .lagoon.yml, the same way
// git finds its repository root. Returns os.ErrNotExist when no file is
// found before the filesystem root.
func FindProjectFile(dir string) (string, error) {
	for {
		candidate := filepath.Join(dir, ProjectFileName)
		if _, err := os.Stat(candidate); err == nil {
			return candidate, nil
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return "", os.ErrNotExist
		}
		dir = parent
	}
}
