package relcut

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Manifest lists the repositories a multi-repo run operates on, in order.
type Manifest struct {
	Repositories []string `yaml:"repositories"`
}

// LoadManifest reads and validates a YAML repository manifest. Paths are
// cleaned; an empty or missing repository list is an error.
func LoadManifest(path string) (Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Manifest{}, fmt.Errorf("reading manifest %s: %w", path, err)
	}
	var m Manifest
	dec := yaml.NewDecoder(strings.NewReader(string(data)))
	dec.KnownFields(true)
	if err := dec.Decode(&m); err != nil {
		return Manifest{}, fmt.Errorf("decoding manifest %s: %w", path, err)
	}
	if len(m.Repositories) == 0 {
		return Manifest{}, fmt.Errorf("manifest %s lists no repositories", path)
	}
	for i, repo := range m.Repositories {
		repo = strings.TrimSpace(repo)
		if repo == "" {
			return Manifest{}, fmt.Errorf("manifest %s: empty repository path at index %d", path, i)
		}
		m.Repositories[i] = filepath.Clean(repo)
	}
	return m, nil
}
