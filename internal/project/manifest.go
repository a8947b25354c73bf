package project

import (
	"fmt"

	"github.com/BurntSushi/toml"
)

// Manifest is the on-disk `package.toml` describing one package's name and
// module roots. Decoded with BurntSushi/toml, matching the teacher's own
// manifest format.
type Manifest struct {
	Package struct {
		Name string `toml:"name"`
		Root string `toml:"root"`
	} `toml:"package"`
}

// LoadManifest decodes a package manifest file.
func LoadManifest(path string) (Manifest, error) {
	var m Manifest
	if _, err := toml.DecodeFile(path, &m); err != nil {
		return Manifest{}, fmt.Errorf("%s: failed to parse manifest: %w", path, err)
	}
	return m, nil
}
