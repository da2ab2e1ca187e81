package assets

import (
	"embed"
	"fmt"
)

//go:embed data/*.yaml
var projectAssets embed.FS

// DefaultConfig is the name of the embedded default configuration.
const DefaultConfig = "cellular.yaml"

// ReadFile returns an embedded data file by name.
func ReadFile(name string) ([]byte, error) {
	data, err := projectAssets.ReadFile("data/" + name)
	if err != nil {
		return nil, fmt.Errorf("read embedded asset %q: %w", name, err)
	}
	return data, nil
}
