package depm

import (
	"fmt"
	"os"

	"github.com/pelletier/go-toml"
)

// tomlCrate represents a crate manifest as it is encoded in TOML.
type tomlCrate struct {
	Name    string              `toml:"name"`
	Edition string              `toml:"edition"`
	Cfg     []string            `toml:"cfg"`
	CfgSet  map[string][]string `toml:"cfg-values"`
}

// CrateConfig is a crate's loaded, validated build configuration.
type CrateConfig struct {
	Name    string
	Edition string
	Cfg     *CfgOptions
}

// LoadCrateConfig loads and validates a crate manifest.  `path` is the path
// to the manifest file.
func LoadCrateConfig(path string) (*CrateConfig, error) {
	buff, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("unable to read crate manifest at `%s`: %w", path, err)
	}

	tomlCr := &tomlCrate{}
	if err := toml.Unmarshal(buff, tomlCr); err != nil {
		return nil, fmt.Errorf("error parsing crate manifest at `%s`: %w", path, err)
	}

	if tomlCr.Name == "" {
		return nil, fmt.Errorf("crate manifest at `%s` is missing a crate name", path)
	}

	opts := NewCfgOptions()
	for _, flag := range tomlCr.Cfg {
		opts.Enable(flag)
	}
	for flag, values := range tomlCr.CfgSet {
		for _, value := range values {
			opts.Set(flag, value)
		}
	}

	return &CrateConfig{
		Name:    tomlCr.Name,
		Edition: tomlCr.Edition,
		Cfg:     opts,
	}, nil
}
