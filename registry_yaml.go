// registry_yaml.go — load a user-extras registry from a YAML file.
//
// The file describes additional units, aliases and prefixes that are
// consulted after the built-in catalogues:
//
//	units:
//	  - symbol: furlong
//	    dim: {l: 1}
//	    scale: 201.168
//	  - symbol: R            # Rankine
//	    dim: {th: 1}
//	    scale: 0.5555555555555556
//	aliases:
//	  - {alias: fur, of: furlong}
//	prefixes:
//	  - {symbol: k, factor: 1e3}
package dim

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

type registryFile struct {
	Units []struct {
		Symbol string         `yaml:"symbol"`
		Dim    map[string]int `yaml:"dim"`
		Scale  float64        `yaml:"scale"`
		Offset float64        `yaml:"offset"`
	} `yaml:"units"`
	Aliases []struct {
		Alias string `yaml:"alias"`
		Of    string `yaml:"of"`
	} `yaml:"aliases"`
	Prefixes []struct {
		Symbol string  `yaml:"symbol"`
		Factor float64 `yaml:"factor"`
	} `yaml:"prefixes"`
}

var yamlAxes = map[string]int{
	"l": AxisLength, "m": AxisMass, "t": AxisTime, "i": AxisCurrent,
	"th": AxisTemperature, "n": AxisAmount, "j": AxisLuminosity,
}

// LoadRegistryFile reads a user registry from path.
func LoadRegistryFile(path string) (*Registry, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return ParseRegistry(data, path)
}

// ParseRegistry builds a registry from YAML bytes. The name is used in
// error messages only.
func ParseRegistry(data []byte, name string) (*Registry, error) {
	var rf registryFile
	if err := yaml.Unmarshal(data, &rf); err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}

	r := NewRegistry(name)
	for _, u := range rf.Units {
		if u.Symbol == "" {
			return nil, fmt.Errorf("%s: unit with empty symbol", name)
		}
		if u.Scale <= 0 {
			return nil, fmt.Errorf("%s: unit %s: scale must be positive", name, u.Symbol)
		}
		var d Dimension
		for axis, exp := range u.Dim {
			idx, ok := yamlAxes[axis]
			if !ok {
				return nil, fmt.Errorf("%s: unit %s: unknown axis %q", name, u.Symbol, axis)
			}
			d[idx] = exp
		}
		r.AddUnit(Unit{Symbol: u.Symbol, Dim: d, Scale: u.Scale, Offset: u.Offset})
	}
	for _, a := range rf.Aliases {
		if _, ok := r.FindExact(a.Of); !ok {
			return nil, fmt.Errorf("%s: alias %s points at unknown unit %s", name, a.Alias, a.Of)
		}
		r.AddAlias(a.Alias, a.Of)
	}
	for _, p := range rf.Prefixes {
		if p.Factor <= 0 {
			return nil, fmt.Errorf("%s: prefix %s: factor must be positive", name, p.Symbol)
		}
		r.AddPrefix(p.Symbol, p.Factor)
	}
	return r, nil
}
