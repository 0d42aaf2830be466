package catalog

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

type catalogFile struct {
	Variants []Variant `yaml:"variants"`
}

// LoadFile reads variants from a YAML catalog file.
func LoadFile(path string) ([]Variant, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read catalog file: %w", err)
	}
	return Parse(data)
}

// Parse decodes a YAML catalog document.
func Parse(data []byte) ([]Variant, error) {
	var file catalogFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("parse catalog file: %w", err)
	}
	return file.Variants, nil
}

// Open builds a store from path, or from the builtin catalog when path is empty.
func Open(path string) (*Store, error) {
	if path == "" {
		return NewStore(Builtin())
	}
	variants, err := LoadFile(path)
	if err != nil {
		return nil, err
	}
	return NewStore(variants)
}
