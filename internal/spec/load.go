package spec

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// Load reads an inspection document from path, or from stdin when path is "-".
func Load(path string) (Spec, error) {
	var (
		data []byte
		err  error
	)
	if path == "-" {
		data, err = io.ReadAll(os.Stdin)
	} else {
		data, err = os.ReadFile(path)
	}
	if err != nil {
		return Spec{}, fmt.Errorf("read spec: %w", err)
	}
	return Parse(data)
}

// Parse decodes a single YAML document. Unknown fields are rejected so that a
// misspelled key does not silently fall back to a default strategy.
func Parse(data []byte) (Spec, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	var s Spec
	if err := dec.Decode(&s); err != nil {
		if errors.Is(err, io.EOF) {
			return Spec{}, errors.New("parse spec: empty document")
		}
		return Spec{}, fmt.Errorf("parse spec: %w", err)
	}
	return s, nil
}
