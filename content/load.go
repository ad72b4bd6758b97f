package content

import (
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// Load reads a YAML content file over the defaults. Keys missing from the
// file keep their default value; a missing file yields the defaults.
func Load(path string) (Site, error) {
	site := Default()
	if path == "" {
		return site, nil
	}

	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return site, nil
		}
		return Site{}, fmt.Errorf("open content: %w", err)
	}
	defer f.Close()

	if err := yaml.NewDecoder(f).Decode(&site); err != nil {
		if errors.Is(err, io.EOF) {
			return Default(), nil
		}
		return Site{}, fmt.Errorf("decode content %s: %w", path, err)
	}
	return site, nil
}

// Dump writes site as YAML, ready to be edited and loaded back.
func Dump(w io.Writer, site Site) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(site); err != nil {
		return fmt.Errorf("encode content: %w", err)
	}
	return enc.Close()
}
