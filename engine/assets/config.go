package assets

import (
	"errors"
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"
)

// LoadTOML decodes the TOML file at path into v. Keys that do not match a
// field of v are an error, so typos in tuning files surface early. Fields
// absent from the file keep whatever v already holds.
func LoadTOML(path string, v any) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("open %q: %w", path, err)
	}
	defer f.Close()

	if err := toml.NewDecoder(f).DisallowUnknownFields().Decode(v); err != nil {
		var strict *toml.StrictMissingError
		if errors.As(err, &strict) {
			return fmt.Errorf("decode %q: %s", path, strict.String())
		}
		return fmt.Errorf("decode %q: %w", path, err)
	}
	return nil
}

// SaveTOML writes v to path as TOML.
func SaveTOML(path string, v any) error {
	b, err := toml.Marshal(v)
	if err != nil {
		return fmt.Errorf("encode %q: %w", path, err)
	}
	if err := os.WriteFile(path, b, 0o644); err != nil {
		return fmt.Errorf("write %q: %w", path, err)
	}
	return nil
}
