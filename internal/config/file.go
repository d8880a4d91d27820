package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml"
)

// File is the on-disk layout: a [world] table and a [preview] table.
type File struct {
	World   WorldGen `toml:"world"`
	Preview Preview  `toml:"preview"`
}

// Default returns a File filled with defaults.
func Default() File {
	return File{World: DefaultWorldGen(), Preview: DefaultPreview()}
}

// Load reads path. A missing file yields the defaults; fields absent from
// the file keep their default values.
func Load(path string) (File, error) {
	contents, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return Default(), nil
		}
		return File{}, fmt.Errorf("read config: %w", err)
	}
	return Decode(contents)
}

// Decode parses a TOML document over the defaults and validates the result.
func Decode(contents []byte) (File, error) {
	f := Default()
	if len(contents) != 0 {
		if err := toml.Unmarshal(contents, &f); err != nil {
			return File{}, fmt.Errorf("decode config: %w", err)
		}
	}
	if err := f.World.Validate(); err != nil {
		return File{}, err
	}
	return f, nil
}

// Encode renders f as TOML.
func Encode(f File) ([]byte, error) {
	encoded, err := toml.Marshal(f)
	if err != nil {
		return nil, fmt.Errorf("encode config: %w", err)
	}
	return encoded, nil
}

// Save writes f to path, creating parent directories as needed.
func Save(path string, f File) error {
	dir := filepath.Dir(path)
	if dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0777); err != nil {
			return fmt.Errorf("create config directory: %w", err)
		}
	}
	encoded, err := Encode(f)
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, encoded, 0644); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}
