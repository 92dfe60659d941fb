// Package typelib serializes a finished library to disk. The dump is a
// schema-versioned msgpack payload; callers are expected to run the
// resolution sweep before saving, since a dump with dangling references is
// useless to every reader.
package typelib

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/vmihailenco/msgpack/v5"

	"girgen/internal/library"
)

// Save writes the library to path, atomically replacing any previous dump.
func Save(lib *library.Library, path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	f, err := os.CreateTemp(filepath.Dir(path), "tmp-*")
	if err != nil {
		return err
	}
	tmp := f.Name()
	defer os.Remove(tmp)

	enc := msgpack.NewEncoder(f)
	if err := enc.Encode(libraryToPayload(lib)); err != nil {
		f.Close()
		return fmt.Errorf("failed to encode typelib: %w", err)
	}
	if err := f.Close(); err != nil {
		return err
	}
	return os.Rename(tmp, path)
}

// Load reads a dump back into a library. A missing file reports (nil, false,
// nil); a schema mismatch is an error, never a silent partial load.
func Load(path string) (*library.Library, bool, error) {
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, false, nil
		}
		return nil, false, err
	}
	defer f.Close()

	var payload Payload
	dec := msgpack.NewDecoder(f)
	if err := dec.Decode(&payload); err != nil {
		return nil, false, fmt.Errorf("%s: failed to decode typelib: %w", path, err)
	}
	lib, err := payloadToLibrary(&payload)
	if err != nil {
		return nil, false, fmt.Errorf("%s: %w", path, err)
	}
	return lib, true, nil
}
