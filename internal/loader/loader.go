package loader

import (
	"context"
	"fmt"
	"io/fs"
	"path/filepath"
	"runtime"
	"sort"
	"strings"

	"github.com/BurntSushi/toml"
	"golang.org/x/sync/errgroup"

	"girgen/internal/diag"
	"girgen/internal/library"
)

// Loader applies API descriptions to a library, collecting warnings into a
// diagnostics bag. Hard errors (malformed references, unsupported
// containers, unknown transfer modes) abort the load; redefinitions and
// unknown description keys only warn.
type Loader struct {
	lib *library.Library
	bag *diag.Bag
}

// New creates a loader writing into lib and reporting into bag.
func New(lib *library.Library, bag *diag.Bag) *Loader {
	return &Loader{lib: lib, bag: bag}
}

// LoadFile ingests a single description file.
func (l *Loader) LoadFile(path string) error {
	desc, err := decodeFile(path, l.bag)
	if err != nil {
		return err
	}
	return l.apply(path, desc)
}

// LoadDir ingests every *.toml file under dir. Files are decoded
// concurrently (decoding is pure), then applied to the library one by one in
// path order, preserving the sequential mutation model.
func (l *Loader) LoadDir(ctx context.Context, dir string, jobs int) error {
	files, err := listDescriptions(dir)
	if err != nil {
		return err
	}
	if len(files) == 0 {
		return fmt.Errorf("no description files (*.toml) under %s", dir)
	}
	if jobs <= 0 {
		jobs = runtime.NumCPU()
	}

	decoded := make([]*descriptionFile, len(files))
	bags := make([]*diag.Bag, len(files))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(min(jobs, len(files)))
	for i, path := range files {
		i, path := i, path
		g.Go(func() error {
			select {
			case <-gctx.Done():
				return gctx.Err()
			default:
			}
			bags[i] = diag.NewBag(4)
			desc, err := decodeFile(path, bags[i])
			if err != nil {
				return err
			}
			decoded[i] = desc
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	for i, desc := range decoded {
		l.bag.Merge(bags[i])
		if err := l.apply(files[i], desc); err != nil {
			return err
		}
	}
	return nil
}

func listDescriptions(dir string) ([]string, error) {
	var files []string
	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() && strings.HasSuffix(d.Name(), ".toml") {
			files = append(files, path)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan %s: %w", dir, err)
	}
	sort.Strings(files)
	return files, nil
}

func decodeFile(path string, bag *diag.Bag) (*descriptionFile, error) {
	var desc descriptionFile
	meta, err := toml.DecodeFile(path, &desc)
	if err != nil {
		return nil, fmt.Errorf("%s: failed to parse TOML: %w", path, err)
	}
	if !meta.IsDefined("namespace") {
		return nil, fmt.Errorf("%s: missing [namespace] table", path)
	}
	if strings.TrimSpace(desc.Namespace.Name) == "" {
		return nil, fmt.Errorf("%s: namespace.name must not be empty", path)
	}
	for _, key := range meta.Undecoded() {
		bag.Warning(diag.LoadUnknownKey, path, fmt.Sprintf("unknown key %q ignored", key.String()))
	}
	return &desc, nil
}
