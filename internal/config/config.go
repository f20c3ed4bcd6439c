package config

import (
	"errors"
	"fmt"
	"io/fs"
	"math/rand"
	"os"
	"path/filepath"
	"sort"
	"strconv"

	"github.com/san-kum/pendconf/internal/params"
	"gopkg.in/yaml.v3"
)

// Load reads the YAML document at path onto a fresh default instance.
// Every key must name a schema field; the first unknown key (in sorted order)
// fails the whole load with a *params.UnknownFieldError.
func Load(path string) (*params.Params, error) {
	info, err := os.Stat(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %w", ErrNotFound, err)
		}
		return nil, fmt.Errorf("config: stat %s: %w", path, err)
	}
	if !info.Mode().IsRegular() {
		return nil, fmt.Errorf("%w: %s is not a regular file", ErrNotFound, path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: read %s: %w", path, err)
	}
	p, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("config: %s: %w", path, err)
	}
	return p, nil
}

// Parse decodes a document already in memory. An empty document yields the
// defaults. Keys are checked against the schema before any value is decoded,
// so an unknown key is reported whatever its value.
func Parse(data []byte) (*params.Params, error) {
	var doc map[string]yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidDocument, err)
	}

	keys := make([]string, 0, len(doc))
	for k := range doc {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, k := range keys {
		if !params.IsField(k) {
			return nil, &params.UnknownFieldError{Name: k}
		}
	}

	p := params.Default()
	for _, k := range keys {
		node := doc[k]
		// A pointer distinguishes "g:" (null) from "g: 0".
		var v *float64
		if err := node.Decode(&v); err != nil {
			return nil, fmt.Errorf("%w: field %q: %w", ErrInvalidDocument, k, err)
		}
		if v == nil {
			return nil, fmt.Errorf("%w: field %q has no value", ErrInvalidDocument, k)
		}
		if err := p.Set(k, *v); err != nil {
			return nil, err
		}
	}
	return p, nil
}

// Marshal encodes every declared field of p in declaration order.
func Marshal(p *params.Params) ([]byte, error) {
	if p == nil {
		return nil, errors.New("config: nil params")
	}
	return yaml.Marshal(p)
}

// Save writes p to path. An existing file is only replaced when overwrite is
// set; the replacement goes through a temp file and a rename so readers never
// see a half-written document.
func Save(p *params.Params, path string, overwrite bool) error {
	if !overwrite {
		_, err := os.Stat(path)
		if err == nil {
			return fmt.Errorf("%w: %s", ErrExists, path)
		}
		if !errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("config: stat %s: %w", path, err)
		}
	}

	data, err := Marshal(p)
	if err != nil {
		return err
	}
	return writeAtomic(path, data)
}

func writeAtomic(path string, data []byte) error {
	// New files get 0644 less the umask; a replaced file keeps its mode.
	perm := fs.FileMode(0644)
	keepMode := false
	if info, err := os.Stat(path); err == nil {
		perm = info.Mode().Perm()
		keepMode = true
	}

	tmp, err := createTemp(path, perm)
	if err != nil {
		return fmt.Errorf("config: create temp for %s: %w", path, err)
	}
	tmpName := tmp.Name()
	defer func() {
		if err != nil {
			os.Remove(tmpName)
		}
	}()

	if _, err = tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("config: write %s: %w", path, err)
	}
	if err = tmp.Sync(); err != nil {
		tmp.Close()
		return fmt.Errorf("config: sync %s: %w", path, err)
	}
	if err = tmp.Close(); err != nil {
		return fmt.Errorf("config: close %s: %w", path, err)
	}
	if keepMode {
		if err = os.Chmod(tmpName, perm); err != nil {
			return fmt.Errorf("config: chmod %s: %w", path, err)
		}
	}
	if err = os.Rename(tmpName, path); err != nil {
		return fmt.Errorf("config: rename %s: %w", path, err)
	}
	return nil
}

// createTemp opens a fresh file next to path. Unlike os.CreateTemp it takes
// the permission bits, so the umask applies to them.
func createTemp(path string, perm fs.FileMode) (*os.File, error) {
	dir, base := filepath.Split(path)
	for i := 0; i < 100; i++ {
		name := filepath.Join(dir, "."+base+"."+strconv.FormatUint(uint64(rand.Uint32()), 10)+".tmp")
		f, err := os.OpenFile(name, os.O_RDWR|os.O_CREATE|os.O_EXCL, perm)
		if errors.Is(err, fs.ErrExist) {
			continue
		}
		return f, err
	}
	return nil, fmt.Errorf("config: no free temp name for %s", path)
}
