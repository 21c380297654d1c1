package output

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/rs/zerolog/log"

	"github.com/law-makers/appraiser/internal/extract"
	"github.com/law-makers/appraiser/internal/graph"
)

// SaveJSON writes v to path with two-space indentation.
func SaveJSON(v interface{}, path string) error {
	content, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	return WriteFile(path, append(content, '\n'))
}

// WriteFile writes data to a temporary sibling of path and renames it into
// place, so readers never see a partial file.
func WriteFile(path string, data []byte) error {
	tmp, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".*")
	if err != nil {
		return err
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	if err := os.Chmod(tmp.Name(), 0644); err != nil {
		return err
	}
	return os.Rename(tmp.Name(), path)
}

// WriteBundle replaces the JSON files in dir with the bundle's documents and
// returns the paths written. Files that are not JSON are left alone.
func WriteBundle(dir string, b *graph.Bundle) ([]string, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, extract.NewError(extract.ErrCodeIO, "create output directory", err).WithDetail("dir", dir)
	}

	stale, err := filepath.Glob(filepath.Join(dir, "*.json"))
	if err != nil {
		return nil, err
	}
	for _, f := range stale {
		if err := os.Remove(f); err != nil {
			return nil, extract.NewError(extract.ErrCodeIO, "remove stale output", err).WithDetail("file", f)
		}
	}
	if len(stale) > 0 {
		log.Debug().Str("dir", dir).Int("count", len(stale)).Msg("Removed stale output files")
	}

	written := make([]string, 0, len(b.Documents))
	for _, d := range b.Documents {
		path := filepath.Join(dir, d.Name)
		if err := SaveJSON(d.Value, path); err != nil {
			return written, extract.NewError(extract.ErrCodeIO, fmt.Sprintf("write %s", d.Name), err).WithDetail("file", path)
		}
		written = append(written, path)
	}
	log.Debug().Str("dir", dir).Int("count", len(written)).Msg("Wrote parcel documents")
	return written, nil
}
