package research

import (
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

var (
	// ErrMissingID is returned when a block or participant has no id.
	ErrMissingID = errors.New("missing id")
	// ErrDuplicateID is returned when two blocks or two participants share an id.
	ErrDuplicateID = errors.New("duplicate id")
)

// LoadFile reads a dataset from a YAML file.
func LoadFile(path string) (Dataset, error) {
	f, err := os.Open(path)
	if err != nil {
		return Dataset{}, fmt.Errorf("open dataset: %w", err)
	}
	defer func() { _ = f.Close() }()

	ds, err := Decode(f)
	if err != nil {
		return Dataset{}, fmt.Errorf("%s: %w", path, err)
	}
	return ds, nil
}

// Decode reads a YAML dataset from r and checks record identities.
func Decode(r io.Reader) (Dataset, error) {
	var ds Dataset
	if err := yaml.NewDecoder(r).Decode(&ds); err != nil {
		if errors.Is(err, io.EOF) {
			return Dataset{}, nil
		}
		return Dataset{}, fmt.Errorf("parse dataset: %w", err)
	}

	if err := ds.Validate(); err != nil {
		return Dataset{}, err
	}
	return ds, nil
}

// Encode writes ds to w as YAML.
func Encode(w io.Writer, ds Dataset) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(ds); err != nil {
		return fmt.Errorf("encode dataset: %w", err)
	}
	return enc.Close()
}

// Validate checks that every block and participant has a unique id.
// Response contents are not checked.
func (d Dataset) Validate() error {
	seen := make(map[string]bool, len(d.Blocks))
	for i, b := range d.Blocks {
		if b.ID == "" {
			return fmt.Errorf("block %d: %w", i, ErrMissingID)
		}
		if seen[b.ID] {
			return fmt.Errorf("block %q: %w", b.ID, ErrDuplicateID)
		}
		seen[b.ID] = true
	}

	seen = make(map[string]bool, len(d.Participants))
	for i, p := range d.Participants {
		if p.ID == "" {
			return fmt.Errorf("participant %d: %w", i, ErrMissingID)
		}
		if seen[p.ID] {
			return fmt.Errorf("participant %q: %w", p.ID, ErrDuplicateID)
		}
		seen[p.ID] = true
	}
	return nil
}
