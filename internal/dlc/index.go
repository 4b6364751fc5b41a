package dlc

import (
	"bufio"
	"errors"
	"io"
	"os"
	"slices"
	"strings"
)

const uniqueIDPrefix = "UniqueId="

// Index is the set of identifiers already used in a file.
type Index map[string]struct{}

// LoadIndex reads every UniqueId= value from path. A missing file yields an
// empty index.
func LoadIndex(path string) (Index, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Index{}, nil
		}

		return nil, err
	}
	defer f.Close()

	return ScanIndex(f)
}

// ScanIndex collects identifiers from r. A line counts when its trimmed form
// starts with UniqueId=; the identifier is the text up to the next '='.
func ScanIndex(r io.Reader) (Index, error) {
	idx := Index{}
	br := bufio.NewReader(r)

	for {
		line, err := br.ReadString('\n')
		if err != nil && !errors.Is(err, io.EOF) {
			return nil, err
		}

		line = strings.TrimSpace(line)
		if strings.HasPrefix(line, uniqueIDPrefix) {
			value := strings.TrimPrefix(line, uniqueIDPrefix)
			if i := strings.IndexByte(value, '='); i >= 0 {
				value = value[:i]
			}

			idx[value] = struct{}{}
		}

		if err != nil {
			return idx, nil
		}
	}
}

// Contains reports whether id is already used.
func (idx Index) Contains(id string) bool {
	_, ok := idx[id]
	return ok
}

// IDs returns the identifiers in sorted order.
func (idx Index) IDs() []string {
	ids := make([]string, 0, len(idx))
	for id := range idx {
		ids = append(ids, id)
	}

	slices.Sort(ids)

	return ids
}

// Divergence lists identifiers present in only one of the two target files.
type Divergence struct {
	OnlyPrimary   []string `json:"only_primary" yaml:"only_primary"`
	OnlySecondary []string `json:"only_secondary" yaml:"only_secondary"`
}

// InSync reports whether both files carry the same identifiers.
func (d Divergence) InSync() bool {
	return len(d.OnlyPrimary) == 0 && len(d.OnlySecondary) == 0
}

// Compare reports the identifiers that differ between two indexes.
func Compare(primary, secondary Index) Divergence {
	var d Divergence

	for _, id := range primary.IDs() {
		if !secondary.Contains(id) {
			d.OnlyPrimary = append(d.OnlyPrimary, id)
		}
	}

	for _, id := range secondary.IDs() {
		if !primary.Contains(id) {
			d.OnlySecondary = append(d.OnlySecondary, id)
		}
	}

	return d
}

// CompareTargets loads both files of t and compares them.
func CompareTargets(t Targets) (Divergence, error) {
	primary, err := LoadIndex(t.Primary)
	if err != nil {
		return Divergence{}, err
	}

	secondary, err := LoadIndex(t.Secondary)
	if err != nil {
		return Divergence{}, err
	}

	return Compare(primary, secondary), nil
}
