// Package dlc knows where the game's DLC customization files live and how
// to read the part entries and identifiers already stored in them.
package dlc

import (
	"errors"
	"os"
	"path/filepath"
)

const (
	// PrimaryFileName receives every entry and is the file checked for
	// duplicate identifiers.
	PrimaryFileName = "Transcustomization.ini"

	// SecondaryFileName receives a byte-identical copy of every entry.
	SecondaryFileName = "Transgame.int"
)

// ErrNoExecutable is returned when no executable path was given.
var ErrNoExecutable = errors.New("executable path is empty")

// Targets are the two files an entry is appended to.
type Targets struct {
	Dir       string
	Primary   string
	Secondary string
}

// TargetsFor derives the DLC directory from the game executable: two
// levels above the executable, then DLC/DLCMaps.
func TargetsFor(executable string) (Targets, error) {
	if executable == "" {
		return Targets{}, ErrNoExecutable
	}

	root := filepath.Dir(filepath.Dir(executable))
	dir := filepath.Join(root, "DLC", "DLCMaps")

	return Targets{
		Dir:       dir,
		Primary:   filepath.Join(dir, PrimaryFileName),
		Secondary: filepath.Join(dir, SecondaryFileName),
	}, nil
}

// Ensure creates the DLC directory if it does not exist.
func (t Targets) Ensure() error {
	return os.MkdirAll(t.Dir, 0o755)
}

// Paths returns the primary and secondary file, in write order.
func (t Targets) Paths() []string {
	return []string{t.Primary, t.Secondary}
}
