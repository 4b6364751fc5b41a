// Package fsx appends the same bytes to several files, either directly or
// through staged temp files that are renamed into place together.
package fsx

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"runtime"
	"strings"
)

// Replaceable so tests can fail a specific rename.
var renameFunc = os.Rename

const filePerm = 0o644

// PartialWriteError reports that some targets received the data and others
// did not.
type PartialWriteError struct {
	Written []string
	Failed  string
	Err     error
}

func (e *PartialWriteError) Error() string {
	return fmt.Sprintf("write to %s failed after %s succeeded: %v", e.Failed, strings.Join(e.Written, ", "), e.Err)
}

func (e *PartialWriteError) Unwrap() error { return e.Err }

// IsPartialWrite reports whether err left the targets out of sync.
func IsPartialWrite(err error) bool {
	var e *PartialWriteError
	return errors.As(err, &e)
}

// AppendFile appends data to path, creating the file if needed.
func AppendFile(path string, data []byte) error {
	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, filePerm)
	if err != nil {
		return err
	}

	if err := writeAll(f, data); err != nil {
		_ = f.Close()
		return err
	}

	return f.Close()
}

// AppendAll appends data to every path in order.
//
// With staged set, each target's new content is written to a temp file in
// the target's directory first; the temp files are then renamed into place
// and any target already replaced is restored if a later rename fails.
// Without it, the files are appended one after another and a failure part
// way through returns a *PartialWriteError.
func AppendAll(paths []string, data []byte, staged bool) error {
	if !staged {
		return appendSequential(paths, data)
	}

	return appendStaged(paths, data)
}

func appendSequential(paths []string, data []byte) error {
	for i, p := range paths {
		if err := AppendFile(p, data); err != nil {
			if i == 0 {
				return err
			}

			return &PartialWriteError{Written: append([]string(nil), paths[:i]...), Failed: p, Err: err}
		}
	}

	return nil
}

type stagedFile struct {
	target   string
	tmp      string
	original []byte
	existed  bool
}

// resolveTarget follows symlinks so a replacement lands on the file the
// link points to, and returns the mode the replacement should carry.
// A missing path resolves to itself with the default mode.
func resolveTarget(path string) (string, os.FileMode, error) {
	target, err := filepath.EvalSymlinks(path)
	if err != nil {
		if os.IsNotExist(err) {
			return path, filePerm, nil
		}

		return "", 0, err
	}

	info, err := os.Stat(target)
	if err != nil {
		return "", 0, err
	}

	return target, info.Mode().Perm(), nil
}

func appendStaged(paths []string, data []byte) error {
	staged := make([]*stagedFile, 0, len(paths))

	defer func() {
		for _, s := range staged {
			if s.tmp != "" {
				_ = os.Remove(s.tmp)
			}
		}
	}()

	for _, p := range paths {
		s, err := stage(p, data)
		if err != nil {
			return err
		}

		staged = append(staged, s)
	}

	for i, s := range staged {
		if err := renameFunc(s.tmp, s.target); err != nil {
			rollbackErr := rollback(staged[:i])
			if rollbackErr != nil {
				return &PartialWriteError{Written: targets(staged[:i]), Failed: s.target, Err: errors.Join(err, rollbackErr)}
			}

			return fmt.Errorf("replace %s: %w", s.target, err)
		}

		s.tmp = ""
		_ = syncDirBestEffort(filepath.Dir(s.target))
	}

	return nil
}

func stage(path string, data []byte) (*stagedFile, error) {
	target, perm, err := resolveTarget(path)
	if err != nil {
		return nil, err
	}

	s := &stagedFile{target: target}

	original, err := os.ReadFile(target)
	switch {
	case err == nil:
		s.original = original
		s.existed = true
	case os.IsNotExist(err):
	default:
		return nil, err
	}

	content := make([]byte, 0, len(original)+len(data))
	content = append(content, original...)
	content = append(content, data...)

	tmp, err := writeTemp(filepath.Dir(target), filepath.Base(target), content, perm)
	if err != nil {
		return nil, err
	}

	s.tmp = tmp

	return s, nil
}

func rollback(committed []*stagedFile) error {
	var errs []error

	for _, s := range committed {
		if !s.existed {
			if err := os.Remove(s.target); err != nil && !os.IsNotExist(err) {
				errs = append(errs, err)
			}

			continue
		}

		if err := WriteFileAtomic(s.target, s.original); err != nil {
			errs = append(errs, fmt.Errorf("restore %s: %w", s.target, err))
		}
	}

	return errors.Join(errs...)
}

func targets(files []*stagedFile) []string {
	out := make([]string, len(files))
	for i, s := range files {
		out[i] = s.target
	}

	return out
}

// WriteFileAtomic replaces path with data via a temp file in the same
// directory. An existing file keeps its mode; a symlink keeps pointing at
// the replaced file.
func WriteFileAtomic(path string, data []byte) error {
	target, perm, err := resolveTarget(path)
	if err != nil {
		return err
	}

	dir := filepath.Dir(target)

	tmp, err := writeTemp(dir, filepath.Base(target), data, perm)
	if err != nil {
		return err
	}

	if err := renameFunc(tmp, target); err != nil {
		_ = os.Remove(tmp)
		return err
	}

	_ = syncDirBestEffort(dir)

	return nil
}

func writeTemp(dir, name string, data []byte, perm os.FileMode) (string, error) {
	tmp, err := os.CreateTemp(dir, "."+name+".tmp-*")
	if err != nil {
		return "", err
	}

	tmpName := tmp.Name()

	fail := func(err error) (string, error) {
		_ = tmp.Close()
		_ = os.Remove(tmpName)

		return "", err
	}

	if err := writeAll(tmp, data); err != nil {
		return fail(err)
	}

	if err := tmp.Chmod(perm); err != nil && runtime.GOOS != "windows" {
		return fail(err)
	}

	if err := tmp.Sync(); err != nil {
		return fail(err)
	}

	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmpName)
		return "", err
	}

	return tmpName, nil
}

func writeAll(w io.Writer, b []byte) error {
	for len(b) > 0 {
		n, err := w.Write(b)
		if err != nil {
			return err
		}

		b = b[n:]
	}

	return nil
}

func syncDirBestEffort(dir string) error {
	// Directory sync is unsupported on Windows.
	if runtime.GOOS == "windows" {
		return nil
	}

	f, err := os.Open(dir)
	if err != nil {
		return err
	}
	defer f.Close()

	return f.Sync()
}
