package core

import (
	"errors"
	"fmt"
)

var (
	ErrMissingExecutablePath = errors.New("game executable path is not set")
	ErrNoClassSelected       = errors.New("no class selected")
	ErrEmptyDisplayName      = errors.New("in-game name is empty")
	ErrInvalidDisplayName    = errors.New("in-game name contains a line break")
	ErrInvalidPartName       = errors.New("part name contains a line break")
	ErrTooManyParts          = errors.New("too many parts")
	ErrUnknownBodyPart       = errors.New("unknown body part")
	ErrDuplicateIdentifier   = errors.New("unique identifier already exists")
	ErrUserDeclinedWarning   = errors.New("operation cancelled")
	ErrFilesystem            = errors.New("filesystem failure")
)

// DuplicateIdentifierError reports a generated identifier already present
// in the primary target file
type DuplicateIdentifierError struct {
	ID   string
	Path string
}

func (e *DuplicateIdentifierError) Error() string {
	return fmt.Sprintf("unique identifier %s already exists in %s", e.ID, e.Path)
}

func (e *DuplicateIdentifierError) Is(target error) bool {
	return target == ErrDuplicateIdentifier
}

// FilesystemError wraps a failure creating the DLC directory or writing a
// target file
type FilesystemError struct {
	Op   string
	Path string
	Err  error
}

func (e *FilesystemError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Op, e.Path, e.Err)
}

func (e *FilesystemError) Unwrap() error {
	return e.Err
}

func (e *FilesystemError) Is(target error) bool {
	return target == ErrFilesystem
}

// UserMessage returns the notice shown to the user for a failed submission.
func UserMessage(err error) string {
	switch {
	case errors.Is(err, ErrMissingExecutablePath):
		return "Please select the game executable file."
	case errors.Is(err, ErrNoClassSelected):
		return "Please select at least one class."
	case errors.Is(err, ErrEmptyDisplayName):
		return "Please set in game name."
	case errors.Is(err, ErrInvalidDisplayName):
		return "The in game name must fit on one line."
	case errors.Is(err, ErrTooManyParts):
		return "Select at most 10 parts."
	case errors.Is(err, ErrUnknownBodyPart):
		return "Please select a body part."
	case errors.Is(err, ErrDuplicateIdentifier):
		return "This unique code name already exists"
	case errors.Is(err, ErrUserDeclinedWarning):
		return "Error: operation cancelled"
	default:
		return "Error: " + err.Error()
	}
}
