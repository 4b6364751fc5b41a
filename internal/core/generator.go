package core

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/inovacc/focset/internal/catalog"
	"github.com/inovacc/focset/internal/dlc"
	"github.com/inovacc/focset/internal/fsx"
	"github.com/inovacc/focset/internal/model"
)

// Recorder keeps a history of successful submissions.
type Recorder interface {
	RecordSubmission(ctx context.Context, s *model.Submission) error
}

// Options configures a Generator. Zero values are usable: a nil Confirmer
// declines every warning and a nil Recorder keeps no history.
type Options struct {
	Logger    *slog.Logger
	IDs       IDSource
	Confirmer Confirmer
	Recorder  Recorder

	// Staged routes both appends through temp files, see fsx.AppendAll
	Staged bool

	Now func() time.Time
}

// Generator turns a PartSelection into an entry appended to the DLC files.
type Generator struct {
	logger    *slog.Logger
	ids       IDSource
	confirmer Confirmer
	recorder  Recorder
	staged    bool
	now       func() time.Time
}

// Result describes a written entry.
type Result struct {
	UniqueID string
	Block    Block
	Targets  dlc.Targets
	Parts    []catalog.Resolution
}

// NewGenerator creates a Generator from opts.
func NewGenerator(opts Options) *Generator {
	g := &Generator{
		logger:    opts.Logger,
		ids:       opts.IDs,
		confirmer: opts.Confirmer,
		recorder:  opts.Recorder,
		staged:    opts.Staged,
		now:       opts.Now,
	}

	if g.logger == nil {
		g.logger = slog.New(slog.DiscardHandler)
	}

	if g.ids == nil {
		g.ids = NewRandomIDs()
	}

	if g.confirmer == nil {
		g.confirmer = AbortAll
	}

	if g.now == nil {
		g.now = time.Now
	}

	return g
}

// Validate checks a selection in the order the form reports problems:
// executable, classes, display name, then the structural checks.
func Validate(sel model.PartSelection, executable string) error {
	if executable == "" {
		return ErrMissingExecutablePath
	}

	if sel.SpecialtyRestriction() == "" {
		return ErrNoClassSelected
	}

	if strings.TrimSpace(sel.DisplayName) == "" {
		return ErrEmptyDisplayName
	}

	if strings.ContainsAny(sel.DisplayName, "\r\n") {
		return ErrInvalidDisplayName
	}

	if len(sel.PartNames) > model.MaxParts {
		return fmt.Errorf("%w: %d given, at most %d allowed", ErrTooManyParts, len(sel.PartNames), model.MaxParts)
	}

	for _, name := range sel.PartNames {
		if strings.ContainsAny(name, "\r\n") {
			return fmt.Errorf("%w: %q", ErrInvalidPartName, name)
		}
	}

	if !sel.BodyPart.Valid() {
		return fmt.Errorf("%w: %q", ErrUnknownBodyPart, sel.BodyPart)
	}

	return nil
}

// Submit validates sel, draws an identifier, confirms any warnings and
// appends the entry to both target files next to executable. Nothing is
// written unless every step before the append succeeds.
func (g *Generator) Submit(ctx context.Context, sel model.PartSelection, executable string) (*Result, error) {
	if err := Validate(sel, executable); err != nil {
		return nil, err
	}

	targets, err := dlc.TargetsFor(executable)
	if err != nil {
		return nil, ErrMissingExecutablePath
	}

	if err := targets.Ensure(); err != nil {
		return nil, &FilesystemError{Op: "create directory", Path: targets.Dir, Err: err}
	}

	id := g.ids.NextID()

	idx, err := dlc.LoadIndex(targets.Primary)
	if err != nil {
		return nil, &FilesystemError{Op: "read", Path: targets.Primary, Err: err}
	}

	if idx.Contains(id) {
		g.logger.Warn("generated identifier already in use", "id", id, "file", targets.Primary)
		return nil, &DuplicateIdentifierError{ID: id, Path: targets.Primary}
	}

	parts, err := g.resolveParts(ctx, sel.PartNames)
	if err != nil {
		return nil, err
	}

	internal := make([]string, len(parts))
	for i, p := range parts {
		internal[i] = p.Internal
	}

	block := Block{
		DisplayName: sel.DisplayName,
		UniqueID:    id,
		BodyPart:    sel.BodyPart,
		Specialty:   sel.SpecialtyRestriction(),
		Parts:       internal,
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	if err := fsx.AppendAll(targets.Paths(), block.Appendix(), g.staged); err != nil {
		path := targets.Dir

		var pw *fsx.PartialWriteError
		if errors.As(err, &pw) {
			path = pw.Failed
			g.logger.Error("target files are out of sync", "written", pw.Written, "failed", pw.Failed)
		}

		return nil, &FilesystemError{Op: "append", Path: path, Err: err}
	}

	g.logger.Info("part entry added",
		"id", id,
		"name", sel.DisplayName,
		"part_type", sel.BodyPart,
		"parts", len(internal),
		"dir", targets.Dir,
	)

	g.record(ctx, block, executable)

	return &Result{UniqueID: id, Block: block, Targets: targets, Parts: parts}, nil
}

// resolveParts maps every non-null slot to its internal name, asking for
// confirmation where the catalog requires it.
func (g *Generator) resolveParts(ctx context.Context, names []string) ([]catalog.Resolution, error) {
	var parts []catalog.Resolution

	for slot, name := range names {
		if model.IsNullPart(name) {
			continue
		}

		r := catalog.Resolve(name)

		if r.NeedsConfirmation() {
			d, err := g.confirmer.Confirm(ctx, Warning{Slot: slot, Part: name, Message: r.Warning})
			if err != nil {
				return nil, fmt.Errorf("confirm %q: %w", name, err)
			}

			g.logger.Debug("part warning answered", "slot", slot+1, "part", name, "decision", d)

			if d != Proceed {
				return nil, fmt.Errorf("%w: %s declined", ErrUserDeclinedWarning, name)
			}
		}

		parts = append(parts, r)
	}

	return parts, nil
}

func (g *Generator) record(ctx context.Context, block Block, executable string) {
	if g.recorder == nil {
		return
	}

	s := &model.Submission{
		UniqueID:       block.UniqueID,
		FriendlyName:   block.DisplayName,
		PartType:       block.BodyPart,
		Specialty:      block.Specialty,
		Parts:          block.Parts,
		ExecutablePath: executable,
		CreatedAt:      g.now().UTC(),
	}

	if err := g.recorder.RecordSubmission(ctx, s); err != nil {
		g.logger.Warn("failed to record submission history", "id", block.UniqueID, "error", err)
	}
}
