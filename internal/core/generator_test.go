package core

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/inovacc/focset/internal/dlc"
	"github.com/inovacc/focset/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingConfirmer struct {
	decision Decision
	warnings []Warning
}

func (c *recordingConfirmer) Confirm(_ context.Context, w Warning) (Decision, error) {
	c.warnings = append(c.warnings, w)
	return c.decision, nil
}

type memoryRecorder struct {
	subs []*model.Submission
	err  error
}

func (r *memoryRecorder) RecordSubmission(_ context.Context, s *model.Submission) error {
	r.subs = append(r.subs, s)
	return r.err
}

func fixedID(id string) IDSource {
	return IDSourceFunc(func() string { return id })
}

// newGame lays out <root>/Binaries/Win32/TFOC.exe and returns the
// executable path with the derived targets.
func newGame(t *testing.T) (string, dlc.Targets) {
	t.Helper()

	exe := filepath.Join(t.TempDir(), "Binaries", "Win32", "TFOC.exe")
	tg, err := dlc.TargetsFor(exe)
	require.NoError(t, err)

	return exe, tg
}

func readFile(t *testing.T, path string) string {
	t.Helper()

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return ""
	}

	require.NoError(t, err)

	return string(data)
}

func validSelection() model.PartSelection {
	return model.PartSelection{
		BodyPart:    model.BodyPartHead,
		Specialties: []model.Specialty{model.SpecialtyScout},
		DisplayName: "Scout Head",
		PartNames:   []string{"Jazz", model.NullPart},
	}
}

func TestSubmit_WritesIdenticalBlockToBothFiles(t *testing.T) {
	exe, tg := newGame(t)
	require.NoError(t, os.MkdirAll(tg.Dir, 0o755))
	require.NoError(t, os.WriteFile(tg.Primary, []byte("UniqueId=111111\n"), 0o644))
	require.NoError(t, os.WriteFile(tg.Secondary, []byte("UniqueId=111111\n"), 0o644))

	for i, staged := range []bool{true, false} {
		g := NewGenerator(Options{IDs: fixedID([]string{"100001", "100002"}[i]), Staged: staged})

		beforePrimary := readFile(t, tg.Primary)
		beforeSecondary := readFile(t, tg.Secondary)

		res, err := g.Submit(context.Background(), validSelection(), exe)
		require.NoError(t, err)

		afterPrimary := readFile(t, tg.Primary)
		afterSecondary := readFile(t, tg.Secondary)

		appended := "\n" + res.Block.String()
		assert.Equal(t, beforePrimary+appended, afterPrimary)
		assert.Equal(t, beforeSecondary+appended, afterSecondary)

		line := "UniqueId=" + res.UniqueID + "\n"
		assert.NotContains(t, beforePrimary, line)
		assert.Equal(t, 1, strings.Count(afterPrimary, line))
	}
}

func TestSubmit_CreatesDirectoryAndFiles(t *testing.T) {
	exe, tg := newGame(t)
	g := NewGenerator(Options{IDs: fixedID("123456"), Staged: true})

	res, err := g.Submit(context.Background(), validSelection(), exe)
	require.NoError(t, err)
	assert.Equal(t, "123456", res.UniqueID)
	assert.Equal(t, tg, res.Targets)

	want := "\n;PartStart=Scout Head 123456\n" +
		"[123456 TnDataProvider_Part]\n" +
		"FriendlyName=Scout Head\n" +
		"UniqueId=123456\n" +
		"PartType=Head\n" +
		"SpecialtyRestriction=Scout\n" +
		"PartPaths=TR_Jazz_ROBO_p.CharSkel.RB_Jazz_PART_Head\n" +
		";PartEnd=Scout Head 123456\n"

	assert.Equal(t, want, readFile(t, tg.Primary))
	assert.Equal(t, want, readFile(t, tg.Secondary))
}

func TestSubmit_ArmLoExpansion(t *testing.T) {
	exe, tg := newGame(t)
	g := NewGenerator(Options{IDs: fixedID("200000")})

	sel := validSelection()
	sel.BodyPart = model.BodyPartArmLo
	sel.PartNames = []string{"Foo"}

	_, err := g.Submit(context.Background(), sel, exe)
	require.NoError(t, err)

	content := readFile(t, tg.Primary)
	l := strings.Index(content, "PartPaths=TR_Foo_ROBO_p.CharSkel.RB_Foo_PART_ArmLoL\n")
	r := strings.Index(content, "PartPaths=TR_Foo_ROBO_p.CharSkel.RB_Foo_PART_ArmLoR\n")
	require.GreaterOrEqual(t, l, 0)
	require.Greater(t, r, l)
	assert.Equal(t, 2, strings.Count(content, "PartPaths="))
}

func TestSubmit_RenamesMegatron(t *testing.T) {
	exe, tg := newGame(t)
	g := NewGenerator(Options{IDs: fixedID("300000")})

	sel := validSelection()
	sel.PartNames = []string{"Megatron"}

	res, err := g.Submit(context.Background(), sel, exe)
	require.NoError(t, err)
	assert.Equal(t, []string{"MegatronWFC2"}, res.Block.Parts)
	assert.Contains(t, readFile(t, tg.Primary),
		"PartPaths=TR_MegatronWFC2_ROBO_p.CharSkel.RB_MegatronWFC2_PART_Head\n")
}

func TestSubmit_WarningProceed(t *testing.T) {
	exe, tg := newGame(t)
	c := &recordingConfirmer{decision: Proceed}
	g := NewGenerator(Options{IDs: fixedID("400000"), Confirmer: c})

	sel := validSelection()
	sel.PartNames = []string{"Jazz", "Bee Crown", model.NullPart, "Titan Head"}

	_, err := g.Submit(context.Background(), sel, exe)
	require.NoError(t, err)

	require.Len(t, c.warnings, 2)
	assert.Equal(t, Warning{Slot: 1, Part: "Bee Crown", Message: "Crown Heads are only for heads. Do you want to proceed?"}, c.warnings[0])
	assert.Equal(t, 3, c.warnings[1].Slot)
	assert.Equal(t, "Boss Heads are only for heads. Do you want to proceed?", c.warnings[1].Message)

	content := readFile(t, tg.Primary)
	assert.Contains(t, content, "PartPaths=TR_CarCrown_ROBO_p.CharSkel.RB_CarCrown_PART_Head\n")
	assert.Contains(t, content, "PartPaths=TR_TitanHead_ROBO_p.CharSkel.RB_TitanHead_PART_Head\n")
}

func TestSubmit_WarningDeclinedWritesNothing(t *testing.T) {
	exe, tg := newGame(t)
	c := &recordingConfirmer{decision: Abort}
	rec := &memoryRecorder{}
	g := NewGenerator(Options{IDs: fixedID("500000"), Confirmer: c, Recorder: rec})

	sel := validSelection()
	sel.PartNames = []string{"Jazz", "Bee Crown"}

	res, err := g.Submit(context.Background(), sel, exe)
	require.ErrorIs(t, err, ErrUserDeclinedWarning)
	assert.Nil(t, res)

	require.Len(t, c.warnings, 1)
	assert.Equal(t, "Crown Heads are only for heads. Do you want to proceed?", c.warnings[0].Message)

	assert.Empty(t, readFile(t, tg.Primary))
	assert.Empty(t, readFile(t, tg.Secondary))
	assert.Empty(t, rec.subs)
}

func TestSubmit_NilConfirmerDeclines(t *testing.T) {
	exe, tg := newGame(t)
	g := NewGenerator(Options{IDs: fixedID("500001")})

	sel := validSelection()
	sel.PartNames = []string{"Optimus Crown"}

	_, err := g.Submit(context.Background(), sel, exe)
	require.ErrorIs(t, err, ErrUserDeclinedWarning)
	assert.Empty(t, readFile(t, tg.Primary))
}

func TestSubmit_ConfirmerError(t *testing.T) {
	exe, tg := newGame(t)
	boom := errors.New("dialog closed")
	g := NewGenerator(Options{
		IDs: fixedID("500002"),
		Confirmer: ConfirmerFunc(func(context.Context, Warning) (Decision, error) {
			return Abort, boom
		}),
	})

	sel := validSelection()
	sel.PartNames = []string{"Metroplex Head"}

	_, err := g.Submit(context.Background(), sel, exe)
	require.ErrorIs(t, err, boom)
	assert.Empty(t, readFile(t, tg.Primary))
}

func TestSubmit_ValidationOrder(t *testing.T) {
	exe, tg := newGame(t)

	tests := []struct {
		name string
		exe  string
		sel  model.PartSelection
		want error
	}{
		{
			name: "missing executable wins over everything",
			exe:  "",
			sel:  model.PartSelection{},
			want: ErrMissingExecutablePath,
		},
		{
			name: "no class before empty name",
			exe:  exe,
			sel:  model.PartSelection{BodyPart: model.BodyPartHead},
			want: ErrNoClassSelected,
		},
		{
			name: "empty name",
			exe:  exe,
			sel:  model.PartSelection{BodyPart: model.BodyPartHead, Specialties: []model.Specialty{model.SpecialtyLeader}, DisplayName: "  "},
			want: ErrEmptyDisplayName,
		},
		{
			name: "line break in name",
			exe:  exe,
			sel:  model.PartSelection{BodyPart: model.BodyPartHead, Specialties: []model.Specialty{model.SpecialtyLeader}, DisplayName: "a\nb"},
			want: ErrInvalidDisplayName,
		},
		{
			name: "too many parts",
			exe:  exe,
			sel: model.PartSelection{
				BodyPart:    model.BodyPartHead,
				Specialties: []model.Specialty{model.SpecialtyLeader},
				DisplayName: "x",
				PartNames:   make([]string, model.MaxParts+1),
			},
			want: ErrTooManyParts,
		},
		{
			name: "line break in part",
			exe:  exe,
			sel: model.PartSelection{
				BodyPart:    model.BodyPartHead,
				Specialties: []model.Specialty{model.SpecialtyLeader},
				DisplayName: "x",
				PartNames:   []string{"Jazz\n[evil]"},
			},
			want: ErrInvalidPartName,
		},
		{
			name: "unknown body part",
			exe:  exe,
			sel:  model.PartSelection{BodyPart: "Tail", Specialties: []model.Specialty{model.SpecialtyLeader}, DisplayName: "x"},
			want: ErrUnknownBodyPart,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := NewGenerator(Options{IDs: fixedID("600000")})

			_, err := g.Submit(context.Background(), tt.sel, tt.exe)
			require.ErrorIs(t, err, tt.want)

			assert.Empty(t, readFile(t, tg.Primary))
			assert.Empty(t, readFile(t, tg.Secondary))
		})
	}
}

func TestSubmit_DuplicateIdentifier(t *testing.T) {
	exe, tg := newGame(t)
	require.NoError(t, os.MkdirAll(tg.Dir, 0o755))

	existing := "\n;PartStart=Old 777777\n[777777 TnDataProvider_Part]\n  UniqueId=777777  \n;PartEnd=Old 777777\n"
	require.NoError(t, os.WriteFile(tg.Primary, []byte(existing), 0o644))

	calls := 0
	g := NewGenerator(Options{IDs: IDSourceFunc(func() string {
		calls++
		return "777777"
	})})

	_, err := g.Submit(context.Background(), validSelection(), exe)
	require.ErrorIs(t, err, ErrDuplicateIdentifier)

	var dup *DuplicateIdentifierError
	require.ErrorAs(t, err, &dup)
	assert.Equal(t, "777777", dup.ID)

	// no retry with a fresh identifier
	assert.Equal(t, 1, calls)
	assert.Equal(t, existing, readFile(t, tg.Primary))
	assert.Empty(t, readFile(t, tg.Secondary))
}

func TestSubmit_DuplicateCheckUsesPrimaryOnly(t *testing.T) {
	exe, tg := newGame(t)
	require.NoError(t, os.MkdirAll(tg.Dir, 0o755))
	require.NoError(t, os.WriteFile(tg.Secondary, []byte("UniqueId=888888\n"), 0o644))

	g := NewGenerator(Options{IDs: fixedID("888888")})

	_, err := g.Submit(context.Background(), validSelection(), exe)
	require.NoError(t, err)
}

func TestSubmit_SpecialtyOrder(t *testing.T) {
	exe, tg := newGame(t)
	g := NewGenerator(Options{IDs: fixedID("900000")})

	sel := validSelection()
	sel.Specialties = []model.Specialty{model.SpecialtyScientist, model.SpecialtyScout, model.SpecialtySoldier}

	_, err := g.Submit(context.Background(), sel, exe)
	require.NoError(t, err)
	assert.Contains(t, readFile(t, tg.Primary), "SpecialtyRestriction=Scout,Soldier,Scientist\n")
}

func TestSubmit_CancelledContext(t *testing.T) {
	exe, tg := newGame(t)
	g := NewGenerator(Options{IDs: fixedID("910000")})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := g.Submit(ctx, validSelection(), exe)
	require.ErrorIs(t, err, context.Canceled)
	assert.Empty(t, readFile(t, tg.Primary))
}

func TestSubmit_FilesystemFailure(t *testing.T) {
	exe, tg := newGame(t)
	// a regular file where the DLC directory should be
	require.NoError(t, os.MkdirAll(filepath.Dir(tg.Dir), 0o755))
	require.NoError(t, os.WriteFile(tg.Dir, []byte("not a dir"), 0o644))

	g := NewGenerator(Options{IDs: fixedID("920000")})

	_, err := g.Submit(context.Background(), validSelection(), exe)
	require.ErrorIs(t, err, ErrFilesystem)

	var fsErr *FilesystemError
	require.ErrorAs(t, err, &fsErr)
	assert.Equal(t, "create directory", fsErr.Op)
}

func TestSubmit_RecordsHistory(t *testing.T) {
	exe, _ := newGame(t)
	rec := &memoryRecorder{}
	now := time.Date(2026, 10, 15, 12, 0, 0, 0, time.UTC)
	g := NewGenerator(Options{
		IDs:       fixedID("930000"),
		Recorder:  rec,
		Confirmer: ProceedAll,
		Now:       func() time.Time { return now },
	})

	sel := validSelection()
	sel.PartNames = []string{"Optimus Prime", "Bee Crown"}

	_, err := g.Submit(context.Background(), sel, exe)
	require.NoError(t, err)

	require.Len(t, rec.subs, 1)
	s := rec.subs[0]
	assert.Equal(t, "930000", s.UniqueID)
	assert.Equal(t, "Scout Head", s.FriendlyName)
	assert.Equal(t, model.BodyPartHead, s.PartType)
	assert.Equal(t, "Scout", s.Specialty)
	assert.Equal(t, []string{"OptimusPrime", "CarCrown"}, s.Parts)
	assert.Equal(t, exe, s.ExecutablePath)
	assert.Equal(t, now, s.CreatedAt)
}

func TestSubmit_HistoryFailureDoesNotFailSubmission(t *testing.T) {
	exe, tg := newGame(t)
	rec := &memoryRecorder{err: errors.New("database locked")}
	g := NewGenerator(Options{IDs: fixedID("940000"), Recorder: rec})

	_, err := g.Submit(context.Background(), validSelection(), exe)
	require.NoError(t, err)
	assert.NotEmpty(t, readFile(t, tg.Primary))
}

func TestSubmit_NoPartsSelected(t *testing.T) {
	exe, tg := newGame(t)
	g := NewGenerator(Options{IDs: fixedID("950000")})

	sel := validSelection()
	sel.PartNames = []string{model.NullPart, "", model.NullPart}

	_, err := g.Submit(context.Background(), sel, exe)
	require.NoError(t, err)
	assert.NotContains(t, readFile(t, tg.Primary), "PartPaths=")
}

func TestDecision_String(t *testing.T) {
	assert.Equal(t, "proceed", Proceed.String())
	assert.Equal(t, "abort", Abort.String())
}
