package dlc

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleFile = `[Engine.GameInfo]
DefaultGame=TFGame.TFGameInfo

;PartStart=Crowned Scout 123456
[123456 TnDataProvider_Part]
FriendlyName=Crowned Scout
UniqueId=123456
PartType=ArmLo
SpecialtyRestriction=Scout,Leader
PartPaths=TR_Jazz_ROBO_p.CharSkel.RB_Jazz_PART_ArmLoL
PartPaths=TR_Jazz_ROBO_p.CharSkel.RB_Jazz_PART_ArmLoR
PartPaths=TR_Jazz_ROBO_p.CharSkel.RB_Jazz_PART_ArmLoL
;PartEnd=Crowned Scout 123456

;PartStart=Big Head 654321
[654321 TnDataProvider_Part]
FriendlyName=Big Head
UniqueId=654321
PartType=Head
SpecialtyRestriction=Scientist
PartPaths=TR_MetroplexHead_ROBO_p.CharSkel.RB_MetroplexHead_PART_Head
;PartEnd=Big Head 654321
`

func TestParseEntries(t *testing.T) {
	entries, err := ParseEntries([]byte(sampleFile))
	require.NoError(t, err)

	want := []Entry{
		{
			UniqueID:     "123456",
			FriendlyName: "Crowned Scout",
			PartType:     "ArmLo",
			Specialty:    []string{"Scout", "Leader"},
			PartPaths: []string{
				"TR_Jazz_ROBO_p.CharSkel.RB_Jazz_PART_ArmLoL",
				"TR_Jazz_ROBO_p.CharSkel.RB_Jazz_PART_ArmLoR",
				"TR_Jazz_ROBO_p.CharSkel.RB_Jazz_PART_ArmLoL",
			},
		},
		{
			UniqueID:     "654321",
			FriendlyName: "Big Head",
			PartType:     "Head",
			Specialty:    []string{"Scientist"},
			PartPaths:    []string{"TR_MetroplexHead_ROBO_p.CharSkel.RB_MetroplexHead_PART_Head"},
		},
	}

	if diff := cmp.Diff(want, entries); diff != "" {
		t.Errorf("ParseEntries() mismatch (-want +got):\n%s", diff)
	}
}

func TestReadEntries_MissingFile(t *testing.T) {
	entries, err := ReadEntries(filepath.Join(t.TempDir(), "Transcustomization.ini"))
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestReadEntries_FromDisk(t *testing.T) {
	p := filepath.Join(t.TempDir(), PrimaryFileName)
	require.NoError(t, os.WriteFile(p, []byte(sampleFile), 0o644))

	entries, err := ReadEntries(p)
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, "Big Head", entries[1].FriendlyName)
}

func TestSectionName(t *testing.T) {
	assert.Equal(t, "123456 TnDataProvider_Part", SectionName("123456"))

	id, ok := parseSectionName(SectionName("000001"))
	require.True(t, ok)
	assert.Equal(t, "000001", id)

	_, ok = parseSectionName("Engine.GameInfo")
	assert.False(t, ok)
}
