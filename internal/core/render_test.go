package core

import (
	"testing"

	"github.com/inovacc/focset/internal/model"
	"github.com/stretchr/testify/assert"
)

func TestPartPaths(t *testing.T) {
	tests := []struct {
		name     string
		part     string
		bodyPart model.BodyPart
		want     string
	}{
		{
			name:     "arm lo expands left then right",
			part:     "Foo",
			bodyPart: model.BodyPartArmLo,
			want: "PartPaths=TR_Foo_ROBO_p.CharSkel.RB_Foo_PART_ArmLoL\n" +
				"PartPaths=TR_Foo_ROBO_p.CharSkel.RB_Foo_PART_ArmLoR\n",
		},
		{
			name:     "arm up expands arms and caps",
			part:     "Jazz",
			bodyPart: model.BodyPartArmUp,
			want: "PartPaths=TR_Jazz_ROBO_p.CharSkel.RB_Jazz_PART_ArmUpL\n" +
				"PartPaths=TR_Jazz_ROBO_p.CharSkel.RB_Jazz_PART_ArmUpR\n" +
				"PartPaths=TR_Jazz_ROBO_p.CharSkel.RB_Jazz_PART_CapL\n" +
				"PartPaths=TR_Jazz_ROBO_p.CharSkel.RB_Jazz_PART_CapR\n",
		},
		{
			name:     "head",
			part:     "MegatronWFC2",
			bodyPart: model.BodyPartHead,
			want:     "PartPaths=TR_MegatronWFC2_ROBO_p.CharSkel.RB_MegatronWFC2_PART_Head\n",
		},
		{
			name:     "chest",
			part:     "Ironhide",
			bodyPart: model.BodyPartChest,
			want:     "PartPaths=TR_Ironhide_ROBO_p.CharSkel.RB_Ironhide_PART_Chest\n",
		},
		{
			name:     "legs",
			part:     "Hound",
			bodyPart: model.BodyPartLegs,
			want:     "PartPaths=TR_Hound_ROBO_p.CharSkel.RB_Hound_PART_Legs\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, PartPaths(tt.part, tt.bodyPart))
		})
	}
}

func TestBlock_String(t *testing.T) {
	b := Block{
		DisplayName: "Crowned Scout",
		UniqueID:    "012345",
		BodyPart:    model.BodyPartHead,
		Specialty:   "Scout,Scientist",
		Parts:       []string{"CarCrown", "Jazz"},
	}

	want := ";PartStart=Crowned Scout 012345\n" +
		"[012345 TnDataProvider_Part]\n" +
		"FriendlyName=Crowned Scout\n" +
		"UniqueId=012345\n" +
		"PartType=Head\n" +
		"SpecialtyRestriction=Scout,Scientist\n" +
		"PartPaths=TR_CarCrown_ROBO_p.CharSkel.RB_CarCrown_PART_Head\n" +
		"PartPaths=TR_Jazz_ROBO_p.CharSkel.RB_Jazz_PART_Head\n" +
		";PartEnd=Crowned Scout 012345\n"

	assert.Equal(t, want, b.String())
	assert.Equal(t, "\n"+want, string(b.Appendix()))
}

func TestBlock_NoParts(t *testing.T) {
	b := Block{DisplayName: "Empty", UniqueID: "000000", BodyPart: model.BodyPartLegs, Specialty: "Leader"}

	assert.Equal(t, ";PartStart=Empty 000000\n"+
		"[000000 TnDataProvider_Part]\n"+
		"FriendlyName=Empty\n"+
		"UniqueId=000000\n"+
		"PartType=Legs\n"+
		"SpecialtyRestriction=Leader\n"+
		";PartEnd=Empty 000000\n", b.String())
}
