package core

import (
	"fmt"
	"strings"

	"github.com/inovacc/focset/internal/dlc"
	"github.com/inovacc/focset/internal/model"
)

// partSuffixes lists the PART_ suffixes each body part expands to. Body
// parts not listed use their own name.
var partSuffixes = map[model.BodyPart][]string{
	model.BodyPartArmLo: {"ArmLoL", "ArmLoR"},
	model.BodyPartArmUp: {"ArmUpL", "ArmUpR", "CapL", "CapR"},
}

// PartPaths returns the PartPaths lines for one part, each newline-terminated.
func PartPaths(name string, bodyPart model.BodyPart) string {
	suffixes, ok := partSuffixes[bodyPart]
	if !ok {
		suffixes = []string{string(bodyPart)}
	}

	var b strings.Builder
	for _, suffix := range suffixes {
		fmt.Fprintf(&b, "PartPaths=TR_%s_ROBO_p.CharSkel.RB_%s_PART_%s\n", name, name, suffix)
	}

	return b.String()
}

// Block is the text of one entry, from the start marker to the end marker.
type Block struct {
	DisplayName string
	UniqueID    string
	BodyPart    model.BodyPart
	Specialty   string

	// Parts are internal names, Null slots already removed
	Parts []string
}

func (bl Block) String() string {
	var b strings.Builder

	fmt.Fprintf(&b, ";PartStart=%s %s\n", bl.DisplayName, bl.UniqueID)
	fmt.Fprintf(&b, "[%s]\n", dlc.SectionName(bl.UniqueID))
	fmt.Fprintf(&b, "FriendlyName=%s\n", bl.DisplayName)
	fmt.Fprintf(&b, "UniqueId=%s\n", bl.UniqueID)
	fmt.Fprintf(&b, "PartType=%s\n", bl.BodyPart)
	fmt.Fprintf(&b, "SpecialtyRestriction=%s\n", bl.Specialty)

	for _, name := range bl.Parts {
		b.WriteString(PartPaths(name, bl.BodyPart))
	}

	fmt.Fprintf(&b, ";PartEnd=%s %s\n", bl.DisplayName, bl.UniqueID)

	return b.String()
}

// Appendix is what gets appended to each target file.
func (bl Block) Appendix() []byte {
	return []byte("\n" + bl.String())
}
