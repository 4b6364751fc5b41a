// Package catalog holds the part names offered by the form and the
// tables that map display names to the internal asset names used in
// PartPaths lines.
package catalog

import (
	"slices"

	"github.com/inovacc/focset/internal/model"
)

const (
	crownWarning = "Crown Heads are only for heads. Do you want to proceed?"
	bossWarning  = "Boss Heads are only for heads. Do you want to proceed?"
)

var partNames = []string{
	"AirRaid", "Blastoff", "Brawl", "Breakdown", "Bruticus Head", "BumbleBee", "Bee Crown", "Cliffjumper", "Deadend", "Demolishor", "Dragstrip",
	"Grimlock", "HardBack Insect", "Hardshell", "Hardshell Insect", "Hound", "Ironhide", "Jazz", "Jetfire", "Kickback", "Kickback Insect", "Megatron", "Megatron Crown", "Metroplex Head", "Onslaught",
	"Optimus G1", "Optimus Prime", "Optimus Crown", "Perceptor", "Quake", "Ratchet", "Scattershot", "Sharpshot", "SharpshotHead", "Shockwave",
	"Sideswipe", "SilverBolt", "Slug", "Snarl", "Soundwave", "StarScream", "StarScream Crown", "Swindle", "Swoop", "Titan Head", "Trypticon", "UltraMagnus", "Vortex",
	"Warpath", "Wheeljack", "ZetaPrime",
}

// renames apply to every part name before the special-case table is consulted.
var renames = map[string]string{
	"Megatron":      "MegatronWFC2",
	"Optimus Prime": "OptimusPrime",
	"Optimus G1":    "OptimusG1",
}

// SpecialCase is a part whose asset name differs from its display name
// and which only fits the head slot.
type SpecialCase struct {
	Internal string
	Warning  string
}

var specialCases = map[string]SpecialCase{
	"Bee Crown":        {Internal: "CarCrown", Warning: crownWarning},
	"Megatron Crown":   {Internal: "TankCrown", Warning: crownWarning},
	"Optimus Crown":    {Internal: "TruckCrown", Warning: crownWarning},
	"StarScream Crown": {Internal: "JetCrown", Warning: crownWarning},
	"HardBack Insect":  {Internal: "HardBackInsect", Warning: bossWarning},
	"Hardshell Insect": {Internal: "HardshellInsect", Warning: bossWarning},
	"Kickback Insect":  {Internal: "KickbackInsect", Warning: bossWarning},
	"Sharpshot Insect": {Internal: "SharpshotInsect", Warning: bossWarning},
	"Metroplex Head":   {Internal: "MetroplexHead", Warning: bossWarning},
	"Titan Head":       {Internal: "TitanHead", Warning: bossWarning},
	"Bruticus Head":    {Internal: "BruticusHead", Warning: bossWarning},
}

// Resolution is the outcome of mapping one display name.
type Resolution struct {
	Display  string
	Internal string

	// Warning is non-empty when the user must confirm the part
	Warning string
}

// NeedsConfirmation reports whether the part carries a warning.
func (r Resolution) NeedsConfirmation() bool {
	return r.Warning != ""
}

// Resolve maps a display name to the name used in PartPaths lines.
// Names found in neither table pass through unchanged.
func Resolve(name string) Resolution {
	internal := name
	if renamed, ok := renames[name]; ok {
		internal = renamed
	}

	if sc, ok := specialCases[internal]; ok {
		return Resolution{Display: name, Internal: sc.Internal, Warning: sc.Warning}
	}

	return Resolution{Display: name, Internal: internal}
}

// Names returns the part names offered by the form, in display order.
func Names() []string {
	return slices.Clone(partNames)
}

// SlotChoices returns the choices for a given slot. Slot 0 always holds a
// part; later slots start with the Null sentinel.
func SlotChoices(slot int) []string {
	if slot == 0 {
		return Names()
	}

	return append([]string{model.NullPart}, partNames...)
}

// Known reports whether name is one of the form's part names.
func Known(name string) bool {
	return slices.Contains(partNames, name)
}

// Renamed reports whether name is rewritten unconditionally.
func Renamed(name string) (string, bool) {
	internal, ok := renames[name]
	return internal, ok
}

// Special returns the special-case entry for name, if any.
func Special(name string) (SpecialCase, bool) {
	sc, ok := specialCases[name]
	return sc, ok
}
