// Package model defines the data structures shared by the focset packages.
//
// # Selection
//
// A [PartSelection] is what the user fills in on the form: a [BodyPart],
// a set of [Specialty] flags, a display name and up to [MaxParts] part
// names. Slots holding [NullPart] are skipped when the entry is built.
//
//	sel := model.PartSelection{
//	    BodyPart:    model.BodyPartHead,
//	    Specialties: []model.Specialty{model.SpecialtyScout},
//	    DisplayName: "Crowned Scout",
//	    PartNames:   []string{"Bee Crown", model.NullPart},
//	}
//
// # Submission
//
// A [Submission] is the history record kept after an entry was written
// to the game's DLC files.
//
// # Config
//
// The [Config] struct holds the settings persisted in config.ini.
package model
