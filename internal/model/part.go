package model

import (
	"fmt"
	"strings"
)

// BodyPart is the attachment slot a part entry targets.
type BodyPart string

const (
	BodyPartArmLo BodyPart = "ArmLo"
	BodyPartArmUp BodyPart = "ArmUp"
	BodyPartChest BodyPart = "Chest"
	BodyPartHead  BodyPart = "Head"
	BodyPartLegs  BodyPart = "Legs"
)

// BodyParts lists every body part in the order the form offers them.
var BodyParts = []BodyPart{BodyPartArmLo, BodyPartArmUp, BodyPartChest, BodyPartHead, BodyPartLegs}

// Valid reports whether b is one of the known body parts.
func (b BodyPart) Valid() bool {
	for _, known := range BodyParts {
		if b == known {
			return true
		}
	}

	return false
}

func (b BodyPart) String() string {
	return string(b)
}

// ParseBodyPart matches s against the known body parts, ignoring case.
func ParseBodyPart(s string) (BodyPart, error) {
	for _, known := range BodyParts {
		if strings.EqualFold(s, string(known)) {
			return known, nil
		}
	}

	return "", fmt.Errorf("unknown body part %q (expected one of %s)", s, joinBodyParts())
}

func joinBodyParts() string {
	names := make([]string, len(BodyParts))
	for i, b := range BodyParts {
		names[i] = string(b)
	}

	return strings.Join(names, ", ")
}

// Specialty is a class restriction flag.
type Specialty string

const (
	SpecialtyScout     Specialty = "Scout"
	SpecialtyLeader    Specialty = "Leader"
	SpecialtySoldier   Specialty = "Soldier"
	SpecialtyScientist Specialty = "Scientist"
)

// Specialties is the canonical order used when writing SpecialtyRestriction.
var Specialties = []Specialty{SpecialtyScout, SpecialtyLeader, SpecialtySoldier, SpecialtyScientist}

// ParseSpecialty matches s against the known classes, ignoring case.
func ParseSpecialty(s string) (Specialty, error) {
	for _, known := range Specialties {
		if strings.EqualFold(s, string(known)) {
			return known, nil
		}
	}

	return "", fmt.Errorf("unknown class %q (expected Scout, Leader, Soldier or Scientist)", s)
}

// NullPart marks an empty part slot.
const NullPart = "Null"

// MaxParts is the number of part slots on the form.
const MaxParts = 10

// PartSelection is one submission's worth of form input.
type PartSelection struct {
	BodyPart    BodyPart
	Specialties []Specialty
	DisplayName string
	PartNames   []string
}

// SpecialtyRestriction renders the selected classes in canonical order,
// regardless of the order they were selected in. Duplicates collapse.
func (s PartSelection) SpecialtyRestriction() string {
	selected := make(map[Specialty]bool, len(s.Specialties))
	for _, sp := range s.Specialties {
		selected[sp] = true
	}

	out := make([]string, 0, len(Specialties))
	for _, sp := range Specialties {
		if selected[sp] {
			out = append(out, string(sp))
		}
	}

	return strings.Join(out, ",")
}

// IsNullPart reports whether name leaves its slot empty.
func IsNullPart(name string) bool {
	name = strings.TrimSpace(name)
	return name == "" || name == NullPart
}
