package model

import "time"

// Submission is the history record of an entry appended to the DLC files.
type Submission struct {
	// UID is the history record identifier (UUID)
	UID string `json:"uid" yaml:"uid"`

	// UniqueID is the six digit identifier written as UniqueId=
	UniqueID string `json:"unique_id" yaml:"unique_id"`

	FriendlyName string   `json:"friendly_name" yaml:"friendly_name"`
	PartType     BodyPart `json:"part_type" yaml:"part_type"`
	Specialty    string   `json:"specialty_restriction" yaml:"specialty_restriction"`

	// Parts holds the internal part names after renames, Null slots excluded
	Parts []string `json:"parts" yaml:"parts"`

	// ExecutablePath is the game executable the targets were derived from
	ExecutablePath string `json:"executable_path" yaml:"executable_path"`

	CreatedAt time.Time `json:"created_at" yaml:"created_at"`
}
