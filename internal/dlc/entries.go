package dlc

import (
	"os"
	"strings"

	"gopkg.in/ini.v1"
)

// SectionSuffix follows the identifier in an entry's section header.
const SectionSuffix = "TnDataProvider_Part"

// Entry is a part record read back from a target file.
type Entry struct {
	UniqueID     string   `json:"unique_id" yaml:"unique_id"`
	FriendlyName string   `json:"friendly_name" yaml:"friendly_name"`
	PartType     string   `json:"part_type" yaml:"part_type"`
	Specialty    []string `json:"specialty_restriction" yaml:"specialty_restriction"`
	PartPaths    []string `json:"part_paths" yaml:"part_paths"`
}

// SectionName returns the section header text for id.
func SectionName(id string) string {
	return id + " " + SectionSuffix
}

func loadOptions() ini.LoadOptions {
	return ini.LoadOptions{
		AllowShadows:               true,
		AllowDuplicateShadowValues: true,
		AllowNonUniqueSections:     true,
		SkipUnrecognizableLines:    true,
		IgnoreInlineComment:        true,
		PreserveSurroundedQuote:    true,
		KeyValueDelimiters:         "=",
	}
}

// ReadEntries parses path and returns every part section in file order.
// A missing file yields no entries.
func ReadEntries(path string) ([]Entry, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}

		return nil, err
	}

	return ParseEntries(data)
}

// ParseEntries parses part sections from an in-memory file. Sections that
// are not part entries are ignored.
func ParseEntries(data []byte) ([]Entry, error) {
	cfg, err := ini.LoadSources(loadOptions(), data)
	if err != nil {
		return nil, err
	}

	var entries []Entry

	for _, sec := range cfg.Sections() {
		id, ok := parseSectionName(sec.Name())
		if !ok {
			continue
		}

		e := Entry{
			UniqueID:     sec.Key("UniqueId").String(),
			FriendlyName: sec.Key("FriendlyName").String(),
			PartType:     sec.Key("PartType").String(),
		}

		if e.UniqueID == "" {
			e.UniqueID = id
		}

		if s := sec.Key("SpecialtyRestriction").String(); s != "" {
			e.Specialty = strings.Split(s, ",")
		}

		if sec.HasKey("PartPaths") {
			e.PartPaths = sec.Key("PartPaths").ValueWithShadows()
		}

		entries = append(entries, e)
	}

	return entries, nil
}

func parseSectionName(name string) (string, bool) {
	fields := strings.Fields(name)
	if len(fields) != 2 || fields[1] != SectionSuffix {
		return "", false
	}

	return fields[0], true
}
