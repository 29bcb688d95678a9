// Package profile holds the shared profile record used across ToolStack
// modules: who prepared the report and for which organization.
package profile

import "strings"

// Languages accepted for the language tag. Anything else falls back to EN.
const (
	LanguageEN = "EN"
	LanguageDE = "DE"
)

// Profile is the shared profile record.
type Profile struct {
	Org      string `json:"org"`
	User     string `json:"user"`
	Language string `json:"language"`
	Logo     string `json:"logo"`
}

// Default returns the documented default profile.
func Default() Profile {
	return Profile{
		Org:      "ToolStack",
		User:     "",
		Language: LanguageEN,
		Logo:     "",
	}
}

// Normalized returns the profile with trimmed fields and the language tag
// coerced to a supported value.
func (p Profile) Normalized() Profile {
	p.Org = strings.TrimSpace(p.Org)
	p.User = strings.TrimSpace(p.User)
	if p.Org == "" {
		p.Org = Default().Org
	}
	if p.Language != LanguageEN && p.Language != LanguageDE {
		p.Language = LanguageEN
	}
	return p
}
