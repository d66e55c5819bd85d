// Package tag decodes USAS semantic tag strings into structured form.
//
// A tag atom is a taxonomy code such as "A1.1.1" or "S7.1", optionally
// followed by intensity markers (+/-), rarity markers (% and @), and
// gender/anaphora markers (m, f, c, n). The literal "PUNCT" is accepted
// as a code for punctuation tokens.
package tag

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
)

// codeRE matches a taxonomy code: one uppercase letter, one or more digits,
// then zero or more ".digits" groups. Anchored so it only matches a prefix.
var codeRE = regexp.MustCompile(`^[A-Z](\d+)((\.\d+)+)?`)

// punctLiteral is the sentinel code used for punctuation tokens.
const punctLiteral = "PUNCT"

var (
	positiveRE = regexp.MustCompile(`\++`)
	negativeRE = regexp.MustCompile(`-+`)
)

// ErrNoCode indicates an atom does not start with a taxonomy code or PUNCT.
var ErrNoCode = errors.New("tag: no USAS code prefix")

// Tag is one decoded USAS tag with its markers.
//
// Marker detection is deliberately permissive: each single-character marker
// is an independent presence test on the text left after the code and the
// +/- runs are stripped, so unrecognized stray characters are ignored
// rather than rejected. This matches the behavior of the original USAS
// tagger output conventions.
type Tag struct {
	// Code is the taxonomy code, e.g. "A1.1.1", or the literal "PUNCT".
	Code string

	// PositiveMarkers and NegativeMarkers count the +/- intensity runs.
	PositiveMarkers int
	NegativeMarkers int

	// Rarity1 and Rarity2 report the % and @ rarity markers.
	Rarity1 bool
	Rarity2 bool

	// Male, Female, Antecedent and Neuter report the m, f, c and n markers.
	Male       bool
	Female     bool
	Antecedent bool
	Neuter     bool

	// Idiom is reserved and always false; idiom detection is unsupported.
	Idiom bool
}

// IsPunct reports whether the tag is the punctuation sentinel.
func (t Tag) IsPunct() bool {
	return t.Code == punctLiteral
}

// Minimal returns the code followed by its +/- markers, dropping the
// single-character markers. Re-parsing the result yields the same code and
// marker counts.
func (t Tag) Minimal() string {
	return t.Code + strings.Repeat("+", t.PositiveMarkers) + strings.Repeat("-", t.NegativeMarkers)
}

// Parse decodes a single tag atom. The atom must not contain whitespace or
// the "/" multi-membership separator; use ParseGroups for full tag-spec
// strings.
func Parse(atom string) (Tag, error) {
	var t Tag

	rest := atom
	switch {
	case codeRE.MatchString(rest):
		t.Code = codeRE.FindString(rest)
		rest = codeRE.ReplaceAllString(rest, "")
	case strings.HasPrefix(rest, punctLiteral):
		t.Code = punctLiteral
		rest = strings.TrimPrefix(rest, punctLiteral)
	default:
		return Tag{}, fmt.Errorf("%w: %q", ErrNoCode, atom)
	}

	if m := positiveRE.FindString(rest); m != "" {
		t.PositiveMarkers = len(m)
		rest = positiveRE.ReplaceAllString(rest, "")
	}
	if m := negativeRE.FindString(rest); m != "" {
		t.NegativeMarkers = len(m)
		rest = negativeRE.ReplaceAllString(rest, "")
	}

	// Single-character markers are independent presence tests over the same
	// remainder; they are not consumed and may appear in any order.
	t.Male = strings.Contains(rest, "m")
	t.Female = strings.Contains(rest, "f")
	t.Rarity1 = strings.Contains(rest, "%")
	t.Rarity2 = strings.Contains(rest, "@")
	t.Antecedent = strings.Contains(rest, "c")
	t.Neuter = strings.Contains(rest, "n")

	return t, nil
}
