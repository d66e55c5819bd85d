package usas

import (
	"fmt"
	"sort"
	"strings"

	"github.com/lexisemantics/go-usas/tag"
)

// validateWholeLabel parses one annotated label cell, enforces that it holds
// exactly one tag group, checks each tag code against the validation set
// (PUNCT exempt), and returns the "/"-joined codes with the filter applied.
func validateWholeLabel(label string, cfg config) (string, error) {
	groups, err := tag.ParseGroups(label)
	if err != nil {
		return "", fmt.Errorf("%w: invalid label %q: %w", ErrMalformedLine, label, err)
	}
	if len(groups) != 1 {
		return "", fmt.Errorf("%w: expected one tag group in label %q, got %d", ErrMalformedLine, label, len(groups))
	}

	codes := make([]string, 0, len(groups[0].Tags))
	for _, t := range groups[0].Tags {
		if !t.IsPunct() && cfg.validation != nil {
			if _, ok := cfg.validation[t.Code]; !ok {
				return "", fmt.Errorf("%w: %q", ErrTagNotAllowed, t.Code)
			}
		}
		codes = append(codes, t.Code)
	}
	joined := strings.Join(codes, "/")

	if cfg.filter != nil {
		if _, ok := cfg.filter[joined]; ok {
			joined = ""
		}
	}
	return joined, nil
}

// rejectTagLikeTokens fails if any token text itself parses as a tag spec,
// which signals a shifted or corrupted line.
func rejectTagLikeTokens(index int, line string, tokens []string) error {
	for _, token := range tokens {
		if _, err := tag.ParseGroups(token); err == nil {
			return fmt.Errorf("%w: line %d: token %q is a tag for line: %q",
				ErrMalformedLine, index, token, line)
		}
	}
	return nil
}

// applyTagFilter blanks any tag string that is in the filter set. The full
// joined multi-tag string must match.
func applyTagFilter(tags []string, filter map[string]struct{}) []string {
	if filter == nil {
		return tags
	}
	out := make([]string, len(tags))
	for i, t := range tags {
		if _, ok := filter[t]; ok {
			out[i] = ""
		} else {
			out[i] = t
		}
	}
	return out
}

// validateTags checks every sub-tag against the validation set, skipping
// PUNCT and tags blanked by filtering.
func validateTags(index int, line string, tags []string, validation map[string]struct{}) error {
	if validation == nil {
		return nil
	}
	for _, t := range tags {
		if t == "PUNCT" || t == "" {
			continue
		}
		for _, sub := range strings.Split(t, "/") {
			if _, ok := validation[sub]; !ok {
				return fmt.Errorf("%w: line %d: tag %q for line: %q", ErrTagNotAllowed, index, sub, line)
			}
		}
	}
	return nil
}

func setToSorted(set map[string]struct{}) []string {
	if set == nil {
		return nil
	}
	out := make([]string, 0, len(set))
	for s := range set {
		out = append(out, s)
	}
	sort.Strings(out)
	return out
}

func emptyMWESets(n int) []MWESet {
	sets := make([]MWESet, n)
	for i := range sets {
		sets[i] = NewMWESet()
	}
	return sets
}
