package tag

import (
	"fmt"
	"strings"
)

// Group is the ordered, non-empty set of tags jointly assigned to one token
// position. More than one tag means the token is an equal member of every
// listed semantic category (multi-tag membership, e.g. "F2/O2"). The first
// tag is treated as primary by some corpora, so order is preserved.
type Group struct {
	Tags []Tag
}

// TagString returns the "/"-joined codes of the group, in order.
func (g Group) TagString() string {
	codes := make([]string, len(g.Tags))
	for i, t := range g.Tags {
		codes[i] = t.Code
	}
	return strings.Join(codes, "/")
}

// ParseGroups decodes a whitespace-separated tag-spec string into ordered
// groups. Each whitespace-separated atom is split on "/" into one or more
// co-occurring tags. Empty or whitespace-only input yields no groups and no
// error. Any atom that fails to parse fails the whole call; the error names
// both the offending sub-atom and the atom it came from.
func ParseGroups(s string) ([]Group, error) {
	var groups []Group
	for _, atom := range strings.Fields(s) {
		var tags []Tag
		for _, sub := range strings.Split(atom, "/") {
			t, err := Parse(sub)
			if err != nil {
				return nil, fmt.Errorf("parsing %q in atom %q: %w", sub, atom, err)
			}
			tags = append(tags, t)
		}
		groups = append(groups, Group{Tags: tags})
	}
	return groups, nil
}
