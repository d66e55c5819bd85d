package usas

import (
	"encoding/json"
	"fmt"
	"sort"
)

// TextLevel is the unit of text each entry in a dataset represents.
type TextLevel string

const (
	LevelSentence  TextLevel = "sentence"
	LevelParagraph TextLevel = "paragraph"
	LevelDocument  TextLevel = "document"
)

// MWESet holds the multi-word-expression ids a token belongs to. An empty
// set means the token is not part of any MWE. In every supported corpus a
// token belongs to at most one MWE, but the type allows more for generality.
type MWESet map[int]struct{}

// NewMWESet builds a set from the given ids.
func NewMWESet(ids ...int) MWESet {
	s := make(MWESet, len(ids))
	for _, id := range ids {
		s[id] = struct{}{}
	}
	return s
}

// Contains reports whether id is in the set.
func (s MWESet) Contains(id int) bool {
	_, ok := s[id]
	return ok
}

// IDs returns the member ids in ascending order.
func (s MWESet) IDs() []int {
	ids := make([]int, 0, len(s))
	for id := range s {
		ids = append(ids, id)
	}
	sort.Ints(ids)
	return ids
}

// MarshalJSON encodes the set as a sorted id array.
func (s MWESet) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.IDs())
}

// UnmarshalJSON decodes an id array.
func (s *MWESet) UnmarshalJSON(data []byte) error {
	var ids []int
	if err := json.Unmarshal(data, &ids); err != nil {
		return err
	}
	*s = NewMWESet(ids...)
	return nil
}

// Text is one evaluation unit (a sentence, paragraph or document). The
// optional parallel sequences must all match the token count; NewText
// enforces this once at construction and the value is not mutated after.
type Text struct {
	Text         string   `json:"text"`
	Tokens       []string `json:"tokens"`
	Lemmas       []string `json:"lemmas,omitempty"`
	POSTags      []string `json:"pos_tags,omitempty"`
	SemanticTags []string `json:"semantic_tags,omitempty"`
	MWEIndexes   []MWESet `json:"mwe_indexes,omitempty"`
}

// NewText validates that every non-nil parallel sequence matches the token
// count and returns the assembled unit.
func NewText(text string, tokens, lemmas, posTags, semanticTags []string, mweIndexes []MWESet) (*Text, error) {
	n := len(tokens)
	if lemmas != nil && len(lemmas) != n {
		return nil, fmt.Errorf("%w: %d tokens but %d lemmas", ErrLengthMismatch, n, len(lemmas))
	}
	if posTags != nil && len(posTags) != n {
		return nil, fmt.Errorf("%w: %d tokens but %d POS tags", ErrLengthMismatch, n, len(posTags))
	}
	if semanticTags != nil && len(semanticTags) != n {
		return nil, fmt.Errorf("%w: %d tokens but %d semantic tags", ErrLengthMismatch, n, len(semanticTags))
	}
	if mweIndexes != nil && len(mweIndexes) != n {
		return nil, fmt.Errorf("%w: %d tokens but %d MWE index sets", ErrLengthMismatch, n, len(mweIndexes))
	}
	return &Text{
		Text:         text,
		Tokens:       tokens,
		Lemmas:       lemmas,
		POSTags:      posTags,
		SemanticTags: semanticTags,
		MWEIndexes:   mweIndexes,
	}, nil
}

// Dataset is a parsed corpus in the uniform evaluation representation. It
// can hold either gold annotations or model predictions.
type Dataset struct {
	Name          string    `json:"name"`
	TextLevel     TextLevel `json:"text_level"`
	LabelsRemoved []string  `json:"labels_removed,omitempty"`
	Texts         []Text    `json:"texts"`
}
