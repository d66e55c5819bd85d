package usas

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewText(t *testing.T) {
	text, err := NewText("a cat",
		[]string{"a", "cat"},
		[]string{"a", "cat"},
		[]string{"DET", "NOUN"},
		[]string{"Z5", "L2"},
		[]MWESet{NewMWESet(), NewMWESet()})
	require.NoError(t, err)
	assert.Equal(t, "a cat", text.Text)
	assert.Equal(t, []string{"Z5", "L2"}, text.SemanticTags)
}

func TestNewText_NilSequencesAllowed(t *testing.T) {
	text, err := NewText("a cat", []string{"a", "cat"}, nil, nil, nil, nil)
	require.NoError(t, err)
	assert.Nil(t, text.Lemmas)
	assert.Nil(t, text.MWEIndexes)
}

func TestNewText_LengthMismatch(t *testing.T) {
	tokens := []string{"a", "cat"}
	short := []string{"one"}

	tests := []struct {
		name string
		err  error
	}{
		{"lemmas", func() error { _, err := NewText("", tokens, short, nil, nil, nil); return err }()},
		{"pos tags", func() error { _, err := NewText("", tokens, nil, short, nil, nil); return err }()},
		{"semantic tags", func() error { _, err := NewText("", tokens, nil, nil, short, nil); return err }()},
		{"mwe sets", func() error { _, err := NewText("", tokens, nil, nil, nil, []MWESet{NewMWESet()}); return err }()},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			require.Error(t, tc.err)
			assert.True(t, errors.Is(tc.err, ErrLengthMismatch))
		})
	}
}

func TestMWESet(t *testing.T) {
	s := NewMWESet(3, 1, 3)
	assert.True(t, s.Contains(1))
	assert.True(t, s.Contains(3))
	assert.False(t, s.Contains(2))
	assert.Equal(t, []int{1, 3}, s.IDs())
	assert.Empty(t, NewMWESet().IDs())
}

func TestMWESet_JSON(t *testing.T) {
	data, err := json.Marshal(NewMWESet(2, 1))
	require.NoError(t, err)
	assert.Equal(t, "[1,2]", string(data))

	var s MWESet
	require.NoError(t, json.Unmarshal([]byte("[4,2]"), &s))
	assert.Equal(t, NewMWESet(2, 4), s)

	data, err = json.Marshal(NewMWESet())
	require.NoError(t, err)
	assert.Equal(t, "[]", string(data))
}

func TestDataset_JSONRoundTrip(t *testing.T) {
	text, err := NewText("Vac pot", []string{"Vac", "pot"}, nil, nil,
		[]string{"F2/O2", "F2/O2"}, []MWESet{NewMWESet(1), NewMWESet(1)})
	require.NoError(t, err)

	in := Dataset{
		Name:          "Benedict English",
		TextLevel:     LevelSentence,
		LabelsRemoved: []string{"Z5"},
		Texts:         []Text{*text},
	}
	data, err := json.Marshal(in)
	require.NoError(t, err)

	var out Dataset
	require.NoError(t, json.Unmarshal(data, &out))
	assert.Equal(t, in, out)
}
