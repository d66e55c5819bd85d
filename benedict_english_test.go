package usas

import (
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBenedictEnglish_ValidateLine(t *testing.T) {
	p := NewBenedictEnglish()

	line := "Turkish_F2/O4.5[i86.2.1 grind_F2/O4.5[i86.2.2 -_- extremely_A13.3 finely_O4.5 ground_A1.1.1 ,_PUNC dust-like_O4.1"
	tokens, tags, err := p.ValidateLine(line)
	require.NoError(t, err)

	assert.Equal(t, []string{"Turkish", "grind", "-", "extremely", "finely", "ground", ",", "dust-like"}, tokens)
	assert.Equal(t, []string{"F2/O4.5", "F2/O4.5", "PUNCT", "A13.3", "O4.5", "A1.1.1", "PUNCT", "O4.1"}, tags)
}

func TestBenedictEnglish_ValidateLine_Errors(t *testing.T) {
	tests := []struct {
		name string
		line string
		want error
	}{
		{"whitespace only", "   ", ErrMalformedLine},
		{"no underscore", "ground A1.1.1", ErrMalformedLine},
		{"two underscores", "dust_like_O4.1", ErrMalformedLine},
		{"empty token text", "_A1.1.1", ErrMalformedLine},
		{"empty tag", "ground_", ErrMalformedLine},
		{"marker but no tag", "ground_[i86.2.1", ErrMalformedLine},
		{"unparseable tag", "ground_zzz", ErrMalformedLine},
	}

	p := NewBenedictEnglish()
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, _, err := p.ValidateLine(tc.line)
			require.Error(t, err)
			assert.ErrorIs(t, err, tc.want)
		})
	}
}

func TestBenedictEnglish_ValidateLine_TokenMayContainMarkerStart(t *testing.T) {
	// The marker search runs on the tag side of the underscore only.
	p := NewBenedictEnglish()
	tokens, tags, err := p.ValidateLine("odd[itoken_A1.1.1")
	require.NoError(t, err)
	assert.Equal(t, []string{"odd[itoken"}, tokens)
	assert.Equal(t, []string{"A1.1.1"}, tags)
}

func TestBenedictEnglish_MWESets(t *testing.T) {
	tests := []struct {
		name string
		line string
		want []MWESet
	}{
		{
			"contiguous pair",
			"Turkish_F2/O4.5[i86.2.1 grind_F2/O4.5[i86.2.2 -_- extremely_A13.3",
			[]MWESet{NewMWESet(1), NewMWESet(1), NewMWESet(), NewMWESet()},
		},
		{
			"discontinuous span",
			"Vac_F2/O2[i136.3.1 pot_F2/O2[i136.3.2 is_A3+ by_A13.3[i136.3.3 far_A13.3",
			[]MWESet{NewMWESet(1), NewMWESet(1), NewMWESet(), NewMWESet(1), NewMWESet()},
		},
		{
			"no markers",
			"finely_O4.5 ground_A1.1.1",
			[]MWESet{NewMWESet(), NewMWESet()},
		},
		{
			// Group ids follow sorted raw ids, not first appearance.
			"sorted id remap",
			"a_A1[i90.1.1 b_A1[i86.1.1",
			[]MWESet{NewMWESet(2), NewMWESet(1)},
		},
	}

	p := NewBenedictEnglish()
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := p.MWESets(tc.line)
			require.NoError(t, err)
			if diff := cmp.Diff(tc.want, got); diff != "" {
				t.Errorf("MWESets mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestBenedictEnglish_MWESets_Empty(t *testing.T) {
	p := NewBenedictEnglish()
	got, err := p.MWESets("  ")
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestBenedictEnglish_MWESets_Errors(t *testing.T) {
	tests := []struct {
		name string
		line string
		want error
	}{
		{"count mismatch", "Turkish_F2[i86.3.1 grind_O4[i86.3.2", ErrInvalidMWE},
		{"multiple markers on one unit", "x_A1[i2.1.1[i3.1.1 y_A1", ErrInvalidMWE},
		{"truncated marker", "x_A1[i86.2 y_A1", ErrInvalidMWE},
		{"no underscore", "ground A1", ErrMalformedLine},
	}

	p := NewBenedictEnglish()
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := p.MWESets(tc.line)
			require.Error(t, err)
			assert.ErrorIs(t, err, tc.want)
		})
	}
}

func TestBenedictEnglish_MWESets_ClosedBracketTolerated(t *testing.T) {
	// A "[i" without the numeric pattern is tolerated when the unit still
	// closes its bracket; the unit simply has no MWE membership.
	p := NewBenedictEnglish()
	got, err := p.MWESets("x_A1[iword] y_A1")
	require.NoError(t, err)
	if diff := cmp.Diff([]MWESet{NewMWESet(), NewMWESet()}, got); diff != "" {
		t.Errorf("MWESets mismatch (-want +got):\n%s", diff)
	}
}

func TestBenedictEnglish_Parse(t *testing.T) {
	input := strings.Join([]string{
		"Turkish_F2/O4.5[i86.2.1 grind_F2/O4.5[i86.2.2 -_- extremely_A13.3",
		"",
		"Vac_F2/O2[i136.3.1 pot_F2/O2[i136.3.2 is_A3+ by_A13.3[i136.3.3 far_A13.3",
	}, "\n")

	ds, err := NewBenedictEnglish().Parse(strings.NewReader(input))
	require.NoError(t, err)

	assert.Equal(t, "Benedict English", ds.Name)
	assert.Equal(t, LevelSentence, ds.TextLevel)
	require.Len(t, ds.Texts, 2)

	first := ds.Texts[0]
	assert.Equal(t, []string{"Turkish", "grind", "-", "extremely"}, first.Tokens)
	assert.Equal(t, []string{"F2/O4.5", "F2/O4.5", "PUNCT", "A13.3"}, first.SemanticTags)
	if diff := cmp.Diff([]MWESet{NewMWESet(1), NewMWESet(1), NewMWESet(), NewMWESet()}, first.MWEIndexes); diff != "" {
		t.Errorf("MWE indexes mismatch (-want +got):\n%s", diff)
	}

	second := ds.Texts[1]
	if diff := cmp.Diff([]MWESet{NewMWESet(1), NewMWESet(1), NewMWESet(), NewMWESet(1), NewMWESet()}, second.MWEIndexes); diff != "" {
		t.Errorf("MWE indexes mismatch (-want +got):\n%s", diff)
	}
}

func TestBenedictEnglish_Parse_TagLikeToken(t *testing.T) {
	// A token text that parses as a tag spec means the line is shifted.
	_, err := NewBenedictEnglish().Parse(strings.NewReader("A1.1.1_O4.5 ground_A1.1.1"))
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrMalformedLine)
}

func TestBenedictEnglish_Parse_Validation(t *testing.T) {
	line := "extremely_A13.3 finely_O4.5"

	_, err := NewBenedictEnglish(WithTagValidation([]string{"A13.3"})).
		Parse(strings.NewReader(line))
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrTagNotAllowed)
	assert.Contains(t, err.Error(), "O4.5")

	ds, err := NewBenedictEnglish(WithTagValidation([]string{"A13.3", "O4.5"})).
		Parse(strings.NewReader(line))
	require.NoError(t, err)
	assert.Equal(t, []string{"A13.3", "O4.5"}, ds.Texts[0].SemanticTags)
}

func TestBenedictEnglish_Parse_FilterExemptsValidation(t *testing.T) {
	// A filtered tag becomes the empty string, which validation skips.
	// The full joined string must match: filtering F2 alone leaves F2/O4.5.
	line := "Turkish_F2/O4.5 tea_F2 -_-"

	ds, err := NewBenedictEnglish(
		WithTagValidation([]string{"F2", "O4.5"}),
		WithTagFilter([]string{"F2"}),
	).Parse(strings.NewReader(line))
	require.NoError(t, err)

	assert.Equal(t, []string{"F2/O4.5", "", "PUNCT"}, ds.Texts[0].SemanticTags)
	assert.Equal(t, []string{"F2"}, ds.LabelsRemoved)
}

func TestBenedictEnglish_Parse_WorkersMatchSequential(t *testing.T) {
	var lines []string
	for i := 0; i < 40; i++ {
		lines = append(lines, "Vac_F2/O2[i136.3.1 pot_F2/O2[i136.3.2 is_A3+ by_A13.3[i136.3.3 far_A13.3")
	}
	input := strings.Join(lines, "\n")

	sequential, err := NewBenedictEnglish().Parse(strings.NewReader(input))
	require.NoError(t, err)
	parallel, err := NewBenedictEnglish(WithWorkers(8)).Parse(strings.NewReader(input))
	require.NoError(t, err)

	if diff := cmp.Diff(sequential, parallel); diff != "" {
		t.Errorf("parallel parse differs from sequential (-seq +par):\n%s", diff)
	}
}

func TestBenedictEnglish_Parse_WorkersReportEarliestError(t *testing.T) {
	input := strings.Join([]string{
		"fine_A13.3",
		"broken line",
		"also_broken_here",
	}, "\n")

	seqErr := func() error {
		_, err := NewBenedictEnglish().Parse(strings.NewReader(input))
		return err
	}()
	parErr := func() error {
		_, err := NewBenedictEnglish(WithWorkers(4)).Parse(strings.NewReader(input))
		return err
	}()

	require.Error(t, seqErr)
	require.Error(t, parErr)
	assert.Equal(t, seqErr.Error(), parErr.Error())
	assert.Contains(t, parErr.Error(), "line 1")
	assert.False(t, errors.Is(parErr, ErrInvalidMWE))
}
