package usas

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"go.uber.org/zap"

	"github.com/lexisemantics/go-usas/tag"
)

// benedictFinnishPunct are the bare units accepted as punctuation when a
// unit carries no underscore at all.
var benedictFinnishPunct = map[string]struct{}{
	"-": {}, ".": {}, ",": {}, "!": {}, ":": {}, "(": {}, ")": {}, `"`: {}, "?": {},
}

// BenedictFinnish parses the Finnish Benedict corpus. Units are "<token>",
// "<token>_<tagspec>" or "<token>_<tagspec>_i"; the trailing "_i" flags MWE
// membership, and each contiguous run of flagged units forms one MWE. This
// format cannot represent discontinuous spans.
type BenedictFinnish struct {
	cfg config
}

// NewBenedictFinnish creates the parser.
func NewBenedictFinnish(opts ...Option) *BenedictFinnish {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	return &BenedictFinnish{cfg: cfg}
}

// ValidateLine validates one corpus line and assembles the full text unit
// in a single pass: token texts, "/"-joined semantic tags, and MWE sets
// numbered sequentially per flagged run. The function is pure; tag
// filtering and validation happen in Parse.
func (p *BenedictFinnish) ValidateLine(line string) (*Text, error) {
	line = strings.TrimSpace(line)
	if line == "" {
		return nil, fmt.Errorf("%w: empty line", ErrMalformedLine)
	}

	var (
		tokens   []string
		tags     []string
		mweSets  []MWESet
		mweIndex int
		inMWE    bool
	)

	for _, unit := range strings.Fields(line) {
		segments := strings.Split(unit, "_")
		var tokenText, tagSpec string

		switch len(segments) {
		case 1:
			tokenText = segments[0]
			if _, ok := benedictFinnishPunct[tokenText]; !ok {
				return nil, fmt.Errorf("%w: unit %q is neither punctuation nor token_tagspec for line: %q",
					ErrMalformedLine, unit, line)
			}
			tagSpec = "PUNCT"
			inMWE = false
		case 2:
			tokenText = segments[0]
			tagSpec = segments[1]
			inMWE = false
		case 3:
			tokenText = segments[0]
			tagSpec = segments[1]
			if segments[2] != "i" {
				return nil, fmt.Errorf("%w: expected MWE index token \"i\", got %q in unit %q for line: %q",
					ErrMalformedLine, segments[2], unit, line)
			}
			// A new run starts a new group; ids are assigned in run order.
			if !inMWE {
				mweIndex++
			}
			inMWE = true
		default:
			return nil, fmt.Errorf("%w: unit %q contains more than two underscores for line: %q",
				ErrMalformedLine, unit, line)
		}

		if strings.TrimSpace(tokenText) == "" {
			return nil, fmt.Errorf("%w: empty token text in unit %q for line: %q",
				ErrMalformedLine, unit, line)
		}

		tagString := tagSpec
		if tagSpec != "PUNCT" {
			groups, err := tag.ParseGroups(tagSpec)
			if err != nil {
				return nil, fmt.Errorf("%w: invalid tag %q in unit %q for line %q: %w",
					ErrMalformedLine, tagSpec, unit, line, err)
			}
			tagString = groups[0].TagString()
		}

		tokens = append(tokens, tokenText)
		tags = append(tags, tagString)
		if inMWE {
			mweSets = append(mweSets, NewMWESet(mweIndex))
		} else {
			mweSets = append(mweSets, NewMWESet())
		}
	}

	return NewText(line, tokens, nil, nil, tags, mweSets)
}

// Parse reads the corpus line by line and produces the evaluation dataset.
func (p *BenedictFinnish) Parse(r io.Reader) (*Dataset, error) {
	log := p.cfg.logger
	log.Info("parsing corpus",
		zap.String("dataset", "Benedict Finnish"),
		zap.Bool("tag_validation", p.cfg.validation != nil),
		zap.Bool("tag_filtering", p.cfg.filter != nil))

	jobs, err := readLines(r)
	if err != nil {
		return nil, err
	}

	texts, err := mapLines(jobs, p.cfg.workers, p.parseLine)
	if err != nil {
		return nil, err
	}

	log.Info("finished parsing corpus",
		zap.String("dataset", "Benedict Finnish"),
		zap.Int("texts", len(texts)))
	return &Dataset{
		Name:          "Benedict Finnish",
		TextLevel:     LevelSentence,
		LabelsRemoved: setToSorted(p.cfg.filter),
		Texts:         texts,
	}, nil
}

// ParseFile opens path and parses it with Parse.
func (p *BenedictFinnish) ParseFile(path string) (*Dataset, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening corpus: %w", err)
	}
	defer func() { _ = f.Close() }()
	return p.Parse(bufio.NewReader(f))
}

func (p *BenedictFinnish) parseLine(index int, line string) (*Text, error) {
	p.cfg.logger.Debug("validating line", zap.Int("line", index))

	text, err := p.ValidateLine(line)
	if err != nil {
		return nil, fmt.Errorf("line %d: %w", index, err)
	}

	if err := rejectTagLikeTokens(index, line, text.Tokens); err != nil {
		return nil, err
	}
	text.SemanticTags = applyTagFilter(text.SemanticTags, p.cfg.filter)
	if err := validateTags(index, line, text.SemanticTags, p.cfg.validation); err != nil {
		return nil, err
	}

	return text, nil
}
