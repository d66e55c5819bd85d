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

// corcenccFieldCount is the number of "|"-separated fields per token entry:
// token, lemma, core POS, true basic POS, predicted enriched POS, predicted
// basic POS, and the USAS tag.
const corcenccFieldCount = 7

// CorCenCC parses the CorCenCC Welsh corpus: one sentence per line, each
// token entry a 7-field "|"-separated record such as
// "A|a|pron|Rha|Rhaperth|Rha|Z5". Lemma and POS fields are carried along
// unparsed. The corpus contains no MWEs.
type CorCenCC struct {
	cfg config
}

// NewCorCenCC creates the parser.
func NewCorCenCC(opts ...Option) *CorCenCC {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	return &CorCenCC{cfg: cfg}
}

// Parse reads the corpus line by line and produces the evaluation dataset.
// Known annotation mistakes are corrected or skipped per the tables in
// corcencc_corrections.go before validation.
func (p *CorCenCC) Parse(r io.Reader) (*Dataset, error) {
	log := p.cfg.logger
	log.Info("parsing corpus",
		zap.String("dataset", "Corcencc"),
		zap.Bool("tag_validation", p.cfg.validation != nil),
		zap.Bool("tag_filtering", p.cfg.filter != nil))

	var texts []Text
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 4*1024*1024)

	lineIndex := -1
	for scanner.Scan() {
		lineIndex++
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		log.Debug("validating line", zap.Int("line", lineIndex))

		var (
			tokens       []string
			semanticTags []string
		)
		for tokenIndex, entry := range strings.Fields(line) {
			fields := strings.Split(entry, "|")
			if len(fields) != corcenccFieldCount {
				return nil, fmt.Errorf("%w: expected %d columns but found %d at line %d: %q",
					ErrMalformedLine, corcenccFieldCount, len(fields), lineIndex, line)
			}

			token := strings.TrimSpace(fields[0])
			label := strings.TrimSpace(fields[6])

			key := corcenccKey{label: label, line: lineIndex, token: tokenIndex, text: token}
			if corrected, ok := corcenccRelabels[key]; ok {
				label = corrected
				key.label = label
			}

			if _, skip := corcenccSkips[key]; skip {
				label = ""
			} else {
				validated, err := validateWholeLabel(label, p.cfg)
				if err != nil {
					return nil, fmt.Errorf("line %d: %q: %w", lineIndex, line, err)
				}
				label = validated
			}

			if err := p.validateToken(token); err != nil {
				return nil, fmt.Errorf("line %d: %q: %w", lineIndex, line, err)
			}
			tokens = append(tokens, token)
			semanticTags = append(semanticTags, label)
		}

		text, err := NewText(strings.Join(tokens, " "), tokens, nil, nil, semanticTags, emptyMWESets(len(tokens)))
		if err != nil {
			return nil, err
		}
		texts = append(texts, *text)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading corpus: %w", err)
	}

	log.Info("finished parsing corpus",
		zap.String("dataset", "Corcencc"),
		zap.Int("texts", len(texts)))
	return &Dataset{
		Name:          "Corcencc",
		TextLevel:     LevelSentence,
		LabelsRemoved: setToSorted(p.cfg.filter),
		Texts:         texts,
	}, nil
}

// ParseFile opens path and parses it with Parse.
func (p *CorCenCC) ParseFile(path string) (*Dataset, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening corpus: %w", err)
	}
	defer func() { _ = f.Close() }()
	return p.Parse(bufio.NewReader(f))
}

// validateToken rejects empty tokens and token texts that parse as tag
// specs. "S4C" (the Welsh broadcaster) is exempt: it is a real token that
// happens to look like a taxonomy code.
func (p *CorCenCC) validateToken(token string) error {
	if token == "" {
		return fmt.Errorf("%w: empty token", ErrMalformedLine)
	}
	if token == "S4C" {
		return nil
	}
	if _, err := tag.ParseGroups(token); err == nil {
		return fmt.Errorf("%w: token %q is a tag", ErrMalformedLine, token)
	}
	return nil
}
