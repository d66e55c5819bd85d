package usas

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strings"

	"go.uber.org/zap"

	"github.com/lexisemantics/go-usas/tag"
)

// torchQuantifierRows are CSV rows where the annotators wrote the bare
// quantifier tag "N", which is corrected to "N5".
var torchQuantifierRows = map[int]struct{}{
	23: {}, 53: {}, 88: {}, 92: {}, 111: {}, 148: {}, 165: {}, 191: {},
	252: {}, 285: {}, 321: {}, 389: {}, 535: {}, 559: {}, 620: {}, 680: {},
	791: {}, 820: {}, 834: {}, 885: {}, 914: {}, 941: {}, 1026: {}, 1036: {},
	1049: {}, 1102: {}, 1109: {}, 1113: {}, 1117: {}, 1125: {}, 1129: {},
	1136: {}, 1162: {}, 1174: {}, 1199: {},
}

// torchSkipRows are (row, tag) pairs whose annotations are known to be
// unfixable; their semantic tag becomes the empty string without validation.
var torchSkipRows = map[int]string{
	78:   "A1",
	663:  "",
	1457: "E4",
	1705: "N99",
	1706: "N99",
	1768: "N99",
}

// Torch parses the ToRCH corpus, a CSV file with one token per row and the
// columns Token, Corrected-USAS and sentence-break (plus an optional
// Predicted-USAS). Sentences are accumulated across rows and flushed on a
// sentence break. The corpus contains no MWEs.
type Torch struct {
	cfg config
}

// NewTorch creates the parser.
func NewTorch(opts ...Option) *Torch {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	return &Torch{cfg: cfg}
}

// Parse reads the CSV corpus and produces the evaluation dataset. Row
// indexes in errors are 1-based file rows, so the first data row is row 2.
func (p *Torch) Parse(r io.Reader) (*Dataset, error) {
	log := p.cfg.logger
	log.Info("parsing corpus",
		zap.String("dataset", "Torch"),
		zap.Bool("tag_validation", p.cfg.validation != nil),
		zap.Bool("tag_filtering", p.cfg.filter != nil))

	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1

	header, err := cr.Read()
	if err != nil {
		return nil, fmt.Errorf("%w: reading CSV header: %w", ErrMalformedLine, err)
	}
	col := make(map[string]int, len(header))
	for i, name := range header {
		col[name] = i
	}
	for _, required := range []string{"Token", "Corrected-USAS", "sentence-break"} {
		if _, ok := col[required]; !ok {
			return nil, fmt.Errorf("%w: missing CSV column %q in header %v", ErrMalformedLine, required, header)
		}
	}
	predictedCol, hasPredicted := col["Predicted-USAS"]

	var (
		texts        []Text
		tokens       []string
		semanticTags []string
	)
	flush := func() error {
		if len(tokens) == 0 {
			return nil
		}
		text, err := NewText(strings.Join(tokens, " "), tokens, nil, nil, semanticTags, emptyMWESets(len(tokens)))
		if err != nil {
			return err
		}
		texts = append(texts, *text)
		tokens = nil
		semanticTags = nil
		return nil
	}

	for row := 2; ; row++ {
		record, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%w: reading CSV row %d: %w", ErrMalformedLine, row, err)
		}
		field := func(i int) string {
			if i < len(record) {
				return strings.TrimSpace(record[i])
			}
			return ""
		}

		token := field(col["Token"])
		tagString := field(col["Corrected-USAS"])

		// Annotation corrections.
		if _, ok := torchQuantifierRows[row]; ok && tagString == "N" {
			tagString = "N5"
		}
		if tagString == "" && hasPredicted && field(predictedCol) == "PUNCT" {
			tagString = "PUNCT"
		}

		var tagLabel string
		if skip, ok := torchSkipRows[row]; ok && skip == tagString {
			tagLabel = ""
		} else {
			tagLabel, err = p.firstLabel(tagString)
			if err != nil {
				return nil, fmt.Errorf("row %d (%v): %w", row, record, err)
			}
		}

		if err := p.validateToken(token); err != nil {
			return nil, fmt.Errorf("row %d (%v): %w", row, record, err)
		}

		tokens = append(tokens, token)
		semanticTags = append(semanticTags, tagLabel)

		switch strings.ToLower(field(col["sentence-break"])) {
		case "true":
			if err := flush(); err != nil {
				return nil, err
			}
		case "false":
		default:
			return nil, fmt.Errorf("%w: row %d: sentence-break is not a boolean: %q",
				ErrMalformedLine, row, field(col["sentence-break"]))
		}
	}
	if err := flush(); err != nil {
		return nil, err
	}

	log.Info("finished parsing corpus",
		zap.String("dataset", "Torch"),
		zap.Int("texts", len(texts)))
	return &Dataset{
		Name:          "Torch",
		TextLevel:     LevelSentence,
		LabelsRemoved: setToSorted(p.cfg.filter),
		Texts:         texts,
	}, nil
}

// ParseFile opens path and parses it with Parse.
func (p *Torch) ParseFile(path string) (*Dataset, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening corpus: %w", err)
	}
	defer func() { _ = f.Close() }()
	return p.Parse(f)
}

// splitLabels splits an annotated label cell into candidate labels. Cells
// use a fullwidth semicolon, a comma, or whitespace as separator.
func splitLabels(s string) []string {
	var labels []string
	switch {
	case strings.Contains(s, "；"):
		labels = strings.Split(s, "；")
	case strings.Contains(s, ","):
		labels = strings.Split(s, ",")
	default:
		labels = strings.Fields(s)
	}
	cleaned := make([]string, 0, len(labels))
	for _, l := range labels {
		if l = strings.TrimSpace(l); l != "" {
			cleaned = append(cleaned, l)
		}
	}
	return cleaned
}

// firstLabel validates the first candidate label of a cell against the
// configured validation set and returns it joined and filtered. Labels
// after the first separator are discarded without validation.
func (p *Torch) firstLabel(cell string) (string, error) {
	labels := splitLabels(cell)
	if len(labels) == 0 {
		return "", fmt.Errorf("%w: expected at least one label in %q", ErrMalformedLine, cell)
	}
	return validateWholeLabel(labels[0], p.cfg)
}

// validateToken rejects empty tokens and token texts that themselves parse
// as tag specs.
func (p *Torch) validateToken(token string) error {
	if token == "" {
		return fmt.Errorf("%w: empty token", ErrMalformedLine)
	}
	if _, err := tag.ParseGroups(token); err == nil {
		return fmt.Errorf("%w: token %q is a tag", ErrMalformedLine, token)
	}
	return nil
}
