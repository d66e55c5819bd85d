package usas

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"regexp"
	"sort"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"github.com/lexisemantics/go-usas/tag"
)

// benedictEnglishPunct are the tag-spec payloads that are converted verbatim
// to the PUNCT sentinel, bypassing the tag grammar entirely.
var benedictEnglishPunct = map[string]struct{}{
	"PUNC": {}, "-": {}, ".": {}, ",": {}, "!": {},
}

// mweMarkerRE matches one bracket MWE marker: "[i" then the raw id, the
// declared token total and the position index.
var mweMarkerRE = regexp.MustCompile(`\[i(\d+)\.(\d+)\.(\d+)`)

// BenedictEnglish parses the English Benedict corpus, a human-annotated
// corpus of one sentence per line where each whitespace-separated unit has
// the form "<token>_<tagspec>" followed by an optional bracket MWE marker,
// e.g. "Turkish_F2/O4.5[i86.2.1". MWE spans may be discontinuous.
type BenedictEnglish struct {
	cfg config
}

// NewBenedictEnglish creates the parser.
func NewBenedictEnglish(opts ...Option) *BenedictEnglish {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	return &BenedictEnglish{cfg: cfg}
}

// ValidateLine checks one corpus line token by token and returns the token
// texts and the "/"-joined semantic tag string per token. The special
// punctuation payloads PUNC, "-", ".", "," and "!" become "PUNCT". The
// function is pure; tag filtering and validation happen in Parse.
func (p *BenedictEnglish) ValidateLine(line string) (tokens []string, tags []string, err error) {
	if strings.TrimSpace(line) == "" {
		return nil, nil, fmt.Errorf("%w: empty or whitespace-only line: %q", ErrMalformedLine, line)
	}

	for _, unit := range strings.Fields(line) {
		if !strings.Contains(unit, "_") {
			return nil, nil, fmt.Errorf("%w: expected a single underscore in unit %q for line: %q",
				ErrMalformedLine, unit, line)
		}
		parts := strings.Split(unit, "_")
		if len(parts) != 2 {
			return nil, nil, fmt.Errorf("%w: expected exactly one underscore in unit %q for line: %q",
				ErrMalformedLine, unit, line)
		}

		tokenText, rest := parts[0], parts[1]
		if tokenText == "" {
			return nil, nil, fmt.Errorf("%w: empty token text in unit %q for line: %q",
				ErrMalformedLine, unit, line)
		}
		tokens = append(tokens, tokenText)

		// Everything before the first bracket marker is the tag spec. The
		// token text is never scanned, so a token containing "[i" is fine.
		mweStart := strings.Index(rest, "[i")
		if mweStart == 0 {
			return nil, nil, fmt.Errorf("%w: unit %q has MWE but no tag for line: %q",
				ErrMalformedLine, unit, line)
		}
		tagSpec := rest
		if mweStart > 0 {
			tagSpec = rest[:mweStart]
		}

		if _, ok := benedictEnglishPunct[tagSpec]; ok {
			tags = append(tags, "PUNCT")
			continue
		}
		if tagSpec == "" {
			return nil, nil, fmt.Errorf("%w: empty tag in unit %q for line: %q",
				ErrMalformedLine, unit, line)
		}
		groups, err := tag.ParseGroups(tagSpec)
		if err != nil {
			return nil, nil, fmt.Errorf("%w: invalid tag %q in unit %q for line %q: %w",
				ErrMalformedLine, tagSpec, unit, line, err)
		}
		// The payload holds no whitespace, so exactly one group comes back.
		tags = append(tags, groups[0].TagString())
	}

	return tokens, tags, nil
}

// MWESets recovers per-token MWE membership from the bracket markers of a
// validated line, one set per whitespace unit. Group numbering follows raw
// marker ids sorted ascending and remapped to 1..n, not order of first
// appearance. Discontinuous spans are supported; a declared token total
// that does not match the members found is an error, as is more than one
// marker on a single unit.
func (p *BenedictEnglish) MWESets(line string) ([]MWESet, error) {
	if strings.TrimSpace(line) == "" {
		return nil, nil
	}

	units := strings.Fields(line)
	// declared maps raw id -> declared token total; members maps raw id ->
	// unit positions found.
	declared := make(map[int]int)
	members := make(map[int][]int)
	// perUnit records the raw id per unit, -1 for none.
	perUnit := make([]int, 0, len(units))

	for i, unit := range units {
		parts := strings.Split(unit, "_")
		if len(parts) != 2 {
			return nil, fmt.Errorf("%w: expected a single underscore in unit %q separating the token from the tag and MWE information for line: %q",
				ErrMalformedLine, unit, line)
		}
		rest := parts[1]

		matches := mweMarkerRE.FindAllStringSubmatch(rest, -1)
		if len(matches) == 0 {
			// A marker start without the full numeric pattern is broken
			// unless the unit still closes its bracket.
			if strings.Contains(rest, "[i") && !strings.HasSuffix(rest, "]") {
				return nil, fmt.Errorf("%w: malformed marker in unit %q for line: %q",
					ErrInvalidMWE, unit, line)
			}
			perUnit = append(perUnit, -1)
			continue
		}
		if len(matches) > 1 {
			return nil, fmt.Errorf("%w: multiple MWE markers on unit %q (nesting unsupported) for line: %q",
				ErrInvalidMWE, unit, line)
		}

		m := matches[0]
		rawID, err := strconv.Atoi(m[1])
		if err != nil {
			return nil, fmt.Errorf("%w: non-numeric id in unit %q for line: %q", ErrInvalidMWE, unit, line)
		}
		total, err := strconv.Atoi(m[2])
		if err != nil {
			return nil, fmt.Errorf("%w: non-numeric token total in unit %q for line: %q", ErrInvalidMWE, unit, line)
		}
		if _, err := strconv.Atoi(m[3]); err != nil {
			return nil, fmt.Errorf("%w: non-numeric position in unit %q for line: %q", ErrInvalidMWE, unit, line)
		}

		// The first declaration of an id fixes its expected total.
		if _, ok := declared[rawID]; !ok {
			declared[rawID] = total
		}
		members[rawID] = append(members[rawID], i)
		perUnit = append(perUnit, rawID)
	}

	rawIDs := make([]int, 0, len(members))
	for id := range members {
		rawIDs = append(rawIDs, id)
	}
	sort.Ints(rawIDs)

	for _, id := range rawIDs {
		if got, want := len(members[id]), declared[id]; got != want {
			return nil, fmt.Errorf("%w: MWE %d has %d tokens but expected %d for line: %q",
				ErrInvalidMWE, id, got, want, line)
		}
	}

	// Remap raw ids to sequential ids in sorted raw-id order.
	remap := make(map[int]int, len(rawIDs))
	for i, id := range rawIDs {
		remap[id] = i + 1
	}

	sets := make([]MWESet, len(perUnit))
	for i, id := range perUnit {
		if id >= 0 {
			sets[i] = NewMWESet(remap[id])
		} else {
			sets[i] = NewMWESet()
		}
	}
	return sets, nil
}

// Parse reads the corpus line by line and produces the evaluation dataset.
// Blank lines are skipped but still counted in the reported line indexes.
func (p *BenedictEnglish) Parse(r io.Reader) (*Dataset, error) {
	log := p.cfg.logger
	log.Info("parsing corpus",
		zap.String("dataset", "Benedict English"),
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
		zap.String("dataset", "Benedict English"),
		zap.Int("texts", len(texts)))
	return &Dataset{
		Name:          "Benedict English",
		TextLevel:     LevelSentence,
		LabelsRemoved: setToSorted(p.cfg.filter),
		Texts:         texts,
	}, nil
}

// ParseFile opens path and parses it with Parse.
func (p *BenedictEnglish) ParseFile(path string) (*Dataset, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening corpus: %w", err)
	}
	defer func() { _ = f.Close() }()
	return p.Parse(bufio.NewReader(f))
}

func (p *BenedictEnglish) parseLine(index int, line string) (*Text, error) {
	p.cfg.logger.Debug("validating line", zap.Int("line", index))

	tokens, tags, err := p.ValidateLine(line)
	if err != nil {
		return nil, fmt.Errorf("line %d: %w", index, err)
	}

	if err := rejectTagLikeTokens(index, line, tokens); err != nil {
		return nil, err
	}
	tags = applyTagFilter(tags, p.cfg.filter)
	if err := validateTags(index, line, tags, p.cfg.validation); err != nil {
		return nil, err
	}

	mweSets, err := p.MWESets(line)
	if err != nil {
		return nil, fmt.Errorf("line %d: %w", index, err)
	}

	return NewText(line, tokens, nil, nil, tags, mweSets)
}

// readLines collects non-blank trimmed lines with their zero-based indexes;
// blank lines advance the index so errors point at real file positions.
func readLines(r io.Reader) ([]lineJob, error) {
	var jobs []lineJob
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 4*1024*1024)

	index := 0
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line != "" {
			jobs = append(jobs, lineJob{index: index, line: line})
		}
		index++
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading corpus: %w", err)
	}
	return jobs, nil
}

