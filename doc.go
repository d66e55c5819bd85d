// Package usas normalizes USAS-tagged text corpora into a uniform dataset
// representation for evaluating word-sense-disambiguation models.
//
// # Quick Start
//
//	p := usas.NewBenedictEnglish()
//	ds, err := p.ParseFile("benedict-en.txt")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Printf("%d sentences\n", len(ds.Texts))
//
// # Corpus Formats
//
// Four corpus formats are supported, each with its own parser:
//   - BenedictEnglish: whitespace-separated "token_tagspec" units with
//     optional bracket MWE markers ("[i86.2.1"), discontinuous spans allowed.
//   - BenedictFinnish: "token_tagspec" units with an "_i" suffix flagging
//     contiguous MWE runs.
//   - Torch: CSV rows (Token, Corrected-USAS, sentence-break), no MWEs.
//   - CorCenCC: "|"-separated 7-field token entries, no MWEs.
//
// Tag-spec strings are decoded by the tag subpackage; tag description trees
// used to build validation sets are loaded by the taxonomy subpackage.
//
// # Thread Safety
//
// Parsers hold only configuration and are safe for concurrent use. Line
// validation is pure; WithWorkers enables parallel per-line validation
// without changing output order or failure behavior.
package usas
