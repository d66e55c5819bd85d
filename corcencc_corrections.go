package usas

// Hand-audited corrections for known annotation mistakes in the CorCenCC
// corpus, keyed by the annotated label and the exact token coordinates.
// corcenccRelabels rewrites a label in place; corcenccSkips drops the label
// (empty semantic tag, no validation). Keys are matched after relabeling,
// so a relabeled entry is never also skipped.

type corcenccKey struct {
	label string
	line  int
	token int
	text  string
}

var corcenccRelabels = map[corcenccKey]string{
	{"I3", 3, 10, "gweithio"}:                 "I3.1",
	{"I3", 18, 17, "waith"}:                   "I3.1",
	{"I3", 37, 16, "gweithio"}:                "I3.1",
	{"I3", 38, 18, "gwaith"}:                  "I3.1",
	{"I3", 57, 5, "gwaith"}:                   "I3.1",
	{"I3", 62, 25, "swyddi"}:                  "I3.1",
	{"I3", 101, 40, "swyddi"}:                 "I3.1",
	{"I3", 133, 12, "weithio"}:                "I3.1",
	{"I3", 225, 7, "waith"}:                   "I3.1",
	{"I3", 227, 8, "waith"}:                   "I3.1",
	{"I3", 259, 21, "ddyletswyddau"}:          "I3.1",
	{"I3", 286, 24, "gwaith"}:                 "I3.1",
	{"I3", 295, 4, "waith"}:                   "I3.1",
	{"I3", 335, 23, "waith"}:                  "I3.1",
	{"I3", 336, 0, "Gwaith"}:                  "I3.1",
	{"I3", 337, 2, "gwaith"}:                  "I3.1",
	{"I3", 341, 20, "waith"}:                  "I3.1",
	{"I3", 351, 4, "gwaith"}:                  "I3.1",
	{"I3", 397, 15, "weithiodd"}:              "I3.1",
	{"A1", 112, 15, "broses"}:                 "A1.1.1",
	{"A1", 191, 15, "broses"}:                 "A1.1.1",
	{"A.1.1.1", 578, 3, "peiriant"}:           "A1.1.1",
	{"A.1.5.1", 147, 9, "ddefnydd"}:           "A1.5.1",
	{"A.1.5.1", 159, 25, "ddefnyddio"}:        "A1.5.1",
	{"T.1.1.1/S2/P1", 248, 20, "cyn-fyfyrwyr"}: "T1.1.1/S2/P1",
	{"T.1.1.2", 326, 24, "eleni"}:             "T1.1.2",
	{"T.1.1.2", 329, 4, "eleni"}:              "T1.1.2",
	{"T.1.1.2", 333, 1, "eleni"}:              "T1.1.2",
	{"T.1.1.2", 391, 43, "gyfoes"}:            "T1.1.2",
	{"A4", 345, 12, "nodweddu"}:               "A4.1",
	{"Q2/T.1.1.1", 381, 0, "Geirdarddiad"}:    "Q2/T1.1.1",
	{"Q2.2/S.1.2.4", 511, 5, "croesawyd"}:     "Q2.2/S1.2.4",
	{"Q.21", 512, 0, "Dywedodd"}:              "Q2.1",
}

var corcenccSkips = map[corcenccKey]struct{}{
	{"I3", 19, 2, "swyddogaethau"}:            {},
	{"I3", 19, 20, "swyddogaethau"}:           {},
	{"I3", 26, 9, "rôl"}:                      {},
	{"I3", 67, 37, "gweithle"}:                {},
	{"I3", 96, 1, "rôl"}:                      {},
	{"I3", 270, 7, "swyddogaeth"}:             {},
	{"I3", 295, 9, "yrfa"}:                    {},
	{"I3", 295, 17, "gweithiodd"}:             {},
	{"I3", 304, 18, "gyrfa"}:                  {},
	{"I3", 460, 2, "gyrfa"}:                   {},
	{"I3/S7", 74, 3, "ddyletswydd"}:           {},
	{"I3/S7", 21, 15, "ddyletswydd"}:          {},
	{"N5.1/I3", 23, 8, "adran"}:               {},
	{"N5.1/I3", 27, 15, "adran"}:              {},
	{"N5.1/I3", 35, 2, "adran"}:               {},
	{"N5.1/I3", 40, 7, "adran"}:               {},
	{"N5.1/I3", 43, 8, "adran"}:               {},
	{"N5.1/I3", 484, 8, "Adran"}:              {},
	{"N5.1/I3", 491, 8, "Adran"}:              {},
	{"!ERR", 23, 37, "welliannau"}:            {},
	{"!ERR", 29, 16, "gwelliannau"}:           {},
	{"!ERR", 63, 18, "gwelliannau"}:           {},
	{"!ERR", 486, 29, "Newyddion"}:            {},
	{"A11", 46, 26, "allweddol"}:              {},
	{"A11", 80, 8, "hollbwysig"}:              {},
	{"A11", 131, 5, "hollbwysig"}:             {},
	{"A11", 195, 15, "brif"}:                  {},
	{"A11", 196, 13, "gwerthfawr"}:            {},
	{"A11", 406, 26, "enwocaf"}:               {},
	{"A11", 434, 29, "statws"}:                {},
	{"A11", 448, 24, "statws"}:                {},
	{"A11", 453, 15, "allweddol"}:             {},
	{"A11", 470, 25, "hollbwysig"}:            {},
	{"A11", 476, 10, "bennaf"}:                {},
	{"A11", 484, 4, "bennaf"}:                 {},
	{"A11", 502, 10, "seiliedig"}:             {},
	{"I3/S2mf", 86, 15, "gweithredwyr"}:       {},
	{"I3/S7.1", 486, 6, "ddyletswydd"}:        {},
	{"S7/X6", 94, 4, "benodir"}:               {},
	{"A11/A10", 104, 14, "swyddogol"}:         {},
	{"A11/A10", 161, 17, "swyddogol"}:         {},
	{"X5-", 115, 17, "frasamcanu"}:            {},
	{"Q1/Y2", 137, 25, "negeseuon"}:           {},
	{"A4", 151, 3, "math"}:                    {},
	{"A4", 217, 4, "thema"}:                   {},
	{"A4", 223, 29, "Themâu"}:                 {},
	{"A4", 223, 45, "themâu"}:                 {},
	{"A4", 273, 3, "teipoleg"}:                {},
	{"A4", 366, 19, "fath"}:                   {},
	{"S7.1+/S.1F", 394, 16, "frenhiniaeth"}:   {},
	{"S7.1+/S.1F", 437, 9, "frenhines"}:       {},
	{"A1", 83, 18, "gyffredinol"}:             {},
	{"A1", 253, 17, "cyffredinol"}:            {},
	{"A1", 514, 19, "gyffredinol"}:            {},
	{"A11/A4.2/S7.1", 237, 22, "brif"}:        {},
	{"A11/A4.2/S7.1", 242, 8, "brif"}:         {},
	{"A4.2/A11", 248, 9, "arbennig"}:          {},
	{"A4.2/A11", 264, 21, "arbennig"}:         {},
	{"A4.2/A11", 282, 5, "Arbennig"}:          {},
	{"A4.2/A11", 299, 3, "arbennig"}:          {},
	{"A11/S7.1", 252, 5, "prif"}:              {},
	{"A11/S7.1", 253, 20, "prif"}:             {},
	{"A11/S7.1", 281, 22, "swyddogol"}:        {},
	{"A11/S7.1", 311, 12, "prif"}:             {},
	{"A11/S7.1", 311, 22, "prif"}:             {},
	{"T.13", 255, 14, "hyd"}:                  {},
	{"T.13", 308, 8, "dal"}:                   {},
	{"N.37", 263, 7, "isaf"}:                  {},
	{"S7.1/A11/A14", 270, 6, "prif"}:          {},
	{"A14/A11", 293, 22, "prif"}:              {},
	{"S2/I3/Q4", 301, 10, "gyflwynydd"}:       {},
	{"A1.8/A11", 309, 14, "eicon"}:            {},
	{"A11/A2.1", 315, 35, "drobwynt"}:         {},
	{"I3/S5", 334, 18, "gydweithio"}:          {},
	{"E4-/S5-", 363, 9, "unigrwydd"}:          {},
	{"E4-/S5-", 365, 28, "unigrwydd"}:         {},
	{"A1.1.1/E4-", 415, 3, "penyd"}:           {},
	{"I3/W3", 420, 24, "chwareli"}:            {},
	{"E4-/I1-/G1.2-", 424, 8, "Dirwasgiad"}:   {},
	{"Q2.2/S7.1/A11+", 444, 7, "seremonïol"}:  {},
	{"S1.1.3/Q.2", 482, 19, "gyfarfod"}:       {},
	{"S1.1.3/Q.2", 514, 1, "cyfarfod"}:        {},
	{"Q2/X4", 495, 49, "sail"}:                {},
	{"A10/A11/Q2", 497, 23, "swyddogol"}:      {},
	{"A10/A11/Q2", 499, 5, "swyddogol"}:       {},
	{"H1/I3", 513, 8, "Swyddfa"}:              {},
	{"H1/I3", 519, 4, "Swyddfa"}:              {},
}
