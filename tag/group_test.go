package tag

import (
	"strings"
	"testing"
)

func TestParseGroups_Empty(t *testing.T) {
	for _, input := range []string{"", " ", "   ", "\t \n"} {
		groups, err := ParseGroups(input)
		if err != nil {
			t.Fatalf("ParseGroups(%q) failed: %v", input, err)
		}
		if len(groups) != 0 {
			t.Errorf("ParseGroups(%q) = %v, want empty", input, groups)
		}
	}
}

func TestParseGroups_MultiMembership(t *testing.T) {
	groups, err := ParseGroups("Z2/S2mf")
	if err != nil {
		t.Fatalf("ParseGroups failed: %v", err)
	}
	if len(groups) != 1 {
		t.Fatalf("expected 1 group, got %d", len(groups))
	}
	tags := groups[0].Tags
	if len(tags) != 2 {
		t.Fatalf("expected 2 tags, got %d", len(tags))
	}
	if tags[0].Code != "Z2" || tags[0] != (Tag{Code: "Z2"}) {
		t.Errorf("first tag = %+v, want plain Z2", tags[0])
	}
	if tags[1].Code != "S2" || !tags[1].Male || !tags[1].Female {
		t.Errorf("second tag = %+v, want S2 with male and female", tags[1])
	}
	if got := groups[0].TagString(); got != "Z2/S2" {
		t.Errorf("TagString() = %q, want %q", got, "Z2/S2")
	}
}

func TestParseGroups_TaggerOutput(t *testing.T) {
	// A whitespace-separated tag spec as produced by the USAS tagger for a
	// whole token stream.
	input := "L1 E3- O4.2- X5.2+ A6.2- A1.7- A7- W3 L2 F1 S1.2.4- Z2 Z2/S2mf Z3 O4.3 G1.2 G1.2/S2mf"
	groups, err := ParseGroups(input)
	if err != nil {
		t.Fatalf("ParseGroups failed: %v", err)
	}
	want := len(strings.Fields(input))
	if len(groups) != want {
		t.Fatalf("expected %d groups, got %d", want, len(groups))
	}
	if groups[1].Tags[0].NegativeMarkers != 1 {
		t.Errorf("E3-: negative markers = %d, want 1", groups[1].Tags[0].NegativeMarkers)
	}
	if got := groups[16].TagString(); got != "G1.2/S2" {
		t.Errorf("last group TagString() = %q, want %q", got, "G1.2/S2")
	}
}

func TestParseGroups_BadSubAtom(t *testing.T) {
	_, err := ParseGroups("Z2/bogus A1")
	if err == nil {
		t.Fatal("expected error for unparseable sub-atom")
	}
	msg := err.Error()
	if !strings.Contains(msg, `"bogus"`) || !strings.Contains(msg, `"Z2/bogus"`) {
		t.Errorf("error should name sub-atom and atom, got: %v", err)
	}
}

func TestParseGroups_OrderPreserved(t *testing.T) {
	groups, err := ParseGroups("T1.1.1/S2/P1")
	if err != nil {
		t.Fatalf("ParseGroups failed: %v", err)
	}
	if got := groups[0].TagString(); got != "T1.1.1/S2/P1" {
		t.Errorf("TagString() = %q, want %q", got, "T1.1.1/S2/P1")
	}
}
