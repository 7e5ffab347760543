package valueobject

import (
	"reflect"
	"testing"
)

func TestNormalizeName_BraceAndWhitespaceInsensitive(t *testing.T) {
	// All three spellings of the same name must normalize identically.
	inputs := []string{"{ foo }", "foo", "foo "}
	for _, input := range inputs {
		if got := NormalizeName(input); got != "foo" {
			t.Errorf("NormalizeName(%q) = %q, want %q", input, got, "foo")
		}
	}
}

func TestNormalizeName_CollapsesInternalWhitespace(t *testing.T) {
	cases := []struct {
		input    string
		expected string
	}{
		{"{ a,  b }", "a, b"},
		{"  obj.prop  ", "obj.prop"},
		{"a\t b", "a b"},
		{"", ""},
		{"{}", ""},
	}
	for _, tc := range cases {
		if got := NormalizeName(tc.input); got != tc.expected {
			t.Errorf("NormalizeName(%q) = %q, want %q", tc.input, got, tc.expected)
		}
	}
}

func TestNormalizeTight_RemovesAllWhitespace(t *testing.T) {
	if got := NormalizeTight(" a, b "); got != "a,b" {
		t.Errorf("NormalizeTight = %q, want %q", got, "a,b")
	}
}

func TestNormalizeTagName_StripsBracesAndWhitespace(t *testing.T) {
	if got := NormalizeTagName("{ obj . prop }"); got != "obj.prop" {
		t.Errorf("NormalizeTagName = %q, want %q", got, "obj.prop")
	}
}

func TestCandidatePaths_SingleSegment(t *testing.T) {
	got := CandidatePaths([]string{"{ foo }"})
	want := []string{"{ foo }", "foo"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("CandidatePaths = %v, want %v", got, want)
	}
}

func TestCandidatePaths_MultiSegment(t *testing.T) {
	got := CandidatePaths([]string{"{ opts }", "limit"})
	want := []string{"{ opts }.limit", "opts.limit"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("CandidatePaths = %v, want %v", got, want)
	}
}

func TestCandidatePaths_DeduplicatesPlainNames(t *testing.T) {
	// A plain name yields identical raw, cleaned and tight variants.
	got := CandidatePaths([]string{"obj", "prop"})
	want := []string{"obj.prop"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("CandidatePaths = %v, want %v", got, want)
	}
}

func TestCandidatePaths_Empty(t *testing.T) {
	if got := CandidatePaths(nil); got != nil {
		t.Errorf("CandidatePaths(nil) = %v, want nil", got)
	}
}
