package suggest

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLevenshtein(t *testing.T) {
	tests := []struct {
		a        string
		b        string
		expected int
	}{
		{"", "", 0},
		{"a", "a", 0},
		{"", "abc", 3},
		{"abc", "", 3},
		{"a", "b", 1},
		{"a", "ab", 1},
		{"ab", "a", 1},
		{"kitten", "sitting", 3},
		{"saturday", "sunday", 3},
		{"ABC", "abc", 3},
		{"tset", "test", 2},
		{"größe", "grösse", 2},
	}

	for _, tt := range tests {
		t.Run(tt.a+"_"+tt.b, func(t *testing.T) {
			result := Levenshtein(tt.a, tt.b)
			if result != tt.expected {
				t.Errorf("Levenshtein(%q, %q) = %d, want %d", tt.a, tt.b, result, tt.expected)
			}

			if reverse := Levenshtein(tt.b, tt.a); reverse != result {
				t.Errorf("Levenshtein symmetry failed: (%q, %q) = %d, reverse %d", tt.a, tt.b, result, reverse)
			}
		})
	}
}

func TestNormalizeIdent(t *testing.T) {
	assert.Equal(t, "tostring", NormalizeIdent("toString"))
	assert.Equal(t, "tostring", NormalizeIdent("to_string"))
	assert.Equal(t, "tostring", NormalizeIdent("TO$STRING"))
	assert.Empty(t, NormalizeIdent(""))
}

func TestTokenizeIdent(t *testing.T) {
	assert.Equal(t, []string{"get", "http", "response"}, TokenizeIdent("getHTTPResponse"))
	assert.Equal(t, []string{"xml", "parser"}, TokenizeIdent("XMLParser"))
	assert.Equal(t, []string{"value", "of"}, TokenizeIdent("value_of"))
	assert.Nil(t, TokenizeIdent(""))
}

func TestSimilarity(t *testing.T) {
	assert.InDelta(t, 1.0, Similarity("toString", "to_string"), 1e-9)
	assert.InDelta(t, 0.5, Similarity("test", "tset"), 1e-9)
	assert.InDelta(t, 1.0, Similarity("", ""), 1e-9)
}

func TestNames(t *testing.T) {
	known := []string{"test", "tests", "toString", "valueOf", "hashCode", "test", "equals"}

	assert.Equal(t, []string{"test", "tests"}, Names("tst", known, 0))
	assert.Equal(t, []string{"toString"}, Names("to_string", known, 0))
	assert.Equal(t, []string{"test"}, Names("tests", known, 1))
	assert.Empty(t, Names("zzz", known, 0))
	assert.Equal(t, []string{"stringFromValue"}, Names("valueFromString", []string{"stringFromValue"}, 0))
}
