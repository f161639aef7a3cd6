package text

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClean(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"mixed whitespace", "a\n\tb   c", "a b c"},
		{"leading and trailing", "  \n title \t", "title"},
		{"already clean", "a b c", "a b c"},
		{"empty", "", ""},
		{"only whitespace", " \n\t ", ""},
		{"no-break and thin spaces", "Kagome\u00a0\u00a0lattice\vspins\u2009here.", "Kagome lattice spins here."},
		{"vertical tab and form feed", "a\v\fb", "a b"},
		{"wrapped title", "Quantum spin\n  liquids in\n  frustrated magnets", "Quantum spin liquids in frustrated magnets"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Clean(tt.in)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, got, Clean(got), "Clean should be idempotent")
		})
	}
}

func TestFirstSentence(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"two sentences", "Foo bar. Baz qux.", "Foo bar."},
		{"no terminator", "  Foo bar baz  ", "Foo bar baz"},
		{"empty", "", ""},
		{"question", "Is it gapped? We show it is not.", "Is it gapped?"},
		{"exclamation", "Surprise! More text.", "Surprise!"},
		{"decimal is not a terminator", "We find 0.5 of the weight. Rest.", "We find 0.5 of the weight."},
		{"terminator across newline", "First line.\nSecond line.", "First line."},
		{"no-break space after terminator", "First one.\u00a0Second one.", "First one."},
		{"thin space after terminator", "Gapless?\u2009Yes.", "Gapless?"},
		{"single sentence with period", "Only one sentence.", "Only one sentence."},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FirstSentence(tt.in))
		})
	}
}
