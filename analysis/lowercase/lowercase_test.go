package lowercase

import (
	"testing"

	"github.com/gomlx/go-thaiword/analysis/api"
	"github.com/gomlx/go-thaiword/analysis/tokenizer"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLowercase(t *testing.T) {
	f := New(tokenizer.New("Hello WORLD ภาษาไทย"))

	var terms []string
	var offsets [][2]int
	for f.Next() {
		tok := f.Token()
		terms = append(terms, tok.String())
		offsets = append(offsets, [2]int{tok.Start, tok.End})
		assert.Equal(t, 1, tok.PositionIncrement)
	}
	assert.Equal(t, []string{"hello", "world", "ภาษาไทย"}, terms)
	assert.Equal(t, [][2]int{{0, 5}, {6, 11}, {12, 12 + len("ภาษาไทย")}}, offsets)
	assert.False(t, f.Next())
}

func TestLowercaseKeepsOffsetsWhenLengthChanges(t *testing.T) {
	// U+0130 (2 bytes) lowercases to "i" + U+0307 (3 bytes) in the root locale.
	src := tokenizer.FromTokens(api.Token{Term: []byte("\u0130X"), Start: 4, End: 7, PositionIncrement: 2})
	f := New(src)
	require.True(t, f.Next())
	tok := f.Token()
	assert.Equal(t, "i\u0307x", tok.String())
	assert.Equal(t, 4, tok.Start)
	assert.Equal(t, 7, tok.End)
	assert.Equal(t, 2, tok.PositionIncrement)
}

func TestLowercaseReset(t *testing.T) {
	tk := tokenizer.New("A B")
	f := New(tk)
	require.True(t, f.Next())
	f.Reset()
	require.True(t, f.Next())
	assert.Equal(t, "a", f.Token().String())
}
