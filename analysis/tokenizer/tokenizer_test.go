package tokenizer

import (
	"testing"

	"github.com/gomlx/go-thaiword/analysis/api"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type span struct {
	Term       string
	Start, End int
	PosInc     int
}

func collect(s api.TokenStream) []span {
	var out []span
	for s.Next() {
		tok := s.Token()
		out = append(out, span{tok.String(), tok.Start, tok.End, tok.PositionIncrement})
	}
	return out
}

func TestTokenizer(t *testing.T) {
	text := "Hello, ภาษาไทย 42!"
	tk := New(text)
	got := collect(tk)
	require.Len(t, got, 3)
	assert.Equal(t, span{"Hello", 0, 5, 1}, got[0])
	assert.Equal(t, span{"ภาษาไทย", 7, 7 + len("ภาษาไทย"), 1}, got[1])
	assert.Equal(t, "42", got[2].Term)
	for _, s := range got {
		assert.Equal(t, s.Term, text[s.Start:s.End])
	}

	// Exhausted streams stay exhausted.
	assert.False(t, tk.Next())
	assert.False(t, tk.Next())
}

func TestTokenizerKeepsThaiMarks(t *testing.T) {
	// Tone marks and above-vowels are combining marks and must not split the run.
	got := collect(New("ง่ายนิดเดียว"))
	require.Len(t, got, 1)
	assert.Equal(t, "ง่ายนิดเดียว", got[0].Term)
}

func TestTokenizerSetTextAndReset(t *testing.T) {
	tk := New("one two")
	require.True(t, tk.Next())
	tk.SetText("three")
	assert.Equal(t, []span{{"three", 0, 5, 1}}, collect(tk))

	tk.Reset()
	assert.Equal(t, []span{{"three", 0, 5, 1}}, collect(tk))
}

func TestTokenizerDoesNotAliasText(t *testing.T) {
	tk := New("abc def")
	require.True(t, tk.Next())
	tk.Token().Term[0] = 'X'
	assert.Equal(t, "abc def", tk.Text())
}

func TestTokenizerNFC(t *testing.T) {
	decomposed := "e\u0301te\u0301"
	tk := New(decomposed, WithNFC())
	assert.Equal(t, "\u00e9t\u00e9", tk.Text())
	got := collect(tk)
	require.Len(t, got, 1)
	assert.Equal(t, span{"\u00e9t\u00e9", 0, 5, 1}, got[0])
}

func TestSlice(t *testing.T) {
	src := []api.Token{
		{Term: []byte("a"), Start: 0, End: 1, PositionIncrement: 1},
		{Term: []byte("b"), Start: 2, End: 3, PositionIncrement: 0},
	}
	s := FromTokens(src...)
	src[0].Term[0] = 'z'
	assert.Equal(t, []span{{"a", 0, 1, 1}, {"b", 2, 3, 0}}, collect(s))
	assert.False(t, s.Next())

	s.Reset()
	assert.Len(t, collect(s), 2)

	s.SetTokens(api.Token{Term: []byte("c"), Start: 5, End: 6, PositionIncrement: 3})
	assert.Equal(t, []span{{"c", 5, 6, 3}}, collect(s))
}
