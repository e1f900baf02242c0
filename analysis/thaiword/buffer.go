package thaiword

import "github.com/gomlx/go-thaiword/analysis/api"

// bufferState of a segmentBuffer.
type bufferState int

const (
	// stateIdle: no token is being segmented, the next call pulls from upstream.
	stateIdle bufferState = iota

	// stateBuffering: a Thai token is held and its boundaries are being walked.
	stateBuffering
)

func (s bufferState) String() string {
	if s == stateBuffering {
		return "Buffering"
	}
	return "Idle"
}

// cursor is the position of the boundary walk within the buffered term.
type cursor struct {
	last    int // last boundary emitted, relative to the term
	emitted int // number of segments emitted so far
}

// segment is a word found in the buffered term: term[Start:End].
type segment struct {
	Start, End int
	Index      int // 0 for the first segment of a token
}

// segmentBuffer holds a copy of the token being segmented. There is at most one per filter.
type segmentBuffer struct {
	state bufferState

	term              []byte
	start, end        int
	positionIncrement int

	// trustOffsets is false when end-start doesn't match the term length: offsets were then set
	// by something other than the tokenizer (a synonym, for instance) and can't be partitioned.
	trustOffsets bool

	cursor cursor
}

// begin copies tok into the buffer and points detector at the copied term.
func (b *segmentBuffer) begin(tok *api.Token, detector api.BoundaryDetector) {
	b.term = append(b.term[:0], tok.Term...)
	b.start = tok.Start
	b.end = tok.End
	b.positionIncrement = tok.PositionIncrement
	b.trustOffsets = tok.End-tok.Start == len(tok.Term)
	detector.SetText(b.term)
	b.cursor = cursor{last: detector.Current()}
	b.state = stateBuffering
}

// next advances the boundary walk. It returns false, and moves the buffer to stateIdle, once
// detector is exhausted.
//
// A boundary not past the previous one, or past the end of the term, counts as exhaustion: the
// walk always ends within len(term) steps.
func (b *segmentBuffer) next(detector api.BoundaryDetector) (segment, bool) {
	if b.state != stateBuffering {
		return segment{}, false
	}
	boundary := detector.Next()
	if boundary == api.Done || boundary <= b.cursor.last || boundary > len(b.term) {
		b.state = stateIdle
		return segment{}, false
	}
	seg := segment{Start: b.cursor.last, End: boundary, Index: b.cursor.emitted}
	b.cursor.last = boundary
	b.cursor.emitted++
	return seg, true
}

// clear drops the buffered token. The term's backing array is kept for the next token.
func (b *segmentBuffer) clear() {
	b.state = stateIdle
	b.term = b.term[:0]
	b.start, b.end, b.positionIncrement = 0, 0, 0
	b.trustOffsets = false
	b.cursor = cursor{}
}
