package thaiword

// offsets returns the absolute offsets of seg.
//
// When the buffered token's offsets are trusted, the segments of a token tile its [start, end)
// span exactly. Otherwise every segment reports the span of the whole token.
func (b *segmentBuffer) offsets(seg segment) (start, end int) {
	if !b.trustOffsets {
		return b.start, b.end
	}
	return b.start + seg.Start, b.start + seg.End
}
