package report

import "fmt"

// TextSpan represents a range or "span" of source text.  It is used to record
// the provenance of lowered nodes and to position diagnostics.  Text spans are
// inclusive on both sides: the starting position is the position of the first
// character in the span and the ending position is the position of the last
// character in the span.  The line and column numbers are zero-indexed.
type TextSpan struct {
	// The line and column beginning the text span.
	StartLine, StartCol int

	// The line and column ending the text span.
	EndLine, EndCol int
}

// NewSpan returns a new text span over a single line.
func NewSpan(line, startCol, endCol int) *TextSpan {
	return &TextSpan{StartLine: line, StartCol: startCol, EndLine: line, EndCol: endCol}
}

// NewSpanOver returns a new text span which spans over and between the two
// given text spans.
func NewSpanOver(start, end *TextSpan) *TextSpan {
	return &TextSpan{
		StartLine: start.StartLine,
		StartCol:  start.StartCol,
		EndLine:   end.EndLine,
		EndCol:    end.EndCol,
	}
}

func (ts *TextSpan) String() string {
	return fmt.Sprintf("%d:%d-%d:%d", ts.StartLine+1, ts.StartCol+1, ts.EndLine+1, ts.EndCol+1)
}
