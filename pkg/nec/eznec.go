package nec

import (
	"bytes"
	"io"
	"strconv"

	"github.com/matzehuels/lpda/pkg/wire"
)

// UnitsHeader is the first line of an EZ-NEC file with inch units.
const UnitsHeader = "in"

// lineEnd terminates every emitted line.
const lineEnd = "\r\n"

// Options controls the ASCII encoding.
type Options struct {
	// EZNEC prepends the UnitsHeader line.
	EZNEC bool
}

// Write encodes wires to w, one line per wire, in slice order.
func Write(w io.Writer, wires []wire.Segment, opts Options) error {
	_, err := w.Write(Marshal(wires, opts))
	return err
}

// Marshal returns the encoded wire table.
func Marshal(wires []wire.Segment, opts Options) []byte {
	var buf bytes.Buffer
	if opts.EZNEC {
		buf.WriteString(UnitsHeader)
		buf.WriteString(lineEnd)
	}
	for _, s := range wires {
		appendLine(&buf, s)
	}
	return buf.Bytes()
}

func appendLine(buf *bytes.Buffer, s wire.Segment) {
	fields := [...]float64{s.A.X, s.A.Y, s.A.Z, s.B.X, s.B.Y, s.B.Z, s.Diameter}
	for i, v := range fields {
		if i > 0 {
			buf.WriteByte(' ')
		}
		buf.WriteString(formatFloat(v))
	}
	buf.WriteByte(' ')
	buf.WriteString(strconv.Itoa(s.Segments))
	buf.WriteString(lineEnd)
}

// formatFloat renders v in the shortest exact form without an exponent.
// Negative zero is written as 0.
func formatFloat(v float64) string {
	if v == 0 {
		return "0"
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}
