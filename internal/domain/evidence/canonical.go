package evidence

import (
	"bytes"
	"strconv"
)

// CanonicalPayload renders the hashed content of a note as
// "v=<x1>,...,<xn>;t=<timestamp>;psi=<index>". Floats use the shortest
// representation that round-trips, so equal float64 values always produce
// the same bytes and therefore the same hash.
func CanonicalPayload(vector []float64, timestamp, psiIndex float64) []byte {
	var buf bytes.Buffer
	buf.WriteString("v=")
	for i, x := range vector {
		if i > 0 {
			buf.WriteByte(',')
		}
		buf.WriteString(formatFloat(x))
	}
	buf.WriteString(";t=")
	buf.WriteString(formatFloat(timestamp))
	buf.WriteString(";psi=")
	buf.WriteString(formatFloat(psiIndex))
	return buf.Bytes()
}

func formatFloat(x float64) string {
	return strconv.FormatFloat(x, 'g', -1, 64)
}
