package render

import (
	"fmt"
	"io"
	"strconv"
)

// TrackResult is the outcome of processing one track. Record is nil if the
// track failed.
type TrackResult struct {
	Label  string
	Record *Record
	Err    error
}

// Summary prints one line per track after all tracks are processed.
func Summary(w io.Writer, results []TrackResult) {
	fmt.Fprintln(w)
	fmt.Fprintln(w, "=== Summary ===")

	for _, res := range results {
		fmt.Fprintln(w, SummaryLine(res))
	}
}

// SummaryLine formats the summary of a single track.
func SummaryLine(res TrackResult) string {
	if res.Record == nil {
		return fmt.Sprintf("%s: FAILED (%v)", res.Label, res.Err)
	}

	s := res.Record.Stats
	return fmt.Sprintf(
		"%s: %s mi | +%d/-%d ft | Ele: %d-%d ft | %d pts",
		res.Label,
		FormatNumber(s.DistanceMi),
		s.GainFt, s.LossFt,
		s.MinEleFt, s.MaxEleFt,
		len(res.Record.Geometry),
	)
}

// FormatNumber prints x with the fewest digits that represent it exactly,
// so 7.8 stays "7.8" and 6 stays "6".
func FormatNumber(x float64) string {
	return strconv.FormatFloat(x, 'f', -1, 64)
}
