package logic

import (
	"fmt"
	"io"
	"time"

	"github.com/dustin/go-humanize"
)

type stats struct {
	values   int
	errored  int
	inBytes  int64
	outBytes int64
	duration time.Duration
}

func printStats(w io.Writer, st stats) {
	fmt.Fprintf(w, "\nStats\n")
	fmt.Fprintf(w, "  Values:    %d\n", st.values)
	fmt.Fprintf(w, "  Processed: %d\n", st.values-st.errored)
	fmt.Fprintf(w, "  Errors:    %d\n", st.errored)
	//nolint:gosec // sizes are sums of lengths and never negative
	fmt.Fprintf(w, "  Input:     %s\n", humanize.IBytes(uint64(max(0, st.inBytes))))
	//nolint:gosec // sizes are sums of lengths and never negative
	fmt.Fprintf(w, "  Output:    %s\n", humanize.IBytes(uint64(max(0, st.outBytes))))
	fmt.Fprintf(w, "  Duration:  %s\n", st.duration.Round(time.Millisecond))
}
