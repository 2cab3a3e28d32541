package bench

import (
	"fmt"
	"io"
	"text/tabwriter"
)

// Report writes results as an aligned table. Sizes are in KiB.
func Report(w io.Writer, results []Result) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', tabwriter.AlignRight)
	fmt.Fprintln(tw, "kind\tadd\tread\tlen\tvalues KiB\tindex KiB\ttotal KiB\t")
	for _, r := range results {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%d\t%.2f\t%.2f\t%.2f\t\n",
			r.Kind,
			r.AddTime,
			r.ReadTime,
			r.Len,
			kib(r.Memory.Values),
			kib(r.Memory.Index),
			kib(r.Memory.Total()),
		)
	}
	return tw.Flush()
}

func kib(b uintptr) float64 {
	return float64(b) / 1024
}
