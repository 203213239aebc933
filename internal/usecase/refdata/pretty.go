package refdatauc

import (
	"fmt"
	"sort"
	"strings"
	"text/tabwriter"
)

func ansi(code string, s string) string { return "\x1b[" + code + "m" + s + "\x1b[0m" }

func green(s string) string { return ansi("32", s) }
func dim(s string) string   { return ansi("2", s) }

// FormatSummary renders a table: EXCHANGE | SPOT | PERP, a TOTAL row and
// the added/updated footer.
func FormatSummary(counts map[string][2]int, sum Summary) string {
	names := make([]string, 0, len(counts))
	for n := range counts {
		names = append(names, n)
	}
	sort.Strings(names)

	var b strings.Builder
	w := tabwriter.NewWriter(&b, 0, 2, 2, ' ', 0)
	fmt.Fprintln(w, "EXCHANGE\tSPOT\tPERP")
	var ts, tp int
	for _, n := range names {
		c := counts[n]
		s, p := fmt.Sprint(c[0]), fmt.Sprint(c[1])
		if c[0] > 0 {
			s = green(s)
		}
		if c[1] > 0 {
			p = green(p)
		}
		fmt.Fprintf(w, "%s\t%s\t%s\n", n, s, p)
		ts += c[0]
		tp += c[1]
	}
	fmt.Fprintf(w, "%s\t%s\t%s\n", dim("TOTAL"), dim(fmt.Sprint(ts)), dim(fmt.Sprint(tp)))
	_ = w.Flush()
	fmt.Fprintf(&b, "added=%d updated=%d", sum.Added, sum.Updated)
	return b.String()
}
