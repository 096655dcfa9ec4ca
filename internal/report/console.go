package report

import (
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"curveScope/internal/model"
)

const ruleWidth = 80

// ConsoleReport renders a numbered human-readable listing. MinApy is only
// used for the headline; the summaries are assumed already filtered and
// sorted by the caller.
type ConsoleReport struct {
	Out    io.Writer
	MinApy float64
	Top    int
}

var usdPrinter = message.NewPrinter(language.English)

func (r *ConsoleReport) Emit(summaries []model.QualifiedPoolSummary) error {
	out := r.Out
	if out == nil {
		out = os.Stdout
	}

	if len(summaries) == 0 {
		fmt.Fprintf(out, "No pools found with total APY >= %.2f%%\n", r.MinApy)
		return nil
	}

	fmt.Fprintf(out, "Found %d pools with total APY >= %.2f%%:\n", len(summaries), r.MinApy)
	fmt.Fprintln(out, strings.Repeat("=", ruleWidth))

	shown := summaries
	if r.Top > 0 && r.Top < len(shown) {
		shown = shown[:r.Top]
	}

	for i, s := range shown {
		fmt.Fprintf(out, "%d. %s\n", i+1, s.Name)
		fmt.Fprintf(out, "   Total APY:  %.2f%%\n", s.TotalApy)
		fmt.Fprintf(out, "   Base APY:   %.2f%%\n", s.BaseApy)
		fmt.Fprintf(out, "   CRV APY:    %.2f%% [%.2f%%, %.2f%%]\n", s.CrvApy, s.CrvApyRange[0], s.CrvApyRange[1])
		fmt.Fprintf(out, "   Extra APY:  %.2f%%\n", s.ExtraApy)
		fmt.Fprintf(out, "   USD Total:  %s\n", formatUSD(s.USDTotal))
		if s.SwapURL != "" {
			fmt.Fprintf(out, "   Swap URL:   %s\n", s.SwapURL)
		}
		fmt.Fprintln(out, strings.Repeat("-", ruleWidth))
	}

	if len(shown) < len(summaries) {
		fmt.Fprintf(out, "... and %d more\n", len(summaries)-len(shown))
	}

	return nil
}

func formatUSD(v float64) string {
	return usdPrinter.Sprintf("$%.2f", v)
}
