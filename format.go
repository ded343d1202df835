package main

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"
)

const (
	bannerWidth = 63
	statsWidth  = 23
)

var bannerStyle = lipgloss.NewStyle().
	Border(lipgloss.Border{Top: "-", Bottom: "-"}, true, false).
	Width(bannerWidth).
	Align(lipgloss.Center)

func RenderBanner(title string) string {
	return bannerStyle.Render(title)
}

func WriteSummary(w io.Writer, s Summary) {
	fmt.Fprintf(w, "%-8s%12s%12s%12s\n", "", "Positive", "Negative", "Overall")
	fmt.Fprintf(w, "%-8s%12.3f%12.3f%12.3f\n", "Sum:",
		s.Sums.Positive, s.Sums.Negative, s.Sums.Overall)
	fmt.Fprintf(w, "%-8s%12d%12d%12d\n", "Count:",
		s.Counts.Positive, s.Counts.Negative, s.Counts.Overall)
	fmt.Fprintf(w, "%-8s%12.3f%12.3f%12.3f\n", "Average:",
		s.Averages.Positive, s.Averages.Negative, s.Averages.Overall)
}

// RenderPlot draws samples in input order. Fewer than two samples give no plot.
func RenderPlot(samples []float64, height int) string {
	if len(samples) < 2 {
		return ""
	}
	if height < 3 {
		height = 3
	}
	return asciigraph.Plot(samples,
		asciigraph.Height(height),
		asciigraph.Caption("samples"))
}

func WriteChange(w io.Writer, amount float64, c Coins) {
	fmt.Fprintf(w, "\nThe amount you gave was $%.2f, your change is %d Quarters,\n"+
		"%d Dimes, %d Nickels, and %d Pennies.\n\n",
		amount, c.Quarters, c.Dimes, c.Nickels, c.Pennies)
}

func WritePoint(w io.Writer, p Point) {
	fmt.Fprintf(w, "%s\n", p)
}

func WriteSentenceStats(w io.Writer, st SentenceStats) {
	for _, row := range []struct {
		label string
		value int
	}{
		{"Keystrokes:", st.Keystrokes},
		{"Alpha Characters:", st.Alphabetic},
		{"Numeric Characters:", st.Numeric},
		{"Vowel Characters:", st.Vowels},
	} {
		fmt.Fprintf(w, "%s%*d\n", row.label, statsWidth-len(row.label), row.value)
	}
}

func WritePalindrome(w io.Writer, ok bool) {
	verdict := "is not"
	if ok {
		verdict = "is"
	}
	fmt.Fprintf(w, "\nThe string you entered %s a palindrome.\n\n", verdict)
}
