// Package report renders evaluation results as text and images.
package report

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/fatih/color"

	diveknn "go-diveknn"
)

// Options controls the text report.
type Options struct {
	// Color highlights the percentage line when the terminal supports it
	// (see color.NoColor).
	Color bool
	// Confusion appends the actual × predicted table.
	Confusion bool
}

// Text writes the summary of result to w:
//
//	Value of k: 5
//	Number correct: 30/40
//	Percentage correct: 75.0%
func Text(w io.Writer, result *diveknn.Result, opts Options) error {
	percentage := FormatPercentage(result.Percentage()) + "%"
	if opts.Color {
		c := color.New(color.FgGreen)
		if result.Correct*2 < result.Total {
			c = color.New(color.FgRed)
		}
		percentage = c.Sprint(percentage)
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Value of k: %d\n", result.K)
	fmt.Fprintf(&b, "Number correct: %d/%d\n", result.Correct, result.Total)
	fmt.Fprintf(&b, "Percentage correct: %s\n", percentage)
	if opts.Confusion {
		b.WriteString("\n")
		writeConfusion(&b, result.Confusion())
	}
	_, err := io.WriteString(w, b.String())
	return err
}

// FormatPercentage prints p in its shortest single-precision form, always
// with a decimal point (75 -> "75.0").
func FormatPercentage(p float32) string {
	s := strconv.FormatFloat(float64(p), 'f', -1, 32)
	if !strings.Contains(s, ".") {
		s += ".0"
	}
	return s
}

func writeConfusion(b *strings.Builder, m diveknn.Confusion) {
	b.WriteString("actual\\predicted")
	for _, l := range diveknn.Labels {
		fmt.Fprintf(b, "%6s", l)
	}
	b.WriteString("\n")
	for _, actual := range diveknn.Labels {
		fmt.Fprintf(b, "%-16s", actual)
		for _, predicted := range diveknn.Labels {
			fmt.Fprintf(b, "%6d", m.Count(actual, predicted))
		}
		b.WriteString("\n")
	}
}
