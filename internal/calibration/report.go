package calibration

import (
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/agbru/bignum/internal/config"
	"github.com/agbru/bignum/internal/format"
	"github.com/agbru/bignum/internal/ui"
)

// PrintSummary writes one table row per band: the crossover, whether it was
// measured or kept, and the timings and allocation at the crossover size.
func PrintSummary(out io.Writer, results []Result) {
	rows := make([][]string, 0, len(results))
	for _, res := range results {
		state := "kept"
		below, above, alloc := "-", "-", "-"
		if res.Found {
			state = "measured"
		}
		for _, m := range res.Measurements {
			if m.Limbs == res.Crossover {
				below, above = format.Duration(m.Below), format.Duration(m.Above)
				alloc = format.Bytes(m.AboveAlloc.Bytes)
				break
			}
		}
		rows = append(rows, []string{
			res.Band.Name,
			fmt.Sprintf("%s → %s", res.Band.Below, res.Band.Above),
			fmt.Sprint(res.Crossover),
			state,
			below,
			above,
			alloc,
		})
	}

	st := ui.CurrentStyles()
	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(st.Border).
		Headers("Band", "Algorithms", "Limbs", "Status", "Below", "Above", "Alloc/op").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			switch {
			case row == table.HeaderRow:
				return st.Header
			case col == 3 && rows[row][3] == "measured":
				return st.Success
			case col == 3:
				return st.Dim
			}
			return st.Cell
		})

	fmt.Fprintln(out, st.Title.Render("Calibration Summary"))
	fmt.Fprintln(out, t.Render())
}

// PrintThresholds writes the resolved table and its provenance.
func PrintThresholds(out io.Writer, th config.Thresholds) {
	p := th.Provenance
	st := ui.CurrentStyles()
	fmt.Fprintln(out, st.Title.Render("Thresholds"))
	rows := [][]string{
		{"toom22", fmt.Sprint(th.Toom22)},
		{"toom33", fmt.Sprint(th.Toom33)},
		{"toom44", fmt.Sprint(th.Toom44)},
		{"toom6h", fmt.Sprint(th.Toom6H)},
		{"toom8h", fmt.Sprint(th.Toom8H)},
		{"fft", fmt.Sprint(th.FFT)},
		{"fft_square", fmt.Sprint(th.FFTSquare)},
		{"div_newton", fmt.Sprintf("%d (quotient %d)", th.DivNewton, th.DivNewtonQuotient)},
		{"gcd_lehmer", fmt.Sprint(th.GCDLehmer)},
		{"to_string_dc", fmt.Sprint(th.ToStringDivideAndConquer)},
	}
	t := table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(st.Border).
		Headers("Threshold", "Limbs").
		Rows(rows...).
		StyleFunc(func(row, _ int) lipgloss.Style {
			if row == table.HeaderRow {
				return st.Header
			}
			return st.Cell
		})
	fmt.Fprintln(out, t.Render())
	fmt.Fprintf(out, "source: %s, %d-bit words", p.Source, p.WordBits)
	if p.Machine != "" {
		fmt.Fprintf(out, ", machine %s", p.Machine)
	}
	if !p.MeasuredAt.IsZero() {
		fmt.Fprintf(out, ", measured %s with %s", p.MeasuredAt.Format(time.RFC3339), p.GoVersion)
	}
	fmt.Fprintln(out)
}

// PrintMismatch explains a disagreement between two algorithms.
func PrintMismatch(out io.Writer, err error) {
	fmt.Fprintln(out, ui.CurrentStyles().Error.Render("MISMATCH: "+err.Error()))
}
