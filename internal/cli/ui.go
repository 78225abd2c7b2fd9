package cli

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/matzehuels/lpda/pkg/lpda"
	"github.com/matzehuels/lpda/pkg/pipeline"
	"github.com/matzehuels/lpda/pkg/wire"
)

// =============================================================================
// Color Palette
// =============================================================================

var (
	colorCyan   = lipgloss.Color("36")  // Teal - primary actions
	colorGreen  = lipgloss.Color("35")  // Green - success
	colorYellow = lipgloss.Color("220") // Amber - warnings
	colorWhite  = lipgloss.Color("255") // Bright white - values
	colorGray   = lipgloss.Color("245") // Gray - secondary text
	colorDim    = lipgloss.Color("240") // Dim gray - muted text
)

// =============================================================================
// Styles
// =============================================================================

var (
	// StyleTitle for main headings.
	StyleTitle = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)

	// StyleDim for secondary/muted text.
	StyleDim = lipgloss.NewStyle().Foreground(colorDim)

	// StyleValue for data values.
	StyleValue = lipgloss.NewStyle().Foreground(colorWhite)

	// StyleNumber for numeric values.
	StyleNumber = lipgloss.NewStyle().Foreground(colorCyan)

	// StyleWarning for warning messages.
	StyleWarning = lipgloss.NewStyle().Foreground(colorYellow)
)

var (
	styleIconSuccess = lipgloss.NewStyle().Foreground(colorGreen)
	styleIconWarning = lipgloss.NewStyle().Foreground(colorYellow)
	styleHeader      = lipgloss.NewStyle().Foreground(colorGray).Bold(true)
)

// =============================================================================
// Icons
// =============================================================================

const (
	iconSuccess = "✓"
	iconWarning = "!"
	iconArrow   = "→"
)

// =============================================================================
// Status Output
// =============================================================================

// printSuccess prints a success message.
func printSuccess(w io.Writer, format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	fmt.Fprintln(w, styleIconSuccess.Render(iconSuccess)+" "+msg)
}

// printWarning prints a warning message.
func printWarning(w io.Writer, format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	fmt.Fprintln(w, styleIconWarning.Render(iconWarning)+" "+StyleWarning.Render(msg))
}

// printFile prints a file output line.
func printFile(w io.Writer, path string) {
	fmt.Fprintln(w, "  "+StyleDim.Render(iconArrow)+" "+StyleValue.Render(path))
}

// printKeyValue prints a labeled value.
func printKeyValue(w io.Writer, key, value string) {
	keyStyle := lipgloss.NewStyle().Foreground(colorGray).Width(16)
	fmt.Fprintln(w, keyStyle.Render(key)+" "+StyleValue.Render(value))
}

// =============================================================================
// Tables
// =============================================================================

// printTable prints a right-aligned table with a bold header row.
func printTable(w io.Writer, header []string, rows [][]string) {
	widths := make([]int, len(header))
	for i, h := range header {
		widths[i] = lipgloss.Width(h)
	}
	for _, row := range rows {
		for i, cell := range row {
			widths[i] = max(widths[i], lipgloss.Width(cell))
		}
	}

	render := func(cells []string, style lipgloss.Style) string {
		parts := make([]string, len(cells))
		for i, c := range cells {
			parts[i] = style.Width(widths[i]).Align(lipgloss.Right).Render(c)
		}
		return "  " + strings.Join(parts, "  ")
	}

	fmt.Fprintln(w, render(header, styleHeader))
	for _, row := range rows {
		fmt.Fprintln(w, render(row, StyleValue))
	}
}

// =============================================================================
// Design Summary
// =============================================================================

// printDesignSummary prints the parameters, overall dimensions and element
// table of a generator run.
func printDesignSummary(w io.Writer, res *pipeline.Result) {
	d := res.Design
	p := d.Params

	fmt.Fprintln(w, StyleTitle.Render("Design"))
	printKeyValue(w, "Band", fmt.Sprintf("%s – %s MHz", num(p.LowerFreq), num(p.UpperFreq)))
	printKeyValue(w, "Alpha / Tsi", fmt.Sprintf("%s° / %s°", num(p.Alpha), num(p.Tsi)))
	printKeyValue(w, "Filling ratio T", num(p.T))
	printKeyValue(w, "Element pairs", StyleNumber.Render(strconv.Itoa(d.NumElementPairs())))
	printKeyValue(w, "Boom length", fmt.Sprintf("%.4f ft", d.BoomLength))
	printKeyValue(w, "Wires", StyleNumber.Render(strconv.Itoa(res.Stats.WireCount)))
	printKeyValue(w, "Wire length", fmt.Sprintf("%.2f in", res.Stats.TotalWireLength))
	fmt.Fprintln(w)

	fmt.Fprintln(w, StyleTitle.Render("Element pairs (in)"))
	printTable(w, pairHeader, pairRows(res.Pairs, res.Model))
}

var pairHeader = []string{"#", "Length", "Separation", "Vertex", "Diameter", "Stock"}

// pairRows renders one row per element pair. The stock column comes from the
// projected model.
func pairRows(pairs []lpda.ElementPair, m *wire.Model) [][]string {
	rows := make([][]string, len(pairs))
	for i, e := range pairs {
		stock := "-"
		if m != nil && i < m.NumPairs() {
			stock = num(m.Pair(i)[wire.UpperLeft].Diameter)
		}
		rows[i] = []string{
			strconv.Itoa(i + 1),
			fmt.Sprintf("%.3f", e.Length),
			fmt.Sprintf("%.3f", e.Separation),
			fmt.Sprintf("%.3f", e.VertexDistance),
			fmt.Sprintf("%.4f", e.Diameter),
			stock,
		}
	}
	return rows
}

// num formats v in its shortest form.
func num(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
