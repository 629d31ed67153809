package display

import (
	"fmt"
	"io"
	"strings"
)

// AnsiRenderer writes frames as plain ANSI colored text. It covers the
// full frame without a widget library; a richer layout engine can be
// plugged in behind the Renderer interface.
type AnsiRenderer struct {
	w io.Writer
}

func NewAnsiRenderer(w io.Writer) *AnsiRenderer {
	return &AnsiRenderer{w: w}
}

const (
	ansiReset   = "\x1b[0m"
	ansiClear   = "\x1b[2J\x1b[H"
	ansiInverse = "\x1b[7;1m"
)

var severityColors = map[Severity]string{
	SeveritySafe:     "\x1b[32m",
	SeverityWarning:  "\x1b[33m",
	SeverityCritical: "\x1b[31m",
}

func (r *AnsiRenderer) Draw(frame *Frame) error {
	var b strings.Builder
	b.WriteString(ansiClear)

	if len(frame.TyreWear) > 0 {
		b.WriteString("Tyres Wear\n")
		for _, g := range frame.TyreWear {
			writeGauge(&b, g)
		}
	}
	writeList(&b, "Status", frame.Status)
	if len(frame.Telemetry) > 0 {
		b.WriteString("\n")
		for _, g := range frame.Telemetry {
			writeGauge(&b, g)
		}
	}
	writeList(&b, "Car Info", frame.CarInfo)

	if len(frame.Positions.Rows) > 0 {
		b.WriteString("\nLive Position\n")
		b.WriteString("  " + strings.Join(frame.Positions.Header, "\t") + "\n")
		for _, row := range frame.Positions.Rows {
			line := "  " + strings.Join(row.Cells, "\t")
			if row.Highlight {
				line = ansiInverse + line + ansiReset
			}
			b.WriteString(line + "\n")
		}
	}

	_, err := io.WriteString(r.w, b.String())
	return err
}

func writeGauge(b *strings.Builder, g Gauge) {
	color := severityColors[g.Severity]
	fmt.Fprintf(b, "  %-12s %s%3d%%%s\n", g.Label, color, g.Percent, ansiReset)
}

func writeList(b *strings.Builder, title string, items []string) {
	if len(items) == 0 {
		return
	}
	b.WriteString("\n" + title + "\n")
	for _, item := range items {
		b.WriteString("  " + item + "\n")
	}
}
