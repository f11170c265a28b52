// SPDX-License-Identifier: EPL-2.0

package cli

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"
)

// Color palette
var (
	primaryColor   = lipgloss.Color("#5F87FF") // Mixer blue
	successColor   = lipgloss.Color("#00AA00") // Green
	errorColor     = lipgloss.Color("#D70000") // Red
	mutedColor     = lipgloss.Color("#888888") // Gray
	highlightColor = lipgloss.Color("#FFD700") // Yellow
	textColor      = lipgloss.Color("#FFFFFF") // White
)

// Styles
var (
	TitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(primaryColor)

	SuccessStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(successColor)

	ErrorStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(errorColor)

	HighlightStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(highlightColor)

	KeyStyle = lipgloss.NewStyle().
			Foreground(mutedColor)

	ValueStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(textColor)

	BoxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(primaryColor).
			Padding(0, 1)
)

// Printer writes styled status lines. Status never goes to stdout, which
// may carry audio.
type Printer struct {
	w io.Writer
}

func NewPrinter(w io.Writer) *Printer {
	return &Printer{w: w}
}

// PrintVersion prints version information
func (p *Printer) PrintVersion(version string) {
	fmt.Fprintln(p.w, TitleStyle.Render("audmix"))
	fmt.Fprintf(p.w, "%s %s\n", KeyStyle.Render("Version:"), ValueStyle.Render(version))
}

func (p *Printer) PrintError(message string) {
	fmt.Fprintf(p.w, "%s %s\n", ErrorStyle.Render("Error:"), message)
}

func (p *Printer) PrintWarning(message string) {
	fmt.Fprintf(p.w, "%s %s\n", HighlightStyle.Render("Warning:"), message)
}

func (p *Printer) PrintSuccess(message string) {
	fmt.Fprintf(p.w, "%s %s\n", SuccessStyle.Render("✓"), message)
}

func (p *Printer) PrintInfo(key, value string) {
	fmt.Fprintf(p.w, "%s %s\n", KeyStyle.Render(key+":"), ValueStyle.Render(value))
}

// TrackLine describes one mixer input for PrintMixSummary.
type TrackLine struct {
	Slot   string
	Name   string
	Volume int
	Pan    int
}

// PrintMixSummary prints both inputs and the result in a box. size is the
// number of bytes written, or 0 when nothing was exported.
func (p *Printer) PrintMixSummary(tracks []TrackLine, duration time.Duration, sampleRate int, size uint64) {
	var b strings.Builder

	b.WriteString(SuccessStyle.Render("✓ Mix ready"))
	b.WriteString("\n")

	for _, t := range tracks {
		b.WriteString("\n")
		b.WriteString(KeyStyle.Render(fmt.Sprintf("Track %s: ", t.Slot)))
		b.WriteString(ValueStyle.Render(t.Name))
		b.WriteString(KeyStyle.Render(fmt.Sprintf("  vol %d  pan %s", t.Volume, FormatPan(t.Pan))))
	}

	b.WriteString("\n\n")
	b.WriteString(KeyStyle.Render("Duration: "))
	b.WriteString(ValueStyle.Render(FormatDuration(duration)))
	b.WriteString(KeyStyle.Render("  Rate: "))
	b.WriteString(ValueStyle.Render(humanize.SI(float64(sampleRate), "Hz")))

	if size > 0 {
		b.WriteString(KeyStyle.Render("  Size: "))
		b.WriteString(ValueStyle.Render(humanize.Bytes(size)))
	}

	fmt.Fprintln(p.w, BoxStyle.Render(b.String()))
}

// FormatDuration formats a duration nicely
func FormatDuration(d time.Duration) string {
	if d < time.Second {
		return fmt.Sprintf("%.0fms", d.Seconds()*1000)
	}
	return fmt.Sprintf("%.1fs", d.Seconds())
}

// FormatPan renders a pan value as L<n>, R<n> or C.
func FormatPan(pan int) string {
	switch {
	case pan < 0:
		return fmt.Sprintf("L%d", -pan)
	case pan > 0:
		return fmt.Sprintf("R%d", pan)
	}
	return "C"
}
