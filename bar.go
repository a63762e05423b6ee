package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/fatih/color"
	"golang.org/x/sys/unix"
)

const (
	minBoxWidth      = 40
	maxBoxWidth      = 120
	minBarLength     = 10
	defaultTermWidth = 80
)

func terminalWidth() int {
	ws, err := unix.IoctlGetWinsize(int(os.Stdout.Fd()), unix.TIOCGWINSZ)
	if err != nil || ws.Col == 0 {
		return defaultTermWidth
	}
	return int(ws.Col)
}

// barGeometry derives the report widths from the terminal width: the box is
// 80% of the terminal clamped to [40,120], the content sits inside 4 columns
// of frame, and the bar loses 2 more for its brackets but never drops
// below 10 cells.
func barGeometry(termWidth int) (contentWidth, barLength int) {
	boxWidth := termWidth * 4 / 5
	if boxWidth > maxBoxWidth {
		boxWidth = maxBoxWidth
	}
	if boxWidth < minBoxWidth {
		boxWidth = minBoxWidth
	}
	contentWidth = boxWidth - 4
	barLength = contentWidth - 2
	if barLength < minBarLength {
		barLength = minBarLength
	}
	return contentWidth, barLength
}

// barColor is the cell gradient: green at the left edge, yellow at the
// middle, red at the right edge. Two linear RGB segments, channel values
// truncated, defined for length > 1.
func barColor(i, length int) (r, g, b int) {
	ratio := float64(i) / float64(length-1)
	if ratio < 0.5 {
		return int(ratio * 2 * 255), 255, 0
	}
	return 255, int((1-(ratio-0.5)*2)*255), 0
}

// renderBar builds the styled cells of a usage bar. The percentage text is
// centered within the filled region when it fits there; otherwise it starts
// at cell 0 and is only drawn over filled cells, so on a mostly empty bar it
// comes out clipped or not at all. That asymmetry is deliberate.
// Every cell carries its own reset so styling never bleeds.
func renderBar(pct float64, barLength int) string {
	filled := int(pct / 100 * float64(barLength))
	text := fmt.Sprintf("%.1f%%", pct)
	textStart := 0
	if filled > len(text) {
		textStart = (filled - len(text)) / 2
	}

	var bar strings.Builder
	for i := 0; i < barLength; i++ {
		switch {
		case i >= textStart && i < textStart+len(text) && i < filled:
			r, g, b := barColor(i, barLength)
			bar.WriteString(color.RGB(0, 0, 255).AddBgRGB(r, g, b).Sprint(string(text[i-textStart])))
		case i < filled:
			r, g, b := barColor(i, barLength)
			bar.WriteString(color.RGB(r, g, b).Sprint("█"))
		default:
			bar.WriteString(color.RGB(160, 160, 160).AddBgRGB(64, 64, 64).Sprint("░"))
		}
	}
	return bar.String()
}

// visibleLength counts the runes of s that are not part of an ANSI styling
// run (ESC up to and including the terminating 'm').
func visibleLength(s string) int {
	n := 0
	inEscape := false
	for _, r := range s {
		switch {
		case r == '\x1b':
			inEscape = true
		case inEscape && r == 'm':
			inEscape = false
		case !inEscape:
			n++
		}
	}
	return n
}

// barLine wraps the bar in brackets and pads with spaces so every drive's
// line has the same visible width regardless of its bar content.
func barLine(pct float64, termWidth int) string {
	contentWidth, barLength := barGeometry(termWidth)
	line := "[" + renderBar(pct, barLength) + "]"
	if pad := contentWidth - visibleLength(line); pad > 0 {
		line += strings.Repeat(" ", pad)
	}
	return line
}
