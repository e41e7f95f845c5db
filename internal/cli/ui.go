package cli

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/charmbracelet/lipgloss"

	apierr "github.com/matzehuels/spiget/pkg/errors"
)

// =============================================================================
// Color Palette
// =============================================================================

var (
	colorCyan   = lipgloss.Color("36")  // Teal - primary actions
	colorGreen  = lipgloss.Color("35")  // Green - success
	colorYellow = lipgloss.Color("220") // Amber - warnings, ratings
	colorRed    = lipgloss.Color("167") // Soft red - errors
	colorBlue   = lipgloss.Color("75")  // Light blue - links
	colorWhite  = lipgloss.Color("255") // Bright white - values
	colorGray   = lipgloss.Color("245") // Gray - secondary text
	colorDim    = lipgloss.Color("240") // Dim gray - muted text
)

// =============================================================================
// Public Styles
// =============================================================================

var (
	// StyleTitle for main headings.
	StyleTitle = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)

	// StyleLink for URLs.
	StyleLink = lipgloss.NewStyle().Foreground(colorBlue).Underline(true)

	// StyleDim for secondary/muted text.
	StyleDim = lipgloss.NewStyle().Foreground(colorDim)

	// StyleValue for data values.
	StyleValue = lipgloss.NewStyle().Foreground(colorWhite)
)

// =============================================================================
// Internal Styles
// =============================================================================

var (
	styleIconSuccess = lipgloss.NewStyle().Foreground(colorGreen)
	styleIconError   = lipgloss.NewStyle().Foreground(colorRed)
	styleIconInfo    = lipgloss.NewStyle().Foreground(colorGray)

	styleKey     = lipgloss.NewStyle().Foreground(colorGray).Width(14)
	styleID      = lipgloss.NewStyle().Foreground(colorCyan).Width(9).Align(lipgloss.Right)
	styleRating  = lipgloss.NewStyle().Foreground(colorYellow)
	stylePremium = lipgloss.NewStyle().Foreground(colorYellow).Bold(true)
	styleBody    = lipgloss.NewStyle().PaddingLeft(2).Foreground(colorGray)
)

// =============================================================================
// Icons
// =============================================================================

const (
	iconSuccess = "✓"
	iconError   = "✗"
	iconInfo    = "›"
	iconArrow   = "→"
	iconStar    = "★"
)

// =============================================================================
// Status Output
// =============================================================================

func printSuccess(w io.Writer, format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	fmt.Fprintln(w, styleIconSuccess.Render(iconSuccess)+" "+msg)
}

func printInfo(w io.Writer, format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	fmt.Fprintln(w, styleIconInfo.Render(iconInfo)+" "+msg)
}

// printDetail prints a detail line (indented).
func printDetail(w io.Writer, format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	fmt.Fprintln(w, "  "+StyleDim.Render(msg))
}

// PrintError prints err the way the CLI reports failures. Structured errors
// are shown without their code prefix.
func PrintError(w io.Writer, err error) {
	msg := apierr.UserMessage(err)
	if code := apierr.GetCode(err); code != "" {
		msg += " " + StyleDim.Render("["+string(code)+"]")
	}
	fmt.Fprintln(w, styleIconError.Render(iconError)+" "+msg)
}

// =============================================================================
// Records
// =============================================================================

func printTitle(w io.Writer, title string) {
	fmt.Fprintln(w, StyleTitle.Render(title))
}

// printKeyValue prints a labeled value. Empty values are skipped.
func printKeyValue(w io.Writer, key, value string) {
	if value == "" {
		return
	}
	fmt.Fprintln(w, styleKey.Render(key)+" "+StyleValue.Render(value))
}

func printLink(w io.Writer, key, url string) {
	if url == "" {
		return
	}
	fmt.Fprintln(w, styleKey.Render(key)+" "+StyleLink.Render(url))
}

// printRow prints one list entry: a right-aligned id, a name and dim extras
// separated by dots.
func printRow(w io.Writer, id int, name string, extras ...string) {
	var parts []string
	for _, e := range extras {
		if e != "" {
			parts = append(parts, e)
		}
	}
	line := styleID.Render(fmt.Sprintf("#%d", id)) + "  " + StyleValue.Render(name)
	if len(parts) > 0 {
		line += "  " + StyleDim.Render(strings.Join(parts, " · "))
	}
	fmt.Fprintln(w, line)
}

// printBody prints multi-line text indented under a record.
func printBody(w io.Writer, text string) {
	text = strings.TrimSpace(text)
	if text == "" {
		return
	}
	fmt.Fprintln(w, styleBody.Render(text))
}

func printEmpty(w io.Writer, what string) {
	printInfo(w, "No %s found", what)
}

func rating(count int, average float64) string {
	if count == 0 {
		return ""
	}
	return styleRating.Render(fmt.Sprintf("%s %.1f", iconStar, average)) + StyleDim.Render(fmt.Sprintf(" (%d)", count))
}

func sortedKeys(m map[string]string) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
