package utils

import (
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"
)

// MessageType defines the type of message box to render.
type MessageType int

const (
	// InfoMessage represents an informational message.
	InfoMessage MessageType = iota
	// SuccessMessage represents a success message.
	SuccessMessage
	// WarningMessage represents a warning message.
	WarningMessage
	// ErrorMessage represents an error message.
	ErrorMessage
)

const (
	infoPrefix    = "ℹ"
	successPrefix = "✓"
	warningPrefix = "⚠"
	errorPrefix   = "✗"
)

const (
	topLeft     = "╭"
	topRight    = "╮"
	bottomLeft  = "╰"
	bottomRight = "╯"
	horizontal  = "─"
	vertical    = "│"
)

// Width used when the output is not a terminal
const defaultWidth = 80

var (
	infoStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("86"))
	successStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))
	warningStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("178"))
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
)

// Box is a builder for creating formatted message boxes.
type Box struct {
	messageType MessageType
	title       string
	content     []string
	width       int
}

// NewBox creates a new message box sized for the terminal on stderr.
func NewBox(messageType MessageType, title string) *Box {
	return &Box{
		messageType: messageType,
		title:       title,
		content:     []string{},
		width:       terminalWidth(os.Stderr),
	}
}

// WithWidth overrides the terminal width the box is fitted to.
func (b *Box) WithWidth(width int) *Box {
	b.width = width
	return b
}

// AddLine adds a line of text to the message box content.
func (b *Box) AddLine(text string) *Box {
	b.content = append(b.content, text)
	return b
}

// AddText adds every line of a multi-line block, dropping leading and
// trailing blank lines.
func (b *Box) AddText(text string) *Box {
	text = strings.Trim(text, "\n")
	if text == "" {
		return b
	}
	b.content = append(b.content, strings.Split(text, "\n")...)
	return b
}

// AddBullet adds a bulleted line to the message box content.
func (b *Box) AddBullet(text string) *Box {
	b.content = append(b.content, fmt.Sprintf("• %s", text))
	return b
}

// Render builds and returns the formatted message box as a string.
func (b *Box) Render() string {
	style, prefix := b.getStyleAndPrefix()

	allLines := []string{b.title}
	allLines = append(allLines, b.content...)

	return renderStyledBox(allLines, style, prefix, b.width)
}

func (b *Box) getStyleAndPrefix() (lipgloss.Style, string) {
	switch b.messageType {
	case SuccessMessage:
		return successStyle, successPrefix
	case WarningMessage:
		return warningStyle, warningPrefix
	case ErrorMessage:
		return errorStyle, errorPrefix
	default:
		return infoStyle, infoPrefix
	}
}

// renderStyledBox handles the actual rendering logic. Widths are measured
// in terminal cells so every row lines up with the border.
func renderStyledBox(lines []string, style lipgloss.Style, prefix string, termWidth int) string {
	contentWidth := termWidth - 14
	if contentWidth < 20 {
		contentWidth = 20
	}

	var wrappedLines []string
	for _, line := range lines {
		if lipgloss.Width(line) <= contentWidth {
			wrappedLines = append(wrappedLines, line)
		} else {
			wrappedLines = append(wrappedLines, wrapText(line, contentWidth)...)
		}
	}

	// "│ " + prefix + " " + text + " │"
	gutter := lipgloss.Width(prefix) + 2
	boxWidth := gutter + 3
	for _, line := range wrappedLines {
		if w := 1 + gutter + lipgloss.Width(line) + 2; w > boxWidth {
			boxWidth = w
		}
	}

	var sb strings.Builder
	sb.WriteString(style.Render(topLeft+strings.Repeat(horizontal, boxWidth-2)+topRight) + "\n")

	firstLine := wrappedLines[0]
	sb.WriteString(fmt.Sprintf("%s %s %s%s %s\n",
		style.Render(vertical),
		style.Bold(true).Render(prefix),
		style.Bold(false).Render(firstLine),
		strings.Repeat(" ", padding(boxWidth, gutter, firstLine)),
		style.Render(vertical)))

	indent := strings.Repeat(" ", gutter)
	for _, line := range wrappedLines[1:] {
		sb.WriteString(fmt.Sprintf("%s%s%s%s %s\n",
			style.Render(vertical),
			indent,
			line,
			strings.Repeat(" ", padding(boxWidth, gutter, line)),
			style.Render(vertical)))
	}

	sb.WriteString(style.Render(bottomLeft + strings.Repeat(horizontal, boxWidth-2) + bottomRight))
	return sb.String()
}

func padding(boxWidth, gutter int, line string) int {
	if p := boxWidth - 1 - gutter - lipgloss.Width(line) - 2; p > 0 {
		return p
	}
	return 0
}

// Error renders an error box whose body is a multi-line block of text.
func Error(title, body string) string {
	return NewBox(ErrorMessage, title).AddText(body).Render()
}

// terminalWidth returns the width of f or defaultWidth if it is not a terminal.
func terminalWidth(f *os.File) int {
	width, _, err := term.GetSize(int(f.Fd()))
	if err != nil || width <= 0 {
		return defaultWidth
	}
	return width
}

// wrapText wraps text to fit within the specified maximum width. Leading
// indentation is kept on every continuation line.
func wrapText(text string, maxWidth int) []string {
	indent := text[:len(text)-len(strings.TrimLeft(text, " "))]
	words := strings.Fields(text)
	if len(words) == 0 {
		return []string{""}
	}

	var lines []string
	currentLine := indent + words[0]
	currentWidth := lipgloss.Width(currentLine)

	for _, word := range words[1:] {
		wordWidth := lipgloss.Width(word)

		if currentWidth+wordWidth+1 <= maxWidth {
			currentLine += " " + word
			currentWidth += wordWidth + 1
		} else {
			lines = append(lines, currentLine)
			currentLine = indent + word
			currentWidth = len(indent) + wordWidth
		}
	}

	lines = append(lines, currentLine)
	return lines
}
