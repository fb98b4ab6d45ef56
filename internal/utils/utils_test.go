package utils

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTableFormatter(t *testing.T) {
	table := NewTableFormatter("TARGET", "DEPENDENCIES")
	table.AddRow("build", "lint test")
	table.AddRow("lint")
	table.AddRow("fmt", "", "ignored")

	assert.Equal(t, 3, table.Len())
	expected := "" +
		"┌────────┬──────────────┐\n" +
		"│ TARGET │ DEPENDENCIES │\n" +
		"├────────┼──────────────┤\n" +
		"│ build  │ lint test    │\n" +
		"│ lint   │              │\n" +
		"│ fmt    │              │\n" +
		"└────────┴──────────────┘\n"
	assert.Equal(t, expected, table.String())
}

func TestTableFormatter_MultiByteCells(t *testing.T) {
	table := NewTableFormatter("A")
	table.AddRow("héllo")

	lines := strings.Split(strings.TrimSuffix(table.String(), "\n"), "\n")
	assert.Equal(t, "│ héllo │", lines[3])
	assert.Equal(t, "└───────┘", lines[4])
}

func TestBox_Render(t *testing.T) {
	out := NewBox(WarningMessage, "Dry run").
		WithWidth(80).
		AddLine("nothing was executed").
		AddBullet("build").
		Render()

	assert.Contains(t, out, "Dry run")
	assert.Contains(t, out, "nothing was executed")
	assert.Contains(t, out, "• build")
	assert.Contains(t, out, warningPrefix)
	assert.Contains(t, out, topLeft)
	assert.Contains(t, out, bottomRight)
}

func TestBox_AddText(t *testing.T) {
	box := NewBox(ErrorMessage, "Failed").AddText("\nfirst\n  second\n\n")
	assert.Equal(t, []string{"first", "  second"}, box.content)

	box = NewBox(ErrorMessage, "Failed").AddText("\n\n")
	assert.Empty(t, box.content)
}

func TestBox_WrapsLongLines(t *testing.T) {
	long := strings.Repeat("word ", 30)
	out := NewBox(InfoMessage, "Title").WithWidth(40).AddLine(long).Render()

	for _, line := range strings.Split(out, "\n") {
		assert.NotContains(t, line, strings.TrimSpace(long))
	}
	assert.Greater(t, strings.Count(out, "\n"), 4)
}

func TestWrapText(t *testing.T) {
	assert.Equal(t, []string{"one two", "three"}, wrapText("one two three", 8))
	assert.Equal(t, []string{"  one", "  two"}, wrapText("  one two", 6))
	assert.Equal(t, []string{""}, wrapText("   ", 10))
}

func TestErrorBox(t *testing.T) {
	out := Error("Failed", "line one\nline two")
	assert.Contains(t, out, errorPrefix+" Failed")
	assert.Contains(t, out, "line two")
}

func TestBox_RowsAlignWithBorder(t *testing.T) {
	for _, messageType := range []MessageType{InfoMessage, SuccessMessage, WarningMessage, ErrorMessage} {
		out := NewBox(messageType, "Task Error [ACTION-001]").
			WithWidth(60).
			AddLine("héllo wörld").
			AddLine("  日本語 output").
			AddBullet("build").
			AddLine(strings.Repeat("wrapped text ", 10)).
			Render()

		lines := strings.Split(out, "\n")
		require.Greater(t, len(lines), 4)
		border := lipgloss.Width(lines[0])
		for i, line := range lines {
			assert.Equal(t, border, lipgloss.Width(line), "row %d: %q", i, line)
		}
		assert.True(t, strings.HasSuffix(lines[1], vertical), lines[1])
	}
}
