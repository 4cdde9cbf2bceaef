package main

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
)

var (
	headerStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#50FA7B"))
	labelStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#F8F8F2"))
	fileStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#6272A4"))
)

func printSummary(w io.Writer, names []string, styled bool) {
	header, label := "Icons created successfully!", "Files created:"
	if styled {
		header, label = headerStyle.Render(header), labelStyle.Render(label)
	}
	fmt.Fprintln(w, header)
	fmt.Fprintln(w, label)
	for _, name := range names {
		if styled {
			name = fileStyle.Render(name)
		}
		fmt.Fprintf(w, "  %s\n", name)
	}
}
