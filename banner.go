package main

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
)

const manifestSnippet = `
  manifest: {
    icons: {
      '16': 'icons/icon16.png',
      '48': 'icons/icon48.png',
      '128': 'icons/icon128.png',
    },
  }
`

// printManifestHint writes the closing banner. Styling is dropped when out is
// not a terminal.
func printManifestHint(out io.Writer) {
	r := lipgloss.NewRenderer(out)
	success := r.NewStyle().
		Foreground(lipgloss.Color("42")).
		Bold(true).
		Render("Icons created successfully!")
	hint := r.NewStyle().
		Foreground(lipgloss.Color("245")).
		Render("Add these to your wxt.config.ts manifest:")

	fmt.Fprintln(out)
	fmt.Fprintln(out, success)
	fmt.Fprintln(out, hint)
	fmt.Fprint(out, manifestSnippet+"\n")
}
