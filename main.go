package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"

	"envmarker/icon"
	"envmarker/log"
)

const iconsDir = "public/icons"

func main() {
	os.Exit(generate(iconsDir, os.Stdout, os.Stderr))
}

// generate runs the icon build with diagnostics on stderr and returns the
// process exit code. The logger is closed before it returns.
func generate(dir string, stdout, stderr io.Writer) int {
	log.Init(stderr, zerolog.InfoLevel)
	defer log.Close()

	if err := run(dir, stdout); err != nil {
		log.Errorf("generate icons: %v", err)
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}
	return 0
}

// run renders every icon size into dir, reporting each file on out, and
// finishes with the manifest hint. It stops at the first failure; files
// already written are left in place.
func run(dir string, out io.Writer) error {
	log.RunStart(dir, icon.Sizes)

	for _, size := range icon.Sizes {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("create output dir: %w", err)
		}

		img := icon.Render(size)
		g := icon.Layout(size)
		log.IconRendered(size, g.Padding, g.BandHeight)

		path := filepath.Join(dir, icon.FileName(size))
		n, err := icon.WriteFile(path, img)
		if err != nil {
			return err
		}
		log.IconWritten(path, size, n)
		fmt.Fprintf(out, "Created %s\n", path)
	}

	log.RunEnd(len(icon.Sizes))
	printManifestHint(out)
	return nil
}
