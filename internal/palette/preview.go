package palette

import (
	"fmt"
	"image/color"
	"io"
	"os"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
	"golang.org/x/term"

	"github.com/jmylchreest/smash/internal/colour"
)

const (
	defaultWidth = 80

	// cellWidth is a two column swatch, a space, #rrggbbaa and a space.
	cellWidth = 13
)

// Options controls how a palette preview is drawn.
type Options struct {
	// Color enables 24-bit ANSI swatches.
	Color bool

	// Width is the number of terminal columns available.
	Width int
}

// TerminalOptions inspects f and enables swatches only when it is a terminal.
func TerminalOptions(f *os.File) Options {
	fd := int(f.Fd()) // #nosec G115 - File descriptors fit in int
	if !term.IsTerminal(fd) {
		return Options{Width: defaultWidth}
	}
	width, _, err := term.GetSize(fd)
	if err != nil || width <= 0 {
		width = defaultWidth
	}
	return Options{Color: true, Width: width}
}

// Hex formats p as #rrggbbaa.
func Hex(p colour.Pixel) string {
	c, _ := colorful.MakeColor(color.NRGBA{R: p.R, G: p.G, B: p.B, A: 0xFF})
	return fmt.Sprintf("%s%02x", c.Hex(), p.A)
}

// Preview writes the palette as a grid of swatches with their hex values.
func Preview(w io.Writer, pixels []colour.Pixel, opts Options) error {
	perRow := defaultWidth / cellWidth
	if opts.Width > 0 {
		perRow = max(opts.Width/cellWidth, 1)
	}

	var b strings.Builder
	for i, p := range pixels {
		b.WriteString(swatch(p, opts.Color))
		b.WriteString(" ")
		b.WriteString(Hex(p))
		if (i+1)%perRow == 0 || i == len(pixels)-1 {
			b.WriteString("\n")
		} else {
			b.WriteString(" ")
		}
	}

	_, err := io.WriteString(w, b.String())
	return err
}

func swatch(p colour.Pixel, ansi bool) string {
	switch {
	case p.A == 0:
		return ".."
	case !ansi:
		return "[]"
	default:
		return fmt.Sprintf("\x1b[48;2;%d;%d;%dm  \x1b[0m", p.R, p.G, p.B)
	}
}
