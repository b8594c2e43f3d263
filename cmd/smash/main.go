// Smash - a palette quantizer for lookup table texture formats
//
// Smash reduces images to a fixed number of RGBA8 or RGB5A3 colours and
// writes the quantized images next to the originals.
package main

import (
	"context"
	"os"
	"os/signal"

	"github.com/jmylchreest/smash/internal/cli"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	err := cli.Execute(ctx)
	stop()
	if err != nil {
		os.Exit(1)
	}
}
