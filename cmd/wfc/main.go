// Command wfc generates images with Wave Function Collapse.
//
//	wfc overlap samples/Flowers.png --n 3 --size 64 --ground
//	wfc tiled tilesets/Knots.yaml --subset Dense --size 24
//	wfc batch jobs.yaml
//
// Results are written as PNG files to --out.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, "wfc:", err)
		os.Exit(1)
	}
}
