//go:build !ebiten

package main

import (
	"fmt"
	"os"
)

func main() {
	fmt.Fprintln(os.Stderr, "The GUI build of lifeviz requires the ebiten build tag.")
	fmt.Fprintln(os.Stderr, "Re-run with `go run -tags ebiten ./cmd/lifeviz` or build with `-tags ebiten`.")
	fmt.Fprintln(os.Stderr, "For a terminal preview use ./cmd/lifeviz-term; for PNG output use ./cmd/lifeviz-snap.")
	os.Exit(2)
}
