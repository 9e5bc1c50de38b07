//go:build !tinygo

package main

import (
	"fmt"
	"os"
)

func main() {
	fmt.Fprintln(os.Stderr, "textanim-pico targets the Raspberry Pi Pico; build it with:")
	fmt.Fprintln(os.Stderr, "  tinygo flash -target=pico ./cmd/textanim-pico")
	os.Exit(2)
}
