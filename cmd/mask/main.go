// cmd/mask
//
// Prints the 26-bit letter mask of each argument. Handy for poking at the
// letter_mask column of the corpus database by hand.

package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/lettergrid/beehive/internal/letters"
)

func main() {
	if len(os.Args) < 2 {
		fmt.Fprintln(os.Stderr, "usage: mask WORD [WORD...]")
		os.Exit(2)
	}
	for _, arg := range os.Args[1:] {
		m, err := letters.WordMask(strings.ToLower(arg))
		if err != nil {
			fmt.Fprintf(os.Stderr, "%s: %v\n", arg, err)
			continue
		}
		fmt.Printf("%s: %026b\n", arg, m)
	}
}
