// Command quetzal-sim runs one forward-backward replicate over a grid
// landscape and prints a summary of the resulting coalescent forest.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
