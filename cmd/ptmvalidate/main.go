// ptmvalidate - PTM identification validation toolkit
package main

import (
	"fmt"
	"os"

	"github.com/ikcgroup/ptmvalidate/cmd/ptmvalidate/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
