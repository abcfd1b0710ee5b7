// Command knighttour searches an N×N board for knight paths between two cells.
package main

import (
	"errors"
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		if errors.Is(err, errInvalidRequest) {
			os.Exit(2)
		}
		os.Exit(1)
	}
}
