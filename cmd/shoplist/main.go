// Command shoplist is a command-line client for the shopping list server.
package main

import (
	"fmt"
	"os"

	"github.com/mmynk/shoppinglist/pkg/logging"
)

func main() {
	logging.Setup()
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
