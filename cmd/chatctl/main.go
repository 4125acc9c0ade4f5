// Command chatctl drives chat stores from the terminal against the configured
// storage backend.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := run(os.Args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "Fatal error: %v\n", err)
		os.Exit(1)
	}
}

// run executes one command line; storage opened by the command is closed
// before returning, whatever the outcome.
func run(args []string) error {
	a := &app{}
	defer func() {
		_ = a.close()
	}()
	rootCmd := newRootCmd(a)
	rootCmd.SetArgs(args)
	return rootCmd.Execute()
}
