// DeepSOC — an AI-driven security operations center. One binary serves
// the warroom API and runs the role agents; which of those a process
// does is picked by subcommand, so a deployment can scale roles
// independently or run everything on one box.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := rootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
