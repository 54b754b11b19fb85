package main

import (
	"fmt"
	"os"

	"audio2text/cmd/a2t/cmd"
	"audio2text/internal/config"
)

func main() {
	// Credential problems are warnings here; the chosen engine
	// validates what it actually needs.
	if _, err := config.InitializeConfig(); err != nil {
		fmt.Fprintf(os.Stderr, "configuration warning: %v\n", err)
	}

	cmd.Execute()
}
