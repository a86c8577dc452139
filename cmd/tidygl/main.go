package main

import (
	"os"

	"github.com/tidygl-dev/tidygl/internal/commands"
)

func main() {
	if err := commands.NewRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}
