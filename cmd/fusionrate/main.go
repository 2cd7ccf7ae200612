package main

import (
	"os"

	"github.com/PrincetonUniversity/fusionrate/cmd/fusionrate/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
