package main

import (
	"os"

	"github.com/icasdri/passthesalt/cmd/passthesalt/commands"
)

func main() {
	os.Exit(commands.Run(os.Args[1:], commands.DefaultConfig()))
}
