package main

import (
	"github.com/rfrancotechnologies/egrafana/internal/commands"
	"github.com/spf13/cobra"
)

func main() {
	cobra.CheckErr(commands.NewRootCmd().Execute())
}
