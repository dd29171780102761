package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/carlos-lang/carlos/cmd"
)

func main() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:          "carlos [subcommand]",
	Short:        "carlos\n a compiler frontend for the Carlos language",
	Args:         cobra.MinimumNArgs(1),
	SilenceUsage: true,
}

func init() {
	rootCmd.AddCommand(cmd.CheckCmd)
	rootCmd.AddCommand(cmd.AstCmd)
}
