package cmd

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/carlos-lang/carlos/backend"
	"github.com/carlos-lang/carlos/carlos"
	"github.com/carlos-lang/carlos/internal/log"
)

var AstCmd = &cobra.Command{
	Use:          "ast file.carlos",
	Short:        "Check a Carlos source file and print its resolved program",
	RunE:         runAst,
	Args:         cobra.MinimumNArgs(1),
	SilenceUsage: true,
}

func runAst(cmd *cobra.Command, args []string) error {
	log.SetLevel(slog.LevelError)

	prog, err := carlos.CheckFile(args[0])
	if err != nil {
		return fmt.Errorf("errors found during compilation:\n%s", renderError(err))
	}

	fmt.Fprint(cmd.OutOrStdout(), backend.Unparse(prog))
	return nil
}
