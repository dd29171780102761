package cmd

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/carlos-lang/carlos/carlos"
	"github.com/carlos-lang/carlos/frontend/carloserr"
	"github.com/carlos-lang/carlos/internal/log"
)

var CheckCmd = &cobra.Command{
	Use:          "check file.carlos",
	Short:        "Parse and semantically check a Carlos source file",
	RunE:         runCheck,
	Args:         cobra.MinimumNArgs(1),
	SilenceUsage: true,
}

var logLevel *int

func init() {
	logLevel = CheckCmd.Flags().IntP("log-level", "l", int(slog.LevelError), "log level")
}

func runCheck(cmd *cobra.Command, args []string) error {
	log.SetLevel(slog.Level(*logLevel))

	_, err := carlos.CheckFile(args[0])
	if err != nil {
		return fmt.Errorf("errors found during compilation:\n%s", renderError(err))
	}

	color.New(color.FgGreen).Fprintf(cmd.OutOrStdout(), "%s: ok\n", args[0])
	return nil
}

// renderError highlights a carloserr with its code and position; anything
// else prints as-is.
func renderError(err error) string {
	var cErr carloserr.CarlosError
	if !errors.As(err, &cErr) {
		return err.Error()
	}
	position := color.New(color.Faint).Sprintf("at offset %v", cErr.Pos())
	return fmt.Sprintf("%s %s", color.New(color.FgRed).Sprint(carloserr.FormatWithCode(cErr)), position)
}
