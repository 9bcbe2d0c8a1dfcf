package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
)

// strictSections is the global --strict flag value.
var strictSections bool

var rootCmd = &cobra.Command{
	Use:           "planctl",
	Short:         "Offline tools for SehriMilan meal plans",
	Long:          "planctl splits plan Markdown into days, extracts shopping lists, previews generation chunks and mints dev session tokens.",
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&strictSections, "strict", false, "leave shopping sections on any other level-2 heading")
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

// readPlan reads a plan file, or stdin when path is "-" or empty.
func readPlan(cmd *cobra.Command, args []string) (string, error) {
	if len(args) == 0 || args[0] == "-" {
		b, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return "", fmt.Errorf("read stdin: %w", err)
		}
		return string(b), nil
	}
	b, err := os.ReadFile(args[0])
	if err != nil {
		return "", fmt.Errorf("read plan: %w", err)
	}
	return string(b), nil
}
