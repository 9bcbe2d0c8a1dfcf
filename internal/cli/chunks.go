package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"sehrimilan/internal/generator"
)

var (
	chunksDays   int
	chunksSize   int
	chunksPrompt bool
)

var chunksCmd = &cobra.Command{
	Use:   "chunks",
	Short: "Preview the day ranges of a generation",
	Long:  "Print the day ranges a generation of --days days would request in parallel.",
	Args:  cobra.NoArgs,
	RunE:  runChunks,
}

func runChunks(cmd *cobra.Command, args []string) error {
	if chunksSize <= 0 {
		return fmt.Errorf("--size must be positive")
	}
	out := cmd.OutOrStdout()

	ranges := generator.Chunks(chunksDays, chunksSize)
	_, _ = fmt.Fprintf(out, "%d days, %d requests\n", chunksDays, len(ranges))
	for i, r := range ranges {
		_, _ = fmt.Fprintf(out, "%d: days %d-%d\n", i+1, r.Start, r.End)
		if chunksPrompt {
			_, _ = fmt.Fprintf(out, "%s\n\n", generator.BuildPrompt(r, generator.Household{FamilySize: 4, DailyBudget: 500, CuisineType: "Indian Desi"}))
		}
	}
	return nil
}

func init() {
	chunksCmd.Flags().IntVar(&chunksDays, "days", 30, "number of plan days")
	chunksCmd.Flags().IntVar(&chunksSize, "size", generator.DefaultChunkSize, "days per request")
	chunksCmd.Flags().BoolVar(&chunksPrompt, "prompt", false, "also print each request's instruction")
	rootCmd.AddCommand(chunksCmd)
}
