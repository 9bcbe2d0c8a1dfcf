package cli

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"sehrimilan/internal/planparser"
	"sehrimilan/pkg/markdown"
)

var (
	daysShowSegments bool
	daysRenderIndex  int
)

var daysCmd = &cobra.Command{
	Use:   "days [file]",
	Short: "Split a plan into day blocks",
	Long:  "Print the day blocks found in a plan. Reads stdin when no file is given.",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runDays,
}

func runDays(cmd *cobra.Command, args []string) error {
	raw, err := readPlan(cmd, args)
	if err != nil {
		return err
	}
	parser := planparser.New(planparser.Options{StrictSections: strictSections})
	out := cmd.OutOrStdout()

	if daysRenderIndex > 0 {
		days := parser.SplitDays(raw)
		if daysRenderIndex > len(days) {
			return fmt.Errorf("day %d not found, plan has %d", daysRenderIndex, len(days))
		}
		html, err := markdown.New(markdown.Options{HideTitle: true}).Render(days[daysRenderIndex-1].Text)
		if err != nil {
			return fmt.Errorf("render day %d: %w", daysRenderIndex, err)
		}
		_, _ = fmt.Fprint(out, html)
		return nil
	}

	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	if daysShowSegments {
		_, _ = fmt.Fprintln(w, "KIND\tSTART\tEND\tFIRST LINE")
		for _, s := range parser.Partition(raw).Segments {
			_, _ = fmt.Fprintf(w, "%s\t%d\t%d\t%s\n", s.Kind, s.Start, s.End, firstLine(s.Text))
		}
		return w.Flush()
	}

	days := parser.SplitDays(raw)
	if len(days) == 0 {
		_, _ = fmt.Fprintln(out, "No day headings found.")
		return nil
	}
	_, _ = fmt.Fprintln(w, "INDEX\tHEADING\tSTART\tEND")
	for _, d := range days {
		_, _ = fmt.Fprintf(w, "%d\t%s\t%d\t%d\n", d.Index, d.Heading, d.Start, d.End)
	}
	return w.Flush()
}

func firstLine(s string) string {
	line, _, _ := strings.Cut(s, "\n")
	return line
}

func init() {
	daysCmd.Flags().BoolVar(&daysShowSegments, "segments", false, "show every partition segment, including preamble and stray blocks")
	daysCmd.Flags().IntVar(&daysRenderIndex, "html", 0, "render the day at this 1-based position as HTML")
	rootCmd.AddCommand(daysCmd)
}
