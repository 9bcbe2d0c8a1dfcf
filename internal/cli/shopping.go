package cli

import (
	"encoding/json"
	"fmt"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"sehrimilan/internal/planparser"
	"sehrimilan/internal/shopping"
)

var (
	shoppingJSON  bool
	shoppingShare bool
)

var shoppingCmd = &cobra.Command{
	Use:   "shopping [file]",
	Short: "Extract the shopping list from a plan",
	Long:  "Print the deduplicated, categorized shopping list of a plan. Reads stdin when no file is given.",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runShopping,
}

func runShopping(cmd *cobra.Command, args []string) error {
	raw, err := readPlan(cmd, args)
	if err != nil {
		return err
	}
	parser := planparser.New(planparser.Options{StrictSections: strictSections})
	entries := shopping.FromExtracted(parser.ExtractShoppingItems(raw), time.Now())
	out := cmd.OutOrStdout()

	switch {
	case shoppingJSON:
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(entries)
	case shoppingShare:
		_, _ = fmt.Fprintln(out, shopping.ShareText(entries, "User"))
		return nil
	}

	if len(entries) == 0 {
		_, _ = fmt.Fprintln(out, "No shopping items found.")
		return nil
	}
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	_, _ = fmt.Fprintln(w, "CATEGORY\tDAY\tITEM")
	for _, e := range entries {
		_, _ = fmt.Fprintf(w, "%s\t%s\t%s\n", e.Category, e.Day, e.Name)
	}
	return w.Flush()
}

func init() {
	shoppingCmd.Flags().BoolVar(&shoppingJSON, "json", false, "print entries as JSON")
	shoppingCmd.Flags().BoolVar(&shoppingShare, "share", false, "print the WhatsApp share message")
	rootCmd.AddCommand(shoppingCmd)
}
