package cli

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"docadmin/internal/ingest"
)

var classifyCmd = &cobra.Command{
	Use:   "classify <filename>...",
	Short: "Print the document type and display name inferred from filenames",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
		for _, name := range args {
			t := ingest.Classify(name)
			fmt.Fprintf(w, "%s\t%s\t%s\n", name, t, ingest.ResolveName(name, t))
		}
		return w.Flush()
	},
}

func init() {
	rootCmd.AddCommand(classifyCmd)
}
