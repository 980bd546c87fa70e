package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"docadmin/internal/pdfinfo"
)

var pagesCmd = &cobra.Command{
	Use:   "pages <path>",
	Short: "Print the page count of a PDF",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		data, err := os.ReadFile(args[0])
		if err != nil {
			return err
		}
		n, err := pdfinfo.PageCount(data)
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(cmd.OutOrStdout(), n)
		return err
	},
}

func init() {
	rootCmd.AddCommand(pagesCmd)
}
