package cli

import (
	"fmt"
	"mime"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"docadmin/internal/ingest"
)

var validateMime string

var validateCmd = &cobra.Command{
	Use:   "validate <path>",
	Short: "Run validation and classification on a local file without storing it",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path := args[0]
		f, err := os.Open(path)
		if err != nil {
			return err
		}
		defer f.Close()

		info, err := f.Stat()
		if err != nil {
			return err
		}

		mimeType := validateMime
		if mimeType == "" {
			mimeType = mime.TypeByExtension(filepath.Ext(path))
		}

		// one slot per milestone so none is dropped
		progress := make(chan int, 3)
		doc, err := ingest.Build(ingest.Upload{
			Content:  f,
			Filename: filepath.Base(path),
			MimeType: mimeType,
			Size:     info.Size(),
		}, ingest.ChannelSink(progress))
		close(progress)
		for percent := range progress {
			fmt.Fprintf(cmd.ErrOrStderr(), "progress %d%%\n", percent)
		}
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "valid: %s\n", doc.Filename)
		fmt.Fprintf(out, "type: %s\n", doc.Type)
		fmt.Fprintf(out, "name: %s\n", doc.Name)
		fmt.Fprintf(out, "size: %d\n", doc.Size)
		return nil
	},
}

func init() {
	validateCmd.Flags().StringVar(&validateMime, "mime", "", "declared MIME type (default: guessed from the extension)")
	rootCmd.AddCommand(validateCmd)
}
