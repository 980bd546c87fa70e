package cli

import (
	"bytes"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"docadmin/internal/ingest"
)

var decodeOut string

var encodeCmd = &cobra.Command{
	Use:   "encode <path>",
	Short: "Print a file as base64 text",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		data, err := os.ReadFile(args[0])
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(cmd.OutOrStdout(), ingest.EncodeToText(data))
		return err
	},
}

var decodeCmd = &cobra.Command{
	Use:   "decode <path>",
	Short: "Decode base64 text (from a file, or - for stdin) back to bytes",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		var (
			text []byte
			err  error
		)
		if args[0] == "-" {
			text, err = io.ReadAll(cmd.InOrStdin())
		} else {
			text, err = os.ReadFile(args[0])
		}
		if err != nil {
			return err
		}

		data, err := ingest.DecodeText(string(bytes.TrimSpace(text)))
		if err != nil {
			return fmt.Errorf("decode: %w", err)
		}
		if decodeOut == "" {
			_, err = cmd.OutOrStdout().Write(data)
			return err
		}
		return os.WriteFile(decodeOut, data, 0o644)
	},
}

func init() {
	decodeCmd.Flags().StringVarP(&decodeOut, "out", "o", "", "write bytes to this file instead of stdout")
	rootCmd.AddCommand(encodeCmd, decodeCmd)
}
