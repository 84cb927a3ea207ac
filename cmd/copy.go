package cmd

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/hotend/aishare/internal/clipboard"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

// ClipboardWriter copies text to the clipboard.
type ClipboardWriter interface {
	Copy(ctx context.Context, text, url string) clipboard.Result
}

// CopyCmd copies a prompt without running the share flow.
type CopyCmd struct {
	clipboard ClipboardWriter
}

// CopyInput holds input for Copy.
type CopyInput struct {
	Text string
	URL  string
}

// Copy places the text, and the url after a blank line, on the clipboard.
func (c CopyCmd) Copy(ctx context.Context, in CopyInput) error {
	if in.Text == "" {
		return fmt.Errorf("nothing to copy")
	}
	res := c.clipboard.Copy(ctx, in.Text, in.URL)
	if !res.Success {
		pterm.Error.Println("Could not copy to the clipboard.")
		return fmt.Errorf("copy failed: %w", res.Err)
	}
	pterm.Success.Println("Copied to clipboard")
	return nil
}

var copyCmd = &cobra.Command{
	Use:   "copy <text...>",
	Short: "Copy a prompt to the clipboard",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runCopy,
}

func init() {
	copyCmd.Flags().String("url", "", "URL appended after a blank line")
	rootCmd.AddCommand(copyCmd)
}

func runCopy(cmd *cobra.Command, args []string) error {
	url, _ := cmd.Flags().GetString("url")
	c := CopyCmd{clipboard: clipboard.NewWriter(clipboard.System{}, clipboard.NewCommandCopier(os.Stderr), logger)}
	return c.Copy(cmd.Context(), CopyInput{Text: strings.Join(args, " "), URL: url})
}
