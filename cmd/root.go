package cmd

import (
	"errors"
	"io/fs"
	"os"

	"github.com/hotend/aishare/pkg/util"
	"github.com/joho/godotenv"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

// logger is the diagnostic logger shared by all commands. It is rebuilt from
// the persistent flags before every command runs.
var logger = util.DefaultLogger

var rootCmd = &cobra.Command{
	Use:   "aishare",
	Short: "Send a product question to an AI assistant",
	Long: `aishare hands a pre-formatted product question to an AI chat assistant
(Perplexity, ChatGPT, Claude, Gemini or Copilot).

Depending on the device it uses the native share target, opens the assistant's
web app with the question pre-filled, or copies the question to the clipboard
and opens the assistant for a manual paste.

Settings are read from flags, then from AISHARE_* environment variables,
optionally loaded from a .env file in the working directory.`,
	SilenceUsage:      true,
	PersistentPreRunE: setupRoot,
}

func init() {
	rootCmd.PersistentFlags().String("log-level", "warn", "Diagnostic log level (trace, debug, info, warn, error, off)")
	rootCmd.PersistentFlags().Bool("log-json", false, "Write diagnostic logs as JSON")
	rootCmd.PersistentFlags().Bool("no-color", false, "Disable colored output")
}

// Root returns the root command.
func Root() *cobra.Command {
	return rootCmd
}

func setupRoot(cmd *cobra.Command, args []string) error {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return err
	}

	if noColor, _ := cmd.Flags().GetBool("no-color"); noColor || os.Getenv("NO_COLOR") != "" {
		pterm.DisableColor()
	}

	level, _ := cmd.Flags().GetString("log-level")
	asJSON, _ := cmd.Flags().GetBool("log-json")
	l, err := util.NewLogger(os.Stderr, level, asJSON)
	if err != nil {
		return err
	}
	logger = l
	return nil
}
