package cmd

import (
	"fmt"
	"strings"

	"github.com/hotend/aishare/internal/assistants"
	"github.com/pkg/browser"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

// URLInput holds input for URL.
type URLInput struct {
	Assistant string
	Query     string
	Open      bool
}

// URLCmd prints assistant web URLs.
type URLCmd struct {
	registry *assistants.Registry
	open     func(url string) error
}

// URL prints the web URL for an assistant and optionally opens it.
func (u URLCmd) URL(in URLInput) error {
	link := u.registry.URLFor(in.Assistant, in.Query)
	fmt.Println(link)

	if !u.registry.Info(in.Assistant).SupportsURLPrefill && in.Query != "" {
		pterm.Warning.Println("This assistant cannot be pre-filled from the URL; paste the question after it opens.")
	}

	if in.Open {
		if err := u.open(link); err != nil {
			return fmt.Errorf("open browser: %w", err)
		}
	}
	return nil
}

var urlCmd = &cobra.Command{
	Use:               "url <assistant> [query...]",
	Short:             "Print the web URL that opens an assistant",
	Args:              cobra.MinimumNArgs(1),
	ValidArgsFunction: completeAssistant,
	RunE:              runURL,
}

func init() {
	urlCmd.Flags().Bool("open", false, "Open the URL in the browser")
	rootCmd.AddCommand(urlCmd)
}

func runURL(cmd *cobra.Command, args []string) error {
	open, _ := cmd.Flags().GetBool("open")
	u := URLCmd{registry: assistants.NewRegistry(logger), open: browser.OpenURL}
	return u.URL(URLInput{
		Assistant: args[0],
		Query:     strings.Join(args[1:], " "),
		Open:      open,
	})
}
