package cmd

import (
	"fmt"

	"github.com/hotend/aishare/internal/assistants"
	"github.com/hotend/aishare/pkg/util"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

var assistantsCmd = &cobra.Command{
	Use:     "assistants",
	Aliases: []string{"ls"},
	Short:   "List the supported AI assistants",
	RunE:    runAssistants,
}

func init() {
	assistantsCmd.Flags().StringP("output", "o", "", "Output format (json)")
	rootCmd.AddCommand(assistantsCmd)
}

func runAssistants(cmd *cobra.Command, args []string) error {
	output, _ := cmd.Flags().GetString("output")
	return listAssistants(output)
}

func listAssistants(output string) error {
	if output != "" && output != "json" {
		return fmt.Errorf("unsupported --output value: use 'json'")
	}

	all := assistants.All()
	if output == "json" {
		return util.PrintPrettyJSON(all)
	}

	rows := pterm.TableData{{"Key", "Name", "Prefill", "Description"}}
	for _, d := range all {
		prefill := "no (clipboard)"
		if d.SupportsURLPrefill {
			prefill = "yes"
		}
		rows = append(rows, []string{string(d.Key), d.Icon + " " + d.Name, prefill, util.OrDash(d.Description)})
	}
	PrintTableNoPad(rows, true)
	return nil
}
