package cmd

import (
	"fmt"
	"os"

	"github.com/hotend/aishare/internal/clipboard"
	"github.com/hotend/aishare/internal/device"
	"github.com/hotend/aishare/internal/platform"
	"github.com/hotend/aishare/pkg/util"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

type detection struct {
	Environment device.Environment `json:"environment"`
	IsMobile    bool               `json:"is_mobile"`
	CanShare    bool               `json:"can_share"`
	Clipboard   bool               `json:"clipboard"`
}

var detectCmd = &cobra.Command{
	Use:   "detect",
	Short: "Show how this device is classified for the share flow",
	RunE:  runDetect,
}

func init() {
	detectCmd.Flags().StringP("output", "o", "", "Output format (json)")
	rootCmd.AddCommand(detectCmd)
}

func runDetect(cmd *cobra.Command, args []string) error {
	output, _ := cmd.Flags().GetString("output")
	if output != "" && output != "json" {
		return fmt.Errorf("unsupported --output value: use 'json'")
	}

	copier := clipboard.NewWriter(clipboard.System{}, clipboard.NewCommandCopier(os.Stderr), logger)
	term := platform.NewTerminal(
		platform.WithLogger(logger),
		platform.WithSharer(platform.DetectSharer(os.Stdin, os.Stdout, copier)),
	)
	d := detection{
		Environment: term.Environment(),
		IsMobile:    term.IsMobile(),
		CanShare:    term.CanShare(),
		Clipboard:   clipboard.System{}.Available(),
	}

	if output == "json" {
		return util.PrintPrettyJSON(d)
	}

	rows := pterm.TableData{{"Property", "Value"}}
	rows = append(rows, []string{"User Agent", util.OrDash(d.Environment.UserAgent)})
	rows = append(rows, []string{"Platform", util.OrDash(d.Environment.Platform)})
	rows = append(rows, []string{"Touch Points", fmt.Sprintf("%d", d.Environment.MaxTouchPoints)})
	rows = append(rows, []string{"Mobile", fmt.Sprintf("%t", d.IsMobile)})
	rows = append(rows, []string{"Native Share", fmt.Sprintf("%t", d.CanShare)})
	rows = append(rows, []string{"Clipboard API", fmt.Sprintf("%t", d.Clipboard)})
	PrintTableNoPad(rows, true)
	return nil
}
