package cmd

import (
	"context"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/hotend/aishare/internal/assistants"
	"github.com/hotend/aishare/pkg/util"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

type endpointStatus struct {
	Assistant string `json:"assistant"`
	URL       string `json:"url"`
	Status    string `json:"status"`
	Code      int    `json:"code,omitempty"`
	Error     string `json:"error,omitempty"`
}

const (
	statusReachable   = "reachable"
	statusDegraded    = "degraded"
	statusUnreachable = "unreachable"
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Check that the assistant web apps are reachable",
	RunE:  runStatus,
}

func init() {
	statusCmd.Flags().StringP("output", "o", "", "Output format (json)")
	statusCmd.Flags().Duration("timeout", 10*time.Second, "Timeout per request")
	rootCmd.AddCommand(statusCmd)
}

func runStatus(cmd *cobra.Command, args []string) error {
	output, _ := cmd.Flags().GetString("output")
	timeout, _ := cmd.Flags().GetDuration("timeout")
	if output != "" && output != "json" {
		return fmt.Errorf("unsupported --output value: use 'json'")
	}

	client := &http.Client{Timeout: timeout}
	registry := assistants.NewRegistry(logger)
	results := checkAssistants(cmd.Context(), client, registry)

	if output == "json" {
		return util.PrintPrettyJSON(results)
	}

	printStatus(registry, results)
	return nil
}

// checkAssistants probes the landing URL of every assistant concurrently.
// Results keep the display order.
func checkAssistants(ctx context.Context, client *http.Client, registry *assistants.Registry) []endpointStatus {
	keys := assistants.Keys()
	results := make([]endpointStatus, len(keys))
	var wg sync.WaitGroup
	for i, k := range keys {
		wg.Add(1)
		go func(i int, k assistants.Key) {
			defer wg.Done()
			results[i] = probe(ctx, client, string(k), registry.URLFor(string(k), ""))
		}(i, k)
	}
	wg.Wait()
	return results
}

func probe(ctx context.Context, client *http.Client, assistant, url string) endpointStatus {
	st := endpointStatus{Assistant: assistant, URL: url}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		st.Status, st.Error = statusUnreachable, err.Error()
		return st
	}
	req.Header.Set("User-Agent", "aishare-status")

	resp, err := client.Do(req)
	if err != nil {
		st.Status, st.Error = statusUnreachable, err.Error()
		return st
	}
	defer resp.Body.Close()

	st.Code = resp.StatusCode
	switch {
	case resp.StatusCode >= 500:
		st.Status = statusDegraded
	default:
		// Bot protection often answers 403; the app itself is up.
		st.Status = statusReachable
	}
	return st
}

var statusDisplay = map[string]struct {
	label string
	rgb   pterm.RGB
}{
	statusReachable:   {label: "Reachable", rgb: pterm.NewRGB(31, 163, 130)},
	statusDegraded:    {label: "Degraded", rgb: pterm.NewRGB(245, 158, 11)},
	statusUnreachable: {label: "Unreachable", rgb: pterm.NewRGB(239, 68, 68)},
}

func getStatusDisplay(status string) (string, pterm.RGB) {
	if d, ok := statusDisplay[status]; ok {
		return d.label, d.rgb
	}
	return "Unknown", pterm.NewRGB(128, 128, 128)
}

func coloredDot(rgb pterm.RGB) string {
	return rgb.Sprint("●")
}

func printStatus(registry *assistants.Registry, results []endpointStatus) {
	pterm.Println()
	for _, r := range results {
		label, rgb := getStatusDisplay(r.Status)
		name := registry.Info(r.Assistant).Name
		detail := util.FirstOrDash(r.Error, r.URL)
		pterm.Printf("  %s %-12s %-12s %s\n", coloredDot(rgb), name, label, detail)
	}
	pterm.Println()
}
