package cmd

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/hotend/aishare/internal/analytics"
	"github.com/hotend/aishare/internal/assistants"
	"github.com/hotend/aishare/internal/clipboard"
	"github.com/hotend/aishare/internal/device"
	"github.com/hotend/aishare/internal/platform"
	"github.com/hotend/aishare/internal/share"
	"github.com/hotend/aishare/pkg/util"
	"github.com/mattn/go-isatty"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

// ShareRunner runs the share flow.
type ShareRunner interface {
	Run(ctx context.Context, req share.Request) share.Result
}

// AskCmd sends a question to an assistant.
type AskCmd struct {
	runner ShareRunner
	events *analytics.DataLayer
}

// AskInput holds input for Ask.
type AskInput struct {
	Request share.Request
	Output  string
}

type askOutput struct {
	Result share.Result     `json:"result"`
	Events []map[string]any `json:"events,omitempty"`
}

// Ask runs the share flow and reports the outcome. An unsuccessful flow is
// returned as an error so the exit code reflects it.
func (a AskCmd) Ask(ctx context.Context, in AskInput) error {
	if in.Output != "" && in.Output != "json" {
		return fmt.Errorf("unsupported --output value: use 'json'")
	}
	if strings.TrimSpace(in.Request.PromptText) == "" {
		return fmt.Errorf("prompt is empty: pass it as arguments, with --prompt-file or on stdin")
	}
	if in.Request.ProductURL != "" && !assistants.IsValidURL(in.Request.ProductURL) {
		return fmt.Errorf("invalid --url %q: must be an absolute URL", in.Request.ProductURL)
	}

	res := a.runner.Run(ctx, in.Request)

	if in.Output == "json" {
		out := askOutput{Result: res}
		if a.events != nil {
			out.Events = a.events.Entries()
		}
		if err := util.PrintPrettyJSON(out); err != nil {
			return err
		}
	} else if res.Success {
		pterm.Info.Printf("Delivered via %s\n", describeMethod(res.Method))
	}

	if !res.Success {
		return fmt.Errorf("share failed: %s", util.OrDash(res.Error))
	}
	return nil
}

func describeMethod(m share.Method) string {
	switch m {
	case share.MethodShare:
		return "native share"
	case share.MethodWebFallback:
		return "web app (after share was not completed)"
	case share.MethodWeb:
		return "web app"
	case share.MethodCopyOnly:
		return "clipboard only"
	default:
		return string(m)
	}
}

var askCmd = &cobra.Command{
	Use:   "ask <assistant> [question...]",
	Short: "Send a product question to an AI assistant",
	Long: `Send a product question to an AI assistant.

The question is taken from the remaining arguments, from --prompt-file, or from
stdin when it is not a terminal. Assistants: perplexity, chatgpt, claude,
gemini, copilot.

Examples:
  aishare ask chatgpt "Is the E3D V6 suitable for PETG?" --url https://www.hotend.cz/e3d-v6
  cat question.txt | aishare ask claude --title "E3D V6" -o json`,
	Args:              cobra.MinimumNArgs(1),
	ValidArgsFunction: completeAssistant,
	RunE:              runAsk,
}

func init() {
	f := askCmd.Flags()
	f.String("title", "", "Product title")
	f.String("url", "", "Product URL")
	f.String("prompt-file", "", "Read the question from a file ('-' for stdin)")
	f.String("user-agent", "", "Treat the device as this user agent (default: "+device.EnvUserAgent+" or the host OS)")
	f.String("platform", "", "Platform token used for touch detection (default: "+device.EnvPlatform+")")
	f.Int("touch-points", -1, "Number of touch points of the device (default: "+device.EnvTouchPoints+")")
	f.Bool("no-share", false, "Never use the native share target")
	f.String("events-file", "", "Append analytics events to this file as JSON lines")
	f.StringP("output", "o", "", "Output format (json)")
	addConfigFlags(f)

	rootCmd.AddCommand(askCmd)
}

func runAsk(cmd *cobra.Command, args []string) error {
	f := cmd.Flags()
	title, _ := f.GetString("title")
	productURL, _ := f.GetString("url")
	promptFile, _ := f.GetString("prompt-file")
	noShare, _ := f.GetBool("no-share")
	eventsFile, _ := f.GetString("events-file")
	output, _ := f.GetString("output")

	prompt, err := readPrompt(args[1:], promptFile, os.Stdin)
	if err != nil {
		return err
	}

	envOverride, err := configFromEnv(os.LookupEnv)
	if err != nil {
		return err
	}
	flagOverride, err := configFromFlags(f)
	if err != nil {
		return err
	}

	copier := clipboard.NewWriter(clipboard.System{}, clipboard.NewCommandCopier(os.Stderr), logger)

	dataLayer := &analytics.DataLayer{}
	sinks := []analytics.Sink{dataLayer}
	if eventsFile != "" {
		file, err := os.OpenFile(eventsFile, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
		if err != nil {
			return fmt.Errorf("open events file: %w", err)
		}
		defer file.Close()
		sinks = append(sinks, analytics.NewWriterSink(file))
	}

	termOpts := []platform.Option{
		platform.WithLogger(logger),
		platform.WithEnvironment(environmentFromFlags(cmd)),
	}
	if !noShare {
		termOpts = append(termOpts, platform.WithSharer(platform.DetectSharer(os.Stdin, os.Stdout, copier)))
	}
	term := platform.NewTerminal(termOpts...)

	toaster := platform.NewToaster()
	if output == "json" {
		toaster = platform.NewPlainToaster(os.Stderr)
	}

	orch := share.New(term,
		share.WithCopier(copier),
		share.WithNotifier(analytics.NewNotifier(logger, sinks...)),
		share.WithToaster(toaster),
		share.WithLogger(logger),
	)
	orch.UpdateConfig(envOverride)
	orch.UpdateConfig(flagOverride)

	a := AskCmd{runner: orch, events: dataLayer}
	err = a.Ask(cmd.Context(), AskInput{
		Request: share.Request{
			Assistant:    args[0],
			ProductTitle: title,
			ProductURL:   productURL,
			PromptText:   prompt,
		},
		Output: output,
	})
	orch.Wait()
	toaster.Wait()
	return err
}

// environmentFromFlags layers the device flags over the detected environment.
func environmentFromFlags(cmd *cobra.Command) func() device.Environment {
	f := cmd.Flags()
	return func() device.Environment {
		env := device.Current()
		if f.Changed("user-agent") {
			env.UserAgent, _ = f.GetString("user-agent")
		}
		if f.Changed("platform") {
			env.Platform, _ = f.GetString("platform")
		}
		if n, _ := f.GetInt("touch-points"); f.Changed("touch-points") && n >= 0 {
			env.MaxTouchPoints = n
		}
		return env
	}
}

// readPrompt takes the question from args, then promptFile, then stdin when
// stdin is piped.
func readPrompt(args []string, promptFile string, stdin *os.File) (string, error) {
	if len(args) > 0 {
		return strings.Join(args, " "), nil
	}
	if promptFile != "" && promptFile != "-" {
		data, err := os.ReadFile(promptFile)
		if err != nil {
			return "", fmt.Errorf("read prompt file: %w", err)
		}
		return strings.TrimRight(string(data), "\r\n"), nil
	}
	if promptFile == "-" || (stdin != nil && !isatty.IsTerminal(stdin.Fd())) {
		data, err := io.ReadAll(stdin)
		if err != nil {
			return "", fmt.Errorf("read prompt from stdin: %w", err)
		}
		return strings.TrimRight(string(data), "\r\n"), nil
	}
	return "", nil
}

func completeAssistant(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	if len(args) > 0 {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}
	out := make([]string, 0, len(assistants.Keys()))
	for _, d := range assistants.All() {
		out = append(out, string(d.Key)+"\t"+d.Name)
	}
	return out, cobra.ShellCompDirectiveNoFileComp
}

