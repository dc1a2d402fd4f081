package cmd

import (
	"fmt"
	"os"

	"github.com/charmbracelet/huh/spinner"
	"github.com/scriptdiff/scriptdiff/cmd/component"
	"github.com/scriptdiff/scriptdiff/display"
	"github.com/scriptdiff/scriptdiff/export/markdown"
	"github.com/scriptdiff/scriptdiff/script"
	"github.com/scriptdiff/scriptdiff/slice"
	"github.com/scriptdiff/scriptdiff/step/render"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

// Scripts with fewer steps render before a spinner would be visible.
const spinnerThreshold = 200

var (
	markdownFlag    bool
	browseFlag      bool
	concurrencyFlag int
)

// scriptCmd represents the script command
var scriptCmd = &cobra.Command{
	Use:   "script [file]",
	Short: "Render every step of a script, one line per step",
	Long: `Render every step found in a script export or clipboard snippet,
one line per step in document order. Steps that cannot be rendered are
reported on stderr and leave an empty line.`,
	Args: cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		ctx := cmd.Context()
		logger := loggerFromCtx(ctx).With("command", "script")

		cfg, err := loadConfig(logger)
		if err != nil {
			display.FatalErr(err)
		}

		data, source, err := readInput(args)
		if err != nil {
			display.FatalErr(err)
		}

		steps, err := script.Split(data)
		if err != nil {
			display.FatalErr(err)
		}
		logger.Debug("found steps", "source", source, "steps", len(steps))

		concurrency := concurrencyFlag
		if !cmd.Flags().Changed("concurrency") && cfg.Concurrency > 0 {
			concurrency = cfg.Concurrency
		}

		r := render.New(cfg.Kinds(), cfg.Policies(), logger)
		var lines []script.Line
		renderSteps := func() {
			lines, err = script.RenderAll(ctx, r, steps, concurrency)
		}

		if len(steps) >= spinnerThreshold && term.IsTerminal(int(os.Stdout.Fd())) {
			if serr := spinner.New().Title("Rendering steps...").Action(renderSteps).Run(); serr != nil {
				display.FatalErr(serr)
			}
		} else {
			renderSteps()
		}
		if err != nil {
			display.FatalErr(err)
		}

		for _, l := range lines {
			if l.Err != nil {
				logger.Warn("step not rendered", "index", l.Step.Index, "id", l.Step.ID, "error", l.Err)
			}
		}
		texts := slice.Map(lines, func(l script.Line) string { return l.Text })

		if browseFlag {
			items := slice.Map(lines, func(l script.Line) component.ListItem {
				return component.ListItem{
					Text:            l.Text,
					DescriptionText: fmt.Sprintf("step %d · id %d", l.Step.Index+1, l.Step.ID),
				}
			})
			if err := component.Browse(source, items); err != nil {
				display.FatalErr(err)
			}
		} else {
			for _, text := range texts {
				fmt.Println(text)
			}
		}

		if markdownFlag {
			svc := markdown.NewService(cfg.ExportDir)
			if _, err := svc.ToMarkdownFile(ctx, source, texts); err != nil {
				display.FatalErr(err)
			}
			md, err := svc.ToMarkdown(source, texts)
			if err != nil {
				display.FatalErr(err)
			}
			if err := display.Markdown(md); err != nil {
				display.Error(err)
			}
		}
	},
}

func init() {
	rootCmd.AddCommand(scriptCmd)
	scriptCmd.Flags().BoolVar(&markdownFlag, "markdown", false, "Export the rendered script as markdown and copy it to the clipboard")
	scriptCmd.Flags().BoolVar(&browseFlag, "browse", false, "Browse the rendered steps interactively")
	scriptCmd.Flags().IntVar(&concurrencyFlag, "concurrency", script.DefaultConcurrency, "Maximum number of steps rendered at once")
}
