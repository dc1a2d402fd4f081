package cmd

import (
	"fmt"
	"strings"

	"github.com/scriptdiff/scriptdiff/display"
	"github.com/scriptdiff/scriptdiff/script"
	"github.com/scriptdiff/scriptdiff/step/render"
	"github.com/spf13/cobra"
)

var renderStepID uint32

// renderCmd represents the render command
var renderCmd = &cobra.Command{
	Use:   "render [file]",
	Short: "Render one script step as a line of text",
	Long: `Render the XML of one script step as a single line of text.
The step is read from file, or from stdin when no file is given. The step id
used to pick the rendering strategy defaults to the step's id attribute.`,
	Args: cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		logger := loggerFromCtx(cmd.Context()).With("command", "render")

		cfg, err := loadConfig(logger)
		if err != nil {
			display.FatalErr(err)
		}

		data, _, err := readInput(args)
		if err != nil {
			display.FatalErr(err)
		}

		id := renderStepID
		if !cmd.Flags().Changed("id") {
			if steps, err := script.Split(data); err == nil && len(steps) > 0 {
				id = steps[0].ID
			}
		}

		r := render.New(cfg.Kinds(), cfg.Policies(), logger)
		line, err := r.Render(id, strings.TrimSpace(string(data)))
		if err != nil {
			display.FatalErr(err)
		}
		fmt.Println(line)
	},
}

func init() {
	rootCmd.AddCommand(renderCmd)
	renderCmd.Flags().Uint32Var(&renderStepID, "id", 0, "step id (default is the step's id attribute)")
}
