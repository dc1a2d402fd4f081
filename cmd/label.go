package cmd

import (
	"fmt"
	"os"

	"github.com/charmbracelet/huh"
	"github.com/scriptdiff/scriptdiff/display"
	"github.com/scriptdiff/scriptdiff/slice"
	"github.com/scriptdiff/scriptdiff/step/policy"
	"github.com/scriptdiff/scriptdiff/theme"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

// labelCmd represents the label command
var labelCmd = &cobra.Command{
	Use:   "label",
	Short: "Show or change how labeled boolean parameters are displayed",
	Long: `Labeled boolean parameters are displayed with one of these policies:

  value_only      ON or OFF
  labeled_toggle  "<label>: ON" or "<label>: OFF"
  flag_if_true    the bare label when true, nothing when false

Labels that are not listed use labeled_toggle.`,
}

var labelListCmd = &cobra.Command{
	Use:   "list",
	Short: "List labels and their display policy",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, _ []string) {
		logger := loggerFromCtx(cmd.Context()).With("command", "label list")
		cfg, err := loadConfig(logger)
		if err != nil {
			display.FatalErr(err)
		}

		table := cfg.Policies()
		for _, p := range policy.All() {
			for _, label := range table.LabelsFor(p) {
				display.KeyValue(label, p.String())
			}
		}
	},
}

var labelSetCmd = &cobra.Command{
	Use:   "set <label> [policy]",
	Short: "Override the display policy of a label",
	Long: `Override the display policy of a label in the config file.
Without a policy argument the policy is chosen interactively.`,
	Args: cobra.RangeArgs(1, 2),
	Run: func(cmd *cobra.Command, args []string) {
		logger := loggerFromCtx(cmd.Context()).With("command", "label set")
		cfg, err := loadConfig(logger)
		if err != nil {
			display.FatalErr(err)
		}

		label := args[0]
		var p policy.Policy
		if len(args) == 2 {
			p, err = policy.ParsePolicy(args[1])
		} else {
			p, err = selectPolicy(label, cfg.Policies().For(label))
		}
		if err != nil {
			display.FatalErr(err)
		}

		cfg.SetLabel(label, p)
		path, err := saveConfig(cfg)
		if err != nil {
			display.FatalErr(err)
		}
		logger.Debug("saved label policy", "label", label, "policy", p, "path", path)
		display.Success(fmt.Sprintf("%q is now displayed as %s", label, p))
	},
}

func selectPolicy(label string, current policy.Policy) (policy.Policy, error) {
	if !term.IsTerminal(int(os.Stdin.Fd())) {
		return "", fmt.Errorf("no policy given for %q and stdin is not a terminal", label)
	}

	choice := current
	options := slice.Map(policy.All(), func(p policy.Policy) huh.Option[policy.Policy] {
		return huh.NewOption(p.String(), p)
	})
	sel := huh.NewSelect[policy.Policy]().
		Title(fmt.Sprintf("How should %q be displayed?", label)).
		Options(options...).
		Value(&choice)

	if err := huh.NewForm(huh.NewGroup(sel)).WithTheme(theme.New()).Run(); err != nil {
		return "", fmt.Errorf("failed to run policy form: %w", err)
	}
	return choice, nil
}

func init() {
	rootCmd.AddCommand(labelCmd)
	labelCmd.AddCommand(labelListCmd)
	labelCmd.AddCommand(labelSetCmd)
}
