package cmd

import (
	"log/slog"
	"os"

	"github.com/scriptdiff/scriptdiff/display"
	"github.com/spf13/cobra"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "scriptdiff",
	Short: "Render exported script steps as diffable text",
	Long: `Render script steps exported as XML into one canonical line of text per step,
so scripts can be diffed and kept under version control.`,
	PersistentPreRun: func(cmd *cobra.Command, _ []string) {
		logLevel := slog.LevelInfo
		if debugFlag {
			logLevel = slog.LevelDebug
		}
		// Stdout carries rendered steps, so logs go to stderr.
		textHandler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			AddSource: debugFlag,
			Level:     logLevel,
		})
		logger := slog.New(textHandler)
		slog.SetDefault(logger)
		cmd.SetContext(ctxWithLogger(cmd.Context(), logger))

		if noColorFlag {
			display.NoColor()
		}
	},
}

var (
	debugFlag   bool
	noColorFlag bool
	cfgFile     string
)

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&debugFlag, "debug", "d", false, "Enable debug mode")
	rootCmd.PersistentFlags().BoolVar(&noColorFlag, "no-color", false, "Disable colored output")
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.config/scriptdiff/config.json)")
}
