package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

// version is set via ldflags at build time
var version = "dev"

// versionCmd represents the version command
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Shows the scriptdiff version",
	Long:  "Shows the scriptdiff version",
	Run: func(_ *cobra.Command, _ []string) {
		fmt.Println("version:", version)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
