package cmd

import (
	"fmt"
	"os"

	"hphpa/internal/config"
	"hphpa/internal/utils"

	"github.com/fatih/color"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
)

// appFs is the filesystem every command reads from and writes to
var appFs = afero.NewOsFs()

var (
	configFile string
	noColor    bool
)

var rootCmd = &cobra.Command{
	Use:   "hphpa",
	Short: "hphpa - HipHop diagnostic log analyzer",
	Long: `hphpa reads the CodeErrors.js log written by the HipHop compiler,
filters its diagnostics against a ruleset and reports the violations
as text, Checkstyle XML or JSON.`,
	Version:       utils.Version,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if noColor {
			color.NoColor = true
		}
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.SetVersionTemplate(utils.VersionString() + "\n")
	rootCmd.PersistentFlags().StringVar(&configFile, "config", config.DefaultFile, "Path to the YAML configuration file")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "Disable colored output")
}

func er(msg interface{}) {
	fmt.Println("Error:", msg)
	os.Exit(1)
}
