package cmd

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"hphpa/internal/analyzer"
	"hphpa/internal/codeerrors"
	"hphpa/internal/config"
	"hphpa/internal/models"
	"hphpa/internal/report"
	"hphpa/internal/rules"
	"hphpa/internal/utils"

	"github.com/fatih/color"
	"github.com/hashicorp/go-hclog"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
)

type analyzeOptions struct {
	LogPath     string
	Ruleset     string
	Checkstyle  string
	OutputJSON  string
	Quiet       bool
	Diagnostics bool
}

var analyzeOpts analyzeOptions

var analyzeCmd = &cobra.Command{
	Use:   "analyze <CodeErrors.js>",
	Short: "Reports violations found in a HipHop diagnostic log",
	Long: `Reads the CodeErrors.js log written by the HipHop compiler, keeps the
diagnostics enabled by the ruleset and reports them per file and line.
Exits with status 1 when at least one violation is found.`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		cfg, err := config.Load(appFs, configFile, cmd.Flags().Changed("config"))
		if err != nil {
			er(err)
		}

		opts := mergeConfig(cmd, cfg, analyzeOpts)
		opts.LogPath = args[0]

		if cfg.NoColor && !cmd.Flags().Changed("no-color") {
			color.NoColor = true
		}

		logger := utils.NewLogger(os.Stderr, opts.Diagnostics)
		if opts.Diagnostics {
			fmt.Println("Diagnostic mode enabled. Detailed logs will be written to stderr.")
		}

		utils.DisplayBanner(os.Stdout)

		index, err := runAnalysis(appFs, os.Stdout, logger, opts)
		if err != nil {
			er(err)
		}

		if code := index.ExitCode(); code != 0 {
			os.Exit(code)
		}
	},
}

// mergeConfig fills every option not set on the command line from the
// configuration file.
func mergeConfig(cmd *cobra.Command, cfg *config.Config, opts analyzeOptions) analyzeOptions {
	flags := cmd.Flags()
	if !flags.Changed("ruleset") && cfg.Ruleset != "" {
		opts.Ruleset = cfg.Ruleset
	}
	if !flags.Changed("checkstyle") && cfg.Checkstyle != "" {
		opts.Checkstyle = cfg.Checkstyle
	}
	if !flags.Changed("output-json") && cfg.OutputJSON != "" {
		opts.OutputJSON = cfg.OutputJSON
	}
	if !flags.Changed("quiet") && cfg.Quiet {
		opts.Quiet = true
	}
	if !flags.Changed("diagnostics") && cfg.Diagnostics {
		opts.Diagnostics = true
	}
	return opts
}

// runAnalysis loads the ruleset and the log, aggregates the violations and
// writes every requested report. Nothing is written when loading fails.
func runAnalysis(fs afero.Fs, out io.Writer, logger hclog.Logger, opts analyzeOptions) (*models.ViolationIndex, error) {
	ruleSet, rulesetName, err := loadRuleSet(fs, opts.Ruleset)
	if err != nil {
		return nil, err
	}
	logger.Debug("loaded ruleset", "ruleset", rulesetName, "rules", ruleSet.Len())
	fmt.Fprintf(out, "Using ruleset %s\n\n", rulesetName)

	rawLog, err := codeerrors.ReadFile(fs, opts.LogPath, logger)
	if err != nil {
		return nil, err
	}

	classifier := rules.NewClassifier(rules.DefaultCatalog(), ruleSet, logger)
	index := analyzer.Aggregate(rawLog, classifier, logger)

	if opts.Checkstyle != "" {
		if err := report.WriteFile(fs, opts.Checkstyle, report.Checkstyle, index); err != nil {
			return nil, fmt.Errorf("failed to write Checkstyle report: %w", err)
		}
		logger.Debug("wrote checkstyle report", "path", opts.Checkstyle)
	}

	if opts.OutputJSON != "" {
		if err := report.WriteFile(fs, opts.OutputJSON, report.JSON, index); err != nil {
			return nil, fmt.Errorf("failed to export results to JSON: %w", err)
		}
		logger.Debug("wrote json report", "path", opts.OutputJSON)
	}

	if !opts.Quiet {
		if err := report.Text(out, index); err != nil {
			return nil, err
		}
	}

	fmt.Fprintln(out, report.Summary(index))
	return index, nil
}

func loadRuleSet(fs afero.Fs, path string) (*models.RuleSet, string, error) {
	if path == "" {
		ruleSet, err := rules.DefaultRuleSet()
		return ruleSet, rules.DefaultRuleSetName, err
	}

	ruleSet, err := rules.LoadRuleSet(fs, path)
	if err != nil {
		return nil, path, err
	}

	if _, isOs := fs.(*afero.OsFs); isOs {
		if abs, err := filepath.Abs(path); err == nil {
			path = abs
		}
	}
	return ruleSet, path, nil
}

func init() {
	rootCmd.AddCommand(analyzeCmd)

	analyzeCmd.Flags().StringVar(&analyzeOpts.Ruleset, "ruleset", "", "Read list of rules to apply from an XML or YAML file")
	analyzeCmd.Flags().StringVar(&analyzeOpts.Checkstyle, "checkstyle", "", "Write report in Checkstyle XML format to file")
	analyzeCmd.Flags().StringVar(&analyzeOpts.OutputJSON, "output-json", "", "Export results to JSON file")
	analyzeCmd.Flags().BoolVar(&analyzeOpts.Quiet, "quiet", false, "Do not print violations")
	analyzeCmd.Flags().BoolVar(&analyzeOpts.Diagnostics, "diagnostics", false, "Enable diagnostic output for debugging")
}
