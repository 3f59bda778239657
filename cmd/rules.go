package cmd

import (
	"fmt"
	"os"

	"hphpa/internal/report"
	"hphpa/internal/rules"

	"github.com/spf13/cobra"
)

var listRuleset string

var rulesCmd = &cobra.Command{
	Use:   "rules",
	Short: "Shows known rules",
	Long:  `Show the known diagnostic categories, their messages and whether the ruleset enables them.`,
	Run: func(cmd *cobra.Command, args []string) {
		ruleSet, name, err := loadRuleSet(appFs, listRuleset)
		if err != nil {
			er(err)
		}

		fmt.Printf("Using ruleset %s\n", name)
		report.Catalog(os.Stdout, rules.Entries(), ruleSet)
	},
}

func init() {
	rootCmd.AddCommand(rulesCmd)

	rulesCmd.Flags().StringVar(&listRuleset, "ruleset", "", "Mark the rules enabled by this XML or YAML file")
}
