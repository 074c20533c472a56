package main

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/aretw0/attain/pkg/problem"
)

var warningBadge = color.New(color.FgYellow, color.Bold)

// validateCmd represents the validate command
var validateCmd = &cobra.Command{
	Use:   "validate <problem-file>",
	Short: "Check a problem definition without solving it",
	Long: `Loads a problem file, verifies its structure and reports conditions that
can never become true (goals or preconditions absent from the start
state that no action adds).`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		prob, err := problem.Load(args[0])
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			os.Exit(1)
		}

		warnings := problem.Analyze(prob)
		for _, w := range warnings {
			warningBadge.Print("warning: ")
			fmt.Println(w)
		}
		if len(warnings) > 0 {
			os.Exit(1)
		}

		fmt.Printf("%s: %d actions, %d goals, OK\n", prob.Name, len(prob.Actions), len(prob.Goals))
	},
}

func init() {
	rootCmd.AddCommand(validateCmd)
}
