package main

import (
	"context"
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/aretw0/attain"
	"github.com/aretw0/attain/internal/logging"
	"github.com/aretw0/attain/pkg/domain"
	"github.com/aretw0/attain/pkg/problem"
)

var (
	solvedBadge = color.New(color.FgGreen, color.Bold)
	failedBadge = color.New(color.FgRed, color.Bold)
)

// runCmd represents the run command
var runCmd = &cobra.Command{
	Use:   "run <problem-file>",
	Short: "Solve a problem definition",
	Long: `Loads a problem file (YAML or JSON), attempts to achieve its goals and
prints the trace of executed actions followed by SOLVED or FAILED.`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		levelStr, _ := cmd.Flags().GetString("log-level")
		quiet, _ := cmd.Flags().GetBool("quiet")
		maxDepth, _ := cmd.Flags().GetInt("max-depth")

		level, err := logging.ParseLevel(levelStr)
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			os.Exit(1)
		}

		prob, err := problem.Load(args[0])
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			os.Exit(1)
		}

		opts := []attain.Option{attain.WithLogger(logging.New(level))}
		if maxDepth > 0 {
			opts = append(opts, attain.WithMaxDepth(maxDepth))
		}
		if !quiet {
			opts = append(opts, attain.WithLifecycleHooks(domain.LifecycleHooks{
				OnActionApplied: func(_ context.Context, ev *domain.ActionEvent) {
					fmt.Printf("Executing operation: %s.\n", ev.Action)
				},
			}))
		}

		planner, err := attain.New(prob, opts...)
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			os.Exit(1)
		}

		solved, err := planner.Solve(context.Background())
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			os.Exit(1)
		}

		if !solved {
			failedBadge.Println("FAILED.")
			os.Exit(1)
		}
		solvedBadge.Println("SOLVED.")
	},
}

func init() {
	rootCmd.AddCommand(runCmd)

	runCmd.Flags().Bool("quiet", false, "Suppress the action trace, print only the outcome")
	runCmd.Flags().Int("max-depth", 0, "Recursion depth guard (0 uses the default)")
}
