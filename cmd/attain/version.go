package main

import (
	"fmt"
	"strings"

	"github.com/aretw0/attain"
	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of attain",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("attain version %s\n", strings.TrimSpace(attain.Version))
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
