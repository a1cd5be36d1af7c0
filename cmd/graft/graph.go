package main

import (
	"fmt"
	"os"

	"github.com/aretw0/graft/internal/cli"
	"github.com/spf13/cobra"
)

// graphCmd represents the graph command
var graphCmd = &cobra.Command{
	Use:   "graph",
	Short: "Export the frozen plan as a Mermaid diagram",
	Long:  `Fits the recipe on a sample CSV and outputs a Mermaid flowchart showing how columns flow through the transformer.`,
	Run: func(cmd *cobra.Command, args []string) {
		sample, _ := cmd.Flags().GetString("sample")
		logLevel, _ := cmd.Flags().GetString("log-level")

		opts := cli.GraphOptions{
			Recipe:   recipeRef(cmd),
			Sample:   sample,
			LogLevel: logLevel,
		}
		if err := cli.RunGraph(cmd.Context(), opts); err != nil {
			fmt.Printf("Error: %v\n", err)
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(graphCmd)

	addRecipeFlags(graphCmd)
	graphCmd.Flags().StringP("sample", "s", "-", "Sample CSV path, - for stdin")
}
