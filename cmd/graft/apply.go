package main

import (
	"fmt"
	"os"

	"github.com/aretw0/graft/internal/cli"
	"github.com/spf13/cobra"
)

// applyCmd represents the apply command
var applyCmd = &cobra.Command{
	Use:   "apply",
	Short: "Fit a recipe on CSV data and write the transformed table",
	Long:  `Reads a CSV table, fits the recipe's transformer on the selected columns and writes the transformed table as CSV.`,
	Run: func(cmd *cobra.Command, args []string) {
		input, _ := cmd.Flags().GetString("in")
		output, _ := cmd.Flags().GetString("out")
		logLevel, _ := cmd.Flags().GetString("log-level")

		opts := cli.ApplyOptions{
			Recipe:   recipeRef(cmd),
			Input:    input,
			Output:   output,
			LogLevel: logLevel,
		}
		if err := cli.RunApply(cmd.Context(), opts); err != nil {
			fmt.Printf("Error: %v\n", err)
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(applyCmd)

	addRecipeFlags(applyCmd)
	applyCmd.Flags().StringP("in", "i", "-", "Input CSV path, - for stdin")
	applyCmd.Flags().StringP("out", "o", "-", "Output CSV path, - for stdout")
}
