package main

import (
	"fmt"
	"os"

	"github.com/aretw0/graft/internal/cli"
	"github.com/spf13/cobra"
)

// inspectCmd represents the inspect command
var inspectCmd = &cobra.Command{
	Use:   "inspect",
	Short: "Fit a recipe on a sample and print the frozen plan",
	Long:  `Fits the recipe on a sample CSV and reports the schema, the selected columns and the frozen output names without writing any data.`,
	Run: func(cmd *cobra.Command, args []string) {
		sample, _ := cmd.Flags().GetString("sample")
		logLevel, _ := cmd.Flags().GetString("log-level")

		opts := cli.InspectOptions{
			Recipe:   recipeRef(cmd),
			Sample:   sample,
			LogLevel: logLevel,
		}
		if err := cli.RunInspect(cmd.Context(), opts); err != nil {
			fmt.Printf("Error: %v\n", err)
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(inspectCmd)

	addRecipeFlags(inspectCmd)
	inspectCmd.Flags().StringP("sample", "s", "-", "Sample CSV path, - for stdin")
}
