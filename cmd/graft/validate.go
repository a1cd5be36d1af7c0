package main

import (
	"fmt"
	"os"

	"github.com/aretw0/graft/internal/validator"
	"github.com/aretw0/graft/pkg/recipes"
	"github.com/aretw0/graft/pkg/registry"
	"github.com/spf13/cobra"
)

var validateCmd = &cobra.Command{
	Use:   "validate [dir]",
	Short: "Check every recipe in a directory",
	Long:  `Loads each recipe document in the directory and builds it against the transformer registry, reporting unknown transformers and bad parameters.`,
	Run: func(cmd *cobra.Command, args []string) {
		checked, err := runValidate(cmd, args)
		if err != nil {
			fmt.Printf("Validation failed: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("All %d recipes are valid! ✅\n", checked)
	},
}

func init() {
	rootCmd.AddCommand(validateCmd)

	validateCmd.Flags().String("recipes-dir", "", "Directory holding recipe documents")
}

func runValidate(cmd *cobra.Command, args []string) (int, error) {
	dir, _ := cmd.Flags().GetString("recipes-dir")
	if dir == "" && len(args) > 0 {
		dir = args[0]
	}
	if dir == "" {
		var err error
		dir, err = os.Getwd()
		if err != nil {
			return 0, err
		}
	}

	src, err := recipes.Open(dir)
	if err != nil {
		return 0, err
	}
	return validator.ValidateRecipes(cmd.Context(), src, registry.Builtin())
}
