package main

import (
	"fmt"
	"os"

	"github.com/aretw0/graft/internal/cli"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "graft",
	Short: "Graft fits transformers on a subset of table columns",
	Long:  `Graft reads tabular data, fits a transformer on the columns a recipe selects and grafts the outputs back onto the untouched columns.`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func init() {
	// Persistent flags (available to all commands)
	rootCmd.PersistentFlags().String("log-level", "info", "Log level: debug, info, warn or error")
}

// addRecipeFlags registers the flags shared by every command that loads a recipe.
func addRecipeFlags(cmd *cobra.Command) {
	cmd.Flags().StringP("recipe", "r", "", "Path to a recipe YAML file")
	cmd.Flags().String("recipes-dir", "", "Directory holding recipe documents")
	cmd.Flags().String("name", "", "Recipe document to load from --recipes-dir")
}

func recipeRef(cmd *cobra.Command) cli.RecipeRef {
	file, _ := cmd.Flags().GetString("recipe")
	dir, _ := cmd.Flags().GetString("recipes-dir")
	name, _ := cmd.Flags().GetString("name")
	return cli.RecipeRef{File: file, Dir: dir, Name: name}
}
