package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/resume-builder/internal/rendering"
)

var templatesCommand = &cobra.Command{
	Use:   "templates",
	Short: "List the available output templates",
	RunE: func(_ *cobra.Command, _ []string) error {
		for _, name := range rendering.TemplateNames() {
			fmt.Fprintln(os.Stdout, name)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(templatesCommand)
}
