package cmd

import (
	"github.com/spf13/cobra"
)

func NewRootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "claude-code-templates <command> [options]",
		Short:         "Inspects a project to pick the assistant template bundle that fits it.",
		SilenceUsage:  true,
		SilenceErrors: true,
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
	}

	rootCmd.SetHelpCommand(&cobra.Command{Hidden: true})

	rootCmd.AddCommand(newDetectCommand())
	rootCmd.AddCommand(newSummaryCommand())
	rootCmd.AddCommand(newVersionCommand())

	return rootCmd
}
