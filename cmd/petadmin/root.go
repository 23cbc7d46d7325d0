package main

import (
	"github.com/spf13/cobra"
)

func newRootCommand() *cobra.Command {
	var configFlag string

	ctx := &commandContext{configPath: &configFlag}

	rootCmd := &cobra.Command{
		Use:           "petadmin",
		Short:         "Maintenance commands for the pet adoption store",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	rootCmd.PersistentFlags().StringVarP(&configFlag, "config", "c", "", "Configuration file path")

	rootCmd.AddCommand(newListCommand(ctx))
	rootCmd.AddCommand(newApproveAllCommand(ctx))
	rootCmd.AddCommand(newFixFilenamesCommand(ctx))
	rootCmd.AddCommand(newVerifyImagesCommand(ctx))

	return rootCmd
}
