package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"pet-adoption-api/internal/domain/adoptions"
)

func newFixFilenamesCommand(ctx *commandContext) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "fix-filenames",
		Short: "Assign the default image to records without a filename",
		RunE: func(cmd *cobra.Command, args []string) error {
			env, err := ctx.open(cmd.Context())
			if err != nil {
				return err
			}
			defer env.close()

			raws, err := env.repo.ListAll(cmd.Context())
			if err != nil {
				return err
			}

			def := env.store.DefaultName()
			modified := 0
			for _, raw := range raws {
				if raw.Filename != "" {
					continue
				}
				if _, err := env.repo.Update(cmd.Context(), raw.ID, adoptions.Patch{Filename: &def}); err != nil {
					return fmt.Errorf("update %s: %w", raw.ID, err)
				}
				modified++
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Modified: %d (default %s)\n", modified, def)
			return nil
		},
	}
	return cmd
}
