package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"pet-adoption-api/internal/domain/adoptions"
)

func newApproveAllCommand(ctx *commandContext) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "approve-all",
		Short: "Set every record that is not Approved to Approved",
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

			matched := 0
			modified := 0
			approved := string(adoptions.StatusApproved)
			for _, raw := range raws {
				if raw.Status == adoptions.StatusApproved {
					continue
				}
				matched++
				if _, err := env.repo.Update(cmd.Context(), raw.ID, adoptions.Patch{Status: &approved}); err != nil {
					return fmt.Errorf("update %s: %w", raw.ID, err)
				}
				modified++
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Matched: %d\nModified: %d\n", matched, modified)
			return nil
		},
	}
	return cmd
}
