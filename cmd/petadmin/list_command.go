package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"pet-adoption-api/internal/domain/adoptions"
)

func newListCommand(ctx *commandContext) *cobra.Command {
	var statusFlag string
	var fullFlag bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List adoption records, optionally filtered by status",
		RunE: func(cmd *cobra.Command, args []string) error {
			env, err := ctx.open(cmd.Context())
			if err != nil {
				return err
			}
			defer env.close()

			var items []adoptions.Record
			if statusFlag != "" {
				items, err = env.svc.ListByStatus(cmd.Context(), adoptions.Status(statusFlag))
			} else {
				items, err = env.svc.ListAll(cmd.Context())
			}
			if err != nil {
				return err
			}

			headers := []string{"ID", "Name", "Type", "Status", "Email", "Updated"}
			if fullFlag {
				headers = append(headers, "Age", "Area", "Phone", "Filename", "Justification")
			}

			rows := make([][]string, 0, len(items))
			for _, rec := range items {
				row := []string{
					rec.ID,
					rec.Name,
					string(rec.Type),
					string(rec.Status),
					rec.Email,
					rec.UpdatedAt.Format(time.RFC3339),
				}
				if fullFlag {
					row = append(row, rec.Age, rec.Area, rec.Phone, rec.Filename, rec.Justification)
				}
				rows = append(rows, row)
			}

			fmt.Fprintln(cmd.OutOrStdout(), renderTable(headers, rows))
			fmt.Fprintf(cmd.OutOrStdout(), "%d record(s)\n", len(items))
			return nil
		},
	}

	cmd.Flags().StringVar(&statusFlag, "status", "", "Filter by status (Pending, Approved, Adopted)")
	cmd.Flags().BoolVar(&fullFlag, "full", false, "Include all record fields")

	return cmd
}
