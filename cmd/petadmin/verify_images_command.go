package main

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
)

// verify-images reporta el mapeo registro->imagen: cuántos registros usan
// cada archivo y qué filenames referenciados no existen en el directorio.
func newVerifyImagesCommand(ctx *commandContext) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "verify-images",
		Short: "Report image usage and records pointing at missing files",
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

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Total records: %d\n\n", len(raws))

			usage := map[string]int{}
			types := map[string]map[string]bool{}
			withoutFilename := 0
			for _, raw := range raws {
				if raw.Filename == "" {
					withoutFilename++
					continue
				}
				usage[raw.Filename]++
				if types[raw.Filename] == nil {
					types[raw.Filename] = map[string]bool{}
				}
				types[raw.Filename][string(raw.Type)] = true
			}

			names := make([]string, 0, len(usage))
			for name := range usage {
				names = append(names, name)
			}
			sort.Strings(names)

			rows := make([][]string, 0, len(names))
			missing := make([]string, 0)
			for _, name := range names {
				present := "yes"
				if !env.store.Exists(name) {
					present = "MISSING"
					missing = append(missing, name)
				}
				rows = append(rows, []string{name, strconv.Itoa(usage[name]), joinKeys(types[name]), present})
			}

			fmt.Fprintln(out, renderTable([]string{"Filename", "Records", "Types", "On disk"}, rows))
			fmt.Fprintf(out, "\nRecords without filename: %d\n", withoutFilename)
			fmt.Fprintf(out, "Missing image files: %d\n", len(missing))
			return nil
		},
	}
	return cmd
}

func joinKeys(set map[string]bool) string {
	keys := make([]string, 0, len(set))
	for k := range set {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return strings.Join(keys, ", ")
}
