package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/reoring/yangtypes/plugins/dateandtime"
)

func newCompare(e *env) *cobra.Command {
	var typeName, from string
	cmd := &cobra.Command{
		Use:   "compare A B",
		Short: "Report whether two values of a type are equal",
		Example: `  yangtypes compare 2021-06-15T10:00:00-05:30 2021-06-15T15:30:00Z
  yangtypes compare --from lyb 0066ee5f00000000 0066ee5f0000000030`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			typ, err := e.resolve(typeName)
			if err != nil {
				return err
			}
			format, err := parseFormat(from)
			if err != nil {
				return err
			}
			a, err := e.store(typ, args[0], format)
			if err != nil {
				return err
			}
			defer e.ctx.Free(a)
			b, err := e.store(typ, args[1], format)
			if err != nil {
				return err
			}
			defer e.ctx.Free(b)

			verdict := "not equal"
			if e.ctx.Compare(a, b) {
				verdict = "equal"
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), verdict)
			return err
		},
	}
	cmd.Flags().StringVar(&typeName, "type", dateandtime.Name, `type name, "module:name" or "name"`)
	cmd.Flags().StringVar(&from, "from", "json", "input format of both values")
	return cmd
}
