package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/goccy/go-json"
	"github.com/spf13/cobra"

	js "github.com/reoring/yangtypes/jsonschema"
)

type typeInfo struct {
	Type     string     `json:"type"`
	Revision string     `json:"revision,omitempty"`
	Base     string     `json:"base"`
	Plugin   string     `json:"plugin,omitempty"`
	Schema   *js.Schema `json:"schema,omitempty"`
}

func newTypes(e *env) *cobra.Command {
	var output string
	var withSchema bool
	cmd := &cobra.Command{
		Use:   "types",
		Short: "List the known type descriptors and their plugins",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			infos := make([]typeInfo, 0, len(e.types))
			for _, t := range e.types {
				info := typeInfo{Type: t.QName(), Revision: t.Revision, Base: t.Base.String()}
				if p, err := e.ctx.Registry().Lookup(t); err == nil {
					info.Plugin = p.ID()
				}
				if withSchema {
					s, err := t.JSONSchema()
					if err != nil {
						return err
					}
					info.Schema = s
				}
				infos = append(infos, info)
			}

			w := cmd.OutOrStdout()
			switch output {
			case "json":
				b, err := json.MarshalIndent(infos, "", "  ")
				if err != nil {
					return err
				}
				_, err = fmt.Fprintln(w, string(b))
				return err
			case "text":
				tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
				fmt.Fprintln(tw, "TYPE\tREVISION\tBASE\tPLUGIN")
				for _, i := range infos {
					plugin := i.Plugin
					if plugin == "" {
						plugin = "-"
					}
					fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", i.Type, i.Revision, i.Base, plugin)
				}
				return tw.Flush()
			default:
				return fmt.Errorf("unknown output %q", output)
			}
		},
	}
	cmd.Flags().StringVarP(&output, "output", "o", "text", `output, "text" or "json"`)
	cmd.Flags().BoolVar(&withSchema, "schema", false, "include the JSON Schema projection (json output)")
	return cmd
}
