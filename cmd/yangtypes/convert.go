package main

import (
	"encoding/hex"
	"fmt"
	"time"

	"github.com/goccy/go-json"
	"github.com/spf13/cobra"

	"github.com/reoring/yangtypes"
	"github.com/reoring/yangtypes/plugins/dateandtime"
)

// result is the JSON output of convert.
type result struct {
	Type    string `json:"type"`
	Format  string `json:"format"`
	Value   string `json:"value"`
	Dynamic bool   `json:"dynamic"`
	// Time is set for date-and-time values.
	Time string `json:"time,omitempty"`
}

func newConvert(e *env) *cobra.Command {
	var typeName, from, to, output string
	cmd := &cobra.Command{
		Use:     "convert VALUE",
		Aliases: []string{"store"},
		Short:   "Store a value and print it in another format",
		Long: `Store VALUE of the given type in the --from format and print it in the --to
format. LYB values are read and written as hex strings.`,
		Example: `  yangtypes convert 2021-06-15T10:00:00-05:30 --tz UTC
  yangtypes convert 2021-06-15T10:00:00Z --to lyb`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			typ, err := e.resolve(typeName)
			if err != nil {
				return err
			}
			fromF, err := parseFormat(from)
			if err != nil {
				return err
			}
			toF, err := parseFormat(to)
			if err != nil {
				return err
			}

			v, err := e.store(typ, args[0], fromF)
			if err != nil {
				return err
			}
			defer e.ctx.Free(v)

			printed, err := e.ctx.Print(v, toF)
			if err != nil {
				return err
			}
			text := printed.Value
			if toF == yangtypes.FormatLYB {
				text = hex.EncodeToString(printed.Bytes())
			}

			w := cmd.OutOrStdout()
			switch output {
			case "text":
				_, err = fmt.Fprintln(w, text)
				return err
			case "json":
				res := result{Type: typ.QName(), Format: toF.String(), Value: text, Dynamic: printed.Dynamic}
				if t, err := dateandtime.ToTime(v); err == nil {
					res.Time = t.Format(time.RFC3339Nano)
				}
				enc := json.NewEncoder(w)
				enc.SetIndent("", "  ")
				return enc.Encode(res)
			default:
				return fmt.Errorf("unknown output %q", output)
			}
		},
	}
	f := cmd.Flags()
	f.StringVar(&typeName, "type", dateandtime.Name, `type name, "module:name" or "name"`)
	f.StringVar(&from, "from", "json", "input format: canonical, xml, json, lyb, ...")
	f.StringVar(&to, "to", "canonical", "output format: canonical, xml, json, lyb, ...")
	f.StringVarP(&output, "output", "o", "text", `output, "text" or "json"`)
	return cmd
}

// store decodes a command line value in format and stores it.
func (e *env) store(typ *yangtypes.Type, arg string, format yangtypes.Format) (*yangtypes.Value, error) {
	in := []byte(arg)
	hints := yangtypes.HintData
	switch format {
	case yangtypes.FormatLYB:
		b, err := hex.DecodeString(arg)
		if err != nil {
			return nil, fmt.Errorf("lyb value: %w", err)
		}
		in, hints = b, 0
	case yangtypes.FormatJSON:
		hints = yangtypes.HintString
	}
	return e.ctx.Store(typ, in, 0, format, hints)
}
