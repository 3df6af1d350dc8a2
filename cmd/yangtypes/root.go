package main

import (
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/reoring/yangtypes"
	"github.com/reoring/yangtypes/config"
	"github.com/reoring/yangtypes/plugins"
	"github.com/reoring/yangtypes/schema"
)

const (
	configFlag    = "config"
	tzFlag        = "tz"
	typesFlag     = "types"
	verboseFlag   = "verbose"
	logFormatFlag = "log-format"
)

// env is prepared once per invocation by the root command.
type env struct {
	ctx   *yangtypes.Context
	types []*yangtypes.Type
	log   *logrus.Entry
}

// New returns the yangtypes root command.
func New() *cobra.Command {
	e := &env{}
	cmd := &cobra.Command{
		Use:   "yangtypes [sub-command]",
		Short: "Store, convert and compare schema-typed values",
		Long: `yangtypes stores values of schema-declared types through their type plugins
and prints them in the canonical, XML, JSON or LYB format.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return cmd.Help()
		},
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return e.setup(cmd)
		},
		SilenceUsage: true,
	}

	f := cmd.PersistentFlags()
	f.String(configFlag, "", "path of the YAML configuration file")
	f.String(tzFlag, "", "IANA time zone values are printed in (overrides the configuration)")
	f.String(typesFlag, "", "YAML or JSON file with additional type descriptors")
	f.BoolP(verboseFlag, "v", false, "enable debug logging")
	f.String(logFormatFlag, "", `log format, "text" or "json" (overrides the configuration)`)

	cmd.AddCommand(newConvert(e))
	cmd.AddCommand(newCompare(e))
	cmd.AddCommand(newTypes(e))
	return cmd
}

func (e *env) setup(cmd *cobra.Command) error {
	f := cmd.Flags()
	cfg := config.Default()
	if path, _ := f.GetString(configFlag); path != "" {
		var err error
		if cfg, err = config.Load(path); err != nil {
			return err
		}
	}
	if f.Changed(tzFlag) {
		cfg.TimeZone, _ = f.GetString(tzFlag)
	}
	if v, _ := f.GetBool(verboseFlag); v {
		cfg.Log.Level = "debug"
	}
	if f.Changed(logFormatFlag) {
		cfg.Log.Format, _ = f.GetString(logFormatFlag)
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	logger, err := cfg.Logger(cmd.ErrOrStderr())
	if err != nil {
		return err
	}
	e.log = logger

	e.types = nil
	if path, _ := f.GetString(typesFlag); path != "" {
		loaded, err := schema.LoadFile(path)
		if err != nil {
			return err
		}
		e.log.WithField("file", path).Debugf("loaded %d type descriptors", len(loaded))
		e.types = append(e.types, loaded...)
	}
	e.types = append(e.types, plugins.Types()...)

	e.ctx = yangtypes.NewContext(plugins.NewRegistry(), cfg.Options(logger))
	return nil
}

// resolve finds a descriptor by "module:name" or "name". Loaded descriptors
// shadow the built-in ones.
func (e *env) resolve(name string) (*yangtypes.Type, error) {
	if typ, ok := schema.Find(e.types, name); ok {
		return typ, nil
	}
	known := make([]string, 0, len(e.types))
	for _, t := range e.types {
		known = append(known, t.QName())
	}
	return nil, fmt.Errorf("unknown type %q (known: %s)", name, strings.Join(known, ", "))
}

func parseFormat(s string) (yangtypes.Format, error) {
	f, ok := yangtypes.ParseFormat(s)
	if !ok {
		return 0, fmt.Errorf("unknown format %q", s)
	}
	return f, nil
}
