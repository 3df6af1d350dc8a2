package yangtypes

import (
	"sync"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/reoring/yangtypes/dict"
)

// Context is the schema context values are stored in. It owns the
// dictionary of canonical strings and carries the plugin registry, the
// logger and the time zone used for printing.
//
// Plugin operations take no locks; callers serialize operations that touch
// the same Value.
type Context struct {
	dict     *dict.Dictionary
	registry *Registry
	logger   *logrus.Entry
	tz       string

	locOnce sync.Once
	loc     *time.Location
	locErr  error
}

// NewContext returns a context resolving plugins in reg. A nil reg yields an
// empty registry.
func NewContext(reg *Registry, opts Options) *Context {
	if reg == nil {
		reg = NewRegistry()
	}
	var dopts []dict.Option
	if opts.MaxDictEntries > 0 {
		dopts = append(dopts, dict.WithMaxEntries(opts.MaxDictEntries))
	}
	logger := opts.Logger
	if logger == nil {
		logger = logrus.NewEntry(logrus.StandardLogger())
	}
	return &Context{
		dict:     dict.New(dopts...),
		registry: reg,
		logger:   logger,
		tz:       opts.TimeZone,
	}
}

// Dict returns the interned-string store of the context.
func (c *Context) Dict() *dict.Dictionary { return c.dict }

// Registry returns the plugin registry of the context.
func (c *Context) Registry() *Registry { return c.registry }

// Logger returns the context logger.
func (c *Context) Logger() *logrus.Entry { return c.logger }

// Location returns the zone local times are printed in. The zone is loaded
// once; a zone that cannot be loaded is reported as a system failure.
func (c *Context) Location() (*time.Location, error) {
	c.locOnce.Do(func() {
		switch c.tz {
		case "", "Local":
			c.loc = time.Local
		default:
			loc, err := time.LoadLocation(c.tz)
			if err != nil {
				c.locErr = SystemFailure(err)
				return
			}
			c.loc = loc
		}
	})
	return c.loc, c.locErr
}
