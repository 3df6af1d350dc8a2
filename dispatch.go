package yangtypes

import (
	"github.com/sirupsen/logrus"

	"github.com/reoring/yangtypes/internal/metrics"
)

// Store stores value of type typ through the plugin registered for typ.
func (c *Context) Store(typ *Type, value []byte, opts StoreOption, format Format, hints Hints) (*Value, error) {
	p, err := c.registry.Lookup(typ)
	if err != nil {
		return nil, err
	}
	v := &Value{}
	err = p.Store(c, typ, value, opts, format, nil, hints, v)
	metrics.Observe(p.ID(), "store", err)
	if err != nil {
		c.pluginLogger(p, typ).WithError(err).WithField("format", format.String()).Debug("store failed")
		return nil, err
	}
	return v, nil
}

// Print encodes v in format through its plugin.
func (c *Context) Print(v *Value, format Format) (Printed, error) {
	p, err := c.registry.Lookup(v.RealType)
	if err != nil {
		return Printed{}, err
	}
	out, err := p.Print(c, v, format, nil)
	metrics.Observe(p.ID(), "print", err)
	if err != nil {
		c.pluginLogger(p, v.RealType).WithError(err).WithField("format", format.String()).Error("print failed")
		return Printed{}, err
	}
	return out, nil
}

// Compare reports whether a and b hold the same value.
func (c *Context) Compare(a, b *Value) bool {
	if a.RealType != b.RealType {
		return false
	}
	p, err := c.registry.Lookup(a.RealType)
	if err != nil {
		return false
	}
	eq := p.Compare(c, a, b)
	metrics.Observe(p.ID(), "compare", nil)
	return eq
}

// Sort orders a and b when the plugin implements Sorter. ok is false for
// plugins without an order and for values of different types.
func (c *Context) Sort(a, b *Value) (cmp int, ok bool) {
	if a.RealType != b.RealType {
		return 0, false
	}
	p, err := c.registry.Lookup(a.RealType)
	if err != nil {
		return 0, false
	}
	s, ok := p.(Sorter)
	if !ok {
		return 0, false
	}
	return s.Sort(c, a, b), true
}

// Validate runs the second validation pass when the plugin implements
// Validator.
func (c *Context) Validate(v *Value, tree any) error {
	p, err := c.registry.Lookup(v.RealType)
	if err != nil {
		return err
	}
	if val, ok := p.(Validator); ok {
		err = val.Validate(c, v.RealType, v, tree)
		metrics.Observe(p.ID(), "validate", err)
	}
	return err
}

// Duplicate returns a deep copy of src holding its own canonical reference
// in this context.
func (c *Context) Duplicate(src *Value) (*Value, error) {
	p, err := c.registry.Lookup(src.RealType)
	if err != nil {
		return nil, err
	}
	dst := &Value{}
	err = p.Duplicate(c, src, dst)
	metrics.Observe(p.ID(), "duplicate", err)
	if err != nil {
		c.pluginLogger(p, src.RealType).WithError(err).Debug("duplicate failed")
		return nil, err
	}
	return dst, nil
}

// Free releases v. Values without a registered type only release their
// canonical reference.
func (c *Context) Free(v *Value) {
	if v == nil {
		return
	}
	p, err := c.registry.Lookup(v.RealType)
	if err != nil {
		c.dict.Remove(v.Canonical)
		*v = Value{}
		return
	}
	p.Free(c, v)
	metrics.Observe(p.ID(), "free", nil)
}

func (c *Context) pluginLogger(p Plugin, typ *Type) *logrus.Entry {
	fields := logrus.Fields{"plugin": p.ID()}
	if typ != nil {
		fields["type"] = typ.QName()
	}
	return c.logger.WithFields(fields)
}
