// Package dateandtime implements the ietf-yang-types date-and-time type.
//
// Values are kept as a UTC UNIX timestamp plus the fraction-of-second digits.
// The offset of a stored string is applied and then discarded: printing
// always renders the instant in the local zone of the Context, so a value
// stored with "-05:30" is printed with the local offset, not "-05:30".
//
// Text input is normalized (trailing fraction zeros removed) while LYB input
// is stored verbatim, so "…00.10" from LYB and "…00.1" from text are
// different values.
package dateandtime

import (
	"strings"

	"github.com/reoring/yangtypes"
)

const (
	Module   = "ietf-yang-types"
	Revision = "2013-07-15"
	Name     = "date-and-time"

	// ID identifies the plugin implementation.
	ID = "yangtypes - date-and-time, version 1"

	// Pattern is the date-and-time pattern of ietf-yang-types.
	Pattern = `\d{4}-\d{2}-\d{2}T\d{2}:\d{2}:\d{2}(\.\d+)?(Z|[\+\-]\d{2}:\d{2})`
)

// Stored is the payload of a date-and-time value.
type Stored struct {
	Time     int64  // UNIX timestamp, UTC.
	Fraction string // Fraction-of-second digits, "" when there are none.
}

var dateAndTime = &yangtypes.Type{
	Module:      Module,
	Revision:    Revision,
	Name:        Name,
	Base:        yangtypes.BaseString,
	Patterns:    []*yangtypes.Pattern{yangtypes.MustPattern(Pattern)},
	Format:      "date-time",
	Description: "The date-and-time type is a profile of the ISO 8601 standard for representation of dates and times using the Gregorian calendar.",
}

// Type returns the compiled ietf-yang-types date-and-time descriptor. The
// same pointer is returned on every call.
func Type() *yangtypes.Type { return dateAndTime }

// Record returns the registration record of the plugin.
func Record() yangtypes.Record {
	return yangtypes.Record{Module: Module, Revision: Revision, Name: Name, Plugin: Plugin{}}
}

// Plugin implements yangtypes.Plugin for date-and-time values.
type Plugin struct{}

var _ yangtypes.Plugin = Plugin{}

func (Plugin) ID() string { return ID }

func (p Plugin) Store(ctx *yangtypes.Context, typ *yangtypes.Type, value []byte, opts yangtypes.StoreOption,
	format yangtypes.Format, _ yangtypes.PrefixData, hints yangtypes.Hints, out *yangtypes.Value) (err error) {
	val := &Stored{}
	*out = yangtypes.Value{RealType: typ, Payload: val}
	defer func() {
		if err != nil {
			p.Free(ctx, out)
		}
	}()

	if format == yangtypes.FormatLYB {
		val.Time, val.Fraction, err = decodeLYB(value)
		return err
	}

	if err = typ.CheckHints(hints, value); err != nil {
		return err
	}
	if err = typ.CheckLength(value); err != nil {
		return err
	}
	if err = typ.CheckPatterns(value); err != nil {
		return err
	}

	val.Time, val.Fraction, err = StrToTime(string(value))
	if err != nil {
		return err
	}

	if format == yangtypes.FormatCanonical {
		if opts&yangtypes.StoreDynamic != 0 {
			out.Canonical, err = ctx.Dict().InsertZC(value)
		} else {
			out.Canonical, err = ctx.Dict().Insert(value)
		}
		if err != nil {
			return yangtypes.OutOfMemory(err)
		}
	}
	return nil
}

func (Plugin) Compare(_ *yangtypes.Context, a, b *yangtypes.Value) bool {
	if a.RealType != b.RealType {
		return false
	}
	va, _ := a.Payload.(*Stored)
	vb, _ := b.Payload.(*Stored)
	if va == nil || vb == nil {
		return va == vb
	}
	return va.Time == vb.Time && va.Fraction == vb.Fraction
}

func (Plugin) Print(ctx *yangtypes.Context, v *yangtypes.Value, format yangtypes.Format, _ yangtypes.PrefixData) (yangtypes.Printed, error) {
	val, err := payload(v)
	if err != nil {
		return yangtypes.Printed{}, err
	}

	if format == yangtypes.FormatLYB {
		return yangtypes.Printed{Value: string(encodeLYB(val)), Dynamic: true}, nil
	}

	// generate the canonical value once
	if v.Canonical.IsZero() {
		s, err := TimeToStr(ctx, val.Time, val.Fraction)
		if err != nil {
			return yangtypes.Printed{}, err
		}
		ref, err := ctx.Dict().InsertString(s)
		if err != nil {
			return yangtypes.Printed{}, yangtypes.OutOfMemory(err)
		}
		v.Canonical = ref
	}
	return yangtypes.Printed{Value: v.Canonical.String()}, nil
}

func (p Plugin) Duplicate(ctx *yangtypes.Context, src, dst *yangtypes.Value) error {
	*dst = yangtypes.Value{}
	orig, err := payload(src)
	if err != nil {
		return err
	}

	ref, err := ctx.Dict().Dup(src.Canonical)
	if err != nil {
		p.Free(ctx, dst)
		return yangtypes.OutOfMemory(err)
	}
	dst.Canonical = ref
	dst.Payload = &Stored{Time: orig.Time, Fraction: strings.Clone(orig.Fraction)}
	dst.RealType = src.RealType
	return nil
}

func (Plugin) Free(ctx *yangtypes.Context, v *yangtypes.Value) {
	if ctx != nil {
		ctx.Dict().Remove(v.Canonical)
	}
	*v = yangtypes.Value{}
}

func payload(v *yangtypes.Value) (*Stored, error) {
	if s, ok := v.Payload.(*Stored); ok && s != nil {
		return s, nil
	}
	return nil, yangtypes.NewIssue(yangtypes.CodeInvalidType, "payload_type", map[string]string{"type": Name})
}
