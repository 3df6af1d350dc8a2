package dateandtime

import (
	"strconv"
	"strings"
	"time"

	"github.com/reoring/yangtypes"
)

// UTC returns the stored instant. Fraction digits beyond nanoseconds are
// truncated.
func (s *Stored) UTC() time.Time {
	return time.Unix(s.Time, fracNanos(s.Fraction)).UTC()
}

// ToTime returns the instant held by a date-and-time value.
func ToTime(v *yangtypes.Value) (time.Time, error) {
	s, err := payload(v)
	if err != nil {
		return time.Time{}, err
	}
	return s.UTC(), nil
}

// FromTime converts t into a payload. Nanoseconds become the fraction digits
// without trailing zeros. The result can be wrapped into a Value directly:
//
//	v := &yangtypes.Value{RealType: dateandtime.Type(), Payload: dateandtime.FromTime(t)}
func FromTime(t time.Time) *Stored {
	s := &Stored{Time: t.Unix()}
	if ns := t.Nanosecond(); ns != 0 {
		digits := strconv.Itoa(ns)
		s.Fraction = strings.TrimRight(strings.Repeat("0", 9-len(digits))+digits, "0")
	}
	return s
}

func fracNanos(frac string) int64 {
	if len(frac) > 9 {
		frac = frac[:9]
	}
	var ns int64
	for i := 0; i < 9; i++ {
		ns *= 10
		if i < len(frac) {
			ns += int64(frac[i] - '0')
		}
	}
	return ns
}
