package dateandtime

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/reoring/yangtypes"
)

// layout of the fixed date and time part; 'd' is any ASCII digit.
const layout = "dddd-dd-ddTdd:dd:dd"

// StrToTime converts a date-and-time string into a UNIX timestamp and the
// fraction-of-second digits. Trailing zeros of the fraction are dropped; an
// all-zero fraction is returned as "".
//
// The date and time fields are local to the offset in the string, so the
// offset is subtracted to get UTC. The offset itself is not kept.
func StrToTime(value string) (int64, string, error) {
	if off := checkLayout(value); off >= 0 {
		return 0, "", invalidFormat(value, off)
	}

	naive := time.Date(
		atoi(value[0:4]), time.Month(atoi(value[5:7])), atoi(value[8:10]),
		atoi(value[11:13]), atoi(value[14:16]), atoi(value[17:19]),
		0, time.UTC,
	).Unix()

	i := 19
	var frac string
	if value[i] == '.' {
		i++
		start := i
		for i < len(value) && isDigit(value[i]) {
			i++
		}
		frac = strings.TrimRight(value[start:i], "0")
	}

	var shift int64
	if c := value[i]; c != 'Z' && c != 'z' {
		shift = int64(atoi(value[i+1:i+3]))*60*60 + int64(atoi(value[i+4:i+6]))*60
		// the minutes share the sign of the hours: -05:30 is -5h -30m
		if c == '-' {
			shift = -shift
		}
	}
	return naive - shift, frac, nil
}

// TimeToStr renders a UNIX timestamp with optional fraction digits in the
// local time zone of ctx: YYYY-MM-DDTHH:MM:SS[.frac]+HH:MM. A zero offset is
// printed as +00:00.
func TimeToStr(ctx *yangtypes.Context, t int64, frac string) (string, error) {
	loc, err := ctx.Location()
	if err != nil {
		return "", err
	}
	return formatTime(time.Unix(t, 0).In(loc), frac), nil
}

func formatTime(tm time.Time, frac string) string {
	_, off := tm.Zone()
	sign := byte('+')
	if off < 0 {
		sign = '-'
		off = -off
	}
	b := make([]byte, 0, 26+len(frac))
	b = fmt.Appendf(b, "%04d-%02d-%02dT%02d:%02d:%02d",
		tm.Year(), int(tm.Month()), tm.Day(), tm.Hour(), tm.Minute(), tm.Second())
	if frac != "" {
		b = append(b, '.')
		b = append(b, frac...)
	}
	b = fmt.Appendf(b, "%c%02d:%02d", sign, off/3600, off/60%60)
	return string(b)
}

// checkLayout returns the offset of the first character breaking the
// date-and-time grammar, or -1 when value is well-formed.
func checkLayout(value string) int {
	n := len(value)
	for i := 0; i < len(layout); i++ {
		if i >= n {
			return n
		}
		if layout[i] == 'd' {
			if !isDigit(value[i]) {
				return i
			}
		} else if value[i] != layout[i] {
			return i
		}
	}

	i := len(layout)
	if i < n && value[i] == '.' {
		i++
		if i >= n || !isDigit(value[i]) {
			return i
		}
		for i < n && isDigit(value[i]) {
			i++
		}
	}
	if i >= n {
		return n
	}

	switch value[i] {
	case 'Z', 'z':
		i++
	case '+', '-':
		for j, want := range "dd:dd" {
			k := i + 1 + j
			if k >= n {
				return n
			}
			if want == 'd' && !isDigit(value[k]) || want == ':' && value[k] != ':' {
				return k
			}
		}
		i += 6
	default:
		return i
	}
	if i != n {
		return i
	}
	return -1
}

func invalidFormat(value string, off int) yangtypes.Issues {
	iss := yangtypes.NewIssue(yangtypes.CodeInvalidFormat, "invalid_format", map[string]string{
		"type":   Name,
		"value":  value,
		"offset": strconv.Itoa(off),
	})
	iss[0].Offset = int64(off)
	if off < len(value) {
		iss[0].InputFragment = value[off:]
	}
	return iss
}

func isDigit(c byte) bool { return c >= '0' && c <= '9' }

// atoi parses a short run of digits already checked by checkLayout.
func atoi(s string) int {
	n := 0
	for i := 0; i < len(s); i++ {
		n = n*10 + int(s[i]-'0')
	}
	return n
}
