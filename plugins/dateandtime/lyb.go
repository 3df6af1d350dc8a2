package dateandtime

import (
	"encoding/binary"
	"fmt"
	"strconv"

	"github.com/reoring/yangtypes"
)

// LYB layout of a date-and-time value:
//
//	| Size (B)        | Mandatory | Meaning                                  |
//	| 8               | yes       | UNIX timestamp, signed, little-endian    |
//	| string length   | no        | fraction-of-second digits, no terminator |
const timeSize = 8

// decodeLYB validates and splits an LYB value. The fraction is kept exactly
// as stored, trailing zeros included.
func decodeLYB(value []byte) (int64, string, error) {
	if len(value) < timeSize {
		iss := yangtypes.NewIssue(yangtypes.CodeInvalidLYB, "lyb_size", map[string]string{
			"type": Name,
			"size": strconv.Itoa(len(value)),
			"min":  strconv.Itoa(timeSize),
		})
		iss[0].Params = map[string]any{"size": len(value), "min": timeSize}
		return 0, "", iss
	}
	for i := timeSize; i < len(value); i++ {
		if c := value[i]; !isDigit(c) {
			iss := yangtypes.NewIssue(yangtypes.CodeInvalidLYB, "lyb_char", map[string]string{
				"type": Name,
				"char": printable(c),
			})
			iss[0].Offset = int64(i)
			return 0, "", iss
		}
	}
	t := int64(binary.LittleEndian.Uint64(value[:timeSize]))
	return t, string(value[timeSize:]), nil
}

// encodeLYB returns the timestamp followed by the fraction digits.
func encodeLYB(s *Stored) []byte {
	b := make([]byte, timeSize, timeSize+len(s.Fraction))
	binary.LittleEndian.PutUint64(b, uint64(s.Time))
	return append(b, s.Fraction...)
}

func printable(c byte) string {
	if c >= 0x20 && c < 0x7f {
		return string(rune(c))
	}
	return fmt.Sprintf(`\x%02x`, c)
}
