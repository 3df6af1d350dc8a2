package dateandtime

import (
	"bytes"
	"errors"
	"testing"

	"github.com/reoring/yangtypes"
)

func TestDecodeLYB_Size(t *testing.T) {
	for _, n := range []int{0, 1, 7} {
		_, _, err := decodeLYB(make([]byte, n))
		if !errors.Is(err, yangtypes.ErrInvalid) {
			t.Fatalf("len %d: expected invalid kind, got %v", n, err)
		}
		iss, _ := yangtypes.AsIssues(err)
		if iss[0].Code != yangtypes.CodeInvalidLYB {
			t.Fatalf("len %d: unexpected code %s", n, iss[0].Code)
		}
	}
	_, _, err := decodeLYB(make([]byte, 7))
	want := "Invalid LYB date-and-time value size 7 (expected at least 8)."
	if iss, _ := yangtypes.AsIssues(err); iss[0].Message != want {
		t.Fatalf("message %q, want %q", iss[0].Message, want)
	}
}

func TestDecodeLYB_NonDigit(t *testing.T) {
	in := append(make([]byte, 8), 'x')
	_, _, err := decodeLYB(in)
	iss, ok := yangtypes.AsIssues(err)
	if !ok {
		t.Fatalf("expected issues, got %v", err)
	}
	if iss[0].Message != "Invalid LYB date-and-time character 'x' (expected a digit)." {
		t.Fatalf("unexpected message %q", iss[0].Message)
	}
	if iss[0].Offset != 8 {
		t.Fatalf("offset %d, want 8", iss[0].Offset)
	}

	_, _, err = decodeLYB(append(make([]byte, 8), '1', 0x00))
	if iss, _ := yangtypes.AsIssues(err); iss[0].Message != `Invalid LYB date-and-time character '\x00' (expected a digit).` {
		t.Fatalf("unexpected message %q", iss[0].Message)
	}
}

func TestEncodeLYB_Layout(t *testing.T) {
	got := encodeLYB(&Stored{Time: 1})
	if !bytes.Equal(got, []byte{1, 0, 0, 0, 0, 0, 0, 0}) {
		t.Fatalf("unexpected encoding % x", got)
	}
	got = encodeLYB(&Stored{Time: -1, Fraction: "05"})
	want := []byte{0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, '0', '5'}
	if !bytes.Equal(got, want) {
		t.Fatalf("unexpected encoding % x", got)
	}
}

func TestLYB_FractionVerbatim(t *testing.T) {
	in := encodeLYB(&Stored{Time: -86400, Fraction: "1000"})
	ts, frac, err := decodeLYB(in)
	if err != nil {
		t.Fatalf("decode err: %v", err)
	}
	if ts != -86400 || frac != "1000" {
		t.Fatalf("got (%d, %q)", ts, frac)
	}
}
