package yangtypes_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/reoring/yangtypes"
	"github.com/reoring/yangtypes/dict"
)

// TestIssues_Kinds checks that codes map onto the sentinel kinds used with
// errors.Is.
func TestIssues_Kinds(t *testing.T) {
	cases := []struct {
		code string
		kind error
	}{
		{yangtypes.CodeInvalidType, yangtypes.ErrInvalid},
		{yangtypes.CodeLength, yangtypes.ErrInvalid},
		{yangtypes.CodePattern, yangtypes.ErrInvalid},
		{yangtypes.CodeInvalidFormat, yangtypes.ErrInvalid},
		{yangtypes.CodeInvalidLYB, yangtypes.ErrInvalid},
		{yangtypes.CodeDuplicate, yangtypes.ErrInvalid},
		{yangtypes.CodeOutOfMemory, yangtypes.ErrMemory},
		{yangtypes.CodeSystem, yangtypes.ErrSystem},
		{yangtypes.CodeNotFound, yangtypes.ErrNotFound},
	}
	for _, tc := range cases {
		var err error = yangtypes.Issues{{Code: tc.code}}
		if !errors.Is(err, tc.kind) {
			t.Fatalf("%s: expected kind %v", tc.code, tc.kind)
		}
	}
	var err error = yangtypes.Issues{{Code: yangtypes.CodePattern}}
	if errors.Is(err, yangtypes.ErrMemory) {
		t.Fatalf("pattern issue must not match the memory kind")
	}
}

func TestIssues_ErrorSummary(t *testing.T) {
	iss := yangtypes.Issues{
		{Code: "a", Message: "first", Path: "/x"},
		{Code: "b", Message: "second"},
		{Code: "c", Message: "third"},
		{Code: "d", Message: "fourth"},
	}
	got := iss.Error()
	want := "a: first at /x; b: second; c: third; ... (total 4)"
	if got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
	if (yangtypes.Issues{}).Error() != "" {
		t.Fatalf("empty issues must render empty")
	}
}

func TestOutOfMemory_UnwrapsCause(t *testing.T) {
	err := yangtypes.OutOfMemory(dict.ErrLimit)
	if !errors.Is(err, yangtypes.ErrMemory) {
		t.Fatalf("expected memory kind")
	}
	if !errors.Is(err, dict.ErrLimit) {
		t.Fatalf("expected cause to be reachable through errors.Is")
	}
	iss, ok := yangtypes.AsIssues(err)
	if !ok || iss[0].Message != "Memory allocation failed." {
		t.Fatalf("unexpected issues: %v", err)
	}
}

func TestSystemFailure_Message(t *testing.T) {
	err := yangtypes.SystemFailure(errors.New("boom"))
	if !strings.Contains(err.Error(), "(boom)") {
		t.Fatalf("cause missing from message: %v", err)
	}
	if err[0].Offset != -1 {
		t.Fatalf("offset %d, want -1", err[0].Offset)
	}
}

func TestAsIssues(t *testing.T) {
	if _, ok := yangtypes.AsIssues(nil); ok {
		t.Fatalf("nil must not yield issues")
	}
	if _, ok := yangtypes.AsIssues(errors.New("plain")); ok {
		t.Fatalf("plain error must not yield issues")
	}
	wrapped := errors.Join(errors.New("context"), yangtypes.NewIssue(yangtypes.CodeNotFound, "not_found", map[string]string{"type": "m:t"}))
	iss, ok := yangtypes.AsIssues(wrapped)
	if !ok || iss[0].Message != `No plugin registered for type "m:t".` {
		t.Fatalf("unexpected issues: %v", iss)
	}

	var dst yangtypes.Issues
	dst = yangtypes.AppendIssues(dst, yangtypes.Issue{Code: "x"}, yangtypes.Issue{Code: "y"})
	if len(dst) != 2 {
		t.Fatalf("append: got %d issues", len(dst))
	}
}
