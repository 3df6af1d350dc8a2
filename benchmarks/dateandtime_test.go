package benchmarks_test

import (
	"testing"

	"github.com/reoring/yangtypes"
	"github.com/reoring/yangtypes/plugins"
	"github.com/reoring/yangtypes/plugins/dateandtime"
)

// ---- Helpers ----

func benchContext(tb testing.TB) *yangtypes.Context {
	tb.Helper()
	return yangtypes.NewContext(plugins.NewRegistry(), yangtypes.Options{TimeZone: "UTC"})
}

var inputs = map[string][]byte{
	"zulu":     []byte("2021-06-15T15:30:00Z"),
	"offset":   []byte("2021-06-15T10:00:00-05:30"),
	"fraction": []byte("2021-06-15T15:30:00.123456789+02:00"),
}

// ---- Benchmarks ----

func BenchmarkStore_Text(b *testing.B) {
	for name, in := range inputs {
		b.Run(name, func(b *testing.B) {
			ctx := benchContext(b)
			b.ReportAllocs()
			b.SetBytes(int64(len(in)))
			for i := 0; i < b.N; i++ {
				v, err := ctx.Store(dateandtime.Type(), in, 0, yangtypes.FormatJSON, yangtypes.HintString)
				if err != nil {
					b.Fatalf("store: %v", err)
				}
				ctx.Free(v)
			}
		})
	}
}

func BenchmarkStore_Canonical(b *testing.B) {
	ctx := benchContext(b)
	in := inputs["fraction"]
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		v, err := ctx.Store(dateandtime.Type(), in, 0, yangtypes.FormatCanonical, yangtypes.HintString)
		if err != nil {
			b.Fatalf("store: %v", err)
		}
		ctx.Free(v)
	}
}

func BenchmarkStore_LYB(b *testing.B) {
	ctx := benchContext(b)
	v, err := ctx.Store(dateandtime.Type(), inputs["fraction"], 0, yangtypes.FormatJSON, yangtypes.HintString)
	if err != nil {
		b.Fatalf("store: %v", err)
	}
	bin, err := ctx.Print(v, yangtypes.FormatLYB)
	if err != nil {
		b.Fatalf("print: %v", err)
	}
	raw := bin.Bytes()

	b.ReportAllocs()
	b.SetBytes(int64(len(raw)))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		v, err := ctx.Store(dateandtime.Type(), raw, 0, yangtypes.FormatLYB, 0)
		if err != nil {
			b.Fatalf("store: %v", err)
		}
		ctx.Free(v)
	}
}

// BenchmarkPrint_Cold prints values without a cached canonical string, so
// every iteration formats and interns.
func BenchmarkPrint_Cold(b *testing.B) {
	ctx := benchContext(b)
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		v := &yangtypes.Value{RealType: dateandtime.Type(), Payload: &dateandtime.Stored{Time: int64(i), Fraction: "5"}}
		if _, err := ctx.Print(v, yangtypes.FormatJSON); err != nil {
			b.Fatalf("print: %v", err)
		}
		ctx.Free(v)
	}
}

func BenchmarkPrint_Memoized(b *testing.B) {
	ctx := benchContext(b)
	v, err := ctx.Store(dateandtime.Type(), inputs["offset"], 0, yangtypes.FormatJSON, yangtypes.HintString)
	if err != nil {
		b.Fatalf("store: %v", err)
	}
	if _, err := ctx.Print(v, yangtypes.FormatJSON); err != nil {
		b.Fatalf("print: %v", err)
	}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := ctx.Print(v, yangtypes.FormatJSON); err != nil {
			b.Fatalf("print: %v", err)
		}
	}
}

func BenchmarkDuplicate(b *testing.B) {
	ctx := benchContext(b)
	src, err := ctx.Store(dateandtime.Type(), inputs["fraction"], 0, yangtypes.FormatCanonical, yangtypes.HintString)
	if err != nil {
		b.Fatalf("store: %v", err)
	}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		dst, err := ctx.Duplicate(src)
		if err != nil {
			b.Fatalf("duplicate: %v", err)
		}
		ctx.Free(dst)
	}
}
