package dict_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/reoring/yangtypes/dict"
)

func TestDictionary_InsertSharesEntries(t *testing.T) {
	r := require.New(t)
	d := dict.New()

	a, err := d.Insert([]byte("2021-01-01T00:00:00+00:00"))
	r.NoError(err)
	b, err := d.InsertString("2021-01-01T00:00:00+00:00")
	r.NoError(err)

	r.Equal(a.String(), b.String())
	r.Equal(1, d.Len())
	r.Equal(2, d.Refs(a.String()))

	d.Remove(a)
	r.Equal(1, d.Len())
	d.Remove(b)
	r.Equal(0, d.Len())
}

func TestDictionary_InsertCopiesInput(t *testing.T) {
	d := dict.New()
	buf := []byte("abc")
	ref, err := d.Insert(buf)
	require.NoError(t, err)
	buf[0] = 'x'
	require.Equal(t, "abc", ref.String())
}

func TestDictionary_InsertZC(t *testing.T) {
	r := require.New(t)
	d := dict.New()

	ref, err := d.InsertZC([]byte("owned"))
	r.NoError(err)
	r.Equal("owned", ref.String())
	r.Equal(5, ref.Len())

	empty, err := d.InsertZC(nil)
	r.NoError(err)
	r.False(empty.IsZero())
	r.Equal("", empty.String())
	r.Equal(2, d.Len())
}

func TestDictionary_ZeroRef(t *testing.T) {
	r := require.New(t)
	d := dict.New()

	var zero dict.Ref
	r.True(zero.IsZero())
	r.Equal("", zero.String())

	d.Remove(zero)
	dup, err := d.Dup(zero)
	r.NoError(err)
	r.True(dup.IsZero())
	r.Equal(0, d.Len())
}

func TestDictionary_DupAcrossDictionaries(t *testing.T) {
	r := require.New(t)
	src := dict.New()
	dst := dict.New()

	ref, err := src.InsertString("value")
	r.NoError(err)

	same, err := src.Dup(ref)
	r.NoError(err)
	r.Equal(2, src.Refs("value"))

	other, err := dst.Dup(ref)
	r.NoError(err)
	r.Equal(1, dst.Refs("value"))
	r.Equal(2, src.Refs("value"))

	// a reference from another dictionary is not ours to release
	dst.Remove(ref)
	r.Equal(1, dst.Refs("value"))
	r.Equal(2, src.Refs("value"))

	src.Remove(ref)
	src.Remove(same)
	dst.Remove(other)
	r.Equal(0, src.Len())
	r.Equal(0, dst.Len())
}

func TestDictionary_MaxEntries(t *testing.T) {
	r := require.New(t)
	d := dict.New(dict.WithMaxEntries(1))

	a, err := d.InsertString("a")
	r.NoError(err)

	// existing content does not need a new entry
	_, err = d.InsertString("a")
	r.NoError(err)

	_, err = d.InsertString("b")
	r.ErrorIs(err, dict.ErrLimit)

	d.Remove(a)
	d.Remove(a)
	_, err = d.InsertString("b")
	r.NoError(err)
}
