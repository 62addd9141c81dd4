package hist

import (
	"bytes"
	"errors"
	"math/rand/v2"
	"testing"

	"github.com/klauspost/compress/fse"
	"github.com/stretchr/testify/require"
)

func TestHistogramReuse(t *testing.T) {
	r := rand.New(rand.NewPCG(21, 22))
	var h Histogram

	for _, n := range []int{0, 10, 1499, 1500, 70000, 3} {
		src := randomBytes(r, n, 1+r.IntN(256))
		want, wantRes := countReference(src)

		res := h.CountFast(src)
		require.Equal(t, wantRes, res)
		require.Equal(t, wantRes, h.Result)
		require.Equal(t, want, h.Counts)
		require.Equal(t, want[:int(res.MaxSymbol)+1], h.Symbols())
	}
}

func TestHistogramCountBound(t *testing.T) {
	var h Histogram
	src := []byte("the quick brown fox jumps over the lazy dog")

	res, err := h.Count(src, 'z')
	require.NoError(t, err)
	require.Equal(t, uint8('z'), res.MaxSymbol)
	require.Equal(t, uint32(8), res.MaxCount) // spaces
	require.Equal(t, uint32(4), h.Counts['o'])

	_, err = h.Count(src, 'y')
	require.ErrorIs(t, err, ErrSymbolBoundTooSmall)
	require.Equal(t, Result{}, h.Result)
	require.Equal(t, [256]uint32{}, h.Counts)
	require.Equal(t, []uint32{0}, h.Symbols())

	res, err = h.Count(src, 1000)
	require.NoError(t, err)
	require.Equal(t, uint8('z'), res.MaxSymbol)
}

func TestHistogramReset(t *testing.T) {
	var h Histogram
	h.CountFast([]byte("aaab"))
	require.Equal(t, Result{MaxSymbol: 'b', MaxCount: 3}, h.Result)

	h.Reset()
	require.Equal(t, Result{}, h.Result)
	require.Equal(t, [256]uint32{}, h.Counts)
}

func TestHistogramNoAllocs(t *testing.T) {
	src := bytes.Repeat([]byte("allocation free counting "), 400)
	var h Histogram
	allocs := testing.AllocsPerRun(100, func() {
		h.CountFast(src)
		_, _ = h.Count(src, MaxSymbolValue)
		_, _ = h.Count(src, 'u')
	})
	require.Zero(t, allocs)

	ws := NewWorkspace()
	var count [256]uint32
	allocs = testing.AllocsPerRun(100, func() {
		count = [256]uint32{}
		_, _ = CountWorkspace(&count, 'u', src, ws)
		count = [256]uint32{}
		_, _ = CountFastWorkspace(&count, MaxSymbolValue, src, ws)
	})
	require.Zero(t, allocs)
}

type shortScratch struct{ finished bool }

func (s *shortScratch) Histogram() []uint32          { return make([]uint32, 128) }
func (s *shortScratch) HistogramFinished(uint8, int) { s.finished = true }

func TestPopulateShortHistogram(t *testing.T) {
	var s shortScratch
	_, err := Populate(&s, []byte("abc"))
	require.ErrorIs(t, err, ErrShortHistogram)
	require.False(t, s.finished)
}

func TestPopulateClearsBuffer(t *testing.T) {
	var s fse.Scratch
	buf := s.Histogram()
	for i := range buf {
		buf[i] = 99
	}
	src := []byte("mississippi")
	res, err := Populate(&s, src)
	require.NoError(t, err)

	want, wantRes := countReference(src)
	require.Equal(t, wantRes, res)
	require.Equal(t, want[:], s.Histogram())
}

// fse counts its input itself when no histogram is handed over; that count
// must agree with ours.
func TestCountMatchesFSE(t *testing.T) {
	r := rand.New(rand.NewPCG(23, 24))
	for _, n := range []int{2, 100, 1499, 1500, 4096, 100000} {
		for _, k := range []int{2, 17, 256} {
			src := randomBytes(r, n, k)

			var s fse.Scratch
			_, err := fse.Compress(src, &s)
			if err != nil && !errors.Is(err, fse.ErrIncompressible) && !errors.Is(err, fse.ErrUseRLE) {
				require.NoError(t, err)
			}

			var count [256]uint32
			res, err := Count(&count, MaxSymbolValue, src)
			require.NoError(t, err)
			require.Equal(t, s.Histogram(), count[:], "n=%d alphabet=%d", n, k)
			require.NotZero(t, count[res.MaxSymbol])
		}
	}
}

func TestPopulateFSERoundTrip(t *testing.T) {
	r := rand.New(rand.NewPCG(25, 26))
	for _, n := range []int{200, 1499, 1500, 50000} {
		// Skewed so that fse accepts it.
		src := make([]byte, n)
		for i := range src {
			src[i] = byte(r.ExpFloat64() * 4)
		}

		var s fse.Scratch
		res, err := Populate(&s, src)
		require.NoError(t, err)
		_, wantRes := countReference(src)
		require.Equal(t, wantRes, res)

		comp, err := fse.Compress(src, &s)
		require.NoError(t, err, "n=%d", n)
		got, err := fse.Decompress(comp, nil)
		require.NoError(t, err)
		require.Equal(t, src, got)
	}
}
