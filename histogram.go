package hist

import (
	"errors"
	"fmt"
)

// ErrShortHistogram is returned by Populate when the scratch histogram has
// fewer than 256 entries.
var ErrShortHistogram = errors.New("hist: histogram buffer shorter than 256 entries")

// Histogram owns a count table and a workspace so that repeated
// computations do not allocate. The zero value is ready to use.
// A Histogram must not be used by concurrent goroutines.
type Histogram struct {
	Counts [256]uint32
	Result Result

	ws lanes
}

// Reset zeroes the counts and the last result.
func (h *Histogram) Reset() {
	h.Counts = [256]uint32{}
	h.Result = Result{}
}

// Count replaces the histogram with the counts of src, failing with
// ErrSymbolBoundTooSmall if src holds a symbol above maxSymbolValue.
// On failure the histogram is left empty.
func (h *Histogram) Count(src []byte, maxSymbolValue uint32) (Result, error) {
	h.Reset()
	if err := checkSource(len(src)); err != nil {
		return Result{}, err
	}
	if maxSymbolValue >= MaxSymbolValue {
		h.Result = countFast(&h.Counts, src, &h.ws)
		return h.Result, nil
	}
	res, err := countParallel(&h.Counts, maxSymbolValue, src, &h.ws, true)
	if err != nil {
		return Result{}, err
	}
	h.Result = res
	return res, nil
}

// CountFast replaces the histogram with the counts of src over the full
// symbol range. src must be shorter than MaxSourceSize.
func (h *Histogram) CountFast(src []byte) Result {
	h.Reset()
	h.Result = countFast(&h.Counts, src, &h.ws)
	return h.Result
}

// Symbols returns the counts of symbols 0 through Result.MaxSymbol. The
// slice aliases h.Counts.
func (h *Histogram) Symbols() []uint32 {
	return h.Counts[:int(h.Result.MaxSymbol)+1]
}

// Scratch is the histogram hand-off of an entropy coder, as implemented by
// *fse.Scratch from github.com/klauspost/compress.
type Scratch interface {
	// Histogram returns the coder's count buffer, indexed by symbol.
	Histogram() []uint32
	// HistogramFinished marks the buffer as populated.
	HistogramFinished(maxSymbol uint8, maxCount int)
}

// Populate counts src into the histogram buffer of s and reports the result
// to it, so the coder skips its own counting pass. The buffer is cleared
// first.
func Populate(s Scratch, src []byte) (Result, error) {
	if err := checkSource(len(src)); err != nil {
		return Result{}, err
	}
	buf := s.Histogram()
	if len(buf) < histSymbols {
		return Result{}, fmt.Errorf("%w: got %d", ErrShortHistogram, len(buf))
	}
	count := (*[256]uint32)(buf)
	*count = [256]uint32{}
	var l lanes
	res := countFast(count, src, &l)
	s.HistogramFinished(res.MaxSymbol, int(res.MaxCount))
	return res, nil
}
