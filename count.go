package hist

import (
	"errors"
	"fmt"
	"math"
)

// parallelThreshold is the input size from which the four-lane counter pays
// for its bank setup and merge.
const parallelThreshold = 1500

var (
	// ErrInvalidWorkspace indicates a workspace shorter than WorkspaceSize or
	// not aligned to WorkspaceAlign.
	ErrInvalidWorkspace = errors.New("hist: invalid workspace")

	// ErrSymbolBoundTooSmall indicates that the source holds a symbol larger
	// than the declared maxSymbolValue. The count table is left untouched.
	ErrSymbolBoundTooSmall = errors.New("hist: max symbol value too small")

	// ErrSourceTooLarge indicates a source of MaxSourceSize bytes or more,
	// whose counts would overflow the uint32 accumulators.
	ErrSourceTooLarge = errors.New("hist: source too large")
)

// MaxSourceSize is the exclusive upper bound on the length of a source.
const MaxSourceSize = math.MaxUint32 + 1

// Result describes a computed histogram.
type Result struct {
	// MaxSymbol is the largest symbol with a non-zero count, 0 for empty input.
	MaxSymbol uint8
	// MaxCount is the count of the most frequent symbol, 0 for empty input.
	MaxCount uint32
}

// Count computes the histogram of src into count and verifies that no symbol
// exceeds maxSymbolValue. A maxSymbolValue of MaxSymbolValue or more accepts
// every byte.
//
// count must be zeroed by the caller: short inputs are added to the counts
// already present. On success count[s] is zero for every s > Result.MaxSymbol.
func Count(count *[256]uint32, maxSymbolValue uint32, src []byte) (Result, error) {
	if err := checkSource(len(src)); err != nil {
		return Result{}, err
	}
	if maxSymbolValue >= MaxSymbolValue {
		return CountFast(count, MaxSymbolValue, src), nil
	}
	var l lanes
	return countParallel(count, maxSymbolValue, src, &l, true)
}

// CountWorkspace is like Count but accumulates in the caller-provided ws,
// which must be at least WorkspaceSize bytes and WorkspaceAlign aligned.
func CountWorkspace(count *[256]uint32, maxSymbolValue uint32, src, ws []byte) (Result, error) {
	l, err := checkWorkspace(ws)
	if err != nil {
		return Result{}, err
	}
	if err := checkSource(len(src)); err != nil {
		return Result{}, err
	}
	if maxSymbolValue < MaxSymbolValue {
		return countParallel(count, maxSymbolValue, src, l, true)
	}
	return countFast(count, src, l), nil
}

// CountFast computes the histogram of src into count without checking
// maxSymbolValue against the data. The caller guarantees that no byte in
// src exceeds maxSymbolValue, or passes MaxSymbolValue and sizes its tables
// from the returned Result. Either way the result reports the true maximum.
//
// src must be shorter than MaxSourceSize; CountFast does not check it.
func CountFast(count *[256]uint32, maxSymbolValue uint32, src []byte) Result {
	if len(src) < parallelThreshold {
		return countSimple(count, src)
	}
	var l lanes
	return countFast(count, src, &l)
}

// CountFastWorkspace is like CountFast but accumulates in ws, and rejects
// sources of MaxSourceSize bytes or more.
func CountFastWorkspace(count *[256]uint32, maxSymbolValue uint32, src, ws []byte) (Result, error) {
	l, err := checkWorkspace(ws)
	if err != nil {
		return Result{}, err
	}
	if err := checkSource(len(src)); err != nil {
		return Result{}, err
	}
	return countFast(count, src, l), nil
}

// countFast counts in trusting mode, which never fails.
func countFast(count *[256]uint32, src []byte, l *lanes) Result {
	if len(src) < parallelThreshold {
		return countSimple(count, src)
	}
	res, _ := countParallel(count, MaxSymbolValue, src, l, false)
	return res
}

func checkSource(n int) error {
	if uint64(n) >= MaxSourceSize {
		return fmt.Errorf("%w: %d bytes", ErrSourceTooLarge, n)
	}
	return nil
}

func boundError(declared uint32, found uint8) error {
	return fmt.Errorf("%w: declared %d, found %d", ErrSymbolBoundTooSmall, declared, found)
}
