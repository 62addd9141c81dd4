// Package hist computes byte histograms for entropy coders.
//
// # Overview
//
// Huffman, FSE and ANS encoders need symbol statistics before they can build
// a code table: how often each byte value occurs, which value is the largest
// one present, and how large the most frequent count is. This package
// produces exactly that, as fast as a portable Go loop allows.
//
// Counting bytes one at a time into a single table is bound by the
// store-to-load dependency on count[b]: two equal bytes in a row must wait
// for each other. The large-input counter reads four bytes per load and
// spreads them over four independent 256-entry banks, which are merged at the
// end. Inputs below 1500 bytes use a plain single-bank loop, where the bank
// setup would not pay off.
//
// # Entry Points
//
// There are two families:
//   - Count and CountWorkspace verify a declared maximum symbol value and fail
//     with ErrSymbolBoundTooSmall if the data holds a larger symbol. Use them
//     when the caller has sized its tables from that bound.
//   - CountFast and CountFastWorkspace trust the declared bound. Use them with
//     MaxSymbolValue and size tables from the returned Result.
//
// The Workspace variants accumulate in caller-provided scratch memory
// (see NewWorkspace); the others keep their banks on the stack.
//
// # Basic Usage
//
//	var count [256]uint32
//	res, err := hist.Count(&count, hist.MaxSymbolValue, data)
//	if err != nil {
//	    return err
//	}
//	_ = count[:int(res.MaxSymbol)+1] // non-zero range
//
//	// Reuse one value across many blocks.
//	var h hist.Histogram
//	for _, block := range blocks {
//	    res := h.CountFast(block)
//	    _ = h.Symbols()
//	    _ = res.MaxCount
//	}
//
//	// Hand the counts to github.com/klauspost/compress/fse.
//	var s fse.Scratch
//	if _, err := hist.Populate(&s, block); err != nil {
//	    return err
//	}
//	out, err := fse.Compress(block, &s)
//
// # Count Tables
//
// Count tables are owned by the caller and are never cleared by the small
// input path: zero them before reuse (Histogram does this itself). After a
// successful call every entry above Result.MaxSymbol is zero, the entries up
// to it sum to len(src), and Result.MaxCount is their maximum.
//
// # Concurrency
//
// A call runs on the calling goroutine only. Count tables, workspaces and
// Histogram values must not be shared between concurrent calls.
package hist
