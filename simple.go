package hist

// countSimple adds every byte of src to count with a single accumulator bank.
// It is the reference the four-lane counter must agree with, and is faster
// for short inputs.
func countSimple(count *[256]uint32, src []byte) Result {
	if len(src) == 0 {
		return Result{}
	}
	for _, b := range src {
		count[b]++
	}

	maxSymbol := uint8(MaxSymbolValue)
	for maxSymbol > 0 && count[maxSymbol] == 0 {
		maxSymbol--
	}

	var largest uint32
	for _, c := range count[:int(maxSymbol)+1] {
		largest = max(largest, c)
	}
	return Result{MaxSymbol: maxSymbol, MaxCount: largest}
}
