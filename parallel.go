package hist

import "encoding/binary"

func load32(b []byte) uint32 { return binary.LittleEndian.Uint32(b) }

// countParallel counts src into four banks so that consecutive bytes never
// increment the same cell back to back, then merges them into count.
//
// In checking mode a source symbol above maxSymbolValue fails the call with
// ErrSymbolBoundTooSmall before count is written.
func countParallel(count *[256]uint32, maxSymbolValue uint32, src []byte, l *lanes, check bool) (Result, error) {
	if len(src) == 0 {
		return Result{}, nil
	}
	*l = lanes{}

	var (
		c0 = &l[0]
		c1 = &l[1]
		c2 = &l[2]
		c3 = &l[3]
		n  = len(src)
		ip = 0
	)

	// 16 bytes per round, each word loaded one step ahead of its use.
	if n >= 20 {
		cached := load32(src)
		ip = 4
		for ip < n-15 {
			c := cached
			cached = load32(src[ip:])
			ip += 4
			c0[byte(c)]++
			c1[byte(c>>8)]++
			c2[byte(c>>16)]++
			c3[c>>24]++

			c = cached
			cached = load32(src[ip:])
			ip += 4
			c0[byte(c)]++
			c1[byte(c>>8)]++
			c2[byte(c>>16)]++
			c3[c>>24]++

			c = cached
			cached = load32(src[ip:])
			ip += 4
			c0[byte(c)]++
			c1[byte(c>>8)]++
			c2[byte(c>>16)]++
			c3[c>>24]++

			c = cached
			cached = load32(src[ip:])
			ip += 4
			c0[byte(c)]++
			c1[byte(c>>8)]++
			c2[byte(c>>16)]++
			c3[c>>24]++
		}
		// The last lookahead word was loaded but not counted.
		ip -= 4
	}
	for _, b := range src[ip:] {
		c0[b]++
	}

	var largest uint32
	for s := range c0 {
		c0[s] += c1[s] + c2[s] + c3[s]
		largest = max(largest, c0[s])
	}

	maxSymbol := uint8(MaxSymbolValue)
	for maxSymbol > 0 && c0[maxSymbol] == 0 {
		maxSymbol--
	}
	if check && uint32(maxSymbol) > maxSymbolValue {
		return Result{}, boundError(maxSymbolValue, maxSymbol)
	}

	copy(count[:int(maxSymbol)+1], c0[:int(maxSymbol)+1])
	return Result{MaxSymbol: maxSymbol, MaxCount: largest}, nil
}
