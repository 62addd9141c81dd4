package hist

import (
	"fmt"
	"unsafe"
)

const (
	// MaxSymbolValue is the largest byte value and the declared bound that
	// means "count the full range and detect the maximum".
	MaxSymbolValue = 255

	// WorkspaceCells is the number of uint32 accumulators a workspace holds:
	// four banks of 256.
	WorkspaceCells = histLanes * histSymbols

	// WorkspaceSize is the minimum workspace length in bytes.
	WorkspaceSize = WorkspaceCells * 4

	// WorkspaceAlign is the required alignment of the first workspace byte.
	WorkspaceAlign = 4

	histLanes   = 4
	histSymbols = MaxSymbolValue + 1
)

// lanes are the independent accumulator banks of the parallel counter.
// Bank 0 also receives the tail bytes and, after the merge, the totals.
type lanes [histLanes][histSymbols]uint32

// NewWorkspace allocates a workspace of WorkspaceSize bytes that satisfies
// the alignment requirement. It can be reused by any number of sequential
// calls.
func NewWorkspace() []byte {
	return unsafe.Slice((*byte)(unsafe.Pointer(new(lanes))), WorkspaceSize)
}

// checkWorkspace verifies that ws can hold the accumulator banks and returns
// it reinterpreted as such.
func checkWorkspace(ws []byte) (*lanes, error) {
	if len(ws) < WorkspaceSize {
		return nil, fmt.Errorf("%w: %d bytes, need %d", ErrInvalidWorkspace, len(ws), WorkspaceSize)
	}
	p := unsafe.Pointer(unsafe.SliceData(ws))
	if uintptr(p)%WorkspaceAlign != 0 {
		return nil, fmt.Errorf("%w: address %#x not %d-byte aligned", ErrInvalidWorkspace, uintptr(p), WorkspaceAlign)
	}
	return (*lanes)(p), nil
}
