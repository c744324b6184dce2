//go:build windows

package mmap

import (
	"unsafe"

	"golang.org/x/sys/windows"
)

// Anonymous creates a zero-filled, process-private mapping of length bytes
// via VirtualAlloc. The mapping is not backed by any file or device.
func Anonymous(length int) (*Map, error) {
	if length <= 0 {
		return nil, ErrInvalidSize
	}

	addr, err := windows.VirtualAlloc(0, uintptr(length), windows.MEM_COMMIT|windows.MEM_RESERVE, windows.PAGE_READWRITE)
	if err != nil {
		return nil, &Error{Op: "VirtualAlloc", Err: err}
	}

	var data []byte
	sh := (*struct {
		Data uintptr
		Len  int
		Cap  int
	})(unsafe.Pointer(&data))
	sh.Data = addr
	sh.Len = length
	sh.Cap = length

	return &Map{data: data, size: int64(length), handle: addr}, nil
}

// Close releases the memory mapping.
func (m *Map) Close() error {
	if m.data == nil {
		return nil
	}

	if err := windows.VirtualFree(m.handle, 0, windows.MEM_RELEASE); err != nil {
		return &Error{Op: "VirtualFree", Err: err}
	}

	m.data = nil
	m.size = 0
	m.handle = 0
	return nil
}
