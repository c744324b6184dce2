//go:build unix

package mmap

import (
	"golang.org/x/sys/unix"
)

// Anonymous creates a zero-filled, process-private mapping of length bytes.
// The mapping is not backed by any file or device.
func Anonymous(length int) (*Map, error) {
	if length <= 0 {
		return nil, ErrInvalidSize
	}

	data, err := unix.Mmap(-1, 0, length, unix.PROT_READ|unix.PROT_WRITE, unix.MAP_ANON|unix.MAP_PRIVATE)
	if err != nil {
		return nil, &Error{Op: "mmap anonymous", Err: err}
	}

	return &Map{data: data, size: int64(length)}, nil
}

// Close releases the memory mapping.
func (m *Map) Close() error {
	if m.data == nil {
		return nil
	}

	err := unix.Munmap(m.data)
	m.data = nil
	m.size = 0
	return err
}
