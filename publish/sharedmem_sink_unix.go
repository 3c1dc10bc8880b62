//go:build unix

package publish

import (
	"fmt"

	"golang.org/x/sys/unix"

	"ataxxsearch/board"
)

// sharedMemLayout: byte 0 is a ready flag (1 once any move has been
// published), bytes 1-4 are ox, oy, nx, ny.
const sharedMemLayout = 5

// SharedMemorySink publishes into a memory-mapped region backed by fd,
// standing in for the well-known shared-memory key a parent process would
// open to read the chosen move. No example repo in the pack does raw
// shm_open; mmap over an already-open fd is the closest idiomatic Go
// equivalent using golang.org/x/sys.
type SharedMemorySink struct {
	data []byte
}

// NewSharedMemorySink mmaps sharedMemLayout bytes of fd for publication.
// fd is expected to already reference a shared-memory object (e.g. opened
// via shm_open by the parent process) sized to at least sharedMemLayout
// bytes.
func NewSharedMemorySink(fd int) (*SharedMemorySink, error) {
	data, err := unix.Mmap(fd, 0, sharedMemLayout, unix.PROT_READ|unix.PROT_WRITE, unix.MAP_SHARED)
	if err != nil {
		return nil, fmt.Errorf("mmap publication segment: %w", err)
	}
	return &SharedMemorySink{data: data}, nil
}

// Publish writes mv into the mapped segment.
func (s *SharedMemorySink) Publish(mv board.Move) {
	s.data[0] = 1
	s.data[1] = byte(mv.OX)
	s.data[2] = byte(mv.OY)
	s.data[3] = byte(mv.NX)
	s.data[4] = byte(mv.NY)
}

// Close unmaps the segment.
func (s *SharedMemorySink) Close() error {
	return unix.Munmap(s.data)
}
