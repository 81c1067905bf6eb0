// FILE: fd_unix.go
//go:build unix

package console

import (
	"errors"

	"golang.org/x/sys/unix"
)

// setNonblocking marks the descriptor so writes return EAGAIN instead of
// suspending the writer task inside the kernel.
func setNonblocking(fd uintptr) error {
	if err := unix.SetNonblock(int(fd), true); err != nil {
		return fmtErrorf("failed to set descriptor %d non-blocking: %w", fd, err)
	}
	return nil
}

// pollWaiter suspends the caller until the descriptor reports
// write-readiness. Blocking in poll is the back-pressure mechanism; a
// would-block write must never be spin-retried.
type pollWaiter struct {
	fd int32
}

func (w pollWaiter) wait() error {
	fds := []unix.PollFd{{Fd: w.fd, Events: unix.POLLOUT}}
	for {
		// Wait indefinitely for the fd to become writable
		_, err := unix.Poll(fds, -1)
		if err == nil {
			return nil
		}
		if errors.Is(err, unix.EINTR) {
			fds[0].Revents = 0
			continue
		}
		return fmtErrorf("poll failed on descriptor %d: %w", w.fd, err)
	}
}

func newWriteWaiter(fd uintptr) writeWaiter {
	return pollWaiter{fd: int32(fd)}
}

func isWouldBlock(err error) bool {
	return errors.Is(err, unix.EAGAIN) || errors.Is(err, unix.EWOULDBLOCK)
}

// isSyncUnsupported reports sync errors that only mean the destination has
// no durable backing (terminals, pipes), which flush treats as success.
func isSyncUnsupported(err error) bool {
	return errors.Is(err, unix.EINVAL) ||
		errors.Is(err, unix.ENOTTY) ||
		errors.Is(err, unix.ENOTSUP) ||
		errors.Is(err, unix.EBADF)
}
