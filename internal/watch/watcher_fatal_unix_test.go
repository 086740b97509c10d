// SPDX-License-Identifier: MPL-2.0

//go:build !windows

package watch

import (
	"errors"
	"fmt"
	"syscall"
	"testing"
)

func TestIsFatalFsnotifyError(t *testing.T) {
	t.Parallel()

	t.Run("resource exhaustion errnos are fatal", func(t *testing.T) {
		t.Parallel()
		for _, errno := range []syscall.Errno{syscall.ENOSPC, syscall.EMFILE, syscall.ENFILE} {
			if !isFatalFsnotifyError(errno) {
				t.Errorf("isFatalFsnotifyError(%v) = false, want true", errno)
			}
			wrapped := fmt.Errorf("fsnotify: %w", errno)
			if !isFatalFsnotifyError(wrapped) {
				t.Errorf("isFatalFsnotifyError(%v) = false, want true", wrapped)
			}
		}
	})

	t.Run("other errors are recoverable", func(t *testing.T) {
		t.Parallel()
		for _, err := range []error{
			syscall.EACCES,
			errors.New("disk on fire"),
			nil,
		} {
			if isFatalFsnotifyError(err) {
				t.Errorf("isFatalFsnotifyError(%v) = true, want false", err)
			}
		}
	})
}
