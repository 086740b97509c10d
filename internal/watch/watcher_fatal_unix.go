// SPDX-License-Identifier: MPL-2.0

//go:build !windows

package watch

import (
	"errors"
	"syscall"
)

// fatalErrnos are the inotify resource-exhaustion errors after which a
// watcher cannot recover:
//   - ENOSPC: watch limit exceeded (fs.inotify.max_user_watches)
//   - EMFILE: per-process file descriptor limit exceeded
//   - ENFILE: system-wide file descriptor limit exceeded
var fatalErrnos = []syscall.Errno{syscall.ENOSPC, syscall.EMFILE, syscall.ENFILE}

// isFatalFsnotifyError reports whether err means the watcher is beyond
// recovery and the run loop should stop.
func isFatalFsnotifyError(err error) bool {
	for _, errno := range fatalErrnos {
		if errors.Is(err, errno) {
			return true
		}
	}
	return false
}
