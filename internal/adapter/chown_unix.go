//go:build unix

package adapter

import (
	"os"
	"syscall"
)

// preserveOwner copies uid and gid from info onto path. Failures are ignored:
// unprivileged users may only chown to themselves.
func preserveOwner(path string, info os.FileInfo) {
	stat, ok := info.Sys().(*syscall.Stat_t)
	if !ok {
		return
	}

	_ = os.Chown(path, int(stat.Uid), int(stat.Gid))
}
