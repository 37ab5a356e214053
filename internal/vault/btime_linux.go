//go:build linux

package vault

import (
	"io/fs"

	"golang.org/x/sys/unix"
)

// createdMillis reads the birth time through statx. Filesystems that do not
// record it fall back to the modification time.
func createdMillis(path string, info fs.FileInfo) int64 {
	var stx unix.Statx_t
	err := unix.Statx(unix.AT_FDCWD, path, unix.AT_SYMLINK_NOFOLLOW, unix.STATX_BTIME, &stx)
	if err != nil || stx.Mask&unix.STATX_BTIME == 0 {
		return info.ModTime().UnixMilli()
	}
	return stx.Btime.Sec*1000 + int64(stx.Btime.Nsec)/1_000_000
}
