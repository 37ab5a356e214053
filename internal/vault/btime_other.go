//go:build !linux

package vault

import "io/fs"

func createdMillis(_ string, info fs.FileInfo) int64 {
	return info.ModTime().UnixMilli()
}
