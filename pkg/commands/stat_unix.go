//go:build linux || darwin

package commands

import (
	"golang.org/x/sys/unix"
)

// fileTypeFromMode classifies an entry by the S_IFMT bits of a raw st_mode
func fileTypeFromMode(mode uint32) FileType {
	switch mode & unix.S_IFMT {
	case unix.S_IFREG:
		return FileTypeRegular
	case unix.S_IFDIR:
		return FileTypeDirectory
	case unix.S_IFLNK:
		return FileTypeSymlink
	case unix.S_IFBLK:
		return FileTypeBlockDevice
	case unix.S_IFCHR:
		return FileTypeCharDevice
	case unix.S_IFIFO:
		return FileTypeFifo
	case unix.S_IFSOCK:
		return FileTypeSocket
	default:
		return FileTypeUnknown
	}
}

// listAttributes returns the extended attribute names of path without following symlinks
func listAttributes(path string) ([]string, error) {
	size, err := unix.Llistxattr(path, nil)
	if err != nil || size == 0 {
		return nil, err
	}

	buf := make([]byte, size)
	size, err = unix.Llistxattr(path, buf)
	if err != nil {
		return nil, err
	}

	return splitAttributeNames(buf[:size]), nil
}
