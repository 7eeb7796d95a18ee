package commands

import (
	"io/fs"
	"time"
)

// FileType is what kind of filesystem object an entry is
type FileType int

const (
	FileTypeUnknown FileType = iota
	FileTypeRegular
	FileTypeDirectory
	FileTypeSymlink
	FileTypeBlockDevice
	FileTypeCharDevice
	FileTypeFifo
	FileTypeSocket
)

// Metadata is a point-in-time snapshot of an entry. For a symlink it
// describes the link itself rather than its target.
type Metadata struct {
	Type FileType
	// Permissions holds the nine rwx bits for owner, group and other
	Permissions uint32
	Uid         uint32
	Gid         uint32
	Nlink       uint64
	Size        int64
	Inode       uint64
	Modified    time.Time
	Accessed    time.Time
	Changed     time.Time
	// Created falls back to Changed where the platform doesn't record a birth time
	Created time.Time
}

func (m *Metadata) IsRegular() bool {
	return m.Type == FileTypeRegular
}

// fileTypeFromFileMode classifies an entry by the type bits of an fs.FileMode
func fileTypeFromFileMode(mode fs.FileMode) FileType {
	switch {
	case mode.IsRegular():
		return FileTypeRegular
	case mode&fs.ModeDir != 0:
		return FileTypeDirectory
	case mode&fs.ModeSymlink != 0:
		return FileTypeSymlink
	case mode&fs.ModeNamedPipe != 0:
		return FileTypeFifo
	case mode&fs.ModeSocket != 0:
		return FileTypeSocket
	case mode&fs.ModeCharDevice != 0:
		return FileTypeCharDevice
	case mode&fs.ModeDevice != 0:
		return FileTypeBlockDevice
	default:
		return FileTypeUnknown
	}
}

// MetadataFromFileInfo builds the subset of metadata that fs.FileInfo carries.
// Ownership and inode are left zeroed and every timestamp is the modification time.
func MetadataFromFileInfo(info fs.FileInfo) *Metadata {
	modified := info.ModTime()
	return &Metadata{
		Type:        fileTypeFromFileMode(info.Mode()),
		Permissions: uint32(info.Mode().Perm()),
		Nlink:       1,
		Size:        info.Size(),
		Modified:    modified,
		Accessed:    modified,
		Changed:     modified,
		Created:     modified,
	}
}
