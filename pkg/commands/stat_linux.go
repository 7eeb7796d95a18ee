package commands

import (
	"time"

	"golang.org/x/sys/unix"
)

func lstatMetadata(path string) (*Metadata, error) {
	var stx unix.Statx_t
	err := unix.Statx(unix.AT_FDCWD, path, unix.AT_SYMLINK_NOFOLLOW, unix.STATX_BASIC_STATS|unix.STATX_BTIME, &stx)
	if statxUnavailable(err) {
		return lstatMetadataFallback(path)
	}
	if err != nil {
		return nil, err
	}

	mode := uint32(stx.Mode)
	metadata := &Metadata{
		Type:        fileTypeFromMode(mode),
		Permissions: mode & 0o777,
		Uid:         stx.Uid,
		Gid:         stx.Gid,
		Nlink:       uint64(stx.Nlink),
		Size:        int64(stx.Size),
		Inode:       stx.Ino,
		Modified:    statxTime(stx.Mtime),
		Accessed:    statxTime(stx.Atime),
		Changed:     statxTime(stx.Ctime),
	}
	if stx.Mask&unix.STATX_BTIME != 0 {
		metadata.Created = statxTime(stx.Btime)
	} else {
		metadata.Created = metadata.Changed
	}

	return metadata, nil
}

// statxUnavailable is true when the call itself was refused: kernels older
// than 4.11 have no statx, and some seccomp profiles answer it with EPERM
func statxUnavailable(err error) bool {
	return err == unix.ENOSYS || err == unix.EPERM
}

// lstatMetadataFallback is for when statx can't be used
func lstatMetadataFallback(path string) (*Metadata, error) {
	var st unix.Stat_t
	if err := unix.Lstat(path, &st); err != nil {
		return nil, err
	}

	changed := time.Unix(st.Ctim.Unix())
	return &Metadata{
		Type:        fileTypeFromMode(st.Mode),
		Permissions: st.Mode & 0o777,
		Uid:         st.Uid,
		Gid:         st.Gid,
		Nlink:       uint64(st.Nlink),
		Size:        st.Size,
		Inode:       st.Ino,
		Modified:    time.Unix(st.Mtim.Unix()),
		Accessed:    time.Unix(st.Atim.Unix()),
		Changed:     changed,
		Created:     changed,
	}, nil
}

func statxTime(ts unix.StatxTimestamp) time.Time {
	return time.Unix(ts.Sec, int64(ts.Nsec))
}
