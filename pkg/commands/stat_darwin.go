package commands

import (
	"time"

	"golang.org/x/sys/unix"
)

func lstatMetadata(path string) (*Metadata, error) {
	var st unix.Stat_t
	if err := unix.Lstat(path, &st); err != nil {
		return nil, err
	}

	mode := uint32(st.Mode)
	return &Metadata{
		Type:        fileTypeFromMode(mode),
		Permissions: mode & 0o777,
		Uid:         st.Uid,
		Gid:         st.Gid,
		Nlink:       uint64(st.Nlink),
		Size:        st.Size,
		Inode:       st.Ino,
		Modified:    time.Unix(st.Mtim.Unix()),
		Accessed:    time.Unix(st.Atim.Unix()),
		Changed:     time.Unix(st.Ctim.Unix()),
		Created:     time.Unix(st.Btim.Unix()),
	}, nil
}
