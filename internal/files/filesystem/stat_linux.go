//go:build linux

package filesystem

import (
	"syscall"
	"time"
)

func platformAttributes(info FileInfo) (Attributes, bool) {
	st, ok := info.Sys().(*syscall.Stat_t)
	if !ok || st == nil {
		return Attributes{}, false
	}
	return Attributes{
		Inode:      st.Ino,
		Links:      uint64(st.Nlink),
		UID:        st.Uid,
		GID:        st.Gid,
		Blocks:     int64(st.Blocks),
		AccessTime: time.Unix(int64(st.Atim.Sec), int64(st.Atim.Nsec)),
		ChangeTime: time.Unix(int64(st.Ctim.Sec), int64(st.Ctim.Nsec)),
	}, true
}
