//go:build darwin

package decode

import "golang.org/x/sys/unix"

// OpenFlags decodes the flags argument to open(2)/openat(2).
var OpenFlags = []FlagBit{
	{uint64(unix.O_WRONLY), "O_WRONLY"},
	{uint64(unix.O_RDWR), "O_RDWR"},
	{uint64(unix.O_APPEND), "O_APPEND"},
	{uint64(unix.O_CREAT), "O_CREAT"},
	{uint64(unix.O_TRUNC), "O_TRUNC"},
	{uint64(unix.O_EXCL), "O_EXCL"},
	{uint64(unix.O_NONBLOCK), "O_NONBLOCK"},
	{uint64(unix.O_SYNC), "O_SYNC"},
	{uint64(unix.O_NOFOLLOW), "O_NOFOLLOW"},
	{uint64(unix.O_DIRECTORY), "O_DIRECTORY"},
	{uint64(unix.O_CLOEXEC), "O_CLOEXEC"},
}

// MmapProtFlags decodes the prot argument to mmap(2)/mprotect(2).
var MmapProtFlags = []FlagBit{
	{uint64(unix.PROT_READ), "PROT_READ"},
	{uint64(unix.PROT_WRITE), "PROT_WRITE"},
	{uint64(unix.PROT_EXEC), "PROT_EXEC"},
}

// MmapFlags decodes the flags argument to mmap(2).
var MmapFlags = []FlagBit{
	{uint64(unix.MAP_SHARED), "MAP_SHARED"},
	{uint64(unix.MAP_PRIVATE), "MAP_PRIVATE"},
	{uint64(unix.MAP_FIXED), "MAP_FIXED"},
	{uint64(unix.MAP_ANON), "MAP_ANON"},
}

// SocketDomains decodes the domain argument to socket(2).
var SocketDomains = []EnumEntry{
	{uint64(unix.AF_UNIX), "AF_UNIX"},
	{uint64(unix.AF_INET), "AF_INET"},
	{uint64(unix.AF_INET6), "AF_INET6"},
}

// SocketTypes decodes the type argument to socket(2).
var SocketTypes = []EnumEntry{
	{uint64(unix.SOCK_STREAM), "SOCK_STREAM"},
	{uint64(unix.SOCK_DGRAM), "SOCK_DGRAM"},
	{uint64(unix.SOCK_RAW), "SOCK_RAW"},
}

// AccessModeFlags decodes the mode argument to access(2).
var AccessModeFlags = []FlagBit{
	{uint64(unix.R_OK), "R_OK"},
	{uint64(unix.W_OK), "W_OK"},
	{uint64(unix.X_OK), "X_OK"},
}
