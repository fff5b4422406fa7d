package registry

// DarwinSyscalls returns the static schema table for the BSD syscalls the
// tracer recognizes out of the box. The table is data, not logic — it is
// read once by Build() during session setup and never consulted again
// except through Registry's maps (spec section 4.3). Numbers follow
// xnu's bsd/kern/syscalls.master; names are the canonical libsystem
// symbol names strace-style tools report.
func DarwinSyscalls() []Schema {
	return []Schema{
		{Number: 1, Name: "exit", Category: CategoryProcess, ReturnIsErrno: false,
			Parameters: []ParameterDescriptor{{Name: "rval", Kind: KindScalar}}},
		{Number: 2, Name: "fork", Category: CategoryProcess, ReturnIsErrno: true},
		{Number: 3, Name: "read", Category: CategoryFile, ReturnIsErrno: true,
			Parameters: []ParameterDescriptor{
				{Name: "fd", Kind: KindScalar},
				{Name: "buf", Kind: KindBuffer, Direction: DirOut},
				{Name: "nbyte", Kind: KindScalar},
			}},
		{Number: 4, Name: "write", Category: CategoryFile, ReturnIsErrno: true,
			Parameters: []ParameterDescriptor{
				{Name: "fd", Kind: KindScalar},
				{Name: "buf", Kind: KindBuffer},
				{Name: "nbyte", Kind: KindScalar},
			}},
		{Number: 5, Name: "open", Category: CategoryFile, ReturnIsErrno: true,
			Parameters: []ParameterDescriptor{
				{Name: "path", Kind: KindString},
				{Name: "flags", Kind: KindScalar},
				{Name: "mode", Kind: KindScalar},
			}},
		{Number: 6, Name: "close", Category: CategoryFile, ReturnIsErrno: true,
			Parameters: []ParameterDescriptor{{Name: "fd", Kind: KindScalar}}},
		{Number: 7, Name: "wait4", Category: CategoryProcess, ReturnIsErrno: true,
			Parameters: []ParameterDescriptor{
				{Name: "pid", Kind: KindScalar},
				{Name: "status", Kind: KindBuffer, Direction: DirOut},
				{Name: "options", Kind: KindScalar},
				{Name: "rusage", Kind: KindStruct, StructName: "rusage", Direction: DirOut},
			}},
		{Number: 9, Name: "link", Category: CategoryFile, ReturnIsErrno: true,
			Parameters: []ParameterDescriptor{
				{Name: "path", Kind: KindString},
				{Name: "link", Kind: KindString},
			}},
		{Number: 10, Name: "unlink", Category: CategoryFile, ReturnIsErrno: true,
			Parameters: []ParameterDescriptor{{Name: "path", Kind: KindString}}},
		{Number: 12, Name: "chdir", Category: CategoryFile, ReturnIsErrno: true,
			Parameters: []ParameterDescriptor{{Name: "path", Kind: KindString}}},
		{Number: 20, Name: "getpid", Category: CategoryProcess, ReturnIsErrno: false},
		{Number: 33, Name: "access", Category: CategorySecurity, ReturnIsErrno: true,
			Parameters: []ParameterDescriptor{
				{Name: "path", Kind: KindString},
				{Name: "flags", Kind: KindScalar},
			}},
		{Number: 37, Name: "kill", Category: CategorySignal, ReturnIsErrno: true,
			Parameters: []ParameterDescriptor{
				{Name: "pid", Kind: KindScalar},
				{Name: "signum", Kind: KindScalar},
			}},
		{Number: 46, Name: "sigaction", Category: CategorySignal, ReturnIsErrno: true,
			Parameters: []ParameterDescriptor{
				{Name: "signum", Kind: KindScalar},
				{Name: "nsa", Kind: KindStruct, StructName: "sigaction"},
				{Name: "osa", Kind: KindStruct, StructName: "sigaction", Direction: DirOut},
			}},
		{Number: 54, Name: "ioctl", Category: CategoryFile, ReturnIsErrno: true,
			Parameters: []ParameterDescriptor{
				{Name: "fd", Kind: KindScalar},
				{Name: "request", Kind: KindScalar},
				{Name: "argp", Kind: KindScalar},
			}},
		{Number: 59, Name: "execve", Category: CategoryProcess, ReturnIsErrno: true,
			Parameters: []ParameterDescriptor{
				// path is DirIn (the default): a successful execve
				// replaces the whole address space before the exit
				// breakpoint fires, so it must be captured at entry-hit
				// or it reads garbage out of the new image instead.
				{Name: "path", Kind: KindString},
				{Name: "argv", Kind: KindScalar},
				{Name: "envp", Kind: KindScalar},
			}},
		{Number: 73, Name: "munmap", Category: CategoryMemory, ReturnIsErrno: true,
			Parameters: []ParameterDescriptor{
				{Name: "addr", Kind: KindScalar},
				{Name: "len", Kind: KindScalar},
			}},
		{Number: 74, Name: "mprotect", Category: CategoryMemory, ReturnIsErrno: true,
			Parameters: []ParameterDescriptor{
				{Name: "addr", Kind: KindScalar},
				{Name: "len", Kind: KindScalar},
				{Name: "prot", Kind: KindScalar},
			}},
		{Number: 92, Name: "fcntl", Category: CategoryFile, ReturnIsErrno: true,
			Parameters: []ParameterDescriptor{
				{Name: "fd", Kind: KindScalar},
				{Name: "cmd", Kind: KindScalar},
				{Name: "arg", Kind: KindScalar},
			}},
		{Number: 97, Name: "socket", Category: CategoryNetwork, ReturnIsErrno: true,
			Parameters: []ParameterDescriptor{
				{Name: "domain", Kind: KindScalar},
				{Name: "type", Kind: KindScalar},
				{Name: "protocol", Kind: KindScalar},
			}},
		{Number: 98, Name: "connect", Category: CategoryNetwork, ReturnIsErrno: true,
			Parameters: []ParameterDescriptor{
				{Name: "s", Kind: KindScalar},
				{Name: "name", Kind: KindStruct, StructName: "sockaddr"},
				{Name: "namelen", Kind: KindScalar},
			}},
		{Number: 104, Name: "bind", Category: CategoryNetwork, ReturnIsErrno: true,
			Parameters: []ParameterDescriptor{
				{Name: "s", Kind: KindScalar},
				{Name: "name", Kind: KindStruct, StructName: "sockaddr"},
				{Name: "namelen", Kind: KindScalar},
			}},
		{Number: 106, Name: "listen", Category: CategoryNetwork, ReturnIsErrno: true,
			Parameters: []ParameterDescriptor{
				{Name: "s", Kind: KindScalar},
				{Name: "backlog", Kind: KindScalar},
			}},
		{Number: 117, Name: "getrusage", Category: CategorySysInfo, ReturnIsErrno: true,
			Parameters: []ParameterDescriptor{
				{Name: "who", Kind: KindScalar},
				{Name: "rusage", Kind: KindStruct, StructName: "rusage", Direction: DirOut},
			}},
		{Number: 120, Name: "readv", Category: CategoryFile, ReturnIsErrno: true,
			Parameters: []ParameterDescriptor{
				{Name: "fd", Kind: KindScalar},
				{Name: "iovp", Kind: KindStruct, StructName: "iovec", Direction: DirOut},
				{Name: "iovcnt", Kind: KindScalar},
			}},
		{Number: 121, Name: "writev", Category: CategoryFile, ReturnIsErrno: true,
			Parameters: []ParameterDescriptor{
				{Name: "fd", Kind: KindScalar},
				{Name: "iovp", Kind: KindStruct, StructName: "iovec"},
				{Name: "iovcnt", Kind: KindScalar},
			}},
		{Number: 128, Name: "rename", Category: CategoryFile, ReturnIsErrno: true,
			Parameters: []ParameterDescriptor{
				{Name: "from", Kind: KindString},
				{Name: "to", Kind: KindString},
			}},
		{Number: 133, Name: "sendto", Category: CategoryNetwork, ReturnIsErrno: true,
			Parameters: []ParameterDescriptor{
				{Name: "s", Kind: KindScalar},
				{Name: "buf", Kind: KindBuffer},
				{Name: "len", Kind: KindScalar},
				{Name: "flags", Kind: KindScalar},
				{Name: "to", Kind: KindStruct, StructName: "sockaddr"},
				{Name: "tolen", Kind: KindScalar},
			}},
		{Number: 136, Name: "mkdir", Category: CategoryFile, ReturnIsErrno: true,
			Parameters: []ParameterDescriptor{
				{Name: "path", Kind: KindString},
				{Name: "mode", Kind: KindScalar},
			}},
		{Number: 137, Name: "rmdir", Category: CategoryFile, ReturnIsErrno: true,
			Parameters: []ParameterDescriptor{{Name: "path", Kind: KindString}}},
		{Number: 157, Name: "statfs", Category: CategoryFile, ReturnIsErrno: true,
			Parameters: []ParameterDescriptor{
				{Name: "path", Kind: KindString},
				{Name: "buf", Kind: KindStruct, StructName: "statfs", Direction: DirOut},
			}},
		{Number: 188, Name: "stat", Category: CategoryFile, ReturnIsErrno: true,
			Parameters: []ParameterDescriptor{
				{Name: "path", Kind: KindString},
				{Name: "ub", Kind: KindStruct, StructName: "stat", Direction: DirOut},
			}},
		{Number: 189, Name: "fstat", Category: CategoryFile, ReturnIsErrno: true,
			Parameters: []ParameterDescriptor{
				{Name: "fd", Kind: KindScalar},
				{Name: "sb", Kind: KindStruct, StructName: "stat", Direction: DirOut},
			}},
		{Number: 197, Name: "mmap", Category: CategoryMemory, ReturnIsErrno: false,
			Parameters: []ParameterDescriptor{
				{Name: "addr", Kind: KindScalar},
				{Name: "len", Kind: KindScalar},
				{Name: "prot", Kind: KindScalar},
				{Name: "flags", Kind: KindScalar},
				{Name: "fd", Kind: KindScalar},
				{Name: "offset", Kind: KindScalar},
			}},
		{Number: 199, Name: "lseek", Category: CategoryFile, ReturnIsErrno: true,
			Parameters: []ParameterDescriptor{
				{Name: "fd", Kind: KindScalar},
				{Name: "offset", Kind: KindScalar},
				{Name: "whence", Kind: KindScalar},
			}},
		{Number: 202, Name: "__sysctl", Category: CategorySysInfo, ReturnIsErrno: true,
			Parameters: []ParameterDescriptor{
				{Name: "name", Kind: KindBuffer},
				{Name: "namelen", Kind: KindScalar},
				{Name: "old", Kind: KindBuffer, Direction: DirOut},
			}},
		{Number: 244, Name: "posix_spawn", Category: CategoryProcess, ReturnIsErrno: true,
			Parameters: []ParameterDescriptor{
				{Name: "pid", Kind: KindBuffer, Direction: DirOut},
				{Name: "path", Kind: KindString},
			}},
		{Number: 266, Name: "shm_open", Category: CategoryIPC, ReturnIsErrno: true,
			Parameters: []ParameterDescriptor{
				{Name: "name", Kind: KindString},
				{Name: "oflag", Kind: KindScalar},
				{Name: "mode", Kind: KindScalar},
			}},
		{Number: 268, Name: "sem_open", Category: CategoryIPC, ReturnIsErrno: true,
			Parameters: []ParameterDescriptor{
				{Name: "name", Kind: KindString},
				{Name: "oflag", Kind: KindScalar},
			}},
		{Number: 338, Name: "stat64", Category: CategoryFile, ReturnIsErrno: true,
			Parameters: []ParameterDescriptor{
				{Name: "path", Kind: KindString},
				{Name: "ub", Kind: KindStruct, StructName: "stat"},
			}},
		{Number: 362, Name: "kqueue", Category: CategoryIPC, ReturnIsErrno: true},
		{Number: 363, Name: "kevent", Category: CategoryIPC, ReturnIsErrno: true,
			Parameters: []ParameterDescriptor{
				{Name: "fd", Kind: KindScalar},
				{Name: "changelist", Kind: KindStruct, StructName: "kevent"},
				{Name: "nchanges", Kind: KindScalar},
				{Name: "eventlist", Kind: KindStruct, StructName: "kevent", Direction: DirOut},
				{Name: "nevents", Kind: KindScalar},
			}},
		{Number: 369, Name: "kevent64", Category: CategoryIPC, ReturnIsErrno: true,
			Parameters: []ParameterDescriptor{
				{Name: "fd", Kind: KindScalar},
				{Name: "changelist", Kind: KindStruct, StructName: "kevent"},
				{Name: "nchanges", Kind: KindScalar},
				{Name: "eventlist", Kind: KindStruct, StructName: "kevent", Direction: DirOut},
				{Name: "nevents", Kind: KindScalar},
			}},
		{Number: 27, Name: "recvmsg", Category: CategoryNetwork, ReturnIsErrno: true,
			Parameters: []ParameterDescriptor{
				{Name: "s", Kind: KindScalar},
				{Name: "msg", Kind: KindStruct, StructName: "msghdr", Direction: DirOut},
				{Name: "flags", Kind: KindScalar},
			}},
		{Number: 28, Name: "sendmsg", Category: CategoryNetwork, ReturnIsErrno: true,
			Parameters: []ParameterDescriptor{
				{Name: "s", Kind: KindScalar},
				{Name: "msg", Kind: KindStruct, StructName: "msghdr"},
				{Name: "flags", Kind: KindScalar},
			}},
		{Number: 463, Name: "openat", Category: CategoryFile, ReturnIsErrno: true,
			Parameters: []ParameterDescriptor{
				{Name: "fd", Kind: KindScalar},
				{Name: "path", Kind: KindString},
				{Name: "flag", Kind: KindScalar},
				{Name: "mode", Kind: KindScalar},
			}},
		{Number: 500, Name: "getentropy", Category: CategorySecurity, ReturnIsErrno: true,
			Parameters: []ParameterDescriptor{
				{Name: "buf", Kind: KindBuffer, Direction: DirOut},
				{Name: "size", Kind: KindScalar},
			}},
	}
}
