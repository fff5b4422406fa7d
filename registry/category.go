package registry

// Category tags a syscall for filtering and summarization. The set is
// closed (spec section 3): every Schema carries exactly one of these.
type Category int

const (
	CategoryFile Category = iota
	CategoryNetwork
	CategoryProcess
	CategoryMemory
	CategorySignal
	CategoryIPC
	CategoryThread
	CategoryTime
	CategorySysInfo
	CategorySecurity
	CategoryDebug
	CategoryMisc
)

// String returns the lowercase category tag used in --trace expressions
// and JSON-Lines output.
func (c Category) String() string {
	switch c {
	case CategoryFile:
		return "file"
	case CategoryNetwork:
		return "network"
	case CategoryProcess:
		return "process"
	case CategoryMemory:
		return "memory"
	case CategorySignal:
		return "signal"
	case CategoryIPC:
		return "ipc"
	case CategoryThread:
		return "thread"
	case CategoryTime:
		return "time"
	case CategorySysInfo:
		return "sysinfo"
	case CategorySecurity:
		return "security"
	case CategoryDebug:
		return "debug"
	default:
		return "misc"
	}
}

// categoryByName indexes the closed category set by its string tag, for
// parsing --trace expressions (spec section 5) without a linear scan.
var categoryByName = map[string]Category{
	"file":     CategoryFile,
	"network":  CategoryNetwork,
	"process":  CategoryProcess,
	"memory":   CategoryMemory,
	"signal":   CategorySignal,
	"ipc":      CategoryIPC,
	"thread":   CategoryThread,
	"time":     CategoryTime,
	"sysinfo":  CategorySysInfo,
	"security": CategorySecurity,
	"debug":    CategoryDebug,
	"misc":     CategoryMisc,
}

// ParseCategory looks up a category by its lowercase tag.
func ParseCategory(name string) (Category, bool) {
	c, ok := categoryByName[name]
	return c, ok
}
