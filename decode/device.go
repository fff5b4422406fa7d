package decode

import "fmt"

// Device renders a BSD dev_t as "makedev(major, minor)", the form strace
// uses when printing st_rdev/st_dev.
func Device(dev uint64) string {
	major := (dev >> 24) & 0xff
	minor := dev & 0xffffff
	return fmt.Sprintf("makedev(%d, %d)", major, minor)
}
