package decode

import "fmt"

// Timespec renders a struct timespec (seconds, nanoseconds) as
// "seconds.nanoseconds", per spec section 4.4's stat struct rendering
// rule for time fields.
func Timespec(sec, nsec int64) string {
	return fmt.Sprintf("%d.%09d", sec, nsec)
}
