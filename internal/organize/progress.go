package organize

import "fmt"

// ProgressFunc receives human-readable progress and warning lines. It is the
// caller's log surface (a text widget, stdout, a test buffer); the core never
// requires one and stays silent when it is nil. Implementations must not
// panic; errors in logging are the caller's concern.
type ProgressFunc func(line string)

func (fn ProgressFunc) sayf(format string, args ...any) {
	if fn == nil {
		return
	}
	fn(fmt.Sprintf(format, args...))
}
