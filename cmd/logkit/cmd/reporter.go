package cmd

import (
	"fmt"
	"io"
	"sync"
)

// reporter prints sink diagnostics to the command's error stream and remembers
// that one occurred.
type reporter struct {
	mu     sync.Mutex
	w      io.Writer
	errors int
}

func (r *reporter) Error(args ...interface{}) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.errors++
	fmt.Fprintln(r.w, append([]interface{}{"❌"}, args...)...)
}

func (r *reporter) failed() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.errors > 0
}
