package debug

import (
	"fmt"
	"os"
	"sync"
	"time"
)

var (
	mu   sync.Mutex
	file *os.File
	once sync.Once
)

// enabled reports whether debug logging is active, opening the log file on
// first use. TERN_DEBUG must name a writable file path.
func enabled() bool {
	once.Do(func() {
		path := os.Getenv("TERN_DEBUG")
		if path == "" {
			return
		}
		f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
		if err != nil {
			return
		}
		file = f
	})
	return file != nil
}

// Log appends a formatted message to the debug file. No-op unless TERN_DEBUG
// is set.
func Log(format string, args ...any) {
	if !enabled() {
		return
	}
	mu.Lock()
	defer mu.Unlock()
	fmt.Fprintf(file, "%s %s\n", time.Now().Format("15:04:05.000"), fmt.Sprintf(format, args...))
}
