package debug

import (
	"fmt"
	"log"
	"strings"
	"time"
)

// DebugHeader prints debug header if debugging is enabled
func DebugHeader(enabled bool, operation string) {
	if enabled {
		log.Printf("=== DEBUG START: %s ===", operation)
	}
}

// DebugFooter prints debug footer if debugging is enabled
func DebugFooter(enabled bool, operation string) {
	if enabled {
		log.Printf("=== DEBUG END: %s ===", operation)
	}
}

// DebugOutput prints debug output if debugging is enabled
func DebugOutput(enabled bool, format string, args ...interface{}) {
	if enabled {
		timestamp := time.Now().Format("15:04:05.000")
		message := fmt.Sprintf(format, args...)
		log.Printf("[%s] %s", timestamp, message)
	}
}

// DebugLines prints a composed address one line per log entry.
func DebugLines(enabled bool, label string, lines []string) {
	if !enabled {
		return
	}
	if len(lines) == 0 {
		DebugOutput(enabled, "%s: (no lines)", label)
		return
	}
	DebugOutput(enabled, "%s: %s", label, strings.Join(lines, " | "))
}

// DebugTiming measures and logs execution time if debugging is enabled
func DebugTiming(enabled bool, operation string) func() {
	if !enabled {
		return func() {}
	}

	start := time.Now()
	DebugOutput(enabled, "Starting: %s", operation)

	return func() {
		DebugOutput(enabled, "Completed: %s (took %v)", operation, time.Since(start))
	}
}
