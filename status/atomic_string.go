package status

import (
	"sync/atomic"
	"unicode/utf8"
)

// MaxStringLen bounds stored labels
const MaxStringLen = 32

// AtomicString provides atomic access to a short label
// Zero value is ready to use (represents empty string)
type AtomicString struct {
	ptr atomic.Pointer[string]
}

// Store sets the label, truncating to at most MaxStringLen bytes on a rune boundary
func (s *AtomicString) Store(val string) {
	val = truncate(val, MaxStringLen)
	s.ptr.Store(&val)
}

func truncate(val string, limit int) string {
	if len(val) <= limit {
		return val
	}
	cut := limit
	for cut > 0 && !utf8.RuneStart(val[cut]) {
		cut--
	}
	return val[:cut]
}

// Load returns the current label
func (s *AtomicString) Load() string {
	if p := s.ptr.Load(); p != nil {
		return *p
	}
	return ""
}
