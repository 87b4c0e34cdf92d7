package memalloc

import "sync/atomic"

import "github.com/bnclabs/golog"

var logok = int64(0)

// LogComponents turns on logging. By default logging is disabled
// everywhere; pass "varpool", "fixedpool", "bistack", or "all". There
// is a single gate: any one recognized name turns logging on for every
// component, and unrecognized names are ignored.
func LogComponents(components ...string) {
	for _, comp := range components {
		switch comp {
		case "varpool", "fixedpool", "bistack", "all":
			atomic.StoreInt64(&logok, 1)
		}
	}
}

// Debugf logs at debug level if logging has been turned on via
// LogComponents. Exported so varpool, fixedpool and bistack can share
// this one gate instead of each carrying its own.
func Debugf(format string, v ...interface{}) {
	if atomic.LoadInt64(&logok) > 0 {
		log.Debugf(format, v...)
	}
}

// Warnf logs at warn level if logging has been turned on via
// LogComponents.
func Warnf(format string, v ...interface{}) {
	if atomic.LoadInt64(&logok) > 0 {
		log.Warnf(format, v...)
	}
}
