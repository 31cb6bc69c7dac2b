package utils

import (
	"runtime"
	"runtime/debug"

	"github.com/sirupsen/logrus"
)

// LogMemoryUsage logs the current heap and OS memory usage
func LogMemoryUsage() {
	var m runtime.MemStats
	runtime.ReadMemStats(&m)
	logrus.WithFields(logrus.Fields{
		"alloc_mib":      m.Alloc / 1024 / 1024,
		"total_mib":      m.TotalAlloc / 1024 / 1024,
		"sys_mib":        m.Sys / 1024 / 1024,
		"heap_inuse_mib": m.HeapInuse / 1024 / 1024,
		"num_gc":         m.NumGC,
	}).Debug("Memory usage")
}

// FreeMemory forces garbage collection and returns memory to OS
func FreeMemory() {
	runtime.GC()
	debug.FreeOSMemory()
}
