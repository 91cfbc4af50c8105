package metrics

import "runtime"

// MemorySnapshot holds a point-in-time memory reading.
type MemorySnapshot struct {
	HeapAlloc    uint64 // bytes in use
	TotalAlloc   uint64 // cumulative bytes allocated
	Mallocs      uint64 // cumulative heap objects allocated
	NumGC        uint32 // completed GC cycles
	PauseTotalNs uint64 // cumulative GC pause time
}

// ReadMemory returns the current runtime memory statistics.
func ReadMemory() MemorySnapshot {
	var m runtime.MemStats
	runtime.ReadMemStats(&m)
	return MemorySnapshot{
		HeapAlloc:    m.HeapAlloc,
		TotalAlloc:   m.TotalAlloc,
		Mallocs:      m.Mallocs,
		NumGC:        m.NumGC,
		PauseTotalNs: m.PauseTotalNs,
	}
}

// AllocDelta is the allocation activity between two snapshots.
type AllocDelta struct {
	Bytes   uint64
	Objects uint64
	GCs     uint32
}

// Since returns the allocations made between before and s.
func (s MemorySnapshot) Since(before MemorySnapshot) AllocDelta {
	return AllocDelta{
		Bytes:   s.TotalAlloc - before.TotalAlloc,
		Objects: s.Mallocs - before.Mallocs,
		GCs:     s.NumGC - before.NumGC,
	}
}

// PerOp divides the delta evenly over n operations.
func (d AllocDelta) PerOp(n int) AllocDelta {
	if n <= 0 {
		return d
	}
	return AllocDelta{Bytes: d.Bytes / uint64(n), Objects: d.Objects / uint64(n), GCs: d.GCs}
}
