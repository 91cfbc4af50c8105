package oracle

import "sync"

var (
	registryMu sync.RWMutex
	registry   = []Oracle{Big{}}
)

// register adds an oracle compiled in behind a build tag.
func register(o Oracle) {
	registryMu.Lock()
	defer registryMu.Unlock()
	registry = append(registry, o)
}

// Available returns every oracle in this build, math/big first.
func Available() []Oracle {
	registryMu.RLock()
	defer registryMu.RUnlock()
	return append([]Oracle(nil), registry...)
}

// Strongest returns the last registered oracle: libgmp when built with the
// gmp tag, math/big otherwise.
func Strongest() Oracle {
	all := Available()
	return all[len(all)-1]
}
