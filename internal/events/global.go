package events

import "sync"

var (
	defaultBus  *Bus
	defaultLock sync.RWMutex
)

// SetDefault installs the process-wide bus used by Publish.
func SetDefault(b *Bus) {
	defaultLock.Lock()
	defer defaultLock.Unlock()
	defaultBus = b
}

func Default() *Bus {
	defaultLock.RLock()
	defer defaultLock.RUnlock()
	return defaultBus
}

// Publish sends on the default bus, if one is installed. A missing bus is a
// no-op so domain code never has to care whether eventing is wired.
func Publish(e Event) {
	if b := Default(); b != nil {
		b.Publish(e)
	}
}
