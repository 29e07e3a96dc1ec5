package entity

// DiscoveryState is the phase of a discovery session's fetch cycle.
type DiscoveryState string

const (
	DiscoveryIdle    DiscoveryState = "idle"
	DiscoveryLoading DiscoveryState = "loading"
	DiscoveryLoaded  DiscoveryState = "loaded"
	DiscoveryError   DiscoveryState = "error"
)

// Settled reports whether no fetch is outstanding.
func (s DiscoveryState) Settled() bool {
	return s != DiscoveryLoading
}
