package domain

// PoolStats is a point-in-time snapshot of a pool's occupancy. It is
// recomputed on demand from the pool's tracking state, never persisted.
type PoolStats struct {
	Active    int `json:"active"`    // connections currently leased out
	Available int `json:"available"` // connections idle in the pool
}

// Tracked returns the total number of connections the pool owns.
func (s PoolStats) Tracked() int {
	return s.Active + s.Available
}
