package handler

import (
	"net/http"
	"sort"

	"github.com/gin-gonic/gin"

	"connection-broker/internal/core/domain"
	"connection-broker/internal/core/ports"
	"connection-broker/pkg/brokererr"
	"connection-broker/pkg/response"
)

// PoolHandler exposes pool introspection endpoints.
type PoolHandler struct {
	pools map[string]ports.Pool
}

// NewPoolHandler creates a handler over the named pools.
func NewPoolHandler(pools map[string]ports.Pool) *PoolHandler {
	return &PoolHandler{pools: pools}
}

// PoolSummary is the list entry for GET /api/v1/pools.
type PoolSummary struct {
	Name  string           `json:"name"`
	Stats domain.PoolStats `json:"stats"`
}

// ListPools handles GET /api/v1/pools.
func (h *PoolHandler) ListPools(c *gin.Context) {
	names := make([]string, 0, len(h.pools))
	for name := range h.pools {
		names = append(names, name)
	}
	sort.Strings(names)

	summaries := make([]PoolSummary, 0, len(names))
	for _, name := range names {
		summaries = append(summaries, PoolSummary{Name: name, Stats: h.pools[name].Stats()})
	}

	response.OK(c, summaries)
}

// GetPoolStats handles GET /api/v1/pools/:name/stats.
func (h *PoolHandler) GetPoolStats(c *gin.Context) {
	name := c.Param("name")
	pool, ok := h.pools[name]
	if !ok {
		response.Error(c, brokererr.New("POOL_404", "Unknown pool: "+name, http.StatusNotFound))
		return
	}
	response.OK(c, PoolSummary{Name: name, Stats: pool.Stats()})
}
