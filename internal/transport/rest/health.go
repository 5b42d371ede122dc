package rest

import (
	"context"
	"net/http"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"
)

const probeTimeout = 3 * time.Second

const (
	statusOK       = "ok"
	statusDegraded = "degraded"
	statusDown     = "down"
)

type pinger interface {
	Ping(ctx context.Context) error
}

type probe struct {
	name     string
	target   pinger
	critical bool
}

// HealthHandler serves /live, /ready and /health.
type HealthHandler struct {
	probes  []probe
	version string
	started time.Time
}

// NewHealthHandler probes the database and, when cache is non-nil, the block
// cache. Only the database decides readiness; a failing cache degrades
// /health.
func NewHealthHandler(db pinger, cache pinger, version string) *HealthHandler {
	probes := []probe{{name: "database", target: db, critical: true}}
	if cache != nil {
		probes = append(probes, probe{name: "cache", target: cache})
	}
	return &HealthHandler{probes: probes, version: version, started: time.Now()}
}

// HealthResponse is the body of every health endpoint.
type HealthResponse struct {
	Status     string                `json:"status"`
	Version    string                `json:"version,omitempty"`
	Uptime     string                `json:"uptime,omitempty"`
	Components map[string]CompStatus `json:"components,omitempty"`
	Timestamp  time.Time             `json:"timestamp"`
}

// CompStatus reports one probed component.
type CompStatus struct {
	Status  string `json:"status"`
	Latency string `json:"latency,omitempty"`
}

// Live answers as long as the process serves HTTP.
func (h *HealthHandler) Live(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, HealthResponse{Status: statusOK, Timestamp: time.Now()})
}

// Ready is 503 while a critical component is unreachable.
func (h *HealthHandler) Ready(w http.ResponseWriter, r *http.Request) {
	status, _ := h.check(r.Context(), true)
	writeJSON(w, httpStatus(status), HealthResponse{Status: status, Timestamp: time.Now()})
}

// Health probes every component and reports latencies and the build version.
func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	status, comps := h.check(r.Context(), false)
	writeJSON(w, httpStatus(status), HealthResponse{
		Status:     status,
		Version:    h.version,
		Uptime:     time.Since(h.started).Truncate(time.Second).String(),
		Components: comps,
		Timestamp:  time.Now(),
	})
}

// check pings the components concurrently. The overall status is down when
// a critical component fails and degraded when only optional ones do.
func (h *HealthHandler) check(ctx context.Context, criticalOnly bool) (string, map[string]CompStatus) {
	ctx, cancel := context.WithTimeout(ctx, probeTimeout)
	defer cancel()

	var (
		mu      sync.Mutex
		comps   = make(map[string]CompStatus, len(h.probes))
		overall = statusOK
	)
	var g errgroup.Group
	for _, p := range h.probes {
		if criticalOnly && !p.critical {
			continue
		}
		g.Go(func() error {
			start := time.Now()
			err := p.target.Ping(ctx)
			cs := CompStatus{Status: statusOK, Latency: time.Since(start).String()}

			mu.Lock()
			defer mu.Unlock()
			if err != nil {
				cs = CompStatus{Status: statusDown}
				switch {
				case p.critical:
					overall = statusDown
				case overall == statusOK:
					overall = statusDegraded
				}
			}
			comps[p.name] = cs
			return nil
		})
	}
	_ = g.Wait()
	return overall, comps
}

func httpStatus(status string) int {
	if status == statusDown {
		return http.StatusServiceUnavailable
	}
	return http.StatusOK
}
