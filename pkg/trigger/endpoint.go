package trigger

import (
	"path"
	"strings"
)

// Default downstream paths.
const (
	UpdateChunksPath       = "/cron-jobs/update-chunks"
	RefreshLeaderboardPath = "/cron-jobs/refresh-leaderboard"
)

// Endpoint is a downstream route hit on every invocation.
// Name is used as the log and metric label.
type Endpoint struct {
	Name string `yaml:"name"`
	Path string `yaml:"path"`
}

// DefaultEndpoints returns the chunk update and leaderboard refresh routes.
func DefaultEndpoints() []Endpoint {
	return []Endpoint{
		EndpointFromPath(UpdateChunksPath),
		EndpointFromPath(RefreshLeaderboardPath),
	}
}

// EndpointFromPath builds an endpoint named after the last segment of p.
//
//	EndpointFromPath("/cron-jobs/update-chunks") // {Name: "update-chunks", Path: "/cron-jobs/update-chunks"}
func EndpointFromPath(p string) Endpoint {
	p = strings.TrimSpace(p)
	name := path.Base(strings.TrimRight(p, "/"))
	if name == "." || name == "/" {
		name = ""
	}
	return Endpoint{Name: name, Path: p}
}

// EndpointsFromPaths maps EndpointFromPath over paths, skipping blanks.
func EndpointsFromPaths(paths []string) []Endpoint {
	out := make([]Endpoint, 0, len(paths))
	for _, p := range paths {
		if strings.TrimSpace(p) == "" {
			continue
		}
		out = append(out, EndpointFromPath(p))
	}
	return out
}

// joinURL appends p to base without dropping any path the base already carries.
func joinURL(base, p string) string {
	return strings.TrimRight(base, "/") + "/" + strings.TrimLeft(p, "/")
}
