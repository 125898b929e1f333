package logic

import (
	"strings"

	"github.com/gobwas/glob"

	"traxor/internal/domain"
)

const globMeta = "*?[{"

// Filter decides which torrents a filter query keeps
type Filter struct {
	query  string
	status string
	glob   glob.Glob
}

// NewFilter compiles a query. The query is matched case-insensitively
// against name and download dir, as a glob when it contains glob
// metacharacters and as a substring otherwise. "status:<name>" filters by
// activity instead.
func NewFilter(query string) *Filter {
	q := strings.ToLower(strings.TrimSpace(query))
	f := &Filter{query: q}

	if strings.HasPrefix(q, "status:") {
		f.status = strings.TrimPrefix(q, "status:")
		return f
	}
	if strings.ContainsAny(q, globMeta) {
		// Unbalanced patterns fall back to substring matching
		if g, err := glob.Compile(q); err == nil {
			f.glob = g
		}
	}
	return f
}

// Empty returns true if the filter keeps everything
func (f *Filter) Empty() bool {
	return f.query == ""
}

// Matches checks if a torrent matches the filter
func (f *Filter) Matches(t domain.Torrent) bool {
	if f.query == "" {
		return true
	}
	if f.status != "" {
		return MatchesStatusFilter(t, f.status)
	}

	name := strings.ToLower(t.Name)
	dir := strings.ToLower(t.DownloadDir)
	if f.glob != nil {
		return f.glob.Match(name) || f.glob.Match(dir)
	}
	return strings.Contains(name, f.query) || strings.Contains(dir, f.query)
}

// MatchesStatusFilter checks if a torrent matches the given status filter
func MatchesStatusFilter(t domain.Torrent, filter string) bool {
	switch filter {
	case "stopped", "paused":
		return t.Status == domain.StatusStopped
	case "downloading", "down":
		return t.Status == domain.StatusDownloading
	case "seeding", "seed":
		return t.Status == domain.StatusSeeding
	case "queued":
		return t.Status == domain.StatusQueuedToDownload || t.Status == domain.StatusQueuedToSeed
	case "verifying", "checking":
		return t.Status == domain.StatusVerifying || t.Status == domain.StatusQueuedToVerify
	case "active":
		return t.RateDownload > 0 || t.RateUpload > 0
	case "done", "complete":
		return t.PercentDone >= 1
	case "error":
		return t.Error != 0 || t.ErrorString != ""
	default:
		return strings.Contains(strings.ToLower(t.Status.String()), filter)
	}
}

// FilterTorrents returns the torrents matching query, in order
func FilterTorrents(torrents []domain.Torrent, query string) []domain.Torrent {
	f := NewFilter(query)
	if f.Empty() {
		return torrents
	}
	var out []domain.Torrent
	for _, t := range torrents {
		if f.Matches(t) {
			out = append(out, t)
		}
	}
	return out
}
