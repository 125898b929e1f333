package logic

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"traxor/internal/domain"
)

var sample = []domain.Torrent{
	{ID: 1, Name: "ubuntu-24.04-desktop-amd64.iso", DownloadDir: "/data/iso", Status: domain.StatusSeeding, PercentDone: 1, RateUpload: 2048},
	{ID: 2, Name: "Debian 12 netinst", DownloadDir: "/data/iso", Status: domain.StatusDownloading, PercentDone: 0.4, RateDownload: 100},
	{ID: 3, Name: "Big Buck Bunny", DownloadDir: "/data/films", Status: domain.StatusStopped, PercentDone: 0.1},
	{ID: 4, Name: "broken", DownloadDir: "/data/tmp", Status: domain.StatusStopped, Error: 3, ErrorString: "No data found"},
}

func ids(ts []domain.Torrent) []int64 {
	var out []int64
	for _, t := range ts {
		out = append(out, t.ID)
	}
	return out
}

func TestFilterTorrents(t *testing.T) {
	tests := []struct {
		name  string
		query string
		want  []int64
	}{
		{"empty keeps all", "", []int64{1, 2, 3, 4}},
		{"substring ignores case", "DEBIAN", []int64{2}},
		{"matches download dir", "films", []int64{3}},
		{"glob", "*.iso", []int64{1}},
		{"glob on dir", "/data/i*", []int64{1, 2}},
		{"character class", "[bd]*", []int64{2, 3, 4}},
		{"status stopped", "status:stopped", []int64{3, 4}},
		{"status error", "status:error", []int64{4}},
		{"status active", "status:active", []int64{1, 2}},
		{"status done", "status:done", []int64{1}},
		{"no match", "fedora", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ids(FilterTorrents(sample, tt.query)))
		})
	}
}

func TestFilterEmpty(t *testing.T) {
	assert.True(t, NewFilter("   ").Empty())
	assert.False(t, NewFilter("x").Empty())
}
