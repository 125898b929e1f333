package views

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/dustin/go-humanize"

	"traxor/internal/domain"
)

// Transmission's sentinel values for eta and ratio
const (
	etaNotAvailable   = -1
	etaUnknown        = -2
	ratioNotAvailable = -1
	ratioInfinite     = -2
)

// columnWidth is the fixed width of a column. Zero means it takes the
// space the fixed columns leave.
var columnWidth = map[domain.Column]int{
	domain.ColumnName:       0,
	domain.ColumnStatus:     11,
	domain.ColumnSize:       10,
	domain.ColumnDownloaded: 10,
	domain.ColumnUploaded:   10,
	domain.ColumnRatio:      6,
	domain.ColumnProgress:   5,
	domain.ColumnEta:        8,
	domain.ColumnPeers:      9,
	domain.ColumnSeeds:      5,
	domain.ColumnLeeches:    5,
	domain.ColumnDownSpeed:  11,
	domain.ColumnUpSpeed:    11,
	domain.ColumnPath:       30,
	domain.ColumnAdded:      15,
	domain.ColumnDone:       15,
	domain.ColumnLeft:       10,
	domain.ColumnQueue:      5,
	domain.ColumnError:      20,
	domain.ColumnHash:       40,
	domain.ColumnLabels:     15,
}

// Cell formats one torrent attribute for display
func Cell(t domain.Torrent, c domain.Column) string {
	switch c {
	case domain.ColumnName:
		return t.Name
	case domain.ColumnStatus:
		return t.Status.String()
	case domain.ColumnSize:
		return FileSize(t.TotalSize)
	case domain.ColumnDownloaded:
		return FileSize(t.DownloadedEver)
	case domain.ColumnUploaded:
		return FileSize(t.UploadedEver)
	case domain.ColumnRatio:
		return Ratio(t.UploadRatio)
	case domain.ColumnProgress:
		return fmt.Sprintf("%.0f%%", t.PercentDone*100)
	case domain.ColumnEta:
		return Eta(t.Eta)
	case domain.ColumnPeers:
		return strconv.Itoa(t.PeersConnected)
	case domain.ColumnSeeds:
		return strconv.Itoa(t.PeersSending)
	case domain.ColumnLeeches:
		return strconv.Itoa(t.PeersGetting)
	case domain.ColumnDownSpeed:
		return Speed(t.RateDownload)
	case domain.ColumnUpSpeed:
		return Speed(t.RateUpload)
	case domain.ColumnPath:
		return t.DownloadDir
	case domain.ColumnAdded:
		return Date(t.AddedDate)
	case domain.ColumnDone:
		return Date(t.DoneDate)
	case domain.ColumnLeft:
		return FileSize(t.LeftUntilDone)
	case domain.ColumnQueue:
		return strconv.Itoa(t.QueuePosition)
	case domain.ColumnError:
		return t.ErrorString
	case domain.ColumnHash:
		return t.HashString
	case domain.ColumnLabels:
		return strings.Join(t.Labels, ", ")
	default:
		return ""
	}
}

// FileSize formats a byte count
func FileSize(n int64) string {
	if n <= 0 {
		return "0 B"
	}
	return humanize.IBytes(uint64(n))
}

// Speed formats a byte rate. Zero renders as "-".
func Speed(n int64) string {
	if n <= 0 {
		return "-"
	}
	return humanize.IBytes(uint64(n)) + "/s"
}

// Ratio formats an upload ratio
func Ratio(r float64) string {
	switch r {
	case ratioNotAvailable:
		return "-"
	case ratioInfinite:
		return "∞"
	}
	return humanize.FormatFloat("#.##", r)
}

// Eta formats seconds remaining, using the two largest units
func Eta(secs int64) string {
	switch {
	case secs == etaNotAvailable:
		return "-"
	case secs == etaUnknown || secs < 0:
		return "∞"
	}

	d := time.Duration(secs) * time.Second
	days := int64(d / (24 * time.Hour))
	hours := int64(d/time.Hour) % 24
	minutes := int64(d/time.Minute) % 60
	seconds := secs % 60

	switch {
	case days > 0:
		return fmt.Sprintf("%dd %dh", days, hours)
	case hours > 0:
		return fmt.Sprintf("%dh %dm", hours, minutes)
	case minutes > 0:
		return fmt.Sprintf("%dm %ds", minutes, seconds)
	default:
		return fmt.Sprintf("%ds", seconds)
	}
}

// Date formats a unix timestamp relative to now
func Date(unix int64) string {
	if unix <= 0 {
		return "-"
	}
	return humanize.Time(time.Unix(unix, 0))
}

// Totals aggregates rates and transfer counters over torrents
type Totals struct {
	Down       int64
	Up         int64
	Downloaded int64
	Uploaded   int64
}

// Sum adds up the totals of torrents
func Sum(torrents []domain.Torrent) Totals {
	var t Totals
	for _, tr := range torrents {
		t.Down += tr.RateDownload
		t.Up += tr.RateUpload
		t.Downloaded += tr.DownloadedEver
		t.Uploaded += tr.UploadedEver
	}
	return t
}
