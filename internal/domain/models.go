package domain

import "strings"

// TorrentStatus is the daemon's activity code for a torrent
type TorrentStatus int

const (
	StatusStopped TorrentStatus = iota
	StatusQueuedToVerify
	StatusVerifying
	StatusQueuedToDownload
	StatusDownloading
	StatusQueuedToSeed
	StatusSeeding
)

func (s TorrentStatus) String() string {
	switch s {
	case StatusStopped:
		return "Stopped"
	case StatusQueuedToVerify:
		return "Queued to verify"
	case StatusVerifying:
		return "Verifying"
	case StatusQueuedToDownload:
		return "Queued"
	case StatusDownloading:
		return "Downloading"
	case StatusQueuedToSeed:
		return "Queued to seed"
	case StatusSeeding:
		return "Seeding"
	default:
		return "Unknown"
	}
}

// Torrent is one item reported by the daemon
type Torrent struct {
	ID             int64
	Name           string
	Status         TorrentStatus
	DownloadDir    string
	PercentDone    float64
	TotalSize      int64
	LeftUntilDone  int64
	DownloadedEver int64
	UploadedEver   int64
	UploadRatio    float64
	RateDownload   int64
	RateUpload     int64
	Eta            int64 // seconds; -1 not available, -2 unknown
	PeersConnected int
	PeersSending   int
	PeersGetting   int
	QueuePosition  int
	AddedDate      int64 // unix seconds
	DoneDate       int64 // unix seconds
	HashString     string
	Labels         []string
	Error          int
	ErrorString    string
}

// Column is a torrent attribute a tab can display
type Column int

const (
	ColumnName Column = iota
	ColumnStatus
	ColumnSize
	ColumnDownloaded
	ColumnUploaded
	ColumnRatio
	ColumnProgress
	ColumnEta
	ColumnPeers
	ColumnSeeds
	ColumnLeeches
	ColumnDownSpeed
	ColumnUpSpeed
	ColumnPath
	ColumnAdded
	ColumnDone
	ColumnLeft
	ColumnQueue
	ColumnError
	ColumnHash
	ColumnLabels
)

type columnInfo struct {
	title   string
	field   string // torrent-get field name
	aliases []string
}

var columns = map[Column]columnInfo{
	ColumnName:       {"Name", "name", []string{"name"}},
	ColumnStatus:     {"Status", "status", []string{"status"}},
	ColumnSize:       {"Size", "totalSize", []string{"size", "totalsize", "total_size"}},
	ColumnDownloaded: {"Downloaded", "downloadedEver", []string{"downloaded", "downloadedever", "downloaded_ever"}},
	ColumnUploaded:   {"Uploaded", "uploadedEver", []string{"uploaded", "uploadedever", "uploaded_ever"}},
	ColumnRatio:      {"Ratio", "uploadRatio", []string{"ratio", "uploadratio", "upload_ratio"}},
	ColumnProgress:   {"%", "percentDone", []string{"progress", "percent", "percentdone", "percent_done"}},
	ColumnEta:        {"ETA", "eta", []string{"eta"}},
	ColumnPeers:      {"Connected", "peersConnected", []string{"peers", "peersconnected", "peers_connected"}},
	ColumnSeeds:      {"Seeds", "peersSendingToUs", []string{"seeds", "peerssending", "peers_sending"}},
	ColumnLeeches:    {"Peers", "peersGettingFromUs", []string{"leeches", "peersgetting", "peers_getting"}},
	ColumnDownSpeed:  {"Down", "rateDownload", []string{"downspeed", "ratedownload", "rate_download"}},
	ColumnUpSpeed:    {"Up", "rateUpload", []string{"upspeed", "rateupload", "rate_upload"}},
	ColumnPath:       {"Path", "downloadDir", []string{"path", "downloaddir", "download_dir"}},
	ColumnAdded:      {"Added", "addedDate", []string{"added", "addeddate", "added_date"}},
	ColumnDone:       {"Done", "doneDate", []string{"done", "donedate", "done_date"}},
	ColumnLeft:       {"Left", "leftUntilDone", []string{"left", "leftuntildone", "left_until_done"}},
	ColumnQueue:      {"Queue", "queuePosition", []string{"queue", "queueposition", "queue_position"}},
	ColumnError:      {"Error", "errorString", []string{"error", "errorstring", "error_string"}},
	ColumnHash:       {"Hash", "hashString", []string{"hash", "hashstring", "hash_string"}},
	ColumnLabels:     {"Labels", "labels", []string{"labels"}},
}

var columnAliases = func() map[string]Column {
	m := make(map[string]Column)
	for c, info := range columns {
		for _, a := range info.aliases {
			m[a] = c
		}
	}
	return m
}()

// ParseColumn looks a column up by any of its names, ignoring case
func ParseColumn(name string) (Column, bool) {
	c, ok := columnAliases[strings.ToLower(strings.TrimSpace(name))]
	return c, ok
}

// ParseColumns converts names to columns, skipping the ones it does not know
func ParseColumns(names []string) []Column {
	var out []Column
	for _, n := range names {
		if c, ok := ParseColumn(n); ok {
			out = append(out, c)
		}
	}
	return out
}

// Title returns the column header
func (c Column) Title() string {
	return columns[c].title
}

// Field returns the daemon field that backs the column
func (c Column) Field() string {
	return columns[c].field
}

// Tab is a named set of columns
type Tab struct {
	Name    string
	Columns []Column
}
