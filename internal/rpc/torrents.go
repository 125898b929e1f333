package rpc

import (
	"context"
	"fmt"
	"slices"

	"github.com/tidwall/gjson"

	"traxor/internal/domain"
)

// Fields requested for every torrent
var Fields = []string{
	"id", "name", "status", "downloadDir", "percentDone", "totalSize",
	"leftUntilDone", "downloadedEver", "uploadedEver", "uploadRatio",
	"rateDownload", "rateUpload", "eta", "peersConnected",
	"peersSendingToUs", "peersGettingFromUs", "queuePosition", "addedDate",
	"doneDate", "hashString", "labels", "error", "errorString",
}

// Torrents fetches every torrent the daemon knows about
func (c *Client) Torrents(ctx context.Context) ([]domain.Torrent, error) {
	a, err := args("fields", Fields)
	if err != nil {
		return nil, err
	}
	res, err := c.call(ctx, "torrent-get", a)
	if err != nil {
		return nil, err
	}

	var out []domain.Torrent
	res.Get("torrents").ForEach(func(_, t gjson.Result) bool {
		out = append(out, parseTorrent(t))
		return true
	})
	return out, nil
}

func parseTorrent(t gjson.Result) domain.Torrent {
	var labels []string
	t.Get("labels").ForEach(func(_, l gjson.Result) bool {
		labels = append(labels, l.String())
		return true
	})
	return domain.Torrent{
		ID:             t.Get("id").Int(),
		Name:           t.Get("name").String(),
		Status:         domain.TorrentStatus(t.Get("status").Int()),
		DownloadDir:    t.Get("downloadDir").String(),
		PercentDone:    t.Get("percentDone").Float(),
		TotalSize:      t.Get("totalSize").Int(),
		LeftUntilDone:  t.Get("leftUntilDone").Int(),
		DownloadedEver: t.Get("downloadedEver").Int(),
		UploadedEver:   t.Get("uploadedEver").Int(),
		UploadRatio:    t.Get("uploadRatio").Float(),
		RateDownload:   t.Get("rateDownload").Int(),
		RateUpload:     t.Get("rateUpload").Int(),
		Eta:            t.Get("eta").Int(),
		PeersConnected: int(t.Get("peersConnected").Int()),
		PeersSending:   int(t.Get("peersSendingToUs").Int()),
		PeersGetting:   int(t.Get("peersGettingFromUs").Int()),
		QueuePosition:  int(t.Get("queuePosition").Int()),
		AddedDate:      t.Get("addedDate").Int(),
		DoneDate:       t.Get("doneDate").Int(),
		HashString:     t.Get("hashString").String(),
		Labels:         labels,
		Error:          int(t.Get("error").Int()),
		ErrorString:    t.Get("errorString").String(),
	}
}

// statuses returns id -> status for ids, or for every torrent when ids is nil
func (c *Client) statuses(ctx context.Context, ids []int64) (map[int64]domain.TorrentStatus, error) {
	kv := []interface{}{"fields", []string{"id", "status"}}
	if ids != nil {
		kv = append(kv, "ids", ids)
	}
	a, err := args(kv...)
	if err != nil {
		return nil, err
	}
	res, err := c.call(ctx, "torrent-get", a)
	if err != nil {
		return nil, err
	}

	out := make(map[int64]domain.TorrentStatus)
	res.Get("torrents").ForEach(func(_, t gjson.Result) bool {
		out[t.Get("id").Int()] = domain.TorrentStatus(t.Get("status").Int())
		return true
	})
	return out, nil
}

// action runs a torrent-start/stop style method. A nil ids applies it to
// every torrent.
func (c *Client) action(ctx context.Context, method string, ids []int64) error {
	var a string
	if ids != nil {
		var err error
		if a, err = args("ids", ids); err != nil {
			return err
		}
	}
	_, err := c.call(ctx, method, a)
	return err
}

// Toggle starts the stopped torrents among ids and stops the rest
func (c *Client) Toggle(ctx context.Context, ids []int64) error {
	if len(ids) == 0 {
		return nil
	}
	st, err := c.statuses(ctx, ids)
	if err != nil {
		return err
	}
	return c.toggle(ctx, st)
}

// ToggleAll toggles every torrent
func (c *Client) ToggleAll(ctx context.Context) error {
	st, err := c.statuses(ctx, nil)
	if err != nil {
		return err
	}
	return c.toggle(ctx, st)
}

func (c *Client) toggle(ctx context.Context, st map[int64]domain.TorrentStatus) error {
	var start, stop []int64
	for id, s := range st {
		if s == domain.StatusStopped {
			start = append(start, id)
		} else {
			stop = append(stop, id)
		}
	}
	slices.Sort(start)
	slices.Sort(stop)
	if len(start) > 0 {
		if err := c.action(ctx, "torrent-start-now", start); err != nil {
			return err
		}
	}
	if len(stop) > 0 {
		if err := c.action(ctx, "torrent-stop", stop); err != nil {
			return err
		}
	}
	return nil
}

// StartAll starts every torrent
func (c *Client) StartAll(ctx context.Context) error {
	return c.action(ctx, "torrent-start", nil)
}

// StopAll stops every torrent
func (c *Client) StopAll(ctx context.Context) error {
	return c.action(ctx, "torrent-stop", nil)
}

// MoveItems moves the data of ids to dest on the daemon's filesystem
func (c *Client) MoveItems(ctx context.Context, ids []int64, dest string) error {
	if len(ids) == 0 {
		return nil
	}
	a, err := args("ids", ids, "location", dest, "move", true)
	if err != nil {
		return err
	}
	_, err = c.call(ctx, "torrent-set-location", a)
	return err
}

// Rename renames the top-level file or directory of torrent id
func (c *Client) Rename(ctx context.Context, id int64, oldName, newName string) error {
	if newName == "" {
		return fmt.Errorf("rename %q: new name is empty", oldName)
	}
	a, err := args("ids", []int64{id}, "path", oldName, "name", newName)
	if err != nil {
		return err
	}
	_, err = c.call(ctx, "torrent-rename-path", a)
	return err
}

// Delete removes ids from the daemon, and their data when deleteLocalData
func (c *Client) Delete(ctx context.Context, ids []int64, deleteLocalData bool) error {
	if len(ids) == 0 {
		return nil
	}
	a, err := args("ids", ids, "delete-local-data", deleteLocalData)
	if err != nil {
		return err
	}
	_, err = c.call(ctx, "torrent-remove", a)
	return err
}
