// Package refresh keeps the torrent list in the application state current.
package refresh

import (
	"context"
	"time"

	log "github.com/sirupsen/logrus"

	"traxor/internal/domain"
	"traxor/internal/eventbus"
	"traxor/internal/ui/state"
)

// Fetcher lists every torrent on the daemon
type Fetcher interface {
	Torrents(ctx context.Context) ([]domain.Torrent, error)
}

// Poller fetches torrents on a fixed interval and on request
type Poller struct {
	fetcher  Fetcher
	state    *state.AppState
	bus      eventbus.EventBus
	interval time.Duration
	trigger  chan struct{}
}

// NewPoller creates a new poller
func NewPoller(fetcher Fetcher, st *state.AppState, bus eventbus.EventBus, interval time.Duration) *Poller {
	if interval <= 0 {
		interval = 2 * time.Second
	}
	return &Poller{
		fetcher:  fetcher,
		state:    st,
		bus:      bus,
		interval: interval,
		trigger:  make(chan struct{}, 1),
	}
}

// Request schedules a refresh without waiting for the next tick
func (p *Poller) Request() {
	select {
	case p.trigger <- struct{}{}:
	default:
		// One pending request is enough
	}
}

// Run refreshes immediately and then until ctx is done
func (p *Poller) Run(ctx context.Context) {
	if p.bus != nil {
		unsubscribe := p.bus.Subscribe(eventbus.EventRefreshRequested, func(eventbus.DomainEvent) {
			p.Request()
		})
		defer unsubscribe()
	}

	ticker := time.NewTicker(p.interval)
	defer ticker.Stop()

	_ = p.Refresh(ctx)
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
		case <-p.trigger:
		}
		_ = p.Refresh(ctx)
	}
}

// Refresh fetches once and swaps the result into the state. The fetch runs
// without the state lock; only the swap holds it. A result fetched while a
// command changed torrents is dropped and a new fetch requested. Failures are
// published as ErrorEvent for the UI to show.
func (p *Poller) Refresh(ctx context.Context) error {
	p.state.Lock()
	gen := p.state.Generation
	p.state.Unlock()

	torrents, err := p.fetcher.Torrents(ctx)
	if err != nil {
		if ctx.Err() != nil {
			return err
		}
		log.WithError(err).Warn("refresh: fetching torrents failed")
		p.publish(eventbus.ErrorEvent{Message: "refresh failed", Err: err})
		return err
	}

	p.state.Lock()
	if p.state.Generation != gen {
		p.state.Unlock()
		log.Debug("refresh: dropping list fetched before a change")
		p.Request()
		return nil
	}
	p.state.SetTorrents(torrents)
	p.state.Unlock()

	p.publish(eventbus.TorrentsRefreshedEvent{Count: len(torrents)})
	return nil
}

func (p *Poller) publish(e eventbus.DomainEvent) {
	if p.bus != nil {
		p.bus.Publish(e)
	}
}
