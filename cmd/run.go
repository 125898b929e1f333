package cmd

import (
	"os/signal"
	"syscall"

	tea "github.com/charmbracelet/bubbletea"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"traxor/internal/completion"
	"traxor/internal/config"
	"traxor/internal/eventbus"
	"traxor/internal/logging"
	"traxor/internal/refresh"
	"traxor/internal/rpc"
	"traxor/internal/ui"
	"traxor/internal/ui/state"
)

func runTUI(cmd *cobra.Command, _ []string) error {
	cfg, paths, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	logFile, err := logging.Setup(cfg.Log)
	if err != nil {
		return err
	}
	defer logFile.Close()
	log.WithField("url", cfg.RPC.URL).Info("starting")

	// Create context for graceful shutdown
	ctx, cancel := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	bus := eventbus.New()
	defer bus.Close()

	st := state.NewAppState(ui.Tabs(cfg.Tabs))
	client := rpc.New(cfg.RPC)
	model := ui.NewModel(ctx, bus, cfg, st, client, completion.NewPathCompleter(afero.NewOsFs()))

	p := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx))

	// Forward the events the UI redraws on
	forward := func(e eventbus.DomainEvent) {
		p.Send(ui.EventMsg{Event: e})
	}
	for _, t := range []eventbus.EventType{
		eventbus.EventTorrentsRefreshed,
		eventbus.EventError,
		eventbus.EventConfigChanged,
		eventbus.EventTorrentsChanged,
	} {
		bus.Subscribe(t, forward)
	}

	poller := refresh.NewPoller(client, st, bus, cfg.RPC.RefreshInterval())
	go poller.Run(ctx)

	go func() {
		err := config.Watch(ctx, paths, func(newCfg *config.Config, err error) {
			if err != nil {
				bus.Publish(eventbus.ErrorEvent{Message: "config reload failed", Err: err})
				return
			}
			bus.Publish(eventbus.ConfigChangedEvent{Path: paths[len(paths)-1], Config: newCfg})
		})
		if err != nil {
			log.WithError(err).Warn("config: not watching for changes")
		}
	}()

	if _, err := p.Run(); err != nil && ctx.Err() == nil {
		log.WithError(err).Error("ui exited with error")
		return err
	}
	log.Info("exited normally")
	return nil
}
