package domain

// EventType represents the type of domain event
type EventType string

// Event types
const (
	EventTorrentsRefreshed EventType = "TorrentsRefreshed"
	EventRefreshRequested  EventType = "RefreshRequested"
	EventError             EventType = "Error"
	EventConfigChanged     EventType = "ConfigChanged"
	EventTorrentsChanged   EventType = "TorrentsChanged"
)

// DomainEvent is the interface for all domain events
type DomainEvent interface {
	Type() EventType
}

// TorrentsRefreshedEvent is emitted after the torrent list was fetched
type TorrentsRefreshedEvent struct {
	Count int
}

func (e TorrentsRefreshedEvent) Type() EventType { return EventTorrentsRefreshed }

// RefreshRequestedEvent asks the poller to fetch now instead of waiting
type RefreshRequestedEvent struct{}

func (e RefreshRequestedEvent) Type() EventType { return EventRefreshRequested }

// ErrorEvent is emitted when an error occurs
type ErrorEvent struct {
	Message string
	Err     error
}

func (e ErrorEvent) Type() EventType { return EventError }

// ConfigChangedEvent carries a reloaded configuration. Config is left as
// interface{} so domain does not import config.
type ConfigChangedEvent struct {
	Path   string
	Config interface{}
}

func (e ConfigChangedEvent) Type() EventType { return EventConfigChanged }

// TorrentsChangedEvent is emitted after a command altered torrents on the daemon
type TorrentsChangedEvent struct {
	Action string
	IDs    []int64
}

func (e TorrentsChangedEvent) Type() EventType { return EventTorrentsChanged }
