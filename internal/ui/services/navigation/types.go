package navigation

// State holds the cursor and the scroll window over a list.
// Cursor is -1 when nothing is highlighted.
type State struct {
	Cursor         int
	ViewportOffset int
	ViewportHeight int
}

// Direction represents movement directions
type Direction string

const (
	DirectionUp   Direction = "up"
	DirectionDown Direction = "down"
	DirectionHome Direction = "home"
)
