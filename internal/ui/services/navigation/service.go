package navigation

// Service moves a cursor over a list whose length changes under it
type Service struct {
	state State
}

// NewService creates a service with nothing highlighted
func NewService() *Service {
	return &Service{
		state: State{
			Cursor:         -1,
			ViewportHeight: 20, // Default, will be updated
		},
	}
}

// GetCursor returns the highlighted index, or -1
func (s *Service) GetCursor() int {
	return s.state.Cursor
}

// GetViewportOffset returns the first visible row
func (s *Service) GetViewportOffset() int {
	return s.state.ViewportOffset
}

// SetViewportHeight updates viewport height
func (s *Service) SetViewportHeight(height int) {
	if height < 1 {
		height = 1
	}
	s.state.ViewportHeight = height
	s.ensureVisible()
}

// Navigate moves the cursor over total rows. Up and down wrap around; with
// nothing highlighted both land on the first row. An empty list clears the
// cursor.
func (s *Service) Navigate(direction Direction, total int) {
	if total <= 0 {
		s.Reset()
		return
	}

	switch direction {
	case DirectionDown:
		if s.state.Cursor < 0 || s.state.Cursor >= total-1 {
			s.state.Cursor = 0
		} else {
			s.state.Cursor++
		}
	case DirectionUp:
		switch {
		case s.state.Cursor < 0:
			s.state.Cursor = 0
		case s.state.Cursor == 0:
			s.state.Cursor = total - 1
		default:
			s.state.Cursor--
		}
	case DirectionHome:
		s.state.Cursor = 0
	}
	s.ensureVisible()
}

// MoveToIndex moves the cursor to index, clamped into the list
func (s *Service) MoveToIndex(index, total int) {
	if total <= 0 {
		s.Reset()
		return
	}
	s.state.Cursor = clampIndex(index, total)
	s.ensureVisible()
}

// Clamp keeps an existing cursor inside a list of total rows
func (s *Service) Clamp(total int) {
	if total <= 0 {
		s.Reset()
		return
	}
	if s.state.Cursor >= total {
		s.state.Cursor = total - 1
	}
	s.ensureVisible()
}

// Reset clears the cursor
func (s *Service) Reset() {
	s.state.Cursor = -1
	s.state.ViewportOffset = 0
}

func clampIndex(index, total int) int {
	if index < 0 {
		return 0
	}
	if index >= total {
		return total - 1
	}
	return index
}

func (s *Service) ensureVisible() {
	if s.state.Cursor < 0 {
		s.state.ViewportOffset = 0
		return
	}
	// Ensure cursor is visible within viewport
	if s.state.Cursor < s.state.ViewportOffset {
		s.state.ViewportOffset = s.state.Cursor
	} else if s.state.Cursor >= s.state.ViewportOffset+s.state.ViewportHeight {
		s.state.ViewportOffset = s.state.Cursor - s.state.ViewportHeight + 1
	}
}
