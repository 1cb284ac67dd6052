package widget

import "feedback_widget/internal/domain/value"

// View неизменяемый снимок сессии для отрисовки.
type View struct {
	SessionID        value.SessionID
	OrganizationID   value.OrganizationID
	LocationID       value.LocationID
	OrganizationName string
	State            State
	Rating           value.Rating
	HoveredRating    value.Rating
	Comment          value.Comment
	Countdown        int
	Submitting       bool
	Submitted        bool
	ErrorMessage     string
	Retryable        bool
	ReviewURL        string
}

// InvalidLinkView показывается вместо виджета, если в ссылке нет
// идентификаторов. Сессия при этом не создаётся.
func InvalidLinkView() View {
	return View{
		State:        StateError,
		ErrorMessage: MessageInvalidLink,
	}
}

func (s *Session) View() View {
	s.mu.Lock()
	defer s.mu.Unlock()

	view := View{
		SessionID:        s.id,
		OrganizationID:   s.link.OrganizationID,
		LocationID:       s.link.LocationID,
		OrganizationName: s.organizationName,
		State:            s.state,
		Rating:           s.rating,
		HoveredRating:    s.hovered,
		Comment:          s.comment,
		Countdown:        s.countdown,
		Submitting:       s.state == StateSubmitting || s.state == StateAutoSubmitting,
		Submitted:        s.submitted,
		ErrorMessage:     s.message,
		Retryable:        s.retryable,
	}

	if s.state == StateCountdownActive || s.state == StateRedirected {
		view.ReviewURL = s.reviewURL
	}

	return view
}

// Title заголовок виджета; без имени организации используется общий.
func (v View) Title() string {
	if v.OrganizationName == "" {
		return "How was your visit?"
	}

	return "How was your visit to " + v.OrganizationName + "?"
}

// Highlighted подсвечена ли звезда n: по hover, иначе по выбранной оценке.
func (v View) Highlighted(n int) bool {
	if v.HoveredRating != value.NoRating {
		return n <= v.HoveredRating.Int()
	}

	return n <= v.Rating.Int()
}

func (v View) SelectorEnabled() bool {
	return v.State.selectable()
}

func (v View) ShowCommentForm() bool {
	return v.State == StateCommentEditing || v.State == StateSubmitting || (v.State == StateError && v.Retryable)
}

func (v View) ShowCountdown() bool {
	return v.State == StateCountdownActive
}
