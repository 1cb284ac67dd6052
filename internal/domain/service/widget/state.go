package widget

type State string

const (
	StateIdle            State = "idle"
	StateCommentEditing  State = "comment_editing"
	StateSubmitting      State = "submitting"
	StateSubmitted       State = "submitted"
	StateAutoSubmitting  State = "auto_submitting"
	StateCountdownActive State = "countdown_active"
	StateRedirected      State = "redirected"
	StateError           State = "error"
	StateClosed          State = "closed"
)

func (s State) String() string {
	return string(s)
}

// selectable оценку можно менять только до первой записи.
func (s State) selectable() bool {
	return s == StateIdle || s == StateCommentEditing
}

// ratingLocked после записи 5 звёзд выбор оценки заблокирован.
func (s State) ratingLocked() bool {
	switch s {
	case StateAutoSubmitting, StateCountdownActive, StateRedirected:
		return true
	default:
		return false
	}
}
