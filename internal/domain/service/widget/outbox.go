package widget

import "sync"

// Outbox хранит адрес перехода, пока страница виджета его не заберёт.
// Адрес отдаётся ровно один раз.
type Outbox struct {
	mu      sync.Mutex
	url     string
	pending bool
}

func NewOutbox() *Outbox {
	return &Outbox{}
}

func (o *Outbox) Navigate(url string) {
	o.mu.Lock()
	defer o.mu.Unlock()

	o.url = url
	o.pending = true
}

func (o *Outbox) Take() (string, bool) {
	o.mu.Lock()
	defer o.mu.Unlock()

	if !o.pending {
		return "", false
	}

	o.pending = false

	return o.url, true
}
