package worker

import (
	"slices"
	"sync"

	"feedback_widget/internal/domain/value"
)

// MuteList организации, алерты по которым временно не отправляются. Живёт в
// памяти процесса и сбрасывается при рестарте.
type MuteList struct {
	mu  sync.Mutex
	ids []value.OrganizationID
}

func NewMuteList() *MuteList {
	return &MuteList{}
}

// Add добавляет организацию, если её ещё нет. Возвращает false для дубликата.
func (l *MuteList) Add(id value.OrganizationID) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	if slices.Contains(l.ids, id) {
		return false
	}

	l.ids = append(l.ids, id)

	return true
}

// Remove убирает организацию из списка, сохраняя порядок.
func (l *MuteList) Remove(id value.OrganizationID) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	i := slices.Index(l.ids, id)
	if i < 0 {
		return false
	}

	l.ids = slices.Delete(l.ids, i, i+1)

	return true
}

// List возвращает копию списка.
func (l *MuteList) List() []value.OrganizationID {
	l.mu.Lock()
	defer l.mu.Unlock()

	return slices.Clone(l.ids)
}

func (l *MuteList) Clear() {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.ids = nil
}

func (l *MuteList) Has(id value.OrganizationID) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	return slices.Contains(l.ids, id)
}
