package presence

import (
	"sort"
	"sync"

	"github.com/iudanet/chipsync/internal/models"
)

// Set хранит участников комнаты, ключ - ID участника.
// Add с тем же ID перезаписывает запись, поэтому повторная регистрация идемпотентна.
type Set struct {
	elements map[string]models.Participant
	mu       sync.RWMutex
}

// NewSet creates a set filled with the given participants.
func NewSet(participants ...models.Participant) *Set {
	s := &Set{elements: make(map[string]models.Participant, len(participants))}
	for _, p := range participants {
		s.elements[p.ID] = p
	}
	return s
}

// Add inserts or overwrites a participant.
// Returns true if the set changed.
func (s *Set) Add(p models.Participant) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	existing, ok := s.elements[p.ID]
	s.elements[p.ID] = p
	return !ok || !same(existing, p)
}

// Remove deletes a participant. Returns true if it was present.
func (s *Set) Remove(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.elements[id]; !ok {
		return false
	}
	delete(s.elements, id)
	return true
}

// Get returns a participant by id.
func (s *Set) Get(id string) (models.Participant, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	p, ok := s.elements[id]
	return p, ok
}

// Contains reports whether the participant is present.
func (s *Set) Contains(id string) bool {
	_, ok := s.Get(id)
	return ok
}

// Size returns the number of participants.
func (s *Set) Size() int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return len(s.elements)
}

// Host returns the host participant if one is present.
func (s *Set) Host() (models.Participant, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, p := range s.elements {
		if p.IsHost {
			return p, true
		}
	}
	return models.Participant{}, false
}

// List returns participants ordered by join time, then id.
func (s *Set) List() []models.Participant {
	s.mu.RLock()
	list := make([]models.Participant, 0, len(s.elements))
	for _, p := range s.elements {
		list = append(list, p)
	}
	s.mu.RUnlock()

	Sort(list)
	return list
}

// Replace swaps the whole content for the given snapshot.
// Returns true if membership or any entry changed.
func (s *Set) Replace(participants []models.Participant) bool {
	next := make(map[string]models.Participant, len(participants))
	for _, p := range participants {
		next[p.ID] = p
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	changed := len(next) != len(s.elements)
	if !changed {
		for id, p := range next {
			if old, ok := s.elements[id]; !ok || !same(old, p) {
				changed = true
				break
			}
		}
	}
	s.elements = next
	return changed
}

// Sort orders participants by join time, then id.
func Sort(list []models.Participant) {
	sort.SliceStable(list, func(i, j int) bool {
		if !list[i].JoinedAt.Equal(list[j].JoinedAt) {
			return list[i].JoinedAt.Before(list[j].JoinedAt)
		}
		return list[i].ID < list[j].ID
	})
}

// Equal reports whether two snapshots describe the same membership.
func Equal(a, b []models.Participant) bool {
	if len(a) != len(b) {
		return false
	}
	return !NewSet(a...).Replace(b)
}

func same(a, b models.Participant) bool {
	return a.ID == b.ID &&
		a.RoomID == b.RoomID &&
		a.Name == b.Name &&
		a.DeviceID == b.DeviceID &&
		a.IsHost == b.IsHost &&
		a.JoinedAt.Equal(b.JoinedAt)
}
