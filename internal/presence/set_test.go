package presence

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iudanet/chipsync/internal/models"
)

func participant(id, name string, isHost bool, joined time.Time) models.Participant {
	return models.Participant{ID: id, RoomID: "R1", Name: name, IsHost: isHost, JoinedAt: joined}
}

func TestSet_AddIsIdempotent(t *testing.T) {
	now := time.Now()
	s := NewSet()

	assert.True(t, s.Add(participant("p1", "Host", true, now)))
	assert.False(t, s.Add(participant("p1", "Host", true, now)), "same entry must not change the set")
	assert.Equal(t, 1, s.Size())

	// Повторная регистрация с новым именем перезаписывает запись
	assert.True(t, s.Add(participant("p1", "Host 2", true, now)))
	assert.Equal(t, 1, s.Size())

	p, ok := s.Get("p1")
	require.True(t, ok)
	assert.Equal(t, "Host 2", p.Name)
}

func TestSet_Remove(t *testing.T) {
	now := time.Now()
	s := NewSet(participant("p1", "Host", true, now), participant("p2", "Alice", false, now))

	assert.True(t, s.Remove("p1"))
	assert.False(t, s.Remove("p1"))
	assert.False(t, s.Contains("p1"))
	assert.True(t, s.Contains("p2"))

	// Хост ушел - роль никому не передается
	_, ok := s.Host()
	assert.False(t, ok)
	p, _ := s.Get("p2")
	assert.False(t, p.IsHost)
}

func TestSet_List_OrderedByJoinTime(t *testing.T) {
	base := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	s := NewSet(
		participant("c", "Carol", false, base.Add(2*time.Second)),
		participant("a", "Host", true, base),
		participant("b2", "Bob", false, base.Add(time.Second)),
		participant("b1", "Ben", false, base.Add(time.Second)),
	)

	list := s.List()
	require.Len(t, list, 4)
	assert.Equal(t, []string{"a", "b1", "b2", "c"}, []string{list[0].ID, list[1].ID, list[2].ID, list[3].ID})

	host, ok := s.Host()
	require.True(t, ok)
	assert.Equal(t, "a", host.ID)
}

func TestSet_Replace(t *testing.T) {
	now := time.Now()
	s := NewSet(participant("p1", "Host", true, now))

	assert.False(t, s.Replace([]models.Participant{participant("p1", "Host", true, now)}))
	assert.True(t, s.Replace([]models.Participant{
		participant("p1", "Host", true, now),
		participant("p2", "Alice", false, now),
	}))
	assert.Equal(t, 2, s.Size())

	assert.True(t, s.Replace(nil))
	assert.Equal(t, 0, s.Size())
}

func TestEqual(t *testing.T) {
	now := time.Now()
	a := []models.Participant{participant("p1", "Host", true, now), participant("p2", "Alice", false, now)}
	b := []models.Participant{participant("p2", "Alice", false, now), participant("p1", "Host", true, now)}

	assert.True(t, Equal(a, b))
	assert.True(t, Equal(nil, nil))
	assert.False(t, Equal(a, a[:1]))

	// Одно и то же время в разных локациях считается равным
	c := []models.Participant{participant("p1", "Host", true, now.UTC())}
	assert.True(t, Equal(a[:1], c))
}

func TestSet_Concurrent(t *testing.T) {
	s := NewSet()
	now := time.Now()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			s.Add(participant("p1", "Host", true, now))
			_ = s.List()
		}()
	}
	wg.Wait()

	assert.Equal(t, 1, s.Size())
}
