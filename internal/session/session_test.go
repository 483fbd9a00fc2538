package session

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/taskdeck/taskdeck/internal/domain"
)

// countingCredStore records Clear calls.
type countingCredStore struct {
	mu     sync.Mutex
	clears int
}

func (c *countingCredStore) Load() (*domain.Credentials, error) { return nil, nil }
func (c *countingCredStore) Save(*domain.Credentials) error     { return nil }
func (c *countingCredStore) Clear() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.clears++
	return nil
}

func TestSession_Invalidate_Once(t *testing.T) {
	creddb := &countingCredStore{}
	s := New(domain.Credentials{Token: "tok", Username: "alice"}, creddb)
	teardowns := 0
	s.OnTeardown(func() { teardowns++ })

	require.True(t, s.Active())
	assert.True(t, s.Invalidate())
	assert.False(t, s.Invalidate())
	assert.False(t, s.Active())
	assert.Equal(t, 1, teardowns)
	assert.Equal(t, 1, creddb.clears)
}

func TestSession_Invalidate_Concurrent(t *testing.T) {
	// Many calls may observe an auth failure at once; teardown is still single.
	creddb := &countingCredStore{}
	s := New(domain.Credentials{Token: "tok"}, creddb)

	var mu sync.Mutex
	teardowns := 0
	s.OnTeardown(func() {
		mu.Lock()
		teardowns++
		mu.Unlock()
	})

	var wg sync.WaitGroup
	wins := make(chan bool, 32)
	for range 32 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			wins <- s.Invalidate()
		}()
	}
	wg.Wait()
	close(wins)

	won := 0
	for w := range wins {
		if w {
			won++
		}
	}
	assert.Equal(t, 1, won)
	assert.Equal(t, 1, teardowns)
	assert.Equal(t, 1, creddb.clears)
}

func TestSession_Accessors(t *testing.T) {
	s := New(domain.Credentials{Token: "tok", Username: "alice"}, nil)
	assert.Equal(t, "tok", s.Token())
	assert.Equal(t, "alice", s.Username())
	require.NotNil(t, s.Store())
	assert.Equal(t, 0, s.Store().Len())
}
