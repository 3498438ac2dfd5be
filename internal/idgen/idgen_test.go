package idgen

import (
	"testing"
	"time"

	"github.com/oklog/ulid/v2"
	"github.com/rs/xid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fixedClock(t time.Time) func() time.Time {
	return func() time.Time { return t }
}

func TestNew(t *testing.T) {
	for _, name := range []string{NameULID, NameXID, NameSequence, NameClock} {
		t.Run(name, func(t *testing.T) {
			s, err := New(name)
			require.NoError(t, err)
			assert.NotEmpty(t, s.NextID())
		})
	}

	_, err := New("uuid")
	assert.Error(t, err)
}

func TestULID(t *testing.T) {
	now := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	u := NewULID(fixedClock(now))

	prev := u.NextID()
	parsed, err := ulid.Parse(prev)
	require.NoError(t, err)
	assert.Equal(t, ulid.Timestamp(now), parsed.Time())

	// Same millisecond, still strictly increasing.
	for i := 0; i < 100; i++ {
		id := u.NextID()
		assert.Greater(t, id, prev)
		prev = id
	}
}

func TestXID(t *testing.T) {
	s := NewXID()
	a, b := s.NextID(), s.NextID()
	assert.NotEqual(t, a, b)

	_, err := xid.FromString(a)
	assert.NoError(t, err)
}

func TestSequence(t *testing.T) {
	s := NewSequence("A-")
	assert.Equal(t, "A-1", s.NextID())
	assert.Equal(t, "A-2", s.NextID())
	assert.Equal(t, "A-3", s.NextID())
}

func TestClock(t *testing.T) {
	tests := []struct {
		name string
		at   time.Time
		want string
	}{
		{"padded", time.Unix(0, 42*int64(time.Millisecond)), "000042"},
		{"wraps at a million", time.Unix(1000, 123*int64(time.Millisecond)), "000123"},
		{"six digits", time.Unix(1704067200, 987*int64(time.Millisecond)), "200987"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := NewClock(fixedClock(tt.at))
			assert.Equal(t, tt.want, c.NextID())
			assert.Equal(t, tt.want, c.NextID())
		})
	}
}
