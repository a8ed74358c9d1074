package due

import (
	"errors"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var base = time.Date(2025, 4, 18, 10, 30, 0, 0, time.Local) // a Friday

type stubParser struct {
	t   time.Time
	err error
}

func (s stubParser) Parse(string, time.Time) (time.Time, error) { return s.t, s.err }

func fixedNow() time.Time { return base }

func ptr(t time.Time) *time.Time { return &t }

func TestResolveEmpty(t *testing.T) {
	r := NewResolver(stubParser{err: errors.New("boom")}, fixedNow, zerolog.Nop())
	got, err := r.Resolve("   ")
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestResolveNormalizesToEndOfDay(t *testing.T) {
	r := NewResolver(stubParser{t: time.Date(2025, 4, 20, 8, 15, 3, 99, time.Local)}, fixedNow, zerolog.Nop())
	got, err := r.Resolve("sunday")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, time.Date(2025, 4, 20, 23, 59, 59, 0, time.Local), *got)
}

func TestResolveFailure(t *testing.T) {
	r := NewResolver(stubParser{err: errors.New("no date found")}, fixedNow, zerolog.Nop())
	got, err := r.Resolve("whenever")
	assert.Nil(t, got)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnparseable)

	var pe *ParseError
	require.ErrorAs(t, err, &pe)
	assert.Equal(t, "whenever", pe.Input)
}

func TestNaturalParser(t *testing.T) {
	r := NewResolver(NewNaturalParser(), fixedNow, zerolog.Nop())

	tests := []struct {
		in   string
		want time.Time
	}{
		{"2025-05-01", time.Date(2025, 5, 1, 23, 59, 59, 0, time.Local)},
		{"2025-05-01 09:00", time.Date(2025, 5, 1, 23, 59, 59, 0, time.Local)},
		{"tomorrow", time.Date(2025, 4, 19, 23, 59, 59, 0, time.Local)},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := r.Resolve(tt.in)
			require.NoError(t, err)
			require.NotNil(t, got)
			assert.Equal(t, tt.want, *got)
		})
	}

	_, err := r.Resolve("xyzzy plugh")
	assert.ErrorIs(t, err, ErrUnparseable)
}

func TestDescribe(t *testing.T) {
	tests := []struct {
		name string
		due  *time.Time
		want string
	}{
		{"absent", nil, "-"},
		{"later today", ptr(EndOfDay(base)), "Due today"},
		{"tomorrow", ptr(EndOfDay(base.AddDate(0, 0, 1))), "Due tomorrow"},
		{"in five days", ptr(EndOfDay(base.AddDate(0, 0, 5))), "Due in 5 days"},
		{"an hour ago", ptr(base.Add(-time.Hour)), "Overdue by 1 days"},
		{"yesterday", ptr(EndOfDay(base.AddDate(0, 0, -1))), "Overdue by 1 days"},
		{"three days ago", ptr(EndOfDay(base.AddDate(0, 0, -3))), "Overdue by 3 days"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Describe(tt.due, base))
		})
	}
}

func TestClassify(t *testing.T) {
	assert.Equal(t, NoDeadline, Classify(nil, base))
	assert.Equal(t, Overdue, Classify(ptr(base.Add(-time.Second)), base))
	assert.Equal(t, Soon, Classify(ptr(EndOfDay(base)), base))
	assert.Equal(t, Soon, Classify(ptr(base.Add(47*time.Hour)), base))
	assert.Equal(t, Normal, Classify(ptr(base.Add(48*time.Hour)), base))
	assert.Equal(t, "overdue", Overdue.String())
}

func TestSameDay(t *testing.T) {
	assert.True(t, SameDay(base, EndOfDay(base)))
	assert.False(t, SameDay(base, base.AddDate(0, 0, 1)))
}
