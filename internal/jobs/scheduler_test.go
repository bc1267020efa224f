package jobs

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type countingPurger struct {
	calls int
	err   error
}

func (p *countingPurger) PurgeSessions(context.Context) (int64, error) {
	p.calls++
	return 2, p.err
}

func TestNewScheduler_RejectsBadSpec(t *testing.T) {
	_, err := NewScheduler("every now and then", &countingPurger{})
	assert.Error(t, err)
}

func TestNewScheduler_AcceptsDescriptor(t *testing.T) {
	s, err := NewScheduler("@every 1h", &countingPurger{})
	require.NoError(t, err)
	s.Start()
	s.Stop(context.Background())
}

func TestPurgeSessions(t *testing.T) {
	p := &countingPurger{}
	purgeSessions(p)
	assert.Equal(t, 1, p.calls)

	p.err = errors.New("db down")
	purgeSessions(p)
	assert.Equal(t, 2, p.calls)
}
