package event

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type recorder struct {
	got []Event
}

func (r *recorder) OnEvent(e Event) {
	r.got = append(r.got, e)
}

func TestDispatchReachesSubscribers(t *testing.T) {
	d := NewDispatcher()
	a, b := &recorder{}, &recorder{}
	d.Subscribe(a, EnemyKilled, PlayerDied)
	d.Subscribe(b, PlayerDied)

	d.Emit(EnemyKilled, EnemyKilledData{EnemyID: 7, Reward: 15.6})
	d.Emit(PlayerDied, PlayerDiedData{Level: 3})
	d.Emit(WeaponFired, nil)

	assert.Len(t, a.got, 2)
	assert.Len(t, b.got, 1)
	assert.Equal(t, EnemyKilledData{EnemyID: 7, Reward: 15.6}, a.got[0].Data)
	assert.Equal(t, PlayerDied, b.got[0].Type)
}

func TestUnsubscribe(t *testing.T) {
	d := NewDispatcher()
	a, b := &recorder{}, &recorder{}
	d.Subscribe(a, ButtonClicked)
	d.Subscribe(b, ButtonClicked)

	d.Unsubscribe(ButtonClicked, a)
	d.Emit(ButtonClicked, nil)

	assert.Empty(t, a.got)
	assert.Len(t, b.got, 1)
}

func TestNilDispatcherIsSilent(t *testing.T) {
	var d *Dispatcher
	assert.NotPanics(t, func() {
		d.Emit(PlayerDied, nil)
	})
}
