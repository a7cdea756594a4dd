package world

import "time"

const DefaultFireCooldown = 100 * time.Millisecond

// FireLatch gates the fire action so one press is not read as a burst. It is
// level-triggered: holding fire re-fires every time the cooldown runs out.
type FireLatch struct {
	Cooldown time.Duration
	latched  *time.Duration
}

func NewFireLatch(cooldown time.Duration) *FireLatch {
	return &FireLatch{Cooldown: cooldown}
}

// Update clears the latch once more than Cooldown has passed since it was set.
func (l *FireLatch) Update(now time.Duration) {
	if l.latched != nil && now-*l.latched > l.Cooldown {
		l.latched = nil
	}
}

func (l *FireLatch) TryFire(now time.Duration) bool {
	l.Update(now)
	if l.latched != nil {
		return false
	}
	l.latched = &now
	return true
}

func (l *FireLatch) Latched() bool {
	return l.latched != nil
}
