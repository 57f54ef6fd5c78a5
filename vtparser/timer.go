package vtparser

import "time"

// WatchdogTimeout is the five-second resync watchdog: a DCS, OSC,
// APC, or rename-window string state that receives no bytes for this long is
// discarded and the parser returns to ground.
const WatchdogTimeout = 5 * time.Second

// armTimer starts the watchdog for a newly entered string state. A
// Collaborators.Timer is optional; without one the watchdog is simply not
// enforced (useful in tests that feed complete sequences synchronously).
func (c *Ctx) armTimer() {
	if c.col.Timer == nil {
		return
	}
	c.timerArmed = true
	c.col.Timer.Arm(c.onWatchdogExpire)
}

func (c *Ctx) disarmTimer() {
	if c.col.Timer == nil {
		return
	}
	if c.timerArmed {
		c.col.Timer.Disarm()
		c.timerArmed = false
	}
}

// onWatchdogExpire is the cooperative reset scheduled by the timer
// collaborator: discard the in-flight sequence and return to ground. This is
// the only non-input source of state change.
func (c *Ctx) onWatchdogExpire() {
	if c.state == StateGround {
		return
	}
	c.logUnknown("vtparser: watchdog expired in state %s, discarding sequence", c.state)
	c.discard = true
	c.setState(StateGround)
}
