package checkout

import "time"

const (
	DefaultPollInterval = 3 * time.Second
	DefaultPollTimeout  = 2 * time.Minute
)

// PollPolicy bounds how long a pending receipt is re-checked.
type PollPolicy struct {
	Interval time.Duration
	Timeout  time.Duration
}

func DefaultPollPolicy() PollPolicy {
	return PollPolicy{Interval: DefaultPollInterval, Timeout: DefaultPollTimeout}
}

// PollDecision is either GiveUp or a wait of RetryAfter before re-fetching
// orders and classifying again.
type PollDecision struct {
	GiveUp     bool
	RetryAfter time.Duration
}

// Decide gives up once Timeout has elapsed since initialTime.
func (p PollPolicy) Decide(initialTime, now time.Time) PollDecision {
	policy := p.withDefaults()
	if now.Sub(initialTime) >= policy.Timeout {
		return PollDecision{GiveUp: true}
	}
	return PollDecision{RetryAfter: policy.Interval}
}

// PollPending applies the default policy: every 3 seconds for up to 2 minutes.
func PollPending(initialTime, now time.Time) PollDecision {
	return DefaultPollPolicy().Decide(initialTime, now)
}

func (p PollPolicy) withDefaults() PollPolicy {
	if p.Interval <= 0 {
		p.Interval = DefaultPollInterval
	}
	if p.Timeout <= 0 {
		p.Timeout = DefaultPollTimeout
	}
	return p
}
