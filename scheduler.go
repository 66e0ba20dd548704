package patchwork

import (
	"context"
	"time"
)

// Scheduler drives ticks on a fixed period.
//
// Ticks run one at a time on the goroutine calling [Scheduler.Run]. If a tick
// takes longer than Period, the ticker drops the ticks that would have fired
// in the meantime; they are not queued up and replayed.
type Scheduler struct {
	// Period is the time between two ticks. It must be positive.
	Period time.Duration
	// Step runs one tick. It returns false if the tick was dropped because
	// another tick was already in flight.
	Step func() (Result, bool)
	// MaxTicks stops the scheduler after this many ticks have run. Zero means
	// no limit. Dropped ticks do not count.
	MaxTicks uint64
	// StallLimit stops the scheduler after this many consecutive ticks that
	// extracted nothing without the cloud being exhausted. Zero means no
	// limit.
	StallLimit int
	// StopWhenExhausted stops the scheduler on the first exhausted tick.
	// Otherwise exhausted ticks keep running as no-ops until ctx is done.
	StopWhenExhausted bool
	// OnTick, if not nil, is called after every tick that ran.
	OnTick func(Result)
	// Logf, if not nil, receives a line when the scheduler stops on its own.
	Logf func(format string, args ...any)
}

// Run ticks until one of the stop conditions is met. It returns ctx.Err() if
// ctx is done first, and nil otherwise.
func (s *Scheduler) Run(ctx context.Context) error {
	if s.Period <= 0 {
		return &ConfigError{"tick period", s.Period, "must be positive"}
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	t := time.NewTicker(s.Period)
	defer t.Stop()

	var (
		ticks uint64
		stall int
	)
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-t.C:
			res, ok := s.Step()
			if !ok {
				continue
			}
			ticks++
			if s.OnTick != nil {
				s.OnTick(res)
			}

			switch res.Outcome {
			case Extracted:
				stall = 0
			case Exhausted:
				if s.StopWhenExhausted {
					s.logf("cloud exhausted after %d ticks, %d points left", ticks, res.Remaining)
					return nil
				}
			default:
				stall++
				if s.StallLimit > 0 && stall >= s.StallLimit {
					s.logf("stalled after %d ticks without a patch, %d points left", stall, res.Remaining)
					return nil
				}
			}
			if s.MaxTicks > 0 && ticks >= s.MaxTicks {
				s.logf("stopped after %d ticks", ticks)
				return nil
			}
		}
	}
}

func (s *Scheduler) logf(format string, args ...any) {
	if s.Logf != nil {
		s.Logf(format, args...)
	}
}
