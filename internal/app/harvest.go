package app

import (
	"context"
	"time"

	"github.com/rs/zerolog/log"

	"gmaps_reviews/internal/adapters/observability"
	"gmaps_reviews/internal/domain"
)

// Harvester drives a lazily rendered list until enough items are loaded
// or the list stops producing. A single nudge does not guarantee new
// items appear, so transient stalls are tolerated; after EscalateAfter
// consecutive stalls the heavy nudge kicks in, and after GiveUpAfter the
// loop returns whatever loaded. The returned count is a lower bound on
// available items, never an exact total.
type Harvester struct {
	Source        domain.ItemSource
	EscalateAfter int           // consecutive stalls before Escalate fires
	GiveUpAfter   int           // consecutive stalls before returning partial
	Settle        time.Duration // wait after observed growth
	StallWait     time.Duration // wait after a stalled nudge

	// Sleep is swappable in tests; nil means a context-aware sleep.
	Sleep func(ctx context.Context, d time.Duration) bool
}

func NewHarvester(src domain.ItemSource, escalateAfter, giveUpAfter int, settle time.Duration) *Harvester {
	if escalateAfter <= 0 {
		escalateAfter = 3
	}
	if giveUpAfter <= 0 {
		giveUpAfter = 10
	}
	if settle <= 0 {
		settle = 1500 * time.Millisecond
	}
	return &Harvester{
		Source:        src,
		EscalateAfter: escalateAfter,
		GiveUpAfter:   giveUpAfter,
		Settle:        settle,
		StallWait:     2 * time.Second,
	}
}

// Harvest loads items until at least target+extraBuffer are present,
// returning the loaded count. Exhaustion (the give-up ceiling) is not an
// error; capability faults and context cancellation are.
func (h *Harvester) Harvest(ctx context.Context, target, extraBuffer int) (int, error) {
	want := target + extraBuffer
	last := 0
	stalls := 0

	for {
		cur, err := h.Source.Count(ctx)
		if err != nil {
			return last, err
		}
		if cur >= want {
			return cur, nil
		}

		if cur == last {
			stalls++
			observability.ObserveStall("stall")
			if err := h.Source.Nudge(ctx); err != nil {
				return cur, err
			}
			if !h.wait(ctx, h.StallWait) {
				return cur, ctx.Err()
			}

			if stalls > h.EscalateAfter {
				observability.ObserveStall("escalate")
				if err := h.Source.Escalate(ctx); err != nil {
					return cur, err
				}
				if !h.wait(ctx, h.StallWait) {
					return cur, ctx.Err()
				}
			}
			if stalls > h.GiveUpAfter {
				observability.ObserveStall("give_up")
				log.Debug().Int("loaded", cur).Int("target", want).Msg("list exhausted, keeping partial result")
				return cur, nil
			}
			continue
		}

		stalls = 0
		last = cur
		if err := h.Source.Nudge(ctx); err != nil {
			return cur, err
		}
		if !h.wait(ctx, h.Settle) {
			return cur, ctx.Err()
		}
	}
}

func (h *Harvester) wait(ctx context.Context, d time.Duration) bool {
	if h.Sleep != nil {
		return h.Sleep(ctx, d)
	}
	return sleepCtx(ctx, d)
}

// sleepCtx waits for d or returns early if ctx is done.
func sleepCtx(ctx context.Context, d time.Duration) bool {
	if d <= 0 {
		return true
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return false
	case <-t.C:
		return true
	}
}
