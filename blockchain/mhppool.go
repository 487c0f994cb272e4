// Copyright (c) 2025-present The OpenSY developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package blockchain

import (
	"sync"
	"time"

	"github.com/opensyria/opensy/chaincfg/chainhash"
	"github.com/opensyria/opensy/randomx"
)

// AcquisitionPriority orders competing callers of MHPContextPool.Acquire.
// A caller validating a block about to extend the best chain is
// CONSENSUS_CRITICAL and must never be starved by bulk work such as
// mempool prevalidation or mining.
type AcquisitionPriority int

const (
	// PriorityNormal is the default priority: mempool acceptance,
	// mining, and any other work that can tolerate being starved by
	// more urgent callers.
	PriorityNormal AcquisitionPriority = iota

	// PriorityHigh is used for work that should generally win over
	// PriorityNormal callers but can still wait behind consensus-critical
	// validation.
	PriorityHigh

	// PriorityConsensusCritical is used for block validation on the
	// path to extending or reorganizing the best chain.  Acquire never
	// times out at this priority.
	PriorityConsensusCritical
)

// Default per-priority acquisition timeouts, matching the reference pool's
// ACQUIRE_TIMEOUT and HIGH_PRIORITY_TIMEOUT constants.  PriorityConsensusCritical
// has no timeout: a consensus-critical caller waits until a context frees
// up, however long that takes.
const (
	normalAcquireTimeout = 30 * time.Second
	highAcquireTimeout   = 120 * time.Second
)

// DefaultMaxContexts is the default upper bound on simultaneously allocated
// RandomX contexts.  Each context pins a RandomX cache and VM in memory,
// so this bounds the pool's worst-case memory footprint rather
// than being an arbitrary concurrency knob.
const DefaultMaxContexts = 8

// poolEntry is one slot in the pool: a RandomX context currently keyed for
// keyHash, or never yet used.
type poolEntry struct {
	ctx      mhpHasher
	keyHash  chainhash.Hash
	hasKey   bool
	lastUsed time.Time
	inUse    bool
}

// PoolStats is a snapshot of MHPContextPool's counters, field-for-field
// matching the reference pool's PoolStats so that operators familiar with
// either can read the other.
type PoolStats struct {
	TotalContexts              int
	ActiveContexts             int
	AvailableContexts          int
	TotalAcquisitions          uint64
	TotalWaits                 uint64
	TotalTimeouts              uint64
	KeyReinitializations       uint64
	ConsensusCriticalAcquisitions uint64
	HighPriorityAcquisitions   uint64
	PriorityPreemptions        uint64
}

// MHPContextPool bounds and multiplexes access to a small number of
// RandomX contexts, each of which is expensive enough to initialize (a
// RandomX cache keyed from a block hash) that a node must share a handful of them across mempool
// validation, mining, and consensus-critical block validation rather than
// allocating one per caller.
//
// Acquire blocks until a context keyed for the requested key block hash is
// available, creating or rekeying one if the pool has spare capacity or an
// idle entry to evict.  Every successful Acquire must be matched with
// exactly one Guard.Release.
type MHPContextPool struct {
	mu         sync.Mutex
	cond       *sync.Cond
	flags      randomx.Flag
	entries    []*poolEntry
	maxContexts int

	waitingConsensusCritical int
	waitingHigh              int
	waitingNormal            int

	stats PoolStats
}

// NewMHPContextPool returns a pool that allocates RandomX contexts with
// flags, bounded to DefaultMaxContexts simultaneous contexts.
func NewMHPContextPool(flags randomx.Flag) *MHPContextPool {
	p := &MHPContextPool{
		flags:       flags,
		maxContexts: DefaultMaxContexts,
	}
	p.cond = sync.NewCond(&p.mu)
	return p
}

// SetMaxContexts changes the pool's context ceiling.  It refuses to shrink
// the pool below the number of contexts currently in use, returning false
// in that case, matching the reference pool's refusal to silently strand
// in-flight callers.
func (p *MHPContextPool) SetMaxContexts(max int) bool {
	p.mu.Lock()
	defer p.mu.Unlock()

	active := 0
	for _, e := range p.entries {
		if e.inUse {
			active++
		}
	}
	if max < active {
		return false
	}
	p.maxContexts = max
	p.cond.Broadcast()
	return true
}

// Guard represents a leased RandomX context.  It must be released by
// calling Release exactly once; there is no finalizer safety net, since a
// missed Release is a programming error that should fail loudly in tests
// rather than be silently papered over.
type Guard struct {
	pool  *MHPContextPool
	index int
	ctx   mhpHasher
}

// Context returns the leased RandomX context.  It is only valid until
// Release is called.
func (g *Guard) Context() mhpHasher {
	return g.ctx
}

// Release returns the leased context to the pool, making it available for
// the next waiting Acquire call.
func (g *Guard) Release() {
	g.pool.release(g.index)
}

// Acquire leases a RandomX context initialized for keyBlockHash, blocking
// until one becomes available or, for PriorityNormal and PriorityHigh,
// until that priority's timeout elapses.  It returns ok == false on
// timeout; PriorityConsensusCritical callers are never subject to a
// timeout and always receive a Guard.
//
// A waiter never claims a slot that just became available while a
// strictly higher-priority waiter is also pending: it yields back to the
// wait queue instead, so that CONSENSUS_CRITICAL is never starved by
// NORMAL or HIGH callers, and HIGH is never starved by NORMAL.
func (p *MHPContextPool) Acquire(keyBlockHash chainhash.Hash, priority AcquisitionPriority) (*Guard, bool) {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.stats.TotalAcquisitions++
	switch priority {
	case PriorityConsensusCritical:
		p.stats.ConsensusCriticalAcquisitions++
	case PriorityHigh:
		p.stats.HighPriorityAcquisitions++
	}

	deadline, hasDeadline := p.deadlineFor(priority)

	waited := false
	for {
		if p.mustYieldLocked(priority) {
			if p.hasAvailableSlotLocked() {
				p.stats.PriorityPreemptions++
			}
		} else if idx := p.findOrCreateLocked(keyBlockHash); idx >= 0 {
			e := p.entries[idx]
			e.inUse = true
			e.lastUsed = time.Now()
			p.adjustWaitingLocked(priority, -1, waited)
			return &Guard{pool: p, index: idx, ctx: e.ctx}, true
		}

		if !waited {
			p.adjustWaitingLocked(priority, 1, false)
			p.stats.TotalWaits++
			waited = true
		}

		if hasDeadline {
			remaining := time.Until(deadline)
			if remaining <= 0 {
				p.adjustWaitingLocked(priority, -1, waited)
				p.stats.TotalTimeouts++
				return nil, false
			}
			p.waitWithTimeoutLocked(remaining)
		} else {
			p.cond.Wait()
		}
	}
}

// mustYieldLocked reports whether a waiter at priority must defer a freed
// or grow-able slot to a strictly higher-priority waiter rather than claim
// it itself: CONSENSUS_CRITICAL never yields, HIGH yields to a pending
// CONSENSUS_CRITICAL waiter, and NORMAL yields to either. Must be called
// with p.mu held.
func (p *MHPContextPool) mustYieldLocked(priority AcquisitionPriority) bool {
	switch priority {
	case PriorityConsensusCritical:
		return false
	case PriorityHigh:
		return p.waitingConsensusCritical > 0
	default:
		return p.waitingConsensusCritical > 0 || p.waitingHigh > 0
	}
}

// hasAvailableSlotLocked reports whether Acquire could satisfy a request
// right now, either by reusing an idle entry or by growing the pool under
// its cap, without actually allocating or rekeying anything. It exists
// solely so a yielding waiter can tell a genuine preemption (a slot it
// could have taken went to a higher-priority waiter instead) from merely
// finding the pool still busy. Must be called with p.mu held.
func (p *MHPContextPool) hasAvailableSlotLocked() bool {
	if len(p.entries) < p.maxContexts {
		return true
	}
	for _, e := range p.entries {
		if !e.inUse {
			return true
		}
	}
	return false
}

// deadlineFor returns the absolute deadline for priority, and whether that
// deadline applies at all (it never does for PriorityConsensusCritical).
func (p *MHPContextPool) deadlineFor(priority AcquisitionPriority) (time.Time, bool) {
	switch priority {
	case PriorityHigh:
		return time.Now().Add(highAcquireTimeout), true
	case PriorityConsensusCritical:
		return time.Time{}, false
	default:
		return time.Now().Add(normalAcquireTimeout), true
	}
}

// adjustWaitingLocked updates the per-priority waiting counters.  It must
// be called with p.mu held.
func (p *MHPContextPool) adjustWaitingLocked(priority AcquisitionPriority, delta int, wasWaiting bool) {
	if !wasWaiting && delta < 0 {
		return
	}
	switch priority {
	case PriorityConsensusCritical:
		p.waitingConsensusCritical += delta
	case PriorityHigh:
		p.waitingHigh += delta
	default:
		p.waitingNormal += delta
	}
}

// waitWithTimeoutLocked waits on p.cond for at most d, re-acquiring p.mu
// before returning either way.  sync.Cond has no native timeout, so a
// timer goroutine performs a spurious Broadcast at the deadline; Acquire's
// outer loop re-checks both the predicate and the deadline on every wake.
func (p *MHPContextPool) waitWithTimeoutLocked(d time.Duration) {
	timer := time.AfterFunc(d, func() {
		p.mu.Lock()
		p.cond.Broadcast()
		p.mu.Unlock()
	})
	p.cond.Wait()
	timer.Stop()
}

// findOrCreateLocked returns the index of an available entry keyed for
// keyBlockHash, creating a new entry if the pool has spare capacity,
// reusing an existing idle entry already keyed correctly, or evicting the
// least recently used idle entry if the pool is at capacity.  It returns
// -1 if no entry is available right now.  Must be called with p.mu held.
func (p *MHPContextPool) findOrCreateLocked(keyBlockHash chainhash.Hash) int {
	// Prefer an idle entry already keyed correctly: no reinitialization
	// needed.
	for i, e := range p.entries {
		if !e.inUse && e.hasKey && e.keyHash == keyBlockHash {
			return i
		}
	}

	// Grow the pool if under the cap.
	if len(p.entries) < p.maxContexts {
		ctx, err := newMHPContext(p.flags)
		if err != nil {
			poolLog.Errorf("mhp pool: failed to allocate context: %v", err)
			return -1
		}
		if err := ctx.InitCache(keyBlockHash[:]); err != nil {
			poolLog.Errorf("mhp pool: failed to init cache: %v", err)
			return -1
		}
		p.entries = append(p.entries, &poolEntry{
			ctx:      ctx,
			keyHash:  keyBlockHash,
			hasKey:   true,
			lastUsed: time.Now(),
		})
		p.stats.TotalContexts = len(p.entries)
		p.stats.KeyReinitializations++
		return len(p.entries) - 1
	}

	// Evict the least recently used idle entry and rekey it.
	lru := -1
	for i, e := range p.entries {
		if e.inUse {
			continue
		}
		if lru == -1 || e.lastUsed.Before(p.entries[lru].lastUsed) {
			lru = i
		}
	}
	if lru == -1 {
		return -1
	}
	e := p.entries[lru]
	if err := e.ctx.InitCache(keyBlockHash[:]); err != nil {
		poolLog.Errorf("mhp pool: failed to rekey context: %v", err)
		return -1
	}
	e.keyHash = keyBlockHash
	e.hasKey = true
	p.stats.KeyReinitializations++
	return lru
}

// release marks the entry at index idle and wakes any waiting Acquire
// callers. It does not decide which woken waiter gets the slot: every
// waiter re-checks mustYieldLocked after reacquiring p.mu, so a
// CONSENSUS_CRITICAL waiter claims it ahead of any NORMAL or HIGH waiter
// still pending, no matter which goroutine Broadcast happens to wake
// first.
func (p *MHPContextPool) release(idx int) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if idx < 0 || idx >= len(p.entries) {
		return
	}
	e := p.entries[idx]
	e.inUse = false
	e.lastUsed = time.Now()
	p.cond.Broadcast()
}

// Stats returns a snapshot of the pool's counters.
func (p *MHPContextPool) Stats() PoolStats {
	p.mu.Lock()
	defer p.mu.Unlock()

	active, available := 0, 0
	for _, e := range p.entries {
		if e.inUse {
			active++
		} else {
			available++
		}
	}

	s := p.stats
	s.TotalContexts = len(p.entries)
	s.ActiveContexts = active
	s.AvailableContexts = available
	return s
}

// Close releases every context held by the pool.  The pool must not be
// used after Close.
func (p *MHPContextPool) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()

	for _, e := range p.entries {
		e.ctx.Close()
	}
	p.entries = nil
}
