// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package model

import (
	"log/slog"
	"slices"
	"sync"
)

// MaxDeliveryRounds is the maximum number of rounds that [Hub.Deliver]
// runs when subscribers keep mutating observed values while handling
// records. Records still pending after that are left for the next call.
var MaxDeliveryRounds = 100

// Hub collects the change [Record]s produced by mutations of the
// [Object]s and [Array]s it owns, and delivers them in batches to
// the subscribers of each target when [Hub.Deliver] is called.
// Records for a given target are delivered in the order in which
// the mutations happened; the order across targets is the order in
// which each target first had a pending record.
//
// Mutations may happen on any goroutine, but Deliver must be driven
// from a single goroutine; subscriber functions run without the hub
// lock held, so they can freely mutate observed values.
type Hub struct {
	mu      sync.Mutex
	pending map[Observable][]Record
	order   []Observable
	subs    map[Observable][]*Subscription

	// after are the functions to call at the end of the next Deliver.
	after []func()
}

// NewHub returns a new empty [Hub].
func NewHub() *Hub {
	return &Hub{
		pending: map[Observable][]Record{},
		subs:    map[Observable][]*Subscription{},
	}
}

// Subscription is the handle of a subscriber function registered
// with [Hub.Subscribe]. It is disposed with [Subscription.Unsubscribe].
type Subscription struct {
	hub    *Hub
	target Observable
	fun    func(records []Record)
	active bool
}

// Target returns the value the subscription observes.
func (s *Subscription) Target() Observable {
	return s.target
}

// Active returns whether the subscription has not been unsubscribed.
func (s *Subscription) Active() bool {
	s.hub.mu.Lock()
	defer s.hub.mu.Unlock()
	return s.active
}

// Unsubscribe removes the subscription from its hub. Records that are
// pending or being delivered are not delivered to it anymore.
// It is safe to call more than once.
func (s *Subscription) Unsubscribe() {
	h := s.hub
	h.mu.Lock()
	defer h.mu.Unlock()
	if !s.active {
		return
	}
	s.active = false
	subs := slices.DeleteFunc(h.subs[s.target], func(o *Subscription) bool { return o == s })
	if len(subs) == 0 {
		delete(h.subs, s.target)
	} else {
		h.subs[s.target] = subs
	}
}

// Subscribe registers the given function to be called with each batch
// of change records of the given target.
func (h *Hub) Subscribe(target Observable, fun func(records []Record)) *Subscription {
	s := &Subscription{hub: h, target: target, fun: fun, active: true}
	h.mu.Lock()
	h.subs[target] = append(h.subs[target], s)
	h.mu.Unlock()
	return s
}

// NumSubscriptions returns the number of active subscriptions on
// the given target.
func (h *Hub) NumSubscriptions(target Observable) int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.subs[target])
}

// Pending returns whether there are records waiting to be delivered.
func (h *Hub) Pending() bool {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.order) > 0
}

// notify queues the given record for delivery. Records of targets
// without subscribers are dropped.
func (h *Hub) notify(r Record) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if len(h.subs[r.Target]) == 0 {
		return
	}
	if _, has := h.pending[r.Target]; !has {
		h.order = append(h.order, r.Target)
	}
	h.pending[r.Target] = append(h.pending[r.Target], r)
}

// AfterDeliver registers the given function to be called once at the
// end of the next call to [Hub.Deliver], after all of its rounds,
// even if there is nothing to deliver.
func (h *Hub) AfterDeliver(fun func()) {
	h.mu.Lock()
	h.after = append(h.after, fun)
	h.mu.Unlock()
}

// Deliver delivers all pending records to the subscribers of their
// targets, one batch per target and subscriber. Records produced by
// subscribers while delivering are delivered in further rounds, until
// there are none left or [MaxDeliveryRounds] is reached. Then the
// functions registered with [Hub.AfterDeliver] are called. It returns
// the number of batches delivered.
func (h *Hub) Deliver() int {
	n := h.deliver()
	h.mu.Lock()
	after := h.after
	h.after = nil
	h.mu.Unlock()
	for _, fun := range after {
		fun()
	}
	return n
}

// deliver runs the delivery rounds of [Hub.Deliver].
func (h *Hub) deliver() int {
	n := 0
	for round := 0; ; round++ {
		h.mu.Lock()
		if len(h.order) == 0 {
			h.mu.Unlock()
			return n
		}
		if round >= MaxDeliveryRounds {
			h.mu.Unlock()
			slog.Error("model.Hub.Deliver: change records keep being produced while delivering; stopping", "rounds", round)
			return n
		}
		order, pending := h.order, h.pending
		h.order, h.pending = nil, map[Observable][]Record{}
		h.mu.Unlock()

		for _, target := range order {
			records := pending[target]
			h.mu.Lock()
			subs := slices.Clone(h.subs[target])
			h.mu.Unlock()
			for _, s := range subs {
				if !s.Active() {
					continue
				}
				s.fun(records)
				n++
			}
		}
	}
}
