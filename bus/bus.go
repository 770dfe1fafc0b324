// Copyright 2016 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package bus is a synchronous publish/subscribe event bus.
//
// Publish delivers an event to each subscriber of its topic in
// subscription order, running each handler to completion before the
// next. A handler that fails does not prevent delivery to the others.
package bus

import (
	"errors"
	"fmt"
	"sync"
)

// A Handler handles one event.
type Handler func(payload interface{}) error

// A Bus delivers events to subscribers by topic.
type Bus struct {
	mu   sync.Mutex
	subs map[string][]*Subscription
}

// A Subscription is a handler registered on a Bus.
type Subscription struct {
	bus   *Bus
	topic string
	h     Handler
}

// New returns an empty Bus.
func New() *Bus {
	return &Bus{subs: make(map[string][]*Subscription)}
}

// Subscribe registers h for events on topic. The handler stays
// registered until the returned Subscription is unsubscribed.
func (b *Bus) Subscribe(topic string, h Handler) *Subscription {
	s := &Subscription{b, topic, h}
	b.mu.Lock()
	b.subs[topic] = append(b.subs[topic], s)
	b.mu.Unlock()
	return s
}

// Unsubscribe removes s from its bus. It is safe to call more than
// once, including from within a handler.
func (s *Subscription) Unsubscribe() {
	b := s.bus
	b.mu.Lock()
	defer b.mu.Unlock()
	subs := b.subs[s.topic]
	for i, s2 := range subs {
		if s2 == s {
			b.subs[s.topic] = append(subs[:i:i], subs[i+1:]...)
			break
		}
	}
	if len(b.subs[s.topic]) == 0 {
		delete(b.subs, s.topic)
	}
}

// Topic returns the topic s is subscribed to.
func (s *Subscription) Topic() string {
	return s.topic
}

// Publish delivers payload to every subscriber of topic. It returns
// the errors of any handlers that failed, joined.
func (b *Bus) Publish(topic string, payload interface{}) error {
	b.mu.Lock()
	subs := append([]*Subscription(nil), b.subs[topic]...)
	b.mu.Unlock()

	var errs []error
	for _, s := range subs {
		if err := s.h(payload); err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", topic, err))
		}
	}
	return errors.Join(errs...)
}

// Subscribers returns the number of subscribers to topic.
func (b *Bus) Subscribers(topic string) int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.subs[topic])
}
