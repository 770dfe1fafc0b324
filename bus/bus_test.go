// Copyright 2016 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bus

import (
	"errors"
	"reflect"
	"testing"
)

func TestPublish(t *testing.T) {
	b := New()
	var got []string
	b.Subscribe("a", func(p interface{}) error {
		got = append(got, "1:"+p.(string))
		return nil
	})
	b.Subscribe("a", func(p interface{}) error {
		got = append(got, "2:"+p.(string))
		return nil
	})
	b.Subscribe("b", func(p interface{}) error {
		got = append(got, "b")
		return nil
	})
	if err := b.Publish("a", "x"); err != nil {
		t.Fatal(err)
	}
	if want := []string{"1:x", "2:x"}; !reflect.DeepEqual(got, want) {
		t.Errorf("delivered %v, want %v", got, want)
	}
}

func TestPublishError(t *testing.T) {
	b := New()
	bad := errors.New("bad")
	ran := false
	b.Subscribe("a", func(interface{}) error { return bad })
	b.Subscribe("a", func(interface{}) error {
		ran = true
		return nil
	})
	err := b.Publish("a", nil)
	if !errors.Is(err, bad) {
		t.Errorf("Publish returned %v, want %v", err, bad)
	}
	if !ran {
		t.Errorf("failing handler stopped delivery to later handlers")
	}
}

func TestUnsubscribe(t *testing.T) {
	b := New()
	n := 0
	s := b.Subscribe("a", func(interface{}) error {
		n++
		return nil
	})
	var s2 *Subscription
	s2 = b.Subscribe("a", func(interface{}) error {
		s2.Unsubscribe()
		return nil
	})
	if got := s.Topic(); got != "a" {
		t.Errorf("Topic() = %q, want %q", got, "a")
	}
	b.Publish("a", nil)
	if got := b.Subscribers("a"); got != 1 {
		t.Errorf("%d subscribers after self-unsubscribe, want 1", got)
	}
	s.Unsubscribe()
	s.Unsubscribe()
	b.Publish("a", nil)
	if n != 1 {
		t.Errorf("handler ran %d times, want 1", n)
	}
	if got := b.Subscribers("a"); got != 0 {
		t.Errorf("%d subscribers, want 0", got)
	}
}
