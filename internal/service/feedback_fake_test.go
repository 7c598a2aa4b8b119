// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"encoding/json"
	"sync"
	"testing"

	"github.com/MKhiriev/photosync/internal/feedback"
	"github.com/MKhiriev/photosync/models"
	"github.com/stretchr/testify/require"
)

// fakeChannel: потокобезопасная реализация feedback.Channel для тестов.
// onSend вызывается после записи события и позволяет «ответить» от имени UI.
type fakeChannel struct {
	mu      sync.Mutex
	sent    []models.Event
	sendErr error
	onSend  func(models.Event)

	responses chan models.Event
	done      chan struct{}
	closeOnce sync.Once
	closes    int
}

var _ feedback.Channel = (*fakeChannel)(nil)

func newFakeChannel() *fakeChannel {
	return &fakeChannel{
		responses: make(chan models.Event, 16),
		done:      make(chan struct{}),
	}
}

func (f *fakeChannel) Send(_ context.Context, event models.Event) error {
	if !feedback.IsOpen(f) {
		return feedback.ErrClosed
	}

	f.mu.Lock()
	f.sent = append(f.sent, event)
	hook, err := f.onSend, f.sendErr
	f.mu.Unlock()

	if hook != nil {
		hook(event)
	}
	return err
}

func (f *fakeChannel) Responses() <-chan models.Event { return f.responses }

func (f *fakeChannel) Done() <-chan struct{} { return f.done }

func (f *fakeChannel) Close() error {
	f.mu.Lock()
	f.closes++
	f.mu.Unlock()

	f.closeOnce.Do(func() { close(f.done) })
	return nil
}

func (f *fakeChannel) respond(eventType models.EventType) {
	f.responses <- models.Event{Type: eventType}
}

func (f *fakeChannel) events() []models.Event {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]models.Event(nil), f.sent...)
}

func (f *fakeChannel) eventsOf(eventType models.EventType) []models.Event {
	var out []models.Event
	for _, ev := range f.events() {
		if ev.Type == eventType {
			out = append(out, ev)
		}
	}
	return out
}

func (f *fakeChannel) progress(t *testing.T) []models.SyncProgress {
	t.Helper()
	var out []models.SyncProgress
	for _, ev := range f.eventsOf(models.EventSyncProgress) {
		var p models.SyncProgress
		require.NoError(t, json.Unmarshal(ev.Data, &p))
		out = append(out, p)
	}
	return out
}

func (f *fakeChannel) closeCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.closes
}

// replyToCompare отвечает на каждый contact_compare заданным событием.
func replyToCompare(f *fakeChannel, reply models.EventType) {
	f.onSend = func(ev models.Event) {
		if ev.Type == models.EventContactCompare {
			f.respond(reply)
		}
	}
}
