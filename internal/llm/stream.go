package llm

import (
	"context"
	"io"
	"sync"
)

// eventStream is a channel-backed Stream. A producer goroutine writes events
// and a final error; Recv drains the channel and returns io.EOF once the
// producer is done.
type eventStream struct {
	events chan Event
	cancel context.CancelFunc

	mu  sync.Mutex
	err error

	closeOnce sync.Once
}

// newEventStream runs produce in a goroutine and returns a Stream over its
// events. The producer must return once its events channel send would block
// on a cancelled context; its error surfaces from Recv after the channel
// drains.
func newEventStream(ctx context.Context, produce func(ctx context.Context, events chan<- Event) error) Stream {
	ctx, cancel := context.WithCancel(ctx)
	s := &eventStream{
		events: make(chan Event, 16),
		cancel: cancel,
	}

	go func() {
		err := produce(ctx, s.events)
		s.mu.Lock()
		s.err = err
		s.mu.Unlock()
		close(s.events)
	}()

	return s
}

func (s *eventStream) Recv() (Event, error) {
	event, ok := <-s.events
	if !ok {
		s.mu.Lock()
		err := s.err
		s.mu.Unlock()
		if err != nil {
			return Event{}, err
		}
		return Event{}, io.EOF
	}
	return event, nil
}

func (s *eventStream) Close() error {
	s.closeOnce.Do(func() {
		s.cancel()
		// Drain so the producer is not stuck on a send
		go func() {
			for range s.events {
			}
		}()
	})
	return nil
}

// chooseModel prefers the per-request model over the provider default.
func chooseModel(reqModel, providerModel string) string {
	if reqModel != "" {
		return reqModel
	}
	return providerModel
}

// truncate shortens s to at most n runes for debug previews.
func truncate(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n]) + "..."
}

func maxTokens(requested int, fallback int64) int64 {
	if requested > 0 {
		return int64(requested)
	}
	return fallback
}
