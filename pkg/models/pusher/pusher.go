package pusher

import (
	"log"
	"sync"
	"time"
)

// Pusher buffers messages and hands them to PushLogic in batches on a fixed
// interval. The worker and the host service both use it to cut down on
// per-message redis round trips.
type Pusher[T any] struct {
	PushLogic    func(...T) error
	PushInterval time.Duration
	ErrorHandler func(error)

	buffer  []T
	lock    sync.Mutex
	stopped chan struct{}
	once    sync.Once
}

func NewPusher[T any](options ...Option[T]) *Pusher[T] {
	p := &Pusher[T]{
		PushLogic:    func(...T) error { return nil },
		ErrorHandler: func(err error) { log.Println(err) },
		PushInterval: time.Second,
		stopped:      make(chan struct{}),
	}

	for _, option := range options {
		option(p)
	}

	return p
}

func (p *Pusher[T]) AddMessages(messages ...T) {
	p.lock.Lock()
	defer p.lock.Unlock()

	p.buffer = append(p.buffer, messages...)
}

// PushAll drains the buffer through PushLogic. On error the messages stay
// buffered for the next round.
func (p *Pusher[T]) PushAll() error {
	p.lock.Lock()
	defer p.lock.Unlock()

	if len(p.buffer) == 0 {
		return nil
	}
	if err := p.PushLogic(p.buffer...); err != nil {
		return err
	}
	p.buffer = nil
	return nil
}

func (p *Pusher[T]) Start() {
	go func() {
		ticker := time.NewTicker(p.PushInterval)
		defer ticker.Stop()

		for {
			select {
			case <-ticker.C:
				if err := p.PushAll(); err != nil {
					p.ErrorHandler(err)
				}
			case <-p.stopped:
				return
			}
		}
	}()
}

// Stop halts the push loop after a final drain.
func (p *Pusher[T]) Stop() {
	p.once.Do(func() {
		if err := p.PushAll(); err != nil {
			p.ErrorHandler(err)
		}
		close(p.stopped)
	})
}
