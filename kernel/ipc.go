package kernel

import (
	"context"
	"runtime"
	"sync"
	"sync/atomic"
)

// MaxMessageBytes is the maximum payload size for IPC messages.
const MaxMessageBytes = 16

// Message is a fixed-size message envelope.
type Message struct {
	From Endpoint
	To   Endpoint
	Kind uint8
	Len  uint16
	Data [MaxMessageBytes]byte
}

// NewMessage copies payload (truncated to MaxMessageBytes) into an envelope.
func NewMessage(from, to Endpoint, kind uint8, payload []byte) Message {
	msg := Message{From: from, To: to, Kind: kind}
	if len(payload) > MaxMessageBytes {
		payload = payload[:MaxMessageBytes]
	}
	msg.Len = uint16(copy(msg.Data[:], payload))
	return msg
}

// Payload returns the used part of Data.
func (m *Message) Payload() []byte { return m.Data[:m.Len] }

const (
	MsgTone uint8 = iota + 1
	MsgSilence
)

const mailboxSlots = 8

type slot struct {
	ready atomic.Bool
	msg   Message
}

// Mailbox is a fixed-size multi-producer, single-consumer queue. Sends never
// allocate or block; the zero value is ready to use.
type Mailbox struct {
	_     [0]func() // prevent accidental copying.
	head  atomic.Uint32
	tail  atomic.Uint32
	slots [mailboxSlots]slot

	once sync.Once
	wake chan struct{}
}

func (mb *Mailbox) notify() chan struct{} {
	mb.once.Do(func() { mb.wake = make(chan struct{}, 1) })
	return mb.wake
}

// TrySend attempts to enqueue a message, returning false if the mailbox is full.
func (mb *Mailbox) TrySend(msg Message) bool {
	for {
		head := mb.head.Load()
		tail := mb.tail.Load()
		if head-tail >= mailboxSlots {
			return false
		}
		// Reserve a slot, then publish it.
		if mb.head.CompareAndSwap(head, head+1) {
			s := &mb.slots[head%mailboxSlots]
			s.msg = msg
			s.ready.Store(true)
			break
		}
	}
	select {
	case mb.notify() <- struct{}{}:
	default:
	}
	return true
}

// Send enqueues a message, blocking until it succeeds.
func (mb *Mailbox) Send(msg Message) {
	for !mb.TrySend(msg) {
		runtime.Gosched()
	}
}

// TryRecv attempts to dequeue one message, returning false if empty.
// Only one goroutine may receive.
func (mb *Mailbox) TryRecv() (Message, bool) {
	tail := mb.tail.Load()
	if tail == mb.head.Load() {
		return Message{}, false
	}
	s := &mb.slots[tail%mailboxSlots]
	if !s.ready.Load() {
		// Reserved but not yet written.
		return Message{}, false
	}
	msg := s.msg
	s.ready.Store(false)
	mb.tail.Store(tail + 1)
	return msg, true
}

// Len reports the number of reserved slots.
func (mb *Mailbox) Len() int {
	return int(mb.head.Load() - mb.tail.Load())
}

// Recv blocks until one message is available or ctx is done.
func (mb *Mailbox) Recv(ctx context.Context) (Message, error) {
	wake := mb.notify()
	for {
		if msg, ok := mb.TryRecv(); ok {
			return msg, nil
		}
		if mb.Len() > 0 {
			// A producer is mid-publish.
			runtime.Gosched()
			continue
		}
		select {
		case <-ctx.Done():
			return Message{}, ctx.Err()
		case <-wake:
		}
	}
}
