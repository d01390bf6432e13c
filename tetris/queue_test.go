package tetris

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCommandQueueOrder(t *testing.T) {
	q := newCommandQueue()
	assert.Nil(t, q.Drain())

	q.Push(MoveLeft)
	q.Push(Rotate)
	q.Push(HardDrop)
	assert.Equal(t, 3, q.Len())

	assert.Equal(t, []Command{MoveLeft, Rotate, HardDrop}, q.Drain())
	assert.Equal(t, 0, q.Len())
	assert.Nil(t, q.Drain())
}

func TestCommandQueueClear(t *testing.T) {
	q := newCommandQueue()
	q.Push(MoveDown)
	q.Push(MoveDown)

	assert.Equal(t, 2, q.Clear())
	assert.Equal(t, 0, q.Clear())
	assert.Nil(t, q.Drain())
}

func TestCommandQueueConcurrentProducers(t *testing.T) {
	q := newCommandQueue()

	const producers = 8
	const perProducer = 500

	var wg sync.WaitGroup
	for p := 0; p < producers; p++ {
		wg.Add(1)
		go func(cmd Command) {
			defer wg.Done()
			for range perProducer {
				q.Push(cmd)
			}
		}(Command(p%5 + 1))
	}

	total := 0
	done := make(chan struct{})
	go func() {
		wg.Wait()
		close(done)
	}()

	for {
		total += len(q.Drain())
		select {
		case <-done:
			total += len(q.Drain())
			assert.Equal(t, producers*perProducer, total)
			return
		default:
		}
	}
}
