package tetris

import "sync"

// CommandQueue buffers commands for the goroutine that calls Engine.Update.
// Push is safe from any goroutine; Drain and Clear are meant for the consumer
// but are safe to call concurrently as well. The queue is unbounded.
type CommandQueue struct {
	mu       sync.Mutex
	commands []Command
}

func newCommandQueue() *CommandQueue {
	return &CommandQueue{}
}

// Push appends a command.
func (q *CommandQueue) Push(cmd Command) {
	q.mu.Lock()
	q.commands = append(q.commands, cmd)
	q.mu.Unlock()
}

// Drain removes and returns every buffered command in arrival order, or nil
// when the queue is empty.
func (q *CommandQueue) Drain() []Command {
	q.mu.Lock()
	defer q.mu.Unlock()

	if len(q.commands) == 0 {
		return nil
	}

	batch := q.commands
	q.commands = nil
	return batch
}

// Clear drops every buffered command and returns how many were dropped.
func (q *CommandQueue) Clear() int {
	q.mu.Lock()
	defer q.mu.Unlock()

	n := len(q.commands)
	q.commands = nil
	return n
}

// Len returns the number of buffered commands.
func (q *CommandQueue) Len() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.commands)
}
