/*
Package queue provides the FIFO queue of tasks used to develop the nodes of a
growing tree breadth-first.
*/
package queue

import (
	"fmt"
)

// Queue holds the tasks to develop tree nodes.
// Tasks are pulled in the order they were pushed.
// It is not safe for concurrent use.
type Queue struct {
	pendingTasks []*Task
	head         int
	tail         int
	pending      int
}

// New returns an empty queue
func New() *Queue {
	return &Queue{}
}

// Push stores the task at the end of the queue
func (q *Queue) Push(t *Task) {
	if q.pending == len(q.pendingTasks) {
		q.reorder()
		q.pendingTasks = append(q.pendingTasks, t)
		q.tail = (q.head + q.pending + 1) % len(q.pendingTasks)
	} else {
		q.pendingTasks[q.tail] = t
		q.tail = (q.tail + 1) % len(q.pendingTasks)
	}
	q.pending++
}

// Pull removes and returns the task at the head
// of the queue, or nil if the queue is empty.
func (q *Queue) Pull() *Task {
	if q.pending == 0 {
		return nil
	}
	q.pending--
	task := q.pendingTasks[q.head]
	q.pendingTasks[q.head] = nil
	q.head = (q.head + 1) % len(q.pendingTasks)
	return task
}

// Len returns the number of pending tasks
func (q *Queue) Len() int {
	return q.pending
}

func (q *Queue) String() string {
	return fmt.Sprintf("{Queue pending: %d (%v head:%d tail:%d)}", q.pending, q.pendingTasks, q.head, q.tail)
}

func (q *Queue) reorder() {
	if q.head == 0 {
		return
	}
	q.pendingTasks = append(q.pendingTasks[q.head:], q.pendingTasks[0:q.head]...)
	q.head = 0
}
