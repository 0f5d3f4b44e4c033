package manager

// taskQueue holds deferred work in FIFO order. Tasks run only when the
// owner drains the queue, after the call that scheduled them has returned,
// never concurrently with it.
type taskQueue struct {
	tasks    []func()
	draining bool
}

// enqueue appends fn to run on the next drain.
func (q *taskQueue) enqueue(fn func()) {
	q.tasks = append(q.tasks, fn)
}

// drain runs queued tasks in order until none remain. Tasks scheduled
// while draining run in the same pass. A drain triggered from inside a
// task is a no-op; the outer pass picks the new work up.
func (q *taskQueue) drain() {
	if q.draining {
		return
	}
	q.draining = true
	defer func() { q.draining = false }()

	for len(q.tasks) > 0 {
		fn := q.tasks[0]
		q.tasks = q.tasks[1:]
		fn()
	}
}

// pending returns the number of tasks waiting to run.
func (q *taskQueue) pending() int {
	return len(q.tasks)
}
