package pipeline

// taskQueue defers work that must run on the render thread outside a
// frame, such as releasing GPU objects requested mid-frame. Not
// synchronized; owned by the render thread like the rest of the
// pipeline.
type taskQueue struct {
	tasks []func()
}

// push enqueues fn for the next drain.
func (q *taskQueue) push(fn func()) {
	q.tasks = append(q.tasks, fn)
}

// drain runs the queued tasks in order. Tasks pushed during a drain run
// in the same drain.
func (q *taskQueue) drain() {
	for len(q.tasks) > 0 {
		fn := q.tasks[0]
		q.tasks = q.tasks[1:]
		fn()
	}
}
