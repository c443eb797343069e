package toast

import (
	"context"

	"github.com/cristianoliveira/bubbletoast/internal/entity"
)

// Messages supplies the content templates for an operation-bound toast.
type Messages struct {
	// Pending is shown while the operation runs.
	Pending string
	// Success is shown after the operation completes without error.
	Success string
	// Error is shown when the operation fails with an error that carries
	// no message of its own.
	Error string
}

// Promise binds a toast to an asynchronous operation. A loading toast with
// the pending message appears immediately and does not auto-hide while the
// operation runs. When op returns, the toast's type and message flip to
// success or error and the auto-hide timer is armed with the configured
// duration. The operation's error is returned unchanged: the binder
// observes the failure, it never swallows it.
//
// Promise blocks until op returns; run it in a goroutine (or let a
// bubbletea command do so, see Manager.PromiseCmd) for a non-blocking
// caller. If the toast is dismissed or evicted before op settles, the
// settlement is discarded without touching any state.
func (m *Manager) Promise(ctx context.Context, op func(context.Context) error, msgs Messages, opts ...Option) error {
	req := m.buildRequest(msgs.Pending, entity.TypeLoading, opts)
	req.DeferAutoHide = true
	id := m.Show(req)
	err := op(ctx)
	m.settle(id, err, msgs)
	return err
}

// settle applies an operation's outcome to its toast. The still-mounted
// check gates every mutation: a settlement arriving after removal is
// silently discarded.
func (m *Manager) settle(id ID, err error, msgs Messages) {
	m.mu.Lock()
	mach, ok := m.machines[id]
	if !ok {
		m.mu.Unlock()
		m.log.Debug("stale settlement discarded", "id", id)
		return
	}
	if err != nil {
		message := err.Error()
		if message == "" {
			message = msgs.Error
		}
		mach.UpdateContent(message, entity.TypeError)
		m.log.Debug("bound operation failed", "id", id, "error", err)
	} else {
		mach.UpdateContent(msgs.Success, entity.TypeSuccess)
		m.log.Debug("bound operation succeeded", "id", id)
	}
	m.notifyLocked()
	cbs := m.drainLocked()
	m.mu.Unlock()
	runAll(cbs)
}
