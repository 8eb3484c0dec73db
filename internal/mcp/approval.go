package mcpserver

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
)

// Approval events sent to the desktop UI.
const (
	EventApprovalRequired  = "mcp:approval-required"
	EventApprovalDismissed = "mcp:approval-dismissed"
)

const defaultApprovalTimeout = 120 * time.Second

// ErrRejected is returned when the user declines or ignores a destructive
// tool call.
var ErrRejected = errors.New("action rejected by user")

// EventEmitter allows the approval queue to notify the frontend.
type EventEmitter interface {
	Emit(ctx context.Context, event string, data any)
}

// PendingAction is a destructive tool call waiting for the user.
type PendingAction struct {
	ID          string    `json:"id"`
	Tool        string    `json:"tool"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"createdAt"`
}

type pendingEntry struct {
	action PendingAction
	answer chan bool
}

// ApprovalQueue asks the desktop user to confirm destructive tool calls such
// as replacing every page with a generated profile. A disabled queue
// approves everything.
type ApprovalQueue struct {
	ctx     context.Context
	emitter EventEmitter
	enabled bool
	timeout time.Duration

	mu      sync.Mutex
	pending map[string]*pendingEntry
}

func NewApprovalQueue(ctx context.Context, emitter EventEmitter, enabled bool) *ApprovalQueue {
	return &ApprovalQueue{
		ctx:     ctx,
		emitter: emitter,
		enabled: enabled && emitter != nil,
		timeout: defaultApprovalTimeout,
		pending: make(map[string]*pendingEntry),
	}
}

// Enabled reports whether calls wait for the user.
func (q *ApprovalQueue) Enabled() bool { return q.enabled }

// Request blocks until the action is approved, rejected, times out or the
// queue's context ends. Anything but approval returns an error wrapping
// ErrRejected or the context error.
func (q *ApprovalQueue) Request(tool, description string) (bool, error) {
	if !q.enabled {
		return true, nil
	}
	e := &pendingEntry{
		action: PendingAction{
			ID:          uuid.NewString(),
			Tool:        tool,
			Description: description,
			CreatedAt:   time.Now().UTC(),
		},
		answer: make(chan bool, 1),
	}
	id := e.action.ID

	q.mu.Lock()
	q.pending[id] = e
	q.mu.Unlock()
	defer q.forget(id)

	q.emitter.Emit(q.ctx, EventApprovalRequired, e.action)

	timer := time.NewTimer(q.timeout)
	defer timer.Stop()
	select {
	case ok := <-e.answer:
		if !ok {
			return false, fmt.Errorf("%w: %s", ErrRejected, tool)
		}
		return true, nil
	case <-timer.C:
		q.emitter.Emit(q.ctx, EventApprovalDismissed, map[string]string{"id": id})
		return false, fmt.Errorf("%w: %s timed out after %s", ErrRejected, tool, q.timeout)
	case <-q.ctx.Done():
		return false, q.ctx.Err()
	}
}

// Pending lists actions still waiting for an answer, oldest first, so a
// reloaded UI can show them again.
func (q *ApprovalQueue) Pending() []PendingAction {
	q.mu.Lock()
	out := make([]PendingAction, 0, len(q.pending))
	for _, e := range q.pending {
		out = append(out, e.action)
	}
	q.mu.Unlock()
	slices.SortFunc(out, func(a, b PendingAction) int {
		if c := a.CreatedAt.Compare(b.CreatedAt); c != 0 {
			return c
		}
		return strings.Compare(a.ID, b.ID)
	})
	return out
}

// Approve marks a pending action as approved. Unknown ids are ignored.
func (q *ApprovalQueue) Approve(actionID string) {
	q.answer(actionID, true)
}

// Reject marks a pending action as rejected. Unknown ids are ignored.
func (q *ApprovalQueue) Reject(actionID string) {
	q.answer(actionID, false)
}

func (q *ApprovalQueue) answer(id string, ok bool) {
	q.mu.Lock()
	e := q.pending[id]
	q.mu.Unlock()
	if e == nil {
		return
	}
	select {
	case e.answer <- ok:
	default:
	}
}

func (q *ApprovalQueue) forget(id string) {
	q.mu.Lock()
	delete(q.pending, id)
	q.mu.Unlock()
}
