package app

import (
	"sync"
	"time"
)

// ModerationFlags is one review's staff-set state. IsPublic only has public
// meaning once IsApproved is true; the container accepts the transient
// approved=false/public=true combination and leaves enforcement to the
// presentation boundary.
type ModerationFlags struct {
	IsApproved bool
	IsPublic   bool
}

// ModerationChange is what subscribers observe. Nil fields were not part of
// the patch.
type ModerationChange struct {
	ReviewID   int64
	IsApproved *bool
	IsPublic   *bool
	At         time.Time
}

// ModerationState is an explicit, in-process container for staff moderation
// decisions. It replaces the hidden per-view globals of the previous
// dashboard: whoever needs the state gets the container by reference and may
// subscribe to changes. Writes are fire-and-forget with no durable backing,
// so the state is lost on restart and is never consulted by the read paths
// that rebuild reviews from the channels.
type ModerationState struct {
	mu    sync.RWMutex
	flags map[int64]ModerationFlags
	subs  []func(ModerationChange)
}

func NewModerationState() *ModerationState {
	return &ModerationState{flags: make(map[int64]ModerationFlags)}
}

// Subscribe registers a notification callback. Callbacks run synchronously
// on the applying goroutine and must not call back into the container.
func (m *ModerationState) Subscribe(fn func(ModerationChange)) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.subs = append(m.subs, fn)
}

// Apply merges a partial patch into the review's flags and notifies
// subscribers. Unset fields keep their previous value.
func (m *ModerationState) Apply(reviewID int64, isApproved, isPublic *bool) ModerationFlags {
	m.mu.Lock()
	f := m.flags[reviewID]
	if isApproved != nil {
		f.IsApproved = *isApproved
	}
	if isPublic != nil {
		f.IsPublic = *isPublic
	}
	m.flags[reviewID] = f
	subs := make([]func(ModerationChange), len(m.subs))
	copy(subs, m.subs)
	m.mu.Unlock()

	ch := ModerationChange{ReviewID: reviewID, IsApproved: isApproved, IsPublic: isPublic, At: time.Now().UTC()}
	for _, fn := range subs {
		fn(ch)
	}
	return f
}

// Get returns the session's current flags for a review, if any were set.
func (m *ModerationState) Get(reviewID int64) (ModerationFlags, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	f, ok := m.flags[reviewID]
	return f, ok
}
