package main

import (
	"context"
	"errors"
	"log"
	"sync"
)

type PermissionState int64

const (
	PermissionNotRequested PermissionState = iota
	PermissionPending
	PermissionGranted
	PermissionDenied
)

func (s PermissionState) String() string {
	switch s {
	case PermissionNotRequested:
		return "not requested"
	case PermissionPending:
		return "pending"
	case PermissionGranted:
		return "granted"
	case PermissionDenied:
		return "denied"
	default:
		return "unknown"
	}
}

const LabelEnableMotion = "Enable Motion"
const LabelTapToEnable = "Tap to Enable Motion"
const LabelTryAgain = "Try Again"

var ErrPromptAbandoned = errors.New("permission prompt closed without an answer")

// PermissionOutcome is how the platform answered a permission prompt. Err is
// set if asking failed, which is different from the user saying no.
type PermissionOutcome struct {
	Granted bool
	Err     error
}

// PermissionPrompt asks the platform for access to the motion sensors.
// Prompt must return immediately. The answer is delivered later on the
// returned channel. Browsers only show the prompt if it is started from inside
// a user gesture, which is why Prompt is synchronous and the wait is not.
type PermissionPrompt interface {
	Prompt() <-chan PermissionOutcome
}

// PermissionRequest is a permission request that is either still waiting for
// an answer or already answered.
type PermissionRequest struct {
	done    chan struct{}
	granted bool
}

func newPermissionRequest() *PermissionRequest {
	return &PermissionRequest{done: make(chan struct{})}
}

func resolvedPermissionRequest(granted bool) *PermissionRequest {
	r := newPermissionRequest()
	r.granted = granted
	close(r.done)
	return r
}

// Done is closed once the request is answered.
func (r *PermissionRequest) Done() <-chan struct{} {
	return r.done
}

// Granted is only meaningful after Done is closed.
func (r *PermissionRequest) Granted() bool {
	select {
	case <-r.done:
		return r.granted
	default:
		return false
	}
}

// Wait blocks until the request is answered or ctx is done. Giving up on the
// wait does not cancel the request.
func (r *PermissionRequest) Wait(ctx context.Context) (bool, error) {
	select {
	case <-r.done:
		return r.granted, nil
	case <-ctx.Done():
		return false, ctx.Err()
	}
}

// MotionAccess tracks whether we may read the motion and orientation sensors.
// There is at most one prompt in flight. Asking again while a prompt is
// pending gives back the pending request instead of starting a second one.
// A denied or failed request can be retried.
type MotionAccess struct {
	mu      sync.Mutex
	prompt  PermissionPrompt
	state   PermissionState
	pending *PermissionRequest
	label   string
}

// NewMotionAccess creates a MotionAccess that uses prompt to ask for access.
// A nil prompt means the platform does not require permission, so access is
// granted from the start.
func NewMotionAccess(prompt PermissionPrompt) *MotionAccess {
	m := &MotionAccess{prompt: prompt, label: LabelEnableMotion}
	if prompt == nil {
		m.state = PermissionGranted
	}
	return m
}

func (m *MotionAccess) Request() *PermissionRequest {
	m.mu.Lock()
	defer m.mu.Unlock()

	switch m.state {
	case PermissionGranted:
		return resolvedPermissionRequest(true)
	case PermissionPending:
		return m.pending
	}

	req := newPermissionRequest()
	m.pending = req
	m.state = PermissionPending
	answer := m.prompt.Prompt()
	go m.await(req, answer)
	return req
}

func (m *MotionAccess) await(req *PermissionRequest, answer <-chan PermissionOutcome) {
	outcome, ok := <-answer
	if !ok {
		outcome.Err = ErrPromptAbandoned
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	switch {
	case outcome.Err != nil:
		log.Printf("motion permission request failed: %v", outcome.Err)
		m.state = PermissionDenied
		m.label = LabelTryAgain
	case outcome.Granted:
		m.state = PermissionGranted
	default:
		m.state = PermissionDenied
		m.label = LabelTapToEnable
	}
	m.pending = nil
	req.granted = m.state == PermissionGranted
	close(req.done)
}

func (m *MotionAccess) State() PermissionState {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.state
}

func (m *MotionAccess) Granted() bool {
	return m.State() == PermissionGranted
}

// OverlayVisible reports if the prompt asking the user to enable motion
// should be shown.
func (m *MotionAccess) OverlayVisible() bool {
	return !m.Granted()
}

// Label is the text of the button on the overlay.
func (m *MotionAccess) Label() string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.label
}
