// Package lifecycle implements the opportunity status state machine.
//
// Legal moves are a single step forward or backward along the policy's
// status order, plus withdrawal from any non-terminal status. Outcome and
// withdrawn are terminal.
package lifecycle

import (
	"errors"
	"fmt"
	"time"

	"github.com/alexanderramin/pursuit/internal/domain"
)

// ErrIllegalTransition is wrapped by every TransitionError.
var ErrIllegalTransition = errors.New("illegal status transition")

type TransitionError struct {
	ID   string
	From domain.Status
	To   domain.Status
	// Reason is set when the move is otherwise legal but the request is
	// incomplete, e.g. entering outcome without an outcome tag.
	Reason string
}

func (e *TransitionError) Error() string {
	msg := fmt.Sprintf("cannot move %s from %s to %s", e.ID, e.From, e.To)
	if e.Reason != "" {
		msg += ": " + e.Reason
	}
	return msg
}

func (e *TransitionError) Unwrap() error { return ErrIllegalTransition }

// Machine evaluates transitions against an injected status order.
type Machine struct {
	order []domain.Status
}

func NewMachine(policy domain.Policy) *Machine {
	return &Machine{order: policy.StatusOrder}
}

func (m *Machine) index(s domain.Status) int {
	for i, st := range m.order {
		if st == s {
			return i
		}
	}
	return -1
}

// CanTransition reports whether from -> to is a legal single move.
func (m *Machine) CanTransition(from, to domain.Status) bool {
	if from.Terminal() || from == to {
		return false
	}
	if to == domain.StatusWithdrawn {
		return m.index(from) >= 0
	}
	fi, ti := m.index(from), m.index(to)
	if fi < 0 || ti < 0 {
		return false
	}
	return ti == fi+1 || ti == fi-1
}

// Forward reports whether from -> to moves deeper into the pipeline.
func (m *Machine) Forward(from, to domain.Status) bool {
	if to == domain.StatusWithdrawn {
		return true
	}
	return m.index(to) > m.index(from)
}

// Transition is a requested status change.
type Transition struct {
	To      domain.Status
	Outcome domain.Outcome
	Now     time.Time
}

// Result carries the updated record and whether it must change bucket.
type Result struct {
	Opportunity *domain.Opportunity
	From        domain.Status
	Forward     bool
	Relocate    bool
	Bucket      domain.Bucket
}

// Apply validates and applies t to a copy of op. op is never mutated.
func (m *Machine) Apply(op *domain.Opportunity, t Transition) (*Result, error) {
	if !m.CanTransition(op.Status, t.To) {
		return nil, &TransitionError{ID: op.ID, From: op.Status, To: t.To}
	}
	if t.To == domain.StatusOutcome {
		if t.Outcome == "" {
			return nil, &TransitionError{ID: op.ID, From: op.Status, To: t.To, Reason: "an outcome tag is required"}
		}
		if !domain.ValidOutcomes[t.Outcome] {
			return nil, domain.Invalid("outcome", string(t.Outcome), "unknown outcome")
		}
	} else if t.To == domain.StatusWithdrawn {
		if t.Outcome != "" && t.Outcome != domain.OutcomeWithdrawn {
			return nil, &TransitionError{ID: op.ID, From: op.Status, To: t.To, Reason: "withdrawn records take no other outcome tag"}
		}
	} else if t.Outcome != "" {
		return nil, &TransitionError{ID: op.ID, From: op.Status, To: t.To, Reason: "outcome tags only apply when entering outcome"}
	}

	next := op.Clone()
	forward := m.Forward(op.Status, t.To)
	next.Status = t.To

	switch t.To {
	case domain.StatusOutcome:
		next.Outcome = t.Outcome
	case domain.StatusWithdrawn:
		next.Outcome = domain.OutcomeWithdrawn
	}

	if forward {
		if next.Timeline == nil {
			next.Timeline = make(map[domain.Status]domain.Date)
		}
		if _, seen := next.Timeline[t.To]; !seen {
			next.Timeline[t.To] = domain.NewDate(t.Now)
		}
	}
	next.Touch(t.Now)

	target := BucketFor(t.To)
	relocate := !BucketAllowed(t.To, op.Bucket)
	if !relocate {
		target = op.Bucket
	}
	next.Bucket = target

	return &Result{
		Opportunity: next,
		From:        op.Status,
		Forward:     forward,
		Relocate:    relocate,
		Bucket:      target,
	}, nil
}
