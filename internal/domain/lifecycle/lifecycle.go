// Package lifecycle owns the job-order status model: the closed set of
// states, the legal transitions between them, and the notification event
// each transition triggers. Use cases consult these tables before applying
// any side effect, so an illegal transition is rejected before anything is
// uploaded, persisted or emailed.
package lifecycle

// Status is the primary job-order state.

type Status string

const (
	StatusInquiry    Status = "inquiry"
	StatusOnProcess  Status = "on process"
	StatusInProgress Status = "in progress"
	StatusCompleted  Status = "completed"
	StatusCancelled  Status = "cancelled"
)

// InquiryStatus is the sub-state used only while the order is an inquiry.
// It is cleared (empty string) once the order is promoted to "on process".

type InquiryStatus string

const (
	InquiryStatusNone     InquiryStatus = ""
	InquiryStatusPending  InquiryStatus = "pending"
	InquiryStatusReceived InquiryStatus = "received"
)

// Event names the notification template fired by a transition.

type Event string

const (
	EventInquiryReceived     Event = "inquiry_received"
	EventInspectionScheduled Event = "inspection_scheduled"
	EventQuotationReady      Event = "quotation_ready"
	EventProjectCompleted    Event = "project_completed"
	EventProjectCancelled    Event = "project_cancelled"
)

// transitions is the authoritative table of legal status moves. Cancellation
// is reachable from every non-terminal state; completed/cancelled are
// terminal (archiving is a flag, not a status move).
var transitions = map[Status][]Status{
	StatusInquiry:    {StatusOnProcess, StatusCancelled},
	StatusOnProcess:  {StatusInProgress, StatusCancelled},
	StatusInProgress: {StatusCompleted, StatusCancelled},
	StatusCompleted:  {},
	StatusCancelled:  {},
}

// events maps a target status to the notification sent when a job order
// arrives there. Inquiry acknowledgement is driven by the sub-state, not a
// status move, so it is handled separately by the use case.
var events = map[Status]Event{
	StatusOnProcess:  EventInspectionScheduled,
	StatusInProgress: EventQuotationReady,
	StatusCompleted:  EventProjectCompleted,
	StatusCancelled:  EventProjectCancelled,
}

// IsValid reports whether s is a member of the closed status set.
func IsValid(s Status) bool {
	_, ok := transitions[s]
	return ok
}

// CanTransition reports whether moving from one status to another is legal.
func CanTransition(from, to Status) bool {
	for _, next := range transitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

// IsTerminal reports whether a status has no outgoing transitions.
func IsTerminal(s Status) bool {
	next, ok := transitions[s]
	return ok && len(next) == 0
}

// Archivable reports whether a job order in status s may be archived.
// Only terminal orders leave the active worklist.
func Archivable(s Status) bool {
	return s == StatusCompleted || s == StatusCancelled
}

// EventFor returns the notification event fired on arrival at status to.
func EventFor(to Status) (Event, bool) {
	ev, ok := events[to]
	return ev, ok
}
