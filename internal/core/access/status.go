package access

// RequestStatus is the lifecycle state of a service request
type RequestStatus string

const (
	// RequestPending awaits a vendor or admin decision
	RequestPending RequestStatus = "pending"
	// RequestAccepted is terminal
	RequestAccepted RequestStatus = "accepted"
	// RequestRejected is terminal
	RequestRejected RequestStatus = "rejected"
)

// ParseRequestStatus returns the known status for s, ok=false otherwise
func ParseRequestStatus(s string) (RequestStatus, bool) {
	switch RequestStatus(s) {
	case RequestPending, RequestAccepted, RequestRejected:
		return RequestStatus(s), true
	}
	return "", false
}

// CanTransitionRequest reports whether a service request may move from one
// status to another. Only pending requests move; accepted and rejected are
// terminal
func CanTransitionRequest(from, to RequestStatus) bool {
	if from != RequestPending {
		return false
	}
	return to == RequestAccepted || to == RequestRejected
}

// TicketStatus is the lifecycle state of a support ticket
type TicketStatus string

const (
	// TicketOpen is the initial state
	TicketOpen TicketStatus = "open"
	// TicketInProgress marks tickets an admin is working
	TicketInProgress TicketStatus = "in_progress"
	// TicketResolved is terminal by convention, not enforced
	TicketResolved TicketStatus = "resolved"
)

// ParseTicketStatus returns the known status for s, ok=false otherwise
func ParseTicketStatus(s string) (TicketStatus, bool) {
	switch TicketStatus(s) {
	case TicketOpen, TicketInProgress, TicketResolved:
		return TicketStatus(s), true
	}
	return "", false
}

// CanSetTicketStatus reports whether an admin may set a ticket to the given
// status. Admins set any known state directly; only unknown statuses are
// rejected
func CanSetTicketStatus(to TicketStatus) bool {
	_, ok := ParseTicketStatus(string(to))
	return ok
}
