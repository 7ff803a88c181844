package access

import "testing"

func TestCanTransitionRequest(t *testing.T) {
	allowed := map[[2]RequestStatus]bool{
		{RequestPending, RequestAccepted}:  true,
		{RequestPending, RequestRejected}:  true,
		{RequestPending, RequestPending}:   false,
		{RequestAccepted, RequestRejected}: false,
		{RequestAccepted, RequestPending}:  false,
		{RequestRejected, RequestAccepted}: false,
	}
	for pair, want := range allowed {
		if got := CanTransitionRequest(pair[0], pair[1]); got != want {
			t.Fatalf("%s -> %s: got %v want %v", pair[0], pair[1], got, want)
		}
	}
}

func TestCanSetTicketStatus(t *testing.T) {
	for _, s := range []TicketStatus{TicketOpen, TicketInProgress, TicketResolved} {
		if !CanSetTicketStatus(s) {
			t.Fatalf("known status %q rejected", s)
		}
	}
	if CanSetTicketStatus("escalated") {
		t.Fatalf("unknown status accepted")
	}
}

func TestParseStatuses(t *testing.T) {
	if _, ok := ParseRequestStatus("accepted"); !ok {
		t.Fatalf("accepted should parse")
	}
	if _, ok := ParseRequestStatus("closed"); ok {
		t.Fatalf("closed should not parse")
	}
	if _, ok := ParseTicketStatus("in_progress"); !ok {
		t.Fatalf("in_progress should parse")
	}
}
