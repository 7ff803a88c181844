package service

import (
	"context"
	"sync"
	"testing"

	"marketflow/internal/modkit/repokit"
	perr "marketflow/internal/platform/errors"
	admindom "marketflow/internal/services/api/admin/domain"
	"marketflow/internal/services/api/requests/domain"
	"marketflow/internal/services/api/requests/repo"
)

type fakeDB struct{ repokit.TxRunner }

func (fakeDB) Tx(ctx context.Context, fn func(q repokit.Queryer) error) error { return fn(nil) }

type fakeRepo struct {
	rows    []repo.RowRequest
	deleted []string
}

func (f *fakeRepo) List(context.Context) ([]repo.RowRequest, error) { return f.rows, nil }

func (f *fakeRepo) Get(_ context.Context, id string) (repo.RowRequest, error) {
	for _, r := range f.rows {
		if r.ID == id {
			return r, nil
		}
	}
	return repo.RowRequest{}, perr.NotFoundf("request %s not found", id)
}

func (f *fakeRepo) SetStatus(_ context.Context, id, status string) error {
	for i := range f.rows {
		if f.rows[i].ID == id {
			f.rows[i].Status = status
			return nil
		}
	}
	return perr.NotFoundf("request %s not found", id)
}

func (f *fakeRepo) Delete(_ context.Context, id string) error {
	f.deleted = append(f.deleted, id)
	return nil
}

func (f *fakeRepo) Create(_ context.Context, clientID, serviceID, message string) (string, error) {
	f.rows = append(f.rows, repo.RowRequest{ID: "new-1", Status: "pending", Message: message})
	return "new-1", nil
}

type fakeBinder struct{ r *fakeRepo }

func (b fakeBinder) Bind(_ repokit.Queryer) repo.Repo { return b.r }

// fakeAudit records events synchronously; the real recorder is async but the
// port contract is fire-and-forget either way
type fakeAudit struct {
	mu     sync.Mutex
	events []admindom.AuditEvent
}

func (f *fakeAudit) Record(_ context.Context, e admindom.AuditEvent) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.events = append(f.events, e)
}

var adminRoles = []string{"admin"}

func someRows() []repo.RowRequest {
	return []repo.RowRequest{
		{ID: "r1", ServiceTitle: "Logo design", ClientName: "Ben", ClientEmail: "ben@example.com", VendorName: "Ana Studio", Status: "pending"},
		{ID: "r2", ServiceTitle: "Promo video", ClientName: "Cara", ClientEmail: "cara@example.com", VendorName: "ClipCraft", Status: "accepted"},
		{ID: "r3", ServiceTitle: "", ClientName: "", ClientEmail: "dan@example.com", VendorName: "", Status: "pending"},
	}
}

func newTestSvc(r *fakeRepo, a *fakeAudit) *Svc {
	return New(fakeDB{}, fakeBinder{r: r}, a)
}

func TestList_RequiresManager(t *testing.T) {
	t.Parallel()

	s := newTestSvc(&fakeRepo{rows: someRows()}, &fakeAudit{})

	if _, err := s.List(context.Background(), []string{"buyer"}, domain.ListInput{}); !perr.IsCode(err, perr.ErrorCodeForbidden) {
		t.Fatalf("buyer list = %v, want forbidden", err)
	}
	if _, err := s.List(context.Background(), adminRoles, domain.ListInput{}); err != nil {
		t.Fatalf("admin list: %v", err)
	}
}

func TestList_NullJoinFallbacks(t *testing.T) {
	t.Parallel()

	s := newTestSvc(&fakeRepo{rows: someRows()}, &fakeAudit{})

	out, err := s.List(context.Background(), adminRoles, domain.ListInput{})
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if out[2].ServiceTitle != domain.UnknownService {
		t.Fatalf("missing service fallback: %q", out[2].ServiceTitle)
	}
	if out[2].ClientName != domain.UnknownUser || out[2].VendorName != domain.UnknownUser {
		t.Fatalf("missing user fallback: %+v", out[2])
	}
}

func TestList_QueryMatchesFoldedSubstrings(t *testing.T) {
	t.Parallel()

	s := newTestSvc(&fakeRepo{rows: someRows()}, &fakeAudit{})

	cases := []struct {
		q    string
		want []string
	}{
		{"LOGO", []string{"r1"}},
		{"ana", []string{"r1"}},       // vendor name
		{"example.com", []string{"r1", "r2", "r3"}}, // email matches all
		{"clip", []string{"r2"}},
		{"zzz", nil},
	}
	for _, c := range cases {
		out, err := s.List(context.Background(), adminRoles, domain.ListInput{Q: c.q})
		if err != nil {
			t.Fatalf("List(%q): %v", c.q, err)
		}
		if len(out) != len(c.want) {
			t.Fatalf("List(%q) = %d rows, want %d", c.q, len(out), len(c.want))
		}
		for i, id := range c.want {
			if out[i].ID != id {
				t.Fatalf("List(%q)[%d] = %s, want %s", c.q, i, out[i].ID, id)
			}
		}
	}
}

func TestSetStatus_PendingOnly(t *testing.T) {
	t.Parallel()

	r := &fakeRepo{rows: someRows()}
	a := &fakeAudit{}
	s := newTestSvc(r, a)

	out, err := s.SetStatus(context.Background(), "adm1", adminRoles, "r1", "accepted")
	if err != nil {
		t.Fatalf("accept pending: %v", err)
	}
	if out.Status != "accepted" {
		t.Fatalf("status = %q", out.Status)
	}

	// r2 is already accepted; terminal states never move
	if _, err := s.SetStatus(context.Background(), "adm1", adminRoles, "r2", "rejected"); !perr.IsCode(err, perr.ErrorCodeConflict) {
		t.Fatalf("re-decide terminal = %v, want conflict", err)
	}
}

func TestSetStatus_UnknownStatusRejected(t *testing.T) {
	t.Parallel()

	s := newTestSvc(&fakeRepo{rows: someRows()}, &fakeAudit{})
	if _, err := s.SetStatus(context.Background(), "adm1", adminRoles, "r1", "maybe"); !perr.IsCode(err, perr.ErrorCodeInvalidArgument) {
		t.Fatalf("unknown status = %v, want invalid argument", err)
	}
}

func TestSetStatus_AuditsAfterSuccess(t *testing.T) {
	t.Parallel()

	a := &fakeAudit{}
	s := newTestSvc(&fakeRepo{rows: someRows()}, a)

	if _, err := s.SetStatus(context.Background(), "adm1", adminRoles, "r1", "rejected"); err != nil {
		t.Fatalf("SetStatus: %v", err)
	}

	a.mu.Lock()
	defer a.mu.Unlock()
	if len(a.events) != 1 {
		t.Fatalf("audit events = %d, want 1", len(a.events))
	}
	e := a.events[0]
	if e.Action != admindom.ActionStatusChange || e.TargetType != "service_request" || e.TargetID != "r1" {
		t.Fatalf("unexpected audit event: %+v", e)
	}
}

func TestSetStatus_NoAuditOnFailure(t *testing.T) {
	t.Parallel()

	a := &fakeAudit{}
	s := newTestSvc(&fakeRepo{rows: someRows()}, a)

	if _, err := s.SetStatus(context.Background(), "adm1", adminRoles, "r2", "accepted"); err == nil {
		t.Fatalf("expected conflict")
	}

	a.mu.Lock()
	defer a.mu.Unlock()
	if len(a.events) != 0 {
		t.Fatalf("audit recorded for failed mutation: %+v", a.events)
	}
}

func TestDelete_Audits(t *testing.T) {
	t.Parallel()

	r := &fakeRepo{rows: someRows()}
	a := &fakeAudit{}
	s := newTestSvc(r, a)

	if err := s.Delete(context.Background(), "adm1", adminRoles, "r1"); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if len(r.deleted) != 1 || r.deleted[0] != "r1" {
		t.Fatalf("delete not executed: %v", r.deleted)
	}

	a.mu.Lock()
	defer a.mu.Unlock()
	if len(a.events) != 1 || a.events[0].Action != admindom.ActionDelete {
		t.Fatalf("unexpected audit: %+v", a.events)
	}
}

func TestCreate_OpensPending(t *testing.T) {
	t.Parallel()

	r := &fakeRepo{}
	s := newTestSvc(r, &fakeAudit{})

	out, err := s.Create(context.Background(), "u1", domain.CreateInput{ServiceID: "svc-1", Message: "hi"})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if out.Status != "pending" || out.ID == "" {
		t.Fatalf("unexpected create result: %+v", out)
	}
}
