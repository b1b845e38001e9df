package portal

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"internhub/internal/apiclient"
	"internhub/internal/model"
)

type stubCreds struct{ token string }

func (s *stubCreds) Token() string { return s.token }
func (s *stubCreds) Clear()        { s.token = "" }

func newService(t *testing.T, mux *http.ServeMux) *Service {
	t.Helper()
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return New(apiclient.New(srv.URL, &stubCreds{token: "tok"}), nil)
}

func TestAllDocumentsToleratesPartialFailure(t *testing.T) {
	t.Parallel()

	mux := http.NewServeMux()
	mux.HandleFunc("/documents/intern/i1", func(w http.ResponseWriter, r *http.Request) {
		io.WriteString(w, `{"success":true,"data":[{"id":"d1","internId":"i1","status":"VERIFIED"}]}`)
	})
	mux.HandleFunc("/documents/intern/i2", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		io.WriteString(w, `{"message":"storage unavailable"}`)
	})
	mux.HandleFunc("/documents/intern/i3", func(w http.ResponseWriter, r *http.Request) {
		io.WriteString(w, `[]`)
	})
	svc := newService(t, mux)

	got, err := svc.AllDocuments(context.Background(), []model.Intern{{ID: "i1"}, {ID: "i2"}, {ID: "i3"}})
	if err != nil {
		t.Fatalf("all documents: %v", err)
	}
	if len(got) != 3 {
		t.Fatalf("entries = %d, want 3", len(got))
	}
	if len(got[0].Documents) != 1 || got[0].Documents[0].Status != model.DocumentVerified {
		t.Fatalf("i1 docs = %+v", got[0].Documents)
	}
	if got[1].Documents == nil || len(got[1].Documents) != 0 {
		t.Fatalf("failed fetch should default to an empty list, got %#v", got[1].Documents)
	}
	if got[2].Intern.ID != "i3" {
		t.Fatalf("order not preserved: %+v", got)
	}
}

func TestAllDocumentsStopsOnExpiredSession(t *testing.T) {
	t.Parallel()

	mux := http.NewServeMux()
	mux.HandleFunc("/documents/intern/", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	})
	svc := newService(t, mux)

	_, err := svc.AllDocuments(context.Background(), []model.Intern{{ID: "i1"}})
	if !errors.Is(err, apiclient.ErrSessionExpired) {
		t.Fatalf("err = %v, want ErrSessionExpired", err)
	}
}

func TestPoolsFailFast(t *testing.T) {
	t.Parallel()

	mux := http.NewServeMux()
	mux.HandleFunc("/courses", func(w http.ResponseWriter, r *http.Request) {
		io.WriteString(w, `{"success":true,"data":[{"id":"c1","title":"Go basics"}]}`)
	})
	mux.HandleFunc("/projects", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		io.WriteString(w, `{"error":"project pool offline"}`)
	})
	svc := newService(t, mux)

	_, err := svc.Pools(context.Background())
	var apiErr *apiclient.APIError
	if !errors.As(err, &apiErr) || apiErr.Message != "project pool offline" {
		t.Fatalf("err = %v, want project pool error", err)
	}
}

func TestPoolsJoin(t *testing.T) {
	t.Parallel()

	mux := http.NewServeMux()
	mux.HandleFunc("/courses", func(w http.ResponseWriter, r *http.Request) {
		io.WriteString(w, `[{"id":"c1","title":"Go basics"}]`)
	})
	mux.HandleFunc("/projects", func(w http.ResponseWriter, r *http.Request) {
		io.WriteString(w, `{"success":true,"message":"","data":[{"id":"p1","title":"Portal"},{"id":"p2","title":"Scheduler"}]}`)
	})
	svc := newService(t, mux)

	p, err := svc.Pools(context.Background())
	if err != nil {
		t.Fatalf("pools: %v", err)
	}
	if len(p.Courses) != 1 || len(p.Projects) != 2 {
		t.Fatalf("pools = %+v", p)
	}
}

func TestMonthlyAttendanceQuery(t *testing.T) {
	t.Parallel()

	mux := http.NewServeMux()
	mux.HandleFunc("/attendance/monthly", func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		if q.Get("year") != "2024" || q.Get("month") != "3" || q.Get("internId") != "i9" {
			t.Errorf("query = %s", r.URL.RawQuery)
		}
		io.WriteString(w, `{"success":true,"data":[{"date":"2024-03-01T00:00:00.000Z","status":"PRESENT","networkTrusted":true}]}`)
	})
	svc := newService(t, mux)

	recs, err := svc.MonthlyAttendance(context.Background(), 2024, time.March, "i9")
	if err != nil {
		t.Fatalf("monthly: %v", err)
	}
	if len(recs) != 1 || recs[0].Date.String() != "2024-03-01" || !recs[0].NetworkTrusted {
		t.Fatalf("records = %+v", recs)
	}
}

func TestApplyOfferActionRejectsUnknown(t *testing.T) {
	t.Parallel()

	svc := newService(t, http.NewServeMux())
	if _, err := svc.ApplyOfferAction(context.Background(), "o1", "archive"); err == nil {
		t.Fatal("expected error for unknown action")
	}
}

func TestRosterMergesBothSources(t *testing.T) {
	t.Parallel()

	mux := http.NewServeMux()
	mux.HandleFunc("/candidates", func(w http.ResponseWriter, r *http.Request) {
		io.WriteString(w, `[{"id":"c1","email":"a@example.com","status":"SELECTED"},{"id":"c2","email":"b@example.com","status":"APPLIED"}]`)
	})
	mux.HandleFunc("/interns", func(w http.ResponseWriter, r *http.Request) {
		io.WriteString(w, `{"success":true,"data":[{"id":"i1","email":"a@example.com","status":"ACTIVE"}]}`)
	})
	svc := newService(t, mux)

	entries, err := svc.Roster(context.Background())
	if err != nil {
		t.Fatalf("roster: %v", err)
	}
	if len(entries) != 2 || entries[0].ID != "i1" || entries[1].ID != "c2" {
		t.Fatalf("entries = %+v", entries)
	}
}

func TestNumericIDsDecode(t *testing.T) {
	t.Parallel()

	mux := http.NewServeMux()
	mux.HandleFunc("/interns/1", func(w http.ResponseWriter, r *http.Request) {
		io.WriteString(w, `{"success":true,"data":{"id":1,"name":"Asha","email":"asha@example.com","collegeId":4,"joinDate":"2024-03-04","status":"ACTIVE"}}`)
	})
	mux.HandleFunc("/attendance/today", func(w http.ResponseWriter, r *http.Request) {
		io.WriteString(w, `{"success":true,"data":{"id":31,"internId":1,"date":"2024-03-15","status":"PRESENT","checkInTime":"2024-03-15T09:00:00"}}`)
	})
	svc := newService(t, mux)

	in, err := svc.GetIntern(context.Background(), "1")
	if err != nil {
		t.Fatalf("get intern: %v", err)
	}
	if in.ID != "1" || in.CollegeID != "4" {
		t.Fatalf("intern = %+v", in)
	}

	rec, err := svc.TodayAttendance(context.Background())
	if err != nil {
		t.Fatalf("today: %v", err)
	}
	if rec == nil || rec.InternID != "1" || rec.CheckInTime.String() != "2024-03-15T09:00:00Z" {
		t.Fatalf("record = %+v", rec)
	}
}
