package roster

import (
	"reflect"
	"testing"
	"time"

	"internhub/internal/model"
)

func TestMergeInternWins(t *testing.T) {
	t.Parallel()

	candidates := []model.Candidate{
		{ID: "c1", Name: "Ravi K", Email: "ravi@example.com", Phone: "111", Status: model.CandidateSelected,
			Rounds: []model.HiringRound{{Name: "Technical Round 1", Status: "PASSED"}}},
		{ID: "c2", Name: "Meera", Email: "meera@example.com", Status: model.CandidateInterview},
	}
	interns := []model.Intern{
		{ID: "i1", Name: "Ravi Kumar", Email: "ravi@example.com", Status: model.InternDocumentsPending,
			JoinDate: model.NewDate(2024, time.March, 10)},
	}

	got := Merge(candidates, interns)
	if len(got) != 2 {
		t.Fatalf("entries = %d, want 2: %+v", len(got), got)
	}

	meera, ravi := got[0], got[1]
	if meera.Kind != KindCandidate || meera.StatusLabel != "In Interview" {
		t.Fatalf("meera = %+v", meera)
	}
	if ravi.Kind != KindIntern || ravi.ID != "i1" || ravi.Name != "Ravi Kumar" {
		t.Fatalf("ravi = %+v", ravi)
	}
	if ravi.Phone != "111" || len(ravi.Rounds) != 1 {
		t.Fatalf("candidate fields should fill gaps the intern leaves: %+v", ravi)
	}
	if ravi.Status != string(model.InternDocumentsPending) {
		t.Fatalf("status = %s, want intern status", ravi.Status)
	}
}

func TestMergeDropsCandidateRegardlessOfStatus(t *testing.T) {
	t.Parallel()

	candidates := []model.Candidate{{ID: "c1", Email: "x@example.com", Status: model.CandidateRejected}}
	interns := []model.Intern{{ID: "i1", Email: "x@example.com", Status: model.InternActive}}

	got := Merge(candidates, interns)
	if len(got) != 1 || got[0].Kind != KindIntern {
		t.Fatalf("got %+v, want only the intern", got)
	}
}

func TestMergeOrderIndependent(t *testing.T) {
	t.Parallel()

	candidates := []model.Candidate{
		{ID: "c3", Email: "b@example.com"},
		{ID: "c1", Email: "a@example.com"},
		{ID: "c2", Email: "a@example.com"},
		{ID: "c4", Email: ""},
	}
	interns := []model.Intern{
		{ID: "i2", Email: "c@example.com"},
		{ID: "i1", Email: "b@example.com"},
	}

	first := Merge(candidates, interns)
	reversedC := []model.Candidate{candidates[3], candidates[2], candidates[1], candidates[0]}
	reversedI := []model.Intern{interns[1], interns[0]}
	second := Merge(reversedC, reversedI)

	if !reflect.DeepEqual(first, second) {
		t.Fatalf("merge depends on input order:\n%+v\n%+v", first, second)
	}
	if len(first) != 4 {
		t.Fatalf("entries = %d, want 4", len(first))
	}
	if first[1].Email != "a@example.com" || first[1].ID != "c1" {
		t.Fatalf("duplicate candidate should keep lowest id, got %+v", first[1])
	}
}

func TestMergeKeepsNumericallyLowestID(t *testing.T) {
	t.Parallel()

	candidates := []model.Candidate{
		{ID: "10", Email: "dup@example.com", Name: "later"},
		{ID: "9", Email: "dup@example.com", Name: "earlier"},
	}
	got := Merge(candidates, nil)
	if len(got) != 1 || got[0].ID != "9" || got[0].Name != "earlier" {
		t.Fatalf("got %+v, want id 9", got)
	}

	mixed := Merge([]model.Candidate{{ID: "c2", Email: "x@example.com"}, {ID: "c10", Email: "x@example.com"}}, nil)
	if mixed[0].ID != "c10" {
		t.Fatalf("non-numeric ids compare as strings, got %s", mixed[0].ID)
	}
}
