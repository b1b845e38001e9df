// Package roster combines candidates and interns into one list keyed by
// email.
package roster

import (
	"sort"

	"internhub/internal/model"
)

// Kind tags which record an Entry came from.
type Kind string

const (
	KindCandidate Kind = "CANDIDATE"
	KindIntern    Kind = "INTERN"
)

// Entry is a candidate or an intern. Status holds the label of whichever
// status enum applies to Kind.
type Entry struct {
	Kind        Kind     `json:"kind"`
	ID          model.ID `json:"id"`
	Name        string   `json:"name"`
	Email       string   `json:"email"`
	Phone       string   `json:"phone,omitempty"`
	CollegeID   model.ID `json:"collegeId,omitempty"`
	Status      string   `json:"status"`
	StatusLabel string   `json:"statusLabel"`

	JoinDate model.Date          `json:"joinDate"`
	Rounds   []model.HiringRound `json:"rounds,omitempty"`
}

func fromCandidate(c model.Candidate) Entry {
	return Entry{
		Kind:        KindCandidate,
		ID:          c.ID,
		Name:        c.Name,
		Email:       c.Email,
		Phone:       c.Phone,
		CollegeID:   c.CollegeID,
		Status:      string(c.Status),
		StatusLabel: c.Status.Label(),
		Rounds:      c.Rounds,
	}
}

// overlay copies the intern's non-empty fields over e and retags it as an
// intern. Candidate-only fields such as hiring rounds survive.
func overlay(e Entry, in model.Intern) Entry {
	e.Kind = KindIntern
	e.ID = in.ID
	e.Status = string(in.Status)
	e.StatusLabel = in.Status.Label()
	e.Email = in.Email
	if in.Name != "" {
		e.Name = in.Name
	}
	if in.Phone != "" {
		e.Phone = in.Phone
	}
	if in.CollegeID != "" {
		e.CollegeID = in.CollegeID
	}
	if !in.JoinDate.IsZero() {
		e.JoinDate = in.JoinDate
	}
	return e
}

// Merge joins candidates and interns by exact email. When an intern shares
// an email with a candidate the intern wins, whatever either status says,
// and the candidate no longer appears on its own. Entries without an email
// are never merged. The result is sorted by email then id, so it does not
// depend on input order.
func Merge(candidates []model.Candidate, interns []model.Intern) []Entry {
	cands := make(map[string]model.Candidate, len(candidates))
	ints := make(map[string]model.Intern, len(interns))
	var out []Entry

	for _, c := range candidates {
		if c.Email == "" {
			out = append(out, fromCandidate(c))
			continue
		}
		// Duplicate emails within one kind keep the lowest id, compared
		// numerically when both ids are numbers.
		if prev, ok := cands[c.Email]; !ok || c.ID.Less(prev.ID) {
			cands[c.Email] = c
		}
	}
	for _, in := range interns {
		if in.Email == "" {
			out = append(out, overlay(Entry{}, in))
			continue
		}
		if prev, ok := ints[in.Email]; !ok || in.ID.Less(prev.ID) {
			ints[in.Email] = in
		}
	}

	for email, in := range ints {
		base := Entry{}
		if c, ok := cands[email]; ok {
			base = fromCandidate(c)
		}
		out = append(out, overlay(base, in))
	}
	for email, c := range cands {
		if _, shadowed := ints[email]; !shadowed {
			out = append(out, fromCandidate(c))
		}
	}

	sort.Slice(out, func(i, j int) bool {
		if out[i].Email != out[j].Email {
			return out[i].Email < out[j].Email
		}
		if out[i].Kind != out[j].Kind {
			return out[i].Kind < out[j].Kind
		}
		return out[i].ID.Less(out[j].ID)
	})
	return out
}
