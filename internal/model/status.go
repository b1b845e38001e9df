package model

// AttendanceStatus is the backend's verdict for one attendance day.
type AttendanceStatus string

const (
	AttendancePresent AttendanceStatus = "PRESENT"
	AttendanceHalfDay AttendanceStatus = "HALF_DAY"
	AttendanceAbsent  AttendanceStatus = "ABSENT"
)

// InternStatus tracks an intern through verification, offer and onboarding.
type InternStatus string

const (
	InternDocumentsPending  InternStatus = "DOCUMENTS_PENDING"
	InternDocumentsVerified InternStatus = "DOCUMENTS_VERIFIED"
	InternOfferSent         InternStatus = "OFFER_SENT"
	InternOfferAccepted     InternStatus = "OFFER_ACCEPTED"
	InternOnboarding        InternStatus = "ONBOARDING"
	InternActive            InternStatus = "ACTIVE"
	InternCompleted         InternStatus = "COMPLETED"
	InternTerminated        InternStatus = "TERMINATED"
)

type CandidateStatus string

const (
	CandidateApplied     CandidateStatus = "APPLIED"
	CandidateShortlisted CandidateStatus = "SHORTLISTED"
	CandidateInterview   CandidateStatus = "IN_INTERVIEW"
	CandidateSelected    CandidateStatus = "SELECTED"
	CandidateRejected    CandidateStatus = "REJECTED"
)

type DocumentStatus string

const (
	DocumentPending  DocumentStatus = "PENDING"
	DocumentVerified DocumentStatus = "VERIFIED"
	DocumentRejected DocumentStatus = "REJECTED"
)

type OfferStatus string

const (
	OfferDraft    OfferStatus = "DRAFT"
	OfferSent     OfferStatus = "SENT"
	OfferAccepted OfferStatus = "ACCEPTED"
	OfferRejected OfferStatus = "REJECTED"
)

// VisitStatus is the state of a college visit.
type VisitStatus string

const (
	VisitPlanned   VisitStatus = "PLANNED"
	VisitScheduled VisitStatus = "SCHEDULED"
	VisitCompleted VisitStatus = "COMPLETED"
	VisitCancelled VisitStatus = "CANCELLED"
)

type LearningStatus string

const (
	LearningNotStarted LearningStatus = "NOT_STARTED"
	LearningInProgress LearningStatus = "IN_PROGRESS"
	LearningCompleted  LearningStatus = "COMPLETED"
)

var attendanceLabels = map[AttendanceStatus]string{
	AttendancePresent: "Present",
	AttendanceHalfDay: "Half Day",
	AttendanceAbsent:  "Absent",
}

var internLabels = map[InternStatus]string{
	InternDocumentsPending:  "Documents Pending",
	InternDocumentsVerified: "Documents Verified",
	InternOfferSent:         "Offer Sent",
	InternOfferAccepted:     "Offer Accepted",
	InternOnboarding:        "Onboarding",
	InternActive:            "Active",
	InternCompleted:         "Completed",
	InternTerminated:        "Terminated",
}

var candidateLabels = map[CandidateStatus]string{
	CandidateApplied:     "Applied",
	CandidateShortlisted: "Shortlisted",
	CandidateInterview:   "In Interview",
	CandidateSelected:    "Selected",
	CandidateRejected:    "Rejected",
}

var documentLabels = map[DocumentStatus]string{
	DocumentPending:  "Pending",
	DocumentVerified: "Verified",
	DocumentRejected: "Rejected",
}

var offerLabels = map[OfferStatus]string{
	OfferDraft:    "Draft",
	OfferSent:     "Sent",
	OfferAccepted: "Accepted",
	OfferRejected: "Rejected",
}

var visitLabels = map[VisitStatus]string{
	VisitPlanned:   "Planned",
	VisitScheduled: "Scheduled",
	VisitCompleted: "Completed",
	VisitCancelled: "Cancelled",
}

var learningLabels = map[LearningStatus]string{
	LearningNotStarted: "Not Started",
	LearningInProgress: "In Progress",
	LearningCompleted:  "Completed",
}

// label looks s up in table; unknown values are shown as sent.
func label[S ~string](table map[S]string, s S) string {
	if l, ok := table[s]; ok {
		return l
	}
	return string(s)
}

func (s AttendanceStatus) Label() string { return label(attendanceLabels, s) }
func (s InternStatus) Label() string     { return label(internLabels, s) }
func (s CandidateStatus) Label() string  { return label(candidateLabels, s) }
func (s DocumentStatus) Label() string   { return label(documentLabels, s) }
func (s OfferStatus) Label() string      { return label(offerLabels, s) }
func (s VisitStatus) Label() string      { return label(visitLabels, s) }
func (s LearningStatus) Label() string   { return label(learningLabels, s) }
