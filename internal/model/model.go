package model

import "encoding/json"

// User is the profile stored with a session. Intern accounts may also
// carry their intern id and join date when the backend sends them.
type User struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	UserType string `json:"userType"`
	InternID ID     `json:"internId,omitempty"`
	JoinDate Date   `json:"joinDate"`
}

// AttendanceRecord is one intern's attendance for one date.
type AttendanceRecord struct {
	ID             ID               `json:"id,omitempty"`
	InternID       ID               `json:"internId,omitempty"`
	Date           Date             `json:"date"`
	Status         AttendanceStatus `json:"status"`
	CheckInTime    *Timestamp       `json:"checkInTime,omitempty"`
	CheckOutTime   *Timestamp       `json:"checkOutTime,omitempty"`
	NetworkTrusted bool             `json:"networkTrusted"`
	IPAddress      string           `json:"ipAddress"`
	UserAgent      string           `json:"userAgent"`
}

// UnmarshalJSON anchors clock-only check-in and check-out times to the
// record's date.
func (r *AttendanceRecord) UnmarshalJSON(b []byte) error {
	type plain AttendanceRecord
	var v plain
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}
	*r = AttendanceRecord(v)
	if r.CheckInTime != nil {
		t := r.CheckInTime.On(r.Date)
		r.CheckInTime = &t
	}
	if r.CheckOutTime != nil {
		t := r.CheckOutTime.On(r.Date)
		r.CheckOutTime = &t
	}
	return nil
}

// ProgressLog is a daily self-report against an assigned project.
type ProgressLog struct {
	ID                   ID     `json:"id"`
	InternID             ID     `json:"internId"`
	ProjectID            ID     `json:"projectId"`
	LogDate              Date   `json:"logDate"`
	CompletionPercentage int    `json:"completionPercentage"`
	Description          string `json:"description"`
	Achievements         string `json:"achievements"`
	Challenges           string `json:"challenges"`
	NextSteps            string `json:"nextSteps"`
	AdminComment         string `json:"adminComment,omitempty"`
}

type Project struct {
	ID          ID             `json:"id"`
	Title       string         `json:"title"`
	Description string         `json:"description,omitempty"`
	Status      LearningStatus `json:"status,omitempty"`
}

type Course struct {
	ID       ID             `json:"id"`
	Title    string         `json:"title"`
	Provider string         `json:"provider,omitempty"`
	URL      string         `json:"url,omitempty"`
	Status   LearningStatus `json:"status,omitempty"`
}

type Intern struct {
	ID               ID           `json:"id"`
	Name             string       `json:"name"`
	Email            string       `json:"email"`
	Phone            string       `json:"phone,omitempty"`
	CollegeID        ID           `json:"collegeId,omitempty"`
	JoinDate         Date         `json:"joinDate"`
	Status           InternStatus `json:"status"`
	AssignedProjects []Project    `json:"assignedProjects,omitempty"`
}

// HiringRound is one interview stage, e.g. "Technical Round 1".
type HiringRound struct {
	Name        string     `json:"name"`
	Status      string     `json:"status"`
	ScheduledAt *Timestamp `json:"scheduledAt,omitempty"`
	Feedback    string     `json:"feedback,omitempty"`
}

type Candidate struct {
	ID        ID              `json:"id"`
	Name      string          `json:"name"`
	Email     string          `json:"email"`
	Phone     string          `json:"phone,omitempty"`
	CollegeID ID              `json:"collegeId,omitempty"`
	Status    CandidateStatus `json:"status"`
	Rounds    []HiringRound   `json:"rounds,omitempty"`
}

type College struct {
	ID            ID          `json:"id,omitempty"`
	Name          string      `json:"name" binding:"required"`
	Location      string      `json:"location"`
	ContactPerson string      `json:"contactPerson"`
	ContactEmail  string      `json:"contactEmail"`
	ContactPhone  string      `json:"contactPhone"`
	VisitDate     Date        `json:"visitDate"`
	Status        VisitStatus `json:"status"`
	Notes         string      `json:"notes,omitempty"`
}

type Document struct {
	ID              ID             `json:"id"`
	InternID        ID             `json:"internId"`
	Name            string         `json:"name"`
	Type            string         `json:"type"`
	FileURL         string         `json:"fileUrl"`
	Status          DocumentStatus `json:"status"`
	RejectionReason string         `json:"rejectionReason,omitempty"`
	UploadedAt      *Timestamp     `json:"uploadedAt,omitempty"`
}

type Offer struct {
	ID        ID          `json:"id,omitempty"`
	InternID  ID          `json:"internId" binding:"required"`
	Position  string      `json:"position" binding:"required"`
	Stipend   float64     `json:"stipend"`
	StartDate Date        `json:"startDate"`
	Status    OfferStatus `json:"status,omitempty"`
	SentAt    *Timestamp  `json:"sentAt,omitempty"`
}

// LearningOverview is what /my-learning returns for the signed-in intern.
type LearningOverview struct {
	Courses      []Course      `json:"courses"`
	Projects     []Project     `json:"projects"`
	ProgressLogs []ProgressLog `json:"progressLogs"`
}
