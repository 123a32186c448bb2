package models

// RegistrationStatus tracks how far a student has progressed through the
// registration workflow.
type RegistrationStatus string

const (
	StatusPending   RegistrationStatus = "Pending"
	StatusPartial   RegistrationStatus = "Partial"
	StatusCompleted RegistrationStatus = "Completed"
)

// Registration defines the registration model based on the 'registrations'
// table. One row per user, keyed by enrollment number.
type Registration struct {
	ID                     int64              `json:"id" db:"id"`
	Name                   string             `json:"name" db:"name"`
	Status                 RegistrationStatus `json:"registration_status" db:"registration_status"`
	ABCID                  string             `json:"abc_id" db:"abc_id"` // National academic bank of credits id
	UserEnrollmentNumber   string             `json:"user_enrollment_number" db:"user_enrollment_number"`
	FacultyNumber          string             `json:"faculty_number" db:"faculty_number"` // Unique across registrations
	Gender                 string             `json:"gender" db:"gender"`
	ProgrammeName          string             `json:"programme_name" db:"programme_name"`
	MajorAllottedSubject   string             `json:"major_allotted_subject" db:"major_allotted_subject"`
	MinorAllottedSubject   string             `json:"minor_allotted_subject" db:"minor_allotted_subject"`
	GenericAllottedSubject string             `json:"generic_allotted_subject" db:"generic_allotted_subject"`
}

// RegisteredCourse defines one semester's chosen elective pair based on the
// 'registered_courses' table. Append-only; a user accumulates one row per
// semester, ordered by semester.
type RegisteredCourse struct {
	ID                   int64  `json:"id" db:"id"`
	UserEnrollmentNumber string `json:"user_enrollment_number" db:"user_enrollment_number"`
	Semester             int    `json:"semester" db:"semester"`
	VAC                  string `json:"vac" db:"vac"`
	VACPaperCode         string `json:"vac_papercode" db:"vac_papercode"`
	VOC                  string `json:"voc" db:"voc"`
	VOCPaperCode         string `json:"voc_papercode" db:"voc_papercode"`
}
