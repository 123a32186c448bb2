package models

// CourseType distinguishes the two parallel elective catalogs.
type CourseType string

const (
	CourseTypeVAC CourseType = "VAC"
	CourseTypeVOC CourseType = "VOC"
)

// Course defines a seat-counted elective course row. The same shape backs
// both the 'vac_courses' and 'voc_courses' tables.
//
// Invariant: RegisteredSeats <= TotalSeats after every registration; the
// counter only increases.
type Course struct {
	Semester        int    `json:"semester" db:"semester"`
	CourseCode      string `json:"course_code" db:"course_code"` // Unique per catalog
	CourseName      string `json:"course_name" db:"course_name"`
	DepartmentName  string `json:"department_name" db:"department_name"`
	TotalSeats      int    `json:"total_seats" db:"total_seats"`
	RegisteredSeats int    `json:"registered_seats" db:"registered_seats"`
}

// SeatsRemaining returns the number of unclaimed seats.
func (c Course) SeatsRemaining() int {
	return c.TotalSeats - c.RegisteredSeats
}
