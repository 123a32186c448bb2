package dto

// UserDetailsRequest carries the personal-details step of registration
type UserDetailsRequest struct {
	Name                   string `json:"name" binding:"required"`
	ABCID                  string `json:"abc_id" binding:"required"`
	FacultyNumber          string `json:"faculty_number" binding:"required"`
	Gender                 string `json:"gender" binding:"required"`
	ProgrammeName          string `json:"programme_name" binding:"required"`
	MajorAllottedSubject   string `json:"major_allotted_subject" binding:"required"`
	MinorAllottedSubject   string `json:"minor_allotted_subject" binding:"required"`
	GenericAllottedSubject string `json:"generic_allotted_subject" binding:"required"`
}

// UserCoursesRequest carries the elective-selection step of registration
type UserCoursesRequest struct {
	Semester     int    `json:"semester" binding:"required,min=1"`
	VAC          string `json:"vac" binding:"required"`
	VACPaperCode string `json:"vac_papercode" binding:"required"`
	VOC          string `json:"voc" binding:"required"`
	VOCPaperCode string `json:"voc_papercode" binding:"required"`
}

// FullRegistrationResponse flattens Registration, the user's phone number and
// up to two semesters of registered courses into one payload. Fields for an
// absent second semester render as zero/empty values.
type FullRegistrationResponse struct {
	Name                   string `json:"name"`
	ID                     int64  `json:"id"`
	UserEnrollmentNumber   string `json:"user_enrollment_number"`
	MobileNo               string `json:"mobile_no"`
	Gender                 string `json:"gender"`
	ProgrammeName          string `json:"programme_name"`
	MinorAllottedSubject   string `json:"minor_allotted_subject"`
	ABCID                  string `json:"abc_id"`
	RegistrationStatus     string `json:"registration_status"`
	FacultyNumber          string `json:"faculty_number"`
	MajorAllottedSubject   string `json:"major_allotted_subject"`
	GenericAllottedSubject string `json:"generic_allotted_subject"`
	SemesterI              int    `json:"semester_I"`
	VACI                   string `json:"vac_I"`
	VACPaperCodeI          string `json:"vac_papercode_I"`
	VOCI                   string `json:"voc_I"`
	VOCPaperCodeI          string `json:"voc_papercode_I"`
	SemesterII             int    `json:"semester_II"`
	VACII                  string `json:"vac_II"`
	VACPaperCodeII         string `json:"vac_papercode_II"`
	VOCII                  string `json:"voc_II"`
	VOCPaperCodeII         string `json:"voc_papercode_II"`
}
