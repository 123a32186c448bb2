package dto

// CoursesListRequest filters one elective catalog by semester
type CoursesListRequest struct {
	CoursesType string `json:"courses_type" binding:"required"`
	Semester    int    `json:"semester" binding:"required,min=1"`
}

// CourseListItem is one catalog row with seat availability
type CourseListItem struct {
	Name           string `json:"name"`
	PaperCode      string `json:"papercode"`
	DepartmentName string `json:"department_name"`
	AvailableSeats int    `json:"available_seats"`
	TotalSeats     int    `json:"total_seats"`
}
