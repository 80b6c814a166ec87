package registry

// PerformanceStatus classifies a student's combined GPA/attendance standing.
type PerformanceStatus string

const (
	StatusExcellent PerformanceStatus = "excellent"
	StatusNeutral   PerformanceStatus = "neutral"
	StatusWarning   PerformanceStatus = "warning"
)

// Performance is the computed (GPA, attendance) pair with its classification.
type Performance struct {
	GPA        float64
	Attendance float64
	Status     PerformanceStatus
}

// classifyPerformance derives a status from already-computed metrics.
func classifyPerformance(gpa, attendance float64) PerformanceStatus {
	switch {
	case gpa >= 3.5 && attendance >= 90:
		return StatusExcellent
	case gpa < 2.0 || attendance < 60:
		return StatusWarning
	default:
		return StatusNeutral
	}
}

// CourseDetails is a course's portion of a full report.
type CourseDetails struct {
	Code        string
	Title       string
	CreditHours int
	Lecturer    string
	Students    []string
}

// TeachingLoad is one assigned course in a lecturer summary.
type TeachingLoad struct {
	CourseTitle string
	Students    int
}

// LecturerSummary is a lecturer's portion of a full report.
type LecturerSummary struct {
	Name       string
	Department string
	Teaching   []TeachingLoad
}

// StudentPerformance is a student's portion of a full report.
type StudentPerformance struct {
	ID   string
	Name string
	Performance
}

// Report is the read-only result of a full directory traversal. Rendering it
// for display is the caller's concern.
type Report struct {
	Courses   []CourseDetails
	Lecturers []LecturerSummary
	Students  []StudentPerformance
}
