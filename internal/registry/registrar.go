package registry

// Registrar owns the authoritative directory of students, courses and
// lecturers. Directory membership is a precondition for Enroll, and entities
// are traversed in insertion order when reporting. Adding a student to the
// directory does not enroll them in any course.
type Registrar struct {
	students  map[string]*Student
	courses   map[string]*Course
	lecturers map[string]*Lecturer

	studentOrder  []string
	courseOrder   []string
	lecturerOrder []string
}

// NewRegistrar creates an empty registrar.
func NewRegistrar() *Registrar {
	return &Registrar{
		students:  make(map[string]*Student),
		courses:   make(map[string]*Course),
		lecturers: make(map[string]*Lecturer),
	}
}

// AddStudent inserts a student into the directory. Returns false without
// mutation when a student with the same id is already present.
func (r *Registrar) AddStudent(s *Student) bool {
	if s == nil {
		return false
	}
	if _, ok := r.students[s.ID()]; ok {
		return false
	}

	r.students[s.ID()] = s
	r.studentOrder = append(r.studentOrder, s.ID())
	return true
}

// AddCourse inserts a course into the directory. Returns false without
// mutation when a course with the same code is already present.
func (r *Registrar) AddCourse(c *Course) bool {
	if c == nil {
		return false
	}
	if _, ok := r.courses[c.code]; ok {
		return false
	}

	r.courses[c.code] = c
	r.courseOrder = append(r.courseOrder, c.code)
	return true
}

// AddLecturer inserts a lecturer into the directory. Returns false without
// mutation when a lecturer with the same id is already present.
func (r *Registrar) AddLecturer(l *Lecturer) bool {
	if l == nil {
		return false
	}
	if _, ok := r.lecturers[l.ID()]; ok {
		return false
	}

	r.lecturers[l.ID()] = l
	r.lecturerOrder = append(r.lecturerOrder, l.ID())
	return true
}

// StudentByID looks up a student in the directory.
func (r *Registrar) StudentByID(id string) (*Student, bool) {
	s, ok := r.students[id]
	return s, ok
}

// CourseByCode looks up a course in the directory.
func (r *Registrar) CourseByCode(code string) (*Course, bool) {
	c, ok := r.courses[code]
	return c, ok
}

// LecturerByID looks up a lecturer in the directory.
func (r *Registrar) LecturerByID(id string) (*Lecturer, bool) {
	l, ok := r.lecturers[id]
	return l, ok
}

// Enroll links a student and a course identified by their directory keys.
// Both must already be in the directory; the actual link is delegated to
// Course.EnrollStudent so the roster and the student's course list stay
// consistent. This is the recommended entry point for enrollment.
func (r *Registrar) Enroll(studentID, courseCode string) bool {
	s, ok := r.students[studentID]
	if !ok {
		return false
	}
	c, ok := r.courses[courseCode]
	if !ok {
		return false
	}

	return c.EnrollStudent(s)
}

// FullReport traverses the directory in insertion order and collects each
// entity's own report. It reads state but never mutates it.
func (r *Registrar) FullReport() Report {
	report := Report{
		Courses:   make([]CourseDetails, 0, len(r.courseOrder)),
		Lecturers: make([]LecturerSummary, 0, len(r.lecturerOrder)),
		Students:  make([]StudentPerformance, 0, len(r.studentOrder)),
	}

	for _, code := range r.courseOrder {
		report.Courses = append(report.Courses, r.courses[code].Details())
	}
	for _, id := range r.lecturerOrder {
		report.Lecturers = append(report.Lecturers, r.lecturers[id].Summary())
	}
	for _, id := range r.studentOrder {
		s := r.students[id]
		report.Students = append(report.Students, StudentPerformance{
			ID:          s.ID(),
			Name:        s.Name,
			Performance: s.ReportPerformance(),
		})
	}

	return report
}
