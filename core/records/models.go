package records

import (
	"sort"
	"strings"

	"github.com/volatiletech/null/v8"

	"github.com/trezcool/darasa/core"
)

// Roles
const (
	RoleAdmin   Role = "admin"
	RoleStudent Role = "student"
	RoleFaculty Role = "faculty"
)

var AllRoles = []Role{RoleAdmin, RoleStudent, RoleFaculty}

type Role string

func (r Role) Valid() bool {
	for _, role := range AllRoles {
		if r == role {
			return true
		}
	}
	return false
}

// Label returns the role name capitalized for display.
func (r Role) Label() string {
	if r == "" {
		return ""
	}
	return strings.ToUpper(string(r[0])) + string(r[1:])
}

// Credentials is the role-partitioned directory of user identifiers and their secrets.
// A user identifier is unique across the entire directory, not just within its role.
type Credentials map[Role]map[string]string

// roleOf scans all roles for the given user ID.
func (c Credentials) roleOf(id string) (Role, bool) {
	for role, users := range c {
		if _, ok := users[id]; ok {
			return role, true
		}
	}
	return "", false
}

// ids returns the user IDs registered under the given role, sorted.
func (c Credentials) ids(role Role) []string {
	users := c[role]
	ids := make([]string, 0, len(users))
	for id := range users {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

func (c Credentials) copy() Credentials {
	cpy := make(Credentials, len(c))
	for role, users := range c {
		cpy[role] = make(map[string]string, len(users))
		for id, secret := range users {
			cpy[role][id] = secret
		}
	}
	return cpy
}

// normalize ensures every known role has a (possibly empty) user mapping.
func (c Credentials) normalize() {
	for _, role := range AllRoles {
		if c[role] == nil {
			c[role] = make(map[string]string)
		}
	}
}

// Course describes a catalog entry. Faculty is null while the course is unassigned.
type Course struct {
	Name    string      `json:"name"`
	Faculty null.String `json:"faculty"`
}

type Catalog map[string]Course

// IDs returns all course IDs in catalog order (lexicographic).
func (cat Catalog) IDs() []string {
	ids := make([]string, 0, len(cat))
	for id := range cat {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

func (cat Catalog) copy() Catalog {
	cpy := make(Catalog, len(cat))
	for id, crs := range cat {
		cpy[id] = crs
	}
	return cpy
}

type Project struct {
	Title string `json:"title"`
	Due   string `json:"due"`
}

type Exam struct {
	Subject string `json:"subject"`
	Date    string `json:"date"`
	Time    string `json:"time"`
}

// CourseRecord holds a student's academic record for one course.
// Attendance stays null until first set.
type CourseRecord struct {
	Attendance null.Int          `json:"attendance"`
	Marks      map[string]string `json:"marks"`
	Projects   []Project         `json:"projects"`
}

func newCourseRecord() *CourseRecord {
	return &CourseRecord{
		Marks:    make(map[string]string),
		Projects: []Project{},
	}
}

// StudentRecord tracks a student's enrollment and per-course records.
// CourseData has an entry for a course iff its ID is in EnrolledCourses.
type StudentRecord struct {
	EnrolledCourses []string                 `json:"enrolled_courses"`
	CourseData      map[string]*CourseRecord `json:"course_data"`
}

func newStudentRecord() *StudentRecord {
	return &StudentRecord{
		EnrolledCourses: []string{},
		CourseData:      make(map[string]*CourseRecord),
	}
}

func (sr *StudentRecord) isEnrolled(courseID string) bool {
	for _, id := range sr.EnrolledCourses {
		if id == courseID {
			return true
		}
	}
	return false
}

// Ledger is the per-student academic ledger plus the institution-wide exam schedule,
// persisted together as one document.
type Ledger struct {
	Students     map[string]*StudentRecord `json:"students"`
	ExamSchedule []Exam                    `json:"exam_schedule"`
}

// normalize fills in nested maps/slices left nil by JSON decoding.
func (l *Ledger) normalize() {
	if l.Students == nil {
		l.Students = make(map[string]*StudentRecord)
	}
	for _, sr := range l.Students {
		if sr.EnrolledCourses == nil {
			sr.EnrolledCourses = []string{}
		}
		if sr.CourseData == nil {
			sr.CourseData = make(map[string]*CourseRecord)
		}
		for _, cr := range sr.CourseData {
			if cr.Marks == nil {
				cr.Marks = make(map[string]string)
			}
			if cr.Projects == nil {
				cr.Projects = []Project{}
			}
		}
	}
	if l.ExamSchedule == nil {
		l.ExamSchedule = []Exam{}
	}
}

// NewAccount contains information needed to register a new account.
type NewAccount struct {
	Role   Role   `json:"role" validate:"required,role"`
	ID     string `json:"id" validate:"required"`
	Secret string `json:"secret" validate:"required"`

	// Courses optionally assigns catalog courses to a new faculty member;
	// ignored for other roles. Unknown course IDs are skipped silently.
	Courses []string `json:"courses"`
}

func (na *NewAccount) Validate() error {
	na.ID = core.CleanString(na.ID)
	return core.Validate.Struct(na)
}
