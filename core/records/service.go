package records

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"github.com/volatiletech/null/v8"

	"github.com/trezcool/darasa/core"
)

var (
	// errors
	ErrUserNotFound         = errors.New("user not found")
	ErrUserExists           = errors.New("user already exists")
	ErrStudentNotFound      = errors.New("student not found")
	ErrNoEnrolledStudents   = errors.New("no students are enrolled in this course")
	ErrAuthenticationFailed = errors.New("authentication failed")

	// storage conditions reported by repositories
	ErrNoData  = errors.New("no stored data")
	ErrBadData = errors.New("malformed stored data")
)

type (
	// CredentialsRepository loads and rewrites the credential directory document.
	CredentialsRepository interface {
		Load() (Credentials, error)
		Save(Credentials) error
	}

	// CatalogRepository loads and rewrites the course catalog document.
	CatalogRepository interface {
		Load() (Catalog, error)
		Save(Catalog) error
	}

	// LedgerRepository loads and rewrites the academic ledger document.
	LedgerRepository interface {
		Load() (Ledger, error)
		Save(Ledger) error
	}

	// Store owns the credential directory, the course catalog and the academic
	// ledger in memory, and writes the affected document(s) back through its
	// repositories after every mutation. It assumes a single caller at a time.
	Store struct {
		conf *core.Config
		log  core.Logger

		creds   Credentials
		catalog Catalog
		ledger  Ledger

		credsRepo   CredentialsRepository
		catalogRepo CatalogRepository
		ledgerRepo  LedgerRepository
	}
)

// NewStore loads all three collections, seeding any that is missing or unreadable.
// An unreadable document is discarded and overwritten with its seed; this lossy
// recovery is reported through the logger.
func NewStore(
	conf *core.Config,
	log core.Logger,
	seeds Seeds,
	credsRepo CredentialsRepository,
	catalogRepo CatalogRepository,
	ledgerRepo LedgerRepository,
) (*Store, error) {
	st := &Store{
		conf:        conf,
		log:         log,
		credsRepo:   credsRepo,
		catalogRepo: catalogRepo,
		ledgerRepo:  ledgerRepo,
	}
	if err := st.load(seeds); err != nil {
		return nil, err
	}
	return st, nil
}

func (st *Store) load(seeds Seeds) error {
	creds, err := st.credsRepo.Load()
	if err != nil {
		if err = st.checkLoadErr(err, "credentials"); err != nil {
			return err
		}
		creds = seeds.Credentials.copy()
		if err = st.credsRepo.Save(creds); err != nil {
			return errors.Wrap(err, "seeding credentials")
		}
	}
	creds.normalize()
	st.creds = creds

	catalog, err := st.catalogRepo.Load()
	if err != nil {
		if err = st.checkLoadErr(err, "courses"); err != nil {
			return err
		}
		catalog = seeds.Catalog.copy()
		if err = st.catalogRepo.Save(catalog); err != nil {
			return errors.Wrap(err, "seeding courses")
		}
	}
	st.catalog = catalog

	ledger, err := st.ledgerRepo.Load()
	if err != nil {
		if err = st.checkLoadErr(err, "student data"); err != nil {
			return err
		}
		// bootstrap one empty row per student already in the credential directory
		ledger = Ledger{Students: make(map[string]*StudentRecord)}
		for id := range st.creds[RoleStudent] {
			ledger.Students[id] = newStudentRecord()
		}
		ledger.normalize()
		if err = st.ledgerRepo.Save(ledger); err != nil {
			return errors.Wrap(err, "seeding student data")
		}
	}
	ledger.normalize()
	st.ledger = ledger

	return nil
}

// checkLoadErr recovers the seedable load failures; anything else is returned as is.
func (st *Store) checkLoadErr(err error, doc string) error {
	switch errors.Cause(err) {
	case ErrNoData:
		return nil
	case ErrBadData:
		st.log.Warn(fmt.Sprintf("%s document unreadable, reverting to defaults", doc), err)
		return nil
	}
	return err
}

// ---------- Credential Directory ----------

// ValidateLogin checks the given secret against the role's directory: exact
// match, no normalization, no hashing (stored secrets are plaintext, a known
// and accepted weakness of the historical format).
func (st *Store) ValidateLogin(role Role, id, secret string) bool {
	stored, ok := st.creds[role][id]
	return ok && stored == secret
}

// AddUser registers a new account after shared validation, then applies the
// role-specific effects: a new student is enrolled into every catalog course,
// a new faculty member is assigned the requested courses.
func (st *Store) AddUser(na NewAccount) (string, error) {
	if err := na.Validate(); err != nil {
		return "", err
	}
	if role, ok := st.creds.roleOf(na.ID); ok {
		return "", errors.Wrapf(ErrUserExists, "user ID %q already exists in the %s role", na.ID, role)
	}

	switch na.Role {
	case RoleStudent:
		courseIDs := st.catalog.IDs()
		st.creds[RoleStudent][na.ID] = na.Secret
		rec := newStudentRecord()
		for _, cid := range courseIDs {
			rec.EnrolledCourses = append(rec.EnrolledCourses, cid)
			rec.CourseData[cid] = newCourseRecord()
		}
		st.ledger.Students[na.ID] = rec
		if err := st.credsRepo.Save(st.creds); err != nil {
			return "", err
		}
		if err := st.ledgerRepo.Save(st.ledger); err != nil {
			return "", err
		}
		return fmt.Sprintf("Student %q added and enrolled in all courses (%d total).", na.ID, len(courseIDs)), nil

	case RoleFaculty:
		st.creds[RoleFaculty][na.ID] = na.Secret
		var assigned []string
		for _, cid := range na.Courses {
			if crs, ok := st.catalog[cid]; ok {
				crs.Faculty = null.StringFrom(na.ID)
				st.catalog[cid] = crs
				assigned = append(assigned, cid)
			}
		}
		if len(assigned) > 0 {
			if err := st.catalogRepo.Save(st.catalog); err != nil {
				return "", err
			}
		}
		if err := st.credsRepo.Save(st.creds); err != nil {
			return "", err
		}
		courseList := "no courses assigned"
		if len(assigned) > 0 {
			courseList = strings.Join(assigned, ", ")
		}
		return fmt.Sprintf("Faculty %q added. Courses assigned: %s.", na.ID, courseList), nil

	case RoleAdmin:
		st.creds[RoleAdmin][na.ID] = na.Secret
		if err := st.credsRepo.Save(st.creds); err != nil {
			return "", err
		}
		return fmt.Sprintf("Admin %q added.", na.ID), nil
	}
	return "", core.NewValidationError(errors.New("invalid role specified"))
}

// DeleteUser removes the account. Deleting a student also drops their ledger
// row; deleting a faculty member unassigns every course they taught (the
// courses themselves are kept).
func (st *Store) DeleteUser(role Role, id string) (string, error) {
	if _, ok := st.creds[role][id]; !ok {
		return "", errors.Wrapf(ErrUserNotFound, "%s ID %q", role.Label(), id)
	}
	delete(st.creds[role], id)
	if err := st.credsRepo.Save(st.creds); err != nil {
		return "", err
	}

	switch role {
	case RoleStudent:
		if _, ok := st.ledger.Students[id]; ok {
			delete(st.ledger.Students, id)
			if err := st.ledgerRepo.Save(st.ledger); err != nil {
				return "", err
			}
		}
	case RoleFaculty:
		for cid, crs := range st.catalog {
			if crs.Faculty.Valid && crs.Faculty.String == id {
				crs.Faculty = null.String{}
				st.catalog[cid] = crs
			}
		}
		if err := st.catalogRepo.Save(st.catalog); err != nil {
			return "", err
		}
	}
	return fmt.Sprintf("%s %q deleted.", role.Label(), id), nil
}

// ResetPassword overwrites the account's secret.
func (st *Store) ResetPassword(role Role, id, newSecret string) (string, error) {
	if newSecret == "" {
		return "", core.NewValidationError(
			errors.New("password cannot be empty"),
			core.FieldError{Field: "secret", Error: "this field is required"},
		)
	}
	if _, ok := st.creds[role][id]; !ok {
		return "", errors.Wrapf(ErrUserNotFound, "%s ID %q", role.Label(), id)
	}
	st.creds[role][id] = newSecret
	if err := st.credsRepo.Save(st.creds); err != nil {
		return "", err
	}
	return fmt.Sprintf("Password for %s %q reset.", role.Label(), id), nil
}

// Users returns all user IDs registered under the given role, sorted.
func (st *Store) Users(role Role) []string { return st.creds.ids(role) }

func (st *Store) Students() []string { return st.Users(RoleStudent) }
func (st *Store) Faculty() []string  { return st.Users(RoleFaculty) }

// ---------- Course Catalog ----------

// CourseIDs returns all course IDs in catalog order.
func (st *Store) CourseIDs() []string { return st.catalog.IDs() }

// CourseName returns the course's display name, falling back to the ID itself.
func (st *Store) CourseName(id string) string {
	if crs, ok := st.catalog[id]; ok {
		return crs.Name
	}
	return id
}

// CoursesTaughtBy returns {course ID: name} for every course assigned to the faculty member.
func (st *Store) CoursesTaughtBy(facultyID string) map[string]string {
	taught := make(map[string]string)
	for cid, crs := range st.catalog {
		if crs.Faculty.Valid && crs.Faculty.String == facultyID {
			taught[cid] = crs.Name
		}
	}
	return taught
}

// ---------- Academic Ledger ----------

// ensureCourseRecord is the single chokepoint all ledger mutations funnel
// through: it creates the student row and the course record if missing and
// implicitly enrolls the student into the course. Idempotent; keeps
// EnrolledCourses and CourseData in lock-step.
func (st *Store) ensureCourseRecord(studentID, courseID string) *CourseRecord {
	rec, ok := st.ledger.Students[studentID]
	if !ok {
		rec = newStudentRecord()
		st.ledger.Students[studentID] = rec
	}
	cr, ok := rec.CourseData[courseID]
	if !ok {
		cr = newCourseRecord()
		rec.CourseData[courseID] = cr
	}
	if !rec.isEnrolled(courseID) {
		rec.EnrolledCourses = append(rec.EnrolledCourses, courseID)
	}
	return cr
}

// CoursesOf returns the student's enrolled course IDs in enrollment order.
func (st *Store) CoursesOf(studentID string) []string {
	rec, ok := st.ledger.Students[studentID]
	if !ok {
		return []string{}
	}
	return append([]string{}, rec.EnrolledCourses...)
}

// StudentsIn returns the IDs of all students enrolled in the course, sorted.
func (st *Store) StudentsIn(courseID string) []string {
	enrolled := make([]string, 0)
	for sid, rec := range st.ledger.Students {
		if rec.isEnrolled(courseID) {
			enrolled = append(enrolled, sid)
		}
	}
	sort.Strings(enrolled)
	return enrolled
}

// SetAttendance parses the raw percentage and overwrites the student's
// attendance for the course, enrolling them if needed.
func (st *Store) SetAttendance(studentID, courseID, raw string) (string, error) {
	percent, err := strconv.Atoi(core.CleanString(raw))
	if err != nil {
		return "", core.NewValidationError(
			errors.New("attendance must be a valid number"),
			core.FieldError{Field: "attendance", Error: "must be a valid number"},
		)
	}
	if percent < 0 || percent > 100 {
		return "", core.NewValidationError(
			errors.New("attendance must be between 0 and 100"),
			core.FieldError{Field: "attendance", Error: "must be between 0 and 100"},
		)
	}
	cr := st.ensureCourseRecord(studentID, courseID)
	cr.Attendance = null.IntFrom(percent)
	if err := st.ledgerRepo.Save(st.ledger); err != nil {
		return "", err
	}
	return fmt.Sprintf("Attendance for %s in %s set to %d%%.", studentID, courseID, percent), nil
}

// Attendance returns the student's attendance for the course; null when never set.
func (st *Store) Attendance(studentID, courseID string) null.Int {
	if rec, ok := st.ledger.Students[studentID]; ok {
		if cr, ok := rec.CourseData[courseID]; ok {
			return cr.Attendance
		}
	}
	return null.Int{}
}

// RecordMark sets the student's mark for an assessment, overwriting any
// previous value. The student must exist in the credential directory.
func (st *Store) RecordMark(studentID, courseID, assessment, mark string) (string, error) {
	if studentID == "" {
		return "", core.NewValidationError(
			errors.New("student ID cannot be empty"),
			core.FieldError{Field: "id", Error: "this field is required"},
		)
	}
	if _, ok := st.creds[RoleStudent][studentID]; !ok {
		return "", errors.Wrapf(ErrStudentNotFound, "student ID %q", studentID)
	}
	if assessment == "" || mark == "" {
		return "", core.NewValidationError(errors.New("subject and mark fields are required"))
	}
	cr := st.ensureCourseRecord(studentID, courseID)
	cr.Marks[assessment] = mark
	if err := st.ledgerRepo.Save(st.ledger); err != nil {
		return "", err
	}
	return fmt.Sprintf("Mark recorded for %s in %s.", studentID, courseID), nil
}

// Marks returns a copy of the student's marks for the course.
func (st *Store) Marks(studentID, courseID string) map[string]string {
	marks := make(map[string]string)
	if rec, ok := st.ledger.Students[studentID]; ok {
		if cr, ok := rec.CourseData[courseID]; ok {
			for assessment, mark := range cr.Marks {
				marks[assessment] = mark
			}
		}
	}
	return marks
}

// AddProject appends the same project entry to every enrolled student's record
// for the course. The ledger is persisted once at the end.
func (st *Store) AddProject(courseID, title, due string) (string, error) {
	if title == "" || due == "" {
		return "", core.NewValidationError(errors.New("project title and due date are required"))
	}
	enrolled := st.StudentsIn(courseID)
	if len(enrolled) == 0 {
		return "", errors.Wrapf(ErrNoEnrolledStudents, "course %q", courseID)
	}
	entry := Project{Title: title, Due: due}
	for _, sid := range enrolled {
		cr := st.ensureCourseRecord(sid, courseID)
		cr.Projects = append(cr.Projects, entry)
	}
	if err := st.ledgerRepo.Save(st.ledger); err != nil {
		return "", err
	}
	return fmt.Sprintf("Project %q added for all %d enrolled students in %s.", title, len(enrolled), courseID), nil
}

// Projects returns a copy of the student's project list for the course.
func (st *Store) Projects(studentID, courseID string) []Project {
	if rec, ok := st.ledger.Students[studentID]; ok {
		if cr, ok := rec.CourseData[courseID]; ok {
			return append([]Project{}, cr.Projects...)
		}
	}
	return []Project{}
}

// ExamSchedule returns a copy of the institution-wide exam schedule.
func (st *Store) ExamSchedule() []Exam {
	return append([]Exam{}, st.ledger.ExamSchedule...)
}

// AddExam appends an exam to the shared schedule.
func (st *Store) AddExam(subject, date, time string) (string, error) {
	if subject == "" || date == "" || time == "" {
		return "", core.NewValidationError(errors.New("all fields (subject, date, time) are required"))
	}
	st.ledger.ExamSchedule = append(st.ledger.ExamSchedule, Exam{Subject: subject, Date: date, Time: time})
	if err := st.ledgerRepo.Save(st.ledger); err != nil {
		return "", err
	}
	return fmt.Sprintf("Exam %q scheduled.", subject), nil
}
