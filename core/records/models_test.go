package records

import (
	"reflect"
	"testing"
)

func TestRole(t *testing.T) {
	tests := []struct {
		role      Role
		wantValid bool
		wantLabel string
	}{
		{role: RoleAdmin, wantValid: true, wantLabel: "Admin"},
		{role: RoleStudent, wantValid: true, wantLabel: "Student"},
		{role: RoleFaculty, wantValid: true, wantLabel: "Faculty"},
		{role: "principal", wantLabel: "Principal"},
		{role: ""},
	}
	for _, tt := range tests {
		t.Run(string(tt.role), func(t *testing.T) {
			if got := tt.role.Valid(); got != tt.wantValid {
				t.Errorf("Valid() = %v, want %v", got, tt.wantValid)
			}
			if got := tt.role.Label(); got != tt.wantLabel {
				t.Errorf("Label() = %q, want %q", got, tt.wantLabel)
			}
		})
	}
}

func TestCredentials(t *testing.T) {
	creds := Credentials{
		RoleAdmin:   {"admin": "x"},
		RoleStudent: {"Zoe": "x", "Abe": "x"},
	}

	if role, ok := creds.roleOf("Zoe"); !ok || role != RoleStudent {
		t.Errorf("roleOf(Zoe) = %v, %v, want student, true", role, ok)
	}
	if _, ok := creds.roleOf("ghost"); ok {
		t.Error("roleOf(ghost) found a nonexistent user")
	}

	if got := creds.ids(RoleStudent); !reflect.DeepEqual(got, []string{"Abe", "Zoe"}) {
		t.Errorf("ids(student) = %v, want sorted [Abe Zoe]", got)
	}
	if got := creds.ids(RoleFaculty); len(got) != 0 {
		t.Errorf("ids(faculty) = %v, want empty", got)
	}

	creds.normalize()
	if creds[RoleFaculty] == nil {
		t.Error("normalize() left the faculty mapping nil")
	}

	cpy := creds.copy()
	cpy[RoleAdmin]["admin"] = "changed"
	if creds[RoleAdmin]["admin"] != "x" {
		t.Error("copy() shares state with the original")
	}
}

func TestLedger_normalize(t *testing.T) {
	ledger := Ledger{
		Students: map[string]*StudentRecord{
			"Zoe": {CourseData: map[string]*CourseRecord{"CS101": {}}},
		},
	}
	ledger.normalize()

	if ledger.ExamSchedule == nil {
		t.Error("ExamSchedule left nil")
	}
	rec := ledger.Students["Zoe"]
	if rec.EnrolledCourses == nil {
		t.Error("EnrolledCourses left nil")
	}
	cr := rec.CourseData["CS101"]
	if cr.Marks == nil || cr.Projects == nil {
		t.Error("course record maps/slices left nil")
	}
}

func TestNewAccount_Validate(t *testing.T) {
	tests := []struct {
		name    string
		acct    NewAccount
		wantErr bool
	}{
		{name: "ok", acct: NewAccount{Role: RoleAdmin, ID: "boss", Secret: "pwd"}},
		{name: "missing ID", acct: NewAccount{Role: RoleAdmin, Secret: "pwd"}, wantErr: true},
		{name: "missing secret", acct: NewAccount{Role: RoleAdmin, ID: "boss"}, wantErr: true},
		{name: "missing role", acct: NewAccount{ID: "boss", Secret: "pwd"}, wantErr: true},
		{name: "unknown role", acct: NewAccount{Role: "principal", ID: "boss", Secret: "pwd"}, wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := tt.acct.Validate(); (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestNewAccount_Validate_trimsID(t *testing.T) {
	acct := NewAccount{Role: RoleAdmin, ID: "  boss  ", Secret: "pwd"}
	if err := acct.Validate(); err != nil {
		t.Fatalf("Validate() failed: %v", err)
	}
	if acct.ID != "boss" {
		t.Errorf("ID = %q, want %q", acct.ID, "boss")
	}
}
