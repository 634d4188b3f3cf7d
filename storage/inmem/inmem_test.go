package inmemdb

import (
	"reflect"
	"testing"

	"github.com/trezcool/darasa/core/records"
)

func TestRepositories(t *testing.T) {
	credsRepo := NewCredentialsRepository()
	if _, err := credsRepo.Load(); err != records.ErrNoData {
		t.Errorf("Load() on a fresh repository error = %v, want %v", err, records.ErrNoData)
	}

	creds := records.Credentials{records.RoleAdmin: {"admin": "admin12"}}
	if err := credsRepo.Save(creds); err != nil {
		t.Fatalf("Save() failed: %v", err)
	}

	got, err := credsRepo.Load()
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if !reflect.DeepEqual(got, creds) {
		t.Errorf("Load() = %v, want %v", got, creds)
	}

	// loaded values must not share state with the repository
	got[records.RoleAdmin]["admin"] = "changed"
	reloaded, _ := credsRepo.Load()
	if reloaded[records.RoleAdmin]["admin"] != "admin12" {
		t.Error("Load() exposed repository state")
	}

	ledgerRepo := NewLedgerRepository()
	if _, err := ledgerRepo.Load(); err != records.ErrNoData {
		t.Errorf("Load() on a fresh repository error = %v, want %v", err, records.ErrNoData)
	}
	ledger := records.Ledger{
		Students:     map[string]*records.StudentRecord{"Zoe": {EnrolledCourses: []string{"CS101"}}},
		ExamSchedule: []records.Exam{},
	}
	if err := ledgerRepo.Save(ledger); err != nil {
		t.Fatalf("Save() failed: %v", err)
	}
	gotLedger, err := ledgerRepo.Load()
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if !reflect.DeepEqual(gotLedger.Students["Zoe"].EnrolledCourses, []string{"CS101"}) {
		t.Errorf("Load() = %+v, want the saved ledger", gotLedger)
	}
}
