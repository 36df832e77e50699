// ABOUTME: Tests for the file-backed session store
// ABOUTME: Covers roundtrips, corrupt records, and idempotent logout

package session

import (
	"os"
	"path/filepath"
	"testing"
)

func TestFileStore_Roundtrip(t *testing.T) {
	store := NewFileStore(t.TempDir())

	sess := Session{UserID: "u-1", Role: RoleStudent}
	if err := store.Put(sess); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	got, err := store.Get()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got == nil {
		t.Fatal("expected a session, got nil")
	}
	if got.UserID != "u-1" || got.Role != RoleStudent {
		t.Errorf("unexpected session: %+v", got)
	}
}

func TestFileStore_GetMissing(t *testing.T) {
	store := NewFileStore(t.TempDir())

	got, err := store.Get()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != nil {
		t.Errorf("expected nil session, got %+v", got)
	}
}

func TestFileStore_CorruptRecordIsNoSession(t *testing.T) {
	dir := t.TempDir()
	store := NewFileStore(dir)

	tests := []struct {
		name string
		data string
	}{
		{"not json", "{{{"},
		{"missing user", `{"role":"STUDENT"}`},
		{"unknown role", `{"userId":"u-1","role":"ADMIN"}`},
		{"empty object", `{}`},
	}
	for _, tt := range tests {
		if err := os.WriteFile(filepath.Join(dir, "user.json"), []byte(tt.data), 0600); err != nil {
			t.Fatalf("%s: write: %v", tt.name, err)
		}
		got, err := store.Get()
		if err != nil {
			t.Errorf("%s: unexpected error: %v", tt.name, err)
		}
		if got != nil {
			t.Errorf("%s: expected nil session, got %+v", tt.name, got)
		}
	}
}

func TestFileStore_PutCreatesDir(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "config")
	store := NewFileStore(dir)

	if err := store.Put(Session{UserID: "u-1", Role: RoleTeacher}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := os.Stat(filepath.Join(dir, "user.json")); err != nil {
		t.Errorf("expected session file to exist: %v", err)
	}
}

func TestFileStore_ClearIsIdempotent(t *testing.T) {
	store := NewFileStore(t.TempDir())

	if err := store.Clear(); err != nil {
		t.Errorf("clearing an absent session should not fail: %v", err)
	}

	store.Put(Session{UserID: "u-1", Role: RoleStudent})
	if err := store.Clear(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := store.Clear(); err != nil {
		t.Errorf("second clear should not fail: %v", err)
	}

	got, _ := store.Get()
	if got != nil {
		t.Errorf("expected no session after clear, got %+v", got)
	}
}

func TestRole_Valid(t *testing.T) {
	if !RoleStudent.Valid() || !RoleTeacher.Valid() {
		t.Error("expected known roles to be valid")
	}
	if Role("ADMIN").Valid() || Role("").Valid() || Role("student").Valid() {
		t.Error("expected unknown roles to be invalid")
	}
}

func TestRole_DashboardRoute(t *testing.T) {
	if got := RoleStudent.DashboardRoute(); got != "/student-dashboard" {
		t.Errorf("expected /student-dashboard, got %s", got)
	}
	if got := RoleTeacher.DashboardRoute(); got != "/teacher-dashboard" {
		t.Errorf("expected /teacher-dashboard, got %s", got)
	}
}
