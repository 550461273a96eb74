package services

import (
	"bytes"
	"database/sql/driver"
	"regexp"
	"testing"
	"time"

	"sita-api/models"
	"sita-api/utils"
)

func TestAddEntryRejectsLockedLogbook(t *testing.T) {
	steps := []*queryStep{
		{
			kind:    kindQuery,
			pattern: regexp.MustCompile("(?i)SELECT count\\(\\*\\) FROM `logbooks` WHERE student_id = \\? AND is_locked = \\?"),
			args:    []driver.Value{int64(7), true},
			columns: []string{"count(*)"},
			rows:    [][]driver.Value{{int64(2)}},
		},
	}

	db, state, cleanup := newScriptedGormDB(t, steps)
	defer cleanup()

	svc := NewLogbookService(db)

	_, err := svc.AddEntry(7, time.Now(), "Bimbingan bab 3")
	ae := appErr(t, err)
	if ae.Kind != utils.KindValidation {
		t.Fatalf("expected validation error, got kind %d", ae.Kind)
	}
	if ae.Message != "Logbook sudah dikunci" {
		t.Fatalf("unexpected message: %s", ae.Message)
	}

	if err := state.verifyComplete(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestAddEntryRequiresActivity(t *testing.T) {
	db, state, cleanup := newScriptedGormDB(t, nil)
	defer cleanup()

	svc := NewLogbookService(db)

	_, err := svc.AddEntry(7, time.Now(), "")
	ae := appErr(t, err)
	if ae.Kind != utils.KindValidation {
		t.Fatalf("expected validation error, got kind %d", ae.Kind)
	}

	if err := state.verifyComplete(); err != nil {
		t.Fatalf("expected no queries, got: %v", err)
	}
}

func TestAnnotateRejectsLockedEntry(t *testing.T) {
	steps := []*queryStep{
		{
			kind:    kindQuery,
			pattern: regexp.MustCompile("SELECT .* FROM `logbooks` WHERE `logbooks`.`id` = \\?"),
			args:    []driver.Value{int64(11)},
			columns: []string{"id", "student_id", "activity", "is_locked"},
			rows:    [][]driver.Value{{int64(11), int64(7), "Konsultasi bab 1", true}},
		},
	}

	db, state, cleanup := newScriptedGormDB(t, steps)
	defer cleanup()

	svc := NewLogbookService(db)

	_, err := svc.Annotate(11, "Perbaiki rumusan masalah")
	ae := appErr(t, err)
	if ae.Kind != utils.KindValidation {
		t.Fatalf("expected validation error, got kind %d", ae.Kind)
	}
	if ae.Message != "Logbook sudah dikunci" {
		t.Fatalf("unexpected message: %s", ae.Message)
	}

	if err := state.verifyComplete(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestLockNotifiesStudent(t *testing.T) {
	steps := []*queryStep{
		{
			kind:    kindQuery,
			pattern: regexp.MustCompile("SELECT .* FROM `users` WHERE id = \\? AND role = \\?"),
			args:    []driver.Value{int64(7), "mahasiswa"},
			columns: []string{"id", "name", "role"},
			rows:    [][]driver.Value{{int64(7), "Jane Smith", "mahasiswa"}},
		},
		{
			kind:    kindExec,
			pattern: regexp.MustCompile("UPDATE `logbooks` SET"),
			result:  scriptedResult{rowsAffected: 2},
		},
		{
			kind:    kindExec,
			pattern: regexp.MustCompile("INSERT INTO `notifications`"),
			result:  scriptedResult{lastInsertID: 31, rowsAffected: 1},
		},
		{
			kind:    kindQuery,
			pattern: regexp.MustCompile("SELECT .* FROM `users`"),
			args:    []driver.Value{int64(7)},
			columns: []string{"id", "name", "email"},
			rows:    [][]driver.Value{{int64(7), "Jane Smith", nil}},
		},
	}

	db, state, cleanup := newScriptedGormDB(t, steps)
	defer cleanup()

	svc := NewLogbookService(db)

	if err := svc.Lock(7); err != nil {
		t.Fatalf("Lock returned error: %v", err)
	}

	if err := state.verifyComplete(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestStudentLogbookUnknownStudent(t *testing.T) {
	steps := []*queryStep{
		{
			kind:    kindQuery,
			pattern: regexp.MustCompile("SELECT .* FROM `users` WHERE id = \\? AND role = \\?"),
			args:    []driver.Value{int64(42), "mahasiswa"},
			columns: []string{"id"},
			rows:    [][]driver.Value{},
		},
	}

	db, state, cleanup := newScriptedGormDB(t, steps)
	defer cleanup()

	svc := NewLogbookService(db)

	_, _, err := svc.StudentLogbook(42)
	ae := appErr(t, err)
	if ae.Kind != utils.KindNotFound {
		t.Fatalf("expected not found, got kind %d", ae.Kind)
	}
	if ae.Message != "Student not found" {
		t.Fatalf("unexpected message: %s", ae.Message)
	}

	if err := state.verifyComplete(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestRenderLogbookPDF(t *testing.T) {
	nim := "87654321"
	note := "Lanjutkan ke pengumpulan data"
	student := &models.User{
		Name: "Jane Smith",
		NIM:  &nim,
	}
	entries := []models.Logbook{
		{
			Date:     time.Date(2024, 2, 5, 0, 0, 0, 0, time.UTC),
			Activity: "Konsultasi bab 1 dan rumusan masalah",
		},
		{
			Date:          time.Date(2024, 2, 19, 0, 0, 0, 0, time.UTC),
			Activity:      "Revisi tinjauan pustaka",
			LecturerNotes: &note,
		},
	}

	data, err := RenderLogbookPDF(student, entries)
	if err != nil {
		t.Fatalf("RenderLogbookPDF returned error: %v", err)
	}
	if !bytes.HasPrefix(data, []byte("%PDF")) {
		t.Fatal("expected PDF output")
	}
	if len(data) < 500 {
		t.Fatalf("suspiciously small PDF: %d bytes", len(data))
	}
}

func TestRenderLogbookPDFWithoutNIM(t *testing.T) {
	student := &models.User{Name: "Jane Smith"}

	data, err := RenderLogbookPDF(student, nil)
	if err != nil {
		t.Fatalf("RenderLogbookPDF returned error: %v", err)
	}
	if !bytes.HasPrefix(data, []byte("%PDF")) {
		t.Fatal("expected PDF output")
	}
}
