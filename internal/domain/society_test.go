package domain

import (
	"errors"
	"testing"
	"time"
)

func testAdmin(t *testing.T) *User {
	t.Helper()
	admin, err := NewSocietyAdmin("SA001", "Dr. Farhan", "farhan@test.com", "pass")
	if err != nil {
		t.Fatal(err)
	}
	return admin
}

func testStudent(t *testing.T, id, email string) *User {
	t.Helper()
	u, err := NewStudent(id, "Student "+id, email, "pass", "CS", 5)
	if err != nil {
		t.Fatal(err)
	}
	return u
}

func TestNewSociety(t *testing.T) {
	admin := testAdmin(t)

	t.Run("valid", func(t *testing.T) {
		soc, err := NewSociety("CS Society", "desc", "Academic", admin)
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if soc.Admin != admin {
			t.Error("expected admin to be recorded")
		}
		if len(soc.Members) != 0 || len(soc.PendingRequests) != 0 {
			t.Error("expected new society to start empty")
		}
	})

	t.Run("empty name", func(t *testing.T) {
		_, err := NewSociety("", "desc", "Academic", admin)
		if !errors.Is(err, ErrEmptySocietyName) {
			t.Errorf("expected ErrEmptySocietyName, got %v", err)
		}
	})

	t.Run("non-admin owner", func(t *testing.T) {
		student := testStudent(t, "FA20-BCS-001", "ali@test.com")
		_, err := NewSociety("CS Society", "desc", "Academic", student)
		if !errors.Is(err, ErrNotSocietyAdmin) {
			t.Errorf("expected ErrNotSocietyAdmin, got %v", err)
		}
	})
}

func TestSocietyMembershipLists(t *testing.T) {
	admin := testAdmin(t)
	soc, err := NewSociety("CS Society", "desc", "Academic", admin)
	if err != nil {
		t.Fatal(err)
	}
	ali := testStudent(t, "FA20-BCS-001", "ali@test.com")
	sara := testStudent(t, "FA20-BCS-002", "sara@test.com")

	soc.PendingRequests = append(soc.PendingRequests, ali)
	if !soc.HasPending(ali) || soc.HasPending(sara) {
		t.Error("unexpected pending state")
	}
	if soc.HasMember(ali) {
		t.Error("pending student must not count as member")
	}

	if !soc.RemovePending(ali) {
		t.Error("expected removal of pending student")
	}
	if soc.RemovePending(ali) {
		t.Error("expected second removal to report false")
	}

	soc.Members = append(soc.Members, ali, sara)
	if !soc.RemoveMember(ali) {
		t.Error("expected removal of member")
	}
	if soc.RemoveMember(ali) {
		t.Error("expected second removal to report false")
	}
	if len(soc.Members) != 1 || soc.Members[0] != sara {
		t.Errorf("unexpected member list after removal: %v", soc.Members)
	}
}

func TestNewGroup(t *testing.T) {
	creator := testStudent(t, "FA20-BCS-001", "ali@test.com")

	g, err := NewGroup("OOP Study Group", "desc", "Academic", creator)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if len(g.Members) != 1 || g.Members[0] != creator {
		t.Error("expected creator to be the first member")
	}

	if _, err := NewGroup("", "desc", "Academic", creator); !errors.Is(err, ErrEmptyGroupName) {
		t.Errorf("expected ErrEmptyGroupName, got %v", err)
	}

	admin := testAdmin(t)
	if _, err := NewGroup("Another", "desc", "Academic", admin); !errors.Is(err, ErrNotStudent) {
		t.Errorf("expected ErrNotStudent, got %v", err)
	}
}

func TestEventAttendees(t *testing.T) {
	e, err := NewEvent("Java Workshop", "desc", time.Now(), "Lab 5", "CS Society")
	if err != nil {
		t.Fatal(err)
	}
	ali := testStudent(t, "FA20-BCS-001", "ali@test.com")
	if e.HasAttendee(ali) {
		t.Error("expected no attendees on a new event")
	}
	e.Attendees = append(e.Attendees, ali)
	if !e.HasAttendee(ali) {
		t.Error("expected attendee lookup to find the student")
	}
}

func TestNewEventEmptyTitle(t *testing.T) {
	if _, err := NewEvent("", "desc", time.Now(), "Lab 5", "CS Society"); !errors.Is(err, ErrEmptyEventTitle) {
		t.Errorf("expected ErrEmptyEventTitle, got %v", err)
	}
}
