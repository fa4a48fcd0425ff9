package contract

import (
	"errors"
	"testing"
	"time"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestNewContract(t *testing.T) {
	start := date(2026, time.September, 1)
	c, err := NewContract("Minh Tran", 3, start, nil, "")
	if err != nil {
		t.Fatalf("NewContract: %v", err)
	}
	if c.Status != StatusActive {
		t.Fatalf("expected empty status to default to active, got %s", c.Status)
	}
	if c.EndDate != nil {
		t.Fatal("expected open-ended contract")
	}
	if !c.IsActive() {
		t.Fatal("expected contract to be active")
	}
}

func TestNewContractValidation(t *testing.T) {
	start := date(2026, time.September, 1)
	before := date(2026, time.August, 1)

	cases := []struct {
		name   string
		tenant string
		roomID int64
		start  time.Time
		end    *time.Time
		status Status
		code   string
	}{
		{"empty tenant", "", 1, start, nil, StatusActive, ErrInvalidTenant},
		{"zero room", "Minh", 0, start, nil, StatusActive, ErrInvalidRoom},
		{"zero start", "Minh", 1, time.Time{}, nil, StatusActive, ErrInvalidDates},
		{"end before start", "Minh", 1, start, &before, StatusActive, ErrInvalidDates},
		{"unknown status", "Minh", 1, start, nil, Status("paused"), ErrInvalidStatus},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			_, err := NewContract(c.tenant, c.roomID, c.start, c.end, c.status)
			var de DomainError
			if !errors.As(err, &de) {
				t.Fatalf("expected DomainError, got %v", err)
			}
			if de.Code != c.code {
				t.Fatalf("expected code %s, got %s", c.code, de.Code)
			}
		})
	}
}

func TestContractEnd(t *testing.T) {
	start := date(2026, time.January, 1)
	c, err := NewContract("Minh Tran", 1, start, nil, StatusActive)
	if err != nil {
		t.Fatalf("NewContract: %v", err)
	}

	at := date(2026, time.June, 30)
	if err := c.End(at); err != nil {
		t.Fatalf("End: %v", err)
	}
	if c.Status != StatusEnded {
		t.Fatalf("expected status ended, got %s", c.Status)
	}
	if c.EndDate == nil || !c.EndDate.Equal(at) {
		t.Fatalf("unexpected end date: %v", c.EndDate)
	}

	// Ending twice is rejected.
	if err := c.End(at); err == nil {
		t.Fatal("expected error ending a non-active contract")
	}
}

func TestContractEndBeforeStart(t *testing.T) {
	start := date(2026, time.June, 1)
	c, err := NewContract("Minh Tran", 1, start, nil, StatusActive)
	if err != nil {
		t.Fatalf("NewContract: %v", err)
	}
	if err := c.End(date(2026, time.May, 1)); err == nil {
		t.Fatal("expected error for end before start")
	}
	if c.Status != StatusActive {
		t.Fatalf("expected contract unchanged, status %s", c.Status)
	}
}
