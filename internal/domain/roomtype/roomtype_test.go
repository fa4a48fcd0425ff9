package roomtype

import (
	"errors"
	"testing"
)

func TestNewRoomType(t *testing.T) {
	rt, err := NewRoomType("Double", 2, Money(450000), "two beds")
	if err != nil {
		t.Fatalf("NewRoomType: %v", err)
	}
	if rt.Name != "Double" || rt.Capacity != 2 || rt.MonthlyRate != 450000 {
		t.Fatalf("unexpected record: %+v", rt)
	}
}

func TestNewRoomTypeValidation(t *testing.T) {
	cases := []struct {
		name     string
		typeName string
		capacity int
		rate     Money
		code     string
	}{
		{"empty name", "", 2, 100, ErrInvalidName},
		{"blank name", "   ", 2, 100, ErrInvalidName},
		{"zero capacity", "Single", 0, 100, ErrInvalidCapacity},
		{"over max capacity", "Dorm", MaxCapacity + 1, 100, ErrInvalidCapacity},
		{"zero rate", "Single", 1, 0, ErrInvalidRate},
		{"negative rate", "Single", 1, -50, ErrInvalidRate},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			_, err := NewRoomType(c.typeName, c.capacity, c.rate, "")
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

func TestRoomTypeUpdate(t *testing.T) {
	rt, err := NewRoomType("Single", 1, Money(300000), "")
	if err != nil {
		t.Fatalf("NewRoomType: %v", err)
	}
	if err := rt.Update("Deluxe Single", 1, Money(350000), "renovated"); err != nil {
		t.Fatalf("Update: %v", err)
	}
	if rt.Name != "Deluxe Single" || rt.MonthlyRate != 350000 {
		t.Fatalf("unexpected record after update: %+v", rt)
	}

	if err := rt.Update("", 1, Money(350000), ""); err == nil {
		t.Fatal("expected update with empty name to fail")
	}
	if rt.Name != "Deluxe Single" {
		t.Fatalf("expected record unchanged, name %q", rt.Name)
	}
}
