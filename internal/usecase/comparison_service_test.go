package usecase

import (
	"strings"
	"testing"

	"github.com/rs/zerolog"

	"github.com/skykart/backend/internal/domain"
)

var comparisonFixture = []domain.Drone{
	{
		ID: 1, Name: "HAWK 2.O", Price: 14999,
		FlightTime: "25 min", CameraResolution: 12, MaxSpeed: "45 km/h",
		Weight: "1.2 kg", Range: "5 km", BestFor: "beginners",
	},
	{
		ID: 2, Name: "VIRAJ 2.O", Price: 500000,
		FlightTime: "55 min", CameraResolution: 48, MaxSpeed: "90 km/h",
		Weight: "6.5 kg", Range: "30 km", BestFor: "industrial surveying",
	},
}

func TestCompare(t *testing.T) {
	svc := NewComparisonService(comparisonFixture, zerolog.Nop())

	t.Run("renders both entries with their attributes", func(t *testing.T) {
		got := svc.Compare("hawk 2.o", "viraj 2.o")

		for _, want := range []string{"HAWK 2.O", "VIRAJ 2.O", "₹14999", "₹500000", "25 min", "55 min"} {
			if !strings.Contains(got, want) {
				t.Errorf("comparison missing %q:\n%s", want, got)
			}
		}
	})

	t.Run("field order and labels are stable", func(t *testing.T) {
		got := svc.Compare("hawk 2.o please", "the viraj 2.o")
		lines := strings.Split(got, "\n")

		wantPrefixes := []string{
			"HAWK 2.O vs VIRAJ 2.O",
			"Price:",
			"Flight Time:",
			"Camera:",
			"Max Speed:",
			"Weight:",
			"Range:",
			"Best For:",
		}
		if len(lines) != len(wantPrefixes) {
			t.Fatalf("got %d lines, want %d:\n%s", len(lines), len(wantPrefixes), got)
		}
		for i, prefix := range wantPrefixes {
			if !strings.HasPrefix(lines[i], prefix) {
				t.Errorf("line %d = %q, want prefix %q", i, lines[i], prefix)
			}
		}
	})

	t.Run("same values appear regardless of argument position", func(t *testing.T) {
		forward := svc.Compare("hawk 2.o", "viraj 2.o")
		backward := svc.Compare("viraj 2.o", "hawk 2.o")

		for _, want := range []string{"₹14999", "₹500000", "12 MP", "48 MP"} {
			if !strings.Contains(forward, want) || !strings.Contains(backward, want) {
				t.Errorf("value %q must appear in both orders", want)
			}
		}
	})

	t.Run("hint must contain the full catalog name", func(t *testing.T) {
		// "hawk" alone does not contain "hawk 2.o"
		got := svc.Compare("hawk", "viraj 2.o")
		if got != comparisonApology {
			t.Errorf("Compare = %q, want apology", got)
		}
	})

	t.Run("unresolvable second hint yields apology", func(t *testing.T) {
		got := svc.Compare("hawk 2.o", "dragonfly")
		if got != comparisonApology {
			t.Errorf("Compare = %q, want apology", got)
		}
	})

	t.Run("resolution is case-insensitive", func(t *testing.T) {
		got := svc.Compare("HAWK 2.O", "Viraj 2.o")
		if got == comparisonApology {
			t.Errorf("expected a comparison table, got apology")
		}
	})

	t.Run("first catalog entry wins for nested names", func(t *testing.T) {
		nested := NewComparisonService([]domain.Drone{
			{ID: 1, Name: "AIR", Price: 100},
			{ID: 2, Name: "AIR MAX", Price: 200},
			{ID: 3, Name: "ZED", Price: 300},
		}, zerolog.Nop())

		got := nested.Compare("air max", "zed")
		lines := strings.Split(got, "\n")
		if !strings.HasPrefix(lines[0], "AIR vs ZED") {
			t.Errorf("header = %q, want AIR resolved first (catalog order)", lines[0])
		}
	})
}
