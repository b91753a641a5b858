package usecase

import (
	"fmt"
	"strings"

	"github.com/rs/zerolog"

	"github.com/skykart/backend/internal/domain"
)

// comparisonApology is returned when either side of a comparison cannot be
// resolved to a catalog entry. This is a normal user-visible outcome, not an
// error.
const comparisonApology = "Sorry, I couldn't find one or both of those drones in our catalog. Please check the model names and try again."

// ComparisonService resolves two user-supplied name hints against the catalog
// and renders a side-by-side attribute table.
type ComparisonService struct {
	drones []domain.Drone
	logger zerolog.Logger
}

// NewComparisonService creates a new comparison service over the given catalog
func NewComparisonService(drones []domain.Drone, logger zerolog.Logger) *ComparisonService {
	return &ComparisonService{
		drones: drones,
		logger: logger,
	}
}

// Compare renders a comparison of the two entries named by the hints. Always
// returns a string: a table on success, the apology text when a hint does not
// resolve. Field order and labels never vary between calls.
func (s *ComparisonService) Compare(hint1, hint2 string) string {
	first, ok1 := s.resolve(hint1)
	second, ok2 := s.resolve(hint2)
	if !ok1 || !ok2 {
		s.logger.Debug().
			Str("hint1", hint1).Bool("resolved1", ok1).
			Str("hint2", hint2).Bool("resolved2", ok2).
			Msg("comparison hint unresolved")
		return comparisonApology
	}

	var b strings.Builder
	fmt.Fprintf(&b, "%s vs %s\n", first.Name, second.Name)
	fmt.Fprintf(&b, "Price: ₹%d vs ₹%d\n", first.Price, second.Price)
	fmt.Fprintf(&b, "Flight Time: %s vs %s\n", first.FlightTime, second.FlightTime)
	fmt.Fprintf(&b, "Camera: %d MP vs %d MP\n", first.CameraResolution, second.CameraResolution)
	fmt.Fprintf(&b, "Max Speed: %s vs %s\n", first.MaxSpeed, second.MaxSpeed)
	fmt.Fprintf(&b, "Weight: %s vs %s\n", first.Weight, second.Weight)
	fmt.Fprintf(&b, "Range: %s vs %s\n", first.Range, second.Range)
	fmt.Fprintf(&b, "Best For: %s vs %s", first.BestFor, second.BestFor)
	return b.String()
}

// resolve returns the first catalog entry (catalog order) whose lowercased
// name is contained in the lowercased hint. The hint must contain the full
// name, not the other way around.
func (s *ComparisonService) resolve(hint string) (domain.Drone, bool) {
	hintLower := strings.ToLower(hint)
	for _, d := range s.drones {
		if strings.Contains(hintLower, strings.ToLower(d.Name)) {
			return d, true
		}
	}
	return domain.Drone{}, false
}
