// Package catalog holds the static product and response tables. Everything
// here is authored at compile time and never mutated; concurrent readers need
// no locking.
package catalog

import (
	"strings"

	"github.com/skykart/backend/internal/domain"
)

// ComparisonTriggers are the words that signal comparison intent. Checked by
// substring containment against the normalized message.
var ComparisonTriggers = []string{"compare", "comparison", "vs", "versus"}

// drones is the full product catalog, in display order. Order matters: when a
// user hint could resolve to more than one entry, the first entry wins.
var drones = []domain.Drone{
	{
		ID:               1,
		Name:             "HAWK 2.O",
		Price:            14999,
		LoadCapacity:     "500 g",
		FlightTime:       "25 min",
		CameraResolution: 12,
		MaxSpeed:         "45 km/h",
		Weight:           "1.2 kg",
		Range:            "5 km",
		BestFor:          "beginners and hobby photography",
	},
	{
		ID:               2,
		Name:             "VIRAJ 2.O",
		Price:            500000,
		LoadCapacity:     "10 kg",
		FlightTime:       "55 min",
		CameraResolution: 48,
		MaxSpeed:         "90 km/h",
		Weight:           "6.5 kg",
		Range:            "30 km",
		BestFor:          "industrial surveying and heavy payload delivery",
	},
	{
		ID:               3,
		Name:             "FALCON X",
		Price:            89999,
		LoadCapacity:     "2 kg",
		FlightTime:       "40 min",
		CameraResolution: 20,
		MaxSpeed:         "110 km/h",
		Weight:           "2.8 kg",
		Range:            "12 km",
		BestFor:          "racing and professional aerial videography",
	},
	{
		ID:               4,
		Name:             "SPARROW MINI",
		Price:            7999,
		LoadCapacity:     "200 g",
		FlightTime:       "15 min",
		CameraResolution: 8,
		MaxSpeed:         "30 km/h",
		Weight:           "480 g",
		Range:            "2 km",
		BestFor:          "indoor flying and kids learning to fly",
	},
	{
		ID:               5,
		Name:             "KISAN AGRI 16",
		Price:            275000,
		LoadCapacity:     "16 kg",
		FlightTime:       "35 min",
		CameraResolution: 16,
		MaxSpeed:         "50 km/h",
		Weight:           "14 kg",
		Range:            "8 km",
		BestFor:          "crop spraying and farm monitoring",
	},
}

// keywords is the canned question/answer table, in authored order. Order is a
// first-class invariant: partial matching returns the first phrase hit.
var keywords = domain.KeywordTable{
	{
		Phrase:   "drone types",
		Response: "We stock camera drones, racing drones, agricultural drones and heavy-lift delivery drones. Ask about HAWK 2.O, VIRAJ 2.O, FALCON X, SPARROW MINI or KISAN AGRI 16 for details.",
	},
	{
		Phrase:   "price range",
		Response: "Our drones start at ₹7999 for the SPARROW MINI and go up to ₹500000 for the VIRAJ 2.O. Ask about a specific model for its exact price.",
	},
	{
		Phrase:   "delivery time",
		Response: "We deliver across India within 5-7 business days. Shipping is free on orders above ₹20000.",
	},
	{
		Phrase:   "warranty details",
		Response: "Every drone ships with a 1 year manufacturer warranty covering motors, flight controller and the camera module. Crash damage is not covered.",
	},
	{
		Phrase:   "battery life",
		Response: "Flight time per charge ranges from 15 minutes on the SPARROW MINI to 55 minutes on the VIRAJ 2.O. Spare batteries are available for every model.",
	},
	{
		Phrase:   "camera quality",
		Response: "Cameras range from 8 MP on the SPARROW MINI to a 48 MP stabilized sensor on the VIRAJ 2.O. All models above ₹10000 record 4K video.",
	},
	{
		Phrase:   "payment options",
		Response: "We accept UPI, credit and debit cards, net banking and EMI on orders above ₹15000.",
	},
	{
		Phrase:   "return policy",
		Response: "Unopened drones can be returned within 10 days for a full refund. Opened units are eligible for replacement only if they have a manufacturing defect.",
	},
	{
		Phrase:   "flying license",
		Response: "Drones above 250 g require registration on the DGCA Digital Sky portal. The SPARROW MINI is in the nano category and needs no registration.",
	},
}

// generics are greeting/help style triggers, scanned in order by substring
// containment after the keyword cascade yields nothing.
var generics = domain.GenericTable{
	{Trigger: "hello", Response: "Hello! Welcome to SkyKart. Ask me about our drones, prices or delivery, or ask me to compare two models."},
	{Trigger: "hey", Response: "Hey there! How can I help you with our drones today?"},
	{Trigger: "hi", Response: "Hi! Welcome to SkyKart. What would you like to know about our drones?"},
	{Trigger: "help", Response: "You can ask me about drone types, price range, delivery, warranty or battery life, or say 'compare' with two model names."},
	{Trigger: "thank", Response: "You're welcome! Happy flying."},
	{Trigger: "bye", Response: "Goodbye! Come back any time you need a drone."},
}

// Drones returns the product catalog in display order.
func Drones() []domain.Drone {
	return drones
}

// Keywords returns the canned response table in authored order.
func Keywords() domain.KeywordTable {
	return keywords
}

// Generics returns the generic trigger table in authored order.
func Generics() domain.GenericTable {
	return generics
}

// Vocabulary returns every word the engine's own tables use, lowercased and
// deduplicated. This is the training set for the spell corrector: catalog
// names, keyword phrases, generic triggers, the comparison triggers and the
// connector "and" (so correction can never mangle a separator).
func Vocabulary() []string {
	seen := make(map[string]bool)
	var words []string

	add := func(text string) {
		for _, w := range strings.Fields(strings.ToLower(text)) {
			if !seen[w] {
				seen[w] = true
				words = append(words, w)
			}
		}
	}

	for _, d := range drones {
		add(d.Name)
	}
	for _, entry := range keywords {
		add(entry.Phrase)
	}
	for _, entry := range generics {
		add(entry.Trigger)
	}
	for _, trigger := range ComparisonTriggers {
		add(trigger)
	}
	add("and")

	return words
}
