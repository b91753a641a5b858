package domain

// Drone represents a single catalog entry. The catalog is loaded once at
// startup and is read-only for the lifetime of the process.
type Drone struct {
	ID               int    `json:"id"`
	Name             string `json:"name"`
	Price            int    `json:"price"` // rupees
	LoadCapacity     string `json:"loadCapacity"`
	FlightTime       string `json:"flightTime"`
	CameraResolution int    `json:"cameraResolution"` // megapixels
	MaxSpeed         string `json:"maxSpeed"`
	Weight           string `json:"weight"`
	Range            string `json:"range"`
	BestFor          string `json:"bestFor"`
}
