package models

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"
)

// Furnishing states accepted by the prediction endpoint.
const (
	FurnishingNone  = "unfurnished"
	FurnishingSemi  = "semi-furnished"
	FurnishingFully = "fully-furnished"
)

// Locations lists the localities the prediction model was trained on.
var Locations = []string{
	"MVP Colony", "Beach Road", "Madhurawada", "Gajuwaka",
	"Pendurthi", "Seethammadhara", "Rushikonda",
}

// Amenities are the property flags collected by the intake form.
type Amenities struct {
	Lift           bool
	AirConditioner bool
	Parking        bool
	Gym            bool
	Security       bool
	WaterSupply    bool
}

// PredictionRequest holds the property features sent to POST /api/predict/.
type PredictionRequest struct {
	Location      string
	BHK           int
	BuiltAreaSqft float64
	Bathrooms     int
	Furnishing    string
	Amenities     Amenities
}

type predictionWire struct {
	Location       string  `json:"location"`
	BHK            int     `json:"bhk"`
	BuiltAreaSqft  float64 `json:"built_area_sqft"`
	Bathrooms      int     `json:"bathrooms"`
	Furnishing     string  `json:"furnishing"`
	Lift           int     `json:"lift"`
	AirConditioner int     `json:"air_conditioner"`
	Parking        int     `json:"parking"`
	Gym            int     `json:"gym"`
	Security       int     `json:"security"`
	WaterSupply    int     `json:"water_supply"`
}

// MarshalJSON encodes amenity flags as 0/1, which is what the model expects.
func (p PredictionRequest) MarshalJSON() ([]byte, error) {
	return json.Marshal(predictionWire{
		Location:       p.Location,
		BHK:            p.BHK,
		BuiltAreaSqft:  p.BuiltAreaSqft,
		Bathrooms:      p.Bathrooms,
		Furnishing:     p.Furnishing,
		Lift:           flag(p.Amenities.Lift),
		AirConditioner: flag(p.Amenities.AirConditioner),
		Parking:        flag(p.Amenities.Parking),
		Gym:            flag(p.Amenities.Gym),
		Security:       flag(p.Amenities.Security),
		WaterSupply:    flag(p.Amenities.WaterSupply),
	})
}

func flag(b bool) int {
	if b {
		return 1
	}
	return 0
}

// Prediction is the result of a successful prediction call.
type Prediction struct {
	ID              int64     `json:"id"`
	PredictedRent   float64   `json:"predicted_rent"`
	ConfidenceScore float64   `json:"confidence_score"`
	Timestamp       Timestamp `json:"timestamp"`
	HistoryID       int64     `json:"history_id,omitempty"`
}

// EstimateRecord is one row of the user's estimate history.
type EstimateRecord struct {
	ID               int64     `json:"id"`
	Location         string    `json:"location"`
	BHK              int       `json:"bhk"`
	Sqft             float64   `json:"sqft"`
	PredictedRent    float64   `json:"predicted_rent"`
	CreatedAt        Timestamp `json:"created_at"`
	FurnishingStatus string    `json:"furnishing_status,omitempty"`
	ConfidenceScore  *float64  `json:"confidence_score,omitempty"`
}

// Timestamp accepts ISO-8601 values with or without a zone offset; the
// backend emits naive local times when time zone support is off.
type Timestamp struct {
	time.Time
}

var timestampLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.999999999",
	"2006-01-02 15:04:05.999999999",
}

func (t *Timestamp) UnmarshalJSON(b []byte) error {
	s := strings.Trim(string(b), `"`)
	if s == "" || s == "null" {
		t.Time = time.Time{}
		return nil
	}
	for _, layout := range timestampLayouts {
		if parsed, err := time.Parse(layout, s); err == nil {
			t.Time = parsed
			return nil
		}
	}
	return fmt.Errorf("unsupported timestamp %q", s)
}

func (t Timestamp) MarshalJSON() ([]byte, error) {
	if t.IsZero() {
		return []byte("null"), nil
	}
	return json.Marshal(t.Format(time.RFC3339Nano))
}
