package forms

import (
	"strings"

	"github.com/dmitrijs2005/rentpred/internal/client/models"
	validation "github.com/go-ozzo/ozzo-validation"
)

// Bounds accepted by the prediction model.
const (
	MinArea      = 400.0
	MaxArea      = 2000.0
	MinBathrooms = 1
	MaxBathrooms = 4
)

var (
	bhkOptions        = []interface{}{1, 2, 3}
	furnishingOptions = []interface{}{models.FurnishingNone, models.FurnishingSemi, models.FurnishingFully}
)

// Prediction is the property intake form.
type Prediction struct {
	Location      string           `json:"location"`
	BHK           int              `json:"bhk"`
	BuiltAreaSqft float64          `json:"built_area_sqft"`
	Bathrooms     int              `json:"bathrooms"`
	Furnishing    string           `json:"furnishing"`
	Amenities     models.Amenities `json:"-"`
}

func (f Prediction) Validate() error {
	locations := make([]interface{}, 0, len(models.Locations))
	for _, l := range models.Locations {
		locations = append(locations, l)
	}

	return wrap(validation.ValidateStruct(&f,
		validation.Field(&f.Location,
			validation.Required,
			validation.In(locations...).Error("must be one of: "+strings.Join(models.Locations, ", ")),
		),
		validation.Field(&f.BHK,
			validation.Required,
			validation.In(bhkOptions...).Error("must be 1, 2 or 3"),
		),
		validation.Field(&f.BuiltAreaSqft,
			validation.Required,
			validation.Min(MinArea).Error("must be between 400 and 2000 square feet"),
			validation.Max(MaxArea).Error("must be between 400 and 2000 square feet"),
		),
		validation.Field(&f.Bathrooms,
			validation.Required,
			validation.Min(MinBathrooms).Error("must be between 1 and 4"),
			validation.Max(MaxBathrooms).Error("must be between 1 and 4"),
		),
		validation.Field(&f.Furnishing,
			validation.In(furnishingOptions...).Error("must be unfurnished, semi-furnished or fully-furnished"),
		),
	))
}

// Request validates the form and converts it to the API payload. An empty
// furnishing means unfurnished.
func (f Prediction) Request() (models.PredictionRequest, error) {
	if err := f.Validate(); err != nil {
		return models.PredictionRequest{}, err
	}
	furnishing := f.Furnishing
	if furnishing == "" {
		furnishing = models.FurnishingNone
	}
	return models.PredictionRequest{
		Location:      f.Location,
		BHK:           f.BHK,
		BuiltAreaSqft: f.BuiltAreaSqft,
		Bathrooms:     f.Bathrooms,
		Furnishing:    furnishing,
		Amenities:     f.Amenities,
	}, nil
}
