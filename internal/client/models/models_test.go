package models

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUser_Validate(t *testing.T) {
	require.NoError(t, (&User{Email: "a@x.com"}).Validate())
	require.ErrorIs(t, (&User{Name: "no email"}).Validate(), ErrUserEmailMissing)
	require.ErrorIs(t, (&User{Email: "   "}).Validate(), ErrUserEmailMissing)

	var nilUser *User
	require.ErrorIs(t, nilUser.Validate(), ErrUserEmailMissing)
}

func TestUser_DisplayName(t *testing.T) {
	assert.Equal(t, "Asha", (&User{Email: "a@x.com", Name: "Asha"}).DisplayName())
	assert.Equal(t, "a@x.com", (&User{Email: "a@x.com"}).DisplayName())

	var nilUser *User
	assert.Equal(t, "", nilUser.DisplayName())
}

func TestPredictionRequest_MarshalJSON_AmenitiesAsFlags(t *testing.T) {
	req := PredictionRequest{
		Location:      "Gajuwaka",
		BHK:           2,
		BuiltAreaSqft: 1100,
		Bathrooms:     2,
		Furnishing:    FurnishingSemi,
		Amenities:     Amenities{Lift: true, Parking: true},
	}

	b, err := json.Marshal(req)
	require.NoError(t, err)

	assert.JSONEq(t, `{
		"location": "Gajuwaka",
		"bhk": 2,
		"built_area_sqft": 1100,
		"bathrooms": 2,
		"furnishing": "semi-furnished",
		"lift": 1,
		"air_conditioner": 0,
		"parking": 1,
		"gym": 0,
		"security": 0,
		"water_supply": 0
	}`, string(b))
}

func TestTimestamp_UnmarshalJSON(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want time.Time
	}{
		{name: "rfc3339", in: `"2024-03-01T10:20:30Z"`, want: time.Date(2024, 3, 1, 10, 20, 30, 0, time.UTC)},
		{name: "offset with micros", in: `"2024-03-01T10:20:30.123456+00:00"`, want: time.Date(2024, 3, 1, 10, 20, 30, 123456000, time.UTC)},
		{name: "naive", in: `"2024-03-01T10:20:30.5"`, want: time.Date(2024, 3, 1, 10, 20, 30, 500000000, time.UTC)},
		{name: "null", in: `null`, want: time.Time{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var ts Timestamp
			require.NoError(t, json.Unmarshal([]byte(tt.in), &ts))
			assert.True(t, tt.want.Equal(ts.Time), "got %v want %v", ts.Time, tt.want)
		})
	}

	var ts Timestamp
	require.Error(t, json.Unmarshal([]byte(`"yesterday"`), &ts))
}

func TestEstimateRecord_Decode(t *testing.T) {
	body := `[{"id":7,"location":"Beach Road","bhk":3,"sqft":1500,"predicted_rent":32000.5,"created_at":"2024-05-06T07:08:09.000001+00:00"}]`

	var records []EstimateRecord
	require.NoError(t, json.Unmarshal([]byte(body), &records))
	require.Len(t, records, 1)

	r := records[0]
	assert.Equal(t, int64(7), r.ID)
	assert.Equal(t, "Beach Road", r.Location)
	assert.Equal(t, 3, r.BHK)
	assert.InDelta(t, 32000.5, r.PredictedRent, 0.001)
	assert.Nil(t, r.ConfidenceScore)
	assert.Equal(t, 2024, r.CreatedAt.Year())
}

func TestErrorResponse_Text(t *testing.T) {
	assert.Equal(t, "Invalid password", ErrorResponse{Error: "Invalid password", Detail: "x"}.Text())
	assert.Equal(t, "Authentication credentials were not provided.", ErrorResponse{Detail: "Authentication credentials were not provided."}.Text())
	assert.Equal(t, "m", ErrorResponse{Message: "m"}.Text())
}
