package forms

import (
	"errors"
	"strings"
	"testing"

	"github.com/dmitrijs2005/rentpred/internal/client/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func requireFields(t *testing.T, err error, fields ...string) *ValidationError {
	t.Helper()
	var ve *ValidationError
	require.True(t, errors.As(err, &ve), "expected *ValidationError, got %v", err)
	for _, f := range fields {
		assert.NotEmpty(t, ve.Field(f), "field %s should fail", f)
	}
	return ve
}

func TestLogin_Validate(t *testing.T) {
	require.NoError(t, Login{Email: " a@x.com ", Password: "x"}.Validate())

	ve := requireFields(t, Login{}.Validate(), "email", "password")
	assert.Len(t, ve.Lines(), 2)

	requireFields(t, Login{Email: "not-an-email", Password: "x"}.Validate(), "email")
}

func TestLogin_RequestTrimsEmail(t *testing.T) {
	req, err := Login{Email: "  a@x.com ", Password: " pw "}.Request()
	require.NoError(t, err)
	assert.Equal(t, models.LoginRequest{Email: "a@x.com", Password: " pw "}, req)

	_, err = Login{Email: "nope", Password: "pw"}.Request()
	requireFields(t, err, "email")
}

func TestSignup_Validate(t *testing.T) {
	valid := Signup{Email: "a@x.com", Password: "Secret123", ConfirmPassword: "Secret123"}

	tests := []struct {
		name   string
		mutate func(*Signup)
		field  string
	}{
		{name: "short password", mutate: func(s *Signup) { s.Password, s.ConfirmPassword = "Ab1", "Ab1" }, field: "password"},
		{name: "no digit", mutate: func(s *Signup) { s.Password, s.ConfirmPassword = "Secretpass", "Secretpass" }, field: "password"},
		{name: "no upper", mutate: func(s *Signup) { s.Password, s.ConfirmPassword = "secret123", "secret123" }, field: "password"},
		{name: "mismatch", mutate: func(s *Signup) { s.ConfirmPassword = "Secret124" }, field: "confirm_password"},
		{name: "long name", mutate: func(s *Signup) { s.Name = strings.Repeat("a", 101) }, field: "name"},
		{name: "bad mobile", mutate: func(s *Signup) { s.Mobile = "12345" }, field: "mobile"},
		{name: "bad email", mutate: func(s *Signup) { s.Email = "a@" }, field: "email"},
	}

	require.NoError(t, valid.Validate())

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := valid
			tt.mutate(&f)
			ve := requireFields(t, f.Validate(), tt.field)
			assert.Len(t, ve.Lines(), 1, ve.Lines())
		})
	}
}

func TestSignup_RequestNormalises(t *testing.T) {
	req, err := Signup{
		Email:           "  a@x.com ",
		Password:        "Secret123",
		ConfirmPassword: "Secret123",
		Name:            " Asha ",
		Mobile:          "81234 56789",
	}.Request()
	require.NoError(t, err)

	assert.Equal(t, models.SignupRequest{
		Email:    "a@x.com",
		Password: "Secret123",
		Name:     "Asha",
		Mobile:   "+918123456789",
	}, req)
}

func TestSignup_RequestWithoutOptionalFields(t *testing.T) {
	req, err := Signup{Email: "a@x.com", Password: "Secret123", ConfirmPassword: "Secret123"}.Request()
	require.NoError(t, err)
	assert.Empty(t, req.Mobile)
	assert.Empty(t, req.Name)
}

func TestProfile_Normalized(t *testing.T) {
	name, mobile, err := Profile{Name: " Asha ", Mobile: "81234 56789"}.Normalized()
	require.NoError(t, err)
	assert.Equal(t, "Asha", name)
	assert.Equal(t, "+918123456789", mobile)

	name, mobile, err = Profile{}.Normalized()
	require.NoError(t, err)
	assert.Empty(t, name)
	assert.Empty(t, mobile)

	_, _, err = Profile{Name: strings.Repeat("a", MaxNameLength+1), Mobile: "12"}.Normalized()
	requireFields(t, err, "name", "mobile")
}

func TestNormalizeMobile(t *testing.T) {
	got, err := NormalizeMobile("+1 650-253-0000")
	require.NoError(t, err)
	assert.Equal(t, "+16502530000", got)

	_, err = NormalizeMobile("call me")
	require.Error(t, err)
}

func TestForgotPassword_Validate(t *testing.T) {
	require.NoError(t, ForgotPassword{Email: "a@x.com"}.Validate())
	requireFields(t, ForgotPassword{}.Validate(), "email")
}

func TestPrediction_Validate(t *testing.T) {
	valid := Prediction{Location: "Gajuwaka", BHK: 2, BuiltAreaSqft: 950, Bathrooms: 2, Furnishing: models.FurnishingSemi}

	tests := []struct {
		name   string
		mutate func(*Prediction)
		field  string
	}{
		{name: "unknown location", mutate: func(p *Prediction) { p.Location = "Paris" }, field: "location"},
		{name: "missing location", mutate: func(p *Prediction) { p.Location = "" }, field: "location"},
		{name: "bhk 4", mutate: func(p *Prediction) { p.BHK = 4 }, field: "bhk"},
		{name: "area too small", mutate: func(p *Prediction) { p.BuiltAreaSqft = 399 }, field: "built_area_sqft"},
		{name: "area too large", mutate: func(p *Prediction) { p.BuiltAreaSqft = 2000.5 }, field: "built_area_sqft"},
		{name: "no bathrooms", mutate: func(p *Prediction) { p.Bathrooms = 0 }, field: "bathrooms"},
		{name: "five bathrooms", mutate: func(p *Prediction) { p.Bathrooms = 5 }, field: "bathrooms"},
		{name: "bad furnishing", mutate: func(p *Prediction) { p.Furnishing = "luxury" }, field: "furnishing"},
	}

	require.NoError(t, valid.Validate())

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := valid
			tt.mutate(&f)
			requireFields(t, f.Validate(), tt.field)
		})
	}
}

func TestPrediction_RequestBounds(t *testing.T) {
	for _, area := range []float64{400, 2000} {
		req, err := Prediction{Location: "Rushikonda", BHK: 1, BuiltAreaSqft: area, Bathrooms: 4}.Request()
		require.NoError(t, err)
		assert.Equal(t, models.FurnishingNone, req.Furnishing)
		assert.InDelta(t, area, req.BuiltAreaSqft, 0)
	}
}

func TestPrediction_RequestCarriesAmenities(t *testing.T) {
	req, err := Prediction{
		Location: "MVP Colony", BHK: 3, BuiltAreaSqft: 1500, Bathrooms: 3,
		Furnishing: models.FurnishingFully,
		Amenities:  models.Amenities{Gym: true, Parking: true},
	}.Request()
	require.NoError(t, err)
	assert.True(t, req.Amenities.Gym)
	assert.True(t, req.Amenities.Parking)
	assert.False(t, req.Amenities.Lift)
}
