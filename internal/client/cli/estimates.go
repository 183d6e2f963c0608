package cli

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/dmitrijs2005/rentpred/internal/client/client"
	"github.com/dmitrijs2005/rentpred/internal/client/forms"
	"github.com/dmitrijs2005/rentpred/internal/client/models"
	"github.com/dmitrijs2005/rentpred/internal/client/session"
)

var furnishingChoices = []string{models.FurnishingNone, models.FurnishingSemi, models.FurnishingFully}

func localityNames() []string {
	return models.Locations
}

// rentFormView collects the property features, asks for a prediction and
// opens the results view.
func (a *App) rentFormView(ctx context.Context) (string, error) {
	a.title("Estimate your rent")

	form, err := a.readPredictionForm()
	if err != nil {
		return "", err
	}

	p, err := a.estimateService.Predict(ctx, form)
	if err != nil {
		a.showError(err)
		return "", nil
	}

	req, _ := form.Request()
	a.mu.Lock()
	a.lastResult = &estimateResult{prediction: *p, request: req}
	a.mu.Unlock()

	a.success("Rent prediction calculated successfully!")
	return ResultsRoute, nil
}

func (a *App) readPredictionForm() (forms.Prediction, error) {
	var (
		f   forms.Prediction
		err error
	)

	if f.Location, err = GetChoice(a.reader, "Location", models.Locations, a.out); err != nil {
		return f, err
	}
	if f.BHK, err = GetInteger(a.reader, "BHK (1-3)", a.out); err != nil {
		return f, err
	}
	if f.BuiltAreaSqft, err = GetNumber(a.reader, "Built-up area in sq ft (400-2000)", a.out); err != nil {
		return f, err
	}
	if f.Bathrooms, err = GetInteger(a.reader, "Bathrooms (1-4)", a.out); err != nil {
		return f, err
	}
	if f.Furnishing, err = GetChoice(a.reader, "Furnishing (Enter for unfurnished)", furnishingChoices, a.out); err != nil {
		return f, err
	}

	amenities := []struct {
		prompt string
		dst    *bool
	}{
		{"Lift", &f.Amenities.Lift},
		{"Air conditioning", &f.Amenities.AirConditioner},
		{"Parking", &f.Amenities.Parking},
		{"Gym", &f.Amenities.Gym},
		{"Security", &f.Amenities.Security},
		{"24x7 water supply", &f.Amenities.WaterSupply},
	}
	for _, am := range amenities {
		if *am.dst, err = GetYesNo(a.reader, am.prompt, false, a.out); err != nil {
			return f, err
		}
	}
	return f, nil
}

// resultsView shows the last prediction of this run. Without one it sends
// the user to the form.
func (a *App) resultsView(context.Context) (string, error) {
	a.mu.Lock()
	res := a.lastResult
	a.mu.Unlock()

	if res == nil {
		a.muted("No estimate yet.")
		return RentFormRoute, nil
	}

	r := res.request
	body := strings.Join([]string{
		a.styles.Label.Render("Estimated monthly rent"),
		a.styles.Figure.Render(formatRupees(res.prediction.PredictedRent)),
		"",
		fmt.Sprintf("%d BHK in %s, %s sq ft, %d bath, %s", r.BHK, r.Location, formatNumber(r.BuiltAreaSqft), r.Bathrooms, r.Furnishing),
		fmt.Sprintf("Confidence %.0f%%", res.prediction.ConfidenceScore*100),
	}, "\n")
	if !res.prediction.Timestamp.IsZero() {
		body += "\n" + a.styles.Muted.Render("Estimated "+res.prediction.Timestamp.Local().Format("02 Jan 2006 15:04"))
	}

	a.title("Your estimate")
	a.println(a.styles.Box.Render(body))
	return "", nil
}

// profileView shows the server's view of the user. When the API cannot be
// reached the locally saved record is shown instead.
func (a *App) profileView(ctx context.Context) (string, error) {
	user, err := a.estimateService.Profile(ctx)
	if err != nil {
		if !errors.Is(err, client.ErrUnavailable) {
			return "", err
		}
		user = a.session.State().User
		if user == nil {
			return "", err
		}
		a.warn(msgUnavailable + " Showing your saved profile.")
	}

	a.title("Profile")
	a.printProfile(*user)
	a.muted("Type 'edit-profile' to change your name or mobile number.")
	return "", nil
}

// editProfileView changes the name and mobile kept in the local session.
// There is no update endpoint, so the server copy stays as it was.
func (a *App) editProfileView(ctx context.Context) (string, error) {
	current := a.session.State().User
	if current == nil {
		return LoginRoute, nil
	}

	a.title("Edit profile")
	a.muted("Press Enter to keep a value, or type - to clear it.")

	var (
		form forms.Profile
		err  error
	)
	if form.Name, err = a.editField("Name", current.Name); err != nil {
		return "", err
	}
	if form.Mobile, err = a.editField("Mobile", current.Mobile); err != nil {
		return "", err
	}

	name, mobile, err := form.Normalized()
	if err != nil {
		a.showError(err)
		return "", nil
	}

	user, err := a.session.UpdateProfile(ctx, name, mobile)
	if err != nil {
		if errors.Is(err, session.ErrNotLoggedIn) {
			return LoginRoute, nil
		}
		return "", err
	}

	a.success("Profile updated.")
	a.printProfile(user)
	a.muted("Saved on this device only.")
	return "", nil
}

func (a *App) editField(label, current string) (string, error) {
	prompt := label
	if current != "" {
		prompt = fmt.Sprintf("%s [%s]", label, current)
	}
	v, err := getSimpleText(a.reader, prompt, a.out)
	switch {
	case err != nil:
		return "", err
	case v == "":
		return current, nil
	case v == "-":
		return "", nil
	}
	return v, nil
}

func (a *App) printProfile(user models.User) {
	rows := [][2]string{{"Name", user.Name}, {"Email", user.Email}, {"Mobile", user.Mobile}, {"User ID", user.UID}}
	lines := make([]string, 0, len(rows))
	for _, row := range rows {
		if row[1] == "" {
			continue
		}
		lines = append(lines, fmt.Sprintf("%s %s", a.styles.Label.Render(row[0]+":"), row[1]))
	}
	a.println(a.styles.Box.Render(strings.Join(lines, "\n")))
}

func (a *App) historyView(ctx context.Context) (string, error) {
	records, err := a.estimateService.History(ctx)
	if err != nil {
		return "", err
	}

	a.title("Estimate history")
	if len(records) == 0 {
		a.muted("No estimates yet. Type 'predict' to make one.")
		return "", nil
	}

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(a.styles.Muted).
		Headers("#", "Location", "BHK", "Area (sq ft)", "Rent", "Date").
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return a.styles.Label.Padding(0, 1)
			}
			return lipgloss.NewStyle().Padding(0, 1)
		})

	for _, r := range records {
		date := ""
		if !r.CreatedAt.IsZero() {
			date = r.CreatedAt.Format("02 Jan 2006")
		}
		t.Row(
			strconv.FormatInt(r.ID, 10),
			r.Location,
			strconv.Itoa(r.BHK),
			formatNumber(r.Sqft),
			formatRupees(r.PredictedRent),
			date,
		)
	}

	a.println(t.Render())
	return "", nil
}

func formatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// formatRupees renders v rounded to whole rupees with Indian digit
// grouping, e.g. 123456.7 -> "₹1,23,457".
func formatRupees(v float64) string {
	n := int64(v + 0.5)
	if v < 0 {
		n = int64(v - 0.5)
	}
	sign := ""
	if n < 0 {
		sign, n = "-", -n
	}

	s := strconv.FormatInt(n, 10)
	if len(s) <= 3 {
		return "₹" + sign + s
	}

	head, tail := s[:len(s)-3], s[len(s)-3:]
	var groups []string
	for len(head) > 2 {
		groups = append([]string{head[len(head)-2:]}, groups...)
		head = head[:len(head)-2]
	}
	if head != "" {
		groups = append([]string{head}, groups...)
	}
	return "₹" + sign + strings.Join(groups, ",") + "," + tail
}
