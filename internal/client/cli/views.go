package cli

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/rentpred/internal/client/client"
	"github.com/dmitrijs2005/rentpred/internal/client/forms"
)

const (
	msgUnavailable = "Unable to connect to server. Please try again later."
	msgMalformed   = "The server sent an unexpected response. Please try again later."
)

func (a *App) println(s string) {
	fmt.Fprintln(a.out, s)
}

func (a *App) title(s string) {
	a.println(a.styles.Title.Render(s))
}

func (a *App) success(s string) {
	a.println(a.styles.Success.Render(s))
}

func (a *App) warn(s string) {
	a.println(a.styles.Warning.Render(s))
}

func (a *App) muted(s string) {
	a.println(a.styles.Muted.Render(s))
}

// showError prints err the way the user should see it: field messages for
// form errors, a retry hint for connectivity problems, the server's own
// message for rejected calls.
func (a *App) showError(err error) {
	var ve *forms.ValidationError
	if errors.As(err, &ve) {
		for _, line := range ve.Lines() {
			a.println(a.styles.Error.Render(line))
		}
		return
	}
	a.println(a.styles.Error.Render(userMessage(err)))
}

func userMessage(err error) string {
	var apiErr *client.APIError
	switch {
	case errors.Is(err, client.ErrUnavailable):
		return msgUnavailable
	case errors.As(err, &apiErr):
		return apiErr.Message
	case errors.Is(err, client.ErrMalformedResponse):
		return msgMalformed
	default:
		return err.Error()
	}
}

func (a *App) homeView(context.Context) (string, error) {
	a.title("RentSeva: find your fair rent")
	a.println("Estimate a fair monthly rent for a flat in Visakhapatnam from its location, size and amenities.")

	if u := a.session.State().User; u != nil {
		a.println(fmt.Sprintf("Logged in as %s.", u.DisplayName()))
		a.muted("Try: predict, results, history, profile, status, logout")
	} else {
		a.muted("Try: login, signup, about, contact (predict, history and profile need an account)")
	}
	return "", nil
}

func (a *App) aboutView(context.Context) (string, error) {
	a.title("About")
	a.println(strings.Join([]string{
		"RentSeva estimates rents with a model trained on listings from " + strings.Join(localityNames(), ", ") + ".",
		"Estimates are a guide, not an offer: the confidence score shows how close similar listings were.",
	}, "\n"))
	return "", nil
}

func (a *App) contactView(context.Context) (string, error) {
	a.title("Contact")
	a.println("Questions or feedback: support@rentseva.in")
	return "", nil
}

func (a *App) notFoundView(path string) {
	a.title("404")
	a.println(fmt.Sprintf("Nothing lives at %s.", path))
	a.muted("Type 'help' to see what you can open.")
}
