package ui

import (
	"context"
	"embed"
	"html/template"
	"io"

	"github.com/a-h/templ"
	"github.com/codehook/dashboard/internal/model"
)

//go:embed templates/*.gohtml
var templateFS embed.FS

// Assets holds static files served under /static.
//
//go:embed static
var Assets embed.FS

var templates = template.Must(template.ParseFS(templateFS, "templates/*.gohtml"))

type pageView struct {
	Title string
	Logo  template.HTML
	Nav   template.HTML
	Body  template.HTML
}

// Page wraps body in the full document with logo and navigation.
func Page(title, pathname string, body templ.Component) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		var (
			v   = pageView{Title: title}
			err error
		)
		if v.Logo, err = templ.ToGoHTML(ctx, Logo()); err != nil {
			return err
		}
		if v.Nav, err = templ.ToGoHTML(ctx, NavLinks(pathname)); err != nil {
			return err
		}
		if v.Body, err = templ.ToGoHTML(ctx, body); err != nil {
			return err
		}
		return templates.ExecuteTemplate(w, "page", v)
	})
}

type overviewView struct {
	Cards   template.HTML
	Latest  []model.Event
	History []model.EventHistory
}

// Overview is the /dashboard body: cards, latest events and monthly history.
func Overview(cards model.CardData, latest []model.Event, history []model.EventHistory) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		c, err := templ.ToGoHTML(ctx, CardWrapper(cards))
		if err != nil {
			return err
		}
		return templates.ExecuteTemplate(w, "overview", overviewView{Cards: c, Latest: latest, History: history})
	})
}

func EndpointsTable(rows []model.Endpoint) templ.Component {
	return templ.FromGoHTML(templates.Lookup("endpoints"), rows)
}

type providerView struct {
	WebhookID string
	Source    string
	Events    []string
}

func ProvidersTable(rows []model.Provider) templ.Component {
	views := make([]providerView, 0, len(rows))
	for _, p := range rows {
		views = append(views, providerView{WebhookID: p.WebhookID, Source: p.Source, Events: p.EnabledEvents()})
	}
	return templ.FromGoHTML(templates.Lookup("settings"), views)
}

// ErrorPage is rendered inside Page when a handler fails.
func ErrorPage(message string) templ.Component {
	return templ.FromGoHTML(templates.Lookup("error"), message)
}
