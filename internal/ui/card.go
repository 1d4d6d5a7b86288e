package ui

import (
	"context"
	"html/template"
	"io"

	"github.com/a-h/templ"
	"github.com/codehook/dashboard/internal/model"
)

// CardKind selects a card's icon.
type CardKind string

const (
	CardEvents    CardKind = "events"
	CardProviders CardKind = "providers"
	CardEndpoints CardKind = "endpoints"
)

var iconMap = map[CardKind]struct{ name, path string }{
	CardEvents:    {"globe-alt", pathGlobeAlt},
	CardProviders: {"server", pathServer},
	CardEndpoints: {"code-bracket", pathCodeBracket},
}

type cardView struct {
	Title string
	Value any
	Icon  template.HTML
}

// Card renders one summary card. Unknown kinds render without an icon.
func Card(title string, value any, kind CardKind) templ.Component {
	v := cardView{Title: title, Value: value}
	if ic, ok := iconMap[kind]; ok {
		v.Icon = icon(ic.name, ic.path, "h-5 w-5 text-gray-700")
	}
	return templ.FromGoHTML(templates.Lookup("card"), v)
}

// CardWrapper renders the three dashboard summary cards.
func CardWrapper(d model.CardData) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		for _, c := range []templ.Component{
			Card("Total Events", d.NumberOfEvents, CardEvents),
			Card("Number of Providers", d.NumberOfProviders, CardProviders),
			Card("Number of Endpoints", d.NumberOfEndpoints, CardEndpoints),
		} {
			if err := c.Render(ctx, w); err != nil {
				return err
			}
		}
		return nil
	})
}
