package ui

import (
	"html/template"

	"github.com/a-h/templ"
)

type Link struct {
	Name string
	Href string
	icon string
	path string
}

const (
	PathDashboard = "/dashboard"
	PathEndpoints = "/dashboard/endpoints"
	PathSettings  = "/dashboard/settings"
)

// Links is the side navigation, in display order.
var Links = []Link{
	{Name: "Dashboard", Href: PathDashboard, icon: "window", path: pathWindow},
	{Name: "Endpoints", Href: PathEndpoints, icon: "code-bracket", path: pathCodeBracket},
	{Name: "Settings", Href: PathSettings, icon: "cog", path: pathCog},
}

const (
	navBaseClass   = "flex h-[48px] grow items-center justify-center gap-2 rounded-md bg-gray-50 p-3 text-sm font-medium hover:bg-codehook-300 md:flex-none md:justify-start md:p-2 md:px-3"
	navActiveClass = "bg-codehook-900 text-white hover:bg-codehook-900 hover:text-white"
)

type navView struct {
	Name   string
	Href   string
	Class  string
	Active bool
	Icon   template.HTML
}

// navClass appends the active classes when href is the current route.
func navClass(pathname, href string) string {
	if pathname == href {
		return navBaseClass + " " + navActiveClass
	}
	return navBaseClass
}

// NavLinks renders the navigation, highlighting the link equal to pathname.
func NavLinks(pathname string) templ.Component {
	views := make([]navView, 0, len(Links))
	for _, l := range Links {
		views = append(views, navView{
			Name:   l.Name,
			Href:   l.Href,
			Class:  navClass(pathname, l.Href),
			Active: pathname == l.Href,
			Icon:   icon(l.icon, l.path, "w-6"),
		})
	}
	return templ.FromGoHTML(templates.Lookup("nav"), views)
}
