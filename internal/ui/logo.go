package ui

import "github.com/a-h/templ"

const LogoPath = "/static/logo.svg"

func Logo() templ.Component {
	return templ.FromGoHTML(templates.Lookup("logo"), struct{ Src string }{LogoPath})
}
