package model

import "strings"

// AllEvents subscribes a provider to every event type.
const AllEvents = "*"

// Provider is a webhook endpoint registered in a source platform (e.g. stripe).
type Provider struct {
	WebhookID string `db:"we_id"  yaml:"we_id"  json:"we_id"`
	Source    string `db:"source" yaml:"source" json:"source"`
	Events    string `db:"events" yaml:"events" json:"events"` // comma-separated event types
}

// EnabledEvents splits Events into its event types, dropping blanks.
func (p Provider) EnabledEvents() []string {
	parts := strings.Split(p.Events, ",")
	out := make([]string, 0, len(parts))
	for _, s := range parts {
		if s = strings.TrimSpace(s); s != "" {
			out = append(out, s)
		}
	}
	return out
}

// Subscribed reports whether the provider forwards events of the given type.
func (p Provider) Subscribed(eventType string) bool {
	for _, e := range p.EnabledEvents() {
		if e == AllEvents || e == eventType {
			return true
		}
	}
	return false
}

// JoinEvents is the inverse of EnabledEvents.
func JoinEvents(events []string) string {
	return strings.Join(events, ",")
}
