package placeholder

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/codehook/dashboard/internal/model"
	"gopkg.in/yaml.v3"
)

type fileEvent struct {
	ID       string `yaml:"id"`
	Type     string `yaml:"type"`
	Provider string `yaml:"provider"`
	Payload  any    `yaml:"payload"`
}

type file struct {
	Users        []model.User         `yaml:"users"`
	Customers    []model.Customer     `yaml:"customers"`
	Invoices     []model.Invoice      `yaml:"invoices"`
	Endpoints    []model.Endpoint     `yaml:"endpoints"`
	Providers    []model.Provider     `yaml:"providers"`
	Events       []fileEvent          `yaml:"events"`
	EventHistory []model.EventHistory `yaml:"event_history"`
}

// Load reads a dataset from a YAML file. Event payloads may be any YAML
// value; they are stored as their JSON encoding.
func Load(path string) (Dataset, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return Dataset{}, fmt.Errorf("read dataset %s: %w", path, err)
	}
	return Parse(raw)
}

// Parse decodes a YAML dataset and validates it.
func Parse(raw []byte) (Dataset, error) {
	var f file
	if err := yaml.Unmarshal(raw, &f); err != nil {
		return Dataset{}, fmt.Errorf("decode dataset: %w", err)
	}

	d := Dataset{
		Users:        f.Users,
		Customers:    f.Customers,
		Invoices:     f.Invoices,
		Endpoints:    f.Endpoints,
		Providers:    f.Providers,
		EventHistory: f.EventHistory,
	}
	for _, fe := range f.Events {
		ev := model.Event{ID: fe.ID, Type: fe.Type, Provider: fe.Provider}
		if fe.Payload != nil {
			b, err := json.Marshal(fe.Payload)
			if err != nil {
				return Dataset{}, fmt.Errorf("event %q payload: %w", fe.ID, err)
			}
			ev.Payload = b
		}
		d.Events = append(d.Events, ev)
	}

	if err := d.Validate(); err != nil {
		return Dataset{}, err
	}
	return d, nil
}

// Validate checks that every row has its key and that keys are unique per table.
func (d Dataset) Validate() error {
	check := func(table string, keys []string) error {
		seen := make(map[string]struct{}, len(keys))
		for i, k := range keys {
			if k == "" {
				return fmt.Errorf("%s[%d]: missing key", table, i)
			}
			if _, dup := seen[k]; dup {
				return fmt.Errorf("%s[%d]: duplicate key %q", table, i, k)
			}
			seen[k] = struct{}{}
		}
		return nil
	}

	userKeys := make([]string, len(d.Users))
	userEmails := make([]string, len(d.Users))
	for i, u := range d.Users {
		userKeys[i], userEmails[i] = u.ID, u.Email
	}
	customerKeys := make([]string, len(d.Customers))
	for i, c := range d.Customers {
		customerKeys[i] = c.ID
	}
	invoiceKeys := make([]string, len(d.Invoices))
	for i, inv := range d.Invoices {
		if !inv.Status.Valid() {
			return fmt.Errorf("invoices[%d]: invalid status %q", i, inv.Status)
		}
		invoiceKeys[i] = inv.Key()
	}
	endpointKeys := make([]string, len(d.Endpoints))
	for i, e := range d.Endpoints {
		endpointKeys[i] = e.ID
	}
	providerKeys := make([]string, len(d.Providers))
	for i, p := range d.Providers {
		providerKeys[i] = p.WebhookID
	}
	eventKeys := make([]string, len(d.Events))
	for i, e := range d.Events {
		eventKeys[i] = e.ID
	}
	monthKeys := make([]string, len(d.EventHistory))
	for i, h := range d.EventHistory {
		monthKeys[i] = h.Month
	}

	for _, c := range []struct {
		table string
		keys  []string
	}{
		{"users", userKeys},
		{"users.email", userEmails},
		{"customers", customerKeys},
		{"invoices", invoiceKeys},
		{"endpoints", endpointKeys},
		{"providers", providerKeys},
		{"events", eventKeys},
		{"event_history", monthKeys},
	} {
		if err := check(c.table, c.keys); err != nil {
			return err
		}
	}
	return nil
}
