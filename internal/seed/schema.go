package seed

import (
	"github.com/codehook/dashboard/internal/model"
	"github.com/codehook/dashboard/internal/placeholder"
)

const createUUIDExtension = `CREATE EXTENSION IF NOT EXISTS "uuid-ossp"`

// rowFunc yields the insert arguments for one placeholder row.
type rowFunc func() ([]any, error)

type table struct {
	name      string
	needsUUID bool // requires uuid-ossp for its DEFAULT
	create    string
	insert    string
	rows      []rowFunc
}

const (
	createUsers = `
CREATE TABLE IF NOT EXISTS users (
    id UUID DEFAULT uuid_generate_v4() PRIMARY KEY,
    name VARCHAR(255) NOT NULL,
    email TEXT NOT NULL UNIQUE,
    password TEXT NOT NULL
)`
	// no conflict target: skips on either id or email
	insertUser = `
INSERT INTO users (id, name, email, password)
VALUES ($1, $2, $3, $4)
ON CONFLICT DO NOTHING`

	createCustomers = `
CREATE TABLE IF NOT EXISTS customers (
    id UUID DEFAULT uuid_generate_v4() PRIMARY KEY,
    name VARCHAR(255) NOT NULL,
    email VARCHAR(255) NOT NULL,
    image_url VARCHAR(255) NOT NULL
)`
	insertCustomer = `
INSERT INTO customers (id, name, email, image_url)
VALUES ($1, $2, $3, $4)
ON CONFLICT (id) DO NOTHING`

	createInvoices = `
CREATE TABLE IF NOT EXISTS invoices (
    id UUID DEFAULT uuid_generate_v4() PRIMARY KEY,
    customer_id UUID NOT NULL,
    amount INT NOT NULL,
    status VARCHAR(255) NOT NULL,
    date DATE NOT NULL
)`
	insertInvoice = `
INSERT INTO invoices (id, customer_id, amount, status, date)
VALUES ($1, $2, $3, $4, $5)
ON CONFLICT (id) DO NOTHING`

	createEndpoints = `
CREATE TABLE IF NOT EXISTS endpoints (
    id VARCHAR(255) PRIMARY KEY,
    name VARCHAR(255) NOT NULL,
    api_id VARCHAR(255) NOT NULL,
    url TEXT NOT NULL
)`
	insertEndpoint = `
INSERT INTO endpoints (id, name, api_id, url)
VALUES ($1, $2, $3, $4)
ON CONFLICT (id) DO NOTHING`

	createProviders = `
CREATE TABLE IF NOT EXISTS providers (
    we_id VARCHAR(255) PRIMARY KEY,
    source VARCHAR(255) NOT NULL,
    events VARCHAR(255) NOT NULL
)`
	insertProvider = `
INSERT INTO providers (we_id, source, events)
VALUES ($1, $2, $3)
ON CONFLICT (we_id) DO NOTHING`

	createEvents = `
CREATE TABLE IF NOT EXISTS events (
    id VARCHAR(255) PRIMARY KEY,
    type VARCHAR(255) NOT NULL,
    provider VARCHAR(255) NOT NULL,
    payload JSON
)`
	insertEvent = `
INSERT INTO events (id, type, provider, payload)
VALUES ($1, $2, $3, $4)
ON CONFLICT (id) DO NOTHING`

	createEventHistory = `
CREATE TABLE IF NOT EXISTS event_history (
    month VARCHAR(4) NOT NULL UNIQUE,
    events INT NOT NULL
)`
	insertEventHistory = `
INSERT INTO event_history (month, events)
VALUES ($1, $2)
ON CONFLICT (month) DO NOTHING`
)

// tables returns the seed plan in its fixed execution order. Passwords are
// hashed lazily inside each row so hashing runs in the table's task group.
func tables(d placeholder.Dataset, hash func(string) (string, error)) []table {
	users := table{name: "users", needsUUID: true, create: createUsers, insert: insertUser}
	for _, u := range d.Users {
		users.rows = append(users.rows, func() ([]any, error) {
			hashed, err := hash(u.Password)
			if err != nil {
				return nil, err
			}
			return []any{u.ID, u.Name, u.Email, hashed}, nil
		})
	}

	customers := table{name: "customers", needsUUID: true, create: createCustomers, insert: insertCustomer}
	for _, c := range d.Customers {
		customers.rows = append(customers.rows, static(c.ID, c.Name, c.Email, c.ImageURL))
	}

	invoices := table{name: "invoices", needsUUID: true, create: createInvoices, insert: insertInvoice}
	for _, inv := range d.Invoices {
		invoices.rows = append(invoices.rows, static(inv.Key(), inv.CustomerID, inv.Amount, inv.Status.String(), inv.Date))
	}

	endpoints := table{name: "endpoints", create: createEndpoints, insert: insertEndpoint}
	for _, e := range d.Endpoints {
		endpoints.rows = append(endpoints.rows, static(e.ID, e.Name, e.APIID, e.URL))
	}

	providers := table{name: "providers", create: createProviders, insert: insertProvider}
	for _, p := range d.Providers {
		providers.rows = append(providers.rows, static(p.WebhookID, p.Source, p.Events))
	}

	events := table{name: "events", create: createEvents, insert: insertEvent}
	for _, e := range d.Events {
		events.rows = append(events.rows, static(e.ID, e.Type, e.Provider, payloadArg(e)))
	}

	history := table{name: "event_history", create: createEventHistory, insert: insertEventHistory}
	for _, h := range d.EventHistory {
		history.rows = append(history.rows, static(h.Month, h.Events))
	}

	return []table{users, customers, invoices, endpoints, providers, events, history}
}

func static(args ...any) rowFunc {
	return func() ([]any, error) { return args, nil }
}

// payloadArg maps an empty payload to SQL NULL.
func payloadArg(e model.Event) any {
	if len(e.Payload) == 0 {
		return nil
	}
	return string(e.Payload)
}
