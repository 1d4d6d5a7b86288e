// Package placeholder holds the fixed demo dataset inserted by the seeder.
package placeholder

import (
	"encoding/json"

	"github.com/codehook/dashboard/internal/model"
)

// Dataset is every row the seeder inserts, grouped by table.
type Dataset struct {
	Users        []model.User
	Customers    []model.Customer
	Invoices     []model.Invoice
	Endpoints    []model.Endpoint
	Providers    []model.Provider
	Events       []model.Event
	EventHistory []model.EventHistory
}

// Default returns a fresh copy of the built-in dataset.
func Default() Dataset {
	return Dataset{
		Users: []model.User{
			{
				ID:       "410544b2-4001-4271-9855-fec4b6a6442a",
				Name:     "User",
				Email:    "user@codehook.ai",
				Password: "123456",
			},
		},
		Customers: []model.Customer{
			{ID: "3958dc9e-712f-4377-85e9-fec4b6a6442a", Name: "Delba de Oliveira", Email: "delba@oliveira.com", ImageURL: "/customers/delba-de-oliveira.png"},
			{ID: "3958dc9e-742f-4377-85e9-fec4b6a6442a", Name: "Lee Robinson", Email: "lee@robinson.com", ImageURL: "/customers/lee-robinson.png"},
			{ID: "3958dc9e-737f-4377-85e9-fec4b6a6442a", Name: "Hector Simpson", Email: "hector@simpson.com", ImageURL: "/customers/hector-simpson.png"},
			{ID: "50ca3e18-62cd-11ee-8c99-0242ac120002", Name: "Steven Tey", Email: "steven@tey.com", ImageURL: "/customers/steven-tey.png"},
			{ID: "3958dc9e-787f-4377-85e9-fec4b6a6442a", Name: "Steph Dietz", Email: "steph@dietz.com", ImageURL: "/customers/steph-dietz.png"},
		},
		Invoices: []model.Invoice{
			{CustomerID: "3958dc9e-712f-4377-85e9-fec4b6a6442a", Amount: 15795, Status: model.InvoicePending, Date: "2022-12-06"},
			{CustomerID: "3958dc9e-742f-4377-85e9-fec4b6a6442a", Amount: 20348, Status: model.InvoicePending, Date: "2022-11-14"},
			{CustomerID: "3958dc9e-787f-4377-85e9-fec4b6a6442a", Amount: 3040, Status: model.InvoicePaid, Date: "2022-10-29"},
			{CustomerID: "50ca3e18-62cd-11ee-8c99-0242ac120002", Amount: 44800, Status: model.InvoicePaid, Date: "2023-09-10"},
			{CustomerID: "3958dc9e-737f-4377-85e9-fec4b6a6442a", Amount: 34577, Status: model.InvoicePending, Date: "2023-08-05"},
			{CustomerID: "3958dc9e-712f-4377-85e9-fec4b6a6442a", Amount: 666, Status: model.InvoicePending, Date: "2023-06-27"},
			{CustomerID: "3958dc9e-742f-4377-85e9-fec4b6a6442a", Amount: 32545, Status: model.InvoicePaid, Date: "2023-06-09"},
			{CustomerID: "3958dc9e-787f-4377-85e9-fec4b6a6442a", Amount: 1250, Status: model.InvoicePaid, Date: "2023-06-17"},
		},
		Endpoints: []model.Endpoint{
			{ID: "ep_slack_notify", Name: "slack-notify", APIID: "k2j4l1m9q7", URL: "https://k2j4l1m9q7.execute-api.us-east-1.amazonaws.com/default/slack-notify"},
			{ID: "ep_crm_sync", Name: "crm-sync", APIID: "p0z8x6c4v2", URL: "https://p0z8x6c4v2.execute-api.us-east-1.amazonaws.com/default/crm-sync"},
			{ID: "ep_refund_alert", Name: "refund-alert", APIID: "a1s3d5f7g9", URL: "https://a1s3d5f7g9.execute-api.us-east-1.amazonaws.com/default/refund-alert"},
		},
		Providers: []model.Provider{
			{WebhookID: "we_1OkYx2LkdIwHu7ixXn3kP0aQ", Source: "stripe", Events: model.AllEvents},
			{WebhookID: "we_1OkZ41LkdIwHu7ixQ9TqLm2c", Source: "stripe", Events: "charge.succeeded,charge.refunded,invoice.paid"},
		},
		Events: []model.Event{
			{ID: "evt_1OkYz8LkdIwHu7ix6qW0a1b2", Type: "charge.succeeded", Provider: "stripe", Payload: json.RawMessage(`{"object":"charge","amount":2000,"currency":"usd"}`)},
			{ID: "evt_1OkZ0aLkdIwHu7ixR3c4d5e6", Type: "customer.created", Provider: "stripe", Payload: json.RawMessage(`{"object":"customer","email":"lee@robinson.com"}`)},
			{ID: "evt_1OkZ1bLkdIwHu7ixT7f8g9h0", Type: "invoice.paid", Provider: "stripe", Payload: json.RawMessage(`{"object":"invoice","amount_paid":44800}`)},
			{ID: "evt_1OkZ2cLkdIwHu7ixU1i2j3k4", Type: "charge.refunded", Provider: "stripe", Payload: json.RawMessage(`{"object":"charge","amount_refunded":666}`)},
			{ID: "evt_1OkZ3dLkdIwHu7ixV5l6m7n8", Type: "payment_intent.created", Provider: "stripe"},
		},
		EventHistory: []model.EventHistory{
			{Month: "Jan", Events: 2000},
			{Month: "Feb", Events: 1800},
			{Month: "Mar", Events: 2200},
			{Month: "Apr", Events: 2500},
			{Month: "May", Events: 2300},
			{Month: "Jun", Events: 3200},
			{Month: "Jul", Events: 3500},
			{Month: "Aug", Events: 3700},
			{Month: "Sep", Events: 2500},
			{Month: "Oct", Events: 2800},
			{Month: "Nov", Events: 3000},
			{Month: "Dec", Events: 4800},
		},
	}
}

// Len is the total number of rows across all tables.
func (d Dataset) Len() int {
	return len(d.Users) + len(d.Customers) + len(d.Invoices) + len(d.Endpoints) +
		len(d.Providers) + len(d.Events) + len(d.EventHistory)
}
