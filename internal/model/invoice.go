package model

import (
	"strconv"

	"github.com/google/uuid"
)

type InvoiceStatus string

const (
	InvoicePending InvoiceStatus = "pending"
	InvoicePaid    InvoiceStatus = "paid"
)

func (s InvoiceStatus) String() string { return string(s) }

func (s InvoiceStatus) Valid() bool {
	return s == InvoicePending || s == InvoicePaid
}

// invoiceNamespace scopes deterministic invoice ids.
var invoiceNamespace = uuid.MustParse("6f1c3a52-3c0e-4f43-9a4e-0d8f6f7f2b10")

type Invoice struct {
	ID         string        `db:"id"          yaml:"id"          json:"id"`
	CustomerID string        `db:"customer_id" yaml:"customer_id" json:"customer_id"`
	Amount     int           `db:"amount"      yaml:"amount"      json:"amount"` // cents
	Status     InvoiceStatus `db:"status"      yaml:"status"      json:"status"`
	Date       string        `db:"date"        yaml:"date"        json:"date"` // YYYY-MM-DD
}

// Key returns the invoice id, deriving a stable UUIDv5 from the row's
// content when none was supplied.
func (i Invoice) Key() string {
	if i.ID != "" {
		return i.ID
	}
	name := i.CustomerID + "|" + i.Date + "|" + strconv.Itoa(i.Amount) + "|" + i.Status.String()
	return uuid.NewSHA1(invoiceNamespace, []byte(name)).String()
}
