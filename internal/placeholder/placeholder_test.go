package placeholder

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault_Valid(t *testing.T) {
	d := Default()
	require.NoError(t, d.Validate())
	assert.Len(t, d.EventHistory, 12)
	assert.Equal(t, 1+5+8+3+2+5+12, d.Len())
}

func TestDefault_IsACopy(t *testing.T) {
	a := Default()
	a.Users[0].Name = "changed"
	assert.Equal(t, "User", Default().Users[0].Name)
}

const sample = `
users:
  - id: 410544b2-4001-4271-9855-fec4b6a6442a
    name: User
    email: user@codehook.ai
    password: "123456"
providers:
  - we_id: we_1
    source: stripe
    events: "*"
events:
  - id: evt_1
    type: charge.succeeded
    provider: stripe
    payload:
      object: charge
      amount: 2000
  - id: evt_2
    type: ping
    provider: stripe
event_history:
  - month: Jan
    events: 10
`

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "data.yaml")
	require.NoError(t, os.WriteFile(path, []byte(sample), 0o600))

	d, err := Load(path)
	require.NoError(t, err)

	require.Len(t, d.Users, 1)
	assert.Equal(t, "user@codehook.ai", d.Users[0].Email)
	require.Len(t, d.Events, 2)
	assert.JSONEq(t, `{"object":"charge","amount":2000}`, string(d.Events[0].Payload))
	assert.Nil(t, d.Events[1].Payload)
	assert.Equal(t, "*", d.Providers[0].Events)
	assert.Equal(t, 10, d.EventHistory[0].Events)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Dataset)
		wantErr string
	}{
		{
			name:    "duplicate endpoint id",
			mutate:  func(d *Dataset) { d.Endpoints = append(d.Endpoints, d.Endpoints[0]) },
			wantErr: "endpoints[3]: duplicate key",
		},
		{
			name:    "missing month",
			mutate:  func(d *Dataset) { d.EventHistory[2].Month = "" },
			wantErr: "event_history[2]: missing key",
		},
		{
			name:    "duplicate user email",
			mutate:  func(d *Dataset) { u := d.Users[0]; u.ID = "other"; d.Users = append(d.Users, u) },
			wantErr: "users.email[1]: duplicate key",
		},
		{
			name:    "bad invoice status",
			mutate:  func(d *Dataset) { d.Invoices[0].Status = "void" },
			wantErr: "invalid status",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := Default()
			tt.mutate(&d)
			err := d.Validate()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}
