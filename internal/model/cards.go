package model

// CardData feeds the dashboard summary cards.
type CardData struct {
	NumberOfEvents    int64 `json:"numberOfEvents"`
	NumberOfProviders int64 `json:"numberOfProviders"`
	NumberOfEndpoints int64 `json:"numberOfEndpoints"`
}
