package model

// Endpoint is a deployed serverless API receiving webhook calls.
type Endpoint struct {
	ID    string `db:"id"     yaml:"id"     json:"id"`
	Name  string `db:"name"   yaml:"name"   json:"name"`
	APIID string `db:"api_id" yaml:"api_id" json:"api_id"`
	URL   string `db:"url"    yaml:"url"    json:"url"`
}
