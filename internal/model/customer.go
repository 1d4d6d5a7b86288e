package model

type Customer struct {
	ID       string `db:"id"        yaml:"id"        json:"id"`
	Name     string `db:"name"      yaml:"name"      json:"name"`
	Email    string `db:"email"     yaml:"email"     json:"email"`
	ImageURL string `db:"image_url" yaml:"image_url" json:"image_url"`
}
