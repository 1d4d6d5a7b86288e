package model

// User is a dashboard login. Password holds plaintext in placeholder data
// and the bcrypt hash once persisted.
type User struct {
	ID       string `db:"id"       yaml:"id"`
	Name     string `db:"name"     yaml:"name"`
	Email    string `db:"email"    yaml:"email"`
	Password string `db:"password" yaml:"password"`
}
