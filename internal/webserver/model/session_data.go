package model

// Session holds the signed-in user's data as decoded from the session cookie.
type Session struct {
	ID       uint
	Uuid     string
	Name     string
	Username string
	Email    string
	Role     int
	Exp      float64
}
