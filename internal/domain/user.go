package domain

// User is a registered account. PasswordHash never leaves the process.
type User struct {
	ID           string `json:"id"`
	Email        string `json:"email"`
	Name         string `json:"name"`
	PasswordHash string `json:"-"`
}

// Identity is the subject resolved from a bearer credential. Checkout only
// reads it, and only to attribute the order; a missing or invalid credential
// resolves to no identity at all.
type Identity struct {
	ID    string
	Email string
	Name  string
}
