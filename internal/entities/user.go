package entities

// User is an entry in the denormalized user directory the admin screen
// lists. Authentication itself is owned by the external identity provider;
// this record only mirrors what the directory needs.
type User struct {
	ID        string `json:"id"`
	Email     string `json:"email"`
	Username  string `json:"username"`
	IsAdmin   bool   `json:"is_admin"`
	CreatedAt int64  `json:"created_at"`
}
