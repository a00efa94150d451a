package domain

// User is a back-office account. PasswordHash is stored under the
// "password" key of the document and never leaves the service.
type User struct {
	ID           string `json:"id"`
	Username     string `json:"username"`
	Email        string `json:"email"`
	PasswordHash string `json:"password"`
	Role         string `json:"role"`
	Name         string `json:"name"`
}

// PublicUser is the view of a user returned to API clients.
type PublicUser struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	Role  string `json:"role"`
	Name  string `json:"name"`
}

func (u User) Public() PublicUser {
	return PublicUser{ID: u.ID, Email: u.Email, Role: u.Role, Name: u.Name}
}
