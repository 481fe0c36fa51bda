package model

// User is the stored account record. PasswordHash must never cross the HTTP
// boundary; anything returned to a caller goes through Public().
type User struct {
	ID           int64   `json:"id"`
	Email        string  `json:"email"`
	PasswordHash string  `json:"-"`
	FirstName    *string `json:"first_name"`
	LastName     *string `json:"last_name"`
	Ctime        int64   `json:"ctime"`
	Mtime        int64   `json:"mtime"`
}

// PublicUser is the external representation of a user. It has no secret
// fields by construction.
type PublicUser struct {
	ID        int64   `json:"id"`
	Email     string  `json:"email"`
	FirstName *string `json:"first_name"`
	LastName  *string `json:"last_name"`
}

func (u *User) Public() *PublicUser {
	return &PublicUser{
		ID:        u.ID,
		Email:     u.Email,
		FirstName: u.FirstName,
		LastName:  u.LastName,
	}
}
