package domain

// User is stored with its bcrypt password digest; PublicUser is what goes
// over the wire.
type User struct {
	ID        string `json:"id" bson:"id"`
	Email     string `json:"email" bson:"email"`
	Password  string `json:"password" bson:"password"` // bcrypt digest, never plaintext
	Name      string `json:"name" bson:"name"`
	CreatedAt string `json:"createdAt" bson:"createdAt"`
	UpdatedAt string `json:"updatedAt,omitempty" bson:"updatedAt,omitempty"`
}

type PublicUser struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	Name  string `json:"name"`
}

func (u User) Public() PublicUser {
	return PublicUser{ID: u.ID, Email: u.Email, Name: u.Name}
}

// UserPatch describes a partial user update; nil fields stay untouched.
type UserPatch struct {
	Email    *string
	Password *string
	Name     *string
}

func (p UserPatch) ApplyTo(u *User) {
	if p.Email != nil {
		u.Email = *p.Email
	}
	if p.Password != nil {
		u.Password = *p.Password
	}
	if p.Name != nil {
		u.Name = *p.Name
	}
}
