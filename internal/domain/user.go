package domain

// User is a registered storefront account. The Password field holds
// whatever the configured CredentialVerifier produced at registration
// time: the raw password under the plain scheme, a bcrypt hash under
// the bcrypt scheme.
type User struct {
	ID       int64  `json:"id"`
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// UserDirectory owns the in-memory user records and the monotonic id
// counter. Email uniqueness is enforced at create time.
type UserDirectory interface {
	CreateUser(name, email, password string) (*User, error)
	GetUserByEmail(email string) (*User, error)
}

// CredentialVerifier abstracts how a stored credential is produced and
// checked, so the authentication predicate stays a pluggable boundary
// even when it trivially wraps string equality.
type CredentialVerifier interface {
	Hash(password string) (string, error)
	Verify(stored, supplied string) error
}

// SessionRepository persists the zero-or-one active user.
type SessionRepository interface {
	Load() (*User, error)
	Save(user *User) error
	Clear() error
}
