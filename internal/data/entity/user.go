package entity

type UserRole string

const (
	RoleUser  UserRole = "user"
	RoleAdmin UserRole = "admin"
)

// User is the sole persisted entity. PasswordHash only ever holds bcrypt
// output; VerifyToken is set at signup and cleared by a successful verify,
// ResetToken is nil until a reset is requested and cleared when consumed.
type User struct {
	Base
	FullName     string   `db:"full_name"`
	Email        string   `db:"email"`
	PasswordHash string   `db:"password"`
	Avatar       string   `db:"avatar"`
	Role         UserRole `db:"role"`
	Verified     bool     `db:"verified"`
	VerifyToken  string   `db:"verify_token"`
	ResetToken   *string  `db:"reset_token"`
}
