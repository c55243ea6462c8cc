package user

// User is a fund member. The dashboard session acts as one member at a time.
type User struct {
	ID                string  `json:"id"`
	Name              string  `json:"name"`
	Email             string  `json:"email"`
	Avatar            string  `json:"avatar"` // URL or data URI
	TotalContribution float64 `json:"total_contribution"`
	PendingAmount     float64 `json:"pending_amount"`
}

type Credentials struct {
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// UpdateProfile holds the profile changes. Blank fields keep their current value.
// AvatarFile, when set, replaces Avatar with a data URI of the file.
type UpdateProfile struct {
	Name       string `json:"name"`
	Email      string `json:"email"`
	Avatar     string `json:"avatar"`
	AvatarFile []byte `json:"-"`
}
