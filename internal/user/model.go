package user

// User represents a user in the system.
// Users are owned by the account service; this API only reads them.
type User struct {
	ID              string  `json:"id"`
	Username        string  `json:"username"`
	Email           string  `json:"email"`
	ProfileImageURL *string `json:"profile_image_url,omitempty"`
	Rating          float64 `json:"rating"`
	UserLevel       int     `json:"user_level"`
	IsVerified      bool    `json:"is_verified"`
}
