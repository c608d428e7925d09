package response

type AuthResponse struct {
	User      UserResponse `json:"user"`
	AuthToken string       `json:"authToken"`
}
