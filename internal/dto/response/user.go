package response

import (
	"time"

	"account-service/internal/data/entity"
)

// UserResponse is the public projection of a user record. Password hashes
// and verification/reset tokens are never serialized.
type UserResponse struct {
	ID        string          `json:"id"`
	FullName  string          `json:"fullName"`
	Email     string          `json:"email"`
	Avatar    string          `json:"avatar"`
	Role      entity.UserRole `json:"role"`
	Verified  bool            `json:"verified"`
	CreatedAt time.Time       `json:"createdAt"`
	UpdatedAt time.Time       `json:"updatedAt"`
}

func UserToResponse(user *entity.User) UserResponse {
	return UserResponse{
		ID:        user.ID.String(),
		FullName:  user.FullName,
		Email:     user.Email,
		Avatar:    user.Avatar,
		Role:      user.Role,
		Verified:  user.Verified,
		CreatedAt: user.CreatedAt,
		UpdatedAt: user.UpdatedAt,
	}
}
