package request

// EditAccountRequest is the allowlist of self-service mutable fields.
// Role, verified flag, password and tokens are deliberately absent.
type EditAccountRequest struct {
	FullName *string `json:"fullName" validate:"omitempty,min=1,max=100"`
	Avatar   *string `json:"avatar" validate:"omitempty,url"`
}

type EditPasswordRequest struct {
	OldPassword string `json:"oldPassword" validate:"required"`
	NewPassword string `json:"newPassword" validate:"required,min=6"`
}
