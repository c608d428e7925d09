package request

type SignupRequest struct {
	FullName string `json:"fullName" validate:"required,min=1,max=100"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type VerifyRequest struct {
	ID    string `json:"id" validate:"required,uuid"`
	Token string `json:"token" validate:"required"`
}

type ForgotPasswordRequest struct {
	Email string `json:"email" validate:"required,email"`
}

type ResetPasswordRequest struct {
	ID         string `json:"id" validate:"required,uuid"`
	Password   string `json:"password" validate:"required,min=6"`
	ResetToken string `json:"resetToken" validate:"required"`
}
