package handler

type registerRequest struct {
	Email           string `json:"email"           form:"email"           validate:"required,email"`
	Password        string `json:"password"        form:"password"        validate:"required"`
	ConfirmPassword string `json:"confirmPassword" form:"confirmPassword" validate:"required"`
	First           string `json:"first"           form:"first"`
	Last            string `json:"last"            form:"last"`
	Picture         string `json:"picture"         form:"picture"         validate:"omitempty,url"`
}

type signInRequest struct {
	Email    string `json:"email"    form:"email"    validate:"required"`
	Password string `json:"password" form:"password" validate:"required"`
}

type updatePasswordRequest struct {
	OldPassword     string `json:"oldPassword"     form:"oldPassword"     validate:"required"`
	NewPassword     string `json:"newPassword"     form:"newPassword"     validate:"required"`
	ConfirmPassword string `json:"confirmPassword" form:"confirmPassword" validate:"required"`
}

type updatePasswordView struct {
	UserID string
}
