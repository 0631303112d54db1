package requests

type LoginUser struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
}

type RegisterUser struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
	Name     string `json:"name" validate:"required,max=100"`
	Role     string `json:"role,omitempty" validate:"omitempty,user_role"`
	Language string `json:"language,omitempty" validate:"omitempty,max=10"`
}

type UpdateProfile struct {
	Name     string `json:"name,omitempty" validate:"omitempty,max=100"`
	Language string `json:"language,omitempty" validate:"omitempty,max=10"`
}
