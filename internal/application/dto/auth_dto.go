package dto

// LoginRequest credenciales del formulario de login.
type LoginRequest struct {
	Username string `form:"username" json:"username"`
	Password string `form:"password" json:"password"`
}

// CreateUserRequest alta de usuario desde el panel admin.
type CreateUserRequest struct {
	Username string `form:"username" json:"username"`
	Password string `form:"password" json:"password"`
	Role     string `form:"role" json:"role"`
}
