package auth

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// LoginResponse carries what the shell needs to render after sign-in:
// who is signed in and which dashboard to land on.
type LoginResponse struct {
	UserName    string `json:"userName"`
	Role        string `json:"role"`
	LandingPath string `json:"landingPath"`
}
