package dto

// StudentRegisterRequest payload for new students.
type StudentRegisterRequest struct {
	Name       string `json:"name"`
	Enrollment string `json:"enrollment"`
	Password   string `json:"password"`
}

// StudentLoginRequest payload for login.
type StudentLoginRequest struct {
	Enrollment string `json:"enrollment"`
	Password   string `json:"password"`
}
