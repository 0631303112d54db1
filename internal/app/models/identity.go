package models

type Role string

const (
	RolePatient  Role = "patient"
	RoleProvider Role = "healthcare_provider"
	RoleAdmin    Role = "admin"
)

type Identity struct {
	ID        int    `json:"id"`
	Email     string `json:"email"`
	Name      string `json:"name"`
	Role      Role   `json:"role"`
	Language  string `json:"language"`
	CreatedAt string `json:"created_at,omitempty"`
}
