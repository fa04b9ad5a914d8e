package dto

// CreateAccountDTO is the payload staff use to register an account.
type CreateAccountDTO struct {
	Name     string  `json:"name" validate:"required,min=2,max=100"`
	Email    string  `json:"email" validate:"required_without=Phone,omitempty,email"`
	Phone    string  `json:"phone_number" validate:"required_without=Email,omitempty,phone_e164"`
	Password string  `json:"password" validate:"required,min=6"`
	Role     Role    `json:"role" validate:"required,session_role"`
	BranchID *string `json:"branchId,omitempty"`
	Avatar   string  `json:"avatar,omitempty" validate:"omitempty,url"`
}
