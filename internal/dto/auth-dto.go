package dto

type LoginDTO struct {
	Login    string `json:"login" validate:"required"`
	Password string `json:"password" validate:"required,min=6"`
}

type SendCodeDTO struct {
	Email string `json:"email" validate:"required_without=Phone,omitempty,email"`
	Phone string `json:"phone_number" validate:"required_without=Email,omitempty,phone_e164"`
}

func (d SendCodeDTO) Login() string {
	if d.Email != "" {
		return d.Email
	}
	return d.Phone
}

type VerifyCodeDTO struct {
	Email string `json:"email" validate:"required_without=Phone,omitempty,email"`
	Phone string `json:"phone_number" validate:"required_without=Email,omitempty,phone_e164"`
	Code  string `json:"code" validate:"required,numeric,min=4,max=8"`
}

func (d VerifyCodeDTO) Login() string {
	if d.Email != "" {
		return d.Email
	}
	return d.Phone
}

type AuthResponseDTO struct {
	User      UserProfileDTO `json:"user"`
	ExpiresAt int64          `json:"expiresAt"`
}

type UserProfileDTO struct {
	ID       string  `json:"id"`
	Role     Role    `json:"role"`
	Name     string  `json:"name,omitempty"`
	Email    string  `json:"email,omitempty"`
	Phone    string  `json:"phone,omitempty"`
	Avatar   string  `json:"avatar,omitempty"`
	BranchID *string `json:"branchId,omitempty"`
}

func NewUserProfileDTO(p *SessionPayload) UserProfileDTO {
	return UserProfileDTO{
		ID:       p.Subject,
		Role:     p.Role,
		Name:     p.Name,
		Email:    p.Email,
		Phone:    p.Phone,
		Avatar:   p.Avatar,
		BranchID: p.BranchID,
	}
}

type BranchScopeDTO struct {
	BranchID *string `json:"branchId"`
	Global   bool    `json:"global"`
}
