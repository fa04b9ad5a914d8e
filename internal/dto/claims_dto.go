// Файл: internal/dto/claims_dto.go
package dto

type Role string

const (
	RoleSuperAdmin  Role = "super_admin"
	RoleBranchAdmin Role = "branch_admin"
	RoleMember      Role = "member"
)

func (r Role) Valid() bool {
	switch r {
	case RoleSuperAdmin, RoleBranchAdmin, RoleMember:
		return true
	}
	return false
}

// SessionPayload is the verified content of a session token. Values are
// produced by the token service only and are never mutated afterwards; a
// change in profile or role means issuing a new token.
type SessionPayload struct {
	Subject   string  `json:"sub"`
	Role      Role    `json:"role"`
	Name      string  `json:"name,omitempty"`
	Email     string  `json:"email,omitempty"`
	Phone     string  `json:"phone,omitempty"`
	Avatar    string  `json:"avatar,omitempty"`
	BranchID  *string `json:"branchId,omitempty"`
	IssuedAt  int64   `json:"iat"`
	ExpiresAt int64   `json:"exp"`
}

func (p *SessionPayload) IsSuperAdmin() bool {
	return p != nil && p.Role == RoleSuperAdmin
}

// HasRole reports whether the payload role is one of roles. An empty list allows any role.
func (p *SessionPayload) HasRole(roles ...Role) bool {
	if len(roles) == 0 {
		return true
	}
	for _, r := range roles {
		if p.Role == r {
			return true
		}
	}
	return false
}
