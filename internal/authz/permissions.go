// internal/authz/permissions.go
package authz

import "fitness-center/internal/dto"

// Наборы ролей для маршрутов

var (
	SuperAdminOnly = []dto.Role{dto.RoleSuperAdmin}
	Staff          = []dto.Role{dto.RoleSuperAdmin, dto.RoleBranchAdmin}
	// AnyRole admits every verified session.
	AnyRole []dto.Role
)
