// Файл: internal/entities/account-entity.go
package entities

import "time"

// Account is a principal able to log in: super admins, branch admins and members
// share the "accounts" collection.
type Account struct {
	ID           string    `bson:"_id" json:"id"`
	Role         string    `bson:"role" json:"role"`
	Name         string    `bson:"name" json:"name"`
	Email        string    `bson:"email,omitempty" json:"email,omitempty"`
	Phone        string    `bson:"phone,omitempty" json:"phone,omitempty"`
	Avatar       string    `bson:"avatar,omitempty" json:"avatar,omitempty"`
	BranchID     *string   `bson:"branchId,omitempty" json:"branchId,omitempty"`
	PasswordHash string    `bson:"passwordHash" json:"-"`
	IsActive     bool      `bson:"isActive" json:"isActive"`
	CreatedAt    time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt    time.Time `bson:"updatedAt" json:"updatedAt"`
}
