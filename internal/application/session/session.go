// Package session usuario que actúa en cada caso de uso. Se pasa explícitamente
// en lugar de leerse de un contexto global.
package session

import (
	"fmt"

	"github.com/jhoicas/refnet-api/internal/domain"
)

// Role rol de la aplicación.
type Role string

const (
	RoleDriver         Role = "driver"
	RoleFinanceManager Role = "finance_manager"
	RoleSupplier       Role = "supplier"
	RoleTechnician     Role = "technician"
)

// Session identidad autenticada por el proveedor externo.
type Session struct {
	UserID string
	Email  string
	Role   Role
}

// Validate exige un usuario identificado.
func (s Session) Validate() error {
	if s.UserID == "" {
		return fmt.Errorf("%w: session without user", domain.ErrUnauthorized)
	}
	return nil
}

// Require exige además uno de los roles indicados.
func (s Session) Require(roles ...Role) error {
	if err := s.Validate(); err != nil {
		return err
	}
	for _, r := range roles {
		if s.Role == r {
			return nil
		}
	}
	return fmt.Errorf("%w: role %q", domain.ErrForbidden, s.Role)
}
