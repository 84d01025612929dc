package permission

import (
	"fmt"
)

// InitDefaultPolicies seeds the role policies the routes depend on. AddPolicy
// is idempotent for existing rows, so running this on every boot is safe.
func (e *Enforcer) InitDefaultPolicies() error {
	policies := [][3]string{
		// Admin: full access to users, tickets and reference data.
		{"admin", "usuario", "create"},
		{"admin", "usuario", "read"},
		{"admin", "usuario", "update"},
		{"admin", "usuario", "delete"},
		{"admin", "chamado", "create"},
		{"admin", "chamado", "read"},
		// "list" is the service-wide view: every user's tickets and the
		// aggregate stats. Only admins hold it; clients read single
		// tickets and their own list through "read".
		{"admin", "chamado", "list"},
		{"admin", "chamado", "update"},
		{"admin", "chamado", "delete"},
		{"admin", "catalogo", "read"},

		// Client: open tickets and read their own; reference data is
		// needed to render the forms.
		{"client", "chamado", "create"},
		{"client", "chamado", "read"},
		{"client", "catalogo", "read"},
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	for _, p := range policies {
		if _, err := e.enforcer.AddPolicy(p[0], p[1], p[2]); err != nil {
			e.logger.Errorw("failed to add permission policy", "error", err, "role", p[0], "resource", p[1], "action", p[2])
			return fmt.Errorf("failed to add policy [%s, %s, %s]: %w", p[0], p[1], p[2], err)
		}
	}

	if err := e.enforcer.SavePolicy(); err != nil {
		return fmt.Errorf("failed to save policies: %w", err)
	}

	e.logger.Info("default permission policies initialized")
	return nil
}
