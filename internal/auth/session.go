package auth

import "invtrack/internal/models"

// Session is the ephemeral, process-local authenticated identity. The
// role is a snapshot taken at login: later role changes to the
// underlying user do not affect an open session.
type Session struct {
	ID       string      `json:"id"`
	UserID   uint        `json:"user_id"`
	Username string      `json:"username"`
	Role     models.Role `json:"role"`
}
