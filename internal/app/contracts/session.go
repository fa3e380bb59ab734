package contracts

import (
	"context"
	"dr-portal/internal/app/models"
)

// SessionStore persists token, role and profile as one unit. Stores that
// hold many visitors resolve the visitor from the context.
type SessionStore interface {
	Load(ctx context.Context) (models.Session, error)
	Save(ctx context.Context, session models.Session) error
	Clear(ctx context.Context) error
}

// SessionReader is what the navigation guard needs: the current session,
// read fresh on every call.
type SessionReader interface {
	Current(ctx context.Context) (models.Session, error)
}

type SessionService interface {
	SessionReader
	Login(ctx context.Context, username, password string, role models.Role) (models.Session, error)
	Logout(ctx context.Context) error
}
