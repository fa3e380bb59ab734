package session

import (
	"context"
	"dr-portal/internal/app/contracts"
	"dr-portal/internal/app/models"
	"dr-portal/internal/pkg/constvars"
	"dr-portal/internal/pkg/dto/requests"
	"dr-portal/internal/pkg/exceptions"

	"go.uber.org/zap"
)

var (
	_ contracts.SessionService = (*Service)(nil)
	_ contracts.SessionStore   = (*MemoryStore)(nil)
	_ contracts.SessionStore   = (*RedisStore)(nil)
	_ contracts.SessionStore   = (*FileStore)(nil)
)

type Service struct {
	DBAPI contracts.DBAPIClient
	Store contracts.SessionStore
	Log   *zap.Logger
}

func NewService(dbapiClient contracts.DBAPIClient, store contracts.SessionStore, logger *zap.Logger) *Service {
	return &Service{
		DBAPI: dbapiClient,
		Store: store,
		Log:   logger,
	}
}

// Login authenticates against the DB API and stores token, role and
// profile in a single write. API failures are returned untouched since the
// client layer has already logged them.
func (s *Service) Login(ctx context.Context, username, password string, role models.Role) (models.Session, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	s.Log.Info("sessionService.Login called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingRoleKey, string(role)),
	)

	payload, err := s.DBAPI.Login(ctx, requests.Login{
		Username: username,
		Password: password,
		Role:     string(role),
	})
	if err != nil {
		return models.Session{}, err
	}

	session, err := ParseLoginPayload(payload)
	if err != nil {
		s.Log.Error("sessionService.Login error parsing login payload",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return models.Session{}, exceptions.ErrLoginPayloadMissingToken(err)
	}

	err = s.Store.Save(ctx, session)
	if err != nil {
		s.Log.Error("sessionService.Login error saving session",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return models.Session{}, exceptions.ErrSessionWrite(err)
	}

	s.Log.Info("sessionService.Login succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingRoleKey, string(session.Role)),
	)
	return session, nil
}

func (s *Service) Logout(ctx context.Context) error {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	s.Log.Info("sessionService.Logout called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	err := s.Store.Clear(ctx)
	if err != nil {
		s.Log.Error("sessionService.Logout error clearing session",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return exceptions.ErrSessionClear(err)
	}
	return nil
}

// Current reads the stored session. A session holding only one of token
// and role is cleared and reported with ErrInconsistentSession together
// with an empty session.
func (s *Service) Current(ctx context.Context) (models.Session, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)

	session, err := s.Store.Load(ctx)
	if err != nil {
		s.Log.Error("sessionService.Current error loading session",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return models.Session{}, exceptions.ErrSessionRead(err)
	}

	if session.IsPartial() {
		s.Log.Warn("sessionService.Current found inconsistent session, clearing it",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Bool(constvars.LoggingHasTokenKey, session.HasToken()),
			zap.String(constvars.LoggingRoleKey, string(session.Role)),
		)
		err = s.Store.Clear(ctx)
		if err != nil {
			s.Log.Error("sessionService.Current error clearing inconsistent session",
				zap.String(constvars.LoggingRequestIDKey, requestID),
				zap.Error(err),
			)
		}
		return models.Session{}, ErrInconsistentSession
	}

	return session, nil
}
