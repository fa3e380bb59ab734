package middlewares

import (
	"dr-portal/internal/app/config"
	"dr-portal/internal/app/services/navigation"

	"github.com/sirupsen/logrus"
	"go.uber.org/zap"
)

type Middlewares struct {
	Log            *zap.Logger
	AccessLogger   *logrus.Logger
	InternalConfig *config.InternalConfig
	Guard          *navigation.Guard
	Routes         *navigation.Table
}

func NewMiddlewares(
	logger *zap.Logger,
	accessLogger *logrus.Logger,
	internalConfig *config.InternalConfig,
	guard *navigation.Guard,
	routes *navigation.Table,
) *Middlewares {
	return &Middlewares{
		Log:            logger,
		AccessLogger:   accessLogger,
		InternalConfig: internalConfig,
		Guard:          guard,
		Routes:         routes,
	}
}
