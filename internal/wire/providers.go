package wire

import (
	"context"
	"fmt"
	"time"

	"github.com/gorilla/mux"
	"go.uber.org/zap"
	"google.golang.org/grpc"
	"gorm.io/gorm"

	"gatherchat/internal/chat/handler"
	"gatherchat/internal/common"
	"gatherchat/internal/config"
	"gatherchat/internal/dbmongo"
	"gatherchat/internal/dbmysql"
	"gatherchat/internal/media"
	"gatherchat/internal/notif"
	"gatherchat/internal/router"
	"gatherchat/internal/user"
)

// Application is everything cmd/api needs to serve.
type Application struct {
	Config *config.Config
	Log    *zap.Logger
	Router *mux.Router
	GRPC   *grpc.Server
}

func ProvideLogger(cfg *config.Config) (*zap.Logger, func(), error) {
	log, err := common.NewLogger(cfg.Logging)
	if err != nil {
		return nil, nil, err
	}
	return log, func() { _ = log.Sync() }, nil
}

func ProvideDatabaseConnection(cfg *config.Config, log *zap.Logger) (*gorm.DB, func(), error) {
	db, err := dbmysql.NewMySQL(cfg, log)
	if err != nil {
		return nil, nil, err
	}

	cleanup := func() {
		sqlDB, err := db.DB()
		if err != nil {
			return
		}
		if err := sqlDB.Close(); err != nil {
			log.Warn("failed to close MySQL", zap.Error(err))
		}
	}
	return db, cleanup, nil
}

func ProvideMongoConnection(cfg *config.Config, log *zap.Logger) (*dbmongo.MongoClient, func(), error) {
	client, err := dbmongo.NewMongoConnection(cfg, log)
	if err != nil {
		return nil, nil, err
	}

	cleanup := func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := client.Close(ctx); err != nil {
			log.Warn("failed to disconnect MongoDB", zap.Error(err))
		}
	}
	return client, cleanup, nil
}

// ProvideRoutes sorts the handlers into router groups.
func ProvideRoutes(
	chat *handler.ChatHandler,
	users *user.Handler,
	notifications *notif.NotificationHandler,
	files *media.HTTPServer,
	db *gorm.DB,
) router.Routes {
	return router.Routes{
		Public:        []router.RouteRegistrar{files},
		Authenticated: []router.RouteRegistrar{users, chat, notifications},
		Admin:         []router.AdminRouteRegistrar{notifications},
		Ready: func(ctx context.Context) error {
			sqlDB, err := db.DB()
			if err != nil {
				return err
			}
			if err := sqlDB.PingContext(ctx); err != nil {
				return fmt.Errorf("mysql ping: %w", err)
			}
			return nil
		},
	}
}
