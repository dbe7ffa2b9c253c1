//go:build wireinject
// +build wireinject

package wire

import (
	"github.com/google/wire"

	"gatherchat/internal/chat/handler"
	"gatherchat/internal/chat/repository"
	"gatherchat/internal/chat/service"
	"gatherchat/internal/config"
	"gatherchat/internal/dbmongo"
	"gatherchat/internal/dbmysql"
	"gatherchat/internal/event"
	"gatherchat/internal/media"
	"gatherchat/internal/notif"
	"gatherchat/internal/router"
	"gatherchat/internal/user"
)

var storageSet = wire.NewSet(
	ProvideDatabaseConnection,
	ProvideMongoConnection,
	dbmongo.NewAvatarStorage,
	wire.Bind(new(user.AvatarStore), new(*dbmongo.AvatarStorage)),
	wire.Bind(new(media.FileSource), new(*dbmongo.AvatarStorage)),
)

var userSet = wire.NewSet(
	user.NewProfileRepository,
	user.NewProfileService,
	user.NewHandler,
	wire.Bind(new(service.ProfileLookup), new(user.ProfileService)),
)

var eventSet = wire.NewSet(
	event.NewEventRepository,
	wire.Bind(new(service.EventLookup), new(event.EventRepository)),
	wire.Bind(new(notif.OrganizerLookup), new(event.EventRepository)),
)

var notificationSet = wire.NewSet(
	dbmysql.NewNotificationRepository,
	notif.NewNotificationService,
	notif.NewNotificationHandler,
	wire.Bind(new(notif.Service), new(*notif.NotificationService)),
	wire.Bind(new(service.Notifier), new(*notif.NotificationService)),
)

var chatSet = wire.NewSet(
	repository.NewMessageRepository,
	service.NewChatService,
	handler.NewChatHandler,
)

func InitializeApplication() (*Application, func(), error) {
	wire.Build(
		config.LoadConfig,
		ProvideLogger,
		storageSet,
		userSet,
		eventSet,
		notificationSet,
		chatSet,
		media.NewHTTPServer,
		ProvideRoutes,
		router.NewRouter,
		ProvideGRPCServer,
		wire.Struct(new(Application), "*"),
	)
	return nil, nil, nil
}
