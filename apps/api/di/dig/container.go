package dig_container

import (
	"log"
	"os"

	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"
	"go.uber.org/dig"

	echoapi "github.com/Sazzad-Saju/circle-funds-flow/apps/api/echo"
	"github.com/Sazzad-Saju/circle-funds-flow/core"
	"github.com/Sazzad-Saju/circle-funds-flow/core/event"
	"github.com/Sazzad-Saju/circle-funds-flow/core/fund"
	"github.com/Sazzad-Saju/circle-funds-flow/core/gallery"
	"github.com/Sazzad-Saju/circle-funds-flow/core/message"
	"github.com/Sazzad-Saju/circle-funds-flow/core/notification"
	"github.com/Sazzad-Saju/circle-funds-flow/core/user"
	emailsvc "github.com/Sazzad-Saju/circle-funds-flow/services/email"
	logsvc "github.com/Sazzad-Saju/circle-funds-flow/services/logger"
	"github.com/Sazzad-Saju/circle-funds-flow/storage/blob"
	inmemdb "github.com/Sazzad-Saju/circle-funds-flow/storage/database/inmem"
)

func newLogger(conf *core.Config) core.Logger {
	stdLogger := log.New(os.Stdout, "API : ", log.LstdFlags)
	logger := logsvc.NewRollbarLogger(stdLogger, conf)
	logger.Enable(!(conf.Debug || conf.TestMode))
	return logger
}

func newEmailService(conf *core.Config, logger core.Logger) core.EmailService {
	if conf.TestMode {
		return emailsvc.NewConsoleServiceMock(conf, logger)
	}
	if conf.Debug {
		return emailsvc.NewConsoleService(conf, logger)
	}
	return emailsvc.NewSendgridService(conf, logger)
}

// New returns a new dependency injection dig.Container
func New() *dig.Container {
	c := dig.New()

	must(c.Provide(core.NewConfig))
	must(c.Provide(newLogger))
	must(c.Provide(newEmailService))
	must(c.Provide(validator.New))
	must(c.Provide(core.NewTranslator))

	// storage
	must(c.Provide(inmemdb.Open))
	must(c.Provide(inmemdb.NewEventRepository))
	must(c.Provide(inmemdb.NewGalleryRepository))
	must(c.Provide(inmemdb.NewNotificationRepository))
	must(c.Provide(inmemdb.NewFundRepository))
	must(c.Provide(inmemdb.NewUserRepository))
	must(c.Provide(inmemdb.NewSessionRepository))
	must(c.Provide(inmemdb.NewMessageRepository))
	must(c.Provide(blob.NewStore, dig.As(new(gallery.BlobStore))))

	// services
	must(c.Provide(event.NewServiceFromConfig))
	must(c.Provide(gallery.NewServiceFromConfig))
	must(c.Provide(notification.NewService))
	must(c.Provide(fund.NewServiceFromConfig))
	must(c.Provide(user.NewServiceFromConfig))
	must(c.Provide(message.NewServiceFromConfig))

	must(c.Provide(echoapi.NewServer))

	return c
}

// must exits program if err happened
func must(err error) {
	if err != nil {
		log.Fatal(errors.Wrap(err, "failed to provide dependency").Error())
	}
}
