// Package bootstrap wires the application's dependencies for the entrypoints
// and the end-to-end tests.
package bootstrap

import (
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/Veerenstael/QuickScan/internal/notify"
	"github.com/Veerenstael/QuickScan/internal/report"
	"github.com/Veerenstael/QuickScan/internal/shared/config"
	"github.com/Veerenstael/QuickScan/internal/shared/server"
	"github.com/Veerenstael/QuickScan/internal/shared/storage/object"
	localstore "github.com/Veerenstael/QuickScan/internal/shared/storage/object/local"
	"github.com/Veerenstael/QuickScan/internal/submissions"
)

// App holds shared dependencies.
type App struct {
	Config      config.Config
	Router      *gin.Engine
	Store       object.ObjectStore
	Renderer    report.Renderer
	Mailer      *notify.Mailer
	Submissions *submissions.Service
}

// Build prepares shared dependencies and the router.
func Build(cfg config.Config) (*App, error) {
	if strings.TrimSpace(cfg.Env) == "" {
		cfg.Env = "dev"
	}
	if strings.TrimSpace(cfg.LocalStoreDir) == "" {
		cfg.LocalStoreDir = "./data"
	}

	store := localstore.New(cfg.LocalStoreDir)
	renderer := report.NewPDF()
	mailer := notify.New(cfg.SMTPServer, cfg.SMTPPort, cfg.EmailUser, cfg.EmailPass, cfg.EmailCC)

	svc := &submissions.Service{
		Renderer: renderer,
		Mailer:   mailer,
		Store:    store,
	}

	app := &App{
		Config:      cfg,
		Store:       store,
		Renderer:    renderer,
		Mailer:      mailer,
		Submissions: svc,
	}
	app.Router = server.NewRouter(cfg, submissions.NewHandler(svc))
	return app, nil
}
