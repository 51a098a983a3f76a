package main

import (
	"fmt"
	"io"
	"strconv"

	"github.com/diewo77/oficina/i18n"
	"github.com/diewo77/oficina/internal/config"
	"github.com/diewo77/oficina/internal/db"
	"github.com/diewo77/oficina/internal/logging"
	"github.com/diewo77/oficina/internal/models"
	"github.com/diewo77/oficina/internal/repository"
	"github.com/diewo77/oficina/internal/services"
	"github.com/urfave/cli/v2"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// app is the composition root. It owns the store handle and hands it to
// the repositories; nothing else opens or closes it.
type app struct {
	cfg  *config.Config
	out  io.Writer
	log  *zap.Logger
	lang string

	db      *gorm.DB
	ownsDB  bool
	clients *repository.ClientRepository
	orders  *repository.ServiceOrderRepository
	svc     *services.OrderService
}

func newApp(cfg *config.Config, out io.Writer) *app {
	return &app{cfg: cfg, out: out, lang: i18n.DetectLanguage(cfg.App.Lang)}
}

func (a *app) cli() *cli.App {
	return &cli.App{
		Name:  "oficina",
		Usage: "clients and service orders for a repair shop",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "db", Usage: "database file", Value: a.cfg.Database.Path},
			&cli.BoolFlag{Name: "in-memory", Usage: "use a throwaway in-memory database", Value: a.cfg.Database.InMemory},
			&cli.StringFlag{Name: "log-level", Usage: "debug, info, warn or error", Value: a.cfg.App.LogLevel},
			&cli.StringFlag{Name: "lang", Usage: "pt or en", Value: a.cfg.App.Lang},
		},
		Before: a.setup,
		After:  a.teardown,
		Commands: []*cli.Command{
			{
				Name:   "migrate",
				Usage:  "create the schema if needed",
				Action: a.migrate,
			},
			{
				Name:   "stats",
				Usage:  "count service orders per status",
				Action: a.stats,
			},
			a.clientCommands(),
			a.orderCommands(),
		},
	}
}

// setup applies flag overrides, then opens and migrates the store.
func (a *app) setup(c *cli.Context) error {
	a.cfg.Database.Path = c.String("db")
	a.cfg.Database.InMemory = c.Bool("in-memory")
	a.cfg.App.LogLevel = c.String("log-level")
	a.lang = i18n.DetectLanguage(c.String("lang"))
	c.Context = i18n.WithLang(c.Context, a.lang)

	if a.log == nil {
		log, err := logging.NewLogger(a.cfg.App.LogLevel)
		if err != nil {
			return fmt.Errorf("init logger: %w", err)
		}
		a.log = log
	}
	if a.db != nil {
		return nil
	}
	gdb, err := db.OpenAndMigrate(a.cfg.Database, a.log)
	if err != nil {
		return fmt.Errorf("init store: %w", err)
	}
	a.ownsDB = true
	a.wire(gdb)
	return nil
}

func (a *app) wire(gdb *gorm.DB) {
	a.db = gdb
	a.clients = repository.NewClientRepository(gdb)
	a.orders = repository.NewServiceOrderRepository(gdb)
	a.svc = services.NewOrderService(a.orders, a.cfg.App.AreaCode)
}

func (a *app) teardown(*cli.Context) error {
	if a.log != nil {
		defer func() { _ = a.log.Sync() }()
	}
	if a.db == nil || !a.ownsDB {
		return nil
	}
	if err := db.Close(a.db); err != nil {
		return fmt.Errorf("close store: %w", err)
	}
	a.log.Debug("database closed")
	a.db = nil
	return nil
}

func (a *app) migrate(*cli.Context) error {
	a.log.Info("schema ready", zap.String("path", a.cfg.Database.Path))
	fmt.Fprintln(a.out, "ok")
	return nil
}

func (a *app) stats(c *cli.Context) error {
	st, err := a.svc.Stats(c.Context)
	if err != nil {
		return err
	}
	lang := i18n.LangFromContext(c.Context)
	w := newTable(a.out)
	fmt.Fprintf(w, "%s\t%d\n", i18n.T(lang, "stats.total"), st.Total)
	for _, s := range models.Statuses() {
		fmt.Fprintf(w, "%s\t%d\n", s.Label(lang), st.ByStatus[s])
	}
	return w.Flush()
}

// argID parses the first positional argument as a record id.
func argID(c *cli.Context) (uint, error) {
	raw := c.Args().First()
	if raw == "" {
		return 0, fmt.Errorf("missing id argument")
	}
	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil || id == 0 {
		return 0, fmt.Errorf("invalid id %q", raw)
	}
	return uint(id), nil
}
