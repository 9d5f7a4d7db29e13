package main

import (
	"context"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"gorm.io/gorm"

	httpadp "control-horas/internal/adapter/http"
	"control-horas/internal/adapter/repository/gormdb"
	"control-horas/internal/adapter/repository/sheetrepo"
	"control-horas/internal/config"
	"control-horas/internal/domain/audit"
	"control-horas/internal/infrastructure/db"
	"control-horas/internal/infrastructure/session"
	"control-horas/internal/infrastructure/sheet"
	"control-horas/internal/logging"
	ucAccount "control-horas/internal/usecase/account"
	ucApproval "control-horas/internal/usecase/approval"
	ucAuth "control-horas/internal/usecase/auth"
	ucCalendar "control-horas/internal/usecase/calendar"
	ucRequest "control-horas/internal/usecase/request"
)

func main() {
	_ = godotenv.Load()

	cfg := config.Load()
	logging.Setup(cfg.LogLevel, cfg.LogPretty)
	log := logging.Component("main")

	if err := cfg.Validate(); err != nil {
		log.Fatal().Err(err).Msg("invalid configuration")
	}

	ctx := context.Background()
	store := openSheetStore(ctx, cfg)

	sessions := openSessionStore(cfg)
	trail := openAuditTrail(cfg)

	accountRepo := sheetrepo.NewAccountRepository(store)
	requestRepo := sheetrepo.NewRequestRepository(store)

	h := httpadp.NewHandler(
		ucAuth.NewUsecase(accountRepo, trail),
		ucRequest.NewUsecase(accountRepo, requestRepo),
		ucApproval.NewUsecase(accountRepo, requestRepo, trail),
		ucCalendar.NewUsecase(requestRepo),
		ucAccount.NewUsecase(accountRepo, trail),
		trail,
		sessions,
		cfg.SessionCookie,
	)

	e := echo.New()
	e.HideBanner = true
	e.Use(middleware.Logger(), middleware.Recover())
	e.Validator = httpadp.NewValidator()
	e.Renderer = httpadp.NewRenderer()
	h.Register(e)

	addr := ":" + cfg.AppPort
	log.Info().Str("addr", addr).Msg("listening")
	if err := e.Start(addr); err != nil {
		log.Fatal().Err(err).Msg("server stopped")
	}
}

// openSheetStore picks the spreadsheet backend: Google Sheets when
// credentials are configured, a local xlsx workbook when a path is given,
// otherwise the disconnected sentinel so the app still serves pages.
func openSheetStore(ctx context.Context, cfg *config.Config) sheet.Store {
	log := logging.Component("main")

	if cfg.CredentialsPath != "" {
		creds, err := os.ReadFile(cfg.CredentialsPath)
		if err != nil {
			log.Error().Err(err).Str("path", cfg.CredentialsPath).Msg("cannot read credentials, starting disconnected")
			return sheet.Disconnected{}
		}
		store, err := sheet.NewGoogleStore(ctx, creds, cfg.SpreadsheetID)
		if err != nil {
			log.Error().Err(err).Msg("cannot open google sheets, starting disconnected")
			return sheet.Disconnected{}
		}
		log.Info().Str("spreadsheet", cfg.SpreadsheetID).Msg("using google sheets")
		return store
	}

	if cfg.WorkbookPath != "" {
		if _, err := os.Stat(cfg.WorkbookPath); os.IsNotExist(err) {
			if err := sheet.SeedWorkbook(cfg.WorkbookPath, sheetrepo.SeedHeaders()); err != nil {
				log.Error().Err(err).Str("path", cfg.WorkbookPath).Msg("cannot seed workbook, starting disconnected")
				return sheet.Disconnected{}
			}
			log.Info().Str("path", cfg.WorkbookPath).Msg("seeded new workbook")
		}
		store, err := sheet.NewWorkbookStore(cfg.WorkbookPath)
		if err != nil {
			log.Error().Err(err).Str("path", cfg.WorkbookPath).Msg("cannot open workbook, starting disconnected")
			return sheet.Disconnected{}
		}
		log.Info().Str("path", cfg.WorkbookPath).Msg("using local workbook")
		return store
	}

	log.Warn().Msg("no spreadsheet backend configured, starting disconnected")
	return sheet.Disconnected{}
}

func openSessionStore(cfg *config.Config) session.Store {
	log := logging.Component("main")
	ttl := time.Duration(cfg.SessionTTLSecs) * time.Second

	if cfg.RedisAddr == "" {
		log.Warn().Msg("REDIS_ADDR not set, sessions are in-memory")
		return session.NewMemoryStore(ttl)
	}
	rdb, err := session.OpenRedis(cfg.RedisAddr, cfg.RedisDB)
	if err != nil {
		log.Error().Err(err).Str("addr", cfg.RedisAddr).Msg("redis unreachable, sessions are in-memory")
		return session.NewMemoryStore(ttl)
	}
	log.Info().Str("addr", cfg.RedisAddr).Msg("sessions in redis")
	return session.NewRedisStore(rdb, ttl)
}

// openAuditTrail returns nil when no driver is configured; callers treat a
// nil repository as a disabled trail.
func openAuditTrail(cfg *config.Config) audit.Repository {
	log := logging.Component("main")

	var (
		conn *gorm.DB
		err  error
	)
	switch cfg.AuditDriver {
	case "sqlite":
		conn, err = db.OpenSQLite(cfg.AuditSQLitePath)
	case "mysql":
		conn, err = db.OpenMySQL(cfg.MySQLDSN())
	default:
		return nil
	}
	if err != nil {
		log.Error().Err(err).Str("driver", cfg.AuditDriver).Msg("audit trail disabled")
		return nil
	}

	repo := gormdb.NewAuditRepository(conn)
	if err := repo.Migrate(); err != nil {
		log.Error().Err(err).Msg("audit migration failed, trail disabled")
		return nil
	}
	log.Info().Str("driver", cfg.AuditDriver).Msg("audit trail enabled")
	return repo
}
