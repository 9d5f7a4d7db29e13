package config

import (
	"errors"
	"fmt"
	"net"
	"os"
	"strconv"
)

type Config struct {
	AppPort string

	LogLevel  string
	LogPretty bool

	// Spreadsheet backend. CredentialsPath selects the Google Sheets store;
	// WorkbookPath selects the local xlsx store. Neither set means the app
	// starts disconnected.
	CredentialsPath string
	SpreadsheetID   string
	WorkbookPath    string

	RedisAddr string
	RedisDB   int

	SessionTTLSecs int
	SessionCookie  string

	// Audit trail backend: "sqlite", "mysql" or empty to disable it.
	AuditDriver     string
	AuditSQLitePath string

	MySQLHost string
	MySQLPort string
	MySQLDB   string
	MySQLUser string
	MySQLPass string
}

func getenv(k, d string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return d
}

func Load() *Config {
	c := &Config{
		AppPort: getenv("APP_PORT", "8080"),

		LogLevel:  getenv("LOG_LEVEL", "info"),
		LogPretty: os.Getenv("LOG_PRETTY") == "true",

		CredentialsPath: os.Getenv("GSPREAD_CREDENTIALS"),
		SpreadsheetID:   os.Getenv("SPREADSHEET_ID"),
		WorkbookPath:    os.Getenv("WORKBOOK_PATH"),

		RedisAddr: os.Getenv("REDIS_ADDR"),

		SessionTTLSecs: 43200,
		SessionCookie:  os.Getenv("SESSION_COOKIE"),

		AuditDriver:     os.Getenv("AUDIT_DRIVER"),
		AuditSQLitePath: getenv("AUDIT_SQLITE_PATH", "audit.db"),

		MySQLHost: getenv("MYSQL_HOST", "mysql"),
		MySQLPort: getenv("MYSQL_PORT", "3306"),
		MySQLDB:   getenv("MYSQL_DB", "controlhoras"),
		MySQLUser: getenv("MYSQL_USER", "controlhoras"),
		MySQLPass: getenv("MYSQL_PASS", "controlhoras"),
	}
	if v := os.Getenv("REDIS_DB"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			c.RedisDB = n
		}
	}
	if v := os.Getenv("SESSION_TTL_SECONDS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			c.SessionTTLSecs = n
		}
	}
	return c
}

func (c *Config) Validate() error {
	if c.AppPort == "" {
		return errors.New("missing APP_PORT")
	}
	if c.CredentialsPath != "" && c.SpreadsheetID == "" {
		return errors.New("GSPREAD_CREDENTIALS set but SPREADSHEET_ID missing")
	}
	if c.SessionTTLSecs <= 0 {
		return errors.New("SESSION_TTL_SECONDS must be positive")
	}
	if c.AuditDriver != "" && c.AuditDriver != "sqlite" && c.AuditDriver != "mysql" {
		return fmt.Errorf("unknown AUDIT_DRIVER %q", c.AuditDriver)
	}
	if c.AuditDriver == "mysql" {
		if c.MySQLHost == "" || c.MySQLPort == "" || c.MySQLDB == "" || c.MySQLUser == "" {
			return errors.New("missing MySQL config (MYSQL_HOST/PORT/DB/USER)")
		}
		if _, err := net.LookupPort("tcp", c.MySQLPort); err != nil {
			return fmt.Errorf("invalid MYSQL_PORT %q: %w", c.MySQLPort, err)
		}
	}
	return nil
}

func (c *Config) mysqlAddr() string { return net.JoinHostPort(c.MySQLHost, c.MySQLPort) }

func (c *Config) MySQLDSN() string {
	// parseTime needed for DATETIME scanning
	return fmt.Sprintf("%s:%s@tcp(%s)/%s?multiStatements=true&parseTime=true&charset=utf8mb4,utf8",
		c.MySQLUser, c.MySQLPass, c.mysqlAddr(), c.MySQLDB)
}
