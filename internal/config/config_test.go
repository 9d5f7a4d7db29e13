package config

import (
	"strings"
	"testing"
)

func TestLoadDefaults(t *testing.T) {
	for _, k := range []string{
		"APP_PORT", "GSPREAD_CREDENTIALS", "SPREADSHEET_ID", "WORKBOOK_PATH",
		"REDIS_ADDR", "REDIS_DB", "SESSION_TTL_SECONDS", "SESSION_COOKIE",
		"AUDIT_DRIVER", "AUDIT_SQLITE_PATH",
	} {
		t.Setenv(k, "")
	}

	c := Load()
	if c.AppPort != "8080" {
		t.Errorf("AppPort = %q, want 8080", c.AppPort)
	}
	if c.SessionTTLSecs != 43200 {
		t.Errorf("SessionTTLSecs = %d, want 43200", c.SessionTTLSecs)
	}
	if c.AuditSQLitePath != "audit.db" {
		t.Errorf("AuditSQLitePath = %q, want audit.db", c.AuditSQLitePath)
	}
	if err := c.Validate(); err != nil {
		t.Errorf("defaults should validate, got %v", err)
	}
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("APP_PORT", "9000")
	t.Setenv("REDIS_DB", "3")
	t.Setenv("SESSION_TTL_SECONDS", "600")
	t.Setenv("AUDIT_DRIVER", "sqlite")

	c := Load()
	if c.AppPort != "9000" || c.RedisDB != 3 || c.SessionTTLSecs != 600 || c.AuditDriver != "sqlite" {
		t.Errorf("overrides not applied: %+v", c)
	}
}

func TestValidate(t *testing.T) {
	cases := []struct {
		name    string
		mutate  func(c *Config)
		wantErr string
	}{
		{
			name:    "credentials without spreadsheet id",
			mutate:  func(c *Config) { c.CredentialsPath = "creds.json"; c.SpreadsheetID = "" },
			wantErr: "SPREADSHEET_ID",
		},
		{
			name:    "unknown audit driver",
			mutate:  func(c *Config) { c.AuditDriver = "postgres" },
			wantErr: "AUDIT_DRIVER",
		},
		{
			name:    "mysql audit needs host",
			mutate:  func(c *Config) { c.AuditDriver = "mysql"; c.MySQLHost = "" },
			wantErr: "MySQL",
		},
		{
			name:    "bad mysql port",
			mutate:  func(c *Config) { c.AuditDriver = "mysql"; c.MySQLPort = "notaport" },
			wantErr: "MYSQL_PORT",
		},
		{
			name:    "zero ttl",
			mutate:  func(c *Config) { c.SessionTTLSecs = 0 },
			wantErr: "SESSION_TTL_SECONDS",
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			c := &Config{
				AppPort:        "8080",
				SessionTTLSecs: 43200,
				MySQLHost:      "mysql", MySQLPort: "3306", MySQLDB: "db", MySQLUser: "u",
			}
			tc.mutate(c)
			err := c.Validate()
			if err == nil || !strings.Contains(err.Error(), tc.wantErr) {
				t.Errorf("Validate() = %v, want error mentioning %q", err, tc.wantErr)
			}
		})
	}
}

func TestMySQLDSN(t *testing.T) {
	c := &Config{MySQLHost: "db", MySQLPort: "3306", MySQLDB: "controlhoras", MySQLUser: "app", MySQLPass: "s3cret"}
	dsn := c.MySQLDSN()
	if !strings.HasPrefix(dsn, "app:s3cret@tcp(db:3306)/controlhoras?") {
		t.Errorf("dsn = %q", dsn)
	}
	if !strings.Contains(dsn, "parseTime=true") {
		t.Errorf("dsn missing parseTime: %q", dsn)
	}
}
