// internal/config/database.go
package config

import (
	"strings"
)

const applicationName = "storefront-backend"

// DSN renders the connection in libpq key/value form. Timestamps are read and
// written in UTC so session expiry compares the same on every host.
func (d *DatabaseConfig) DSN() string {
	params := [][2]string{
		{"host", d.Host},
		{"port", d.Port},
		{"user", d.User},
		{"password", d.Password},
		{"dbname", d.Database},
		{"sslmode", d.SSLMode},
		{"application_name", applicationName},
		{"TimeZone", "UTC"},
	}

	parts := make([]string, 0, len(params))
	for _, p := range params {
		if p[1] == "" {
			continue
		}
		parts = append(parts, p[0]+"="+quoteDSNValue(p[1]))
	}
	return strings.Join(parts, " ")
}

// quoteDSNValue quotes values containing spaces, quotes or backslashes.
func quoteDSNValue(v string) string {
	if !strings.ContainsAny(v, ` '\`) {
		return v
	}
	escaped := strings.NewReplacer(`\`, `\\`, `'`, `\'`).Replace(v)
	return "'" + escaped + "'"
}
