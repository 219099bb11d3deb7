// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"net"
	"net/url"
	"strconv"
	"strings"
	"time"
)

// StructuredConfig is the top-level configuration container of the service.
// It aggregates all sub-configurations and is populated by merging values
// from environment variables, command-line flags, and an optional JSON file.
//
// Environment variable names of the database and identity groups are kept
// identical to the ones the deployed service already uses (HOST_AZURE,
// USER_DB, FIREBASE_PROJECT_ID, ...), so those groups carry no envPrefix.
type StructuredConfig struct {
	// App holds feature switches of the request core.
	App App `envPrefix:"APP_"`

	// Auth holds the identity-provider service credential.
	Auth Auth

	// Storage holds configuration for the relational database.
	Storage Storage

	// Server holds listen addresses and shutdown settings.
	Server Server

	// Log holds logging settings.
	Log Log

	// JSONFilePath is the optional path to a JSON configuration file.
	// Populated via the CONFIG environment variable or the -c / --config flag.
	JSONFilePath string `env:"CONFIG"`
}

// App holds feature switches of the request core.
type App struct {
	// AuthDisabled turns the bearer-token middleware off for every route.
	// Authentication is required unless this is explicitly set.
	// Env: APP_AUTH_DISABLED
	AuthDisabled bool `env:"AUTH_DISABLED"`

	// FisioFromToken makes handlers scope every query by the verified token
	// subject instead of the fisio_id supplied by the caller.
	// Env: APP_FISIO_FROM_TOKEN
	FisioFromToken bool `env:"FISIO_FROM_TOKEN"`
}

// Auth holds the Firebase service-account credential and verifier settings.
type Auth struct {
	// ProjectID is the Firebase project; it is the expected "aud" claim.
	ProjectID string `env:"FIREBASE_PROJECT_ID"`

	// ClientEmail is the service-account e-mail.
	ClientEmail string `env:"FIREBASE_CLIENT_EMAIL"`

	// PrivateKey is the service-account RSA key in PEM form. Newlines may be
	// escaped as the two characters `\n`; see [Auth.PrivateKeyPEM].
	PrivateKey string `env:"FIREBASE_PRIVATE_KEY"`

	// CertsURL overrides the endpoint publishing the token signing certificates.
	CertsURL string `env:"FIREBASE_CERTS_URL"`

	// FetchTimeout bounds a single certificate download.
	FetchTimeout time.Duration `env:"FIREBASE_FETCH_TIMEOUT" envDefault:"10s"`
}

// PrivateKeyPEM returns the private key with escaped newlines restored.
func (a Auth) PrivateKeyPEM() string {
	return strings.ReplaceAll(a.PrivateKey, `\n`, "\n")
}

// Storage groups the configuration of the storage backends.
type Storage struct {
	DB DB
}

// DB holds connection settings for PostgreSQL.
type DB struct {
	// DSN is a complete connection string. When set it takes precedence over
	// the individual connection fields.
	// Env: DATABASE_URI
	DSN string `env:"DATABASE_URI"`

	Host     string `env:"HOST_AZURE"`
	Port     int    `env:"PORT_DB" envDefault:"5432"`
	User     string `env:"USER_DB"`
	Password string `env:"PASSWORD_DB"`
	Name     string `env:"NAME_DB"`

	// SSLMode is passed to the driver as sslmode. "require" encrypts the
	// connection without validating the server certificate.
	SSLMode string `env:"SSLMODE_DB" envDefault:"require"`

	MaxOpenConns    int           `env:"DB_MAX_OPEN_CONNS" envDefault:"10"`
	MaxIdleConns    int           `env:"DB_MAX_IDLE_CONNS" envDefault:"5"`
	ConnMaxLifetime time.Duration `env:"DB_CONN_MAX_LIFETIME" envDefault:"30m"`

	// PingTimeout bounds the startup and health-check pings.
	PingTimeout time.Duration `env:"DB_PING_TIMEOUT" envDefault:"5s"`
}

// ConnString returns the DSN handed to the pgx driver.
func (db DB) ConnString() string {
	if db.DSN != "" {
		return db.DSN
	}

	host := db.Host
	if host == "" {
		host = "localhost"
	}
	port := db.Port
	if port == 0 {
		port = 5432
	}

	u := url.URL{
		Scheme: "postgres",
		Host:   net.JoinHostPort(host, strconv.Itoa(port)),
		Path:   "/" + db.Name,
	}
	if db.User != "" {
		u.User = url.UserPassword(db.User, db.Password)
	}
	if db.SSLMode != "" {
		u.RawQuery = url.Values{"sslmode": []string{db.SSLMode}}.Encode()
	}

	return u.String()
}

// Server holds network settings of the inbound transports.
type Server struct {
	// Host is the interface the HTTP server binds to; empty means all.
	// Env: HOST
	Host string `env:"HOST"`

	// Port is the HTTP listen port.
	// Env: PORT
	Port int `env:"PORT" envDefault:"3000"`

	// GRPCAddress enables the gRPC health server when set ("host:port").
	// Env: GRPC_ADDRESS
	GRPCAddress string `env:"GRPC_ADDRESS"`

	// ShutdownTimeout bounds graceful shutdown after a stop signal.
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT" envDefault:"10s"`
}

// HTTPAddress returns the HTTP listen address in "host:port" form.
func (s Server) HTTPAddress() string {
	if s.Port == 0 {
		return ""
	}
	return net.JoinHostPort(s.Host, strconv.Itoa(s.Port))
}

// Log holds logging settings.
type Log struct {
	// Level is a zerolog level name (debug, info, warn, error).
	Level string `env:"LOG_LEVEL" envDefault:"debug"`
}

// GetStructuredConfig loads, merges, and validates the configuration from all
// available sources in the following priority order (last source wins for
// non-zero fields):
//  1. Environment variables
//  2. Command-line flags (already parsed into flags; may be nil)
//  3. JSON file (path resolved from sources 1 and 2)
func GetStructuredConfig(flags *StructuredConfig) (*StructuredConfig, error) {
	return newConfigBuilder().
		withEnv().
		withFlags(flags).
		withJSON().
		build()
}

// GetStorageConfig loads the same sources as [GetStructuredConfig] but only
// validates the storage section. It serves commands such as "migrate" that
// never accept requests and so need no server or auth settings.
func GetStorageConfig(flags *StructuredConfig) (*StructuredConfig, error) {
	cfg, err := newConfigBuilder().
		withEnv().
		withFlags(flags).
		withJSON().
		merge()
	if err != nil {
		return nil, err
	}

	if err := cfg.validateStorage(); err != nil {
		return nil, err
	}

	return cfg, nil
}
