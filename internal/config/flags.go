// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"github.com/spf13/pflag"
)

// RegisterFlags declares the configuration flags on fs and returns the config
// they are bound to. The returned value is only meaningful after fs has been
// parsed (cobra does that before running a command).
//
// Flags:
//
//	--host               HTTP listen host
//	-p, --port           HTTP listen port
//	--grpc-address       gRPC health server address host:port
//	-d, --database-uri   database DSN
//	--db-host            database host
//	--auth-disabled      serve every route without bearer-token checks
//	--fisio-from-token   scope queries by the verified token subject
//	--firebase-project   Firebase project id
//	--log-level          log level
//	-c, --config         JSON config file path
//
// Every flag defaults to the zero value so that an unset flag never masks a
// value coming from the environment.
func RegisterFlags(fs *pflag.FlagSet) *StructuredConfig {
	cfg := new(StructuredConfig)

	fs.StringVar(&cfg.Server.Host, "host", "", "HTTP listen host")
	fs.IntVarP(&cfg.Server.Port, "port", "p", 0, "HTTP listen port")
	fs.StringVar(&cfg.Server.GRPCAddress, "grpc-address", "", "gRPC health server address host:port")
	fs.StringVarP(&cfg.Storage.DB.DSN, "database-uri", "d", "", "Database DSN")
	fs.StringVar(&cfg.Storage.DB.Host, "db-host", "", "Database host")
	fs.BoolVar(&cfg.App.AuthDisabled, "auth-disabled", false, "Serve every route without bearer-token checks")
	fs.BoolVar(&cfg.App.FisioFromToken, "fisio-from-token", false, "Scope queries by the verified token subject")
	fs.StringVar(&cfg.Auth.ProjectID, "firebase-project", "", "Firebase project id")
	fs.StringVar(&cfg.Log.Level, "log-level", "", "Log level (debug, info, warn, error)")
	fs.StringVarP(&cfg.JSONFilePath, "config", "c", "", "JSON config file path")

	return cfg
}
