// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// StructuredJSONConfig is the on-disk layout of the JSON configuration file.
type StructuredJSONConfig struct {
	App struct {
		AuthDisabled   bool `json:"auth_disabled"`
		FisioFromToken bool `json:"fisio_from_token"`
	} `json:"app,omitempty"`

	Auth struct {
		ProjectID    string   `json:"project_id"`
		ClientEmail  string   `json:"client_email"`
		PrivateKey   string   `json:"private_key"`
		CertsURL     string   `json:"certs_url"`
		FetchTimeout Duration `json:"fetch_timeout"`
	} `json:"auth,omitempty"`

	Storage struct {
		DB struct {
			DSN             string   `json:"dsn"`
			Host            string   `json:"host"`
			Port            int      `json:"port"`
			User            string   `json:"user"`
			Password        string   `json:"password"`
			Name            string   `json:"name"`
			SSLMode         string   `json:"sslmode"`
			MaxOpenConns    int      `json:"max_open_conns"`
			MaxIdleConns    int      `json:"max_idle_conns"`
			ConnMaxLifetime Duration `json:"conn_max_lifetime"`
			PingTimeout     Duration `json:"ping_timeout"`
		} `json:"db,omitempty"`
	} `json:"storage,omitempty"`

	Server struct {
		Host            string   `json:"host"`
		Port            int      `json:"port"`
		GRPCAddress     string   `json:"grpc_address"`
		ShutdownTimeout Duration `json:"shutdown_timeout"`
	} `json:"server,omitempty"`

	Log struct {
		Level string `json:"level"`
	} `json:"log,omitempty"`
}

func parseJSON(jsonFilePath string) (*StructuredConfig, error) {
	jsonFile, err := os.Open(jsonFilePath)
	if err != nil {
		return nil, fmt.Errorf("error reading a json file: %w", err)
	}
	defer jsonFile.Close()

	var jsonCfg StructuredJSONConfig
	if err := json.NewDecoder(jsonFile).Decode(&jsonCfg); err != nil {
		return nil, fmt.Errorf("error decoding json configs: %w", err)
	}

	db := jsonCfg.Storage.DB
	cfg := &StructuredConfig{
		App: App{
			AuthDisabled:   jsonCfg.App.AuthDisabled,
			FisioFromToken: jsonCfg.App.FisioFromToken,
		},
		Auth: Auth{
			ProjectID:    jsonCfg.Auth.ProjectID,
			ClientEmail:  jsonCfg.Auth.ClientEmail,
			PrivateKey:   jsonCfg.Auth.PrivateKey,
			CertsURL:     jsonCfg.Auth.CertsURL,
			FetchTimeout: time.Duration(jsonCfg.Auth.FetchTimeout),
		},
		Storage: Storage{
			DB: DB{
				DSN:             db.DSN,
				Host:            db.Host,
				Port:            db.Port,
				User:            db.User,
				Password:        db.Password,
				Name:            db.Name,
				SSLMode:         db.SSLMode,
				MaxOpenConns:    db.MaxOpenConns,
				MaxIdleConns:    db.MaxIdleConns,
				ConnMaxLifetime: time.Duration(db.ConnMaxLifetime),
				PingTimeout:     time.Duration(db.PingTimeout),
			},
		},
		Server: Server{
			Host:            jsonCfg.Server.Host,
			Port:            jsonCfg.Server.Port,
			GRPCAddress:     jsonCfg.Server.GRPCAddress,
			ShutdownTimeout: time.Duration(jsonCfg.Server.ShutdownTimeout),
		},
		Log: Log{
			Level: jsonCfg.Log.Level,
		},
	}

	return cfg, nil
}

// Duration is a wrapper around time.Duration that supports JSON unmarshaling
// from strings like "1h", "30s" as well as from integer nanoseconds.
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v any
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case float64:
		*d = Duration(time.Duration(value))
		return nil
	case string:
		tmp, err := time.ParseDuration(value)
		if err != nil {
			return err
		}
		*d = Duration(tmp)
		return nil
	default:
		return fmt.Errorf("invalid duration %s", string(b))
	}
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}
