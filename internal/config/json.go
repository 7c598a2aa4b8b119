// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// StructuredJSONConfig is the on-disk JSON layout of the configuration file.
type StructuredJSONConfig struct {
	App struct {
		Version string `json:"version"`
	} `json:"app,omitempty"`

	Server struct {
		HTTPAddress     string   `json:"http_address"`
		RequestTimeout  Duration `json:"request_timeout"`
		ShutdownTimeout Duration `json:"shutdown_timeout"`
	} `json:"server,omitempty"`

	Directory struct {
		BaseURL        string   `json:"base_url"`
		PageSize       int      `json:"page_size"`
		RequestTimeout Duration `json:"request_timeout"`
	} `json:"directory,omitempty"`

	Messaging struct {
		BaseURL        string   `json:"base_url"`
		RequestTimeout Duration `json:"request_timeout"`
	} `json:"messaging,omitempty"`

	Sync struct {
		UpdateInterval  Duration `json:"update_interval"`
		ApprovalTimeout Duration `json:"approval_timeout"`
		DisableShuffle  bool     `json:"disable_shuffle"`
	} `json:"sync,omitempty"`

	Storage struct {
		DB struct {
			DSN string `json:"dsn"`
		} `json:"db,omitempty"`
	} `json:"storage,omitempty"`
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

	cfg := &StructuredConfig{
		App: App{
			Version: jsonCfg.App.Version,
		},
		Server: Server{
			HTTPAddress:     jsonCfg.Server.HTTPAddress,
			RequestTimeout:  time.Duration(jsonCfg.Server.RequestTimeout),
			ShutdownTimeout: time.Duration(jsonCfg.Server.ShutdownTimeout),
		},
		Directory: Directory{
			BaseURL:        jsonCfg.Directory.BaseURL,
			PageSize:       jsonCfg.Directory.PageSize,
			RequestTimeout: time.Duration(jsonCfg.Directory.RequestTimeout),
		},
		Messaging: Messaging{
			BaseURL:        jsonCfg.Messaging.BaseURL,
			RequestTimeout: time.Duration(jsonCfg.Messaging.RequestTimeout),
		},
		Sync: Sync{
			UpdateInterval:  time.Duration(jsonCfg.Sync.UpdateInterval),
			ApprovalTimeout: time.Duration(jsonCfg.Sync.ApprovalTimeout),
			DisableShuffle:  jsonCfg.Sync.DisableShuffle,
		},
		Storage: Storage{
			DB: DB{DSN: jsonCfg.Storage.DB.DSN},
		},
	}

	return cfg, nil
}

// Duration is a wrapper around time.Duration that unmarshals from JSON strings
// like "1h" or "30s" as well as from integer nanoseconds.
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
