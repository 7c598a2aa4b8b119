// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"errors"
	"flag"
	"fmt"
	"net"
	"strconv"
	"strings"
	"time"
)

// NetAddress holds structured network address data for host and port.
// It implements the flag.Value interface.
type NetAddress struct {
	Host string
	Port int
}

// parseFlags parses the command-line configuration flags from args.
//
// Flags:
//
//	-a server address in format [host]:[port]
//	-c/-config json file path with configs
//	-d run history database DSN
//	-request-timeout inbound request timeout (e.g. "30s")
//	-directory-url People API base URL
//	-page-size People API connections page size
//	-messaging-url messaging gateway base URL
//	-update-interval minimum spacing between photo updates (e.g. "1.5s")
//	-approval-timeout approval wait before default deny (e.g. "60s")
//	-no-shuffle keep directory order during sync
func parseFlags(args []string) (*StructuredConfig, error) {
	fs := flag.NewFlagSet("photosync", flag.ContinueOnError)

	var serverAddress NetAddress
	var jsonConfigPath string
	var databaseDSN string
	var requestTimeout time.Duration
	var directoryURL string
	var pageSize int
	var messagingURL string
	var updateInterval time.Duration
	var approvalTimeout time.Duration
	var noShuffle bool

	fs.Var(&serverAddress, "a", "Net address host:port")
	fs.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	fs.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")
	fs.StringVar(&databaseDSN, "d", "", "Run history database DSN")
	fs.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 30s, 1m)")
	fs.StringVar(&directoryURL, "directory-url", "", "People API base URL")
	fs.IntVar(&pageSize, "page-size", 0, "People API connections page size")
	fs.StringVar(&messagingURL, "messaging-url", "", "Messaging gateway base URL")
	fs.DurationVar(&updateInterval, "update-interval", 0, "Minimum spacing between photo updates")
	fs.DurationVar(&approvalTimeout, "approval-timeout", 0, "Approval wait before default deny")
	fs.BoolVar(&noShuffle, "no-shuffle", false, "Keep directory order during sync")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("error parsing flags: %w", err)
	}

	return &StructuredConfig{
		Server: Server{
			HTTPAddress:    serverAddress.String(),
			RequestTimeout: requestTimeout,
		},
		Directory: Directory{
			BaseURL:  directoryURL,
			PageSize: pageSize,
		},
		Messaging: Messaging{
			BaseURL: messagingURL,
		},
		Sync: Sync{
			UpdateInterval:  updateInterval,
			ApprovalTimeout: approvalTimeout,
			DisableShuffle:  noShuffle,
		},
		Storage: Storage{
			DB: DB{DSN: databaseDSN},
		},
		JSONFilePath: jsonConfigPath,
	}, nil
}

// String returns a canonical host:port string, or "" when nothing is set.
func (a *NetAddress) String() string {
	if a.Host == "" && a.Port == 0 {
		return ""
	}

	return a.Host + ":" + strconv.Itoa(a.Port)
}

// Set parses the input string of form host:port and populates the NetAddress.
// The host must be "localhost", empty (all interfaces) or a valid IP.
func (a *NetAddress) Set(s string) error {
	host, rawPort, err := net.SplitHostPort(s)
	if err != nil {
		return errors.New("need address in a form `host:port`")
	}

	port, err := strconv.Atoi(rawPort)
	if err != nil {
		return err
	}
	if port < 1 || port > 65535 {
		return errors.New("port number must be in range 1..65535")
	}

	if host != "" && host != "localhost" && net.ParseIP(strings.Trim(host, "[]")) == nil {
		return errors.New("incorrect IP-address provided")
	}

	a.Host = host
	a.Port = port
	return nil
}
