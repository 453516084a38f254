package config

import (
	"errors"
	"flag"
	"fmt"
	"net"
	"strconv"
	"strings"
)

// NetAddress holds structured network address data for host and port.
// It implements the flag.Value interface.
type NetAddress struct {
	Host string
	Port int
}

// parseFlags parses all configuration flags from args.
//
// Flags:
//
//	-space content space id
//	-token access token
//	-environment environment id
//	-sync-type syncable types (all, entries, assets, entries_of, ...)
//	-content-type content type id for -sync-type entries_of
//	-log-level minimum log level
//	-log-file client log file
//	-a delivery API base URL
//	-preview treat the base URL as a preview endpoint
//	-request-timeout request timeout (e.g., "30s", "1m")
//	-rate-limit requests per second
//	-max-retries retries of rate-limited requests
//	-d mirror database DSN
//	-sync-interval periodic sync interval (e.g., "5m")
//	-sink-buffer persistence queue size
//	-fixture-address fixture server address in format [host]:[port]
//	-page-size fixture server page size
//	-seed fixture server seed file
//	-c/-config json file path with configs
func parseFlags(args []string) (*StructuredConfig, error) {
	var (
		app            App
		adapter        Adapter
		dsn            string
		workers        Workers
		fixtureAddress NetAddress
		fixture        Fixture
		jsonConfigPath string
	)

	fs := flag.NewFlagSet("mirror", flag.ContinueOnError)

	fs.StringVar(&app.SpaceID, "space", "", "Content space id")
	fs.StringVar(&app.AccessToken, "token", "", "Access token")
	fs.StringVar(&app.Environment, "environment", "", "Environment id")
	fs.StringVar(&app.SyncType, "sync-type", "", "Syncable types")
	fs.StringVar(&app.ContentType, "content-type", "", "Content type id for entries_of")
	fs.StringVar(&app.LogLevel, "log-level", "", "Log level")
	fs.StringVar(&app.LogFile, "log-file", "", "Log file path")

	fs.StringVar(&adapter.HTTPAddress, "a", "", "Delivery API base URL")
	fs.BoolVar(&adapter.Preview, "preview", false, "Base URL is a preview endpoint")
	fs.DurationVar(&adapter.RequestTimeout, "request-timeout", 0, "Request timeout (e.g., 30s, 1m)")
	fs.Float64Var(&adapter.RateLimit, "rate-limit", 0, "Requests per second")
	fs.IntVar(&adapter.MaxRetries, "max-retries", 0, "Retries of rate-limited requests")

	fs.StringVar(&dsn, "d", "", "Mirror database DSN")

	fs.DurationVar(&workers.SyncInterval, "sync-interval", 0, "Periodic sync interval (e.g., 5m)")
	fs.IntVar(&workers.SinkBuffer, "sink-buffer", 0, "Persistence queue size")

	fs.Var(&fixtureAddress, "fixture-address", "Fixture server address host:port")
	fs.IntVar(&fixture.PageSize, "page-size", 0, "Fixture server page size")
	fs.StringVar(&fixture.SeedFile, "seed", "", "Fixture server seed file")

	fs.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	fs.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("error parsing flags: %w", err)
	}

	fixture.HTTPAddress = fixtureAddress.String()

	return &StructuredConfig{
		App:          app,
		Adapter:      adapter,
		Storage:      Storage{DB: DB{DSN: dsn}},
		Workers:      workers,
		Fixture:      fixture,
		JSONFilePath: jsonConfigPath,
	}, nil
}

// String returns a canonical host:port string for a NetAddress.
func (a *NetAddress) String() string {
	if a.Host == "" && a.Port == 0 {
		return ""
	}

	return a.Host + ":" + strconv.Itoa(a.Port)
}

// Set parses the input string of form host:port and populates the NetAddress.
// It validates the port range, checks IP correctness unless host is "localhost",
// and returns an error if the format or values are invalid.
func (a *NetAddress) Set(s string) error {
	hostAndPort := strings.Split(s, ":")
	if len(hostAndPort) != 2 {
		return errors.New("need address in a form `host:port`")
	}

	host := hostAndPort[0]
	port, err := strconv.Atoi(hostAndPort[1])
	if err != nil {
		return err
	}

	if port < 1 || port > 65535 {
		return errors.New("port number must be in range 1-65535")
	}

	if host != "localhost" && host != "" {
		if ip := net.ParseIP(host); ip == nil {
			return errors.New("incorrect IP-address provided")
		}
	}

	a.Host = host
	a.Port = port
	return nil
}

var _ flag.Value = (*NetAddress)(nil)
