package config

import (
	"errors"
	"flag"
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

// ParseFlags parses all configuration flags.
//
// Flags:
//
//	-a server address in format [host]:[port]
//	-d database DSN
//	-c/-config json file path with configs
//	-request-timeout request timeout (e.g., "30s", "1m")
//	-summarizer-url summarizer gateway base URL
//	-summarizer-key summarizer gateway API key
//	-summarizer-model summarizer completion model
//	-summarizer-timeout summarizer call timeout (e.g., "15s")
//	-retention-days retention window in days
//	-warning-days expiry-warning window in days
//	-sweep-interval retention sweep interval (e.g., "12h")
func ParseFlags() *StructuredConfig {
	var serverAddress NetAddress
	var databaseDSN string
	var jsonConfigPath string
	var requestTimeout time.Duration
	var summarizerURL string
	var summarizerKey string
	var summarizerModel string
	var summarizerTimeout time.Duration
	var retentionDays int
	var warningDays int
	var sweepInterval time.Duration

	flag.Var(&serverAddress, "a", "Net address host:port")
	flag.StringVar(&databaseDSN, "d", "", "Database DSN")
	flag.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	flag.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")
	flag.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 30s, 1m)")
	flag.StringVar(&summarizerURL, "summarizer-url", "", "Summarizer gateway base URL")
	flag.StringVar(&summarizerKey, "summarizer-key", "", "Summarizer gateway API key")
	flag.StringVar(&summarizerModel, "summarizer-model", "", "Summarizer completion model")
	flag.DurationVar(&summarizerTimeout, "summarizer-timeout", 0, "Summarizer call timeout (e.g., 15s)")
	flag.IntVar(&retentionDays, "retention-days", 0, "Retention window in days")
	flag.IntVar(&warningDays, "warning-days", 0, "Expiry-warning window in days")
	flag.DurationVar(&sweepInterval, "sweep-interval", 0, "Retention sweep interval (e.g., 12h)")

	flag.Parse()

	return &StructuredConfig{
		Storage: Storage{
			DB: DB{
				DSN: databaseDSN,
			},
		},
		Server: Server{
			HTTPAddress:    serverAddress.String(),
			RequestTimeout: requestTimeout,
		},
		Summarizer: Summarizer{
			BaseURL: summarizerURL,
			APIKey:  summarizerKey,
			Model:   summarizerModel,
			Timeout: summarizerTimeout,
		},
		Retention: Retention{
			Days:          retentionDays,
			WarningDays:   warningDays,
			SweepInterval: sweepInterval,
		},
		JSONFilePath: jsonConfigPath,
	}
}

// String returns a canonical host:port string for a NetAddress.
// If neither Host nor Port are set, it returns an empty string.
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

	if port < 1 {
		return errors.New("port number is a positive integer")
	}

	if host != "localhost" {
		ip := net.ParseIP(hostAndPort[0])
		if ip == nil {
			return errors.New("incorrect IP-address provided")
		}
	}

	a.Host = host
	a.Port = port
	return nil
}
