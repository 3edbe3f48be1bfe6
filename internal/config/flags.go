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
//	-driver storage driver name ("sqlite3" or "pgx")
//	-d database DSN (file path for sqlite3, connection string for pgx)
//	-c/-config json file path with configs
//	-token-sign-key token signing key
//	-token-issuer token issuer name
//	-token-duration token duration (e.g., "1h", "30m")
//	-request-timeout request timeout (e.g., "30s", "1m")
//	-oracle-url oracle API base URL
//	-oracle-key oracle API key
//	-oracle-model oracle model identifier
//	-oracle-timeout oracle request timeout (e.g., "30s")
//	-warmup-queue auto-match warmup queue size
func ParseFlags() *StructuredConfig {
	var serverAddress NetAddress
	var storageDriver string
	var databaseDSN string
	var jsonConfigPath string
	var tokenSignKey string
	var tokenIssuer string
	var tokenDuration time.Duration
	var requestTimeout time.Duration
	var oracleBaseURL string
	var oracleAPIKey string
	var oracleModel string
	var oracleTimeout time.Duration
	var warmupQueueSize int

	flag.Var(&serverAddress, "a", "Net address host:port")
	flag.StringVar(&storageDriver, "driver", "", "Storage driver (sqlite3 or pgx)")
	flag.StringVar(&databaseDSN, "d", "", "Database DSN")
	flag.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	flag.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")
	flag.StringVar(&tokenSignKey, "token-sign-key", "", "Token signing key")
	flag.StringVar(&tokenIssuer, "token-issuer", "", "Token issuer")
	flag.DurationVar(&tokenDuration, "token-duration", 0, "Token duration (e.g., 1h, 30m)")
	flag.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 30s, 1m)")
	flag.StringVar(&oracleBaseURL, "oracle-url", "", "Oracle API base URL")
	flag.StringVar(&oracleAPIKey, "oracle-key", "", "Oracle API key")
	flag.StringVar(&oracleModel, "oracle-model", "", "Oracle model identifier")
	flag.DurationVar(&oracleTimeout, "oracle-timeout", 0, "Oracle request timeout (e.g., 30s)")
	flag.IntVar(&warmupQueueSize, "warmup-queue", 0, "Auto-match warmup queue size")

	flag.Parse()

	return &StructuredConfig{
		App: App{
			TokenSignKey:  tokenSignKey,
			TokenIssuer:   tokenIssuer,
			TokenDuration: tokenDuration,
		},
		Storage: Storage{
			Driver: storageDriver,
			DSN:    databaseDSN,
		},
		Server: Server{
			HTTPAddress:    serverAddress.String(),
			RequestTimeout: requestTimeout,
		},
		Oracle: Oracle{
			BaseURL:        oracleBaseURL,
			APIKey:         oracleAPIKey,
			Model:          oracleModel,
			RequestTimeout: oracleTimeout,
		},
		Workers: Workers{
			WarmupQueueSize: warmupQueueSize,
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
