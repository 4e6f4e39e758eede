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
//	-db-max-open-conns connection pool size
//	-db-connect-timeout database connect timeout (e.g., "5s")
//	-weather-base-url forecast API base URL
//	-weather-api-key shared secret for the climate endpoint
//	-weather-timeout outbound forecast call timeout (e.g., "15s")
//	-auth-enabled enable the bearer-token middleware
//	-token-sign-key token signing key
//	-token-issuer token issuer name
//	-token-duration token duration (e.g., "1h", "30m")
//	-request-timeout inbound request timeout (e.g., "30s", "1m")
func ParseFlags() *Config {
	var serverAddress NetAddress
	var databaseDSN string
	var dbMaxOpenConns int
	var dbConnectTimeout time.Duration
	var weatherBaseURL string
	var weatherAPIKey string
	var weatherTimeout time.Duration
	var authEnabled bool
	var tokenSignKey string
	var tokenIssuer string
	var tokenDuration time.Duration
	var requestTimeout time.Duration

	flag.Var(&serverAddress, "a", "Net address host:port")
	flag.StringVar(&databaseDSN, "d", "", "Database DSN")
	flag.IntVar(&dbMaxOpenConns, "db-max-open-conns", 0, "Database connection pool size")
	flag.DurationVar(&dbConnectTimeout, "db-connect-timeout", 0, "Database connect timeout (e.g., 5s)")
	flag.StringVar(&weatherBaseURL, "weather-base-url", "", "Forecast API base URL")
	flag.StringVar(&weatherAPIKey, "weather-api-key", "", "Climate endpoint shared secret")
	flag.DurationVar(&weatherTimeout, "weather-timeout", 0, "Forecast call timeout (e.g., 15s)")
	flag.BoolVar(&authEnabled, "auth-enabled", false, "Enable bearer-token middleware")
	flag.StringVar(&tokenSignKey, "token-sign-key", "", "Token signing key")
	flag.StringVar(&tokenIssuer, "token-issuer", "", "Token issuer")
	flag.DurationVar(&tokenDuration, "token-duration", 0, "Token duration (e.g., 1h, 30m)")
	flag.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 30s, 1m)")

	flag.Parse()

	return &Config{
		Server: Server{
			Address:        serverAddress.String(),
			RequestTimeout: requestTimeout,
		},
		Storage: Storage{
			DB: DB{
				DSN:            databaseDSN,
				MaxOpenConns:   dbMaxOpenConns,
				ConnectTimeout: dbConnectTimeout,
			},
		},
		Weather: Weather{
			BaseURL: weatherBaseURL,
			APIKey:  weatherAPIKey,
			Timeout: weatherTimeout,
		},
		Auth: Auth{
			Enabled:       authEnabled,
			TokenSignKey:  tokenSignKey,
			TokenIssuer:   tokenIssuer,
			TokenDuration: tokenDuration,
		},
	}
}

// String returns a canonical host:port string for a NetAddress.
func (a *NetAddress) String() string {
	if a.Host == "" && a.Port == 0 {
		return ""
	}

	return a.Host + ":" + strconv.Itoa(a.Port)
}

// Set parses the input string of form host:port and populates the NetAddress.
// It validates the port range, checks IP correctness unless host is
// "localhost" or empty, and returns an error if the format or values are
// invalid.
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

	if host != "" && host != "localhost" {
		ip := net.ParseIP(host)
		if ip == nil {
			return errors.New("incorrect IP-address provided")
		}
	}

	a.Host = host
	a.Port = port
	return nil
}
