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
//	-auth-url auth-service base URL
//	-consumer-url consumer-service base URL
//	-api-key OAuth2 client id
//	-api-secret OAuth2 client secret
//	-patient-id simpl_id to fetch the summary for
//	-request-timeout outbound request timeout (e.g., "30s", "1m")
//	-a stub server address in format [host]:[port]
//	-token-sign-key stub token signing key
//	-token-issuer stub token issuer name
//	-token-duration stub token duration (e.g., "1h", "30m")
//	-c/-config json file path with configs
func ParseFlags() *StructuredConfig {
	var serverAddress NetAddress
	var authURL string
	var consumerURL string
	var apiKey string
	var apiSecret string
	var patientID string
	var requestTimeout time.Duration
	var jsonConfigPath string
	var tokenSignKey string
	var tokenIssuer string
	var tokenDuration time.Duration

	flag.StringVar(&authURL, "auth-url", "", "Auth service base URL")
	flag.StringVar(&consumerURL, "consumer-url", "", "Consumer service base URL")
	flag.StringVar(&apiKey, "api-key", "", "API key (OAuth2 client id)")
	flag.StringVar(&apiSecret, "api-secret", "", "API secret (OAuth2 client secret)")
	flag.StringVar(&patientID, "patient-id", "", "Patient simpl_id")
	flag.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 30s, 1m)")
	flag.Var(&serverAddress, "a", "Net address host:port")
	flag.StringVar(&tokenSignKey, "token-sign-key", "", "Token signing key")
	flag.StringVar(&tokenIssuer, "token-issuer", "", "Token issuer")
	flag.DurationVar(&tokenDuration, "token-duration", 0, "Token duration (e.g., 1h, 30m)")
	flag.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	flag.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")

	flag.Parse()

	return &StructuredConfig{
		Auth: Auth{
			URL:       authURL,
			APIKey:    apiKey,
			APISecret: apiSecret,
		},
		Consumer: Consumer{
			URL: consumerURL,
		},
		Smoke: Smoke{
			PatientID: patientID,
		},
		Adapter: Adapter{
			RequestTimeout: requestTimeout,
		},
		Server: Server{
			HTTPAddress:   serverAddress.String(),
			TokenSignKey:  tokenSignKey,
			TokenIssuer:   tokenIssuer,
			TokenDuration: tokenDuration,
		},
		JSONFilePath: jsonConfigPath,
	}
}

// String returns a canonical host:port string for a NetAddress.
// If neither Host nor Port are set, it returns an empty string so that a
// flag that was never passed does not shadow other config sources.
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
