package config

import (
	"errors"
	"flag"
	"io"
	"net"
	"strconv"
	"time"
)

// NetAddress holds structured network address data for host and port.
// It implements the flag.Value interface.
type NetAddress struct {
	Host string
	Port int
}

// ParseFlags parses the relay command-line arguments (without the program name).
//
// Flags:
//
//	-a server address in format [host]:[port]
//	-p server port, used when -a is not given
//	-env runtime environment ("production" binds all interfaces)
//	-log-level zerolog level name
//	-c/-config json file path with configs
//	-pinata-api-url pinning API base URL
//	-gateway-url public gateway prefix
//	-gops start the gops diagnostics agent
//	-metadata-name name put in the envelope of pinned JSON documents
//	-request-timeout upstream request timeout (e.g., "30s", "1m")
//
// Credentials are intentionally not accepted as flags: command lines are
// visible to every user of the host.
func ParseFlags(args []string) (*StructuredConfig, error) {
	var serverAddress NetAddress
	var port int
	var environment string
	var logLevel string
	var diagnostics bool
	var jsonConfigPath string
	var apiURL string
	var gatewayURL string
	var metadataName string
	var requestTimeout time.Duration

	fs := flag.NewFlagSet("pin-relay", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	fs.Var(&serverAddress, "a", "Net address host:port")
	fs.IntVar(&port, "p", 0, "Server port")
	fs.StringVar(&environment, "env", "", "Runtime environment")
	fs.StringVar(&logLevel, "log-level", "", "Log level")
	fs.BoolVar(&diagnostics, "gops", false, "Start the gops diagnostics agent")
	fs.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	fs.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")
	fs.StringVar(&apiURL, "pinata-api-url", "", "Pinning API base URL")
	fs.StringVar(&gatewayURL, "gateway-url", "", "Public gateway prefix")
	fs.StringVar(&metadataName, "metadata-name", "", "Name of pinned JSON documents")
	fs.DurationVar(&requestTimeout, "request-timeout", 0, "Upstream request timeout (e.g., 30s, 1m)")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	return &StructuredConfig{
		App: App{
			Environment: environment,
			LogLevel:    logLevel,
			Diagnostics: diagnostics,
		},
		Server: Server{
			HTTPAddress: serverAddress.String(),
			Port:        port,
		},
		Pinata: Pinata{
			APIURL:         apiURL,
			GatewayURL:     gatewayURL,
			MetadataName:   metadataName,
			RequestTimeout: requestTimeout,
		},
		JSONFilePath: jsonConfigPath,
	}, nil
}

// String returns a canonical host:port string for a NetAddress.
// An unset address is rendered as the empty string.
func (a *NetAddress) String() string {
	if a.Host == "" && a.Port == 0 {
		return ""
	}

	return net.JoinHostPort(a.Host, strconv.Itoa(a.Port))
}

// Set parses the input string of form host:port and populates the NetAddress.
// The host may be empty (all interfaces), "localhost", or an IP address.
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
		return errors.New("port number must be between 1 and 65535")
	}

	if host != "" && host != "localhost" {
		if ip := net.ParseIP(host); ip == nil {
			return errors.New("incorrect IP-address provided")
		}
	}

	a.Host = host
	a.Port = port
	return nil
}
