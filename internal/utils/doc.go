// Package utils provides small helpers shared by the transport layers:
// JSON response writing and construction of the outbound HTTP client.
package utils
