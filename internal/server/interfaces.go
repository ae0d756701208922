package server

// Server defines the lifecycle contract of the relay's transport server.
//
// RunServer blocks until a termination signal arrives or serving fails.
// Shutdown stops accepting requests and waits for in-flight ones.
type Server interface {
	RunServer() error
	Shutdown()
}
