package utils

import (
	"fmt"
	"net"
	"time"
)

// PingHost checks TCP reachability of host:port within the timeout. It says
// nothing about the protocol spoken on the other side; the health check uses
// it to distinguish an unreachable database host from a reachable one that
// refuses the application.
func PingHost(host, port string, timeout time.Duration) error {
	address := net.JoinHostPort(host, port)

	conn, err := net.DialTimeout("tcp", address, timeout)
	if err != nil {
		return fmt.Errorf("failed to connect to %s: %w", address, err)
	}
	defer conn.Close()

	return nil
}
