// Package devstack starts the backing services a local metacat instance
// needs, using throwaway docker containers. It is used by the devstack
// command and by the integration tests.
//
// Expects its settings in environment variables (see cmd/devstack).
package devstack

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"github.com/docker/docker/api/types/container"
	"github.com/docker/go-connections/nat"
	_ "github.com/go-sql-driver/mysql"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/network"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/opencatalog/metacat/data"
)

// Stack holds the running containers so they can be torn down together.
type Stack struct {
	Network     *testcontainers.DockerNetwork
	DBContainer testcontainers.Container

	// DBHost and DBPort are the host-reachable address of the database,
	// filled in once the container is up.
	DBHost string
	DBPort string
}

// Terminate tears down whatever parts of the stack came up. Safe to call on a
// partially constructed stack.
func (s *Stack) Terminate(ctx context.Context) {
	if s.DBContainer != nil {
		if err := s.DBContainer.Terminate(ctx); err != nil {
			log.Printf("Failed to terminate database container: %v", err)
		}
	}
	if s.Network != nil {
		if err := s.Network.Remove(ctx); err != nil {
			log.Printf("Failed to remove network: %v", err)
		}
	}
}

// Create starts a MariaDB container, waits for it to accept connections, and
// bootstraps the metacat schema from the embedded DDL.
func Create(ctx context.Context) (*Stack, error) {
	stack := &Stack{}

	nw, err := network.New(ctx)
	if err != nil {
		return stack, fmt.Errorf("failed to create network: %w", err)
	}
	stack.Network = nw

	dbAlias := envOr("DB_HOST", "mariadb")
	tcpDbPort, err := nat.NewPort("tcp", envOr("DB_PORT", "3306"))
	if err != nil {
		return stack, fmt.Errorf("failed to create database port: %w", err)
	}

	// DB_PUBLISHED_PORT pins the database to a fixed host port so a locally
	// running server can keep a stable DSN across stack restarts.
	publishedPort := os.Getenv("DB_PUBLISHED_PORT")
	hostConfigModifier := func(hostConfig *container.HostConfig) {
		if publishedPort != "" {
			hostConfig.PortBindings = nat.PortMap{
				tcpDbPort: []nat.PortBinding{
					{HostIP: "127.0.0.1", HostPort: publishedPort},
				},
			}
		}
	}

	dbContainer, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: testcontainers.ContainerRequest{
			Image:        envOr("DB_IMAGE", "mariadb:11"),
			ExposedPorts: []string{string(tcpDbPort)},
			Env: map[string]string{
				"MYSQL_ROOT_PASSWORD": envOr("DB_ROOT_PASSWORD", "devroot"),
				"MYSQL_DATABASE":      envOr("DB_DATABASE", "metacat"),
				"MYSQL_USER":          envOr("DB_USER", "metacat"),
				"MYSQL_PASSWORD":      envOr("DB_PASSWORD", "metacat"),
			},
			WaitingFor:         wait.ForListeningPort(tcpDbPort).WithStartupTimeout(60 * time.Second),
			HostConfigModifier: hostConfigModifier,
			Networks:           []string{nw.Name},
			NetworkAliases: map[string][]string{
				nw.Name: {dbAlias},
			},
		},
		Started: true,
	})
	if err != nil {
		return stack, fmt.Errorf("failed to start database container: %w", err)
	}
	stack.DBContainer = dbContainer

	host, err := dbContainer.Host(ctx)
	if err != nil {
		return stack, fmt.Errorf("failed to read database host: %w", err)
	}
	port, err := dbContainer.MappedPort(ctx, tcpDbPort)
	if err != nil {
		return stack, fmt.Errorf("failed to read mapped database port: %w", err)
	}
	stack.DBHost = host
	stack.DBPort = port.Port()

	if err := initMariaDB(stack.DBHost, stack.DBPort); err != nil {
		return stack, err
	}
	return stack, nil
}

func initMariaDB(host, port string) error {
	rootPassword := envOr("DB_ROOT_PASSWORD", "devroot")
	db, err := sql.Open("mysql", fmt.Sprintf("root:%s@tcp(%s:%s)/", rootPassword, host, port))
	if err != nil {
		return fmt.Errorf("failed to connect for schema setup: %w", err)
	}
	defer db.Close()

	// The container listens before the server is really ready.
	for i := 0; i < 30; i++ {
		if err = db.Ping(); err == nil {
			break
		}
		time.Sleep(1 * time.Second)
	}
	if err != nil {
		return fmt.Errorf("database not ready after 30 seconds: %w", err)
	}

	if err := executeSQL(db, data.InitdbMariaDBTables); err != nil {
		return fmt.Errorf("failed to execute tables init sql: %w", err)
	}
	if err := executeSQL(db, data.InitdbMariaDBPrivileges); err != nil {
		return fmt.Errorf("failed to execute privileges init sql: %w", err)
	}
	return nil
}

// executeSQL runs a multi-statement script one statement at a time, since the
// mysql driver rejects compound statements by default.
func executeSQL(db *sql.DB, script string) error {
	var b strings.Builder
	for _, line := range strings.Split(script, "\n") {
		b.WriteString(stripComment(line))
		b.WriteString(" ")
	}

	for _, q := range strings.Split(b.String(), ";") {
		q = strings.TrimSpace(q)
		if q == "" {
			continue
		}
		if _, err := db.Exec(q); err != nil {
			return fmt.Errorf("%s : when executing > %s", err.Error(), q)
		}
	}
	return nil
}

// stripComment removes a trailing "--" comment, ignoring markers inside
// quoted strings.
func stripComment(line string) string {
	inSingle, inDouble := false, false
	for i := 0; i < len(line); i++ {
		switch {
		case inSingle:
			if line[i] == '\'' {
				inSingle = false
			}
		case inDouble:
			if line[i] == '"' {
				inDouble = false
			}
		case line[i] == '\'':
			inSingle = true
		case line[i] == '"':
			inDouble = true
		case line[i] == '-' && i+1 < len(line) && line[i+1] == '-':
			return line[:i]
		}
	}
	return line
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
