package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"github.com/opencatalog/metacat/internal/devstack"
)

func main() {
	var showHelp bool
	flag.BoolVar(&showHelp, "h", false, "show help")
	var envFilename string
	flag.StringVar(&envFilename, "f", "", "path to the .env file")
	flag.Parse()

	usage := `
Run a throwaway MariaDB for local metacat development, bootstrapped with the
metacat schema. Ctrl-C tears it down.

Usage:

devstack [-h] [-f ENV_FILE_PATH]

ENV_FILE_PATH: path to the .env file

example
  devstack -f /path/to/something/.env
`
	if showHelp {
		fmt.Println(usage)
		return
	}

	if envFilename != "" {
		log.Printf("Loading environment variables from %s\n", envFilename)
		if err := godotenv.Load(envFilename); err != nil {
			log.Fatalf("Failed to load environment variables: %v\n", err)
		}
	} else {
		log.Printf("No environment file specified, using current environment variables\n")
	}

	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM, syscall.SIGTSTP, syscall.SIGQUIT)

	ctx := context.Background()
	var stack *devstack.Stack
	go func() {
		var err error
		stack, err = devstack.Create(ctx)
		if err != nil {
			if stack != nil {
				stack.Terminate(ctx)
			}
			log.Fatalf("Failed to create dev stack: %v\n", err)
		}
		log.Printf("MariaDB ready at %s:%s (DB_HOST=%s DB_PORT=%s)\n",
			stack.DBHost, stack.DBPort, stack.DBHost, stack.DBPort)
	}()

	sig := <-sigs
	log.Printf("\nReceived signal: %v, terminating dev stack...\n", sig)
	if stack != nil {
		stack.Terminate(ctx)
	}
}
