package main

import (
	"context"
	"fmt"
	"os"

	"fieldtask/internal/cli"
	"fieldtask/internal/client"
	"fieldtask/internal/config"
)

func main() {
	cfg, err := config.NewLoader().Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading configuration: %v\n", err)
		os.Exit(1)
	}

	session := client.NewSession(client.New(cfg))
	root := cli.NewRootCommand(session, cfg)

	if err := root.Execute(context.Background()); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
