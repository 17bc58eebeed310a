package main

import (
	"context"
	"log"

	"github.com/harshpatel958/kontax/internal/client/cli"
	"github.com/harshpatel958/kontax/internal/client/config"
)

func main() {

	ctx := context.Background()
	cfg := config.LoadConfig()
	app, err := cli.NewApp(cfg)

	if err != nil {
		log.Fatalf("%v", err)
		return
	}

	app.Run(ctx)

}
