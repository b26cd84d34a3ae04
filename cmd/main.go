package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/eurofurence/reg-response-result/internal/config"
	"github.com/eurofurence/reg-response-result/internal/interaction"
	"github.com/eurofurence/reg-response-result/internal/logging"
	"github.com/eurofurence/reg-response-result/internal/repository/downstreams/healthclient"
	"github.com/eurofurence/reg-response-result/internal/server"
)

func main() {
	configFile := flag.String("config", "config.yaml", "path to the yaml configuration file")
	flag.Parse()

	conf, err := config.LoadFromFile(*configFile, logging.NoCtx().Error)
	if err != nil {
		logging.NoCtx().Fatal("failed to load configuration %s: %v", *configFile, err)
	}

	logging.Setup(conf.Service.Name, conf.Logging.Severity, conf.Logging.Style == config.StyleJson)
	logger := logging.NoCtx()

	clients := make(map[string]healthclient.HealthClient)
	for name, baseUrl := range conf.Service.Downstreams {
		client, err := healthclient.New(name, baseUrl, conf.Security.Fixed.Api)
		if err != nil {
			logger.Fatal("could not create client for downstream %s: %v", name, err)
		}
		clients[name] = client
	}

	i, err := interaction.NewServiceInteractor(clients, logger)
	if err != nil {
		logger.Fatal("could not create interactor: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, os.Interrupt, syscall.SIGTERM)

	go func() {
		<-sig
		cancel()
	}()

	handler := server.CreateRouter(i, &conf.Security)
	srv := server.NewServer(ctx, &conf.Server, handler)

	if err := server.Serve(ctx, srv, time.Second*5); err != nil {
		logger.Fatal("%v", err)
	}
}
