package main

import (
	"brandkit/internal/brand"
	"brandkit/internal/config"
	"brandkit/internal/contacts"
	"brandkit/internal/dns"
	"brandkit/internal/domains"
	"brandkit/pkg/cache/rediscache"
	"brandkit/pkg/llm/gemini"
	"brandkit/pkg/logger"
	"brandkit/pkg/registrar/cvapi"
	"brandkit/pkg/retry"
	"context"
	"net/http"

	"go.uber.org/zap"
)

// services groups the registrar and generation backed services shared by
// the commands.
type services struct {
	registrar *cvapi.Client
	domains   domains.Service
	contacts  contacts.Service
	dns       dns.Service
	brand     brand.Generator
}

func getRegistrar(cfg *config.Config) *cvapi.Client {
	return cvapi.New(cvapi.Options{
		BaseURL:    cfg.Registrar.BaseURL,
		Token:      cfg.Registrar.Token,
		HTTPClient: &http.Client{Timeout: cfg.Registrar.Timeout},
		Retry: retry.Options{
			Retries: cfg.Registrar.Retries,
			Base:    cfg.Registrar.RetryBase,
			Cap:     cfg.Registrar.RetryCap,
		},
	})
}

func getGenerator(cfg *config.Config) *gemini.Client {
	return gemini.New(gemini.Options{
		BaseURL:    cfg.Generation.BaseURL,
		APIKey:     cfg.Generation.APIKey,
		Model:      cfg.Generation.Model,
		HTTPClient: &http.Client{Timeout: cfg.Generation.Timeout},
		Retry:      retry.Options{Retries: cfg.Generation.Retries},
	})
}

// getCache connects to Redis when the cache is enabled. A failed connection
// only disables caching.
func getCache(ctx context.Context, cfg *config.Config) (*rediscache.Cache, func()) {
	if !cfg.Cache.Enabled {
		return nil, func() {}
	}

	c, err := rediscache.New(ctx, rediscache.Options{
		Addr:     cfg.Cache.Addr,
		Password: cfg.Cache.Password,
		DB:       cfg.Cache.DB,
		TTL:      cfg.Cache.TTL,
	})
	if err != nil {
		logger.Warn(ctx, "could not connect to availability cache, continuing without it", zap.Error(err))

		return nil, func() {}
	}

	return c, func() {
		if err := c.Close(); err != nil {
			logger.Warn(ctx, "could not close availability cache", zap.Error(err))
		}
	}
}

func getServices(ctx context.Context, cfg *config.Config) (*services, func()) {
	client := getRegistrar(cfg)

	var options domains.Options
	c, closeCache := getCache(ctx, cfg)
	if c != nil {
		options.Cache = c
	}

	return &services{
		registrar: client,
		domains:   domains.New(client, options),
		contacts:  contacts.New(client),
		dns:       dns.New(client),
		brand:     brand.New(getGenerator(cfg)),
	}, closeCache
}
