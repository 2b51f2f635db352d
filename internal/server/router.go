// Package server assembles the HTTP router.
package server

import (
	"context"
	"net/http"
	"time"

	"adboard/internal/handler"
	"adboard/internal/logger"
	"adboard/internal/middleware"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

const healthTimeout = 2 * time.Second

// PingFunc reports whether the backing store is reachable
type PingFunc func(ctx context.Context) error

// NewRouter wires middleware, the resource routes and the health check
func NewRouter(log zerolog.Logger, ping PingFunc, users *handler.UserHandler, ads *handler.AdvertisementHandler) *gin.Engine {
	handler.ConfigureBinding()

	router := gin.New()
	router.HandleMethodNotAllowed = true
	router.RedirectTrailingSlash = false
	router.Use(
		middleware.RequestLogger(logger.Component(log, "http")),
		middleware.Recovery(logger.Component(log, "recovery")),
	)

	router.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, middleware.NotFoundBody)
	})
	router.NoMethod(func(c *gin.Context) {
		c.JSON(http.StatusMethodNotAllowed, gin.H{"error": "method not allowed"})
	})

	idGuard := middleware.NumericID("id")
	users.RegisterUserRoutes(&router.RouterGroup, idGuard)
	ads.RegisterAdvertisementRoutes(&router.RouterGroup, idGuard)

	router.GET("/health", func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), healthTimeout)
		defer cancel()

		if err := ping(ctx); err != nil {
			_ = c.Error(err)
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "error", "db": "unhealthy"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "ok", "db": "healthy"})
	})

	return router
}
