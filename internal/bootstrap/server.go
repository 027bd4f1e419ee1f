package bootstrap

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type ServerConfig struct {
	Port         string
	UpstreamURL  string
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	IdleTimeout  time.Duration
}

// StartHTTPServer runs the gin engine with graceful shutdown. Startup
// and shutdown both leave an audit entry, so the gateway's lifetime
// and the upstream it fronted are always on record.
func StartHTTPServer(
	router *gin.Engine,
	cfg ServerConfig,
	auditLogger AuditLogger,
) {
	server := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      router,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
		IdleTimeout:  cfg.IdleTimeout,
	}

	started := time.Now()
	auditLogger.Log(context.Background(), AuditLog{
		Action:  "GATEWAY_START",
		Message: "Gateway is accepting requests",
		Meta: map[string]any{
			"port":     cfg.Port,
			"upstream": cfg.UpstreamURL,
		},
	})

	go func() {
		zap.L().Info("gateway listening", zap.String("port", cfg.Port))
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			zap.L().Fatal("listen failed", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	sig := <-quit

	auditLogger.Log(context.Background(), AuditLog{
		Action:  "GATEWAY_SHUTDOWN",
		Message: "Gateway is shutting down",
		Meta: map[string]any{
			"signal": sig.String(),
			"uptime": time.Since(started).String(),
		},
	})

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		zap.L().Error("forced shutdown", zap.Error(err))
	} else {
		zap.L().Info("gateway exited cleanly")
	}
}
