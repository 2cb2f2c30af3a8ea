package server

import (
	"context"
	"fmt"
	"net/http"

	"github.com/joeblew999/plat-fonts/internal/config"
	"github.com/joeblew999/plat-fonts/internal/errorx"
	"github.com/joeblew999/plat-fonts/internal/handler"
	"github.com/joeblew999/plat-fonts/internal/svc"
	"github.com/joeblew999/plat-fonts/internal/ui"
	"github.com/joeblew999/plat-fonts/pkg/browser"
	"github.com/joeblew999/plat-fonts/pkg/db"
	"github.com/joeblew999/plat-fonts/pkg/font"
	"github.com/joeblew999/plat-fonts/pkg/usage"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/zeromicro/go-zero/core/logx"
	"github.com/zeromicro/go-zero/core/mr"
	"github.com/zeromicro/go-zero/core/proc"
	"github.com/zeromicro/go-zero/core/prometheus"
	"github.com/zeromicro/go-zero/core/service"
	"github.com/zeromicro/go-zero/mcp"
	"github.com/zeromicro/go-zero/rest"
)

// Server wraps the MCP server, JSON API and web UI.
type Server struct {
	config config.Config
	group  *service.ServiceGroup
}

// New creates a new server instance.
func New(c config.Config) (*Server, error) {
	errorx.RegisterErrorHandler()

	// go-zero metric vectors only record once prometheus is enabled
	prometheus.Enable()

	mcpServer := mcp.NewMcpServer(c.McpConf)

	// Database and browser are independent, open them in parallel
	var database *db.DB
	var chrome *browser.Browser

	err := mr.Finish(
		func() error {
			var e error
			database, e = db.Open(c.Database.Path)
			return e
		},
		func() error {
			if !c.Browser.Enabled {
				return nil
			}
			var e error
			chrome, e = browser.Connect(context.Background(), c.Browser.ControlURL)
			return e
		},
	)
	cleanup := func() {
		if database != nil {
			database.Close()
		}
		if chrome != nil {
			chrome.Close()
		}
	}
	if err != nil {
		cleanup()
		return nil, fmt.Errorf("failed to initialize: %w", err)
	}

	recorder, err := usage.NewRecorder(database.SqlConn())
	if err != nil {
		cleanup()
		return nil, fmt.Errorf("failed to create usage recorder: %w", err)
	}

	RegisterMCPTools(mcpServer, recorder)

	uiServer, err := rest.NewServer(c.UI.RestConf, rest.WithCors("*"))
	if err != nil {
		cleanup()
		return nil, fmt.Errorf("failed to create UI server: %w", err)
	}

	var checker ui.FontChecker
	if chrome != nil {
		checker = chrome
	}
	uiHandlers := ui.NewHandlers(recorder, checker, fmt.Sprintf("http://%s:%d", loopback(c.UI.Host), c.UI.Port))
	uiServer.AddRoutes(uiHandlers.Routes())
	uiServer.AddRoutes(uiHandlers.SSERoutes(), rest.WithSSE())

	apiServer, err := rest.NewServer(c.API.RestConf, rest.WithCors("*"))
	if err != nil {
		cleanup()
		return nil, fmt.Errorf("failed to create API server: %w", err)
	}

	apiCtx := svc.NewServiceContext(c, recorder)
	handler.RegisterHandlers(apiServer, apiCtx)

	apiServer.AddRoute(rest.Route{
		Method:  http.MethodGet,
		Path:    "/metrics",
		Handler: promhttp.Handler().ServeHTTP,
	})

	proc.AddShutdownListener(func() {
		logx.Info("Flushing font events")
		recorder.Flush()
	})
	proc.AddShutdownListener(func() {
		logx.Info("Closing database")
		database.Close()
	})
	if chrome != nil {
		proc.AddShutdownListener(func() {
			logx.Info("Closing browser")
			if err := chrome.Close(); err != nil {
				logx.Errorf("close browser: %v", err)
			}
		})
	}

	group := service.NewServiceGroup()
	group.Add(uiServer)
	group.Add(apiServer)
	group.Add(mcpServer)

	logx.Infow("plat-fonts server configured",
		logx.Field("mcp", fmt.Sprintf("http://%s:%d/sse", c.Host, c.Port)),
		logx.Field("ui", fmt.Sprintf("http://%s:%d", c.UI.Host, c.UI.Port)),
		logx.Field("api", fmt.Sprintf("http://%s:%d/api/v1", c.API.Host, c.API.Port)),
		logx.Field("database", c.Database.Path),
		logx.Field("families", len(font.AllFamilies())),
		logx.Field("browser", chrome != nil),
	)

	return &Server{config: c, group: group}, nil
}

// Start starts all services. Blocks until shutdown signal.
func (s *Server) Start() {
	s.group.Start()
}

// Stop stops all services.
func (s *Server) Stop() {
	s.group.Stop()
}

// loopback turns a wildcard listen address into one a local browser can dial
func loopback(host string) string {
	switch host {
	case "", "0.0.0.0", "::":
		return "127.0.0.1"
	}
	return host
}
