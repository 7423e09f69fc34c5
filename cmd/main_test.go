package main

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/okian/staffer/internal/config"
	"github.com/okian/staffer/pkg/logger"
	"github.com/smartystreets/goconvey/convey"
)

func init() {
	if err := logger.Init(); err != nil {
		panic(err)
	}
}

func TestMainFunction(t *testing.T) {
	convey.Convey("Given the main application", t, func() {
		convey.Convey("When testing configuration loading", func() {
			_ = os.Setenv("STAFFER_ADDR", ":8080")
			_ = os.Setenv("STAFFER_BATCH_CONCURRENCY", "4")
			defer func() {
				_ = os.Unsetenv("STAFFER_ADDR")
				_ = os.Unsetenv("STAFFER_BATCH_CONCURRENCY")
			}()

			convey.Convey("Then configuration should be loadable", func() {
				cfg, err := config.Load(context.Background())
				convey.So(err, convey.ShouldBeNil)
				convey.So(cfg.Addr, convey.ShouldEqual, ":8080")
				convey.So(cfg.BatchConcurrency, convey.ShouldEqual, 4)
			})
		})

		convey.Convey("When building the server from defaults", func() {
			ctx := context.Background()
			cfg := config.New()
			svc := newService(cfg, logger.Get())
			convey.So(svc.Start(ctx), convey.ShouldBeNil)
			defer svc.Stop()

			srv := newHTTPServer(ctx, cfg, svc)

			convey.Convey("Then it should listen on the configured address", func() {
				convey.So(srv.Addr, convey.ShouldEqual, ":9080")
				convey.So(srv.ReadHeaderTimeout, convey.ShouldEqual, readHeaderTimeout)
			})

			convey.Convey("And the routes should be wired to the service", func() {
				req := httptest.NewRequest(http.MethodPost, "/staff", strings.NewReader(`{"projectId":"P105"}`))
				w := httptest.NewRecorder()
				srv.Handler.ServeHTTP(w, req)
				convey.So(w.Code, convey.ShouldEqual, http.StatusOK)
				convey.So(w.Body.String(), convey.ShouldContainSubstring, `"selectedId":"E004"`)
			})

			convey.Convey("And metrics should be exposed", func() {
				req := httptest.NewRequest(http.MethodGet, "/metrics", nil)
				w := httptest.NewRecorder()
				srv.Handler.ServeHTTP(w, req)
				convey.So(w.Code, convey.ShouldEqual, http.StatusOK)
				convey.So(w.Body.String(), convey.ShouldContainSubstring, "staffer_engine_catalog_projects 5")
			})

			convey.Convey("And the API docs should be served", func() {
				req := httptest.NewRequest(http.MethodGet, "/openapi.yaml", nil)
				w := httptest.NewRecorder()
				srv.Handler.ServeHTTP(w, req)
				convey.So(w.Code, convey.ShouldEqual, http.StatusOK)
				convey.So(w.Body.String(), convey.ShouldContainSubstring, "Staffer API")
			})
		})
	})
}

func TestMainApplicationComponents(t *testing.T) {
	convey.Convey("Given main application components", t, func() {
		convey.Convey("When testing system metrics update", func() {
			convey.Convey("Then it should update metrics without panicking", func() {
				convey.So(updateSystemMetrics, convey.ShouldNotPanic)
			})
		})

		convey.Convey("When the updaters' context is cancelled", func() {
			ctx, cancel := context.WithCancel(context.Background())
			svc := newService(config.New(), logger.Get())
			convey.So(svc.Start(ctx), convey.ShouldBeNil)
			defer svc.Stop()

			done := make(chan struct{}, 2)
			go func() { startSystemMetricsUpdater(ctx, time.Millisecond); done <- struct{}{} }()
			go func() { startServiceMetricsUpdater(ctx, svc); done <- struct{}{} }()
			time.Sleep(5 * time.Millisecond)
			cancel()

			convey.Convey("Then both should return", func() {
				for i := 0; i < 2; i++ {
					select {
					case <-done:
					case <-time.After(time.Second):
						t.Fatal("updater did not stop")
					}
				}
			})
		})
	})
}

func TestMainApplicationErrorHandling(t *testing.T) {
	convey.Convey("Given main application error handling", t, func() {
		convey.Convey("When the catalog path does not exist", func() {
			cfg := config.New()
			cfg.CatalogPath = "/non/existent/catalog.yaml"
			svc := newService(cfg, logger.Get())

			convey.Convey("Then the service should fail to start", func() {
				convey.So(svc.Start(context.Background()), convey.ShouldNotBeNil)
			})
		})
	})
}
