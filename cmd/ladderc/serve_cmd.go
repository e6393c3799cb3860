package main

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/cobra"

	"github.com/plcgo/ladderc/internal/httpapi"
	"github.com/plcgo/ladderc/internal/metrics"
)

func newServeCmd() *cobra.Command {
	var addr string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the compile API over HTTP",
		RunE: func(cmd *cobra.Command, args []string) error {
			log := newLogger()

			reg := prometheus.NewRegistry()
			coll := metrics.NewCollectors()
			if err := coll.Register(reg); err != nil {
				return fmt.Errorf("registering metrics: %w", err)
			}

			srv := httpapi.NewServer(coll)
			router := srv.Router()
			router.GET("/metrics", gin.WrapH(promhttp.HandlerFor(reg, promhttp.HandlerOpts{})))

			log.Info("listening", "addr", addr)
			return http.ListenAndServe(addr, router)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", ":8080", "HTTP listen address")
	return cmd
}
