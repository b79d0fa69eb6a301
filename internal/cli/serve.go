package cli

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/spf13/cobra"

	"github.com/matzehuels/gramod/pkg/errors"
	"github.com/matzehuels/gramod/pkg/metrics"
	"github.com/matzehuels/gramod/pkg/observability"
	"github.com/matzehuels/gramod/pkg/server"
	"github.com/matzehuels/gramod/pkg/tower"
)

// serveCommand creates the serve command for the HTML form frontend.
func (c *CLI) serveCommand() *cobra.Command {
	var (
		addr string
		maxN int
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the G mod N form over HTTP",
		Long: `Serve a web page with a form for N. Submitted values above the
maximum are clamped to it; invalid input shows a prompt instead.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg := c.Config
			if cmd.Flags().Changed("addr") {
				cfg.Server.Addr = addr
			}
			if cmd.Flags().Changed("max") {
				cfg.MaxModulus = maxN
			}
			if err := cfg.Validate(); err != nil {
				return err
			}
			if err := tower.SelfCheck(); err != nil {
				return err
			}

			logger := loggerFromContext(cmd.Context())
			reg := prometheus.NewRegistry()
			reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
			collector := metrics.New(reg)
			observability.SetReducerHooks(collector)
			observability.SetHTTPHooks(collector)
			defer observability.Reset()

			out := cmd.OutOrStdout()
			printInfo(out, "Serving %s", StyleLink.Render("http://"+displayAddr(cfg.Server.Addr)+"/"))
			printKeyValue(out, "max N", numbers.Sprint(cfg.MaxModulus))
			printKeyValue(out, "metrics", "/metrics")

			srv := server.New(server.Options{
				Base:       cfg.Base,
				MaxModulus: cfg.MaxModulus,
				Metrics:    collector.Handler(),
				Logger:     logger,
			})
			if err := srv.ListenAndServe(cmd.Context(), cfg.Server); err != nil {
				return errors.Wrap(errors.ErrCodeInternal, err, "serve %s", cfg.Server.Addr)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&addr, "addr", "", "listen address (default from config, \":8080\")")
	cmd.Flags().IntVar(&maxN, "max", 0, "largest N computed; larger inputs are clamped")
	return cmd
}

// displayAddr turns a listen address like ":8080" into a browsable host.
func displayAddr(addr string) string {
	if len(addr) > 0 && addr[0] == ':' {
		return "localhost" + addr
	}
	return addr
}
