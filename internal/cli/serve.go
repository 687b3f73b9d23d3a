package cli

import (
	"context"
	"fmt"
	"html"
	"net"
	"net/http"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/spf13/cobra"

	"github.com/matzehuels/webmanifest/pkg/errors"
	"github.com/matzehuels/webmanifest/pkg/manifest"
)

const shutdownTimeout = 5 * time.Second

// serveCommand creates the serve command.
func (c *CLI) serveCommand() *cobra.Command {
	var addr string

	cmd := &cobra.Command{
		Use:   "serve <definition>",
		Short: "Serve a definition's manifest over HTTP",
		Long: `Serve the manifest built from a definition file at ` + defaultManifestPath + `,
with a minimal HTML page at / that links to it. Runs until interrupted.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runServe(cmd.Context(), cmd, args[0], addr)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", defaultAddr, "listen address")

	return cmd
}

func (c *CLI) runServe(ctx context.Context, cmd *cobra.Command, path, addr string) error {
	logger := loggerFromContext(ctx)

	m, err := loadManifest(path)
	if err != nil {
		return err
	}
	body, err := m.Build()
	if err != nil {
		return err
	}

	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return errors.Wrap(errors.ErrCodeInternal, err, "listen on %s", addr)
	}

	srv := &http.Server{
		Handler:           newRouter(logger, m.Name(), body),
		ReadHeaderTimeout: 10 * time.Second,
	}

	stderr := cmd.ErrOrStderr()
	printInfo(stderr, "Serving %s", StyleTitle.Render(m.Name()))
	printDetail(stderr, "%s", StyleLink.Render("http://"+ln.Addr().String()+defaultManifestPath))

	return serve(ctx, srv, ln, logger)
}

// serve runs srv on ln until ctx is cancelled, then shuts it down and
// returns ctx.Err().
func serve(ctx context.Context, srv *http.Server, ln net.Listener, logger *log.Logger) error {
	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.Serve(ln)
	}()

	select {
	case err := <-errCh:
		if err == http.ErrServerClosed {
			return nil
		}
		return errors.Wrap(errors.ErrCodeInternal, err, "serve")
	case <-ctx.Done():
	}

	logger.Debug("Shutting down", "addr", ln.Addr().String())
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return errors.Wrap(errors.ErrCodeInternal, err, "shutdown")
	}
	return ctx.Err()
}

// newRouter returns the handler tree for a built manifest body.
func newRouter(logger *log.Logger, name, body string) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(middleware.GetHead)
	r.Use(requestLogger(logger))

	r.Get(defaultManifestPath, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", manifest.MediaType)
		fmt.Fprint(w, body)
	})

	page := indexPage(name)
	r.Get("/", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		fmt.Fprint(w, page)
	})

	return r
}

func indexPage(name string) string {
	title := html.EscapeString(name)
	return "<!doctype html>\n<html>\n<head>\n" +
		"<meta charset=\"utf-8\">\n" +
		"<title>" + title + "</title>\n" +
		manifest.LinkTag(defaultManifestPath) + "\n" +
		"</head>\n<body>\n<h1>" + title + "</h1>\n</body>\n</html>\n"
}

// requestLogger logs each request at debug level.
func requestLogger(logger *log.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
			next.ServeHTTP(ww, r)
			logger.Debug("Request",
				"method", r.Method,
				"path", r.URL.Path,
				"status", ww.Status(),
				"bytes", ww.BytesWritten(),
				"took", time.Since(start).Round(time.Microsecond),
			)
		})
	}
}
