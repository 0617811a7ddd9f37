package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	"github.com/noah-isme/edu-admin-client/internal/i18n"
	"github.com/noah-isme/edu-admin-client/internal/layout"
	"github.com/noah-isme/edu-admin-client/internal/service"
	"github.com/noah-isme/edu-admin-client/internal/session"
	"github.com/noah-isme/edu-admin-client/pkg/apiclient"
	"github.com/noah-isme/edu-admin-client/pkg/config"
	"github.com/noah-isme/edu-admin-client/pkg/kvstore"
	"github.com/noah-isme/edu-admin-client/pkg/logger"
	"github.com/noah-isme/edu-admin-client/pkg/metrics"
	"github.com/noah-isme/edu-admin-client/pkg/storage"
)

const usage = `usage: admin-console [-dump-metrics] <command> [flags]

commands:
  login            sign in and store the tokens
  logout           sign out and clear the tokens
  whoami           show the signed-in user
  students         list students
  export-salaries  export salaries to CSV or PDF
  download-report  download a student report as PDF
  lang             show or change the interface language
  sidebar          show or toggle the sidebar state
`

var errUsage = errors.New("invalid usage")

type app struct {
	cfg        *config.Config
	logger     *zap.Logger
	client     *apiclient.Client
	services   *service.Services
	session    *session.Session
	translator *i18n.Translator
	sidebar    *layout.Sidebar
	downloads  *storage.Downloads
	recorder   *metrics.Recorder
	out        io.Writer
}

type command func(ctx context.Context, a *app, args []string) error

var commands = map[string]command{
	"login":           runLogin,
	"logout":          runLogout,
	"whoami":          runWhoami,
	"students":        runStudents,
	"export-salaries": runExportSalaries,
	"download-report": runDownloadReport,
	"lang":            runLang,
	"sidebar":         runSidebar,
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := run(ctx, os.Args[1:], os.Stdout)
	stop()
	if err != nil {
		if errors.Is(err, errUsage) {
			fmt.Fprint(os.Stderr, usage)
		}
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, args []string, out io.Writer) error {
	global := flag.NewFlagSet("admin-console", flag.ContinueOnError)
	global.SetOutput(io.Discard)
	dumpMetrics := global.Bool("dump-metrics", false, "print collected metrics to stderr on exit")
	if err := global.Parse(args); err != nil {
		return fmt.Errorf("%w: %v", errUsage, err)
	}
	if global.NArg() == 0 {
		return errUsage
	}
	name, rest := global.Arg(0), global.Args()[1:]
	cmd, ok := commands[name]
	if !ok {
		return fmt.Errorf("%w: unknown command %q", errUsage, name)
	}

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	if *dumpMetrics {
		cfg.Metrics.Enabled = true
	}

	logr, err := logger.New(cfg)
	if err != nil {
		return fmt.Errorf("init logger: %w", err)
	}
	defer logr.Sync() //nolint:errcheck

	a, closeStore, err := bootstrap(ctx, cfg, logr, out)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := closeStore.Close(); cerr != nil {
			logr.Warn("close store", zap.Error(cerr))
		}
	}()

	logr.Debug("command starting", zap.String("command", name), zap.String("api", cfg.API.BaseURL))
	err = cmd(ctx, a, rest)
	if *dumpMetrics && a.recorder != nil {
		writeMetrics(os.Stderr, a.recorder)
	}
	return err
}

func bootstrap(ctx context.Context, cfg *config.Config, logr *zap.Logger, out io.Writer) (*app, io.Closer, error) {
	store, closer, err := kvstore.Open(ctx, cfg)
	if err != nil {
		return nil, nil, fmt.Errorf("open client state: %w", err)
	}

	a := &app{cfg: cfg, logger: logr, out: out}

	clientOpts := []apiclient.Option{apiclient.WithLogger(logr)}
	if cfg.Metrics.Enabled {
		a.recorder = metrics.NewRecorder()
		clientOpts = append(clientOpts, apiclient.WithMetrics(a.recorder))
	}

	a.client, err = apiclient.New(apiclient.Config{
		BaseURL:     cfg.API.BaseURL,
		Timeout:     cfg.API.Timeout,
		UserAgent:   cfg.API.UserAgent,
		AutoRefresh: cfg.API.AutoRefresh,
	}, store, clientOpts...)
	if err != nil {
		_ = closer.Close()
		return nil, nil, err
	}

	a.services = service.New(a.client, service.WithLogger(logr), service.WithPerPage(cfg.API.DefaultPerPage))
	a.session = session.New(a.services.Auth, a.client,
		session.WithLogger(logr),
		session.WithNavigator(session.NavigatorFunc(func(path string) {
			logr.Debug("navigate", zap.String("path", path))
		})),
	)

	a.translator, err = i18n.NewTranslator(ctx, store, cfg.UI.DefaultLanguage, logr)
	if err != nil {
		_ = closer.Close()
		return nil, nil, fmt.Errorf("load translations: %w", err)
	}
	a.sidebar = layout.NewSidebar(ctx, store, cfg.UI.ViewportWidth, logr)

	a.downloads, err = storage.NewDownloads(cfg.Downloads.Dir)
	if err != nil {
		_ = closer.Close()
		return nil, nil, fmt.Errorf("prepare downloads dir: %w", err)
	}

	return a, closer, nil
}

func writeMetrics(w io.Writer, r *metrics.Recorder) {
	rec := httptest.NewRecorder()
	r.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	_, _ = io.Copy(w, rec.Body)
}
