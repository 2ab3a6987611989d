package main

import (
	"fmt"
	"net/http/cookiejar"
	"os"
	"strconv"
	"time"

	"github.com/San-Shiro/studentsearch/internal/adapters/driven/challenge"
	"github.com/San-Shiro/studentsearch/internal/adapters/driven/config/file"
	"github.com/San-Shiro/studentsearch/internal/adapters/driven/directory"
	"github.com/San-Shiro/studentsearch/internal/adapters/driven/session"
	"github.com/San-Shiro/studentsearch/internal/adapters/driven/storage/memory"
	"github.com/San-Shiro/studentsearch/internal/adapters/driven/storage/sqlite"
	"github.com/San-Shiro/studentsearch/internal/adapters/driving/cli"
	"github.com/San-Shiro/studentsearch/internal/core/domain"
	"github.com/San-Shiro/studentsearch/internal/core/ports/driven"
	"github.com/San-Shiro/studentsearch/internal/core/services"
	"github.com/San-Shiro/studentsearch/internal/logger"
)

// version is set at build time via ldflags.
var version = "dev"

// defaultEndpoint is used when neither config nor environment names one.
const defaultEndpoint = "http://localhost:8080/search"

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := file.NewConfigStore(os.Getenv("STUDENTSEARCH_CONFIG_DIR"))
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	mode := resolveGateMode(cfg)
	endpoint := firstNonEmpty(
		os.Getenv("STUDENTSEARCH_ENDPOINT"),
		cfg.GetString(file.KeySearchEndpoint),
		defaultEndpoint,
	)
	timeout := resolveTimeout(cfg)

	// One jar shared between the search and session clients so a login
	// cookie is ambient on subsequent searches.
	jar, err := cookiejar.New(nil)
	if err != nil {
		return fmt.Errorf("creating cookie jar: %w", err)
	}

	directoryClient, err := directory.NewClient(directory.Options{
		BaseURL: endpoint,
		Jar:     jar,
		Timeout: timeout,
	})
	if err != nil {
		return fmt.Errorf("creating directory client: %w", err)
	}

	// History degrades to in-memory when the on-disk store cannot open;
	// searching must keep working without it.
	var store driven.HistoryStore
	store, err = sqlite.NewStore(os.Getenv("STUDENTSEARCH_DATA_DIR"))
	if err != nil {
		logger.Warn("History store unavailable, keeping history in memory: %v", err)
		store = memory.NewHistoryStore()
	}
	defer store.Close()

	historySvc := services.NewHistoryService(store)

	// The pipeline and its gate reference each other: a newly accepted
	// token or login clears the pipeline's error slot. Bind through a
	// closure so the gate can be built first.
	var pipeline *services.SearchController
	onAccept := func() {
		if pipeline != nil {
			pipeline.ClearError()
		}
	}
	onReset := func() {
		if pipeline != nil {
			pipeline.Reset()
		}
	}

	var (
		gate       driven.Gate
		sessionSvc *services.SessionService
		verifySvc  *services.VerifyService
	)

	switch mode {
	case domain.GateModeToken:
		factory := challenge.NewFactory(challenge.Config{
			ScriptURL:    cfg.GetString(file.KeyChallengeScriptURL),
			ChallengeURL: cfg.GetString(file.KeyChallengeURL),
			Timeout:      timeout,
		})
		siteKey := firstNonEmpty(
			os.Getenv("STUDENTSEARCH_SITE_KEY"),
			cfg.GetString(file.KeyChallengeSiteKey),
			challenge.DefaultTestSiteKey,
		)
		verifySvc = services.NewVerifyService(factory, siteKey, "light", onAccept)
		gate = verifySvc

	case domain.GateModeSession:
		sessionEndpoint := firstNonEmpty(cfg.GetString(file.KeySessionEndpoint), endpoint)
		sessionClient, cerr := session.NewClient(session.Options{
			BaseURL: sessionEndpoint,
			Jar:     jar,
			Timeout: timeout,
		})
		if cerr != nil {
			return fmt.Errorf("creating session client: %w", cerr)
		}
		sessionSvc = services.NewSessionService(
			sessionClient,
			cfg.GetBool(file.KeySessionGuest),
			onReset,
			onAccept,
		)
		gate = sessionSvc

	default:
		gate = services.NewOpenGate()
	}

	pipeline = services.NewSearchController(directoryClient, gate, mode, store)

	logger.Debug("Configured gate mode %q against %s", mode, endpoint)

	rootConfig := &cli.RootConfig{
		SearchPipeline: pipeline,
		HistoryService: historySvc,
		GateMode:       mode,
		Version:        version,
	}
	tuiConfig := &cli.TUIConfig{
		SearchPipeline: pipeline,
		HistoryService: historySvc,
		GateMode:       mode,
	}
	if sessionSvc != nil {
		rootConfig.SessionService = sessionSvc
		tuiConfig.SessionService = sessionSvc
	}
	if verifySvc != nil {
		rootConfig.VerifyService = verifySvc
		tuiConfig.VerifyService = verifySvc
		defer verifySvc.Close()
	}

	cli.SetRootConfig(rootConfig)
	cli.SetTUIConfig(tuiConfig)

	return cli.Execute()
}

// resolveGateMode picks the gate for this run. The environment wins over
// config; anything unrecognised falls back to the open gate.
func resolveGateMode(cfg *file.ConfigStore) domain.GateMode {
	raw := firstNonEmpty(
		os.Getenv("STUDENTSEARCH_GATE"),
		cfg.GetString(file.KeyGateMode),
	)
	mode := domain.GateMode(raw)
	if !mode.IsValid() {
		if raw != "" {
			logger.Warn("Unknown gate mode %q, running ungated", raw)
		}
		return domain.GateModeNone
	}
	return mode
}

// resolveTimeout reads the per-request timeout in seconds. Zero keeps
// requests unbounded.
func resolveTimeout(cfg *file.ConfigStore) time.Duration {
	val, ok := cfg.Get(file.KeySearchTimeout)
	if !ok {
		return 0
	}
	switch v := val.(type) {
	case int64:
		return time.Duration(v) * time.Second
	case float64:
		return time.Duration(v * float64(time.Second))
	case string:
		if secs, err := strconv.Atoi(v); err == nil {
			return time.Duration(secs) * time.Second
		}
	}
	return 0
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
