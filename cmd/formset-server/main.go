package main

import (
	"context"
	"flag"
	"net/http"
	"os"
	"path/filepath"
	"strconv"
	"sync"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/archivekit/formset/pkg/formtree"
	"github.com/archivekit/formset/pkg/manager"
	"github.com/archivekit/formset/pkg/render"
	"github.com/archivekit/formset/pkg/transcribe"
	"github.com/archivekit/formset/pkg/viewdef"
	"github.com/archivekit/formset/pkg/widgets"
)

func main() {
	addr := flag.String("addr", ":8080", "listen address")
	view := flag.String("view", "views/record.yaml", "view definition file")
	logLevel := flag.String("log-level", "info", "zap level: debug, info, warn, error")
	flag.Parse()

	logger, err := buildLogger(*logLevel)
	if err != nil {
		panic(err)
	}
	defer func() { _ = logger.Sync() }()

	dir, file := filepath.Split(*view)
	if dir == "" {
		dir = "."
	}
	groups, err := viewdef.NewLoader(os.DirFS(dir)).LoadGroups(file)
	if err != nil {
		logger.Fatal("load view definition", zap.String("view", *view), zap.Error(err))
	}

	fragments, err := render.NewFragments()
	if err != nil {
		logger.Fatal("initialise renderer", zap.Error(err))
	}

	app := &application{
		logger:    logger,
		groups:    groups,
		manager:   manager.New(manager.WithWidgets(widgets.NewRegistry())),
		fragments: fragments,
	}

	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})
	r.Post("/groups/{group}/rows", app.addRowHandler)
	r.Post("/groups/{group}/rows/{index}/toggle-deletion", app.toggleDeletionHandler)
	transcribe.RegisterRoutes(r, "/records", seedStore(), logger)

	logger.Info("listening", zap.String("addr", *addr))
	if err := http.ListenAndServe(*addr, r); err != nil {
		logger.Fatal("server stopped", zap.Error(err))
	}
}

type application struct {
	logger    *zap.Logger
	manager   *manager.Manager
	fragments *render.Fragments

	mu     sync.Mutex
	groups map[string]*formtree.Group
}

// addRowHandler clones a blueprint into the named group and answers with the
// rendered row fragment. The updated total-rows count travels back in a
// header so the client can refresh its management controls.
func (app *application) addRowHandler(w http.ResponseWriter, r *http.Request) {
	groupName := chi.URLParam(r, "group")
	formType := r.URL.Query().Get("form")

	app.mu.Lock()
	defer app.mu.Unlock()

	group, ok := app.groups[groupName]
	if !ok {
		http.NotFound(w, r)
		return
	}
	if formType == "" && len(group.Blueprints) == 1 {
		for name := range group.Blueprints {
			formType = name
		}
	}

	row, err := app.manager.AddRow(group, formType)
	if err != nil {
		app.logger.Warn("add row rejected",
			zap.String("group", groupName),
			zap.String("form", formType),
			zap.Error(err))
		http.Error(w, err.Error(), http.StatusConflict)
		return
	}

	html, err := app.fragments.Row(row)
	if err != nil {
		app.logger.Error("render row", zap.Error(err))
		http.Error(w, "render failed", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Header().Set("X-Total-Rows", strconv.Itoa(group.TotalRows))
	w.Header().Set("X-Add-Enabled", strconv.FormatBool(group.AddEnabled))
	w.Write(html)
}

func (app *application) toggleDeletionHandler(w http.ResponseWriter, r *http.Request) {
	groupName := chi.URLParam(r, "group")
	index, err := strconv.Atoi(chi.URLParam(r, "index"))
	if err != nil {
		http.NotFound(w, r)
		return
	}

	app.mu.Lock()
	defer app.mu.Unlock()

	group, ok := app.groups[groupName]
	if !ok || index < 0 || index >= len(group.Rows) {
		http.NotFound(w, r)
		return
	}

	row := group.Rows[index]
	app.manager.ToggleRowDeletion(row)

	html, err := app.fragments.Row(row)
	if err != nil {
		app.logger.Error("render row", zap.Error(err))
		http.Error(w, "render failed", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Write(html)
}

func buildLogger(level string) (*zap.Logger, error) {
	var zapLevel zapcore.Level
	switch level {
	case "debug":
		zapLevel = zapcore.DebugLevel
	case "warn":
		zapLevel = zapcore.WarnLevel
	case "error":
		zapLevel = zapcore.ErrorLevel
	default:
		zapLevel = zapcore.InfoLevel
	}
	config := zap.NewProductionConfig()
	config.Level = zap.NewAtomicLevelAt(zapLevel)
	return config.Build()
}

// seedStore holds demonstration transcriptions until a real backend is
// plugged in via the transcribe.Store interface.
func seedStore() transcribe.Store {
	return memoryStore{
		1: {
			{PK: 11, Order: 0, Text: "<p>First page of the record.</p>"},
			{PK: 12, Order: 1, Text: "<p>Second page of the record.</p>"},
		},
	}
}

type memoryStore map[int64][]transcribe.Transcription

func (s memoryStore) Transcriptions(_ context.Context, recordID int64) ([]transcribe.Transcription, error) {
	return s[recordID], nil
}
