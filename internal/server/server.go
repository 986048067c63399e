// Package server implements the stanza dev preview server: it rebuilds the
// docs site on content changes and pushes reload messages to connected
// browsers over a websocket.
package server

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/coder/websocket"

	"github.com/stanza-dev/stanza/internal/config"
	"github.com/stanza-dev/stanza/internal/logging"
	"github.com/stanza-dev/stanza/internal/site"
	"github.com/stanza-dev/stanza/internal/watcher"
)

// reloadMessage is the JSON frame pushed to browsers on rebuild.
type reloadMessage struct {
	Type string `json:"type"`
	Time int64  `json:"time"`
}

// PreviewServer serves the built site with live reload.
type PreviewServer struct {
	cfg    *config.Config
	gen    *site.Generator
	logger logging.Logger

	mu      sync.Mutex
	clients map[*websocket.Conn]struct{}
}

// New creates a preview server for the given configuration.
func New(cfg *config.Config, logger logging.Logger) *PreviewServer {
	if logger == nil {
		logger = logging.Nop()
	}
	return &PreviewServer{
		cfg: cfg,
		gen: site.NewGenerator(site.Options{
			Title:      cfg.Site.Title,
			BaseURL:    cfg.Site.BaseURL,
			ContentDir: cfg.Site.ContentDir,
			OutputDir:  cfg.Site.OutputDir,
		}, logger),
		logger:  logger.WithComponent("server"),
		clients: make(map[*websocket.Conn]struct{}),
	}
}

// Handler returns the HTTP mux: the static site plus the /ws reload
// endpoint.
func (s *PreviewServer) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/ws", s.handleWebsocket)
	mux.Handle("/", s.withReloadScript(http.FileServer(http.Dir(s.cfg.Site.OutputDir))))
	return mux
}

// Run builds the site, starts watching the content dir, and serves until
// ctx is canceled.
func (s *PreviewServer) Run(ctx context.Context) error {
	if _, err := s.gen.Build(ctx); err != nil {
		return err
	}

	w, err := watcher.New(150*time.Millisecond, s.logger)
	if err != nil {
		return err
	}
	defer w.Close()

	if err := w.AddRecursive(s.cfg.Site.ContentDir); err != nil {
		return err
	}
	w.OnChange(func(event watcher.ChangeEvent) {
		s.logger.Info(ctx, "content changed, rebuilding", "files", len(event.Paths))
		if _, err := s.gen.Build(ctx); err != nil {
			s.logger.Error(ctx, err, "rebuild failed")
			return
		}
		s.broadcastReload(ctx)
	})
	go w.Start(ctx)

	addr := fmt.Sprintf("%s:%d", s.cfg.Server.Host, s.cfg.Server.Port)
	srv := &http.Server{Addr: addr, Handler: s.Handler()}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
	}()

	s.logger.Info(ctx, "preview server listening", "addr", addr)
	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

func (s *PreviewServer) handleWebsocket(w http.ResponseWriter, r *http.Request) {
	conn, err := websocket.Accept(w, r, nil)
	if err != nil {
		s.logger.Warn(r.Context(), err, "websocket accept failed")
		return
	}

	s.mu.Lock()
	s.clients[conn] = struct{}{}
	s.mu.Unlock()

	defer func() {
		s.mu.Lock()
		delete(s.clients, conn)
		s.mu.Unlock()
		conn.Close(websocket.StatusNormalClosure, "")
	}()

	// Block until the client goes away; reads are discarded.
	ctx := r.Context()
	for {
		if _, _, err := conn.Read(ctx); err != nil {
			return
		}
	}
}

func (s *PreviewServer) broadcastReload(ctx context.Context) {
	payload, _ := json.Marshal(reloadMessage{Type: "reload", Time: time.Now().Unix()})

	s.mu.Lock()
	conns := make([]*websocket.Conn, 0, len(s.clients))
	for c := range s.clients {
		conns = append(conns, c)
	}
	s.mu.Unlock()

	for _, c := range conns {
		writeCtx, cancel := context.WithTimeout(ctx, time.Second)
		if err := c.Write(writeCtx, websocket.MessageText, payload); err != nil {
			s.logger.Debug(ctx, "dropping stale reload client")
		}
		cancel()
	}
}

// withReloadScript injects the live-reload client into HTML responses when
// hot reload is enabled.
func (s *PreviewServer) withReloadScript(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !s.cfg.Server.HotReload || !wantsHTML(r) {
			next.ServeHTTP(w, r)
			return
		}

		rec := &bodyRecorder{header: make(http.Header)}
		next.ServeHTTP(rec, r)

		body := rec.body.String()
		if strings.Contains(rec.header.Get("Content-Type"), "text/html") &&
			strings.Contains(body, "</body>") {
			body = strings.Replace(body, "</body>", reloadScript+"</body>", 1)
		}

		for k, vals := range rec.header {
			if k == "Content-Length" {
				continue
			}
			for _, v := range vals {
				w.Header().Add(k, v)
			}
		}
		w.WriteHeader(rec.status())
		_, _ = w.Write([]byte(body))
	})
}

func wantsHTML(r *http.Request) bool {
	path := r.URL.Path
	return path == "/" || strings.HasSuffix(path, ".html") || strings.HasSuffix(path, "/")
}

const reloadScript = `<script>
(function () {
	var ws = new WebSocket("ws://" + location.host + "/ws");
	ws.onmessage = function (e) {
		var msg = JSON.parse(e.data);
		if (msg.type === "reload") location.reload();
	};
})();
</script>`

// bodyRecorder buffers a downstream response so the reload script can be
// spliced in before the body reaches the client.
type bodyRecorder struct {
	header     http.Header
	body       strings.Builder
	statusCode int
}

func (r *bodyRecorder) Header() http.Header { return r.header }

func (r *bodyRecorder) Write(b []byte) (int, error) { return r.body.Write(b) }

func (r *bodyRecorder) WriteHeader(code int) { r.statusCode = code }

func (r *bodyRecorder) status() int {
	if r.statusCode == 0 {
		return http.StatusOK
	}
	return r.statusCode
}
