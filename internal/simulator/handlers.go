package simulator

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"strings"
	"time"

	go_json "github.com/goccy/go-json"
	"github.com/gorilla/mux"

	"github.com/pixeldock/pixelctl/internal/xerrors"
	"github.com/pixeldock/pixelctl/internal/xhttp"
	"github.com/pixeldock/pixelctl/internal/xslog"
)

type Server struct {
	cfg    Config
	store  *Store
	engine *Engine
	feeds  *Feeds
	tokens *TokenStore
	logger *slog.Logger
}

func NewServer(cfg Config, store *Store, engine *Engine, feeds *Feeds, logger *slog.Logger) *Server {
	return &Server{
		cfg:    cfg,
		store:  store,
		engine: engine,
		feeds:  feeds,
		tokens: NewTokenStore(),
		logger: logger,
	}
}

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type tokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

func (s *Server) handleLogin(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := go_json.NewDecoder(r.Body).Decode(&req); err != nil {
		xerrors.WriteError(r.Context(), w, xerrors.BadRequest(xerrors.WithMessage("invalid request body"), xerrors.WithCause(err)))
		return
	}

	if req.Username != s.cfg.AdminUsername || req.Password != s.cfg.AdminPassword {
		xerrors.WriteError(r.Context(), w, xerrors.Unauthorized(xerrors.WithMessage("Incorrect username or password")))
		return
	}

	xhttp.WriteOK(w, tokenResponse{
		AccessToken: s.tokens.Issue(),
		TokenType:   "bearer",
	})
}

func (s *Server) handleListModules(w http.ResponseWriter, r *http.Request) {
	modules, err := s.store.List(r.Context())
	if err != nil {
		xerrors.WriteError(r.Context(), w, xerrors.Internal(xerrors.WithCause(err)))
		return
	}
	if modules == nil {
		modules = []Module{}
	}

	xslog.FromContext(r.Context()).DebugContext(r.Context(), "modules listed", xslog.Count(len(modules)))
	xhttp.WriteOK(w, modules)
}

func (s *Server) handleUpdateModule(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
	if err != nil {
		xerrors.WriteError(r.Context(), w, xerrors.BadRequest(xerrors.WithMessage("invalid module id")))
		return
	}

	var update ModuleUpdate
	if err := go_json.NewDecoder(r.Body).Decode(&update); err != nil {
		xerrors.WriteError(r.Context(), w, xerrors.BadRequest(xerrors.WithMessage("invalid request body"), xerrors.WithCause(err)))
		return
	}

	if update.DurationSeconds < 1 || update.DurationSeconds > 300 {
		xerrors.WriteError(r.Context(), w, xerrors.Unprocessable(xerrors.WithMessage("duration_seconds must be between 1 and 300")))
		return
	}
	if update.Settings == nil {
		update.Settings = map[string]any{}
	}

	module, err := s.store.Update(r.Context(), id, update)
	if errors.Is(err, ErrModuleNotFound) {
		xerrors.WriteError(r.Context(), w, xerrors.NotFound(xerrors.WithMessage("Module not found")))
		return
	}
	if err != nil {
		xerrors.WriteError(r.Context(), w, xerrors.Internal(xerrors.WithCause(err)))
		return
	}

	xslog.FromContext(r.Context()).InfoContext(r.Context(), "module updated",
		xslog.ModuleID(module.ID),
		xslog.ModuleKey(module.Key),
	)
	xhttp.WriteOK(w, module)
}

type textRequest struct {
	Text    string `json:"text"`
	Seconds int    `json:"seconds"`
}

func (s *Server) handleText(w http.ResponseWriter, r *http.Request) {
	var req textRequest
	if err := go_json.NewDecoder(r.Body).Decode(&req); err != nil {
		xerrors.WriteError(r.Context(), w, xerrors.BadRequest(xerrors.WithMessage("invalid request body"), xerrors.WithCause(err)))
		return
	}

	if strings.TrimSpace(req.Text) == "" {
		xerrors.WriteError(r.Context(), w, xerrors.Unprocessable(xerrors.WithMessage("text is required")))
		return
	}
	if req.Seconds == 0 {
		req.Seconds = 5
	}
	if req.Seconds < 1 || req.Seconds > 300 {
		xerrors.WriteError(r.Context(), w, xerrors.Unprocessable(xerrors.WithMessage("seconds must be between 1 and 300")))
		return
	}

	s.engine.ShowText(req.Text, req.Seconds)
	xhttp.WriteOK(w, map[string]bool{"ok": true})
}

type brightnessRequest struct {
	Brightness int `json:"brightness"`
}

func (s *Server) handleBrightness(w http.ResponseWriter, r *http.Request) {
	var req brightnessRequest
	if err := go_json.NewDecoder(r.Body).Decode(&req); err != nil {
		xerrors.WriteError(r.Context(), w, xerrors.BadRequest(xerrors.WithMessage("invalid request body"), xerrors.WithCause(err)))
		return
	}

	if req.Brightness < 0 || req.Brightness > 255 {
		xerrors.WriteError(r.Context(), w, xerrors.Unprocessable(xerrors.WithMessage("brightness must be between 0 and 255")))
		return
	}

	s.engine.SetBrightness(req.Brightness)
	xhttp.WriteOK(w, map[string]bool{"ok": true})
}

type drawRequest struct {
	Pixels  [][]int `json:"pixels"`
	Seconds int     `json:"seconds"`
}

func (s *Server) handleDraw(w http.ResponseWriter, r *http.Request) {
	var req drawRequest
	if err := go_json.NewDecoder(r.Body).Decode(&req); err != nil {
		xerrors.WriteError(r.Context(), w, xerrors.BadRequest(xerrors.WithMessage("invalid request body"), xerrors.WithCause(err)))
		return
	}

	if len(req.Pixels) != GridHeight {
		xerrors.WriteError(r.Context(), w, xerrors.Unprocessable(xerrors.WithMessage("pixels must be an 8x32 matrix")))
		return
	}
	for _, row := range req.Pixels {
		if len(row) != GridWidth {
			xerrors.WriteError(r.Context(), w, xerrors.Unprocessable(xerrors.WithMessage("pixels must be an 8x32 matrix")))
			return
		}
	}
	if req.Seconds == 0 {
		req.Seconds = 10
	}
	if req.Seconds < 1 || req.Seconds > 300 {
		xerrors.WriteError(r.Context(), w, xerrors.Unprocessable(xerrors.WithMessage("seconds must be between 1 and 300")))
		return
	}

	s.engine.Draw(req.Pixels, req.Seconds)
	xhttp.WriteOK(w, map[string]bool{"ok": true})
}

type statusResponse struct {
	Display DisplayStatus `json:"display"`
	Data    DataStatus    `json:"data"`
}

func (s *Server) handleStatus(w http.ResponseWriter, r *http.Request) {
	xhttp.WriteOK(w, statusResponse{
		Display: s.engine.Status(time.Now()),
		Data:    s.feeds.Status(),
	})
}

func (s *Server) handlePreview(w http.ResponseWriter, r *http.Request) {
	xhttp.WriteOK(w, s.engine.Snapshot())
}

type patternRequest struct {
	Pattern    string `json:"pattern"`
	Seconds    int    `json:"seconds"`
	IntervalMS int    `json:"interval_ms"`
}

func (s *Server) handleStartPattern(w http.ResponseWriter, r *http.Request) {
	var req patternRequest
	if err := go_json.NewDecoder(r.Body).Decode(&req); err != nil {
		xerrors.WriteError(r.Context(), w, xerrors.BadRequest(xerrors.WithMessage("invalid request body"), xerrors.WithCause(err)))
		return
	}

	if !ValidPattern(req.Pattern) {
		xerrors.WriteError(r.Context(), w, xerrors.Unprocessable(xerrors.WithMessage("unknown pattern: "+req.Pattern)))
		return
	}
	if req.Seconds == 0 {
		req.Seconds = 10
	}
	if req.Seconds < 1 || req.Seconds > 300 {
		xerrors.WriteError(r.Context(), w, xerrors.Unprocessable(xerrors.WithMessage("seconds must be between 1 and 300")))
		return
	}
	if req.IntervalMS == 0 {
		req.IntervalMS = 120
	}
	if req.IntervalMS < 30 || req.IntervalMS > 2000 {
		xerrors.WriteError(r.Context(), w, xerrors.Unprocessable(xerrors.WithMessage("interval_ms must be between 30 and 2000")))
		return
	}

	s.engine.StartPattern(req.Pattern, req.Seconds, req.IntervalMS)
	xslog.FromContext(r.Context()).InfoContext(r.Context(), "pattern started", xslog.Pattern(req.Pattern))
	xhttp.WriteOK(w, map[string]bool{"ok": true})
}

func (s *Server) handleStopPattern(w http.ResponseWriter, r *http.Request) {
	s.engine.StopPattern()
	xhttp.WriteOK(w, map[string]bool{"ok": true})
}

func (s *Server) handleMapCoordinate(w http.ResponseWriter, r *http.Request) {
	x, errX := strconv.Atoi(r.URL.Query().Get("x"))
	y, errY := strconv.Atoi(r.URL.Query().Get("y"))
	if errX != nil || errY != nil {
		xerrors.WriteError(r.Context(), w, xerrors.BadRequest(xerrors.WithMessage("x and y query parameters are required")))
		return
	}
	if !InBounds(x, y) {
		xerrors.WriteError(r.Context(), w, xerrors.Unprocessable(xerrors.WithMessage("coordinate out of bounds")))
		return
	}

	xhttp.WriteOK(w, map[string]any{
		"ok":      true,
		"mapping": MapCoordinate(x, y),
	})
}

func (s *Server) handleDHT(w http.ResponseWriter, r *http.Request) {
	xhttp.WriteOK(w, s.feeds.DHTDetail())
}

func (s *Server) handleDHTReadOnce(w http.ResponseWriter, r *http.Request) {
	xhttp.WriteOK(w, s.feeds.ReadDHTOnce(time.Now()))
}

func (s *Server) handleGPIOLevel(w http.ResponseWriter, r *http.Request) {
	xhttp.WriteOK(w, s.feeds.GPIOLevel())
}
