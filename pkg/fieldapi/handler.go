package fieldapi

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"golang.org/x/text/language"

	"github.com/dmitrymomot/numberfield/pkg/httpserver"
	"github.com/dmitrymomot/numberfield/pkg/locale"
	"github.com/dmitrymomot/numberfield/pkg/logger"
	"github.com/dmitrymomot/numberfield/pkg/numberfield"
	"github.com/dmitrymomot/numberfield/pkg/preset"
	"github.com/dmitrymomot/numberfield/pkg/requestid"
	"github.com/dmitrymomot/numberfield/pkg/validator"
)

const maxBodySize = 64 << 10

// Handler exposes the number field engine over HTTP so a remote surface can
// delegate keystroke decisions, commits and formatting.
type Handler struct {
	presets   *preset.Set
	defaults  numberfield.Config
	errorText string
	formatter *numberfield.Formatter
	logger    *slog.Logger
	locales   []language.Tag
}

// Option configures a Handler.
type Option func(*Handler)

// WithPresets sets the presets requests may refer to by name.
func WithPresets(s *preset.Set) Option {
	return func(h *Handler) {
		if s != nil {
			h.presets = s
		}
	}
}

// WithDefaults sets the policy used when a request names neither a preset
// nor a config. Its separators are replaced by those of the request locale.
func WithDefaults(cfg numberfield.Config) Option {
	return func(h *Handler) { h.defaults = cfg }
}

// WithErrorText sets the message reported for invalid commits.
func WithErrorText(text string) Option {
	return func(h *Handler) { h.errorText = text }
}

// WithFormatter replaces the process-wide Formatter.
func WithFormatter(f *numberfield.Formatter) Option {
	return func(h *Handler) {
		if f != nil {
			h.formatter = f
		}
	}
}

// WithLogger sets the request logger.
func WithLogger(l *slog.Logger) Option {
	return func(h *Handler) {
		if l != nil {
			h.logger = l
		}
	}
}

// WithLocales sets the locales negotiated from Accept-Language; the first
// one is the fallback.
func WithLocales(tags ...language.Tag) Option {
	return func(h *Handler) {
		if len(tags) > 0 {
			h.locales = tags
		}
	}
}

// New returns a Handler with the built-in presets and English defaults.
func New(opts ...Option) *Handler {
	h := &Handler{
		presets:   preset.Default(),
		defaults:  numberfield.ConfigFor(locale.DefaultTag),
		errorText: numberfield.DefaultErrorText,
		formatter: numberfield.Shared(),
		logger:    logger.Discard(),
		locales: []language.Tag{
			language.English, language.German, language.French,
			language.Italian, language.Spanish, language.Russian,
		},
	}
	for _, opt := range opts {
		opt(h)
	}
	h.logger = h.logger.With(logger.Component("fieldapi"))
	return h
}

// Router returns the routes of the API.
//
//	POST /keypress  keystroke decision
//	POST /commit    authoritative parse, validation and formatting
//	POST /format    canonical value to display text
//	GET  /symbols   separators of the request locale
//	GET  /presets   preset names
//	GET  /health    readiness probe
func (h *Handler) Router() chi.Router {
	r := chi.NewRouter()
	r.Use(requestid.Middleware)
	r.Use(h.logRequests)
	r.Use(middleware.Recoverer)
	r.Use(locale.Middleware(h.locales))

	r.Post("/keypress", h.keypress)
	r.Post("/commit", h.commit)
	r.Post("/format", h.format)
	r.Get("/symbols", h.symbols)
	r.Get("/presets", h.listPresets)
	r.Get("/health", httpserver.HealthCheckHandler(h.logger, httpserver.HealthCheck{
		Name:  "formatter",
		Check: h.checkFormatter,
	}))
	return r
}

func (h *Handler) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)
		h.logger.InfoContext(r.Context(), "request",
			slog.String("method", r.Method),
			slog.String("path", r.URL.Path),
			slog.Int("status", ww.Status()),
			logger.Duration(time.Since(start)),
		)
	})
}

// resolve picks the field policy of a request.
func (h *Handler) resolve(ctx context.Context, p policy) (numberfield.Config, error) {
	switch {
	case p.Preset != "":
		return h.presets.Config(p.Preset)
	case p.Config != nil:
		inline := *p.Config
		if inline.Locale == "" {
			inline.Locale = locale.FromContext(ctx).String()
		}
		if err := inline.Validate(); err != nil {
			return numberfield.Config{}, fmt.Errorf("%w: %w", preset.ErrInvalidPreset, err)
		}
		return inline.Config(), nil
	default:
		cfg := h.defaults
		symbols := locale.SymbolsFor(locale.FromContext(ctx))
		cfg.DecimalSeparator = symbols.Decimal
		cfg.GroupingSeparator = symbols.Grouping
		return cfg, nil
	}
}

func (h *Handler) keypress(w http.ResponseWriter, r *http.Request) {
	var req keypressRequest
	if !h.bind(w, r, &req) {
		return
	}
	cfg, ok := h.policy(w, r, req.policy)
	if !ok {
		return
	}
	ev, err := req.keyPress()
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid_key", err)
		return
	}

	d := numberfield.OnProposedEdit(ev, cfg)
	h.logger.DebugContext(r.Context(), "keystroke decided",
		slog.String("action", d.Action.String()),
		slog.String("reason", d.Reason.String()),
		logger.Input(req.Text),
	)
	writeData(w, newDecisionResponse(d))
}

func (h *Handler) commit(w http.ResponseWriter, r *http.Request) {
	var req commitRequest
	if !h.bind(w, r, &req) {
		return
	}
	cfg, ok := h.policy(w, r, req.policy)
	if !ok {
		return
	}

	field := numberfield.NewField(
		numberfield.WithConfig(cfg),
		numberfield.WithFormatter(h.formatter),
		numberfield.WithErrorText(h.errorText),
		numberfield.WithRequired(req.Required),
		numberfield.WithLogger(h.logger),
	)
	field.SetValueIgnoreReadOnly(req.Previous)

	res, err := field.Commit(req.Text)
	out := commitResponse{
		Applied:   err == nil,
		Valid:     res.Valid,
		Canonical: res.Canonical,
		Text:      field.Value(),
		Formatted: field.FormattedValue(),
	}
	if verrs := validator.ExtractValidationErrors(res.Err); verrs != nil {
		out.Errors = verrs.Details()
	}

	if errors.Is(err, numberfield.ErrUnparseable) {
		writeJSON(w, http.StatusUnprocessableEntity, envelope{
			Data:  out,
			Error: &errorDetail{Code: "unparseable", Message: err.Error()},
		})
		return
	}
	writeData(w, out)
}

func (h *Handler) format(w http.ResponseWriter, r *http.Request) {
	var req formatRequest
	if !h.bind(w, r, &req) {
		return
	}
	cfg, ok := h.policy(w, r, req.policy)
	if !ok {
		return
	}

	formatted, err := h.formatter.Format(req.Value, cfg)
	if err != nil {
		writeError(w, http.StatusUnprocessableEntity, "format_error", err)
		return
	}
	writeData(w, formatResponse{Formatted: formatted})
}

func (h *Handler) symbols(w http.ResponseWriter, r *http.Request) {
	tag := locale.FromContext(r.Context())
	s := locale.SymbolsFor(tag)
	writeData(w, symbolsResponse{
		Locale:   tag.String(),
		Decimal:  string(s.Decimal),
		Grouping: string(s.Grouping),
	})
}

func (h *Handler) listPresets(w http.ResponseWriter, _ *http.Request) {
	writeData(w, presetsResponse{Presets: h.presets.Names()})
}

func (h *Handler) checkFormatter(context.Context) error {
	const probe = "1234.5"
	got, err := h.formatter.Format(probe, numberfield.ConfigFor(language.English))
	if err != nil {
		return err
	}
	if got != "1,234.5" {
		return fmt.Errorf("formatter rendered %q as %q", probe, got)
	}
	return nil
}

func (h *Handler) bind(w http.ResponseWriter, r *http.Request, v any) bool {
	if err := decodeJSON(r, v); err != nil {
		status := http.StatusBadRequest
		if errors.Is(err, ErrUnsupportedMediaType) {
			status = http.StatusUnsupportedMediaType
		}
		writeError(w, status, "invalid_request", err)
		return false
	}
	return true
}

func (h *Handler) policy(w http.ResponseWriter, r *http.Request, p policy) (numberfield.Config, bool) {
	cfg, err := h.resolve(r.Context(), p)
	switch {
	case errors.Is(err, preset.ErrUnknownPreset):
		writeError(w, http.StatusNotFound, "unknown_preset", err)
		return cfg, false
	case err != nil:
		writeError(w, http.StatusBadRequest, "invalid_config", err)
		return cfg, false
	}
	return cfg, true
}
