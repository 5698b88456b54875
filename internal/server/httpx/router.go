// Package httpx exposes the registration and login operations over HTTP
// with JSON bodies.
package httpx

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/dmitrijs2005/gophauth/internal/common"
	"github.com/dmitrijs2005/gophauth/internal/logging"
	"github.com/dmitrijs2005/gophauth/internal/server/validation"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Registrar issues and redeems verification codes.
type Registrar interface {
	IssueCode(ctx context.Context, identifier string) error
	Redeem(ctx context.Context, identifier, name, password string, code uint32) error
}

// Authenticator checks user credentials.
type Authenticator interface {
	Authenticate(ctx context.Context, identifier, password string) error
}

const (
	healthCheckTimeout = 2 * time.Second
	maxBodyBytes       = 1 << 16
)

// Router wires HTTP endpoints to services.
type Router struct {
	mux      *http.ServeMux
	logger   logging.Logger
	reg      Registrar
	login    Authenticator
	mode     validation.Mode
	dbHealth func(context.Context) error
	metrics  *metrics
	gatherer prometheus.Gatherer
}

// NewRouter assembles routes with dependencies. registry receives the HTTP
// metrics and is served on /metrics; nil uses the default Prometheus registry.
func NewRouter(logger logging.Logger, reg Registrar, login Authenticator, mode validation.Mode, dbHealth func(context.Context) error, registry *prometheus.Registry) *Router {
	var (
		registerer prometheus.Registerer = prometheus.DefaultRegisterer
		gatherer   prometheus.Gatherer   = prometheus.DefaultGatherer
	)
	if registry != nil {
		registerer, gatherer = registry, registry
	}

	r := &Router{
		mux:      http.NewServeMux(),
		logger:   logger.With("module", "http"),
		reg:      reg,
		login:    login,
		mode:     mode,
		dbHealth: dbHealth,
		metrics:  newMetrics(registerer),
		gatherer: gatherer,
	}
	r.register()
	return r
}

// ServeHTTP delegates to underlying mux.
func (r *Router) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	r.mux.ServeHTTP(w, req)
}

func (r *Router) register() {
	r.mux.HandleFunc("/send_code", r.audit("/send_code", r.handleSendCode))
	r.mux.HandleFunc("/register", r.audit("/register", r.handleRegister))
	r.mux.HandleFunc("/login", r.audit("/login", r.handleLogin))

	// legacy paths, one per identifier scheme
	switch r.mode {
	case validation.ModePhone:
		r.mux.HandleFunc("/sendsmscode", r.audit("/sendsmscode", r.handleSendCode))
	default:
		r.mux.HandleFunc("/send_email_code", r.audit("/send_email_code", r.handleSendCode))
	}

	r.mux.HandleFunc("/healthz", r.audit("/healthz", r.handleHealthz))
	r.mux.Handle("/metrics", promhttp.HandlerFor(r.gatherer, promhttp.HandlerOpts{}))
}

// request carries every accepted field. Older clients name the identifier
// email_address or phone_number and the code email_code or sms_code.
type request struct {
	Identifier   string  `json:"identifier"`
	EmailAddress string  `json:"email_address"`
	PhoneNumber  string  `json:"phone_number"`
	Name         string  `json:"name"`
	Password     string  `json:"password"`
	Code         *uint32 `json:"code"`
	EmailCode    *uint32 `json:"email_code"`
	SMSCode      *uint32 `json:"sms_code"`
}

func (p *request) identifier() string {
	for _, v := range []string{p.Identifier, p.EmailAddress, p.PhoneNumber} {
		if v != "" {
			return v
		}
	}
	return ""
}

// code reports false when the payload carries none of the code fields.
func (p *request) code() (uint32, bool) {
	for _, v := range []*uint32{p.Code, p.EmailCode, p.SMSCode} {
		if v != nil {
			return *v, true
		}
	}
	return 0, false
}

func (r *Router) decode(w http.ResponseWriter, req *http.Request) (*request, bool) {
	if req.Method != http.MethodPost {
		r.methodNotAllowed(w)
		return nil, false
	}
	var payload request
	if err := json.NewDecoder(http.MaxBytesReader(w, req.Body, maxBodyBytes)).Decode(&payload); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body")
		return nil, false
	}
	return &payload, true
}

func (r *Router) handleSendCode(w http.ResponseWriter, req *http.Request) {
	payload, ok := r.decode(w, req)
	if !ok {
		return
	}
	err := r.reg.IssueCode(req.Context(), payload.identifier())
	r.respond(w, req, "send_code", err)
}

func (r *Router) handleRegister(w http.ResponseWriter, req *http.Request) {
	payload, ok := r.decode(w, req)
	if !ok {
		return
	}
	code, ok := payload.code()
	if !ok {
		r.respond(w, req, "register", common.NewValidationError("code", common.ErrInvalidCode))
		return
	}
	err := r.reg.Redeem(req.Context(), payload.identifier(), payload.Name, payload.Password, code)
	r.respond(w, req, "register", err)
}

func (r *Router) handleLogin(w http.ResponseWriter, req *http.Request) {
	payload, ok := r.decode(w, req)
	if !ok {
		return
	}
	err := r.login.Authenticate(req.Context(), payload.identifier(), payload.Password)
	r.respond(w, req, "login", err)
}

// respond maps a service result onto the response. Client faults carry the
// error text; transport and server faults are logged and answered with a
// fixed message.
func (r *Router) respond(w http.ResponseWriter, req *http.Request, operation string, err error) {
	r.metrics.recordOutcome(operation, Outcome(err))
	switch {
	case err == nil:
		writeOK(w)
	case errors.Is(err, common.ErrTransport):
		r.logger.Warn(req.Context(), "delivery failed", "operation", operation, "error", err)
		writeError(w, http.StatusBadRequest, common.ErrTransport.Error())
	case common.IsClientError(err):
		writeError(w, http.StatusBadRequest, err.Error())
	default:
		r.logger.Error(req.Context(), "request failed", "operation", operation, "error", err)
		writeError(w, http.StatusInternalServerError, common.ErrorInternal.Error())
	}
}

// Outcome names the result of an operation for metrics.
func Outcome(err error) string {
	switch {
	case err == nil:
		return "ok"
	case errors.Is(err, common.ErrInvalidIdentifier),
		errors.Is(err, common.ErrInvalidName),
		errors.Is(err, common.ErrInvalidPassword),
		errors.Is(err, common.ErrInvalidCode):
		return "invalid_argument"
	case errors.Is(err, common.ErrExpiredCode):
		return "expired_code"
	case errors.Is(err, common.ErrWrongCode):
		return "wrong_code"
	case errors.Is(err, common.ErrDuplicateIdentifier):
		return "duplicate"
	case errors.Is(err, common.ErrWrongCredentials):
		return "wrong_credentials"
	case errors.Is(err, common.ErrTransport):
		return "transport_error"
	case errors.Is(err, common.ErrStore):
		return "store_error"
	}
	return "internal_error"
}

func (r *Router) handleHealthz(w http.ResponseWriter, req *http.Request) {
	if req.Method != http.MethodGet {
		r.methodNotAllowed(w)
		return
	}
	components := make(map[string]any)
	status := "ok"
	if r.dbHealth != nil {
		ctx, cancel := context.WithTimeout(req.Context(), healthCheckTimeout)
		defer cancel()
		if err := r.dbHealth(ctx); err != nil {
			status = "degraded"
			components["database"] = map[string]any{
				"status": "down",
				"error":  err.Error(),
			}
		} else {
			components["database"] = map[string]any{"status": "up"}
		}
	}
	code := http.StatusOK
	if status != "ok" {
		code = http.StatusServiceUnavailable
	}
	writeJSON(w, code, map[string]any{
		"status":     status,
		"components": components,
		"timestamp":  time.Now().UTC().Format(time.RFC3339Nano),
	})
}

func (r *Router) methodNotAllowed(w http.ResponseWriter) {
	writeError(w, http.StatusMethodNotAllowed, "method not allowed")
}
