// Package runner executes saved requests against their target services.
// Before sending, every occurrence of {{VAR}} in the URL, header values and
// body is replaced with the matching variable of the active environment.
package runner

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"regexp"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/apivault/apivault/internal/logger"
	"github.com/apivault/apivault/models"
)

var placeholderPattern = regexp.MustCompile(`\{\{([A-Za-z0-9_.-]+)\}\}`)

// Runner sends saved requests and captures their responses.
type Runner struct {
	client *resty.Client
	logger *logger.Logger
}

// New creates a Runner with the given per-request timeout. Zero means
// 30 seconds.
func New(timeout time.Duration, log *logger.Logger) *Runner {
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	if log == nil {
		log = logger.Nop()
	}
	return &Runner{client: resty.New().SetTimeout(timeout), logger: log}
}

// Execute sends the request and captures status, headers, body, duration and
// size. env may be nil, in which case placeholders are sent verbatim.
func (r *Runner) Execute(ctx context.Context, req models.HTTPRequest, env *models.Environment) (models.HTTPResponse, error) {
	var vars models.Headers
	if env != nil {
		vars = env.Variables
	}

	target := substitute(req.URL, vars)
	if _, err := url.ParseRequestURI(target); err != nil {
		return models.HTTPResponse{}, fmt.Errorf("invalid request url %q: %w", target, err)
	}

	call := r.client.R().SetContext(ctx)
	for name, value := range req.Headers {
		call.SetHeader(name, substitute(value, vars))
	}
	if err := setBody(call, req.Body, vars); err != nil {
		return models.HTTPResponse{}, err
	}

	start := time.Now()
	resp, err := call.Execute(req.Method, target)
	if err != nil {
		r.logger.Err(err).Str("func", "Runner.Execute").
			Str("method", req.Method).Str("url", target).Msg("request failed")
		return models.HTTPResponse{}, fmt.Errorf("execute %s %s: %w", req.Method, target, err)
	}

	headers := models.Headers{}
	for name, values := range resp.Header() {
		if len(values) > 0 {
			headers[name] = values[0]
		}
	}

	body := resp.Body()
	return models.HTTPResponse{
		Status:       resp.StatusCode(),
		StatusText:   resp.Status(),
		Headers:      headers,
		Body:         string(body),
		ResponseTime: time.Since(start).Milliseconds(),
		Size:         len(body),
	}, nil
}

func setBody(call *resty.Request, body *models.RequestBody, vars models.Headers) error {
	if body == nil {
		return nil
	}

	switch body.Kind {
	case models.BodyRaw:
		contentType := body.ContentType
		if contentType == "" {
			contentType = "text/plain"
		}
		call.SetHeader("Content-Type", contentType)
		call.SetBody(substitute(body.Content, vars))
	case models.BodyJSON:
		payload := substitute(string(body.JSON), vars)
		if !json.Valid([]byte(payload)) {
			return fmt.Errorf("request body is not valid json after substitution")
		}
		call.SetHeader("Content-Type", "application/json")
		call.SetBody(payload)
	case models.BodyFormData:
		form := make(map[string]string, len(body.Form))
		for name, value := range body.Form {
			form[name] = substitute(value, vars)
		}
		call.SetFormData(form)
	case models.BodyURLEncoded:
		form := make(map[string]string, len(body.Form))
		for name, value := range body.Form {
			form[name] = substitute(value, vars)
		}
		call.SetHeader("Content-Type", "application/x-www-form-urlencoded")
		call.SetFormData(form)
	default:
		return fmt.Errorf("unknown request body kind %q", body.Kind)
	}
	return nil
}

// substitute replaces {{VAR}} placeholders with environment variables.
// Unknown placeholders are left untouched so the mistake is visible in the
// outgoing request.
func substitute(s string, vars models.Headers) string {
	if len(vars) == 0 {
		return s
	}
	return placeholderPattern.ReplaceAllStringFunc(s, func(match string) string {
		name := placeholderPattern.FindStringSubmatch(match)[1]
		if value, ok := vars[name]; ok {
			return value
		}
		return match
	})
}
