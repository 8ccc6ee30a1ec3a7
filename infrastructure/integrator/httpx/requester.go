// Package httpx é o transporte compartilhado pelos adaptadores de plataforma.
package httpx

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"
	"github.com/sethvargo/go-retry"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/ads-ops-api/internal/domain"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

type Options struct {
	Timeout time.Duration
	Retries uint64
	Backoff time.Duration
	// Client substitui o http.Client padrão, usado com oauth2
	Client *http.Client
}

type Response struct {
	StatusCode int
	Header     http.Header
	Body       []byte
}

// OK indica status 2xx
func (r *Response) OK() bool {
	return r.StatusCode >= 200 && r.StatusCode < 300
}

func (r *Response) Decode(out any) error {
	if err := json.Unmarshal(r.Body, out); err != nil {
		return errors.Wrapf(domain.ErrUpstream, "invalid response body: %v", err)
	}
	return nil
}

// Requester executa chamadas HTTP de uma plataforma. Apenas GETs são repetidos;
// verbos que alteram estado nunca são reenviados.
type Requester struct {
	platform domain.Platform
	client   *http.Client
	retries  uint64
	backoff  time.Duration
}

func NewRequester(p domain.Platform, opts Options) *Requester {
	client := opts.Client
	if client == nil {
		client = &http.Client{}
	}
	if opts.Timeout > 0 {
		client.Timeout = opts.Timeout
	}

	backoff := opts.Backoff
	if backoff <= 0 {
		backoff = 500 * time.Millisecond
	}

	return &Requester{
		platform: p,
		client:   client,
		retries:  opts.Retries,
		backoff:  backoff,
	}
}

// Get faz um GET em endpoint com os parâmetros informados
func (r *Requester) Get(ctx context.Context, endpoint string, params url.Values, header http.Header) (*Response, error) {
	if len(params) > 0 {
		endpoint += "?" + params.Encode()
	}
	return r.Do(ctx, http.MethodGet, endpoint, header, nil)
}

// PostJSON serializa payload e envia em um POST
func (r *Requester) PostJSON(ctx context.Context, endpoint string, payload any, header http.Header) (*Response, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao serializar payload")
	}

	if header == nil {
		header = http.Header{}
	}
	header.Set("Content-Type", "application/json")

	return r.Do(ctx, http.MethodPost, endpoint, header, body)
}

// PostForm envia parâmetros no formato application/x-www-form-urlencoded
func (r *Requester) PostForm(ctx context.Context, endpoint string, form url.Values, header http.Header) (*Response, error) {
	if header == nil {
		header = http.Header{}
	}
	header.Set("Content-Type", "application/x-www-form-urlencoded")

	return r.Do(ctx, http.MethodPost, endpoint, header, []byte(form.Encode()))
}

// Do devolve a resposta para qualquer status abaixo de 500, exceto 429.
// 429 vira ErrRateLimited e 5xx vira ErrUpstream.
func (r *Requester) Do(ctx context.Context, method, endpoint string, header http.Header, body []byte) (*Response, error) {
	if method != http.MethodGet {
		return r.once(ctx, method, endpoint, header, body)
	}

	var resp *Response
	backoff := retry.WithMaxRetries(r.retries, retry.NewExponential(r.backoff))

	attempt := 0
	err := retry.Do(ctx, backoff, func(ctx context.Context) error {
		attempt++

		var err error
		resp, err = r.once(ctx, method, endpoint, header, body)
		if err == nil {
			return nil
		}
		if ctx.Err() != nil {
			return err
		}

		logrus.WithFields(logrus.Fields{
			"platform": r.platform,
			"attempt":  attempt,
			"error":    err,
		}).Warn("Falha na consulta à plataforma, tentando novamente")

		return retry.RetryableError(err)
	})
	if err != nil {
		return nil, err
	}

	return resp, nil
}

func (r *Requester) once(ctx context.Context, method, endpoint string, header http.Header, body []byte) (*Response, error) {
	var reader io.Reader
	if body != nil {
		reader = bytes.NewReader(body)
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, reader)
	if err != nil {
		return nil, errors.Wrapf(err, "erro ao criar a requisição %s", method)
	}
	for k, values := range header {
		for _, v := range values {
			req.Header.Add(k, v)
		}
	}

	res, err := r.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %s %s: %v", domain.ErrUpstream, method, req.URL.Path, err)
	}
	defer res.Body.Close()

	data, err := io.ReadAll(res.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: reading response: %v", domain.ErrUpstream, err)
	}

	switch {
	case res.StatusCode == http.StatusTooManyRequests:
		return nil, fmt.Errorf("%w: %s %s", domain.ErrRateLimited, method, req.URL.Path)
	case res.StatusCode >= http.StatusInternalServerError:
		return nil, fmt.Errorf("%w: %s %s returned %d: %s", domain.ErrUpstream, method, req.URL.Path, res.StatusCode, truncate(data))
	}

	return &Response{
		StatusCode: res.StatusCode,
		Header:     res.Header,
		Body:       data,
	}, nil
}

func truncate(body []byte) string {
	const limit = 256
	if len(body) > limit {
		return string(body[:limit]) + "..."
	}
	return string(body)
}
