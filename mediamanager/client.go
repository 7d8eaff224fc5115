package mediamanager

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/textproto"
	"net/url"
	"sort"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// DefaultTimeout bounds every request unless a different timeout is set with
// WithTimeout or WithHTTPClient.
const DefaultTimeout = 30 * time.Second

// Scheme is the Authorization header scheme used to present a credential.
// The target service instance dictates which one it expects.
type Scheme string

const (
	// SchemeToken is the custom scheme paired with ObtainToken credentials.
	SchemeToken Scheme = "Token"
	// SchemeBearer is the standard scheme paired with locally-signed tokens.
	SchemeBearer Scheme = "Bearer"
)

// uploadFieldName is the multipart field key used for every file part of an
// upload, regardless of position. The server keys on repetition of this one
// field rather than on distinct field names per file.
const uploadFieldName = "file"

// Client talks to the media management API. All methods issue exactly one
// blocking request and return once a response (or error) is available.
//
// The held access token is the only mutable state; Client is not safe for
// concurrent use while the token is being replaced. Set the credential before
// sharing a Client across goroutines.
type Client struct {
	baseURL     string
	accessToken string
	scheme      Scheme
	httpClient  *http.Client
	userAgent   string
	logger      zerolog.Logger
}

// NewClient creates a new media management API client.
func NewClient(baseURL string, logger zerolog.Logger, opts ...Option) (*Client, error) {
	if baseURL == "" {
		return nil, fmt.Errorf("%w: base URL is required", ErrInvalidArgument)
	}
	baseURL = strings.TrimRight(baseURL, "/")

	options := defaultOptions()
	for _, opt := range opts {
		opt(options)
	}

	httpClient := options.httpClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: options.timeout}
	}

	return &Client{
		baseURL:    baseURL,
		httpClient: httpClient,
		userAgent:  options.userAgent,
		logger:     logger,
	}, nil
}

// SetAccessToken installs the credential carried on subsequent requests.
func (c *Client) SetAccessToken(token string, scheme Scheme) {
	c.accessToken = token
	c.scheme = scheme
}

// url builds an endpoint URL by interpolating resource ids into the path.
func (c *Client) url(format string, args ...any) string {
	return c.baseURL + fmt.Sprintf(format, args...)
}

// requestOptions carries the transport options of a single request.
type requestOptions struct {
	query url.Values
	body  any
	form  map[string]string
	files []UploadFile
}

// do performs the HTTP request. It centralizes verb validation, error mapping
// and logging for all API operations. On success the response body is decoded
// into v; a 204 response or an empty body leaves v untouched. A nil v discards
// the payload but still requires it to be valid JSON.
func (c *Client) do(ctx context.Context, method, requestURL string, opts requestOptions, v any) error {
	switch method {
	case http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete:
	default:
		err := fmt.Errorf("%w: unsupported request method %q", ErrInvalidArgument, method)
		c.logger.Error().Err(err).Msg("Rejected API request")
		return err
	}
	if requestURL == "" {
		err := fmt.Errorf("%w: URL must be provided for the request", ErrInvalidArgument)
		c.logger.Error().Err(err).Msg("Rejected API request")
		return err
	}

	var (
		reqBody     io.Reader
		contentType = "application/json"
	)
	switch {
	case len(opts.files) > 0:
		buf, ct, err := encodeMultipart(opts.form, opts.files)
		if err != nil {
			return fmt.Errorf("failed to encode multipart body: %w", err)
		}
		reqBody = buf
		contentType = ct
	case opts.body != nil:
		data, err := json.Marshal(opts.body)
		if err != nil {
			return fmt.Errorf("failed to encode request body: %w", err)
		}
		reqBody = bytes.NewReader(data)
	}

	if len(opts.query) > 0 {
		requestURL += "?" + opts.query.Encode()
	}

	// Log the request, omitting headers and body values (either may carry
	// credentials) and file payloads.
	c.logger.Debug().
		Str("method", method).
		Str("url", requestURL).
		Strs("body_fields", bodyFieldNames(opts.body)).
		Int("form_fields", len(opts.form)).
		Int("files", len(opts.files)).
		Msg("API request")

	req, err := http.NewRequestWithContext(ctx, method, requestURL, reqBody)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Accept", "application/json")
	req.Header.Set("Content-Type", contentType)
	if c.userAgent != "" {
		req.Header.Set("User-Agent", c.userAgent)
	}
	if c.accessToken != "" {
		req.Header.Set("Authorization", fmt.Sprintf("%s %s", c.scheme, c.accessToken))
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Error().Err(err).Str("method", method).Str("url", requestURL).Msg("Request failed")
		return fmt.Errorf("%w: %w", ErrTransport, err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		c.logger.Error().Err(err).Str("url", requestURL).Msg("Failed to read response body")
		return fmt.Errorf("%w: %w", ErrTransport, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		apiErr := &APIError{StatusCode: resp.StatusCode, Body: string(respBody)}
		c.logger.Error().
			Int("status", resp.StatusCode).
			Str("method", method).
			Str("url", requestURL).
			Msg("API error response")
		return apiErr
	}

	if resp.StatusCode == http.StatusNoContent || len(respBody) == 0 {
		return nil
	}

	// A discarded body must still parse; only 204 (or an empty body) skips
	// decoding.
	if v == nil {
		var discard any
		v = &discard
	}
	if err := json.Unmarshal(respBody, v); err != nil {
		c.logger.Error().Err(err).Str("url", requestURL).Msg("Failed to decode response")
		return fmt.Errorf("%w: %w", ErrDecode, err)
	}

	return nil
}

// bodyFieldNames lists the top-level JSON field names of a request body so
// requests can be logged without exposing their values.
func bodyFieldNames(body any) []string {
	if body == nil {
		return nil
	}
	data, err := json.Marshal(body)
	if err != nil {
		return nil
	}
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(data, &fields); err != nil {
		return nil
	}
	names := make([]string, 0, len(fields))
	for name := range fields {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// encodeMultipart builds a multipart body from form fields and file parts.
// Every file part is written under the same uploadFieldName key.
func encodeMultipart(form map[string]string, files []UploadFile) (*bytes.Buffer, string, error) {
	buf := &bytes.Buffer{}
	w := multipart.NewWriter(buf)

	for key, value := range form {
		if err := w.WriteField(key, value); err != nil {
			return nil, "", err
		}
	}

	for _, f := range files {
		header := make(textproto.MIMEHeader)
		header.Set("Content-Disposition",
			fmt.Sprintf(`form-data; name=%q; filename=%q`, uploadFieldName, f.Name))
		if f.ContentType != "" {
			header.Set("Content-Type", f.ContentType)
		}
		part, err := w.CreatePart(header)
		if err != nil {
			return nil, "", err
		}
		if _, err := io.Copy(part, f.Reader); err != nil {
			return nil, "", err
		}
	}

	if err := w.Close(); err != nil {
		return nil, "", err
	}
	return buf, w.FormDataContentType(), nil
}
