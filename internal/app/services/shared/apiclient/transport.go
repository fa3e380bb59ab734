package apiclient

import (
	"bytes"
	"context"
	"dr-portal/internal/app/config"
	"dr-portal/internal/pkg/constvars"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/textproto"
	"net/url"
	"strings"
	"time"

	"github.com/goccy/go-json"
)

const defaultTimeout = 30 * time.Second

type Config struct {
	BaseUrl        string
	Timeout        time.Duration
	DefaultHeaders http.Header
}

// ConfigFromUpstream converts the viper bound upstream section. Headers are
// written as "Key:Value" pairs separated by commas.
func ConfigFromUpstream(upstream config.AppUpstream) Config {
	cfg := Config{
		BaseUrl:        upstream.BaseUrl,
		Timeout:        time.Duration(upstream.TimeoutInSeconds) * time.Second,
		DefaultHeaders: http.Header{},
	}
	for _, pair := range strings.Split(upstream.DefaultHeaders, ",") {
		key, value, ok := strings.Cut(pair, ":")
		if !ok || strings.TrimSpace(key) == "" {
			continue
		}
		cfg.DefaultHeaders.Add(strings.TrimSpace(key), strings.TrimSpace(value))
	}
	return cfg
}

// Transport sends requests to one base URL. The JSON transport tags bodies
// as application/json; the multipart transport sends form data.
type Transport struct {
	baseURL     string
	timeout     time.Duration
	headers     http.Header
	contentType string
	httpClient  *http.Client
}

func NewJSONTransport(cfg Config) *Transport {
	return newTransport(cfg, constvars.MIMEApplicationJSON)
}

func NewMultipartTransport(cfg Config) *Transport {
	return newTransport(cfg, constvars.MIMEMultipartForm)
}

func newTransport(cfg Config, contentType string) *Transport {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	headers := cfg.DefaultHeaders.Clone()
	if headers == nil {
		headers = http.Header{}
	}
	return &Transport{
		baseURL:     strings.TrimRight(cfg.BaseUrl, "/"),
		timeout:     timeout,
		headers:     headers,
		contentType: contentType,
		httpClient:  &http.Client{},
	}
}

func (t *Transport) BaseURL() string {
	return t.baseURL
}

// Image is a file wrapped into the multipart field "image".
type Image struct {
	Filename    string
	ContentType string
	Data        io.Reader
}

// Do sends one request and returns the raw response body on a 2xx reply.
// Every other outcome is an *Error.
func (t *Transport) Do(ctx context.Context, method, path string, query url.Values, body io.Reader, contentType string) ([]byte, error) {
	ctx, cancel := context.WithTimeout(ctx, t.timeout)
	defer cancel()

	target := t.baseURL + path
	if len(query) > 0 {
		target += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, method, target, body)
	if err != nil {
		return nil, newTransportError(method, target, err)
	}
	for key, values := range t.headers {
		for _, value := range values {
			req.Header.Add(key, value)
		}
	}
	if contentType != "" {
		req.Header.Set(constvars.HeaderContentType, contentType)
	}

	resp, err := t.httpClient.Do(req)
	if err != nil {
		return nil, newTransportError(method, target, err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, newTransportError(method, target, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, newStatusError(method, target, resp.StatusCode, respBody)
	}
	return respBody, nil
}

func (t *Transport) GetJSON(ctx context.Context, path string, query url.Values) (json.RawMessage, error) {
	body, err := t.Do(ctx, constvars.MethodGet, path, query, nil, "")
	if err != nil {
		return nil, err
	}
	return json.RawMessage(body), nil
}

// SendJSON encodes payload, when not nil, as the request body.
func (t *Transport) SendJSON(ctx context.Context, method, path string, payload interface{}) (json.RawMessage, error) {
	var body io.Reader
	contentType := ""
	if payload != nil {
		encoded, err := json.Marshal(payload)
		if err != nil {
			return nil, newTransportError(method, t.baseURL+path, err)
		}
		body = bytes.NewReader(encoded)
		contentType = t.contentType
	}

	respBody, err := t.Do(ctx, method, path, nil, body, contentType)
	if err != nil {
		return nil, err
	}
	return json.RawMessage(respBody), nil
}

// PostImage sends image as the multipart field "image" and returns the raw
// response body.
func (t *Transport) PostImage(ctx context.Context, path string, image Image) ([]byte, error) {
	var form bytes.Buffer
	writer := multipart.NewWriter(&form)

	part, err := writer.CreatePart(imagePartHeader(image))
	if err != nil {
		return nil, newTransportError(constvars.MethodPost, t.baseURL+path, err)
	}
	if image.Data != nil {
		_, err = io.Copy(part, image.Data)
		if err != nil {
			return nil, newTransportError(constvars.MethodPost, t.baseURL+path, err)
		}
	}
	err = writer.Close()
	if err != nil {
		return nil, newTransportError(constvars.MethodPost, t.baseURL+path, err)
	}

	return t.Do(ctx, constvars.MethodPost, path, nil, &form, writer.FormDataContentType())
}

func imagePartHeader(image Image) textproto.MIMEHeader {
	filename := image.Filename
	if filename == "" {
		filename = constvars.MultipartFieldImage
	}
	contentType := image.ContentType
	if contentType == "" {
		contentType = constvars.MIMEOctetStream
	}

	header := make(textproto.MIMEHeader)
	header.Set(constvars.HeaderContentDisposition, fmt.Sprintf(`form-data; name="%s"; filename="%s"`,
		constvars.MultipartFieldImage, escapeQuotes(filename)))
	header.Set(constvars.HeaderContentType, contentType)
	return header
}

var quoteEscaper = strings.NewReplacer("\\", "\\\\", `"`, "\\\"")

func escapeQuotes(s string) string {
	return quoteEscaper.Replace(s)
}

// PathWithID appends a path escaped identifier, and optional suffix
// segments, to base.
func PathWithID(base, id string, suffix ...string) string {
	p := base + "/" + url.PathEscape(id)
	for _, segment := range suffix {
		p += "/" + segment
	}
	return p
}
