package client

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"io/ioutil"
	"net/http"
	"net/url"

	"github.com/bcgov/traction-flow-tests/logging"

	"github.com/google/uuid"
)

// TenantProxyClient manages communication with the Traction tenant proxy.
// All requests made through one instance share a single underlying
// http.Client, so the connection to the proxy is kept alive and reused for
// the lifetime of a run. There are no timeouts and no retries; a hanging
// remote call blocks the run.
type TenantProxyClient struct {
	baseURL    string
	httpClient *http.Client
	logger     logging.Logger
}

func NewTenantProxyClient(baseURL string) *TenantProxyClient {
	return &TenantProxyClient{
		baseURL:    baseURL,
		httpClient: &http.Client{},
		logger:     logging.NullLogger(),
	}
}

// WithLogger returns a copy of the client that writes request and response
// details to the given logger, typically a step's capturing debug logger.
// The copy shares the underlying http.Client with the original.
func (c *TenantProxyClient) WithLogger(logger logging.Logger) *TenantProxyClient {
	if logger == nil {
		logger = logging.NullLogger()
	}
	c2 := *c
	c2.logger = logger
	return &c2
}

func (c *TenantProxyClient) BaseURL() string {
	return c.baseURL
}

// APIResponse is the status and raw body of a completed request. Responses
// are returned for any HTTP status; deciding whether a status is acceptable
// is up to the endpoint methods.
type APIResponse struct {
	StatusCode int
	Body       []byte
}

// StatusError is returned by endpoint methods when the proxy responds with
// an unexpected HTTP status.
type StatusError struct {
	Method     string
	Path       string
	StatusCode int
	Body       string
}

func (e *StatusError) Error() string {
	if e.Body == "" {
		return fmt.Sprintf("%s %s returned HTTP %d", e.Method, e.Path, e.StatusCode)
	}
	return fmt.Sprintf("%s %s returned HTTP %d: %s", e.Method, e.Path, e.StatusCode, e.Body)
}

func (c *TenantProxyClient) do(method, path string, query url.Values, params interface{}, token string) (*APIResponse, error) {
	requestURL := c.baseURL + path
	if len(query) > 0 {
		requestURL += "?" + query.Encode()
	}

	var data []byte
	var body io.Reader
	if params != nil {
		var err error
		data, err = json.Marshal(params)
		if err != nil {
			return nil, err
		}
		body = bytes.NewBuffer(data)
	}

	req, err := http.NewRequest(method, requestURL, body)
	if err != nil {
		return nil, err
	}
	if params != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	// A short correlation ID lets request and response lines for the same
	// call be matched in the captured debug output.
	reqID := uuid.NewString()[0:8]
	c.logger.Printf("[%s] request: %s %s", reqID, method, requestURL)
	for name, values := range req.Header {
		for _, value := range values {
			c.logger.Printf("[%s] request header: %s: %s", reqID, name, value)
		}
	}
	if data != nil {
		c.logger.Printf("[%s] request body: %s", reqID, string(data))
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Printf("[%s] request failed: %s", reqID, err)
		return nil, err
	}

	var respData []byte
	if resp.Body != nil {
		respData, err = ioutil.ReadAll(resp.Body)
		resp.Body.Close()
		if err != nil {
			c.logger.Printf("[%s] error reading response body: %s", reqID, err)
			return nil, err
		}
	}
	c.logger.Printf("[%s] response: %d", reqID, resp.StatusCode)
	for name, values := range resp.Header {
		for _, value := range values {
			c.logger.Printf("[%s] response header: %s: %s", reqID, name, value)
		}
	}
	if len(respData) > 0 {
		c.logger.Printf("[%s] response body: %s", reqID, string(respData))
	}

	return &APIResponse{StatusCode: resp.StatusCode, Body: respData}, nil
}

func (c *TenantProxyClient) statusError(method, path string, resp *APIResponse) *StatusError {
	return &StatusError{
		Method:     method,
		Path:       path,
		StatusCode: resp.StatusCode,
		Body:       string(resp.Body),
	}
}
