package httpservice

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
)

// TestRequest builds requests against a Service in tests.
type TestRequest struct {
	method  string
	path    string
	headers http.Header
	query   url.Values
	body    io.Reader
}

// NewTestRequest creates a request builder.
//
// Example:
//
//	rec := httpservice.NewTestRequest(http.MethodPost, "/dummy/get_dummy_by_id").
//		Query("correlation_id", "123").
//		JSONBody(map[string]any{"dummy_id": "1"}).
//		Execute(svc.Handler())
func NewTestRequest(method, path string) *TestRequest {
	return &TestRequest{
		method:  method,
		path:    path,
		headers: make(http.Header),
		query:   make(url.Values),
	}
}

// Header adds a header.
func (r *TestRequest) Header(key, value string) *TestRequest {
	r.headers.Add(key, value)
	return r
}

// Query adds a query parameter.
func (r *TestRequest) Query(key, value string) *TestRequest {
	r.query.Add(key, value)
	return r
}

// JSONBody sets a JSON body. It panics if body cannot be marshaled.
func (r *TestRequest) JSONBody(body any) *TestRequest {
	data, err := json.Marshal(body)
	if err != nil {
		panic(fmt.Sprintf("httpservice: JSONBody failed to marshal body: %v", err))
	}
	return r.RawBody(data)
}

// RawBody sets the body verbatim.
func (r *TestRequest) RawBody(data []byte) *TestRequest {
	r.body = bytes.NewReader(data)
	r.headers.Set("Content-Type", contentTypeJSON)
	return r
}

// Build creates the http.Request.
func (r *TestRequest) Build() *http.Request {
	path := r.path
	if len(r.query) > 0 {
		path += "?" + r.query.Encode()
	}
	req := httptest.NewRequest(r.method, path, r.body)
	for k, v := range r.headers {
		req.Header[k] = v
	}
	return req
}

// Execute runs the request against handler.
func (r *TestRequest) Execute(handler http.Handler) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, r.Build())
	return rec
}

// Invoke posts args to the command route of name and decodes a 200 response
// into target. Non-2xx responses are returned without decoding.
func (s *Service) Invoke(name string, args any, target any) (*httptest.ResponseRecorder, error) {
	req := NewTestRequest(http.MethodPost, s.prefix()+name)
	if args != nil {
		req.JSONBody(args)
	}
	rec := req.Execute(s.handler)
	if target != nil && rec.Code == http.StatusOK {
		if err := json.NewDecoder(rec.Body).Decode(target); err != nil {
			return rec, err
		}
	}
	return rec, nil
}
