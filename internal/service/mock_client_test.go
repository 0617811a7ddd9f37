package service

import (
	"context"
	"encoding/json"
	"net/http"
	"net/url"
	"sync"

	"github.com/noah-isme/edu-admin-client/pkg/apiclient"
	appErrors "github.com/noah-isme/edu-admin-client/pkg/errors"
	"github.com/noah-isme/edu-admin-client/pkg/response"
)

type recordedCall struct {
	method string
	path   string
	query  url.Values
	body   interface{}
}

type reply struct {
	env *response.Envelope
	err error
}

type mockClient struct {
	mu        sync.Mutex
	calls     []recordedCall
	replies   map[string][]reply
	downloads map[string]*apiclient.Download
}

func newMockClient() *mockClient {
	return &mockClient{replies: map[string][]reply{}, downloads: map[string]*apiclient.Download{}}
}

// on queues a success envelope for method+path. Queued replies are consumed
// in order; the last one repeats.
func (m *mockClient) on(method, path string, data interface{}, meta *response.Meta) *mockClient {
	env := &response.Envelope{Status: response.StatusSuccess, Meta: meta}
	if data != nil {
		raw, err := json.Marshal(data)
		if err != nil {
			panic(err)
		}
		env.Data = raw
	}
	key := method + " " + path
	m.replies[key] = append(m.replies[key], reply{env: env})
	return m
}

func (m *mockClient) onRaw(method, path, raw string, meta *response.Meta) *mockClient {
	key := method + " " + path
	m.replies[key] = append(m.replies[key], reply{env: &response.Envelope{Status: response.StatusSuccess, Data: json.RawMessage(raw), Meta: meta}})
	return m
}

func (m *mockClient) fail(method, path string, err error) *mockClient {
	key := method + " " + path
	m.replies[key] = append(m.replies[key], reply{err: err})
	return m
}

func (m *mockClient) record(method, path string, q url.Values, body interface{}) (*response.Envelope, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.calls = append(m.calls, recordedCall{method: method, path: path, query: q, body: body})
	key := method + " " + path
	queue := m.replies[key]
	if len(queue) == 0 {
		return nil, appErrors.FromStatus(http.StatusNotFound, "", "Not Found")
	}
	r := queue[0]
	if len(queue) > 1 {
		m.replies[key] = queue[1:]
	}
	return r.env, r.err
}

func (m *mockClient) last() recordedCall {
	m.mu.Lock()
	defer m.mu.Unlock()
	if len(m.calls) == 0 {
		return recordedCall{}
	}
	return m.calls[len(m.calls)-1]
}

func (m *mockClient) callCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.calls)
}

func (m *mockClient) Get(_ context.Context, path string, q url.Values) (*response.Envelope, error) {
	return m.record(http.MethodGet, path, q, nil)
}

func (m *mockClient) Post(_ context.Context, path string, body interface{}) (*response.Envelope, error) {
	return m.record(http.MethodPost, path, nil, body)
}

func (m *mockClient) Put(_ context.Context, path string, body interface{}) (*response.Envelope, error) {
	return m.record(http.MethodPut, path, nil, body)
}

func (m *mockClient) Delete(_ context.Context, path string) (*response.Envelope, error) {
	return m.record(http.MethodDelete, path, nil, nil)
}

func (m *mockClient) Download(_ context.Context, path string, q url.Values) (*apiclient.Download, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.calls = append(m.calls, recordedCall{method: http.MethodGet, path: path, query: q})
	if dl, ok := m.downloads[path]; ok {
		return dl, nil
	}
	return nil, appErrors.FromStatus(http.StatusNotFound, "", "Not Found")
}
