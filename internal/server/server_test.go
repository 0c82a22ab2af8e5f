package server

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/joshuapare/axkit/internal/treefile"
	"github.com/joshuapare/axkit/pkg/action"
	"github.com/joshuapare/axkit/pkg/tree"
	"github.com/joshuapare/axkit/pkg/types"
)

const initialDoc = `
root: 1
focus: 2
nodes:
  - id: 1
    role: window
    props: {children: [2, 3], name: Hello}
  - id: 2
    role: button
    actions: [focus, default]
    props: {name: Button 1}
  - id: 3
    role: text_field
    actions: [set_value, custom_action]
    props:
      custom_actions: [{id: 4, description: Clear}]
`

func newServer(t *testing.T) (*Server, *httptest.Server) {
	t.Helper()
	s, err := New(func() tree.Update {
		u, err := treefile.Parse([]byte(initialDoc), nil)
		require.NoError(t, err)
		return u
	})
	require.NoError(t, err)
	ts := httptest.NewServer(s)
	t.Cleanup(ts.Close)
	return s, ts
}

func call(t *testing.T, method, url, body string) (int, string) {
	t.Helper()
	req, err := http.NewRequest(method, url, strings.NewReader(body))
	require.NoError(t, err)
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()
	b, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp.StatusCode, string(b)
}

func TestInactiveUntilActivated(t *testing.T) {
	_, ts := newServer(t)

	status, _ := call(t, http.MethodGet, ts.URL+"/tree", "")
	assert.Equal(t, http.StatusConflict, status)

	status, body := call(t, http.MethodPost, ts.URL+"/activate", "")
	require.Equal(t, http.StatusOK, status)
	var events []map[string]any
	require.NoError(t, json.Unmarshal([]byte(body), &events))
	assert.Equal(t, "tree-changed", events[0]["kind"])
	assert.Equal(t, "focus-changed", events[len(events)-1]["kind"])

	status, body = call(t, http.MethodPost, ts.URL+"/activate", "")
	assert.Equal(t, http.StatusOK, status)
	assert.JSONEq(t, `[]`, body)
}

func TestGetTreeAndNode(t *testing.T) {
	_, ts := newServer(t)
	call(t, http.MethodPost, ts.URL+"/activate", "")

	status, body := call(t, http.MethodGet, ts.URL+"/tree", "")
	require.Equal(t, http.StatusOK, status)
	var tj struct {
		Nodes []struct {
			Role string `json:"role"`
		} `json:"nodes"`
	}
	require.NoError(t, json.Unmarshal([]byte(body), &tj))
	require.Len(t, tj.Nodes, 3)
	assert.Equal(t, "Window", tj.Nodes[0].Role)
	assert.Contains(t, body, `"root": 1`)

	status, body = call(t, http.MethodGet, ts.URL+"/nodes/2", "")
	require.Equal(t, http.StatusOK, status)
	assert.Contains(t, body, `"name": "Button 1"`)
	assert.Contains(t, body, `"Focus"`)

	status, _ = call(t, http.MethodGet, ts.URL+"/nodes/99", "")
	assert.Equal(t, http.StatusNotFound, status)
	status, _ = call(t, http.MethodGet, ts.URL+"/nodes/banana", "")
	assert.Equal(t, http.StatusBadRequest, status)
}

func TestDoAction(t *testing.T) {
	s, ts := newServer(t)
	call(t, http.MethodPost, ts.URL+"/activate", "")

	status, _ := call(t, http.MethodPost, ts.URL+"/nodes/2/actions/focus", "")
	require.Equal(t, http.StatusOK, status)

	status, _ = call(t, http.MethodPost, ts.URL+"/nodes/3/actions/set_value", `{"value": "typed"}`)
	require.Equal(t, http.StatusOK, status)

	status, _ = call(t, http.MethodPost, ts.URL+"/nodes/3/actions/custom_action", `{"custom_action": 4}`)
	require.Equal(t, http.StatusOK, status)

	reqs := s.Requests()
	require.Len(t, reqs, 3)
	assert.Equal(t, action.Request{Action: types.ActionFocus, Target: types.NewNodeID(2)}, reqs[0])
	assert.Equal(t, action.Value("typed"), reqs[1].Data)
	assert.Equal(t, action.CustomAction(4), reqs[2].Data)

	for _, tc := range []struct {
		path, body string
		want       int
	}{
		{"/nodes/2/actions/set_value", "", http.StatusUnprocessableEntity},
		{"/nodes/3/actions/custom_action", `{"custom_action": 5}`, http.StatusNotFound},
		{"/nodes/9/actions/focus", "", http.StatusNotFound},
		{"/nodes/2/actions/levitate", "", http.StatusNotFound},
		{"/nodes/2/actions/focus", `{"value": "a", "numeric_value": 1}`, http.StatusBadRequest},
		{"/nodes/2/actions/focus", `{`, http.StatusBadRequest},
	} {
		status, body := call(t, http.MethodPost, ts.URL+tc.path, tc.body)
		assert.Equal(t, tc.want, status, "%s %s: %s", tc.path, tc.body, body)
	}
	assert.Len(t, s.Requests(), 3)
}

func TestPutTree(t *testing.T) {
	_, ts := newServer(t)

	status, _ := call(t, http.MethodPut, ts.URL+"/tree", "nodes: []")
	assert.Equal(t, http.StatusConflict, status)

	call(t, http.MethodPost, ts.URL+"/activate", "")
	status, body := call(t, http.MethodPut, ts.URL+"/tree", `
nodes:
  - id: 2
    role: button
    props: {name: Renamed}
`)
	require.Equal(t, http.StatusOK, status)
	assert.JSONEq(t, `[{"kind": "node-changed", "node": 2}]`, body)

	status, _ = call(t, http.MethodPut, ts.URL+"/tree", "nodes: [{id: 1, role: gizmo}]")
	assert.Equal(t, http.StatusNotFound, status)

	status, body = call(t, http.MethodGet, ts.URL+"/events", "")
	require.Equal(t, http.StatusOK, status)
	assert.Contains(t, body, "node-changed")
}

func TestRenderDOT(t *testing.T) {
	_, ts := newServer(t)
	call(t, http.MethodPost, ts.URL+"/activate", "")

	status, body := call(t, http.MethodGet, ts.URL+"/render?format=dot", "")
	require.Equal(t, http.StatusOK, status)
	assert.True(t, strings.HasPrefix(body, "digraph G {"))
	assert.Contains(t, body, `"1" -> "2";`)

	status, _ = call(t, http.MethodGet, ts.URL+"/render?format=gif", "")
	assert.Equal(t, http.StatusNotFound, status)
}

func TestHealthz(t *testing.T) {
	_, ts := newServer(t)
	status, body := call(t, http.MethodGet, ts.URL+"/healthz", "")
	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, "OK\n", body)
}
