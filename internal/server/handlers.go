package server

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/joshuapare/axkit/internal/render"
	"github.com/joshuapare/axkit/internal/treefile"
	"github.com/joshuapare/axkit/pkg/action"
	"github.com/joshuapare/axkit/pkg/adapter"
	"github.com/joshuapare/axkit/pkg/adapter/memory"
	"github.com/joshuapare/axkit/pkg/node"
	"github.com/joshuapare/axkit/pkg/tree"
	"github.com/joshuapare/axkit/pkg/types"
)

// NodeJSON is the JSON form of one node.
type NodeJSON struct {
	ID         treefile.ID    `json:"id"`
	Role       string         `json:"role"`
	Actions    []string       `json:"actions,omitempty"`
	Properties map[string]any `json:"properties,omitempty"`
}

// TreeJSON is the JSON form of a tree update.
type TreeJSON struct {
	Root         treefile.ID `json:"root,omitzero"`
	RootScroller treefile.ID `json:"root_scroller,omitzero"`
	Focus        treefile.ID `json:"focus,omitzero"`
	Nodes        []NodeJSON  `json:"nodes"`
}

type eventJSON struct {
	Kind string      `json:"kind"`
	Node treefile.ID `json:"node,omitzero"`
}

// EncodeNode returns the JSON form of n.
func EncodeNode(id types.NodeID, n *node.Node) NodeJSON {
	out := NodeJSON{ID: treefile.ID(id), Role: n.Role().String()}
	for _, a := range n.Actions().Actions() {
		out.Actions = append(out.Actions, a.String())
	}
	node.Each(n, func(d *node.Descriptor, v any) {
		if out.Properties == nil {
			out.Properties = make(map[string]any)
		}
		out.Properties[d.Name] = treefile.Value(d, v)
	})
	return out
}

// EncodeTree returns the JSON form of u.
func EncodeTree(u tree.Update) TreeJSON {
	out := TreeJSON{Focus: treefile.ID(u.Focus), Nodes: make([]NodeJSON, 0, len(u.Nodes))}
	if u.Tree != nil {
		out.Root = treefile.ID(u.Tree.Root)
		out.RootScroller = treefile.ID(u.Tree.RootScroller)
	}
	for _, p := range u.Nodes {
		out.Nodes = append(out.Nodes, EncodeNode(p.ID, p.Node))
	}
	return out
}

func encodeEvents(events []adapter.Event) []eventJSON {
	out := make([]eventJSON, len(events))
	for i, e := range events {
		out[i] = eventJSON{Kind: e.Kind.String(), Node: treefile.ID(e.Node)}
	}
	return out
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		s.log.Warn("write response", "error", err)
	}
}

// statusFor maps an error to an HTTP status.
func statusFor(err error) int {
	switch {
	case errors.Is(err, memory.ErrInactive), errors.Is(err, memory.ErrNoTree):
		return http.StatusConflict
	}
	var te *types.Error
	if errors.As(err, &te) {
		switch te.Kind {
		case types.ErrKindNotFound:
			return http.StatusNotFound
		case types.ErrKindUnsupported:
			return http.StatusUnprocessableEntity
		default:
			return http.StatusBadRequest
		}
	}
	return http.StatusInternalServerError
}

func (s *Server) writeError(w http.ResponseWriter, err error) {
	status := statusFor(err)
	if status >= http.StatusInternalServerError {
		s.log.Error("request failed", "error", err)
	}
	s.writeJSON(w, status, map[string]string{"error": err.Error()})
}

func (s *Server) activate(w http.ResponseWriter, _ *http.Request) {
	q, err := s.adapter.Activate()
	if err != nil {
		s.writeError(w, err)
		return
	}
	events := q.Events()
	q.Raise()
	s.writeJSON(w, http.StatusOK, encodeEvents(events))
}

func (s *Server) getTree(w http.ResponseWriter, _ *http.Request) {
	if !s.adapter.IsActive() {
		s.writeError(w, memory.ErrInactive)
		return
	}
	s.writeJSON(w, http.StatusOK, EncodeTree(s.adapter.Snapshot()))
}

func (s *Server) putTree(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, s.limits.Normalize().MaxSnapshotSize))
	if err != nil {
		s.writeError(w, types.Errorf(types.ErrKindMalformed, "read body", "%v", err))
		return
	}
	u, err := treefile.Parse(body, s.classes)
	if err != nil {
		s.writeError(w, err)
		return
	}
	if err := u.Validate(s.limits); err != nil {
		s.writeError(w, err)
		return
	}
	if !s.adapter.IsActive() {
		s.writeError(w, memory.ErrInactive)
		return
	}
	q := s.adapter.Update(u)
	events := q.Events()
	q.Raise()
	s.writeJSON(w, http.StatusOK, encodeEvents(events))
}

func (s *Server) getNode(w http.ResponseWriter, r *http.Request) {
	id, err := types.ParseNodeID(chi.URLParam(r, "id"))
	if err != nil {
		s.writeError(w, err)
		return
	}
	n, ok := s.adapter.Node(id)
	if !ok {
		s.writeError(w, types.Errorf(types.ErrKindNotFound, "node", "no node %s", id))
		return
	}
	s.writeJSON(w, http.StatusOK, EncodeNode(id, n))
}

// actionData is the request body of POST /nodes/{id}/actions/{action}.
// At most one field may be set.
type actionData struct {
	CustomAction     *int32               `json:"custom_action"`
	Value            *string              `json:"value"`
	NumericValue     *float64             `json:"numeric_value"`
	ScrollTargetRect *types.Rect          `json:"scroll_target_rect"`
	ScrollToPoint    *types.Point         `json:"scroll_to_point"`
	SetScrollOffset  *types.Point         `json:"set_scroll_offset"`
	SetTextSelection *types.TextSelection `json:"set_text_selection"`
}

func (d actionData) data() (action.Data, error) {
	var out []action.Data
	if d.CustomAction != nil {
		out = append(out, action.CustomAction(*d.CustomAction))
	}
	if d.Value != nil {
		out = append(out, action.Value(*d.Value))
	}
	if d.NumericValue != nil {
		out = append(out, action.NumericValue(*d.NumericValue))
	}
	if d.ScrollTargetRect != nil {
		out = append(out, action.ScrollTargetRect(*d.ScrollTargetRect))
	}
	if d.ScrollToPoint != nil {
		out = append(out, action.ScrollToPoint(*d.ScrollToPoint))
	}
	if d.SetScrollOffset != nil {
		out = append(out, action.SetScrollOffset(*d.SetScrollOffset))
	}
	if d.SetTextSelection != nil {
		out = append(out, action.SetTextSelection(*d.SetTextSelection))
	}
	switch len(out) {
	case 0:
		return nil, nil
	case 1:
		return out[0], nil
	default:
		return nil, types.Errorf(types.ErrKindInvalid, "action data", "%d variants given, want at most one", len(out))
	}
}

func (s *Server) doAction(w http.ResponseWriter, r *http.Request) {
	id, err := types.ParseNodeID(chi.URLParam(r, "id"))
	if err != nil {
		s.writeError(w, err)
		return
	}
	act, err := types.ParseAction(chi.URLParam(r, "action"))
	if err != nil {
		s.writeError(w, err)
		return
	}
	req := action.Request{Action: act, Target: id}

	body, err := io.ReadAll(io.LimitReader(r.Body, int64(s.limits.Normalize().MaxStringBytes)+1024))
	if err != nil {
		s.writeError(w, types.Errorf(types.ErrKindMalformed, "read body", "%v", err))
		return
	}
	if len(body) > 0 {
		var d actionData
		if err := json.Unmarshal(body, &d); err != nil {
			s.writeError(w, types.Errorf(types.ErrKindMalformed, "action data", "%v", err))
			return
		}
		if req.Data, err = d.data(); err != nil {
			s.writeError(w, err)
			return
		}
	}

	if err := s.adapter.Do(r.Context(), req); err != nil {
		s.writeError(w, err)
		return
	}
	s.writeJSON(w, http.StatusOK, map[string]string{"delivered": req.String()})
}

func (s *Server) getRequests(w http.ResponseWriter, _ *http.Request) {
	reqs := s.Requests()
	out := make([]string, len(reqs))
	for i, r := range reqs {
		out[i] = r.String()
	}
	s.writeJSON(w, http.StatusOK, out)
}

func (s *Server) getEvents(w http.ResponseWriter, _ *http.Request) {
	s.writeJSON(w, http.StatusOK, encodeEvents(s.adapter.Raised()))
}

func (s *Server) render(w http.ResponseWriter, r *http.Request) {
	if !s.adapter.IsActive() {
		s.writeError(w, memory.ErrInactive)
		return
	}
	format := r.URL.Query().Get("format")
	if format == "" {
		format = "svg"
	}
	detailed, _ := strconv.ParseBool(r.URL.Query().Get("detailed"))
	out, err := render.Render(r.Context(), s.adapter.Snapshot(), format, render.Options{Detailed: detailed})
	if err != nil {
		s.writeError(w, err)
		return
	}
	switch format {
	case "svg":
		w.Header().Set("Content-Type", "image/svg+xml")
	case "png":
		w.Header().Set("Content-Type", "image/png")
	default:
		w.Header().Set("Content-Type", "text/vnd.graphviz")
	}
	_, _ = w.Write(out)
}
