package server

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"net/http"
	"slices"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"

	"git.home.luguber.info/inful/docnav/internal/children"
	"git.home.luguber.info/inful/docnav/internal/directive"
	"git.home.luguber.info/inful/docnav/internal/docs"
	ferrors "git.home.luguber.info/inful/docnav/internal/foundation/errors"
	"git.home.luguber.info/inful/docnav/internal/logfields"
	"git.home.luguber.info/inful/docnav/internal/navtree"
	"git.home.luguber.info/inful/docnav/internal/slug"
	"git.home.luguber.info/inful/docnav/internal/toc"
	"git.home.luguber.info/inful/docnav/internal/version"
)

// NavResponse is the body of GET /api/nav/{version}.
type NavResponse struct {
	Version    string          `json:"version"`
	Current    string          `json:"current,omitempty"`
	ActivePath []string        `json:"activePath"`
	Count      int             `json:"count"`
	Nodes      []*navtree.Node `json:"nodes"`
}

// TOCResponse is the body of GET /api/toc.
type TOCResponse struct {
	Slug     string        `json:"slug"`
	Headings []toc.Heading `json:"headings"`
}

// writeJSON encodes into a buffer first so a failed encode never sends a
// partial body.
func writeJSON(w http.ResponseWriter, status int, v any) error {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(true)
	if err := enc.Encode(v); err != nil {
		return err
	}
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	if _, err := w.Write(buf.Bytes()); err != nil {
		slog.Error("failed writing JSON response body", logfields.Error(err))
		return err
	}
	return nil
}

func (s *Server) respond(w http.ResponseWriter, r *http.Request, v any) {
	if err := writeJSON(w, http.StatusOK, v); err != nil {
		s.httpErr.WriteErrorResponse(w, r,
			ferrors.WrapError(err, ferrors.CategoryInternal, "failed to encode response").Build())
	}
}

// corpus fetches the current corpus, writing the error response on failure.
func (s *Server) corpus(w http.ResponseWriter, r *http.Request) (*docs.Corpus, bool) {
	c, err := s.opts.Index.Corpus()
	if err != nil {
		s.httpErr.WriteErrorResponse(w, r, err)
		return nil, false
	}
	return c, true
}

// document resolves the required slug query parameter.
func (s *Server) document(w http.ResponseWriter, r *http.Request) (*docs.Corpus, *docs.Document, bool) {
	raw := r.URL.Query().Get("slug")
	if strings.TrimSpace(raw) == "" {
		s.httpErr.WriteErrorResponse(w, r, ferrors.ValidationError("slug query parameter is required").Build())
		return nil, nil, false
	}
	c, ok := s.corpus(w, r)
	if !ok {
		return nil, nil, false
	}
	d := c.DocumentBySlug(raw)
	if d == nil {
		s.httpErr.WriteErrorResponse(w, r, ferrors.NotFoundError("document not found").
			WithContext("slug", raw).Build())
		return nil, nil, false
	}
	return c, d, true
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	s.respond(w, r, map[string]string{"status": "ok", "version": version.Version})
}

func (s *Server) handleVersions(w http.ResponseWriter, r *http.Request) {
	c, ok := s.corpus(w, r)
	if !ok {
		return
	}
	s.respond(w, r, map[string][]string{"versions": c.Versions()})
}

func (s *Server) handleNav(w http.ResponseWriter, r *http.Request) {
	version := chi.URLParam(r, "version")
	c, ok := s.corpus(w, r)
	if !ok {
		return
	}
	if !slices.Contains(c.Versions(), version) {
		s.httpErr.WriteErrorResponse(w, r, ferrors.NotFoundError("unknown version").
			WithContext("version", version).Build())
		return
	}

	current := r.URL.Query().Get("current")
	nodes := navtree.Build(c.All(), version, current, navtree.Options{
		Order: s.opts.Order,
	})
	if nodes == nil {
		nodes = []*navtree.Node{}
	}
	s.respond(w, r, NavResponse{
		Version:    version,
		Current:    current,
		ActivePath: navtree.ActivePath(nodes),
		Count:      navtree.Count(nodes),
		Nodes:      nodes,
	})
}

func (s *Server) handleDocument(w http.ResponseWriter, r *http.Request) {
	_, d, ok := s.document(w, r)
	if !ok {
		return
	}
	s.respond(w, r, d)
}

func (s *Server) handleChildren(w http.ResponseWriter, r *http.Request) {
	c, d, ok := s.document(w, r)
	if !ok {
		return
	}
	list := children.Filtered(c, d, childrenOptions(r))
	if list == nil {
		list = []*docs.Document{}
	}
	s.respond(w, r, list)
}

// childrenOptions maps query parameters onto directive options. Like the
// directive, the first filter present wins: folder, then exclude, then only.
func childrenOptions(r *http.Request) directive.ChildrenOptions {
	q := r.URL.Query()
	opts := directive.ChildrenOptions{
		Mode:           directive.ModeAll,
		AsList:         queryBool(q.Get("as_list")),
		IncludeFolders: queryBool(q.Get("include_folders")),
		Reverse:        queryBool(q.Get("reverse")),
	}
	if folder := strings.TrimSpace(q.Get("folder")); folder != "" {
		opts.Mode = directive.ModeFolder
		opts.Folder = folder
		return opts
	}
	if names := directive.SplitNames(q.Get("exclude")); len(names) > 0 {
		opts.Mode = directive.ModeExclude
		opts.Names = names
		return opts
	}
	if names := directive.SplitNames(q.Get("only")); len(names) > 0 {
		opts.Mode = directive.ModeOnly
		opts.Names = names
	}
	return opts
}

func queryBool(v string) bool {
	if v == "" {
		return false
	}
	b, err := strconv.ParseBool(v)
	return err == nil && b
}

func (s *Server) handleTOC(w http.ResponseWriter, r *http.Request) {
	c, d, ok := s.document(w, r)
	if !ok {
		return
	}
	page, err := s.opts.Renderer.Render(c, d)
	if err != nil {
		s.httpErr.WriteErrorResponse(w, r, err)
		return
	}
	headings := page.Headings
	if headings == nil {
		headings = []toc.Heading{}
	}
	s.respond(w, r, TOCResponse{Slug: d.Slug, Headings: headings})
}

func (s *Server) handleRoutes(w http.ResponseWriter, r *http.Request) {
	c, ok := s.corpus(w, r)
	if !ok {
		return
	}
	all := c.All()
	routes := make([]string, 0, len(all))
	for _, d := range all {
		routes = append(routes, d.Slug)
	}
	s.respond(w, r, map[string][]string{"routes": routes})
}

func (s *Server) handleCacheClear(w http.ResponseWriter, r *http.Request) {
	s.opts.Index.ClearCache()
	s.respond(w, r, map[string]string{"status": "cleared"})
}

// handlePage serves the rendered HTML of a document. Non-canonical spellings
// of a slug redirect permanently to the canonical one. Unknown pages of a
// known version redirect to the version root.
//
// The ETag combines the document fingerprint with the corpus revision, since
// CHILDREN expansion makes a page depend on its siblings and children.
func (s *Server) handlePage(w http.ResponseWriter, r *http.Request) {
	version := chi.URLParam(r, "version")
	c, ok := s.corpus(w, r)
	if !ok {
		return
	}

	d := c.DocumentBySlug(r.URL.Path)
	if d == nil {
		if root := c.DocumentBySlug(slug.VersionRoot(version)); root != nil {
			http.Redirect(w, r, root.Slug, http.StatusFound)
			return
		}
		s.httpErr.WriteErrorResponse(w, r, ferrors.NotFoundError("page not found").
			WithContext("path", r.URL.Path).Build())
		return
	}

	if r.URL.Path != d.Slug {
		target := d.Slug
		if r.URL.RawQuery != "" {
			target += "?" + r.URL.RawQuery
		}
		http.Redirect(w, r, target, http.StatusMovedPermanently)
		return
	}

	etag := strconv.Quote(d.Fingerprint + "-" + c.Revision()[:16])
	w.Header().Set("ETag", etag)
	if match := r.Header.Get("If-None-Match"); match != "" && etagMatches(match, etag) {
		w.WriteHeader(http.StatusNotModified)
		return
	}

	page, err := s.opts.Renderer.Render(c, d)
	if err != nil {
		s.httpErr.WriteErrorResponse(w, r, err)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write([]byte(page.HTML)); err != nil {
		s.log.Error("failed writing page body", logfields.Slug(d.Slug), logfields.Error(err))
	}
}

func etagMatches(header, etag string) bool {
	for _, candidate := range strings.Split(header, ",") {
		candidate = strings.TrimSpace(candidate)
		if candidate == "*" || strings.TrimPrefix(candidate, "W/") == etag {
			return true
		}
	}
	return false
}
