// Package spigettest provides an in-process fake of the Spiget API for tests.
//
// The fake serves a small fixed catalog (see the fixture constants), records
// every request it receives, and answers unknown IDs with 404 and an
// {"error": ...} body the way the real API does.
//
//	srv := spigettest.NewServer(t)
//	client := integrations.NewClient(integrations.WithBaseURL(srv.BaseURL()))
package spigettest

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"slices"
	"strconv"
	"strings"
	"sync"
	"testing"

	"github.com/go-chi/chi/v5"

	"github.com/matzehuels/spiget/pkg/models"
)

// CDN is the host download endpoints redirect to.
const CDN = "https://cdn.spiget.org/file/spiget-resources/"

// Request is a recorded request.
type Request struct {
	Path      string
	RawQuery  string
	UserAgent string
}

// URI returns the path and query as sent, relative to the API root.
func (r Request) URI() string {
	if r.RawQuery == "" {
		return r.Path
	}
	return r.Path + "?" + r.RawQuery
}

// Server is a running fake API.
type Server struct {
	*httptest.Server

	mu       sync.Mutex
	requests []Request
}

// NewServer starts a fake API that is closed when the test ends.
func NewServer(tb testing.TB) *Server {
	tb.Helper()
	s := Start()
	tb.Cleanup(s.Close)
	return s
}

// Start starts a fake API. The caller must Close it.
func Start() *Server {
	s := &Server{}
	s.Server = httptest.NewServer(s.routes())
	return s
}

// BaseURL returns the API root to configure clients with.
func (s *Server) BaseURL() string { return s.URL + "/v2/" }

// Requests returns a copy of all recorded requests.
func (s *Server) Requests() []Request {
	s.mu.Lock()
	defer s.mu.Unlock()
	return slices.Clone(s.requests)
}

// Last returns the most recent request.
func (s *Server) Last() Request {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.requests) == 0 {
		return Request{}
	}
	return s.requests[len(s.requests)-1]
}

// Hits counts recorded requests for uri (path plus query).
func (s *Server) Hits(uri string) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	n := 0
	for _, r := range s.requests {
		if r.URI() == uri {
			n++
		}
	}
	return n
}

func (s *Server) record(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		s.mu.Lock()
		s.requests = append(s.requests, Request{
			Path:      strings.TrimPrefix(r.URL.EscapedPath(), "/v2/"),
			RawQuery:  r.URL.RawQuery,
			UserAgent: r.Header.Get("User-Agent"),
		})
		s.mu.Unlock()
		next.ServeHTTP(w, r)
	})
}

func (s *Server) routes() http.Handler {
	r := chi.NewRouter()
	r.Use(s.record)
	r.NotFound(func(w http.ResponseWriter, _ *http.Request) {
		writeError(w, http.StatusNotFound, "not found")
	})

	r.Route("/v2", func(r chi.Router) {
		r.Get("/status", func(w http.ResponseWriter, _ *http.Request) { writeJSON(w, status) })

		r.Route("/authors", func(r chi.Router) {
			r.Get("/", func(w http.ResponseWriter, req *http.Request) { writeJSON(w, paginate(req, authors)) })
			r.Get("/{id}", withAuthor(func(w http.ResponseWriter, req *http.Request, a models.Author) {
				writeJSON(w, a)
			}))
			r.Get("/{id}/resources", withAuthor(func(w http.ResponseWriter, req *http.Request, a models.Author) {
				writeJSON(w, paginate(req, filter(resources, func(res models.Resource) bool { return res.Author.ID == a.ID })))
			}))
			r.Get("/{id}/reviews", withAuthor(func(w http.ResponseWriter, req *http.Request, a models.Author) {
				writeJSON(w, paginate(req, filter(reviews, func(rv models.ResourceReview) bool { return rv.Author.ID == a.ID })))
			}))
		})

		r.Route("/categories", func(r chi.Router) {
			r.Get("/", func(w http.ResponseWriter, req *http.Request) { writeJSON(w, paginate(req, categories)) })
			r.Get("/{id}", withCategory(func(w http.ResponseWriter, _ *http.Request, c models.Category) {
				writeJSON(w, c)
			}))
			r.Get("/{id}/resources", withCategory(func(w http.ResponseWriter, req *http.Request, c models.Category) {
				writeJSON(w, paginate(req, filter(resources, func(res models.Resource) bool { return res.Category.ID == c.ID })))
			}))
		})

		r.Route("/resources", func(r chi.Router) {
			r.Get("/", func(w http.ResponseWriter, req *http.Request) { writeJSON(w, paginate(req, summaries(resources))) })
			r.Get("/free", func(w http.ResponseWriter, req *http.Request) {
				writeJSON(w, paginate(req, summaries(filter(resources, func(res models.Resource) bool { return !res.Premium }))))
			})
			r.Get("/premium", func(w http.ResponseWriter, req *http.Request) {
				writeJSON(w, paginate(req, summaries(filter(resources, func(res models.Resource) bool { return res.Premium }))))
			})
			r.Get("/new", func(w http.ResponseWriter, req *http.Request) {
				sorted := slices.Clone(resources)
				slices.SortFunc(sorted, func(a, b models.Resource) int { return int(b.ReleaseDate - a.ReleaseDate) })
				writeJSON(w, paginate(req, summaries(sorted)))
			})
			r.Get("/for/{versions}", forVersions)

			r.Get("/{id}", withResource(func(w http.ResponseWriter, _ *http.Request, res models.Resource) {
				writeJSON(w, res)
			}))
			r.Get("/{id}/author", withResource(func(w http.ResponseWriter, _ *http.Request, res models.Resource) {
				for _, a := range authors {
					if a.ID == res.Author.ID {
						writeJSON(w, a)
						return
					}
				}
				writeError(w, http.StatusNotFound, "author not found")
			}))
			r.Get("/{id}/download", withResource(func(w http.ResponseWriter, req *http.Request, res models.Resource) {
				if res.Premium {
					writeError(w, http.StatusForbidden, "premium resources cannot be downloaded")
					return
				}
				if res.External {
					http.Redirect(w, req, res.File.ExternalURL, http.StatusFound)
					return
				}
				http.Redirect(w, req, fmt.Sprintf("%s%d.jar", CDN, res.ID), http.StatusFound)
			}))
			r.Get("/{id}/reviews", withResource(func(w http.ResponseWriter, req *http.Request, res models.Resource) {
				writeJSON(w, paginate(req, filter(reviews, func(rv models.ResourceReview) bool { return rv.Resource == res.ID })))
			}))
			r.Get("/{id}/updates", withResource(func(w http.ResponseWriter, req *http.Request, res models.Resource) {
				writeJSON(w, paginate(req, resourceUpdates(res.ID)))
			}))
			r.Get("/{id}/updates/latest", withResource(func(w http.ResponseWriter, _ *http.Request, res models.Resource) {
				ups := resourceUpdates(res.ID)
				if len(ups) == 0 {
					writeError(w, http.StatusNotFound, "update not found")
					return
				}
				writeJSON(w, ups[len(ups)-1])
			}))
			r.Get("/{id}/versions", withResource(func(w http.ResponseWriter, req *http.Request, res models.Resource) {
				writeJSON(w, paginate(req, resourceVersions(res.ID)))
			}))
			r.Get("/{id}/versions/{version}", withVersion(func(w http.ResponseWriter, _ *http.Request, _ models.Resource, v models.ResourceVersion) {
				writeJSON(w, v)
			}))
			r.Get("/{id}/versions/{version}/download", withVersion(func(w http.ResponseWriter, req *http.Request, res models.Resource, v models.ResourceVersion) {
				http.Redirect(w, req, fmt.Sprintf("%s%d/%d.jar", CDN, res.ID, v.ID), http.StatusFound)
			}))
		})

		r.Get("/search/resources/{query}", searchResources)
		r.Get("/search/authors/{query}", searchAuthors)

		r.Get("/webhook/events", func(w http.ResponseWriter, _ *http.Request) {
			writeJSON(w, map[string][]string{"events": Events})
		})
		r.Get("/webhook/status/{id}", func(w http.ResponseWriter, req *http.Request) {
			if chi.URLParam(req, "id") != WebhookID {
				writeError(w, http.StatusNotFound, "webhook not found")
				return
			}
			if req.URL.Query().Get("secret") != WebhookSecret {
				writeError(w, http.StatusForbidden, "invalid secret")
				return
			}
			writeJSON(w, models.WebhookStatus{Status: 1, FailedConnections: 0})
		})
	})
	return r
}

func forVersions(w http.ResponseWriter, req *http.Request) {
	want := strings.Split(chi.URLParam(req, "versions"), ",")
	method := req.URL.Query().Get("method")
	if method == "" {
		method = "any"
	}
	if method != "any" && method != "all" {
		writeError(w, http.StatusBadRequest, "invalid method")
		return
	}
	match := filter(resources, func(res models.Resource) bool {
		for _, v := range want {
			has := slices.Contains(res.TestedVersions, v)
			if method == "any" && has {
				return true
			}
			if method == "all" && !has {
				return false
			}
		}
		return method == "all"
	})
	writeJSON(w, models.ForVersionResult{Check: want, Method: method, Match: paginate(req, summaries(match))})
}

func searchResources(w http.ResponseWriter, req *http.Request) {
	q := strings.ToLower(chi.URLParam(req, "query"))
	field := req.URL.Query().Get("field")
	match := filter(resources, func(res models.Resource) bool {
		switch field {
		case "tag":
			return strings.Contains(strings.ToLower(res.Tag), q)
		default:
			return strings.Contains(strings.ToLower(res.Name), q)
		}
	})
	if len(match) == 0 {
		writeError(w, http.StatusNotFound, "no results")
		return
	}
	writeJSON(w, paginate(req, summaries(match)))
}

func searchAuthors(w http.ResponseWriter, req *http.Request) {
	q := strings.ToLower(chi.URLParam(req, "query"))
	match := filter(authors, func(a models.Author) bool { return strings.Contains(strings.ToLower(a.Name), q) })
	if len(match) == 0 {
		writeError(w, http.StatusNotFound, "no results")
		return
	}
	writeJSON(w, paginate(req, match))
}

func withAuthor(h func(http.ResponseWriter, *http.Request, models.Author)) http.HandlerFunc {
	return func(w http.ResponseWriter, req *http.Request) {
		id, _ := strconv.Atoi(chi.URLParam(req, "id"))
		for _, a := range authors {
			if a.ID == id {
				h(w, req, a)
				return
			}
		}
		writeError(w, http.StatusNotFound, "author not found")
	}
}

func withCategory(h func(http.ResponseWriter, *http.Request, models.Category)) http.HandlerFunc {
	return func(w http.ResponseWriter, req *http.Request) {
		id, _ := strconv.Atoi(chi.URLParam(req, "id"))
		for _, c := range categories {
			if c.ID == id {
				h(w, req, c)
				return
			}
		}
		writeError(w, http.StatusNotFound, "category not found")
	}
}

func withResource(h func(http.ResponseWriter, *http.Request, models.Resource)) http.HandlerFunc {
	return func(w http.ResponseWriter, req *http.Request) {
		id, _ := strconv.Atoi(chi.URLParam(req, "id"))
		res, ok := Resource(id)
		if !ok {
			writeError(w, http.StatusNotFound, "resource not found")
			return
		}
		h(w, req, res)
	}
}

// withVersion resolves {version} as a version ID, a version name, or "latest".
func withVersion(h func(http.ResponseWriter, *http.Request, models.Resource, models.ResourceVersion)) http.HandlerFunc {
	return withResource(func(w http.ResponseWriter, req *http.Request, res models.Resource) {
		want := chi.URLParam(req, "version")
		vs := resourceVersions(res.ID)
		if want == "latest" && len(vs) > 0 {
			h(w, req, res, vs[len(vs)-1])
			return
		}
		for _, v := range vs {
			if strconv.Itoa(v.ID) == want || v.Name == want {
				h(w, req, res, v)
				return
			}
		}
		writeError(w, http.StatusNotFound, "version not found")
	})
}

func resourceVersions(id int) []models.ResourceVersion {
	return filter(versions, func(v models.ResourceVersion) bool { return v.Resource == id })
}

func resourceUpdates(id int) []models.ResourceUpdate {
	return filter(updates, func(u models.ResourceUpdate) bool { return u.Resource == id })
}

// summaries strips the fields that list endpoints do not return.
func summaries(in []models.Resource) []models.Resource {
	out := make([]models.Resource, len(in))
	for i, r := range in {
		r.Reviews, r.Versions, r.Updates = nil, nil, nil
		r.Description, r.Documentation = "", ""
		out[i] = r
	}
	return out
}

func filter[T any](in []T, keep func(T) bool) []T {
	out := []T{}
	for _, v := range in {
		if keep(v) {
			out = append(out, v)
		}
	}
	return out
}

// paginate applies size (default 10) and page (1-based) like the API.
func paginate[T any](req *http.Request, items []T) []T {
	q := req.URL.Query()
	size, err := strconv.Atoi(q.Get("size"))
	if err != nil || size <= 0 {
		size = 10
	}
	page, err := strconv.Atoi(q.Get("page"))
	if err != nil || page <= 0 {
		page = 1
	}
	start := (page - 1) * size
	if start >= len(items) {
		return []T{}
	}
	return items[start:min(start+size, len(items))]
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(map[string]string{"error": msg})
}
