// Package apitest runs an in-process fake of the Groupie Tracker backend for
// tests. Routes are served by gorilla/mux from in-memory fixtures; every
// request is counted per path and individual paths can be forced to fail.
package apitest

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strconv"
	"strings"
	"sync"
	"testing"

	"github.com/gorilla/mux"

	"github.com/handiism/groupie-tracker/internal/model"
)

// RelationShape selects how /api/relation is encoded.
type RelationShape int

const (
	// RelationArray serves a bare array.
	RelationArray RelationShape = iota

	// RelationIndex serves {"index": [...]}.
	RelationIndex

	// RelationSingle serves only the first relation as a lone object.
	RelationSingle

	// RelationUnknown serves an object of no accepted shape.
	RelationUnknown
)

// Fixtures is the data the fake backend serves.
type Fixtures struct {
	Artists   []model.Artist
	Relations []model.Relation
	Events    []model.Event
	Locations []model.Location
}

// Server is a running fake backend.
type Server struct {
	*httptest.Server

	mu            sync.Mutex
	fixtures      Fixtures
	relationShape RelationShape
	hits          map[string]int
	queries       map[string]url.Values
	failures      map[string]int
}

// New starts a fake backend serving f and closes it when t finishes.
func New(t testing.TB, f Fixtures) *Server {
	t.Helper()

	s := &Server{
		fixtures: f,
		hits:     make(map[string]int),
		queries:  make(map[string]url.Values),
		failures: make(map[string]int),
	}

	router := mux.NewRouter()
	router.Use(s.record)
	router.HandleFunc("/api/artists", s.artists).Methods("GET")
	router.HandleFunc("/api/relation", s.relations).Methods("GET")
	router.HandleFunc("/api/events", s.events).Methods("GET")
	router.HandleFunc("/api/locations", s.locations).Methods("GET")
	router.HandleFunc("/api/spotify/artist", s.spotifyArtist).Methods("GET")
	router.HandleFunc("/search", s.search).Methods("GET")

	s.Server = httptest.NewServer(router)
	t.Cleanup(s.Close)
	return s
}

// SetRelationShape changes the /api/relation encoding.
func (s *Server) SetRelationShape(shape RelationShape) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.relationShape = shape
}

// Fail makes every request to path answer with status. Zero clears it.
func (s *Server) Fail(path string, status int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if status == 0 {
		delete(s.failures, path)
		return
	}
	s.failures[path] = status
}

// Hits returns how many requests path received.
func (s *Server) Hits(path string) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.hits[path]
}

// LastQuery returns the query string of the latest request to path.
func (s *Server) LastQuery(path string) url.Values {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.queries[path]
}

func (s *Server) record(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		s.mu.Lock()
		s.hits[r.URL.Path]++
		s.queries[r.URL.Path] = r.URL.Query()
		status := s.failures[r.URL.Path]
		s.mu.Unlock()

		if status != 0 {
			respondWithError(w, status, http.StatusText(status))
			return
		}
		next.ServeHTTP(w, r)
	})
}

func (s *Server) artists(w http.ResponseWriter, r *http.Request) {
	name := strings.ToLower(strings.TrimSpace(r.URL.Query().Get("name")))
	source := strings.ToLower(r.URL.Query().Get("source"))
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))

	s.mu.Lock()
	all := s.fixtures.Artists
	s.mu.Unlock()

	out := make([]map[string]interface{}, 0, len(all))
	spotifyCount := 0
	for _, a := range all {
		if name != "" && !strings.Contains(strings.ToLower(a.Name), name) {
			continue
		}
		if source != "" && source != "all" && string(a.Source) != source {
			continue
		}
		if a.IsSpotify() {
			if name == "" {
				continue
			}
			if limit > 0 && spotifyCount >= limit {
				continue
			}
			spotifyCount++
		}
		out = append(out, artistJSON(a))
	}
	respondWithJSON(w, http.StatusOK, out)
}

func (s *Server) relations(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	rels := s.fixtures.Relations
	shape := s.relationShape
	s.mu.Unlock()

	var buf bytes.Buffer
	switch shape {
	case RelationIndex:
		buf.WriteString(`{"index":`)
		writeRelations(&buf, rels)
		buf.WriteString(`}`)
	case RelationSingle:
		if len(rels) == 0 {
			buf.WriteString(`{"id":0,"datesLocations":{}}`)
		} else {
			writeRelation(&buf, rels[0])
		}
	case RelationUnknown:
		buf.WriteString(`{"message":"relations unavailable"}`)
	default:
		writeRelations(&buf, rels)
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(buf.Bytes())
}

func (s *Server) events(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	events := s.fixtures.Events
	s.mu.Unlock()
	if events == nil {
		events = []model.Event{}
	}
	respondWithJSON(w, http.StatusOK, events)
}

func (s *Server) locations(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	locations := s.fixtures.Locations
	s.mu.Unlock()
	if locations == nil {
		locations = []model.Location{}
	}
	respondWithJSON(w, http.StatusOK, locations)
}

func (s *Server) spotifyArtist(w http.ResponseWriter, r *http.Request) {
	id := model.ArtistID(strings.TrimSpace(r.URL.Query().Get("id")))
	if id == "" {
		respondWithError(w, http.StatusBadRequest, "missing id")
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	for _, a := range s.fixtures.Artists {
		if a.IsSpotify() && a.ID.Matches(id) {
			respondWithJSON(w, http.StatusOK, artistJSON(a))
			return
		}
	}
	respondWithError(w, http.StatusNotFound, "artist not found")
}

func (s *Server) search(w http.ResponseWriter, r *http.Request) {
	q := strings.ToLower(strings.TrimSpace(r.URL.Query().Get("q")))

	s.mu.Lock()
	defer s.mu.Unlock()
	hits := make([]model.SearchHit, 0)
	for _, a := range s.fixtures.Artists {
		if a.IsSpotify() {
			continue
		}
		if q != "" && !strings.Contains(strings.ToLower(a.Name), q) {
			continue
		}
		hits = append(hits, model.SearchHit{ID: a.ID, Name: a.Name, Image: a.Image})
	}
	respondWithJSON(w, http.StatusOK, hits)
}

// artistJSON encodes an artist the way the backend does: numeric ids stay
// numbers and the source is always present.
func artistJSON(a model.Artist) map[string]interface{} {
	m := map[string]interface{}{
		"id":        idJSON(a.ID),
		"name":      a.Name,
		"image_url": a.Image,
		"source":    string(a.Source),
	}
	if a.Source == "" {
		m["source"] = string(model.SourceGroupie)
	}
	if a.CreationDate != "" {
		if n, err := strconv.Atoi(a.CreationDate); err == nil {
			m["creationDate"] = n
		} else {
			m["creationDate"] = a.CreationDate
		}
	}
	if a.FirstAlbum != "" {
		m["firstAlbum"] = a.FirstAlbum
	}
	if a.Members != nil {
		m["members"] = a.Members
	}
	if a.Followers != 0 {
		m["followers"] = a.Followers
	}
	if a.Popularity != 0 {
		m["popularity"] = a.Popularity
	}
	if a.Genres != nil {
		m["genres"] = a.Genres
	}
	return m
}

func idJSON(id model.ArtistID) interface{} {
	if n, err := strconv.Atoi(string(id)); err == nil {
		return n
	}
	return string(id)
}

// writeRelations keeps each relation's slug order, which encoding/json
// would sort.
func writeRelations(buf *bytes.Buffer, rels []model.Relation) {
	buf.WriteByte('[')
	for i, rel := range rels {
		if i > 0 {
			buf.WriteByte(',')
		}
		writeRelation(buf, rel)
	}
	buf.WriteByte(']')
}

func writeRelation(buf *bytes.Buffer, rel model.Relation) {
	id, _ := json.Marshal(idJSON(rel.ID))
	buf.WriteString(`{"id":`)
	buf.Write(id)
	buf.WriteString(`,"datesLocations":{`)
	for i, slug := range rel.Slugs() {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, _ := json.Marshal(slug)
		dates, _ := json.Marshal(rel.DatesLocations[slug])
		buf.Write(key)
		buf.WriteByte(':')
		buf.Write(dates)
	}
	buf.WriteString(`}}`)
}

func respondWithJSON(w http.ResponseWriter, status int, payload interface{}) {
	response, err := json.Marshal(payload)
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = w.Write(response)
}

func respondWithError(w http.ResponseWriter, status int, message string) {
	respondWithJSON(w, status, map[string]string{"error": message})
}
