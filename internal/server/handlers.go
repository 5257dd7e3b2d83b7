package server

import (
	"encoding/json"
	"math/rand/v2"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/matzehuels/starmap/pkg/buildinfo"
	"github.com/matzehuels/starmap/pkg/errors"
	"github.com/matzehuels/starmap/pkg/galaxy"
	"github.com/matzehuels/starmap/pkg/pipeline"
)

// Response headers set on generated artifacts.
const (
	headerSeed  = "X-Starmap-Seed"
	headerID    = "X-Starmap-Id"
	headerCache = "X-Starmap-Cache"
)

// newSeed picks a seed when the client does not send one.
var newSeed = func() int64 { return rand.Int64() }

type healthResponse struct {
	Status string         `json:"status"`
	Build  buildinfo.Info `json:"build"`
}

// galaxyRequest is the body of POST /v1/galaxy and POST /v1/galaxies.
// Config fields left out keep their defaults.
type galaxyRequest struct {
	Config galaxy.Config `json:"config"`
	Seed   *int64        `json:"seed,omitempty"`
	Format string        `json:"format,omitempty"`
	Style  string        `json:"style,omitempty"`
	Disks  bool          `json:"disks,omitempty"`
	Width  int           `json:"width,omitempty"`
	Height int           `json:"height,omitempty"`
}

func (s *Server) health(w http.ResponseWriter, r *http.Request) error {
	writeJSON(w, http.StatusOK, healthResponse{Status: "ok", Build: buildinfo.Get()})
	return nil
}

func (s *Server) getGalaxy(w http.ResponseWriter, r *http.Request) error {
	q := r.URL.Query()
	req := galaxyRequest{
		Config: galaxy.DefaultConfig(),
		Format: q.Get("format"),
		Style:  q.Get("style"),
		Disks:  q.Get("disks") == "true",
	}
	if v := q.Get("seed"); v != "" {
		seed, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return errors.New(errors.ErrCodeInvalidInput, "seed must be an integer, got %q", v)
		}
		req.Seed = &seed
	}
	var err error
	if req.Width, err = queryInt(q.Get("width")); err != nil {
		return err
	}
	if req.Height, err = queryInt(q.Get("height")); err != nil {
		return err
	}
	return s.generate(w, r, req)
}

func (s *Server) postGalaxy(w http.ResponseWriter, r *http.Request) error {
	req, err := decodeRequest(w, r)
	if err != nil {
		return err
	}
	return s.generate(w, r, req)
}

// generate runs the pipeline for req and writes the single artifact.
func (s *Server) generate(w http.ResponseWriter, r *http.Request, req galaxyRequest) error {
	opts := req.options()
	result, err := s.runner.Execute(r.Context(), opts)
	if err != nil {
		return err
	}
	cached := result.CacheInfo.GenerateHit && result.CacheInfo.RenderHit
	writeArtifact(w, opts.Formats[0], result.Artifacts[opts.Formats[0]], result.Document.Seed, result.Document.ID, cached)
	return nil
}

func (s *Server) archiveGalaxy(w http.ResponseWriter, r *http.Request) error {
	req, err := decodeRequest(w, r)
	if err != nil {
		return err
	}
	if err := req.Config.Validate(); err != nil {
		return err
	}
	doc, err := s.runner.Generate(r.Context(), req.Config, req.seed())
	if err != nil {
		return err
	}
	entry, err := s.store.Save(r.Context(), doc)
	if err != nil {
		return err
	}
	w.Header().Set("Location", "/v1/galaxies/"+entry.ID)
	writeJSON(w, http.StatusCreated, entry)
	return nil
}

func (s *Server) listGalaxies(w http.ResponseWriter, r *http.Request) error {
	limit, err := queryInt(r.URL.Query().Get("limit"))
	if err != nil {
		return err
	}
	summaries, err := s.store.List(r.Context(), limit)
	if err != nil {
		return err
	}
	writeJSON(w, http.StatusOK, map[string]any{"galaxies": summaries})
	return nil
}

func (s *Server) getArchived(w http.ResponseWriter, r *http.Request) error {
	entry, err := s.store.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		return err
	}

	q := r.URL.Query()
	format := q.Get("format")
	if format == "" {
		writeJSON(w, http.StatusOK, entry)
		return nil
	}

	opts := pipeline.Options{
		Config:  entry.Config,
		Formats: []string{format},
		Style:   q.Get("style"),
		Disks:   q.Get("disks") == "true",
	}
	if opts.Width, err = queryInt(q.Get("width")); err != nil {
		return err
	}
	if opts.Height, err = queryInt(q.Get("height")); err != nil {
		return err
	}
	artifacts, hit, err := s.runner.RenderWithCacheInfo(r.Context(), entry.Document, opts)
	if err != nil {
		return err
	}
	writeArtifact(w, format, artifacts[format], entry.Seed, entry.ID, hit)
	return nil
}

func decodeRequest(w http.ResponseWriter, r *http.Request) (galaxyRequest, error) {
	req := galaxyRequest{Config: galaxy.DefaultConfig()}
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&req); err != nil {
		return req, errors.Wrap(errors.ErrCodeInvalidInput, err, "decode request body")
	}
	return req, nil
}

func (req galaxyRequest) seed() int64 {
	if req.Seed != nil {
		return *req.Seed
	}
	return newSeed()
}

func (req galaxyRequest) options() pipeline.Options {
	format := req.Format
	if format == "" {
		format = pipeline.FormatJSON
	}
	return pipeline.Options{
		Config:  req.Config,
		Seed:    req.seed(),
		Formats: []string{format},
		Style:   req.Style,
		Disks:   req.Disks,
		Width:   req.Width,
		Height:  req.Height,
	}
}

func queryInt(v string) (int, error) {
	if v == "" {
		return 0, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil || n < 0 {
		return 0, errors.New(errors.ErrCodeInvalidInput, "expected a non-negative integer, got %q", v)
	}
	return n, nil
}

func writeArtifact(w http.ResponseWriter, format string, data []byte, seed int64, id string, cached bool) {
	w.Header().Set("Content-Type", pipeline.ContentTypes[format])
	w.Header().Set(headerSeed, strconv.FormatInt(seed, 10))
	w.Header().Set(headerID, id)
	if cached {
		w.Header().Set(headerCache, "hit")
	} else {
		w.Header().Set(headerCache, "miss")
	}
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(data)
}
