package server

import (
	"io"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/matzehuels/radialmap/pkg/buildinfo"
	"github.com/matzehuels/radialmap/pkg/errors"
	"github.com/matzehuels/radialmap/pkg/graph"
	"github.com/matzehuels/radialmap/pkg/pipeline"
)

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok", "version": buildinfo.Version})
}

// handleLayout parses the body and returns the computed layout.
func (s *Server) handleLayout(w http.ResponseWriter, r *http.Request) {
	l, _, err := s.layoutFromBody(w, r)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	data, err := graph.MarshalLayout(l)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeRaw(w, http.StatusOK, contentTypes[pipeline.FormatJSON], data)
}

// handleRender runs the full pipeline on the body and returns one artifact.
func (s *Server) handleRender(w http.ResponseWriter, r *http.Request) {
	opts, err := s.documentOptions(w, r)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	res, err := s.runner.Execute(r.Context(), opts)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	format := opts.Formats[0]
	writeArtifact(w, format, res.Artifacts[format])
}

func (s *Server) handleListMaps(w http.ResponseWriter, r *http.Request) {
	limit := 0
	if v := r.URL.Query().Get("limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 0 {
			s.writeError(w, r, errors.New(errors.ErrCodeInvalidInput, "invalid limit %q", v))
			return
		}
		limit = n
	}
	maps, err := s.store.List(r.Context(), limit)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, maps)
}

// handleCreateMap computes a layout from the body and publishes it.
func (s *Server) handleCreateMap(w http.ResponseWriter, r *http.Request) {
	l, opts, err := s.layoutFromBody(w, r)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	m, err := s.store.Save(r.Context(), r.URL.Query().Get("name"), l)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	opts.Logger.Info("published map", "id", m.ID, "nodes", m.NodeCount)
	w.Header().Set("Location", "/v1/maps/"+m.ID)
	writeJSON(w, http.StatusCreated, m.Summary())
}

func (s *Server) handleGetMap(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if err := errors.ValidateMapID(id); err != nil {
		s.writeError(w, r, err)
		return
	}
	m, err := s.store.Get(r.Context(), id)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	data, err := graph.MarshalLayout(m.Layout)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeRaw(w, http.StatusOK, contentTypes[pipeline.FormatJSON], data)
}

func (s *Server) handleDeleteMap(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if err := errors.ValidateMapID(id); err != nil {
		s.writeError(w, r, err)
		return
	}
	if err := s.store.Delete(r.Context(), id); err != nil {
		s.writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// handleRenderMap renders a stored layout. Layout parameters are ignored:
// the stored geometry is final.
func (s *Server) handleRenderMap(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if err := errors.ValidateMapID(id); err != nil {
		s.writeError(w, r, err)
		return
	}
	opts, err := optionsFromQuery(r)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	m, err := s.store.Get(r.Context(), id)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	opts.Logger = s.logger
	artifacts, err := s.runner.Render(r.Context(), m.Layout, opts)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	format := opts.Formats[0]
	writeArtifact(w, format, artifacts[format])
}

// layoutFromBody parses the request document and computes its layout.
func (s *Server) layoutFromBody(w http.ResponseWriter, r *http.Request) (graph.Layout, pipeline.Options, error) {
	opts, err := s.documentOptions(w, r)
	if err != nil {
		return graph.Layout{}, opts, err
	}
	t, err := s.runner.Parse(r.Context(), opts)
	if err != nil {
		return graph.Layout{}, opts, err
	}
	l, err := s.runner.GenerateLayout(r.Context(), t, opts)
	return l, opts, err
}

// documentOptions reads the body as the source document and decodes the
// query parameters.
func (s *Server) documentOptions(w http.ResponseWriter, r *http.Request) (pipeline.Options, error) {
	opts, err := optionsFromQuery(r)
	if err != nil {
		return opts, err
	}
	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, s.maxBody))
	if err != nil {
		return opts, err
	}
	if len(body) == 0 {
		return opts, errors.New(errors.ErrCodeInvalidInput, "request body must contain a document")
	}
	opts.Source = body
	if opts.Format == "" {
		opts.Format = sniffFormat(body)
	}
	opts.Logger = s.logger
	return opts, nil
}

// sniffFormat guesses the document format from its first byte.
func sniffFormat(body []byte) string {
	trimmed := strings.TrimSpace(string(body[:min(len(body), 64)]))
	if strings.HasPrefix(trimmed, "{") {
		return pipeline.InputJSON
	}
	return pipeline.InputFreeMind
}

// optionsFromQuery decodes pipeline options from query parameters:
// format, viz_type, radius_step, child_order, curved, samples, tangent,
// output, style, width, height, leaves_only and seed.
func optionsFromQuery(r *http.Request) (pipeline.Options, error) {
	q := r.URL.Query()
	opts := pipeline.Options{
		Format:     q.Get("format"),
		VizType:    q.Get("viz_type"),
		ChildOrder: q.Get("child_order"),
		Style:      q.Get("style"),
	}
	if out := q.Get("output"); out != "" {
		opts.Formats = []string{out}
	} else {
		opts.Formats = []string{pipeline.FormatSVG}
	}

	var err error
	parseFloat := func(name string, dst *float64) {
		if v := q.Get(name); v != "" && err == nil {
			*dst, err = strconv.ParseFloat(v, 64)
			if err != nil {
				err = errors.Wrap(errors.ErrCodeInvalidInput, err, "invalid %s %q", name, v)
			}
		}
	}
	parseInt := func(name string, dst *int) {
		if v := q.Get(name); v != "" && err == nil {
			*dst, err = strconv.Atoi(v)
			if err != nil {
				err = errors.Wrap(errors.ErrCodeInvalidInput, err, "invalid %s %q", name, v)
			}
		}
	}
	parseBool := func(name string) (bool, bool) {
		v := q.Get(name)
		if v == "" || err != nil {
			return false, false
		}
		b, perr := strconv.ParseBool(v)
		if perr != nil {
			err = errors.Wrap(errors.ErrCodeInvalidInput, perr, "invalid %s %q", name, v)
			return false, false
		}
		return b, true
	}

	parseFloat("radius_step", &opts.RadiusStep)
	if q.Get("tangent") != "" {
		var k float64
		parseFloat("tangent", &k)
		opts.TangentStrength = pipeline.Float(k)
	}
	parseInt("samples", &opts.Samples)
	parseInt("width", &opts.Width)
	parseInt("height", &opts.Height)
	if b, ok := parseBool("curved"); ok {
		opts.Curved = pipeline.Bool(b)
	}
	if b, ok := parseBool("leaves_only"); ok {
		opts.LeavesOnly = b
	}
	if v := q.Get("seed"); v != "" && err == nil {
		opts.Seed, err = strconv.ParseUint(v, 10, 64)
		if err != nil {
			err = errors.Wrap(errors.ErrCodeInvalidInput, err, "invalid seed %q", v)
		}
	}
	if err != nil {
		return opts, err
	}
	return opts, pipeline.ValidateFormats(opts.Formats)
}
