package server

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"strconv"

	"github.com/matzehuels/ringlayout/pkg/buildinfo"
	"github.com/matzehuels/ringlayout/pkg/circle"
	"github.com/matzehuels/ringlayout/pkg/errors"
	"github.com/matzehuels/ringlayout/pkg/pipeline"
	"github.com/matzehuels/ringlayout/pkg/scene"
)

type healthResponse struct {
	Status string `json:"status"`
	buildinfo.Info
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, healthResponse{Status: "ok", Info: buildinfo.Get()})
}

func (s *Server) handleLayout(w http.ResponseWriter, r *http.Request) {
	opts, err := s.requestOptions(w, r)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	opts.Formats = []string{pipeline.FormatJSON}

	res, err := s.runner.Execute(r.Context(), opts)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeArtifact(w, pipeline.FormatJSON, res)
}

func (s *Server) handleRender(w http.ResponseWriter, r *http.Request) {
	opts, err := s.requestOptions(w, r)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	q := r.URL.Query()
	format := q.Get("format")
	if format == "" {
		format = pipeline.FormatSVG
	}
	if err := pipeline.ValidateFormat(format); err != nil {
		s.writeError(w, r, err)
		return
	}
	opts.Formats = []string{format}
	opts.VizType = q.Get("viz")
	opts.Guide = queryBool(q.Get("guide"))
	opts.Outline = queryBool(q.Get("outline"))
	opts.Detailed = queryBool(q.Get("detailed"))
	opts.NoLabels = q.Has("labels") && !queryBool(q.Get("labels"))

	res, err := s.runner.Execute(r.Context(), opts)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeArtifact(w, format, res)
}

// requestOptions reads the scene body and the layout overrides.
func (s *Server) requestOptions(w http.ResponseWriter, r *http.Request) (pipeline.Options, error) {
	format, err := scene.FormatFromContentType(r.Header.Get("Content-Type"))
	if err != nil {
		return pipeline.Options{}, err
	}
	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, s.cfg.MaxBodyBytes))
	if err != nil {
		return pipeline.Options{}, bodyError(err)
	}
	if len(bytes.TrimSpace(body)) == 0 {
		return pipeline.Options{}, errors.New(errors.ErrCodeInvalidInput, "request body must contain a scene")
	}

	opts := pipeline.Options{
		SceneData:   body,
		SceneFormat: string(format),
		Logger:      s.logger,
	}
	q := r.URL.Query()
	if opts.Radius, err = queryFloat(q.Get("radius"), "radius"); err != nil {
		return opts, err
	}
	if opts.Clustering, err = queryFloat(q.Get("clustering"), "clustering"); err != nil {
		return opts, err
	}
	if opts.Diameter, err = queryFloat(q.Get("diameter"), "diameter"); err != nil {
		return opts, err
	}
	cx, err := queryFloat(q.Get("cx"), "cx")
	if err != nil {
		return opts, err
	}
	cy, err := queryFloat(q.Get("cy"), "cy")
	if err != nil {
		return opts, err
	}
	if cx != nil || cy != nil {
		if cx == nil || cy == nil {
			return opts, errors.New(errors.ErrCodeInvalidInput, "cx and cy must be given together")
		}
		opts.Center = &circle.Point{X: *cx, Y: *cy}
	}
	return opts, nil
}

func queryFloat(v, name string) (*float64, error) {
	if v == "" {
		return nil, nil
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidInput, err, "query parameter %s", name)
	}
	return &f, nil
}

func queryBool(v string) bool {
	b, err := strconv.ParseBool(v)
	return err == nil && b
}

func writeArtifact(w http.ResponseWriter, format string, res *pipeline.Result) {
	w.Header().Set("Content-Type", pipeline.ContentTypes[format])
	if res.CacheInfo.RenderHit {
		w.Header().Set("X-Cache", "hit")
	} else {
		w.Header().Set("X-Cache", "miss")
	}
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(res.Artifacts[format])
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
