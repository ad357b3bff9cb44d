// seehuhn.de/go/mosaic - rectangle scenes addressed by text tokens
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

// Package server serves rendered scenes over HTTP.
package server

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"
	"net/url"
	"strconv"

	"github.com/go-chi/chi/v5"

	"seehuhn.de/go/mosaic"
	"seehuhn.de/go/mosaic/config"
)

// TokenHeader carries the token of every image the server sends.
const TokenHeader = "X-Mosaic-Token"

// ErrorResponse is the JSON body of a failed request.
type ErrorResponse struct {
	From    string `json:"error"`
	Message string `json:"message,omitempty"`
}

// service renders scenes on request.
type service struct {
	cfg config.Render
	rng mosaic.Rand
}

// New returns the HTTP handler of the service.
// If rng is nil, [mosaic.DefaultRand] is used.  The given rng must be safe
// for concurrent use when the handler serves parallel requests.
func New(cfg config.Render, rng mosaic.Rand) http.Handler {
	if rng == nil {
		rng = mosaic.DefaultRand
	}
	s := &service{cfg: cfg, rng: rng}

	r := chi.NewRouter()
	r.Use(requestID, logRequests, recoverPanic)

	r.Get("/", s.image)
	r.Get("/favicon.ico", s.favicon)
	r.Get("/random-image-token", s.token)
	r.Get("/random-image/{token}", s.image)
	r.Get("/{token}", s.image)

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		jsonWrite(w, http.StatusNotFound, ErrorResponse{From: "not found", Message: r.URL.Path})
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		jsonWrite(w, http.StatusMethodNotAllowed, ErrorResponse{From: "method not allowed", Message: r.Method})
	})
	return r
}

func (s *service) image(w http.ResponseWriter, r *http.Request) {
	token, err := url.PathUnescape(chi.URLParam(r, "token"))
	if err != nil {
		writeError(w, &mosaic.DecodeError{Input: chi.URLParam(r, "token"), Reason: "bad escape", Err: err})
		return
	}
	opt, err := s.options(r.URL.Query())
	if err != nil {
		writeError(w, err)
		return
	}
	s.send(w, token, opt)
}

func (s *service) favicon(w http.ResponseWriter, r *http.Request) {
	opt := mosaic.Options{
		Width:      s.cfg.FaviconSize,
		Height:     s.cfg.FaviconSize,
		Background: s.cfg.FaviconBackground,
	}
	s.send(w, "", opt)
}

func (s *service) token(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	fmt.Fprint(w, mosaic.RandomToken(s.rng))
}

func (s *service) send(w http.ResponseWriter, token string, opt mosaic.Options) {
	img, token, err := mosaic.CreateImageFromToken(token, opt, s.rng)
	if err != nil {
		writeError(w, err)
		return
	}
	buf := &bytes.Buffer{}
	if err := mosaic.EncodeJPEG(buf, img); err != nil {
		writeError(w, err)
		return
	}

	h := w.Header()
	h.Set("Content-Type", mosaic.ContentType)
	h.Set("Content-Length", strconv.Itoa(buf.Len()))
	h.Set(TokenHeader, token)
	w.WriteHeader(http.StatusOK)
	if _, err := buf.WriteTo(w); err != nil {
		log.Printf("sending image %s: %v", token, err)
	}
}

// options reads the canvas parameters from the query string.
//
// "backround_color" is the historical spelling of "background_color".  If
// both are present, "background_color" is used.
func (s *service) options(q url.Values) (mosaic.Options, error) {
	opt := mosaic.Options{
		Width:      s.cfg.DefaultSize,
		Height:     s.cfg.DefaultSize,
		Background: s.cfg.Background,
	}

	if q.Has("size") {
		v := q.Get("size")
		size, err := strconv.Atoi(v)
		if err != nil {
			return opt, &mosaic.ConfigError{Param: "size", Value: v, Reason: "not an integer"}
		}
		if size <= 0 || size > s.cfg.MaxSize {
			return opt, &mosaic.ConfigError{
				Param:  "size",
				Value:  v,
				Reason: "must be between 1 and " + strconv.Itoa(s.cfg.MaxSize),
			}
		}
		opt.Width, opt.Height = size, size
	}

	for _, name := range []string{"backround_color", "background_color"} {
		if !q.Has(name) {
			continue
		}
		v := q.Get(name)
		c, err := mosaic.ParseColor(v)
		if err != nil {
			return opt, &mosaic.ConfigError{Param: name, Value: v, Reason: "not a colour"}
		}
		opt.Background = c
	}

	return opt, nil
}

func writeError(w http.ResponseWriter, err error) {
	var decodeErr *mosaic.DecodeError
	var configErr *mosaic.ConfigError
	switch {
	case errors.As(err, &decodeErr):
		jsonWrite(w, http.StatusBadRequest, ErrorResponse{From: "token", Message: err.Error()})
	case errors.As(err, &configErr):
		jsonWrite(w, http.StatusBadRequest, ErrorResponse{From: "parameter", Message: err.Error()})
	default:
		jsonWrite(w, http.StatusInternalServerError, ErrorResponse{From: "internal", Message: err.Error()})
	}
}

func jsonWrite(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	js := json.NewEncoder(w)
	js.SetIndent("", "  ")
	if err := js.Encode(data); err != nil {
		log.Printf("sending JSON response: %v", err)
	}
}
