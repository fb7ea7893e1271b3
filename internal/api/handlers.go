package api

import (
	"encoding/json"
	"errors"
	"math"
	"net/http"
	"strconv"
	"strings"

	"kotoba/internal/library"
	"kotoba/internal/logging"
	"kotoba/internal/session"
)

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	resp := HealthResponse{Status: "ok"}
	if set, err := s.session.Current(); err == nil {
		resp.Loaded = true
		resp.LoadID = set.ID
		resp.LoadedAt = set.LoadedAt
	}
	s.writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleOpen(w http.ResponseWriter, r *http.Request) {
	var req OpenRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	req.VideoPath = strings.TrimSpace(req.VideoPath)
	req.PrimaryPath = strings.TrimSpace(req.PrimaryPath)
	req.SecondaryPath = strings.TrimSpace(req.SecondaryPath)

	src := library.Sources{VideoPath: req.VideoPath, PrimaryPath: req.PrimaryPath, SecondaryPath: req.SecondaryPath}
	if src.Empty() {
		if req.VideoPath == "" {
			s.writeError(w, http.StatusBadRequest, "video_path or primary_path is required")
			return
		}
		src = library.Discover(req.VideoPath, s.cfg.Captions.PrimaryLanguage, s.cfg.Captions.SecondaryLanguage)
	}

	set, err := s.session.Open(r.Context(), src)
	if errors.Is(err, session.ErrNoCaptions) {
		s.writeError(w, http.StatusNotFound, "no captions found for video")
		return
	}
	if err != nil {
		logging.ErrorWithContext(logging.WithContext(r.Context(), s.logger), "open captions failed", "captions_open_failed",
			logging.Error(err),
			logging.String("video_path", src.VideoPath),
		)
		s.writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	if s.store != nil && src.VideoPath != "" {
		if _, err := s.store.AddRecent(r.Context(), library.Recent{
			VideoPath:     src.VideoPath,
			Title:         req.Title,
			URL:           req.URL,
			PrimaryPath:   src.PrimaryPath,
			SecondaryPath: src.SecondaryPath,
		}); err != nil {
			logging.WarnWithContext(logging.WithContext(r.Context(), s.logger), "record recent video failed", "recent_write_failed",
				logging.Error(err),
				logging.String(logging.FieldImpact, "video missing from recent list"),
			)
		}
	}

	s.writeJSON(w, http.StatusOK, OpenResponse{
		ID:        set.ID,
		Sources:   src,
		Primary:   len(set.Primary),
		Secondary: len(set.Secondary),
		Aligned:   set.Aligned,
	})
}

func (s *Server) handleCaptions(w http.ResponseWriter, r *http.Request) {
	set, src, ok := s.session.Sources()
	if set == nil {
		s.writeError(w, http.StatusNotFound, session.ErrNoCaptions.Error())
		return
	}
	resp := CaptionsResponse{Set: set}
	if ok {
		resp.Sources = &src
	}
	s.writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleActive(w http.ResponseWriter, r *http.Request) {
	raw := strings.TrimSpace(r.URL.Query().Get("t"))
	if raw == "" {
		s.writeError(w, http.StatusBadRequest, "query parameter t is required")
		return
	}
	t, err := strconv.ParseFloat(raw, 64)
	if err != nil || math.IsNaN(t) || math.IsInf(t, 0) {
		s.writeError(w, http.StatusBadRequest, "query parameter t must be seconds")
		return
	}
	active := s.session.Query(t)
	s.writeJSON(w, http.StatusOK, ActiveResponse{Time: t, Primary: active.Primary, Secondary: active.Secondary})
}

func (s *Server) handleRecent(w http.ResponseWriter, r *http.Request) {
	resp := RecentResponse{Items: []library.Recent{}}
	if s.store == nil {
		s.writeJSON(w, http.StatusOK, resp)
		return
	}
	items, err := s.store.ListRecent(r.Context())
	if err != nil {
		logging.ErrorWithContext(logging.WithContext(r.Context(), s.logger), "list recent videos failed", "recent_read_failed",
			logging.Error(err),
			logging.String(logging.FieldErrorHint, "check the library database under paths.data_dir"),
		)
		s.writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	if items != nil {
		resp.Items = items
	}
	s.writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleWord(w http.ResponseWriter, r *http.Request) {
	q := strings.TrimSpace(r.URL.Query().Get("q"))
	if q == "" {
		s.writeError(w, http.StatusBadRequest, "query parameter q is required")
		return
	}
	s.writeJSON(w, http.StatusOK, WordResponse{Word: s.words.Lookup(r.Context(), q)})
}
