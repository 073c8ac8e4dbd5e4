package web

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/orgball2608/crypto-blog/internal/blog"
	"github.com/orgball2608/crypto-blog/internal/domain"
	"github.com/orgball2608/crypto-blog/pkg/errors"
	"github.com/orgball2608/crypto-blog/pkg/formatter"
)

type pageData struct {
	Title     string
	BannerURL string
	blog.State
}

func (s *Server) HandlePage(w http.ResponseWriter, r *http.Request) {
	s.render(w, http.StatusOK, s.Controller.State())
}

func (s *Server) HandleSubmit(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "malformed form", http.StatusBadRequest)
		return
	}

	form := domain.PostForm{
		Title:  r.PostFormValue(domain.FieldTitle),
		Body:   r.PostFormValue(domain.FieldBody),
		Author: r.PostFormValue(domain.FieldAuthor),
	}

	// A client going away must not abort a submit that already started.
	err := s.Controller.Submit(context.WithoutCancel(r.Context()), form)

	var verr *blog.ValidationError
	if errors.As(err, &verr) {
		s.render(w, http.StatusUnprocessableEntity, s.Controller.State())
		return
	}
	if err != nil {
		s.Logger.Error("Submit failed", "error", err, "requestId", RequestIDFrom(r.Context()))
		http.Error(w, "submit failed", http.StatusInternalServerError)
		return
	}

	http.Redirect(w, r, "/", http.StatusSeeOther)
}

type postView struct {
	domain.Post
	Date string `json:"date"`
}

type stateView struct {
	Posts   []postView         `json:"posts"`
	Loading bool               `json:"loading"`
	Form    formView           `json:"form"`
	Errors  domain.FieldErrors `json:"errors"`
}

type formView struct {
	Title  string `json:"title"`
	Body   string `json:"body"`
	Author string `json:"author"`
}

func (s *Server) HandleState(w http.ResponseWriter, r *http.Request) {
	state := s.Controller.State()

	view := stateView{
		Posts:   make([]postView, 0, len(state.Posts)),
		Loading: state.Loading,
		Form:    formView(state.Form),
		Errors:  state.Errors,
	}
	if view.Errors == nil {
		view.Errors = domain.FieldErrors{}
	}
	for _, p := range state.Posts {
		view.Posts = append(view.Posts, postView{Post: p, Date: formatter.FormatPostDate(p.Timestamp, s.location)})
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(view); err != nil {
		s.Logger.Error("Failed to write state", "error", err)
	}
}

func (s *Server) HandleHealthCheck(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain")
	if _, err := w.Write([]byte("ok")); err != nil {
		s.Logger.Error("Failed to write response", "error", err)
	}
}

func (s *Server) render(w http.ResponseWriter, status int, state blog.State) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)

	data := pageData{
		Title:     s.Config.View.Title,
		BannerURL: s.Config.View.BannerURL,
		State:     state,
	}
	if err := s.page.Execute(w, data); err != nil {
		s.Logger.Error("Failed to render page", "error", err)
	}
}
