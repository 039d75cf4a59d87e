package httpserver

import (
	"encoding/json"
	"io"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/ncnews/news-api/internal/domain"
	"github.com/ncnews/news-api/internal/repository"
)

// 1 MB limit for request bodies.
const maxRequestBodySize = 1 << 20

// patchVotesRequest is the JSON request body for adjusting article votes.
// A pointer distinguishes a missing field from an explicit zero.
type patchVotesRequest struct {
	IncVotes *int `json:"inc_votes"`
}

// postCommentRequest is the JSON request body for adding a comment.
type postCommentRequest struct {
	Username string `json:"username" validate:"required"`
	Body     string `json:"body" validate:"required"`
}

// getTopics handles GET /api/topics.
func (s *Server) getTopics(w http.ResponseWriter, r *http.Request) {
	topics, err := s.topicRepo.List(r.Context())
	if err != nil {
		s.writeDomainError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string][]domain.Topic{"topics": topics})
}

// getUsers handles GET /api/users.
func (s *Server) getUsers(w http.ResponseWriter, r *http.Request) {
	users, err := s.userRepo.List(r.Context())
	if err != nil {
		s.writeDomainError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string][]domain.User{"users": users})
}

// getArticles handles GET /api/articles with optional topic, sort_by and
// order query parameters.
func (s *Server) getArticles(w http.ResponseWriter, r *http.Request) {
	filter := repository.ArticleFilter{
		Topic:  r.URL.Query().Get("topic"),
		SortBy: r.URL.Query().Get("sort_by"),
		Order:  r.URL.Query().Get("order"),
	}

	articles, err := s.articleRepo.List(r.Context(), filter)
	if err != nil {
		s.writeDomainError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string][]domain.Article{"articles": articles})
}

// getArticleByID handles GET /api/articles/{articleID}.
func (s *Server) getArticleByID(w http.ResponseWriter, r *http.Request) {
	article, err := s.articleRepo.GetByID(r.Context(), chi.URLParam(r, "articleID"))
	if err != nil {
		s.writeDomainError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]*domain.Article{"article": article})
}

// patchArticleVotes handles PATCH /api/articles/{articleID}.
func (s *Server) patchArticleVotes(w http.ResponseWriter, r *http.Request) {
	defer r.Body.Close()
	body, err := io.ReadAll(io.LimitReader(r.Body, maxRequestBodySize))
	if err != nil {
		writeError(w, http.StatusBadRequest, "failed to read request body")
		return
	}

	// A non-integer inc_votes ("abc", 1.5) fails to unmarshal into *int;
	// a body without the field leaves the pointer nil. Both are the same
	// client mistake.
	var req patchVotesRequest
	if err := json.Unmarshal(body, &req); err != nil || req.IncVotes == nil {
		writeError(w, http.StatusBadRequest, "Incorrect data type")
		return
	}

	article, err := s.articleRepo.IncrementVotes(r.Context(), chi.URLParam(r, "articleID"), *req.IncVotes)
	if err != nil {
		s.writeDomainError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]*domain.Article{"updated_article": article})
}

// getArticleComments handles GET /api/articles/{articleID}/comments.
// The parent article is fetched first so a commentless article yields an
// empty list while a missing one yields 404.
func (s *Server) getArticleComments(w http.ResponseWriter, r *http.Request) {
	articleID := chi.URLParam(r, "articleID")

	if _, err := s.articleRepo.GetByID(r.Context(), articleID); err != nil {
		s.writeDomainError(w, r, err)
		return
	}

	comments, err := s.commentRepo.ListByArticleID(r.Context(), articleID)
	if err != nil {
		s.writeDomainError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string][]domain.Comment{"comments": comments})
}

// postArticleComment handles POST /api/articles/{articleID}/comments.
// The parent article is confirmed before the insert; the repository's
// foreign-key translation covers the window between the two statements.
func (s *Server) postArticleComment(w http.ResponseWriter, r *http.Request) {
	articleID := chi.URLParam(r, "articleID")

	defer r.Body.Close()
	body, err := io.ReadAll(io.LimitReader(r.Body, maxRequestBodySize))
	if err != nil {
		writeError(w, http.StatusBadRequest, "failed to read request body")
		return
	}

	var req postCommentRequest
	if err := json.Unmarshal(body, &req); err != nil {
		writeError(w, http.StatusBadRequest, "Bad Request")
		return
	}
	if err := s.validate.Struct(req); err != nil {
		writeError(w, http.StatusBadRequest, "Bad Request")
		return
	}

	if _, err := s.articleRepo.GetByID(r.Context(), articleID); err != nil {
		s.writeDomainError(w, r, err)
		return
	}

	comment, err := s.commentRepo.Create(r.Context(), articleID, req.Username, req.Body)
	if err != nil {
		s.writeDomainError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, map[string]*domain.Comment{"comment": comment})
}

// deleteComment handles DELETE /api/comments/{commentID}.
func (s *Server) deleteComment(w http.ResponseWriter, r *http.Request) {
	if err := s.commentRepo.Delete(r.Context(), chi.URLParam(r, "commentID")); err != nil {
		s.writeDomainError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
