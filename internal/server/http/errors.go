package httpserver

import (
	"errors"
	"net/http"

	"github.com/jackc/pgx/v5/pgconn"

	"github.com/ncnews/news-api/internal/domain"
)

// Postgres raises 22P02 when a path id fails the integer cast; the
// classifier turns that into a client error rather than a server fault.
const pgErrInvalidTextRepresentation = "22P02"

// writeDomainError classifies an error from the repository layer into an
// HTTP response. Typed domain errors carry their own client-facing message;
// anything unrecognized is logged and reported as an internal fault without
// leaking detail.
func (s *Server) writeDomainError(w http.ResponseWriter, r *http.Request, err error) {
	var notFound *domain.NotFoundError
	if errors.As(err, &notFound) {
		writeError(w, http.StatusNotFound, notFound.Message)
		return
	}

	var validation *domain.ValidationError
	if errors.As(err, &validation) {
		writeError(w, http.StatusBadRequest, validation.Message)
		return
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == pgErrInvalidTextRepresentation {
		writeError(w, http.StatusBadRequest, "Bad Request")
		return
	}

	s.logger.Error().
		Err(err).
		Str("method", r.Method).
		Str("path", r.URL.Path).
		Msg("request failed")
	s.metrics.RecordDBFailure()
	writeError(w, http.StatusInternalServerError, "Internal server error")
}
