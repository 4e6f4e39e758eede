package http

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
)

// idFromRequest parses the named chi URL parameter as an int64 id.
func idFromRequest(r *http.Request, name string) (int64, error) {
	return strconv.ParseInt(chi.URLParam(r, name), 10, 64)
}
