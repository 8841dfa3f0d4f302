package inventory

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"regexp"

	"storeapp/internal/bookid"
	"storeapp/internal/httpx"
)

// basket entries arrive as one comma-separated query parameter
var basketDelimiter = regexp.MustCompile(`\s*,\s*`)

const maxImportBytes = 10 << 20

type HTTPHandler struct {
	svc *Service
}

func NewHTTPHandler(svc *Service) *HTTPHandler {
	return &HTTPHandler{svc: svc}
}

// Import handles POST /inventory/import. Each uploaded file is one inventory
// payload.
func (h *HTTPHandler) Import(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(maxImportBytes); err != nil {
		httpx.JSONError(w, r, http.StatusBadRequest, "BAD_REQUEST", "Must specify valid file information", nil)
		return
	}

	files := r.MultipartForm.File["files"]
	if len(files) == 0 {
		httpx.JSONError(w, r, http.StatusBadRequest, "BAD_REQUEST", "Must specify valid file information", nil)
		return
	}

	imported := 0
	for _, header := range files {
		if header.Size == 0 {
			httpx.JSONError(w, r, http.StatusBadRequest, "BAD_REQUEST", "Must specify valid file information", nil)
			return
		}

		file, err := header.Open()
		if err != nil {
			httpx.JSONError(w, r, http.StatusBadRequest, "BAD_REQUEST", err.Error(), nil)
			return
		}
		raw, err := io.ReadAll(file)
		file.Close()
		if err != nil {
			httpx.JSONError(w, r, http.StatusBadRequest, "BAD_REQUEST", err.Error(), nil)
			return
		}

		if err := h.svc.ImportPayload(r.Context(), raw); err != nil {
			switch {
			case errors.Is(err, ErrBadPayload), errors.Is(err, bookid.ErrMalformedIdentifier):
				httpx.JSONError(w, r, http.StatusBadRequest, "BAD_PAYLOAD", err.Error(), nil)
			default:
				httpx.JSONError(w, r, http.StatusInternalServerError, "IMPORT_FAILED", "Import failed", nil)
			}
			return
		}
		imported++
	}

	httpx.JSONSuccess(w, r, map[string]int{"files_imported": imported}, nil)
}

// Quantity handles GET /books/quantity?identifier=Author - Title.
func (h *HTTPHandler) Quantity(w http.ResponseWriter, r *http.Request) {
	identifier := r.URL.Query().Get("identifier")
	if identifier == "" {
		httpx.JSONError(w, r, http.StatusBadRequest, "BAD_REQUEST", "Must specify identifier for book", nil)
		return
	}

	author, title, err := bookid.Split(identifier)
	if err != nil {
		httpx.JSONError(w, r, http.StatusBadRequest, "MALFORMED_IDENTIFIER", err.Error(), nil)
		return
	}

	quantity, err := h.svc.QuantityOf(r.Context(), title, author)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			httpx.JSONError(w, r, http.StatusNotFound, "NOT_FOUND", err.Error(), nil)
			return
		}
		httpx.JSONError(w, r, http.StatusInternalServerError, "INTERNAL_ERROR", "Internal server error", nil)
		return
	}

	httpx.JSONSuccess(w, r, map[string]interface{}{
		"book":     identifier,
		"quantity": quantity,
	}, nil)
}

// BasketPrice handles GET /basket/price?books=a - b, c - d.
func (h *HTTPHandler) BasketPrice(w http.ResponseWriter, r *http.Request) {
	rawList := r.URL.Query().Get("books")
	if rawList == "" {
		httpx.JSONError(w, r, http.StatusBadRequest, "BAD_REQUEST", "Must specify raw book basket list", nil)
		return
	}

	entries := basketDelimiter.Split(rawList, -1)

	total, err := h.svc.PriceBasket(r.Context(), entries)
	if err != nil {
		var shortfall *ShortfallError
		switch {
		case errors.As(err, &shortfall):
			details := make([]httpx.ErrorDetail, len(shortfall.Items))
			for i, item := range shortfall.Items {
				details[i] = httpx.ErrorDetail{
					Field:   fmt.Sprintf("%s - %s", item.Author, item.Title),
					Message: fmt.Sprintf("missing %d", item.Missing),
				}
			}
			httpx.JSONError(w, r, http.StatusConflict, "INSUFFICIENT_INVENTORY", "Not enough inventory for basket", details)
		case errors.Is(err, bookid.ErrMalformedIdentifier):
			httpx.JSONError(w, r, http.StatusBadRequest, "MALFORMED_IDENTIFIER", err.Error(), nil)
		default:
			httpx.JSONError(w, r, http.StatusInternalServerError, "INTERNAL_ERROR", "Internal server error", nil)
		}
		return
	}

	httpx.JSONSuccess(w, r, map[string]string{"total": total.String()}, nil)
}
