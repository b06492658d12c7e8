package importcsv

import (
	"encoding/csv"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	enc "github.com/ledgerline/ledgerline/internal/encoding"
	"github.com/ledgerline/ledgerline/internal/importer"
	"github.com/ledgerline/ledgerline/internal/ledger"
)

type Handler struct {
	parser    *importer.Parser
	ledgerSvc *ledger.Service
}

func NewHandler(parser *importer.Parser, ledgerSvc *ledger.Service) *Handler {
	return &Handler{
		parser:    parser,
		ledgerSvc: ledgerSvc,
	}
}

func (h *Handler) Routes(r chi.Router) {
	r.Post("/", h.importCSV)
	r.Post("/detect", h.detect)
}

// importCSV accepts a multipart form: "file" is the CSV, "account_id" the
// target account, "profile" a JSON-encoded importer.Profile describing the
// file's layout. Row-scoped failures land in the summary's errors; the
// ledger write is all-or-nothing.
func (h *Handler) importCSV(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(10 << 20); err != nil {
		http.Error(w, "failed to parse form: "+err.Error(), http.StatusBadRequest)
		return
	}

	accountID, err := uuid.Parse(r.FormValue("account_id"))
	if err != nil {
		http.Error(w, "account_id field is required", http.StatusBadRequest)
		return
	}

	var profile importer.Profile
	if err := json.Unmarshal([]byte(r.FormValue("profile")), &profile); err != nil {
		http.Error(w, "profile field must be a JSON import profile", http.StatusBadRequest)
		return
	}

	file, _, err := r.FormFile("file")
	if err != nil {
		http.Error(w, "file field is required", http.StatusBadRequest)
		return
	}
	defer file.Close()

	parsed, err := h.parser.Parse(file, profile)
	if err != nil {
		if errors.Is(err, importer.ErrMalformedRow) {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		http.Error(w, err.Error(), http.StatusUnprocessableEntity)

		return
	}

	result, err := h.ledgerSvc.Reconcile(r.Context(), accountID, ledger.SourceImport, parsed.Records)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	summary := result.Summary()
	summary.Errors = append(parsed.Errors, summary.Errors...)

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)

	if err := json.NewEncoder(w).Encode(summary); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

type detectResponse struct {
	Mapping importer.Mapping `json:"mapping"`
	// Confident is false when no usable date or amount column was found
	// and the mapping needs manual completion.
	Confident bool `json:"confident"`
}

// detect reads just enough of an uploaded CSV to guess a column mapping.
func (h *Handler) detect(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(10 << 20); err != nil {
		http.Error(w, "failed to parse form: "+err.Error(), http.StatusBadRequest)
		return
	}

	file, _, err := r.FormFile("file")
	if err != nil {
		http.Error(w, "file field is required", http.StatusBadRequest)
		return
	}
	defer file.Close()

	utf8r, err := enc.NewUTF8Reader(file)
	if err != nil {
		http.Error(w, err.Error(), http.StatusUnprocessableEntity)
		return
	}

	reader := csv.NewReader(utf8r)
	reader.FieldsPerRecord = -1

	headers, err := reader.Read()
	if err != nil {
		http.Error(w, "could not read header row", http.StatusUnprocessableEntity)
		return
	}

	mapping, ok := importer.Detect(headers)

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(detectResponse{Mapping: mapping, Confident: ok}); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}
