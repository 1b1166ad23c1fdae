package formkit

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/tripfolio/formkit/pkg/form"
)

// errorEnvelope is the JSON body the frontend's error rendering consumes.
type errorEnvelope struct {
	Errors          map[string][]string `json:"errors"`
	Warnings        map[string][]string `json:"warnings,omitempty"`
	FirstErrorField string              `json:"first_error_field,omitempty"`
}

// Routes mounts the validation endpoints for one form:
//
//	POST /              whole-form validation
//	POST /steps/{step}  one wizard step
//
// Valid submissions answer 204 No Content, invalid ones 422 with the error
// envelope, and unparseable ones 400 or 415. A per-submission id ties log
// lines to support tickets.
func Routes(v *form.Validator, log *slog.Logger) chi.Router {
	if log == nil {
		log = slog.Default()
	}

	r := chi.NewRouter()
	r.Post("/", validateHandler(v, log))
	r.Post("/steps/{step}", stepHandler(v, log))
	return r
}

func validateHandler(v *form.Validator, log *slog.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		submission := uuid.NewString()

		data, err := bindOrReject(w, r, v, log, submission)
		if err != nil {
			return
		}

		res := v.ValidateForm(r.Context(), data)
		log.InfoContext(r.Context(), "form validated",
			slog.String("submission_id", submission),
			slog.Bool("valid", res.Valid),
			slog.Int("error_fields", len(res.Errors)),
			slog.String("first_error_field", res.FirstErrorField),
		)
		writeResult(w, res)
	}
}

func stepHandler(v *form.Validator, log *slog.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		submission := uuid.NewString()

		step, err := strconv.Atoi(chi.URLParam(r, "step"))
		if err != nil {
			http.Error(w, "invalid step index", http.StatusBadRequest)
			return
		}

		data, err := bindOrReject(w, r, v, log, submission)
		if err != nil {
			return
		}

		res, err := v.ValidateStep(r.Context(), step, data)
		if err != nil {
			// Unknown step or unpartitioned schema is a caller mistake, not
			// a validation outcome.
			http.Error(w, err.Error(), http.StatusNotFound)
			return
		}

		log.InfoContext(r.Context(), "step validated",
			slog.String("submission_id", submission),
			slog.Int("step", step),
			slog.Bool("valid", res.Valid),
			slog.Int("error_fields", len(res.Errors)),
		)
		writeResult(w, res)
	}
}

func bindOrReject(w http.ResponseWriter, r *http.Request, v *form.Validator, log *slog.Logger, submission string) (map[string]any, error) {
	data, err := BindFormData(r, v.Schema())
	if err == nil {
		return data, nil
	}

	log.WarnContext(r.Context(), "form binding failed",
		slog.String("submission_id", submission),
		slog.Any("error", err),
	)

	status := http.StatusBadRequest
	if errors.Is(err, ErrUnsupportedMediaType) {
		status = http.StatusUnsupportedMediaType
	}
	http.Error(w, err.Error(), status)
	return nil, err
}

func writeResult(w http.ResponseWriter, res form.Result) {
	if res.Valid {
		w.WriteHeader(http.StatusNoContent)
		return
	}

	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(http.StatusUnprocessableEntity)
	_ = json.NewEncoder(w).Encode(errorEnvelope{
		Errors:          res.Errors,
		Warnings:        res.Warnings,
		FirstErrorField: res.FirstErrorField,
	})
}
