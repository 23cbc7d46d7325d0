package adoptions

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
)

// Uploader es lo que el intake multipart necesita del media store:
// depositar el stream bajo un nombre generado y devolver ese nombre.
type Uploader interface {
	Save(r io.Reader, originalName string) (string, error)
}

func RegisterRoutes(r chi.Router, svc *Service, uploads Uploader) {
	// Rutas del cliente original
	r.Get("/requests", listByStatusHandler(svc, StatusPending))
	r.Get("/approvedPets", listByStatusHandler(svc, StatusApproved))
	r.Get("/adoptedPets", listByStatusHandler(svc, StatusAdopted))
	r.Post("/services", submitHandler(svc, uploads))
	r.Put("/approving/{id}", approveHandler(svc))
	r.Delete("/delete/{id}", removeHandler(svc))

	// Alias RESTful para clientes de API
	r.Route("/pets", func(pr chi.Router) {
		pr.Get("/", listAllHandler(svc))
		pr.Post("/", createHandler(svc))
		pr.Get("/{id}", getHandler(svc))
		pr.Put("/{id}", updateHandler(svc))
		pr.Delete("/{id}", removeHandler(svc))
	})
}

type recordResponse struct {
	ID            string    `json:"id"`
	Name          string    `json:"name"`
	Type          string    `json:"type"`
	Age           string    `json:"age"`
	Area          string    `json:"area"`
	Justification string    `json:"justification"`
	Email         string    `json:"email"`
	Phone         string    `json:"phone"`
	Filename      string    `json:"filename"`
	Status        string    `json:"status"`
	UpdatedAt     time.Time `json:"updatedAt"`
}

type createRequest struct {
	Name          string `json:"name"`
	Age           string `json:"age"`
	Area          string `json:"area"`
	Justification string `json:"justification"`
	Email         string `json:"email"`
	Phone         string `json:"phone"`
	Type          string `json:"type"`
	Filename      string `json:"filename"`
	Status        string `json:"status"`
}

type approveRequest struct {
	Email  string `json:"email"`
	Phone  string `json:"phone"`
	Status string `json:"status"`
}

type updateRequest struct {
	// Punteros para update parcial real: nil = no tocar.
	Name          *string `json:"name"`
	Age           *string `json:"age"`
	Area          *string `json:"area"`
	Justification *string `json:"justification"`
	Email         *string `json:"email"`
	Phone         *string `json:"phone"`
	Type          *string `json:"type"`
	Filename      *string `json:"filename"`
	Status        *string `json:"status"`
}

// submitHandler es el intake multipart: la imagen viaja en el campo
// "picture" y los datos del formulario como form values.
func submitHandler(svc *Service, uploads Uploader) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		file, header, err := r.FormFile("picture")
		if err != nil {
			writeServiceError(w, ErrMissingFile)
			return
		}
		defer file.Close()

		filename, err := uploads.Save(file, header.Filename)
		if err != nil {
			writeJSON(w, http.StatusInternalServerError, errorBody("could not store image"))
			return
		}

		raw, err := svc.Submit(r.Context(), SubmitInput{
			Name:          r.FormValue("name"),
			Age:           r.FormValue("age"),
			Area:          r.FormValue("area"),
			Justification: r.FormValue("justification"),
			Email:         r.FormValue("email"),
			Phone:         r.FormValue("phone"),
			Type:          r.FormValue("type"),
			Filename:      filename,
		})
		if err != nil {
			writeServiceError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, toRawResponse(raw))
	}
}

func createHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req createRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeJSON(w, http.StatusBadRequest, errorBody("invalid json"))
			return
		}

		raw, err := svc.CreateFromData(r.Context(), CreateInput{
			Name:          req.Name,
			Age:           req.Age,
			Area:          req.Area,
			Justification: req.Justification,
			Email:         req.Email,
			Phone:         req.Phone,
			Type:          req.Type,
			Filename:      req.Filename,
			Status:        req.Status,
		})
		if err != nil {
			writeServiceError(w, err)
			return
		}

		writeJSON(w, http.StatusCreated, toRawResponse(raw))
	}
}

func approveHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req approveRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeJSON(w, http.StatusBadRequest, errorBody("invalid json"))
			return
		}

		raw, err := svc.Approve(r.Context(), chi.URLParam(r, "id"), ApproveInput{
			Email:  req.Email,
			Phone:  req.Phone,
			Status: req.Status,
		})
		if err != nil {
			writeServiceError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, toRawResponse(raw))
	}
}

func listByStatusHandler(svc *Service, status Status) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		items, err := svc.ListByStatus(r.Context(), status)
		if err != nil {
			writeServiceError(w, err)
			return
		}
		// Siempre 200 con array (vacío si no hay registros).
		writeJSON(w, http.StatusOK, toResponses(items))
	}
}

func listAllHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		items, err := svc.ListAll(r.Context())
		if err != nil {
			writeServiceError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, toResponses(items))
	}
}

func getHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		rec, err := svc.GetByID(r.Context(), chi.URLParam(r, "id"))
		if err != nil {
			writeServiceError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, toResponse(rec))
	}
}

func updateHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req updateRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeJSON(w, http.StatusBadRequest, errorBody("invalid json"))
			return
		}

		raw, err := svc.Update(r.Context(), chi.URLParam(r, "id"), Patch{
			Name:          req.Name,
			Age:           req.Age,
			Area:          req.Area,
			Justification: req.Justification,
			Email:         req.Email,
			Phone:         req.Phone,
			Type:          req.Type,
			Filename:      req.Filename,
			Status:        req.Status,
		})
		if err != nil {
			writeServiceError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, toRawResponse(raw))
	}
}

func removeHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := svc.Remove(r.Context(), chi.URLParam(r, "id")); err != nil {
			writeServiceError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, map[string]string{"message": "Pet deleted successfully"})
	}
}

func toResponse(rec Record) recordResponse {
	return recordResponse{
		ID:            rec.ID,
		Name:          rec.Name,
		Type:          string(rec.Type),
		Age:           rec.Age,
		Area:          rec.Area,
		Justification: rec.Justification,
		Email:         rec.Email,
		Phone:         rec.Phone,
		Filename:      rec.Filename,
		Status:        string(rec.Status),
		UpdatedAt:     rec.UpdatedAt,
	}
}

// toRawResponse arma la respuesta de los write paths: la forma guardada
// tal cual, sin normalizar (recién escrita, ya es canónica).
func toRawResponse(raw RawRecord) recordResponse {
	return recordResponse{
		ID:            raw.ID,
		Name:          raw.Name,
		Type:          string(raw.Type),
		Age:           raw.Age,
		Area:          raw.Area,
		Justification: raw.Justification,
		Email:         raw.Email,
		Phone:         raw.Phone,
		Filename:      raw.Filename,
		Status:        string(raw.Status),
		UpdatedAt:     raw.UpdatedAt,
	}
}

func toResponses(items []Record) []recordResponse {
	out := make([]recordResponse, 0, len(items))
	for _, rec := range items {
		out = append(out, toResponse(rec))
	}
	return out
}

func writeServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, ErrNotFound):
		writeJSON(w, http.StatusNotFound, errorBody(err.Error()))
	case errors.Is(err, ErrInvalidType), errors.Is(err, ErrMissingFile), errors.Is(err, ErrFileNotFound):
		writeJSON(w, http.StatusBadRequest, errorBody(err.Error()))
	default:
		writeJSON(w, http.StatusInternalServerError, errorBody("internal error"))
	}
}

func errorBody(msg string) map[string]string {
	return map[string]string{"error": msg}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
