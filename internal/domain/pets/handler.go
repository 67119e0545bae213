package pets

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"pet-directory/internal/platform/serialize"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, svc *Service) {
	// Perfil por ID
	r.Get("/pets/{petID}", getPetHandler(svc))

	// Filtro por igualdad de especie
	r.Get("/species/{species}", listBySpeciesHandler(svc))
}

type messageResponse struct {
	Message string `json:"message"`
}

type speciesResponse struct {
	Count int              `json:"count"`
	Pets  []serialize.Dict `json:"pets"`
}

// getPetHandler busca una mascota por primary key y responde con el
// dict serializado, o 404 con mensaje si el ID no existe.
//
// @Summary      Perfil de mascota
// @Tags         pets
// @Produce      json
// @Param        petID  path  int  true  "ID de la mascota"
// @Success      200  {object}  map[string]any
// @Failure      404  {object}  pets.messageResponse
// @Router       /pets/{petID} [get]
func getPetHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := strconv.ParseInt(chi.URLParam(r, "petID"), 10, 64)
		if err != nil {
			writeJSON(w, http.StatusBadRequest, messageResponse{
				Message: "Pet id must be an integer.",
			})
			return
		}

		p, err := svc.GetByID(r.Context(), id)
		if err != nil {
			if errors.Is(err, ErrNotFound) {
				writeJSON(w, http.StatusNotFound, messageResponse{
					Message: fmt.Sprintf("Pet %d not found.", id),
				})
				return
			}
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		d, err := serialize.Record(p)
		if err != nil {
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		writeJSON(w, http.StatusOK, d)
	}
}

// listBySpeciesHandler responde count + lista serializada, en el orden
// en que el storage devolvió las filas. Cero matches sigue siendo 200.
//
// @Summary      Mascotas por especie
// @Tags         pets
// @Produce      json
// @Param        species  path  string  true  "Especie (match exacto)"
// @Success      200  {object}  pets.speciesResponse
// @Router       /species/{species} [get]
func listBySpeciesHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		species := chi.URLParam(r, "species")

		items, err := svc.ListBySpecies(r.Context(), species)
		if err != nil {
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		out, err := serialize.Collect(items)
		if err != nil {
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		writeJSON(w, http.StatusOK, speciesResponse{
			Count: len(out),
			Pets:  out,
		})
	}
}

// writeJSON vive en el módulo (no en un helper compartido) siguiendo la
// convención de duplicarlo por handler hasta que haga falta extraerlo.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
