package handlers

import (
	"net/http"

	"siddeshlogistics/apperror"
	"siddeshlogistics/models"
	"siddeshlogistics/repository"
)

type InitialHandler struct {
	Repo repository.InitialRepository
}

// SaveInitial stores the letterhead of the calling owner, replacing any earlier one.
func (h *InitialHandler) SaveInitial(w http.ResponseWriter, r *http.Request) {
	var initial models.InitialSetup
	if err := decodeJSON(r, &initial); err != nil {
		writeError(w, r, err)
		return
	}
	if initial.CompanyName == "" {
		writeError(w, r, apperror.NewValidationError("company name is required"))
		return
	}

	owner := ownerOf(r)
	existing, err := h.Repo.GetInitial(r.Context(), owner)
	if err != nil {
		writeError(w, r, apperror.NewPersistenceError("load initial setup", err))
		return
	}
	initial.ID = ""
	if existing != nil {
		initial.ID = existing.ID
		initial.CreatedAt = existing.CreatedAt
	}
	initial.OwnerID = owner

	if err := h.Repo.SaveInitial(r.Context(), &initial); err != nil {
		writeError(w, r, apperror.NewPersistenceError("save initial setup", err))
		return
	}
	writeJSON(w, http.StatusCreated, ApiResponse{Success: true, Data: initial})
}

func (h *InitialHandler) GetInitial(w http.ResponseWriter, r *http.Request) {
	initial, err := h.Repo.GetInitial(r.Context(), ownerOf(r))
	if err != nil {
		writeError(w, r, apperror.NewPersistenceError("load initial setup", err))
		return
	}
	if initial == nil {
		writeError(w, r, apperror.NewNotFoundError("Initial details"))
		return
	}
	writeJSON(w, http.StatusOK, ApiResponse{Success: true, Data: initial})
}
