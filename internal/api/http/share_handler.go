package http

import (
	"net/http"

	"skyledger-backend/internal/domain"
	"skyledger-backend/internal/service"
)

type ShareHandler struct {
	shareService service.ShareService
}

func NewShareHandler(shareService service.ShareService) *ShareHandler {
	return &ShareHandler{shareService: shareService}
}

type inviteRequest struct {
	Email string `json:"email"`
	Role  string `json:"role"`
}

type acceptInviteRequest struct {
	Token string `json:"token"`
}

func (h *ShareHandler) Invite(w http.ResponseWriter, r *http.Request) {
	aircraftID, ok := pathID(r, "aircraft_id")
	if !ok {
		writeBadRequest(w, "invalid aircraft id")
		return
	}

	var req inviteRequest
	if !decodeBody(w, r, &req) {
		return
	}

	invitation, err := h.shareService.InviteCoOwner(r.Context(), userIDFromContext(r.Context()), aircraftID, req.Email, domain.ShareRole(req.Role))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, invitation)
}

func (h *ShareHandler) Accept(w http.ResponseWriter, r *http.Request) {
	var req acceptInviteRequest
	if !decodeBody(w, r, &req) {
		return
	}
	if req.Token == "" {
		writeBadRequest(w, "token is required")
		return
	}

	share, err := h.shareService.AcceptInvite(r.Context(), userIDFromContext(r.Context()), req.Token)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, share)
}

func (h *ShareHandler) List(w http.ResponseWriter, r *http.Request) {
	aircraftID, ok := pathID(r, "aircraft_id")
	if !ok {
		writeBadRequest(w, "invalid aircraft id")
		return
	}

	shares, err := h.shareService.ListShares(r.Context(), userIDFromContext(r.Context()), aircraftID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, shares)
}

func (h *ShareHandler) Revoke(w http.ResponseWriter, r *http.Request) {
	aircraftID, ok := pathID(r, "aircraft_id")
	if !ok {
		writeBadRequest(w, "invalid aircraft id")
		return
	}
	shareID, ok := pathID(r, "id")
	if !ok {
		writeBadRequest(w, "invalid share id")
		return
	}

	if err := h.shareService.RevokeShare(r.Context(), userIDFromContext(r.Context()), aircraftID, shareID); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusNoContent, nil)
}
