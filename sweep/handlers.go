package sweep

import (
	"net/http"

	"voyago/utils"

	"github.com/julienschmidt/httprouter"
)

// Handlers exposes an operator-triggered manual run.
type Handlers struct {
	sweeper *Sweeper
}

func NewHandlers(sweeper *Sweeper) *Handlers {
	return &Handlers{sweeper: sweeper}
}

// POST /api/admin/bookings/sweep
func (h *Handlers) RunNow(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	summary, err := h.sweeper.Run(r.Context())
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, err.Error())
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, utils.M{
		"success": true,
		"data":    summary,
	})
}
