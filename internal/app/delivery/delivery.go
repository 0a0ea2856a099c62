package delivery

import (
	"encoding/json"
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/songbridge/songbridge/internal/app"
	"github.com/songbridge/songbridge/internal/app/models"
	"github.com/songbridge/songbridge/internal/utils/logger"
	"github.com/songbridge/songbridge/internal/utils/responses"
	"go.uber.org/zap"
)

type TaskDelivery struct {
	orchestrator app.Orchestrator
}

func CreateTaskDelivery(orchestrator app.Orchestrator) *TaskDelivery {
	return &TaskDelivery{
		orchestrator: orchestrator,
	}
}

// SubmitConversion accepts a reference link and registers its conversion.
func (d *TaskDelivery) SubmitConversion(w http.ResponseWriter, r *http.Request) {
	const funcName = "TaskDelivery.SubmitConversion"
	logger.Debug("submitting conversion", zap.String("function", funcName))

	req := models.SubmitRequest{}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		responses.DoBadResponseAndLog(w, http.StatusBadRequest, "invalid request body")
		return
	}

	taskID, err := d.orchestrator.Submit(req.Link)
	if err != nil {
		responses.ResponseErrorAndLog(w, err, funcName)
		return
	}

	responses.DoJSONResponse(w, map[string]string{"task_id": taskID.String()}, http.StatusAccepted)
}

// SubmitDownload queues a pre-resolved catalog track for download.
func (d *TaskDelivery) SubmitDownload(w http.ResponseWriter, r *http.Request) {
	const funcName = "TaskDelivery.SubmitDownload"
	logger.Debug("submitting download", zap.String("function", funcName))

	req := struct {
		CatalogID int64 `json:"catalog_id"`
	}{}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.CatalogID == 0 {
		responses.DoBadResponseAndLog(w, http.StatusBadRequest, "invalid request body")
		return
	}

	taskID, err := d.orchestrator.SubmitCatalogTrack(r.Context(), req.CatalogID)
	if err != nil {
		responses.ResponseErrorAndLog(w, err, funcName)
		return
	}

	responses.DoJSONResponse(w, map[string]string{"task_id": taskID.String()}, http.StatusAccepted)
}

// GetAllTasks returns the snapshot listing, newest first.
func (d *TaskDelivery) GetAllTasks(w http.ResponseWriter, r *http.Request) {
	const funcName = "TaskDelivery.GetAllTasks"
	logger.Debug("listing tasks", zap.String("function", funcName))

	responses.DoJSONResponse(w, d.orchestrator.Tasks(), http.StatusOK)
}

// CancelTask cancels one task. Cancelling an unknown or already-removed task
// is not an error.
func (d *TaskDelivery) CancelTask(w http.ResponseWriter, r *http.Request) {
	const funcName = "TaskDelivery.CancelTask"
	logger.Debug("cancelling task", zap.String("function", funcName))

	vars := mux.Vars(r)
	taskID, err := uuid.Parse(vars["id"])
	if err != nil {
		responses.DoBadResponseAndLog(w, http.StatusBadRequest, "invalid task id")
		return
	}

	d.orchestrator.CancelTask(taskID)
	w.WriteHeader(http.StatusNoContent)
}

// ClearTasks cancels every task and restarts the worker pools.
func (d *TaskDelivery) ClearTasks(w http.ResponseWriter, r *http.Request) {
	const funcName = "TaskDelivery.ClearTasks"
	logger.Info("clearing task queue", zap.String("function", funcName))

	d.orchestrator.ClearAll()
	w.WriteHeader(http.StatusNoContent)
}

// Search proxies a catalog search.
func (d *TaskDelivery) Search(w http.ResponseWriter, r *http.Request) {
	const funcName = "TaskDelivery.Search"

	query := r.URL.Query().Get("q")
	if query == "" {
		responses.DoBadResponseAndLog(w, http.StatusBadRequest, "missing query")
		return
	}

	results, err := d.orchestrator.Search(r.Context(), query)
	if err != nil {
		responses.ResponseErrorAndLog(w, err, funcName)
		return
	}

	responses.DoJSONResponse(w, results, http.StatusOK)
}
