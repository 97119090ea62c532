package handlers

import (
	"net/http"

	"github.com/hongminglow/jobtracker-be/internal/auth"
	"github.com/hongminglow/jobtracker-be/internal/http/respond"
	"github.com/hongminglow/jobtracker-be/internal/jobs"
	"github.com/hongminglow/jobtracker-be/internal/logging"
	"github.com/hongminglow/jobtracker-be/internal/models"
	"github.com/hongminglow/jobtracker-be/internal/models/dto"
)

// JobsHandler serves the owner-scoped job endpoints. Every route requires
// an identity.
type JobsHandler struct {
	jobs *jobs.Service
	log  logging.Logger
}

func NewJobsHandler(svc *jobs.Service, log logging.Logger) *JobsHandler {
	return &JobsHandler{jobs: svc, log: log}
}

func (h *JobsHandler) Register(mux *http.ServeMux, protect func(http.Handler) http.Handler) {
	mux.Handle("POST /api/v1/jobs", protect(http.HandlerFunc(h.handleCreate)))
	mux.Handle("GET /api/v1/jobs", protect(http.HandlerFunc(h.handleList)))
	mux.Handle("GET /api/v1/jobs/stats", protect(http.HandlerFunc(h.handleStats)))
	mux.Handle("PATCH /api/v1/jobs/{id}", protect(http.HandlerFunc(h.handleUpdate)))
	mux.Handle("DELETE /api/v1/jobs/{id}", protect(http.HandlerFunc(h.handleDelete)))
}

func (h *JobsHandler) handleCreate(w http.ResponseWriter, r *http.Request) {
	id, _ := auth.IdentityFrom(r.Context())
	var req dto.CreateJobRequest
	if err := respond.Decode(r, &req); err != nil {
		respond.Error(w, r, h.log, err)
		return
	}
	job, err := h.jobs.Create(r.Context(), id, jobs.CreateInput{
		Position:    req.Position,
		Company:     req.Company,
		Status:      req.Status,
		JobType:     req.JobType,
		JobLocation: req.JobLocation,
	})
	if err != nil {
		respond.Error(w, r, h.log, err)
		return
	}
	respond.JSON(w, http.StatusCreated, dto.JobResponse{Job: job})
}

func (h *JobsHandler) handleList(w http.ResponseWriter, r *http.Request) {
	id, _ := auth.IdentityFrom(r.Context())
	list, err := h.jobs.ListByOwner(r.Context(), id)
	if err != nil {
		respond.Error(w, r, h.log, err)
		return
	}
	respond.JSON(w, http.StatusOK, dto.JobListResponse{Jobs: list, TotalJobs: len(list), NumOfPages: 1})
}

func (h *JobsHandler) handleUpdate(w http.ResponseWriter, r *http.Request) {
	id, _ := auth.IdentityFrom(r.Context())
	var req dto.UpdateJobRequest
	if err := respond.Decode(r, &req); err != nil {
		respond.Error(w, r, h.log, err)
		return
	}
	job, err := h.jobs.Update(r.Context(), id, r.PathValue("id"), jobs.UpdateInput{
		Position:    req.Position,
		Company:     req.Company,
		Status:      req.Status,
		JobType:     req.JobType,
		JobLocation: req.JobLocation,
	})
	if err != nil {
		respond.Error(w, r, h.log, err)
		return
	}
	respond.JSON(w, http.StatusOK, dto.UpdatedJobResponse{UpdatedJob: job})
}

func (h *JobsHandler) handleDelete(w http.ResponseWriter, r *http.Request) {
	id, _ := auth.IdentityFrom(r.Context())
	if err := h.jobs.Delete(r.Context(), id, r.PathValue("id")); err != nil {
		respond.Error(w, r, h.log, err)
		return
	}
	respond.Msg(w, http.StatusOK, "Success! Job removed.")
}

func (h *JobsHandler) handleStats(w http.ResponseWriter, r *http.Request) {
	id, _ := auth.IdentityFrom(r.Context())
	stats, err := h.jobs.Stats(r.Context(), id)
	if err != nil {
		respond.Error(w, r, h.log, err)
		return
	}

	monthly := make([]dto.MonthlyApplication, 0, len(stats.Monthly))
	for _, m := range stats.Monthly {
		monthly = append(monthly, dto.MonthlyApplication{Date: m.Date, Count: m.Count})
	}
	respond.JSON(w, http.StatusOK, dto.StatsResponse{
		DefaultStats: dto.DefaultStats{
			Pending:   stats.ByStatus[models.StatusPending],
			Interview: stats.ByStatus[models.StatusInterview],
			Declined:  stats.ByStatus[models.StatusDeclined],
		},
		MonthlyApplications: monthly,
	})
}
