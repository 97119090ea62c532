package dto

import "github.com/hongminglow/jobtracker-be/internal/models"

type CreateJobRequest struct {
	Position    string `json:"position"`
	Company     string `json:"company"`
	Status      string `json:"status"`
	JobType     string `json:"jobType"`
	JobLocation string `json:"jobLocation"`
}

// UpdateJobRequest uses pointers so omitted fields keep their stored values.
type UpdateJobRequest struct {
	Position    string  `json:"position"`
	Company     string  `json:"company"`
	Status      *string `json:"status"`
	JobType     *string `json:"jobType"`
	JobLocation *string `json:"jobLocation"`
}

type JobResponse struct {
	Job models.Job `json:"job"`
}

type UpdatedJobResponse struct {
	UpdatedJob models.Job `json:"updatedJob"`
}

type JobListResponse struct {
	Jobs       []models.Job `json:"jobs"`
	TotalJobs  int          `json:"totalJobs"`
	NumOfPages int          `json:"numOfPages"`
}

type DefaultStats struct {
	Pending   int `json:"pending"`
	Interview int `json:"interview"`
	Declined  int `json:"declined"`
}

type MonthlyApplication struct {
	Date  string `json:"date"`
	Count int    `json:"count"`
}

type StatsResponse struct {
	DefaultStats        DefaultStats         `json:"defaultStats"`
	MonthlyApplications []MonthlyApplication `json:"monthlyApplications"`
}

type MessageResponse struct {
	Msg string `json:"msg"`
}
