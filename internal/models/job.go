package models

import "time"

// JobStatus is the application stage of a job record.
type JobStatus string

const (
	StatusPending   JobStatus = "pending"
	StatusInterview JobStatus = "interview"
	StatusDeclined  JobStatus = "declined"
)

// JobStatuses lists every status in presentation order.
var JobStatuses = []JobStatus{StatusPending, StatusInterview, StatusDeclined}

// Valid reports whether s is a known status.
func (s JobStatus) Valid() bool {
	switch s {
	case StatusPending, StatusInterview, StatusDeclined:
		return true
	}
	return false
}

// JobType describes the employment type of a job record.
type JobType string

const (
	JobTypeFullTime   JobType = "full-time"
	JobTypePartTime   JobType = "part-time"
	JobTypeRemote     JobType = "remote"
	JobTypeInternship JobType = "internship"
)

func (t JobType) Valid() bool {
	switch t {
	case JobTypeFullTime, JobTypePartTime, JobTypeRemote, JobTypeInternship:
		return true
	}
	return false
}

const DefaultJobLocation = "my city"

// Job is a single tracked application owned by CreatedBy.
type Job struct {
	ID          string    `json:"id"`
	Position    string    `json:"position"`
	Company     string    `json:"company"`
	Status      JobStatus `json:"status"`
	JobType     JobType   `json:"jobType"`
	JobLocation string    `json:"jobLocation"`
	CreatedBy   string    `json:"createdBy"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// MonthCount is the number of jobs created in one calendar month.
type MonthCount struct {
	Year  int
	Month time.Month
	Count int
}
