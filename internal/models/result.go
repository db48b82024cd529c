package models

import (
	"time"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

type ProcessRequest struct {
	JobDescription string `form:"job_description" validate:"required"`
	Mode           Mode   `form:"mode" validate:"omitempty,oneof=hr candidate"`
}

func (r *ProcessRequest) Validate() error {
	return validate.Struct(r)
}

type AskRequest struct {
	Question string `json:"question" validate:"required"`
}

func (r *AskRequest) Validate() error {
	return validate.Struct(r)
}

type TripPlanRequest struct {
	Destination  string   `json:"destination" validate:"required"`
	DurationDays int      `json:"duration_days" validate:"required,min=1,max=30"`
	Budget       int      `json:"budget" validate:"min=0"`
	Interests    []string `json:"interests"`
}

func (r *TripPlanRequest) Validate() error {
	return validate.Struct(r)
}

type TripChatRequest struct {
	Message string `json:"message" validate:"required"`
}

func (r *TripChatRequest) Validate() error {
	return validate.Struct(r)
}

type SessionResponse struct {
	ID          string           `json:"id"`
	Mode        Mode             `json:"mode"`
	Model       string           `json:"model"`
	Summary     CandidateSummary `json:"summary"`
	Candidate   CandidateRecord  `json:"candidate"`
	MatchScore  float64          `json:"match_score"`
	ScoreLabel  string           `json:"score_label"`
	Decision    Decision         `json:"decision"`
	Advice      string           `json:"advice,omitempty"`
	History     []Message        `json:"history"`
	Suggested   []string         `json:"suggested_questions,omitempty"`
	ProcessedAt time.Time        `json:"processed_at"`
}

type AnswerResponse struct {
	Question  string `json:"question"`
	Answer    string `json:"answer"`
	ErrorKind string `json:"error_kind,omitempty"`
	HistoryN  int    `json:"history_length"`
}

type StatusResponse struct {
	Running bool     `json:"running"`
	Models  []string `json:"models"`
	Error   string   `json:"error,omitempty"`
}

type MarkdownResponse struct {
	Markdown string `json:"markdown"`
}
