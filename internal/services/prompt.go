package services

import (
	"fmt"
	"strings"

	"alfredoptarigan/career-fit/internal/models"
)

// contextExcerptLimit bounds how much resume text goes into the context.
const contextExcerptLimit = 1000

type PromptBuilder struct{}

func NewPromptBuilder() *PromptBuilder {
	return &PromptBuilder{}
}

// BuildAssistantContext creates the fixed prefix sent with every question of a session.
func (pb *PromptBuilder) BuildAssistantContext(candidate models.CandidateRecord, jobDescription string, score models.MatchScore) string {
	name := candidate.Name
	if name == "" {
		name = "Not provided"
	}

	excerpt := candidate.FullText
	if runes := []rune(excerpt); len(runes) > contextExcerptLimit {
		excerpt = string(runes[:contextExcerptLimit])
	}

	return fmt.Sprintf(`You are an expert HR assistant helping with candidate evaluation. You have access to the following information:

CANDIDATE INFORMATION:
- Name: %s
- Total Experience: %s years
- Resume Pages: %d
- Skills and Experience: %s...

JOB DESCRIPTION:
%s

MATCH SCORE: %s

INSTRUCTIONS:
- Provide professional, helpful responses about this candidate
- Base your analysis on the resume content and job requirements
- Be objective and constructive in your feedback
- If asked about hiring decisions, consider the match score and relevant experience
- Answer HR-related questions about interviewing, evaluation, and candidate assessment
- Keep responses concise but informative`,
		name, models.FormatYears(candidate.TotalExperienceYears), candidate.PageCount,
		excerpt, jobDescription, score)
}

// BuildQuestionPrompt appends one question to the session context.
func (pb *PromptBuilder) BuildQuestionPrompt(assistantContext, question string) string {
	return fmt.Sprintf(`%s

QUESTION: %s

Please provide a professional HR response based on the candidate information and job requirements provided above.`,
		assistantContext, question)
}

func (pb *PromptBuilder) RecommendationQuestion() string {
	return `Based on the candidate's profile and the job requirements, provide a comprehensive recommendation.
Include:
1. Key strengths that match the role
2. Areas of concern or gaps
3. Overall recommendation (Shortlist/Reject)
4. Suggested interview focus areas`
}

func (pb *PromptBuilder) InterviewQuestionsQuestion() string {
	return `Based on this candidate's background and the job requirements, suggest 5-7 specific interview questions that would help evaluate:
1. Technical competency
2. Experience relevance
3. Cultural fit
4. Areas where more clarification is needed

Format as a numbered list with brief explanations.`
}

func (pb *PromptBuilder) RequirementsComparisonQuestion() string {
	return `Create a detailed comparison between the candidate's profile and job requirements:
1. Required skills they possess
2. Required skills they lack
3. Experience level match
4. Additional value they bring
5. Risk factors to consider`
}

func (pb *PromptBuilder) SalaryGuidanceQuestion(totalExperienceYears float64) string {
	return fmt.Sprintf(`Based on the candidate's experience level (%s years)
and the job requirements, provide guidance on:
1. Appropriate salary range expectations
2. Negotiation points
3. Factors that might justify higher/lower offers`, models.FormatYears(totalExperienceYears))
}

// AnalysisQuestion is asked automatically after an HR decision.
func (pb *PromptBuilder) AnalysisQuestion(decision models.Decision) string {
	if decision == models.DecisionShortlist {
		return "Why should this candidate be shortlisted? Provide detailed analysis."
	}
	return "Why should this candidate be rejected? Provide detailed analysis."
}

var (
	hrSuggestedQuestions = []string{
		"What are the candidate's key strengths?",
		"How does their experience align with the job requirements?",
		"What skills are missing from their profile?",
		"Would you recommend this candidate for interview?",
		"What interview questions should I ask this candidate?",
	}

	candidateQuickQuestions = []string{
		"How can I improve my chances for this role?",
		"What should I highlight in my cover letter?",
		"How should I prepare for the interview?",
		"What are my biggest strengths for this position?",
		"Should I apply for this role or wait?",
		"How can I stand out from other candidates?",
		"What questions should I ask the interviewer?",
	}
)

// SuggestedQuestions returns a copy of the quick questions for a mode.
func (pb *PromptBuilder) SuggestedQuestions(mode models.Mode) []string {
	src := hrSuggestedQuestions
	if mode == models.ModeCandidate {
		src = candidateQuickQuestions
	}
	return append([]string(nil), src...)
}

const (
	candidateFreePrefix  = "As a candidate asking about this role: "
	candidateQuickPrefix = "As a candidate: "
)

// FramedQuestion is what gets sent to the assistant for a user question.
// Candidate mode adds a prefix; the history keeps the raw question.
func (pb *PromptBuilder) FramedQuestion(mode models.Mode, question string, quick bool) string {
	if mode != models.ModeCandidate {
		return question
	}
	if quick {
		return candidateQuickPrefix + question
	}
	return candidateFreePrefix + question
}

// InsightKind names a canned analysis tab.
type InsightKind string

const (
	InsightStrengths  InsightKind = "strengths"
	InsightGaps       InsightKind = "gaps"
	InsightInterview  InsightKind = "interview"
	InsightSalary     InsightKind = "salary"
	InsightActionPlan InsightKind = "action-plan"

	InsightRecommendation      InsightKind = "recommendation"
	InsightInterviewQuestions  InsightKind = "interview-questions"
	InsightRequirements        InsightKind = "requirements"
	InsightSalaryGuidance      InsightKind = "salary-guidance"
	InsightDecisionExplanation InsightKind = "decision"
)

var insightQuestions = map[InsightKind]string{
	InsightStrengths: "What are this candidate's key strengths that match the job requirements? Be specific and encouraging.",
	InsightGaps:      "What skills or experience is this candidate missing for the role? Provide constructive advice on how to develop these skills.",
	InsightInterview: "What interview questions is this candidate likely to face? Provide questions with brief tips on how to answer them.",
	InsightSalary:    "Based on this candidate's experience and the role, what salary range should they expect? Include negotiation tips.",
	InsightActionPlan: `Create a personalized action plan for this candidate to improve their chances for this role:
1. Immediate actions (next 24-48 hours)
2. Short-term goals (next 1-2 weeks)
3. Long-term development (next 1-3 months)
4. Application strategy tips
5. Interview preparation checklist`,
}

// InsightQuestion returns the canned question for kind.
func (pb *PromptBuilder) InsightQuestion(kind InsightKind) (string, bool) {
	q, ok := insightQuestions[InsightKind(strings.ToLower(string(kind)))]
	return q, ok
}
