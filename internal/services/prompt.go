package services

import (
	"fmt"
	"strings"
)

type PromptBuilder struct{}

func NewPromptBuilder() *PromptBuilder {
	return &PromptBuilder{}
}

// BuildQuestionSetPrompt creates the prompt for generating a mock
// interview question set for a job opening.
func (pb *PromptBuilder) BuildQuestionSetPrompt(jobPosition, jobDesc string, jobExperience float64, count int, similarQuestions string) string {
	var sb strings.Builder

	fmt.Fprintf(&sb, `You are an experienced technical interviewer preparing a mock interview.

JOB POSITION: %s
JOB DESCRIPTION / TECH STACK: %s
YEARS OF EXPERIENCE: %.0f

Generate exactly %d interview questions appropriate for this position and
experience level, each with a strong model answer.
`, jobPosition, jobDesc, jobExperience, count)

	if similarQuestions != "" {
		fmt.Fprintf(&sb, `
Questions already asked for similar positions (avoid repeating these,
but match their difficulty and style):
%s
`, similarQuestions)
	}

	sb.WriteString(`
Return your response as a JSON array in the following format:
[
  {"question": "<the interview question>", "answer": "<a model answer in 3-5 sentences>"}
]

Return ONLY the JSON array, no surrounding prose.`)

	return sb.String()
}

// BuildAnswerGradingPrompt creates the prompt for grading a single
// recorded answer against the model answer.
func (pb *PromptBuilder) BuildAnswerGradingPrompt(question, correctAnswer, userAnswer string) string {
	return fmt.Sprintf(`You are an experienced technical interviewer grading a candidate's answer in a mock interview.

QUESTION:
%s

MODEL ANSWER:
%s

CANDIDATE'S ANSWER:
%s

Rate the candidate's answer from 0 to 10 against the model answer and
give 2-3 sentences of constructive feedback on what was missing or could
be improved.

Return your response in the following JSON format:
{
  "rating": "<number from 0 to 10 as a string>",
  "feedback": "<2-3 sentences of feedback>"
}

Return ONLY the JSON object, no surrounding prose.`,
		question, correctAnswer, userAnswer)
}

// BuildResumeDraftPrompt creates the prompt for extracting resume
// fields from the raw text of an uploaded resume PDF.
func (pb *PromptBuilder) BuildResumeDraftPrompt(resumeText string) string {
	return fmt.Sprintf(`You are a resume-writing assistant. Extract the candidate's details from
the raw resume text below and draft a short professional summary.

RESUME TEXT:
%s

Return your response in the following JSON format:
{
  "firstName": "<first name or empty string>",
  "lastName": "<last name or empty string>",
  "jobTitle": "<current or target job title or empty string>",
  "address": "<address or empty string>",
  "phone": "<phone number or empty string>",
  "email": "<email address or empty string>",
  "summary": "<a 2-4 sentence professional summary written in first person>",
  "skills": ["<skill>", "..."]
}

Use empty strings for anything not present in the text. Return ONLY the
JSON object, no surrounding prose.`, resumeText)
}

// FormatSimilarQuestions renders retrieved question-bank hits as prompt
// context.
func FormatSimilarQuestions(results []BankQuestion) string {
	if len(results) == 0 {
		return ""
	}

	var parts []string
	for _, result := range results {
		parts = append(parts, fmt.Sprintf("- [%s] %s", result.JobPosition, strings.TrimSpace(result.Question)))
	}

	return strings.Join(parts, "\n")
}
