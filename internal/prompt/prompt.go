// Package prompt renders the instruction/input pair sent to the generation
// service. Rendering is pure: the same request always yields the same prompt.
package prompt

import (
	"fmt"
	"strings"

	"testforge/internal/domain"
)

const Instructions = "You are an expert teacher and assessment designer. " +
	"You must ONLY use facts present in the source text. " +
	"Do not invent facts, names, numbers or dates that the source text does not state. " +
	"Output must follow the requested format exactly, as plain text with no markdown."

// SourceDelimiter wraps the verbatim source text. It is not escaped: source
// text containing it can break the prompt structure.
const SourceDelimiter = `"""`

const (
	mcqOnlyPhrase = "Multiple choice only"
	mixedPhrase   = "Mostly multiple choice + up to 2 short answer"
)

// ModePhrase returns the question-type instruction for a mode.
func ModePhrase(mode domain.Mode) string {
	if mode == domain.ModeMCQ {
		return mcqOnlyPhrase
	}
	return mixedPhrase
}

// Build renders the prompt for a sanitized request.
func Build(req *domain.QuizRequest) domain.Prompt {
	var b strings.Builder

	fmt.Fprintf(&b, "Create a %s quiz with exactly %d questions for %s students.\n",
		req.Difficulty, req.NumQuestions, strings.ToLower(req.GradeLevel.Label()))
	fmt.Fprintf(&b, "Question types: %s.\n", ModePhrase(req.Mode))
	if req.Mode == domain.ModeMCQ {
		b.WriteString("Every question must have exactly four choices labeled A) to D) with one correct answer.\n")
	} else {
		b.WriteString("Multiple choice questions have four choices labeled A) to D). Short answer questions have no choices.\n")
	}
	b.WriteString("\n")

	b.WriteString("Use EXACTLY this format:\n\n")
	writeTemplate(&b, req)
	b.WriteString("\n")

	b.WriteString("SOURCE TEXT:\n")
	b.WriteString(SourceDelimiter)
	b.WriteString(req.SourceText)
	b.WriteString(SourceDelimiter)

	return domain.Prompt{
		Instructions: Instructions,
		Input:        b.String(),
	}
}

func writeTemplate(b *strings.Builder, req *domain.QuizRequest) {
	fmt.Fprintf(b, "%s\n", req.Title)
	fmt.Fprintf(b, "Grade: %s | Difficulty: %s | Mode: %s\n\n", req.GradeLevel.Label(), req.Difficulty, ModePhrase(req.Mode))

	b.WriteString("1) <question text>\n")
	b.WriteString("A) <choice>\n")
	b.WriteString("B) <choice>\n")
	b.WriteString("C) <choice>\n")
	b.WriteString("D) <choice>\n\n")
	fmt.Fprintf(b, "... continue numbering through %d)\n\n", req.NumQuestions)

	b.WriteString("ANSWER KEY\n")
	b.WriteString("1) <letter, or the expected short answer>\n")
	fmt.Fprintf(b, "... through %d)\n", req.NumQuestions)

	if req.Explanations {
		b.WriteString("\nEXPLANATIONS\n")
		b.WriteString("1) <one or two sentences explaining the answer using the source text>\n")
		fmt.Fprintf(b, "... through %d)\n", req.NumQuestions)
	}
}
