package service

import (
	"fmt"
	"strings"

	"github.com/MKhiriev/go-job-tracker/models"
)

const (
	defaultTone     = "professional"
	maxPromptResume = 8000
)

const coverLetterPromptTemplate = `
You are an experienced career coach writing a cover letter for a job application.

### INSTRUCTIONS:
1. Write a cover letter for the "%s" position at "%s".
2. Use a %s tone and keep it under 400 words.
3. Ground every claim in the resume below. Do not invent experience.
4. Format the output as markdown with a greeting, three short paragraphs and a sign-off.

### JOB DETAILS:
%s

### RESUME:
%s
`

func coverLetterPrompt(r models.CoverLetterRequest) string {
	tone := r.Tone
	if tone == "" {
		tone = defaultTone
	}

	resume := r.Resume
	if len(resume) > maxPromptResume {
		resume = resume[:maxPromptResume]
	}
	if resume == "" {
		resume = "(not provided)"
	}

	notes := r.JobNotes
	if notes == "" {
		notes = "(not provided)"
	}

	return fmt.Sprintf(coverLetterPromptTemplate, r.Title, r.Company, tone, notes, resume)
}

func coverLetterTemplate(r models.CoverLetterRequest) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Dear %s Hiring Team,\n\n", r.Company)
	fmt.Fprintf(&b, "I am writing to apply for the **%s** position at %s. ", r.Title, r.Company)
	b.WriteString("The role matches my experience and the work I want to do next, ")
	b.WriteString("and I would welcome the chance to contribute to your team.\n\n")
	if r.JobNotes != "" {
		b.WriteString("What draws me to this opportunity:\n\n")
		for _, line := range strings.Split(r.JobNotes, "\n") {
			if line = strings.TrimSpace(line); line != "" {
				fmt.Fprintf(&b, "- %s\n", line)
			}
		}
		b.WriteString("\n")
	}
	b.WriteString("Thank you for your time and consideration. I look forward to discussing how I can help.\n\n")
	b.WriteString("Sincerely,\n")

	return b.String()
}
