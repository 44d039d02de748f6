package questiongen

import (
	"fmt"
	"strings"

	"github.com/ishara/quizdeck/internal/question"
)

const systemPrompt = `You are a quiz author generating assessment questions for a stated subject.

Rules:
- Generate exactly one question per request, of the requested kind.
- Stay inside the given subject, and inside the given module when one is set.
- Multiple-choice and fill-in-the-blank options carry label prefixes "A. " through "D. ", and the answer field repeats the correct option verbatim, label included.
- Exactly one option is correct. Distractors reflect plausible misunderstandings, not random values.
- Open-ended questions ask for a short explanation or design decision, answerable in a few sentences; the answer field holds a model answer for grading reference.
- Assign each question a short topic label, reusing the caller's weak-topic labels when one fits.
- Prefer the listed weak topics when choosing what to ask about.
- Do not repeat any question from the "already asked" list.`

const gradingPrompt = `You grade a user's free-text answer to an open-ended quiz question.
Judge substance, not wording: the answer is correct when it demonstrates the key idea of the model answer.
Missing detail is acceptable; a wrong or contradictory claim is not.`

// buildUserMessage assembles the generation prompt for one fetch.
func buildUserMessage(subject, module string, kind question.Type, topics, asked []string, maxAsked int) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Subject: %s\n", subject)
	if module != "" {
		fmt.Fprintf(&b, "Module: %s\n", module)
	}
	fmt.Fprintf(&b, "Kind: %s\n", kindLabel(kind))

	b.WriteString("\nWeak topics to prefer:\n")
	if len(topics) == 0 {
		b.WriteString("None\n")
	} else {
		for _, t := range topics {
			fmt.Fprintf(&b, "- %s\n", t)
		}
	}

	b.WriteString("\nAlready asked in this session:\n")
	b.WriteString(buildAsked(asked, maxAsked))

	return b.String()
}

// buildGradingMessage assembles the grading prompt for one structured answer.
func buildGradingMessage(prompt, modelAnswer, submitted string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Question:\n%s\n", prompt)
	if modelAnswer != "" {
		fmt.Fprintf(&b, "\nModel answer:\n%s\n", modelAnswer)
	}
	fmt.Fprintf(&b, "\nUser's answer:\n%s\n", submitted)
	return b.String()
}

func kindLabel(t question.Type) string {
	switch t {
	case question.TypeStructured:
		return "open-ended"
	case question.TypeFillBlank:
		return "fill-in-the-blank"
	default:
		return "multiple-choice"
	}
}

// buildAsked formats prior prompts for dedup, keeping only the most recent N.
func buildAsked(asked []string, max int) string {
	if len(asked) == 0 {
		return "None"
	}
	if max > 0 && len(asked) > max {
		asked = asked[len(asked)-max:]
	}

	var b strings.Builder
	for i, q := range asked {
		fmt.Fprintf(&b, "%d. %s\n", i+1, q)
	}
	return strings.TrimRight(b.String(), "\n")
}
