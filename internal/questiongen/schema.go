package questiongen

import "github.com/ishara/quizdeck/internal/llm"

// MCQSchema is the response schema for multiple-choice generation.
var MCQSchema = &llm.Schema{
	Name:        "mcq-question",
	Description: "A single multiple-choice quiz question with four labeled options",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"question": map[string]any{
				"type":        "string",
				"description": "The question prompt shown to the user",
			},
			"options": map[string]any{
				"type":        "array",
				"items":       map[string]any{"type": "string"},
				"description": "Exactly 4 options, each prefixed with its label: 'A. ', 'B. ', 'C. ', 'D. '",
			},
			"answer": map[string]any{
				"type":        "string",
				"description": "The correct option, including its label prefix",
			},
			"topic": map[string]any{
				"type":        "string",
				"description": "Short topic label this question belongs to",
			},
			"explaination": map[string]any{
				"type":        "string",
				"description": "One-paragraph explanation of the correct answer",
			},
		},
		"required":             []any{"question", "options", "answer", "topic", "explaination"},
		"additionalProperties": false,
	},
}

// FillBlankSchema is the response schema for fill-in-the-blank generation.
var FillBlankSchema = &llm.Schema{
	Name:        "fill-blank-question",
	Description: "A fill-in-the-blank question over a short passage",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"question": map[string]any{
				"type":        "string",
				"description": "The sentence with a blank marked as ____",
			},
			"paragraph": map[string]any{
				"type":        "string",
				"description": "The passage the sentence is drawn from",
			},
			"options": map[string]any{
				"type":        "array",
				"items":       map[string]any{"type": "string"},
				"description": "4 candidate words or phrases, labeled 'A. ' through 'D. '",
			},
			"answer": map[string]any{
				"type":        "string",
				"description": "The correct option, including its label prefix",
			},
			"topic": map[string]any{
				"type": "string",
			},
		},
		"required":             []any{"question", "options", "answer", "topic"},
		"additionalProperties": false,
	},
}

// StructuredSchema is the response schema for open-ended question generation.
var StructuredSchema = &llm.Schema{
	Name:        "structured-question",
	Description: "An open-ended question answered in free text",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"question": map[string]any{
				"type":        "string",
				"description": "The open-ended prompt",
			},
			"answer": map[string]any{
				"type":        "string",
				"description": "A model answer used for grading reference",
			},
			"topic": map[string]any{
				"type": "string",
			},
		},
		"required":             []any{"question", "answer", "topic"},
		"additionalProperties": false,
	},
}

// VerdictSchema is the response schema for structured-answer grading.
var VerdictSchema = &llm.Schema{
	Name:        "answer-verdict",
	Description: "Grading verdict for a free-text answer",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"isCorrect": map[string]any{
				"type":        "boolean",
				"description": "Whether the submitted answer is substantially correct",
			},
			"comments": map[string]any{
				"type":        "string",
				"description": "One or two sentences of feedback",
			},
		},
		"required":             []any{"isCorrect", "comments"},
		"additionalProperties": false,
	},
}
