package aigen

import (
	"context"
	"encoding/json"
	"fmt"

	"google.golang.org/genai"
)

const prompt = `You are a history tutor. Produce study aids for the course %q.
Respond with a single JSON object with the fields:
  "summary"    - a concise prose summary of the course material,
  "quiz"       - 5 multiple-choice questions: {prompt, options, answer, explanation},
                 where answer is the zero-based index of the correct option,
  "flashcards" - 10 {front, back} term/definition pairs,
  "genealogy"  - the period's key figures as {name, relation, years, note}.
Base everything on the attached document when one is provided.`

// Gemini generates study aids through the Google GenAI API.
type Gemini struct {
	client *genai.Client
	model  string
}

func NewGemini(ctx context.Context, apiKey, model string) (*Gemini, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("GenAI API key is required")
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey: apiKey,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create GenAI client: %w", err)
	}

	return &Gemini{client: client, model: model}, nil
}

// StudyAids makes a single generation call. source, when non-nil, is attached
// inline as a PDF.
func (g *Gemini) StudyAids(ctx context.Context, course string, source []byte) (*StudyAids, error) {
	parts := []*genai.Part{
		genai.NewPartFromText(fmt.Sprintf(prompt, course)),
	}
	if len(source) > 0 {
		parts = append(parts, genai.NewPartFromBytes(source, "application/pdf"))
	}

	contents := []*genai.Content{
		genai.NewContentFromParts(parts, genai.RoleUser),
	}

	result, err := g.client.Models.GenerateContent(ctx, g.model, contents, &genai.GenerateContentConfig{
		ResponseMIMEType: "application/json",
	})
	if err != nil {
		return nil, fmt.Errorf("GenAI generation failed: %w", err)
	}

	return Decode([]byte(result.Text()))
}

// Decode parses a model response into StudyAids.
func Decode(data []byte) (*StudyAids, error) {
	var aids StudyAids
	if err := json.Unmarshal(data, &aids); err != nil {
		return nil, fmt.Errorf("malformed study aids response: %w", err)
	}
	return &aids, nil
}
