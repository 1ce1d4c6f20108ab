package controllers_test

import (
	"context"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"

	"portal/backend/aigen"
)

// stubGenerator records what it was asked for and returns canned aids.
type stubGenerator struct {
	lastCourse string
	lastSource []byte
}

var testGenerator = &stubGenerator{}

func (g *stubGenerator) StudyAids(_ context.Context, course string, source []byte) (*aigen.StudyAids, error) {
	g.lastCourse = course
	g.lastSource = source
	return &aigen.StudyAids{
		Summary: "özet: " + course,
		Quiz: []aigen.Question{
			{Prompt: "Soru?", Options: []string{"a", "b"}, Answer: 1, Explanation: "çünkü"},
		},
		Flashcards: []aigen.Flashcard{{Front: "Çar", Back: "Rus hükümdarı"}},
		Genealogy:  []aigen.Figure{{Name: "I. Petro", Relation: "Aleksey'in oğlu", Years: "1682-1725"}},
	}, nil
}

func TestGenerateStudyAids(t *testing.T) {
	resp, result := doJSON(t, "POST", "/api/courses/rusya-tarihi/study-aids", nil)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	data := result["data"].(map[string]interface{})
	assert.Equal(t, "özet: rusya-tarihi", data["summary"])
	assert.Len(t, data["quiz"].([]interface{}), 1)
	assert.Equal(t, "rusya-tarihi", testGenerator.lastCourse)
	assert.Nil(t, testGenerator.lastSource)
}

func TestGenerateStudyAidsWithSourceDocument(t *testing.T) {
	blob := []byte("%PDF-1.4 kaynak")
	uploadDocument(t, "/api/courses/kaynakli-kurs/units/7/document", blob)

	resp, _ := doJSON(t, "POST", "/api/courses/kaynakli-kurs/study-aids?unit=7", nil)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, blob, testGenerator.lastSource)
}
