package llm

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/ovumlab/ovumsort/internal/model"
)

// cleanMarkdownWrapper strips a ```json ... ``` (or plain ```) fence that
// models sometimes wrap around an otherwise valid JSON payload.
func cleanMarkdownWrapper(content string) string {
	content = strings.TrimSpace(content)
	if !strings.HasPrefix(content, "```") {
		return content
	}

	content = strings.TrimPrefix(content, "```json")
	content = strings.TrimPrefix(content, "```")
	content = strings.TrimSuffix(strings.TrimSpace(content), "```")
	return strings.TrimSpace(content)
}

// parsePrediction extracts a Prediction from the raw model response.
// Unknown gender or confidence values are parse failures, not "Uncertain":
// a response we cannot interpret must count as a failed item.
func parsePrediction(content string) (model.Prediction, error) {
	var jsonResp struct {
		Gender     string `json:"gender"`
		Confidence string `json:"confidence"`
		Reasoning  string `json:"reasoning"`
	}

	content = cleanMarkdownWrapper(content)

	if err := json.Unmarshal([]byte(content), &jsonResp); err != nil {
		return model.Prediction{}, fmt.Errorf("failed to parse JSON response: %w", err)
	}

	gender, err := parseGender(jsonResp.Gender)
	if err != nil {
		return model.Prediction{}, err
	}

	confidence, err := parseConfidence(jsonResp.Confidence)
	if err != nil {
		return model.Prediction{}, err
	}

	if strings.TrimSpace(jsonResp.Reasoning) == "" {
		return model.Prediction{}, fmt.Errorf("no reasoning found in response")
	}

	return model.Prediction{
		Gender:     gender,
		Confidence: confidence,
		Reasoning:  strings.TrimSpace(jsonResp.Reasoning),
	}, nil
}

func parseGender(s string) (model.Gender, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "male":
		return model.GenderMale, nil
	case "female":
		return model.GenderFemale, nil
	case "uncertain":
		return model.GenderUncertain, nil
	default:
		return "", fmt.Errorf("unrecognized gender %q in response", s)
	}
}

func parseConfidence(s string) (model.Confidence, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "high":
		return model.ConfidenceHigh, nil
	case "medium":
		return model.ConfidenceMedium, nil
	case "low":
		return model.ConfidenceLow, nil
	default:
		return "", fmt.Errorf("unrecognized confidence %q in response", s)
	}
}
