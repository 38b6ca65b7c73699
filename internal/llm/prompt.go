package llm

import "fmt"

// systemPrompt is shared by every provider. The response schema is fixed so
// parsePrediction can stay provider-agnostic.
const systemPrompt = `You are an expert poultry embryologist assisting with pre-incubation egg sexing.
Given a candled egg image or physical measurements, predict the likely sex of the embryo.
Respond with ONLY a valid JSON object of the form
{"gender": "Male"|"Female"|"Uncertain", "confidence": "High"|"Medium"|"Low", "reasoning": "<one or two sentences>"}.
Do not include markdown formatting or any text outside the JSON object.
If the input does not support a determination, answer "Uncertain" rather than guessing.`

// imagePrompt is the user message accompanying an image part.
const imagePrompt = `Analyze this egg image and predict the sex of the embryo. ` +
	`Consider shell shape, symmetry, and any visible features. Answer strictly in the required JSON format.`

// measurementPrompt builds the user message for the measurement variant.
// Raw measurements are passed through; the service derives whatever indices
// it wants from them.
func measurementPrompt(longAxisMm, shortAxisMm, weightG float64) string {
	return fmt.Sprintf(`Predict the sex of a chicken embryo from these egg measurements:
- Long axis: %.2f mm
- Short axis: %.2f mm
- Weight: %.2f g
The shape index (short axis / long axis * 100) is a known sexing heuristic: rounder eggs trend female, more elongated eggs trend male.
Answer strictly in the required JSON format.`, longAxisMm, shortAxisMm, weightG)
}
