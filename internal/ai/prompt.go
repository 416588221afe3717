package ai

import "fmt"

// buildExtractionPrompt constructs the instructions for the AI.
func buildExtractionPrompt(userText string) string {
	return fmt.Sprintf(`Role: You are the trip-preference extractor for "TripSmith", a travel planning service.

Task: Read the user's trip request and extract their preferences.

RULES:
1. "categories" are short venue-search topics in English (e.g. "food", "culture", "nature", "nightlife", "museums"). Order them by how strongly the user cares about each.
2. "location" is the destination place name. If several places are mentioned, pick the main one.
3. "duration" is the whole number of days. Convert phrases like "a week" (7) or "long weekend" (3).
4. "pace" and "budget" must each be exactly one of: "low", "medium", "high".
5. Respond with JSON only. No comments, no markdown, no text outside the object.

Output JSON Schema:
{
  "categories": ["string"],
  "location": "string",
  "duration": integer,
  "pace": "low" | "medium" | "high",
  "budget": "low" | "medium" | "high"
}

User Request: %s
`, userText)
}
