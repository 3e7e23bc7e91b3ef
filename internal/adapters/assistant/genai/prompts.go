package genai

import (
	"fmt"
	"strings"
)

const notePromptsInstruction = `You help people remember why they connected with someone on a professional network.
Given a profile, generate 3 distinct note prompts that are concise and engaging.
Each prompt suggests what the user could write in a private note or mention when reaching out.
Answer with JSON of the form {"prompts": ["...", "...", "..."]}.`

const summaryInstruction = `You write short private notes that help someone remember a professional connection.
Use the profile and the interaction history. Write in the first person, in two or three sentences,
mentioning how you met and anything worth following up on. Do not invent facts that are not in the input.
Answer with the note text only.`

func notePromptsRequest(profileData string) string {
	return fmt.Sprintf("Profile: %s", strings.TrimSpace(profileData))
}

func summaryRequest(profileData, history string) string {
	history = strings.TrimSpace(history)
	if history == "" {
		history = "No interaction recorded yet."
	}

	return fmt.Sprintf("Profile: %s\n\nInteraction history: %s", strings.TrimSpace(profileData), history)
}
