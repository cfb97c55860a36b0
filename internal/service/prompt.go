package service

import (
	"fmt"

	"github.com/musemind/api/internal/model"
)

// buildPrompt renders the persona-framed instruction for the given theme,
// embedding the user's input verbatim. The theme is already resolved, so the
// default arm here is only reachable through the moodverse fallback.
func buildPrompt(userInput string, theme model.Theme) string {
	switch theme {
	case model.ThemeLovelines:
		return fmt.Sprintf(`You are a romantic poet. Write a beautiful, heartfelt love poem (exactly 5 lines) about: %s

Requirements:
- Make it sweet, emotional, and expressive
- Focus on feelings of love, affection, and tenderness
- Use romantic and poetic language
- Keep it to exactly 5 lines
- Don't include a title
- Make each line flow naturally

Write the poem now:`, userInput)

	case model.ThemeSoulscript:
		return fmt.Sprintf(`You are an inspirational poet. Write an uplifting, reflective affirmation poem (exactly 5 lines) about: %s

Requirements:
- Make it inspiring, motivational, and soul-nourishing
- Focus on inner strength, personal growth, and positivity
- Use empowering and affirming language
- Keep it to exactly 5 lines
- Don't include a title
- Make each line resonate

Write the poem now:`, userInput)

	default: // moodverse
		return fmt.Sprintf(`You are an emotional poet. Write a deeply emotional poem (exactly 5 lines) that captures these feelings: %s

Requirements:
- Reflect the mood authentically and powerfully
- Whether joyful, melancholic, anxious, or peaceful - capture it fully
- Use vivid, evocative language
- Keep it to exactly 5 lines
- Don't include a title
- Make each line meaningful

Write the poem now:`, userInput)
	}
}
