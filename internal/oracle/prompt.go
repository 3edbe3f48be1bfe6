package oracle

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/AviMalewar/Vibe-app/models"
)

// System instructions for the two analysis modes. The wording shapes the
// verdict register (playful, Gen-Z adjacent, clean) and the vibe label tiers.
const (
	pairSystemInstruction = "You are 'WibeBot', a playful and witty social analyzer for college students. " +
		"Evaluate the connection between two students based on their branch, lifestyle, interests, movies, and music. " +
		"Use Gen-Z slang occasionally but keep it clean and friendly. " +
		"Provide a vibe label based on the score (e.g., 0-40: 'Worth a Chat 🙂', 41-75: 'Cool Match 😎', 76-100: 'Same Vibe 🔥'). " +
		"Respond with a single JSON object with keys: score (number 0-100), reasoning (string), commonGround (array of strings), suggestedActivity (string), vibeLabel (string)."

	batchSystemInstruction = "You are 'WibeBot'. Compare the NEW STUDENT to each student in the list. " +
		"For each comparison, provide a score (0-100), a short witty reasoning, common ground items, a suggested activity, and a vibe label (🔥, 😎, 🙂). " +
		"Respond with a JSON array of objects where each object includes the 'targetProfileId' from the input list " +
		"plus keys: score, reasoning, commonGround, suggestedActivity, vibeLabel."
)

func pairPrompt(a, b models.StudentProfile) string {
	var sb strings.Builder
	sb.WriteString("Compare these two student profiles for the 'Wibe' social app.\n\n")
	writeProfileBlock(&sb, "Student 1", a)
	sb.WriteString("\n")
	writeProfileBlock(&sb, "Student 2", b)
	return sb.String()
}

func writeProfileBlock(sb *strings.Builder, title string, p models.StudentProfile) {
	fmt.Fprintf(sb, "%s:\n", title)
	fmt.Fprintf(sb, "Name: %s\n", p.Name)
	fmt.Fprintf(sb, "Branch: %s\n", p.Branch)
	fmt.Fprintf(sb, "Lifestyle: %s\n", p.Lifestyle)
	fmt.Fprintf(sb, "Interests: %s\n", strings.Join(p.Interests, ", "))
	fmt.Fprintf(sb, "Music Genres: %s\n", strings.Join(p.MusicGenres, ", "))
	fmt.Fprintf(sb, "Favorite Artists: %s\n", strings.Join(p.FavoriteArtists, ", "))
	fmt.Fprintf(sb, "Movie Genres: %s\n", strings.Join(p.MovieGenres, ", "))
	fmt.Fprintf(sb, "Bio: %s\n", p.Bio)
}

// batchCandidate is the compact profile view embedded in the batch prompt.
// Only matching-relevant attributes are sent.
type batchCandidate struct {
	ID        string           `json:"id"`
	Name      string           `json:"name"`
	Branch    string           `json:"branch"`
	Lifestyle models.Lifestyle `json:"lifestyle"`
	Interests []string         `json:"interests"`
	Music     []string         `json:"music"`
	Movies    []string         `json:"movies"`
}

func batchPrompt(newProfile models.StudentProfile, existing []models.StudentProfile) (string, error) {
	candidates := make([]batchCandidate, 0, len(existing))
	for _, p := range existing {
		candidates = append(candidates, batchCandidate{
			ID:        p.ID,
			Name:      p.Name,
			Branch:    p.Branch,
			Lifestyle: p.Lifestyle,
			Interests: p.Interests,
			Music:     p.MusicGenres,
			Movies:    p.MovieGenres,
		})
	}

	encoded, err := json.Marshal(candidates)
	if err != nil {
		return "", fmt.Errorf("error encoding batch candidates: %w", err)
	}

	var sb strings.Builder
	sb.WriteString("Analyze the 'Vibe Match' between a new student and a list of existing students.\n\n")
	writeProfileBlock(&sb, "NEW STUDENT", newProfile)
	sb.WriteString("\nEXISTING STUDENTS TO COMPARE AGAINST:\n")
	sb.Write(encoded)
	return sb.String(), nil
}
