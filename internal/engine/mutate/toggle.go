// Package mutate holds the copy-on-write entity transforms behind the like
// and save actions. Inputs are never mutated; the caller receives a new
// value with the membership set toggled and the counter kept consistent
// with it. A single toggle always flips state; two identical toggles invert
// each other.
package mutate

import "github.com/Growthlabsg/venturematch/internal/models"

// ToggleLike returns a copy of the team with userID's like flipped.
func ToggleLike(team models.Team, userID string) models.Team {
	out := cloneTeam(team)
	out.LikedBy = toggleMember(team.LikedBy, userID)
	out.Likes = len(out.LikedBy)
	return out
}

// ToggleSave returns a copy of the team with userID's save flipped.
func ToggleSave(team models.Team, userID string) models.Team {
	out := cloneTeam(team)
	out.SavedBy = toggleMember(team.SavedBy, userID)
	out.Saves = len(out.SavedBy)
	return out
}

// toggleMember removes the id when present (preserving order) and appends
// it otherwise. The input slice is left untouched.
func toggleMember(members []string, id string) []string {
	out := make([]string, 0, len(members)+1)
	found := false
	for _, m := range members {
		if m == id {
			found = true
			continue
		}
		out = append(out, m)
	}
	if !found {
		out = append(out, id)
	}
	return out
}

func cloneTeam(team models.Team) models.Team {
	out := team
	out.Tags = cloneStrings(team.Tags)
	out.RequiredSkills = cloneStrings(team.RequiredSkills)
	out.LikedBy = cloneStrings(team.LikedBy)
	out.SavedBy = cloneStrings(team.SavedBy)
	if team.OpenPositions != nil {
		out.OpenPositions = make([]models.OpenPosition, len(team.OpenPositions))
		copy(out.OpenPositions, team.OpenPositions)
	}
	return out
}

func cloneStrings(in []string) []string {
	if in == nil {
		return nil
	}
	out := make([]string, len(in))
	copy(out, in)
	return out
}
