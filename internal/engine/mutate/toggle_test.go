package mutate

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Growthlabsg/venturematch/internal/models"
)

func TestToggleLike_AddAndRemove(t *testing.T) {
	team := models.Team{
		ID:      "team-1",
		LikedBy: []string{"alice", "bob"},
		Likes:   2,
	}

	liked := ToggleLike(team, "carol")
	assert.Equal(t, []string{"alice", "bob", "carol"}, liked.LikedBy)
	assert.Equal(t, 3, liked.Likes)

	unliked := ToggleLike(liked, "alice")
	assert.Equal(t, []string{"bob", "carol"}, unliked.LikedBy)
	assert.Equal(t, 2, unliked.Likes)
}

func TestToggleLike_Involution(t *testing.T) {
	team := models.Team{
		ID:      "team-1",
		LikedBy: []string{"alice", "bob", "carol"},
		Likes:   3,
	}

	// Toggling the same user twice restores the original membership,
	// including order.
	once := ToggleLike(team, "bob")
	twice := ToggleLike(once, "bob")

	assert.Equal(t, team.LikedBy, twice.LikedBy)
	assert.Equal(t, team.Likes, twice.Likes)
}

func TestToggleLike_InputUntouched(t *testing.T) {
	team := models.Team{
		ID:      "team-1",
		LikedBy: []string{"alice"},
		Likes:   1,
	}

	_ = ToggleLike(team, "bob")
	_ = ToggleLike(team, "alice")

	assert.Equal(t, []string{"alice"}, team.LikedBy)
	assert.Equal(t, 1, team.Likes)
}

func TestToggleSave(t *testing.T) {
	team := models.Team{ID: "team-1"}

	saved := ToggleSave(team, "alice")
	assert.Equal(t, []string{"alice"}, saved.SavedBy)
	assert.Equal(t, 1, saved.Saves)

	unsaved := ToggleSave(saved, "alice")
	assert.Empty(t, unsaved.SavedBy)
	assert.Equal(t, 0, unsaved.Saves)
}

func TestToggle_CounterFollowsMembership(t *testing.T) {
	// A stale counter is corrected on the first toggle because the count is
	// recomputed from the membership set.
	team := models.Team{
		ID:      "team-1",
		LikedBy: []string{"alice"},
		Likes:   40,
	}

	out := ToggleLike(team, "bob")
	assert.Equal(t, 2, out.Likes)
}

func TestToggle_IndependentSets(t *testing.T) {
	team := models.Team{
		ID:      "team-1",
		LikedBy: []string{"alice"},
		SavedBy: []string{"bob"},
		Likes:   1,
		Saves:   1,
	}

	out := ToggleSave(ToggleLike(team, "carol"), "carol")

	assert.Equal(t, []string{"alice", "carol"}, out.LikedBy)
	assert.Equal(t, []string{"bob", "carol"}, out.SavedBy)
	assert.Equal(t, 2, out.Likes)
	assert.Equal(t, 2, out.Saves)
}
