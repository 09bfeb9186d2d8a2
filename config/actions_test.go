package config

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestActionsTableIntegrity(t *testing.T) {
	assert.Len(t, Actions, 48)

	known := make(map[string]bool, len(ActionCategories))
	for _, c := range ActionCategories {
		known[c] = true
		assert.Contains(t, ActionCategoryHeaders, c)
	}

	for name, a := range Actions {
		assert.Truef(t, known[a.Category], "%v has unknown category %v", name, a.Category)
		assert.NotEmptyf(t, a.Emoji, "%v has no emoji", name)
		assert.NotEmptyf(t, a.Messages, "%v has no messages", name)
		for _, m := range a.Messages {
			assert.Truef(t, strings.Contains(m, "{user}") || strings.Contains(m, "{target}"),
				"%v message %q references neither participant", name, m)
		}
	}
}

func TestRenderMessage(t *testing.T) {
	a := Actions["slap"]
	got := a.RenderMessage("{user} slaps {target}!", "**Alice**", "**Bob**")
	assert.Equal(t, "**Alice** slaps **Bob**!", got)
}

func TestGuildAllowed(t *testing.T) {
	open := Settings{}
	assert.True(t, open.GuildAllowed("anything"))

	locked := Settings{AllowedGuilds: []string{"g1", "g2"}}
	assert.True(t, locked.GuildAllowed("g1"))
	assert.False(t, locked.GuildAllowed("g3"))
}
