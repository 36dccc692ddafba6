package catalog

import (
	"testing"

	"nolij-demo-be/internal/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAllTopics(t *testing.T) {
	topics := All()
	require.Len(t, topics, 6)

	wantIds := []string{
		"document-extraction",
		"config-analysis",
		"product-alternatives",
		"product-roadmap",
		"security-analysis",
		"cost-optimization",
	}
	for i, topic := range topics {
		assert.Equal(t, wantIds[i], topic.Id)
		assert.NotEmpty(t, topic.Title)
		assert.NotEmpty(t, topic.Description)
		assert.NotEmpty(t, topic.Turns)
	}
}

func TestLookup(t *testing.T) {
	topic, ok := Lookup("config-analysis")
	require.True(t, ok)
	assert.Equal(t, "config-analysis", topic.Id)

	_, ok = Lookup("no-such-topic")
	assert.False(t, ok)
}

func TestScriptsStartWithUserTurn(t *testing.T) {
	for _, topic := range All() {
		t.Run(topic.Id, func(t *testing.T) {
			require.NotEmpty(t, topic.Turns)
			assert.Equal(t, entity.SenderUser, topic.Turns[0].Sender)
			for _, turn := range topic.Turns {
				assert.NotEmpty(t, turn.Text)
				if turn.Visualization != nil {
					// Scripted visualizations only ever come from agent turns.
					assert.Equal(t, entity.SenderAgent, turn.Sender)
					assert.NotEmpty(t, turn.Visualization.Type)
					assert.NotNil(t, turn.Visualization.Data)
				}
			}
		})
	}
}
