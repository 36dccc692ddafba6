package reply

import (
	"strings"
	"testing"

	"nolij-demo-be/internal/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newComposer(t *testing.T) *Composer {
	t.Helper()
	c, err := NewComposer()
	require.NoError(t, err)
	return c
}

func TestForTextVisualizations(t *testing.T) {
	c := newComposer(t)

	tests := []struct {
		name    string
		text    string
		wantViz entity.VisualizationType
	}{
		{"switch gets compatibility matrix", "check my switch", entity.VizCompatibilityMatrix},
		{"alternative gets product comparison", "find an alternative", entity.VizProductComparison},
		{"budget gets interactive bar chart", "poe budget check", entity.VizInteractiveBarChart},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			msg := c.ForText(tt.text, entity.PersonaProfessional)
			assert.Equal(t, entity.SenderAgent, msg.Sender)
			require.NotNil(t, msg.Visualization)
			assert.Equal(t, tt.wantViz, msg.Visualization.Type)
		})
	}
}

func TestForTextFallbackHasNoVisualization(t *testing.T) {
	c := newComposer(t)

	msg := c.ForText("hello", entity.PersonaProfessional)
	assert.Nil(t, msg.Visualization)
	assert.Contains(t, msg.Text, "What specific quote or configuration")
}

func TestForTextPersonaVariants(t *testing.T) {
	c := newComposer(t)

	pro := c.ForText("check my switch", entity.PersonaProfessional)
	conv := c.ForText("check my switch", entity.PersonaConversational)

	assert.Equal(t, entity.PersonaProfessional, pro.Persona)
	assert.Equal(t, entity.PersonaConversational, conv.Persona)
	assert.NotEqual(t, pro.Text, conv.Text)
	// Same trigger yields the same visualization either way.
	require.NotNil(t, pro.Visualization)
	require.NotNil(t, conv.Visualization)
	assert.Equal(t, pro.Visualization.Type, conv.Visualization.Type)
}

func TestForAttachmentsDocuments(t *testing.T) {
	c := newComposer(t)

	msg := c.ForAttachments([]entity.FileAttachment{
		{Name: "quote.pdf", MimeType: "application/pdf"},
	}, entity.PersonaProfessional)

	assert.Equal(t, entity.SenderAgent, msg.Sender)
	assert.Contains(t, msg.Text, "SW-24-POE Switch")
	require.NotNil(t, msg.Visualization)
	assert.Equal(t, entity.VizNetworkDiagram, msg.Visualization.Type)
}

func TestForAttachmentsImageOnly(t *testing.T) {
	c := newComposer(t)

	msg := c.ForAttachments([]entity.FileAttachment{
		{Name: "topology.png", MimeType: "image/png"},
	}, entity.PersonaProfessional)

	assert.Contains(t, msg.Text, "network architecture")
	assert.Nil(t, msg.Visualization)
}

func TestForAttachmentsMixed(t *testing.T) {
	c := newComposer(t)

	msg := c.ForAttachments([]entity.FileAttachment{
		{Name: "quote.pdf", MimeType: "application/pdf"},
		{Name: "topology.png", MimeType: "image/png"},
	}, entity.PersonaConversational)

	// Both sections appear, document first.
	docIdx := strings.Index(msg.Text, "SW-24-POE Switch")
	imgIdx := strings.Index(msg.Text, "power distribution")
	require.GreaterOrEqual(t, docIdx, 0)
	require.GreaterOrEqual(t, imgIdx, 0)
	assert.Less(t, docIdx, imgIdx)
	require.NotNil(t, msg.Visualization)
	assert.Equal(t, entity.VizNetworkDiagram, msg.Visualization.Type)
}
