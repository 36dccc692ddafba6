package catalog

import (
	"nolij-demo-be/internal/entity"
)

// Turn is one scripted exchange in a demo topic.
type Turn struct {
	Sender        entity.Sender
	Text          string
	Visualization *entity.Visualization
}

// Topic is a complete scripted conversation. Topics are static demo
// content; playback replays Turns in order with typing cadence.
type Topic struct {
	Id          string
	Title       string
	Description string
	Icon        string
	Turns       []Turn
}

var topics = []Topic{
	documentExtraction,
	configAnalysis,
	productAlternatives,
	productRoadmap,
	securityAnalysis,
	costOptimization,
}

var topicIndex = func() map[string]*Topic {
	idx := make(map[string]*Topic, len(topics))
	for i := range topics {
		idx[topics[i].Id] = &topics[i]
	}
	return idx
}()

// Lookup returns the topic with the given id. The second return is false
// for unknown ids.
func Lookup(id string) (Topic, bool) {
	t, ok := topicIndex[id]
	if !ok {
		return Topic{}, false
	}
	return *t, true
}

// All returns every topic in catalog order.
func All() []Topic {
	out := make([]Topic, len(topics))
	copy(out, topics)
	return out
}

func viz(t entity.VisualizationType, data entity.VisualizationData) *entity.Visualization {
	return &entity.Visualization{Type: t, Data: data}
}
