package reply

import (
	"strings"

	"nolij-demo-be/internal/entity"
)

// classify buckets attachments by mime type. A file counts as a document
// when its type mentions pdf, word or text, and as an image when it
// mentions image. Other types get the generic intro only.
func classify(attachments []entity.FileAttachment) (docs, images int) {
	for _, a := range attachments {
		t := strings.ToLower(a.MimeType)
		if strings.Contains(t, "pdf") || strings.Contains(t, "word") || strings.Contains(t, "text") {
			docs++
		}
		if strings.Contains(t, "image") {
			images++
		}
	}
	return docs, images
}

func componentDiagramData() entity.NetworkDiagramData {
	return entity.NetworkDiagramData{
		Title: "Network Component Relationship",
		Nodes: []entity.NetworkNode{
			{Id: "1", Name: "SW-24-POE", Group: "switch", Size: 2},
			{Id: "2", Name: "Security Camera", Group: "camera", Size: 1},
			{Id: "3", Name: "VoIP Phone", Group: "phone", Size: 1},
			{Id: "4", Name: "Access Point", Group: "accesspoint", Size: 1},
			{Id: "5", Name: "Power Source", Group: "server", Size: 1.5},
			{Id: "6", Name: "Network Controller", Group: "server", Size: 1.5},
		},
		Links: []entity.NetworkLink{
			{Source: "1", Target: "2", Type: "network", Value: 2},
			{Source: "1", Target: "3", Type: "network", Value: 2},
			{Source: "1", Target: "4", Type: "network", Value: 2},
			{Source: "5", Target: "1", Type: "power", Value: 3},
			{Source: "6", Target: "1", Type: "network", Value: 1},
			{Source: "4", Target: "2", Type: "wireless", Value: 1},
		},
	}
}

func switchComparisonData() entity.ProductComparisonData {
	return entity.ProductComparisonData{
		Title: "Product Comparison",
		OriginalProduct: entity.ComparedProduct{
			Id: "001", Name: "48-Port Pro Switch", Sku: "SW-48-PRO", Status: "eol", Price: 3999,
			Specs: map[string]any{
				"ports":               "48x 1GbE, 4x 10GbE SFP+",
				"powerCapacity":       740,
				"throughput":          176,
				"stackable":           true,
				"layer3Support":       true,
				"managementInterface": "Standard",
				"warranty":            3,
				"rackmountWidth":      19,
			},
		},
		Alternatives: []entity.ComparedProduct{
			{
				Id: "002", Name: "48-Port Pro+ Switch", Sku: "SW-48-PRO-PLUS", Status: "available", Price: 4599, MatchScore: 98,
				Specs: map[string]any{
					"ports":               "48x 1GbE, 4x 25GbE SFP28",
					"powerCapacity":       820,
					"throughput":          200,
					"stackable":           true,
					"layer3Support":       true,
					"managementInterface": "Enhanced",
					"warranty":            5,
					"rackmountWidth":      19,
				},
			},
			{
				Id: "003", Name: "48-Port Standard Switch", Sku: "SW-48-STD", Status: "available", Price: 2999, MatchScore: 82,
				Specs: map[string]any{
					"ports":               "48x 1GbE, 2x 10GbE SFP+",
					"powerCapacity":       740,
					"throughput":          160,
					"stackable":           false,
					"layer3Support":       false,
					"managementInterface": "Basic",
					"warranty":            3,
					"rackmountWidth":      19,
				},
			},
		},
		SpecCategories: []entity.SpecCategory{
			{Name: "Performance", Specs: []string{"ports", "throughput", "stackable"}},
			{Name: "Power", Specs: []string{"powerCapacity"}},
			{Name: "Features", Specs: []string{"layer3Support", "managementInterface", "warranty", "rackmountWidth"}},
		},
	}
}
