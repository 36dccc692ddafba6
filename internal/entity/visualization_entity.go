package entity

import (
	"encoding/json"
	"fmt"
)

type VisualizationType string

const (
	VizBarChart            VisualizationType = "bar-chart"
	VizInteractiveBarChart VisualizationType = "interactive-bar-chart"
	VizCompatibilityMatrix VisualizationType = "compatibility-matrix"
	VizProductTable        VisualizationType = "product-table"
	VizNetworkDiagram      VisualizationType = "network-diagram"
	VizProductComparison   VisualizationType = "product-comparison"
)

// Visualization is a tagged union. The engine never interprets Data; it is
// carried to the presentation layer as-is. Types outside the known set are
// kept as UnknownData so future payload shapes survive a round trip.
type Visualization struct {
	Type VisualizationType
	Data VisualizationData
}

type VisualizationData interface {
	visualizationData()
}

type BarChartData struct {
	Title    string    `json:"title"`
	Labels   []string  `json:"labels"`
	Values   []float64 `json:"values"`
	MaxValue float64   `json:"maxValue,omitempty"`
	Unit     string    `json:"unit,omitempty"`
	Color    string    `json:"color,omitempty"`
}

type InteractiveBarChartData struct {
	Title        string    `json:"title"`
	Labels       []string  `json:"labels"`
	Values       []float64 `json:"values"`
	MaxValue     float64   `json:"maxValue"`
	Unit         string    `json:"unit,omitempty"`
	Descriptions []string  `json:"descriptions,omitempty"`
	Color        string    `json:"color,omitempty"`
}

type CompatibilityRow struct {
	Name   string   `json:"name"`
	Values []string `json:"values"`
}

type CompatibilityMatrixData struct {
	Title   string             `json:"title"`
	Headers []string           `json:"headers"`
	Rows    []CompatibilityRow `json:"rows"`
}

type ProductTableRow struct {
	Sku             string `json:"sku"`
	Name            string `json:"name"`
	Status          string `json:"status"`
	AlternativeSku  string `json:"alternativeSku,omitempty"`
	AlternativeName string `json:"alternativeName,omitempty"`
}

type ProductTableData struct {
	Title    string            `json:"title"`
	Products []ProductTableRow `json:"products"`
}

type NetworkNode struct {
	Id    string  `json:"id"`
	Name  string  `json:"name"`
	Group string  `json:"group"`
	Size  float64 `json:"size"`
}

type NetworkLink struct {
	Source string  `json:"source"`
	Target string  `json:"target"`
	Type   string  `json:"type"`
	Value  float64 `json:"value"`
}

type NetworkDiagramData struct {
	Title string        `json:"title"`
	Nodes []NetworkNode `json:"nodes"`
	Links []NetworkLink `json:"links"`
}

// ComparedProduct specs are key/value on purpose: each comparison payload
// carries its own spec vocabulary (switch ports vs server cores).
type ComparedProduct struct {
	Id         string         `json:"id"`
	Name       string         `json:"name"`
	Sku        string         `json:"sku"`
	Status     string         `json:"status"`
	Price      float64        `json:"price"`
	MatchScore int            `json:"matchScore,omitempty"`
	Specs      map[string]any `json:"specs"`
}

type SpecCategory struct {
	Name  string   `json:"name"`
	Specs []string `json:"specs"`
}

type ProductComparisonData struct {
	Title           string            `json:"title"`
	OriginalProduct ComparedProduct   `json:"originalProduct"`
	Alternatives    []ComparedProduct `json:"alternatives"`
	SpecCategories  []SpecCategory    `json:"specCategories,omitempty"`
}

// UnknownData preserves payloads whose type tag is not in the known set.
type UnknownData struct {
	Raw json.RawMessage
}

func (BarChartData) visualizationData()            {}
func (InteractiveBarChartData) visualizationData() {}
func (CompatibilityMatrixData) visualizationData() {}
func (ProductTableData) visualizationData()        {}
func (NetworkDiagramData) visualizationData()      {}
func (ProductComparisonData) visualizationData()   {}
func (UnknownData) visualizationData()             {}

type visualizationEnvelope struct {
	Type VisualizationType `json:"type"`
	Data json.RawMessage   `json:"data"`
}

func (v Visualization) MarshalJSON() ([]byte, error) {
	var data any = v.Data
	if u, ok := v.Data.(UnknownData); ok {
		data = u.Raw
	}
	raw, err := json.Marshal(data)
	if err != nil {
		return nil, fmt.Errorf("marshal visualization data: %w", err)
	}
	return json.Marshal(visualizationEnvelope{Type: v.Type, Data: raw})
}

func (v *Visualization) UnmarshalJSON(b []byte) error {
	var env visualizationEnvelope
	if err := json.Unmarshal(b, &env); err != nil {
		return err
	}
	v.Type = env.Type

	decode := func(target VisualizationData) error {
		if err := json.Unmarshal(env.Data, target); err != nil {
			return fmt.Errorf("decode %s data: %w", env.Type, err)
		}
		return nil
	}

	switch env.Type {
	case VizBarChart:
		var d BarChartData
		if err := decode(&d); err != nil {
			return err
		}
		v.Data = d
	case VizInteractiveBarChart:
		var d InteractiveBarChartData
		if err := decode(&d); err != nil {
			return err
		}
		v.Data = d
	case VizCompatibilityMatrix:
		var d CompatibilityMatrixData
		if err := decode(&d); err != nil {
			return err
		}
		v.Data = d
	case VizProductTable:
		var d ProductTableData
		if err := decode(&d); err != nil {
			return err
		}
		v.Data = d
	case VizNetworkDiagram:
		var d NetworkDiagramData
		if err := decode(&d); err != nil {
			return err
		}
		v.Data = d
	case VizProductComparison:
		var d ProductComparisonData
		if err := decode(&d); err != nil {
			return err
		}
		v.Data = d
	default:
		v.Data = UnknownData{Raw: append(json.RawMessage(nil), env.Data...)}
	}
	return nil
}
