package catalog

import "nolij-demo-be/internal/entity"

var documentExtraction = Topic{
	Id:          "document-extraction",
	Title:       "Document Extraction Capabilities",
	Description: "Learn how Nolij extracts critical information from complex technical documentation",
	Icon:        "FileText",
	Turns: []Turn{
		{
			Sender: entity.SenderUser,
			Text:   "I have a large set of network equipment specifications. Can Nolij extract the key information automatically?",
		},
		{
			Sender: entity.SenderAgent,
			Text: `I've analyzed your network equipment specifications and extracted the following key information:

1. Core Network Equipment:
   - SW-48-PRO Switch (48 ports, 4x 10GbE uplinks)
   - RTR-5G-ADV Routers (3 units)
   - FW-UTM-2000 Firewall

2. Missing Components:
   - POE-CORD-NA power cords (required for PoE operation)
   - NET-ADV-1YR licenses (recommended for advanced features)

3. Technical Requirements:
   - 740W PoE+ power budget
   - Support for 176 Gbps throughput
   - Layer 3 routing capabilities required

Would you like me to generate a compatibility report for these components?`,
			Visualization: viz(entity.VizProductTable, entity.ProductTableData{
				Title: "Extracted Network Components",
				Products: []entity.ProductTableRow{
					{Sku: "SW-48-PRO", Name: "48-Port Pro Switch", Status: "available"},
					{Sku: "RTR-5G-ADV", Name: "Advanced 5G Router", Status: "available"},
					{Sku: "FW-UTM-2000", Name: "UTM Firewall 2000", Status: "available"},
					{Sku: "POE-CORD-NA", Name: "PoE Power Cord (North America)", Status: "low_stock"},
					{Sku: "NET-ADV-1YR", Name: "Advanced Features License (1 Year)", Status: "available"},
				},
			}),
		},
		{
			Sender: entity.SenderUser,
			Text:   "Yes, please generate a compatibility report. Also, are there any issues with the current configuration?",
		},
		{
			Sender: entity.SenderAgent,
			Text: `Here's the compatibility report for your network equipment:

The configuration is generally valid, but I've identified several issues that need attention:

1. **Power Requirements**: The SW-48-PRO requires POE-CORD-NA for full PoE operation. Without these cords, the switches won't provide power to connected devices.

2. **License Gap**: The NET-ADV-1YR license is required for advanced features including:
   - Layer 3 routing protocols (OSPF, BGP)
   - Advanced security monitoring
   - API integration capabilities

3. **Throughput Analysis**: Your current configuration supports 176 Gbps throughput, which is sufficient for your documented requirements of 150 Gbps.

Would you like recommendations for resolving these issues?`,
			Visualization: viz(entity.VizCompatibilityMatrix, entity.CompatibilityMatrixData{
				Title:   "Network Configuration Compatibility",
				Headers: []string{"Power", "Licensing", "Throughput", "Mounting"},
				Rows: []entity.CompatibilityRow{
					{Name: "Current Config", Values: []string{"warning", "warning", "compatible", "compatible"}},
				},
			}),
		},
		{
			Sender: entity.SenderUser,
			Text:   "Please provide recommendations to resolve these issues.",
		},
		{
			Sender: entity.SenderAgent,
			Text: `Based on the document analysis, here are my recommendations to resolve the identified issues:

1. **Power Requirements**:
   - Add 3x POE-CORD-NA to your order (one for each switch)
   - Alternative: POE-CORD-UNI universal power cords are also compatible

2. **License Requirements**:
   - Add 3x NET-ADV-1YR licenses (one per switch)
   - Consider NET-ADV-3YR for 15% cost savings over 3 years

3. **Additional Recommendations**:
   - Add SFP-10G-SR modules for fiber uplinks between switches
   - Consider redundant power supplies (PWR-RPS-500) for critical infrastructure
   - Review cooling requirements for rack installation

These recommendations are based on the technical specifications from pages 12-15 of your document and the compatibility matrix on page 23.

Would you like me to update your configuration with these additions?`,
			Visualization: viz(entity.VizInteractiveBarChart, entity.InteractiveBarChartData{
				Title:    "Configuration Readiness After Recommendations",
				Labels:   []string{"Power", "Licensing", "Throughput", "Security", "Overall"},
				Values:   []float64{100, 100, 100, 85, 96},
				MaxValue: 100,
				Unit:     "%",
				Descriptions: []string{
					"Power requirements fully addressed with POE-CORD-NA",
					"Licensing requirements addressed with NET-ADV-1YR",
					"Throughput requirements satisfied with current hardware",
					"Advanced security features recommended but optional",
					"Overall configuration readiness after recommendations",
				},
			}),
		},
	},
}
