package catalog

import "nolij-demo-be/internal/entity"

var configAnalysis = Topic{
	Id:          "config-analysis",
	Title:       "Configuration Analysis & Validation",
	Description: "See how Nolij validates technical configurations and identifies potential issues",
	Icon:        "Settings",
	Turns: []Turn{
		{
			Sender: entity.SenderUser,
			Text:   "We need to deploy 45 security cameras and 30 VoIP phones at our new campus. Can you analyze if our current network infrastructure can handle this?",
		},
		{
			Sender: entity.SenderAgent,
			Text: `I've analyzed your requirements for 45 security cameras and 30 VoIP phones against your current network infrastructure. Here's my technical assessment:

1. **Port Requirements**:
   - 45 cameras + 30 phones = 75 total devices
   - Your current switches provide 48 ports total
   - **Issue**: Port deficit of 27 ports

2. **Power Budget Analysis**:
   - 45 cameras × 5W = 225W
   - 30 phones × 7W = 210W
   - Total PoE requirement: 435W
   - Current switch capacity: 370W
   - **Issue**: Power deficit of 65W

3. **Network Architecture**:
   - Current single-switch deployment is insufficient
   - Additional switches needed for port capacity
   - Consider power distribution and redundancy

Would you like me to recommend an optimal configuration for this deployment?`,
			Visualization: viz(entity.VizBarChart, entity.BarChartData{
				Title:  "Resource Requirements vs. Current Capacity",
				Labels: []string{"Ports Required", "Ports Available", "Power Required (W)", "Power Available (W)"},
				Values: []float64{75, 48, 435, 370},
				Color:  "#0066FF",
			}),
		},
		{
			Sender: entity.SenderUser,
			Text:   "Yes, please recommend a configuration that would work for our needs.",
		},
		{
			Sender: entity.SenderAgent,
			Text: `Based on your requirements for 45 cameras and 30 phones, here's my recommended network configuration:

**Recommended Configuration**:
1. **Switch Deployment**:
   - 2× SW-48-POE switches (48 ports each, 740W PoE+ budget each)
   - Connect via 10GbE uplink for inter-switch communication
   - Total ports: 96 (75 required + 21 for expansion)
   - Total PoE capacity: 1,480W (435W required + 1,045W for growth)

2. **Power Planning**:
   - Distribute high-power devices evenly between switches
   - Reserve 20% power capacity on each switch for future expansion
   - Add redundant power supplies for critical devices
   - Install POE-CORD-NA power cords for full PoE+ operation

3. **Network Architecture**:
   - Implement VLANs to separate camera and voice traffic
   - Deploy QoS to prioritize voice traffic
   - Add UPS backup for core infrastructure
   - Consider NET-ADV-3YR licenses for advanced management features

This configuration provides sufficient ports, power, and room for 20% future expansion. Would you like detailed wiring diagrams for this setup?`,
			Visualization: viz(entity.VizNetworkDiagram, entity.NetworkDiagramData{
				Title: "Recommended Network Architecture",
				Nodes: []entity.NetworkNode{
					{Id: "sw1", Name: "SW-48-POE #1", Group: "switch", Size: 2},
					{Id: "sw2", Name: "SW-48-POE #2", Group: "switch", Size: 2},
					{Id: "cam", Name: "Cameras (45)", Group: "camera", Size: 1.5},
					{Id: "phone", Name: "VoIP Phones (30)", Group: "phone", Size: 1.5},
					{Id: "ups", Name: "UPS System", Group: "server", Size: 1.5},
					{Id: "fw", Name: "Firewall", Group: "server", Size: 1.5},
				},
				Links: []entity.NetworkLink{
					{Source: "sw1", Target: "sw2", Type: "network", Value: 3},
					{Source: "sw1", Target: "cam", Type: "network", Value: 2},
					{Source: "sw2", Target: "cam", Type: "network", Value: 2},
					{Source: "sw1", Target: "phone", Type: "network", Value: 2},
					{Source: "sw2", Target: "phone", Type: "network", Value: 2},
					{Source: "ups", Target: "sw1", Type: "power", Value: 2},
					{Source: "ups", Target: "sw2", Type: "power", Value: 2},
					{Source: "fw", Target: "sw1", Type: "network", Value: 1},
					{Source: "fw", Target: "sw2", Type: "network", Value: 1},
				},
			}),
		},
		{
			Sender: entity.SenderUser,
			Text:   "This looks good. What happens if we add 10 wireless access points to this configuration?",
		},
		{
			Sender: entity.SenderAgent,
			Text: `Adding 10 wireless access points to your configuration is feasible with the recommended setup. Here's the updated analysis:

**Updated Requirements with Access Points**:
1. **Port Usage**:
   - Original: 45 cameras + 30 phones = 75 devices
   - Adding 10 APs = 85 total devices
   - Recommended config: 96 ports (still sufficient, 11 ports remaining)

2. **Power Budget**:
   - Original: 435W (cameras + phones)
   - 10 APs × 15W = 150W additional power
   - New total: 585W required
   - Recommended config: 1,480W total (still sufficient, 895W remaining)

3. **Network Considerations for AP Deployment**:
   - Distribute APs evenly between switches (5 per switch)
   - Configure each switch with a dedicated VLAN for wireless management
   - Implement controller-based management for centralized AP administration
   - Consider adding AP-MNGT-1YR controller license for advanced wireless features

The recommended dual SW-48-POE configuration can easily accommodate the addition of 10 access points with plenty of capacity remaining for future growth.`,
			Visualization: viz(entity.VizInteractiveBarChart, entity.InteractiveBarChartData{
				Title:    "Updated Resource Utilization",
				Labels:   []string{"Ports Used", "Power Used (W)"},
				Values:   []float64{85, 585},
				MaxValue: 100,
				Unit:     "",
				Descriptions: []string{
					"85 of 96 available ports (88.5% utilization)",
					"585W of 1,480W available power (39.5% utilization)",
				},
				Color: "#3B82F6",
			}),
		},
	},
}
