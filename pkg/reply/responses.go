package reply

import (
	"fmt"

	"nolij-demo-be/internal/entity"
)

// Composer turns an incoming user message into the canned agent reply for
// the active persona. Reply text and visualization payloads are fixed demo
// content; only the persona phrasing varies.
type Composer struct {
	matcher *Matcher
}

func NewComposer() (*Composer, error) {
	m, err := NewMatcher()
	if err != nil {
		return nil, err
	}
	return &Composer{matcher: m}, nil
}

// ForText builds the agent reply for a plain text message.
func (c *Composer) ForText(text string, persona entity.Persona) entity.Message {
	msg := entity.Message{Sender: entity.SenderAgent, Persona: persona}

	switch c.matcher.Match(text) {
	case RuleSwitchConfig:
		if persona == entity.PersonaProfessional {
			msg.Text = "I've analyzed the switch configuration. Your quote is missing the POE-CORD-NA power cord required for PoE operation. Additionally, I recommend adding NET-ADV-1YR license for advanced features."
		} else {
			msg.Text = "Hey there! I looked at your switch setup and noticed you're missing the power cord (POE-CORD-NA) that you'll need for those PoE devices. Also, don't forget to add the NET-ADV-1YR license if you want all the cool advanced features! 😊"
		}
		msg.Visualization = &entity.Visualization{
			Type: entity.VizCompatibilityMatrix,
			Data: entity.CompatibilityMatrixData{
				Title:   "SW-24-POE Compatibility",
				Headers: []string{"PoE Devices", "AC Input", "Controller"},
				Rows: []entity.CompatibilityRow{
					{Name: "SW-24-POE", Values: []string{"compatible", "warning", "compatible"}},
				},
			},
		}
	case RuleProductAlternatives:
		if persona == entity.PersonaProfessional {
			msg.Text = "Based on your requirements, I've prepared a detailed comparison of the discontinued SW-48-PRO switch with suitable alternatives. The SW-48-PRO-PLUS offers enhanced capabilities, while the SW-48-STD provides a more cost-effective option with fewer advanced features."
		} else {
			msg.Text = "Good news! Since the SW-48-PRO is discontinued, I've found a couple of great options for you. I've put together a detailed comparison so you can see how they stack up against each other!"
		}
		msg.Visualization = &entity.Visualization{
			Type: entity.VizProductComparison,
			Data: switchComparisonData(),
		}
	case RulePowerBudget:
		if persona == entity.PersonaProfessional {
			msg.Text = "I've analyzed your PoE budget requirements using advanced visualization. The SW-24-POE provides 370W of PoE power. Your current configuration with 12 cameras (5W each) and 8 phones (7W each) requires a total of 116W, which is well within the switch's capacity."
		} else {
			msg.Text = "Let's check your power budget with a cool interactive chart! Your SW-24-POE gives you 370W of PoE power. Looking at what you have - 12 cameras using 5W each and 8 phones needing 7W each - that adds up to 116W total. Great news! You're only using about 1/3 of your available power, so you're all set!"
		}
		msg.Visualization = &entity.Visualization{
			Type: entity.VizInteractiveBarChart,
			Data: entity.InteractiveBarChartData{
				Title:    "PoE Power Budget",
				Labels:   []string{"Available", "Used", "Remaining"},
				Values:   []float64{370, 116, 254},
				MaxValue: 400,
				Unit:     "W",
				Descriptions: []string{
					"Total power capacity of the SW-24-POE",
					"Current power usage by all connected devices",
					"Available power for additional devices",
				},
				Color: "#3B82F6",
			},
		}
	default:
		if persona == entity.PersonaProfessional {
			msg.Text = "I can help validate your hardware configurations, check compatibility, and suggest alternatives for EOL products. What specific quote or configuration would you like me to analyze?"
		} else {
			msg.Text = "Hi there! I'm here to help you check if your hardware setup is good to go, make sure everything works together, and find alternatives if something's discontinued. What can I help you with today?"
		}
	}

	return msg
}

// ForAttachments builds the agent reply for a completed upload. The reply
// depends only on how the mime types classify, never on file content.
func (c *Composer) ForAttachments(attachments []entity.FileAttachment, persona entity.Persona) entity.Message {
	msg := entity.Message{Sender: entity.SenderAgent, Persona: persona}

	docs, images := classify(attachments)
	n := len(attachments)

	if persona == entity.PersonaProfessional {
		msg.Text = fmt.Sprintf("I've received %d file%s. Let me analyze %s for you.\n\n", n, plural(n), themOrIt(n))
	} else {
		msg.Text = fmt.Sprintf("Thanks for sending %s! I'll take a look and extract the important information for you.\n\n", thoseFiles(n))
	}

	if docs > 0 {
		if persona == entity.PersonaProfessional {
			msg.Text += fmt.Sprintf("I've analyzed the document%s and extracted the following technical specifications:\n\n", plural(docs))
		} else {
			msg.Text += fmt.Sprintf("I've looked through your document%s and found these important details:\n\n", plural(docs))
		}
		msg.Text += "- SW-24-POE Switch (1 unit needed)\n" +
			"- POE-CORD-NA is missing but required\n" +
			"- NET-ADV-1YR License recommended for full functionality\n\n"
		msg.Visualization = &entity.Visualization{
			Type: entity.VizNetworkDiagram,
			Data: componentDiagramData(),
		}
	}

	if images > 0 {
		if persona == entity.PersonaProfessional {
			msg.Text += fmt.Sprintf("I've also analyzed the visual content of the supplied diagram%s and identified the network architecture. ", plural(images))
		} else {
			msg.Text += fmt.Sprintf("I looked at the diagram%s you sent and understood how everything connects. ", plural(images))
		}
		msg.Text += "The configuration requires proper power distribution for the PoE devices."
	}

	return msg
}

func plural(n int) string {
	if n > 1 {
		return "s"
	}
	return ""
}

func themOrIt(n int) string {
	if n > 1 {
		return "them"
	}
	return "it"
}

func thoseFiles(n int) string {
	if n > 1 {
		return "those files"
	}
	return "that file"
}
