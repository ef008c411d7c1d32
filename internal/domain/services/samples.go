package services

import (
	"github.com/fredcamaral/pptxgen/internal/domain/entities"
)

// SampleDeckOutline is the deck written by --sample
func SampleDeckOutline() *entities.Outline {
	return entities.NewOutline(
		"Sample Presentation",
		"Created with pptxgen",
		entities.ContentSlide{
			Title: "Key Features",
			Bullets: []string{
				"Programmatic PowerPoint creation",
				"Support for text, bullets, and images",
				"Customizable layouts and styling",
				"Outlines in JSON, YAML or Markdown",
			},
		},
		entities.TextSlide{
			Title: "About This Tool",
			Text: "This tool generates presentations from code or from a declarative outline. " +
				"Slides are laid out with the layouts of a default deck or of a template you supply, " +
				"so every generated deck stays consistent with your house style.",
		},
	)
}

// SampleJSONOutline is the outline written by --sample-json
func SampleJSONOutline() *entities.Outline {
	return entities.NewOutline(
		"My Presentation",
		"A presentation created from JSON",
		entities.ContentSlide{
			Title: "Introduction",
			Bullets: []string{
				"Welcome to our presentation",
				"This was created from a JSON file",
				"It demonstrates the flexibility of our tool",
			},
		},
		entities.TextSlide{
			Title: "Detailed Information",
			Text: "This slide contains paragraph text instead of bullet points. " +
				"You can use this format when you need to present more detailed " +
				"information or explanations.",
		},
		entities.ContentSlide{
			Title: "Next Steps",
			Bullets: []string{
				"Customize the JSON file for your needs",
				"Add more slides and content",
				"Generate your presentation",
			},
		},
	)
}
