package ai

// Categories defines the article categories the upstream aggregator assigns.
// Criteria interpreters use this list to constrain category extraction.
var Categories = []string{
	"LLMs & Foundation Models",
	"AI Tools & Platforms",
	"Open Source AI Projects",
	"AI Research & Papers",
	"AI Agents & Automation",
	"AI in Development",
	"Multimodal AI",
}
