// Package bank holds the static sustainability question bank.
package bank

import "carbon-quiz-service/internal/domain"

var sections = []domain.Section{
	{ID: "energy-emissions", Name: "Energy & Emissions", Icon: "⚡", Color: "#22c55e",
		Description: "Track and reduce your carbon footprint through energy management"},
	{ID: "water-treatment", Name: "Water Use & Treatment", Icon: "💧", Color: "#06b6d4",
		Description: "Monitor and optimize water consumption and treatment"},
	{ID: "waste-circularity", Name: "Waste & Circularity", Icon: "♻️", Color: "#8b5cf6",
		Description: "Implement circular economy principles and reduce waste"},
	{ID: "sustainable-procurement", Name: "Sustainable Procurement", Icon: "📦", Color: "#f59e0b",
		Description: "Choose eco-friendly suppliers and assess supply chain impact"},
	{ID: "esg-compliance", Name: "ESG Compliance & Integrity", Icon: "📊", Color: "#3b82f6",
		Description: "Ensure regulatory compliance and transparent reporting"},
	{ID: "governance-culture", Name: "Governance & Culture", Icon: "👥", Color: "#ec4899",
		Description: "Build sustainable leadership and employee engagement"},
	{ID: "nature-community", Name: "Nature & Community Impact", Icon: "🌳", Color: "#10b981",
		Description: "Protect ecosystems and support local communities"},
	{ID: "digital-efficiency", Name: "Digital & Operational Efficiency", Icon: "🖥️", Color: "#6366f1",
		Description: "Leverage technology for sustainable operations"},
	{ID: "audit-readiness", Name: "Audit Readiness & Transparency", Icon: "📈", Color: "#14b8a6",
		Description: "Prepare for audits and demonstrate transparency"},
}

// Default returns a copy of the question bank, questions in presentation order.
func Default() domain.Bank {
	return domain.Bank{
		Sections:  append([]domain.Section(nil), sections...),
		Questions: append([]domain.Question(nil), questions...),
	}
}
