// Package catalog holds the static content the service seeds into its store at
// startup: quiz questions, checklist items, emergency contacts, canned chat answers
// and the page copy.
package catalog

import "safesteps/internal/quiz"

var QuizQuestions = []quiz.Question{
	{
		ID:            "earthquake1",
		Text:          "During an earthquake, what should you do first?",
		Options:       []string{"Run outside immediately", "Drop, cover, and hold on", "Stand in a doorway", "Hide under a bed"},
		CorrectAnswer: 1,
		Explanation:   "Drop to hands and knees, take cover under sturdy furniture, and hold on until shaking stops.",
		Category:      "Natural Disasters",
		Difficulty:    quiz.Easy,
	},
	{
		ID:            "fire1",
		Text:          "If your clothes catch fire, what should you do?",
		Options:       []string{"Run to get help", "Stop, drop, and roll", "Jump in water", "Remove clothes quickly"},
		CorrectAnswer: 1,
		Explanation:   "Stop, drop to the ground, and roll to smother the flames. Running makes fire burn faster.",
		Category:      "Fire Safety",
		Difficulty:    quiz.Easy,
	},
	{
		ID:   "medical1",
		Text: "What are the signs of a heart attack?",
		Options: []string{
			"Only chest pain",
			"Chest pain, shortness of breath, nausea, sweating",
			"Just feeling tired",
			"Only arm pain",
		},
		CorrectAnswer: 1,
		Explanation:   "Heart attack symptoms include chest pain/discomfort, shortness of breath, nausea, sweating, and pain in arms, neck, or jaw.",
		Category:      "Medical Emergency",
		Difficulty:    quiz.Medium,
	},
	{
		ID:            "tsunami1",
		Text:          "How much time do you typically have to evacuate after feeling an earthquake near the coast?",
		Options:       []string{"30 minutes", "1 hour", "5-20 minutes", "2 hours"},
		CorrectAnswer: 2,
		Explanation:   "You may have only 5-20 minutes to reach high ground after a strong coastal earthquake. Don't wait for warnings!",
		Category:      "Natural Disasters",
		Difficulty:    quiz.Hard,
	},
	{
		ID:            "kit1",
		Text:          "How much water should you store per person per day in an emergency kit?",
		Options:       []string{"1/2 gallon", "1 gallon", "2 gallons", "1/4 gallon"},
		CorrectAnswer: 1,
		Explanation:   "Store at least 1 gallon of water per person per day for drinking, cooking, and sanitation.",
		Category:      "Emergency Preparedness",
		Difficulty:    quiz.Medium,
	},
}
