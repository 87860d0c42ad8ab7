package catalog

import "safesteps/internal/chat"

// CannedAnswers is checked in order; the first keyword found in a question wins.
var CannedAnswers = []chat.Answer{
	{Keyword: "earthquake", Text: "During an earthquake: 🔸 Drop to hands and knees 🔸 Take cover under sturdy furniture 🔸 Hold on until shaking stops 🔸 Stay away from windows and heavy objects 🔸 If outdoors, move away from buildings"},
	{Keyword: "emergency kit", Text: "Essential emergency kit items: 🔸 Water (1 gallon per person per day) 🔸 Non-perishable food (3-day supply) 🔸 Flashlight & batteries 🔸 First aid kit 🔸 Medications 🔸 Important documents 🔸 Cash 🔸 Radio"},
	{Keyword: "heart attack", Text: "Heart attack first aid: 🔸 Call 911 immediately 🔸 Have person sit down and stay calm 🔸 Loosen tight clothing 🔸 Give aspirin if not allergic 🔸 Begin CPR if person becomes unconscious 🔸 Don't leave them alone"},
	{Keyword: "tsunami", Text: "Tsunami safety: 🔸 Move to high ground immediately 🔸 Go at least 2 miles inland or 100 feet above sea level 🔸 Don't wait for official warnings 🔸 Stay away from beaches and waterways 🔸 Listen to emergency broadcasts"},
	{Keyword: "fire safety", Text: "Fire safety tips: 🔸 Install smoke detectors 🔸 Create evacuation plan 🔸 Keep fire extinguisher accessible 🔸 Don't overload electrical outlets 🔸 Check heating equipment annually 🔸 Practice fire drills"},
}

var QuickQuestions = []string{
	"What should I do during an earthquake?",
	"How to create an emergency kit?",
	"First aid for heart attack",
	"Tsunami evacuation steps",
	"Fire safety at home",
}
