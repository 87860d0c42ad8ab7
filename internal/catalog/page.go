package catalog

type DisasterCategory struct {
	ID          string
	Title       string
	Description string
	Examples    []string
	Trained     string
	Scenarios   string
}

var DisasterCategories = []DisasterCategory{
	{
		ID:          "natural",
		Title:       "Natural Disasters",
		Description: "Learn about earthquakes, tsunamis, hurricanes, and other natural emergencies",
		Examples:    []string{"Earthquakes", "Tsunamis", "Hurricanes", "Floods", "Wildfires"},
		Trained:     "25K+",
		Scenarios:   "8",
	},
	{
		ID:          "man-made",
		Title:       "Man-Made Disasters",
		Description: "Understand human-caused emergencies including industrial accidents and conflicts",
		Examples:    []string{"Building Fires", "Chemical Spills", "Nuclear Accidents", "Terrorism", "Riots"},
		Trained:     "18K+",
		Scenarios:   "6",
	},
	{
		ID:          "personal",
		Title:       "Personal Emergencies",
		Description: "Master first aid, medical emergencies, and personal safety techniques",
		Examples:    []string{"First Aid", "CPR", "Medical Emergencies", "Personal Safety", "Mental Health"},
		Trained:     "30K+",
		Scenarios:   "12",
	},
}

type Stat struct {
	Value string
	Label string
}

var HeroStats = []Stat{
	{Value: "50K+", Label: "Students Trained"},
	{Value: "15+", Label: "Disaster Types"},
	{Value: "98%", Label: "Success Rate"},
}

var FooterStats = []Stat{
	{Value: "50K+", Label: "Students Trained"},
	{Value: "26+", Label: "Disaster Types Covered"},
	{Value: "98%", Label: "Knowledge Retention"},
	{Value: "24/7", Label: "AI Support Available"},
}

// Sections lists the page's anchors in scroll order.
var Sections = []string{"hero", "categories", "ai-chatbot", "quiz", "checklist", "emergency-contacts", "footer"}

type Hero struct {
	Badge    string
	Headline []string
	Tagline  string
	Stats    []Stat
}

var PageHero = Hero{
	Badge:    "Trusted by 10,000+ Students",
	Headline: []string{"Be Ready.", "Stay Safe.", "Help Others."},
	Tagline:  "Interactive disaster preparedness learning for students. Master emergency skills through AI-powered education, quizzes, and real-world scenarios.",
	Stats:    HeroStats,
}
