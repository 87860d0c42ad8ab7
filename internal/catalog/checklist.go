package catalog

import "safesteps/internal/checklist"

var ChecklistItems = []checklist.Item{
	{ID: "smoke-detector", Title: "Install smoke detectors", Description: "Test monthly, replace batteries annually", Category: checklist.Home, Priority: checklist.High},
	{ID: "fire-extinguisher", Title: "Fire extinguisher accessible", Description: "Check pressure gauge, know how to use", Category: checklist.Home, Priority: checklist.High},
	{ID: "evacuation-plan", Title: "Create evacuation plan", Description: "Practice with all family members", Category: checklist.Home, Priority: checklist.High},
	{ID: "utility-shutoffs", Title: "Know utility shut-offs", Description: "Gas, water, and electricity locations", Category: checklist.Home, Priority: checklist.Medium},

	{ID: "water-supply", Title: "Water supply (1 gal/person/day)", Description: "3-day minimum supply stored", Category: checklist.Kit, Priority: checklist.High},
	{ID: "food-supply", Title: "Non-perishable food", Description: "3-day supply, include can opener", Category: checklist.Kit, Priority: checklist.High},
	{ID: "first-aid", Title: "First aid kit", Description: "Fully stocked with bandages, medications", Category: checklist.Kit, Priority: checklist.High},
	{ID: "flashlight", Title: "Flashlight and batteries", Description: "Extra batteries for each device", Category: checklist.Kit, Priority: checklist.High},
	{ID: "radio", Title: "Emergency radio", Description: "Battery or hand-crank powered", Category: checklist.Kit, Priority: checklist.Medium},
	{ID: "medications", Title: "Essential medications", Description: "7-day supply for each person", Category: checklist.Kit, Priority: checklist.High},

	{ID: "car-kit", Title: "Vehicle emergency kit", Description: "Jumper cables, tire repair, blanket", Category: checklist.Vehicle, Priority: checklist.Medium},
	{ID: "fuel", Title: "Keep fuel tank half full", Description: "Always maintain minimum fuel level", Category: checklist.Vehicle, Priority: checklist.Medium},

	{ID: "emergency-contacts", Title: "Emergency contact list", Description: "Physical and digital copies", Category: checklist.Digital, Priority: checklist.High},
	{ID: "important-docs", Title: "Important documents copied", Description: "ID, insurance, medical info", Category: checklist.Digital, Priority: checklist.Medium},
	{ID: "emergency-apps", Title: "Emergency apps installed", Description: "Weather alerts, first aid guides", Category: checklist.Digital, Priority: checklist.Low},
}
