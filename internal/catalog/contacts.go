package catalog

import "safesteps/internal/contacts"

var EmergencyContacts = []contacts.Contact{
	{ID: "112", Name: "Emergency Services", Number: "112", Description: "Police, Fire, Medical Emergency", Kind: contacts.Emergency, Available: "24/7"},
	{ID: "poison", Name: "Poison Control", Number: "1-800-425-1213", Description: "Poisoning emergencies and information", Kind: contacts.Medical, Available: "24/7"},
	{ID: "disaster", Name: "Disaster Hotline", Number: "+91-23716441/2/3", Description: "Red Cross disaster assistance", Kind: contacts.Support, Available: "24/7"},
	{ID: "suicide", Name: "Crisis Lifeline", Number: "9152987821", Description: "Suicide & Crisis prevention", Kind: contacts.Support, Available: "24/7"},
	{ID: "fire", Name: "Non-Emergency Fire", Number: "101", Description: "Non-emergency fire department", Kind: contacts.Support, Available: "24/7"},
}

var QuickTips = []string{
	"Save these numbers in your phone now",
	"Know your exact address and nearest major intersection",
	"Keep a written list in case your phone dies",
	"Program ICE (In Case of Emergency) contacts",
	"Learn basic information to give dispatcher",
}
