package generation

import "github.com/google/generative-ai-go/genai"

// datasetSchema constrains the model's structured output to the dashboard
// dataset shape. clinicName and specialty are deliberately absent: the
// gateway stamps those from the caller's inputs and never trusts the model
// to echo them.
var datasetSchema = &genai.Schema{
	Type: genai.TypeObject,
	Properties: map[string]*genai.Schema{
		"kpis": {
			Type: genai.TypeArray,
			Items: &genai.Schema{
				Type: genai.TypeObject,
				Properties: map[string]*genai.Schema{
					"label":          {Type: genai.TypeString},
					"value":          {Type: genai.TypeString},
					"trend":          {Type: genai.TypeString},
					"trendDirection": {Type: genai.TypeString, Enum: []string{"up", "down", "neutral"}},
				},
			},
		},
		"monthlyPatients": {
			Type: genai.TypeArray,
			Items: &genai.Schema{
				Type: genai.TypeObject,
				Properties: map[string]*genai.Schema{
					"name":  {Type: genai.TypeString},
					"value": {Type: genai.TypeNumber},
				},
			},
		},
		"revenueDistribution": {
			Type: genai.TypeArray,
			Items: &genai.Schema{
				Type: genai.TypeObject,
				Properties: map[string]*genai.Schema{
					"name":  {Type: genai.TypeString},
					"value": {Type: genai.TypeNumber},
				},
			},
		},
		"recommendations": {
			Type:  genai.TypeArray,
			Items: &genai.Schema{Type: genai.TypeString},
		},
		"recentPatients": {
			Type: genai.TypeArray,
			Items: &genai.Schema{
				Type: genai.TypeObject,
				Properties: map[string]*genai.Schema{
					"id":        {Type: genai.TypeString},
					"name":      {Type: genai.TypeString},
					"age":       {Type: genai.TypeNumber},
					"phone":     {Type: genai.TypeString},
					"lastVisit": {Type: genai.TypeString},
					"condition": {Type: genai.TypeString},
				},
			},
		},
		"upcomingAppointments": {
			Type: genai.TypeArray,
			Items: &genai.Schema{
				Type: genai.TypeObject,
				Properties: map[string]*genai.Schema{
					"id":          {Type: genai.TypeString},
					"patientName": {Type: genai.TypeString},
					"date":        {Type: genai.TypeString},
					"time":        {Type: genai.TypeString},
					"type":        {Type: genai.TypeString},
					"status":      {Type: genai.TypeString, Enum: []string{"Confirmé", "En attente", "Annulé"}},
				},
			},
		},
	},
}
