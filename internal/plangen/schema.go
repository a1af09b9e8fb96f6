package plangen

// schema is the subset of the Gemini response-schema declaration this
// service needs (OBJECT/ARRAY/STRING/NUMBER nodes).
type schema struct {
	Type       string             `json:"type"`
	Properties map[string]*schema `json:"properties,omitempty"`
	Items      *schema            `json:"items,omitempty"`
}

func str() *schema    { return &schema{Type: "STRING"} }
func num() *schema    { return &schema{Type: "NUMBER"} }
func strArr() *schema { return &schema{Type: "ARRAY", Items: str()} }

// planResponseSchema binds the model to the exact {workout, meal} shape
// of domain.Plan. The schema is the sole structural validator: value
// ranges of generated numbers are not checked anywhere downstream.
var planResponseSchema = &schema{
	Type: "OBJECT",
	Properties: map[string]*schema{
		"workout": {
			Type: "OBJECT",
			Properties: map[string]*schema{
				"weeklySplit": str(),
				"dailyExercises": {
					Type: "ARRAY",
					Items: &schema{
						Type: "OBJECT",
						Properties: map[string]*schema{
							"day":   str(),
							"focus": str(),
							"exercises": {
								Type: "ARRAY",
								Items: &schema{
									Type: "OBJECT",
									Properties: map[string]*schema{
										"name":  str(),
										"sets":  str(),
										"reps":  str(),
										"rest":  str(),
										"notes": str(),
									},
								},
							},
							"estimatedCalories": num(),
						},
					},
				},
				"progressiveOverload": str(),
				"homeAlternative":     str(),
			},
		},
		"meal": {
			Type: "OBJECT",
			Properties: map[string]*schema{
				"weeklyMeals": {
					Type: "ARRAY",
					Items: &schema{
						Type: "OBJECT",
						Properties: map[string]*schema{
							"day": str(),
							"meals": {
								Type: "ARRAY",
								Items: &schema{
									Type: "OBJECT",
									Properties: map[string]*schema{
										"type":        str(),
										"name":        str(),
										"ingredients": strArr(),
										"calories":    num(),
										"macros": {
											Type: "OBJECT",
											Properties: map[string]*schema{
												"p": num(),
												"c": num(),
												"f": num(),
											},
										},
									},
								},
							},
						},
					},
				},
				"groceryList":   strArr(),
				"budgetTips":    strArr(),
				"culturalNotes": str(),
			},
		},
	},
}
