package catalog

var audienceTable = []Audience{
	{
		Key:   General,
		Label: "General Users",
		Features: []string{
			"Intuitive user interface",
			"Quick onboarding process",
			"Multi-language support",
			"Accessibility features",
			"Basic and advanced user modes",
		},
		Tags: []string{"users", "everyone", "general", "accessible", "mainstream"},
	},
	{
		Key:   Business,
		Label: "Business",
		Features: []string{
			"Team collaboration tools",
			"Business analytics dashboard",
			"Enterprise security features",
			"Role-based permissions",
			"Integration with business tools",
		},
		Tags: []string{"business", "enterprise", "productivity", "professional", "commerce"},
	},
	{
		Key:   Developers,
		Label: "Developers",
		Features: []string{
			"API access",
			"Custom scripting support",
			"Debugging tools",
			"Version control integration",
			"Technical documentation",
		},
		Tags: []string{"developers", "coding", "programming", "technical", "engineering"},
	},
	{
		Key:   Creative,
		Label: "Creative Professionals",
		Features: []string{
			"Design toolset",
			"Asset management",
			"Creative templates",
			"Portfolio showcase",
			"Collaboration for creatives",
		},
		Tags: []string{"creative", "design", "artistic", "portfolio", "visual"},
	},
	{
		Key:   EducationAudience,
		Label: "Education",
		Features: []string{
			"Learning progress tracking",
			"Educational content creation",
			"Quiz and assessment tools",
			"Student management",
			"Classroom integration",
		},
		Tags: []string{"education", "learning", "students", "teaching", "academic"},
	},
	{
		Key:   Children,
		Label: "Children",
		Features: []string{
			"Kid-friendly interface",
			"Parental controls",
			"Educational content",
			"Reward systems",
			"Safe environment",
		},
		Tags: []string{"children", "kids", "family", "parental", "educational"},
	},
}
