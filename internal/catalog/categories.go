package catalog

var categoryTable = []Category{
	{
		Key:      Productivity,
		Name:     "Productivity",
		Prefixes: []string{"Smart", "Efficient", "Quick", "Streamlined", "Automated", "Intelligent"},
		Suffixes: []string{"Task Manager", "Planner", "Organizer", "Assistant", "Tracker", "Hub", "Workspace"},
		Descriptions: []string{
			"A productivity app that helps users organize tasks with smart categorization and AI-powered priority suggestions.",
			"A time management tool that uses machine learning to analyze user productivity patterns and suggest optimal work schedules.",
			"A digital workspace that combines notes, tasks, and calendar in one interface with automated task sorting and reminder features.",
			"A collaborative project management tool that adapts to team workflows and provides real-time progress tracking with predictive analytics.",
		},
		Features: [][]string{
			{"Task categorization", "Priority sorting", "Deadline tracking", "Recurring tasks", "Note attachments"},
			{"Time tracking", "Productivity analytics", "Focus timer", "Break reminders", "Work pattern insights"},
			{"Kanban boards", "Calendar integration", "Document storage", "Team collaboration", "Activity reports"},
			{"Voice input", "Cross-device sync", "Smart notifications", "Natural language processing", "Template library"},
		},
		Technical: [][]string{
			{"User activity tracking algorithm", "Data visualization", "Cross-platform synchronization", "Backend task scheduling"},
			{"Machine learning for pattern recognition", "Real-time data processing", "Secure data storage", "Calendar API integration"},
			{"User authentication system", "Drag-and-drop interfaces", "Search optimization", "Notification management"},
			{"Cloud storage integration", "Offline functionality", "Real-time collaboration infrastructure", "PWA capabilities"},
		},
		Tags: []string{"productivity", "timemanagement", "organization", "workflow", "efficiency", "planner", "tasks"},
	},
	{
		Key:      Social,
		Name:     "Social Media",
		Prefixes: []string{"Social", "Connect", "Community", "Friend", "Group", "Network", "Share"},
		Suffixes: []string{"Hub", "Space", "Circle", "Feed", "Connect", "Link", "Tribe", "Pulse"},
		Descriptions: []string{
			"A niche social platform that connects users based on specific interests, featuring algorithmic matching and interest-based content feeds.",
			"A privacy-focused social network that gives users complete control over their data and content visibility with encrypted messaging.",
			"A creative social media app that encourages authentic sharing through timed content challenges and community feedback loops.",
			"A location-based social networking app that helps users discover events, activities, and people in their vicinity with augmented reality features.",
		},
		Features: [][]string{
			{"Interest matching", "Content discovery feed", "Group creation", "Personalized recommendations", "Direct messaging"},
			{"End-to-end encryption", "Custom privacy settings", "Content lifespan controls", "Data export tools", "Viewing history management"},
			{"Creative challenges", "Community voting", "Achievement badges", "Temporary content", "Collaborative creation tools"},
			{"Location-based feeds", "Event discovery", "Interactive maps", "Check-ins", "Local business integration"},
		},
		Technical: [][]string{
			{"Recommendation algorithms", "Real-time content delivery", "User graph database", "Content moderation system"},
			{"Encryption protocols", "Privacy-preserving analytics", "Secure messaging infrastructure", "User control paradigms"},
			{"Real-time interaction systems", "Content scheduling", "Gamification framework", "Media processing"},
			{"Geolocation services", "Map integration", "Proximity detection", "Local data caching"},
		},
		Tags: []string{"social", "community", "networking", "sharing", "communication", "friends", "content"},
	},
	{
		Key:      Entertainment,
		Name:     "Entertainment",
		Prefixes: []string{"Fun", "Play", "Joy", "Amuse", "Enjoy", "Delight", "Thrill"},
		Suffixes: []string{"Player", "Theater", "Arena", "Station", "Box", "Zone", "Hub", "Fest"},
		Descriptions: []string{
			"An interactive storytelling app where users make choices that affect the narrative, featuring branching storylines and character development.",
			"A social gaming platform that combines casual games with video chat, allowing friends to play together while maintaining visual connection.",
			"A music discovery app that creates personalized playlists based on mood, activity, and listening history with social sharing features.",
			"A virtual reality experience platform offering immersive entertainment from concerts to guided meditations with customizable environments.",
		},
		Features: [][]string{
			{"Branching narratives", "Character customization", "Voice acted content", "Progress tracking", "Story creation tools"},
			{"Multiplayer mini-games", "Video chat integration", "Tournament creation", "Leaderboards", "Game recommendation engine"},
			{"Mood detection", "Activity-based playlists", "Artist discovery", "Social sharing", "Lyrics visualization"},
			{"VR environment library", "Experience scheduling", "Quality adjustment settings", "Social viewing", "Content creation tools"},
		},
		Technical: [][]string{
			{"Narrative management system", "Decision tree architecture", "Content delivery network", "User choice tracking"},
			{"WebRTC implementation", "Low-latency networking", "Game state synchronization", "Video optimization"},
			{"Audio analysis algorithms", "Recommendation engine", "Music licensing integration", "Social graph management"},
			{"3D rendering optimization", "VR hardware integration", "Spatial audio", "Motion tracking"},
		},
		Tags: []string{"entertainment", "fun", "gaming", "media", "interactive", "streaming", "immersive"},
	},
	{
		Key:      Education,
		Name:     "Education",
		Prefixes: []string{"Learn", "Study", "Edu", "Scholar", "Knowledge", "Brain", "Smart"},
		Suffixes: []string{"Academy", "Tutor", "Class", "Lab", "School", "Quest", "Mind"},
		Descriptions: []string{
			"An adaptive learning platform that customizes educational content based on individual learning styles, progress, and goals.",
			"A language learning app that uses conversation simulation with AI to provide immersive speaking practice with real-time feedback.",
			"A collaborative study tool that allows students to create and share interactive study materials with built-in quizzing and progress tracking.",
			"A skill development platform that breaks down complex topics into daily micro-learning sessions with practical exercises and projects.",
		},
		Features: [][]string{
			{"Learning style assessment", "Adaptive content", "Progress tracking", "Knowledge gap analysis", "Interactive exercises"},
			{"Speech recognition", "Conversation scenarios", "Vocabulary tracking", "Grammar assistance", "Cultural context notes"},
			{"Study group creation", "Document collaboration", "Quiz generation", "Flashcard system", "Study schedule optimizer"},
			{"Skill roadmaps", "Daily challenges", "Project-based learning", "Expert verification", "Portfolio building"},
		},
		Technical: [][]string{
			{"Learning pattern analytics", "Content adaptation algorithms", "Progress tracking database", "Assessment generation"},
			{"Natural language processing", "Speech analysis", "Conversation branching system", "Pronunciation scoring"},
			{"Real-time collaboration", "Content versioning", "Quiz generation algorithms", "Spaced repetition system"},
			{"Learning path algorithms", "Content sequencing", "Achievement system", "Skill taxonomy database"},
		},
		Tags: []string{"education", "learning", "study", "knowledge", "skills", "courses", "academic"},
	},
	{
		Key:      Health,
		Name:     "Health & Wellness",
		Prefixes: []string{"Health", "Wellness", "Fit", "Vital", "Active", "Mind", "Body"},
		Suffixes: []string{"Tracker", "Coach", "Monitor", "Diary", "Plus", "Journey", "Balance"},
		Descriptions: []string{
			"A holistic health tracking app that combines physical activity, nutrition, sleep, and mental wellness monitoring with personalized recommendations.",
			"A meditation and mindfulness app featuring guided sessions that adapt to user stress levels detected through phone sensors and user feedback.",
			"A nutrition planning tool that generates meal plans and shopping lists based on dietary goals, preferences, and health conditions.",
			"A fitness coaching app that creates personalized workout routines based on available equipment, time constraints, and fitness level.",
		},
		Features: [][]string{
			{"Health metrics dashboard", "Goal setting", "Progress visualization", "Habit tracking", "Health insights"},
			{"Guided meditation library", "Mood tracking", "Breathing exercises", "Sleep stories", "Mindfulness reminders"},
			{"Recipe database", "Meal scheduling", "Nutritional analysis", "Dietary restriction tools", "Shopping list generation"},
			{"Exercise demonstration videos", "Workout customization", "Progress tracking", "Recovery monitoring", "Training plans"},
		},
		Technical: [][]string{
			{"Health data integration", "Metrics correlation analysis", "Progress algorithm", "Secure health data storage"},
			{"Audio streaming optimization", "Background noise filtering", "Heart rate monitor integration", "Session recommendation algorithm"},
			{"Nutritional database", "Meal planning algorithm", "User preference learning", "Shopping integration APIs"},
			{"Video streaming", "Exercise classification system", "Fitness assessment algorithm", "Recommendation engine"},
		},
		Tags: []string{"health", "wellness", "fitness", "nutrition", "mindfulness", "tracking", "wellbeing"},
	},
	{
		Key:      Finance,
		Name:     "Finance",
		Prefixes: []string{"Money", "Finance", "Budget", "Wealth", "Cash", "Invest", "Fund"},
		Suffixes: []string{"Tracker", "Manager", "Planner", "Wallet", "Saver", "Advisor", "Watch"},
		Descriptions: []string{
			"A personal finance app that provides automated expense categorization, budget recommendations, and financial goal planning with predictive analysis.",
			"An investment education platform that simulates stock market investing with real-time data and guided learning modules for beginners.",
			"A collaborative expense management tool for groups that tracks shared expenses, facilitates repayments, and provides spending insights.",
			"A financial literacy app targeting young adults with gamified learning modules covering budgeting, investing, credit, and retirement planning.",
		},
		Features: [][]string{
			{"Bank account integration", "Expense categorization", "Budget templates", "Financial goal tracking", "Spending insights"},
			{"Virtual portfolio", "Market data visualization", "Investment tutorials", "Risk assessment tools", "Performance comparison"},
			{"Expense splitting", "Payment tracking", "Group creation", "Receipt scanning", "Settlement reminders"},
			{"Learning modules", "Financial quizzes", "Achievement system", "Simulation tools", "Personalized advice"},
		},
		Technical: [][]string{
			{"Banking API integration", "Transaction categorization algorithm", "Encryption for financial data", "Predictive analytics"},
			{"Real-time data feeds", "Portfolio simulation engine", "Educational content management", "User progress tracking"},
			{"Payment calculation algorithms", "Multi-user database architecture", "OCR for receipts", "Push notification system"},
			{"Gamification framework", "Financial modeling", "Content progression system", "Personalization engine"},
		},
		Tags: []string{"finance", "money", "budget", "investing", "expenses", "savings", "financial"},
	},
	{
		Key:      Utility,
		Name:     "Utility",
		Prefixes: []string{"Quick", "Easy", "Smart", "Handy", "Ultimate", "Power", "Pro"},
		Suffixes: []string{"Tool", "Utility", "Helper", "Assistant", "Solver", "Kit", "Box"},
		Descriptions: []string{
			"A smart home management app that centralizes control of various IoT devices with automation routines based on user behavior and preferences.",
			"A document scanning and management tool with OCR, automatic categorization, and secure cloud storage with advanced search capabilities.",
			"A comprehensive travel assistant that consolidates bookings, itineraries, local recommendations, and real-time updates for transportation.",
			"A digital identity manager that securely stores and autofills personal information, IDs, and documents with selective sharing capabilities.",
		},
		Features: [][]string{
			{"Device integration", "Automation rules", "Usage analytics", "Voice control", "Energy monitoring"},
			{"Document scanning", "Text recognition", "Categorization", "Search functionality", "Document sharing"},
			{"Itinerary management", "Booking storage", "Local recommendations", "Travel alerts", "Offline maps"},
			{"Secure storage", "Biometric authentication", "Selective sharing", "Auto-fill capability", "Expiration reminders"},
		},
		Technical: [][]string{
			{"IoT device APIs", "Automation rule engine", "User behavior analysis", "Voice command processing"},
			{"OCR technology", "Document classification algorithm", "Secure cloud storage", "Full-text search indexing"},
			{"Travel API integration", "Geolocation services", "Data synchronization", "Offline capability"},
			{"Encryption protocols", "Secure enclave usage", "Permissions management", "Form detection"},
		},
		Tags: []string{"utility", "tools", "productivity", "organization", "assistant", "smart", "management"},
	},
}
