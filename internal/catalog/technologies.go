package catalog

var technologyTable = []Technology{
	{
		Key:   AI,
		Label: "Artificial Intelligence",
		Features: []string{
			"AI-powered recommendations",
			"Natural language processing",
			"Machine learning insights",
			"Predictive analytics",
			"Automated content generation",
			"Personalized user experiences",
			"Intelligent automation",
		},
		Technical: []string{
			"Machine learning model training and deployment",
			"Natural language processing pipeline",
			"Data collection and preprocessing",
			"Model optimization for mobile/web",
			"API integration with AI services",
			"Real-time prediction serving",
		},
		Titles: []TitleFragment{
			{"AI", "Assistant"},
			{"Smart", "AI"},
			{"Intelligent", "Bot"},
			{"Neural", "Mind"},
			{"Cognitive", "Helper"},
		},
	},
	{
		Key:   AR,
		Label: "AR/VR",
		Features: []string{
			"Augmented reality visualization",
			"3D object placement",
			"AR navigation",
			"Virtual try-on",
			"Interactive AR experiences",
			"Spatial mapping",
			"AR annotations",
		},
		Technical: []string{
			"ARKit/ARCore implementation",
			"3D rendering optimization",
			"Spatial tracking algorithms",
			"Real-world object recognition",
			"3D asset management",
			"Camera calibration",
		},
		Titles: []TitleFragment{
			{"AR", "Viewer"},
			{"Virtual", "Lens"},
			{"Augment", "Vision"},
			{"Reality", "Explorer"},
			{"Immersive", "Space"},
		},
	},
	{
		Key:   Mobile,
		Label: "Mobile",
		Features: []string{
			"Offline functionality",
			"Push notifications",
			"Location-based services",
			"Camera integration",
			"Touch gestures",
			"Mobile payments",
			"QR/barcode scanning",
		},
		Technical: []string{
			"Cross-platform development",
			"Native API integration",
			"Responsive UI design",
			"Battery optimization",
			"Offline data synchronization",
			"Device sensor utilization",
		},
		Titles: []TitleFragment{
			{"Mobile", "App"},
			{"Pocket", "Pro"},
			{"Go", "Mobile"},
			{"Handy", "Companion"},
			{"Portable", "Tool"},
		},
	},
	{
		Key:   Web,
		Label: "Web",
		Features: []string{
			"Cross-browser compatibility",
			"Responsive design",
			"Progressive enhancement",
			"Accessibility features",
			"Real-time collaboration",
			"Content management",
			"API integrations",
		},
		Technical: []string{
			"Frontend framework implementation",
			"RESTful API design",
			"Serverless architecture",
			"Database optimization",
			"Authentication systems",
			"Cloud hosting",
		},
		Titles: []TitleFragment{
			{"Web", "Portal"},
			{"Cloud", "Hub"},
			{"Online", "Platform"},
			{"Net", "Suite"},
			{"Browser", "App"},
		},
	},
	{
		Key:   IoT,
		Label: "IoT",
		Features: []string{
			"Device synchronization",
			"Remote monitoring",
			"Automated triggers",
			"Energy usage analytics",
			"Central control interface",
			"Environmental sensing",
			"Smart notifications",
		},
		Technical: []string{
			"IoT protocol implementation (MQTT, CoAP)",
			"Device provisioning system",
			"Secure communication channels",
			"Low-power optimization",
			"Sensor data processing",
			"Edge computing capabilities",
		},
		Titles: []TitleFragment{
			{"Smart", "Connect"},
			{"IoT", "Manager"},
			{"Connected", "Hub"},
			{"Sense", "Control"},
			{"Auto", "Things"},
		},
	},
}
