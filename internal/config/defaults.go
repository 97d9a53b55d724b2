package config

// Default returns the built-in configuration. Callers must treat the result
// as read-only once handed to an analyzer or transformer.
func Default() *Config {
	return &Config{
		Scoring: ScoringConfig{
			Weights: map[string]float64{
				"adult_learning":     0.20,
				"people_first":       0.15,
				"blooms":             0.15,
				"practical":          0.15,
				"rag":                0.15,
				"construct_validity": 0.10,
				"cognitive_depth":    0.10,
			},
			Threshold: 4.8,
		},

		Blooms: map[string][]string{
			"starter": {"remember", "understand"},
			"core":    {"understand", "apply", "analyze"},
			"stretch": {"analyze", "evaluate", "create"},
		},

		// Expected bloom levels per style, used by the blooms criterion.
		StyleBlooms: map[string][]string{
			"single_word":      {"remember"},
			"fill_in_blank":    {"remember"},
			"short_question":   {"remember", "understand"},
			"explain_concept":  {"understand", "analyze"},
			"predict_output":   {"apply"},
			"debug_fix":        {"apply", "analyze"},
			"scenario_task":    {"apply", "create"},
			"compare_contrast": {"analyze", "evaluate"},
			"rewrite":          {"create"},
		},

		ConstructValidity: ConstructValidityConfig{
			StyleBloomMap: map[string][]string{
				"single_word":      {"remember"},
				"fill_in_blank":    {"remember"},
				"short_question":   {"remember", "understand"},
				"explain_concept":  {"understand", "analyze"},
				"predict_output":   {"apply"},
				"debug_fix":        {"apply", "analyze"},
				"scenario_task":    {"apply", "create"},
				"compare_contrast": {"analyze", "evaluate"},
				"rewrite":          {"create"},
			},
		},

		CognitiveDepth: CognitiveDepthConfig{
			SixFacets: map[string]Facet{
				"explanation": {
					Patterns: []string{"why", "explain", "how does", "what causes", "reason"},
					Weight:   1.0,
				},
				"interpretation": {
					Patterns: []string{"what does this mean", "interpret", "significance", "implies"},
					Weight:   0.8,
				},
				"application": {
					Patterns: []string{"apply", "implement", "build", "solve", "use this"},
					Weight:   1.0,
				},
				"perspective": {
					Patterns: []string{"compare", "contrast", "alternative", "trade-off", "another way"},
					Weight:   0.7,
				},
				"empathy": {
					Patterns: []string{"customer", "teammate", "colleague", "their perspective", "for a user"},
					Weight:   0.5,
				},
				"self_knowledge": {
					Patterns: []string{"your approach", "your reasoning", "reflect", "what would you"},
					Weight:   0.5,
				},
			},
		},

		Templates: TemplatesConfig{
			DiverseNames: []string{
				"Priya", "Chen", "Amara", "Ahmed", "Sofia", "Kofi", "Arjun",
				"Diego", "Kwame", "Yuki", "Elena", "Fatima", "Carlos", "Rashid", "Mei",
			},
			WesternNames: []string{"alice", "bob", "john", "jane", "mike"},
			NameReplacements: map[string][]string{
				"alice": {"Priya", "Amara", "Sofia"},
				"bob":   {"Chen", "Kofi", "Ahmed"},
				"john":  {"Arjun", "Diego", "Kwame"},
				"jane":  {"Yuki", "Elena", "Fatima"},
				"mike":  {"Carlos", "Rashid", "Mei"},
			},
			RealisticVariables: map[string][]string{
				"finance": {"price", "total_cost", "revenue", "discount"},
				"users":   {"username", "email", "user_count"},
				"data":    {"scores", "grades", "inventory", "items"},
				"web":     {"request", "response", "status_code"},
			},
			RealWorldContexts: map[string][]string{
				"general": {
					"building a small utility for your team",
					"automating a weekly report",
					"cleaning up a shared script",
				},
				"data_analysis": {
					"analyzing last month's sales figures",
					"summarizing survey responses for a client",
					"tracking student scores across a semester",
				},
				"automation": {
					"automating file backups for a small office",
					"processing a folder of customer invoices",
					"renaming hundreds of photos from an event",
				},
				"web_development": {
					"validating signup form input",
					"formatting product descriptions for a storefront",
					"cleaning user-submitted comments",
				},
			},
			TopicContexts: map[string]string{
				"Data Types":   "data_analysis",
				"Control Flow": "automation",
				"Functions":    "general",
				"Files & I/O":  "automation",
				"Strings":      "web_development",
			},
			Expansions: map[string]string{
				"indentation": "In Python, what syntactic feature determines code block structure, replacing curly braces used in languages like Java?",
				"scope":       "What term describes the region of a program where a variable is accessible?",
				"break":       "What keyword is used to exit a loop early in Python?",
				"continue":    "Which keyword skips the current iteration of a loop and proceeds to the next one?",
				"return":      "What keyword is used to send a value back from a function to its caller?",
				"lambda":      "What keyword creates anonymous functions in Python?",
				"yield":       "Which keyword is used in generator functions to produce values one at a time?",
				"import":      "What keyword is used to include external modules or packages in a Python script?",
				"with":        "Which keyword is used to manage context (like file handling) with automatic cleanup?",
				"class":       "What keyword is used to define a new object type in Python?",
				"recursion":   "What programming technique involves a function calling itself to solve a problem?",
				"iterator":    "What object in Python implements the __iter__() and __next__() methods for sequential access?",
				"keyword":     "What term describes reserved words in Python that have special meaning and cannot be used as identifiers?",
				"symbol":      "What character is used to write single-line comments in Python?",
				"none":        "What is the value in Python that represents the absence of a value or null?",
			},
			TopicKeywords: map[string][]string{
				"Data Types":   {"int", "str", "float", "list", "tuple", "dict", "set", "bool"},
				"Control Flow": {"if", "else", "elif", "for", "while", "break", "continue"},
				"Functions":    {"def", "return", "parameter", "argument", "call"},
				"Operators":    {"arithmetic", "comparison", "logical", "assignment"},
			},
			LanguageTerms: []string{
				"python", "syntax", "code", "programming", "function",
				"variable", "data", "type", "loop", "condition",
			},
			ToolHints: []ToolHint{
				{Trigger: "debugging", Hint: " (Consider using Python's pdb debugger or print statements to trace execution.)"},
				{Trigger: "testing", Hint: " (This is commonly tested using pytest or unittest frameworks.)"},
				{Trigger: "style", Hint: " (Use linters like flake8 or black to check code quality.)"},
			},
			VariableThemes: []VariableTheme{
				{Trigger: "swap", Replacements: map[string]string{"x": "current_price", "y": "new_price"}},
				{Trigger: "list", Replacements: map[string]string{"x": "scores", "y": "grades"}},
				{Trigger: "number", Replacements: map[string]string{"x": "scores", "y": "grades"}},
				{Trigger: "variable", Replacements: map[string]string{"x": "username", "y": "email"}},
			},
			VariableDefaults: map[string]string{
				"x":    "price",
				"y":    "quantity",
				"foo":  "calculate_total",
				"bar":  "get_discount",
				"num":  "score",
				"test": "validate_email",
			},
			StyleBloomDefaults: map[string]string{
				"single_word":      "remember",
				"fill_in_blank":    "remember",
				"short_question":   "understand",
				"explain_concept":  "understand",
				"predict_output":   "apply",
				"debug_fix":        "apply",
				"scenario_task":    "apply",
				"compare_contrast": "analyze",
				"rewrite":          "create",
			},
		},

		RAG: RAGConfig{
			MinKeywords: 5,
			MaxKeywords: 12,
		},

		WordLists: WordListsConfig{
			RealWorld: []string{
				"analyze", "build", "process", "manage", "track", "calculate",
				"customer", "user", "data", "file", "report", "system",
				"inventory", "sales", "revenue", "score", "student",
			},
			Positive: []string{"learn", "understand", "explore", "discover", "fix", "improve"},
			Condescending: []string{"don't you know", "obviously", "simply", "just"},
			// Trailing spaces keep "he " from matching "the".
			Gendered: []string{"he ", "she ", "his ", "her ", "him "},
			Jargon:   []string{"legb", "gil", "monkey patch", "mro"},
			Industry: []string{
				"pep 8", "python 3", "best practice", "convention",
				"api", "json", "csv", "database", "file",
				"testing", "debug", "error", "exception",
			},
			Tools: []string{
				"ide", "debugger", "linter", "pip", "venv", "pytest",
				"git", "terminal", "console", "interpreter",
			},
			Job: []string{
				"project", "application", "script", "program",
				"user", "client", "production", "deployment",
			},
			Workflow: []string{
				"testing", "debugging", "refactoring", "code review",
				"documentation", "version control",
			},
			Starters:  []string{"what", "how", "why", "when", "which", "explain", "describe"},
			Ambiguous: []string{"some", "sometimes", "usually", "often", "may", "might", "could"},
			AssessmentVerbs: []string{
				"explain", "describe", "analyze", "compare", "implement",
				"write", "debug", "fix", "predict", "identify",
			},
			TrickPatterns:     []string{"except", "not true", "incorrect", "false"},
			Recall:            []string{"what is", "define", "list", "name", "state"},
			AbstractVars:      []string{"x", "y", "foo", "bar", "test"},
			CurrentVersion:    "python 3",
			DeprecatedVersion: "python 2",
		},
	}
}
