package catalog

func likert(id string, s Section, category, text string, scale LikertScale) Question {
	return Question{ID: id, Section: s, Category: category, Text: text, Type: TypeLikert, Likert: scale}
}

func choice(id string, s Section, category, text string, options ...string) Question {
	return Question{ID: id, Section: s, Category: category, Text: text, Type: TypeMultipleChoice, Options: options}
}

func seedQuestions() []Question {
	agree := DefaultLikert()

	return []Question{
		// Psychometric
		likert("psych_1", SectionPsychometric, "interest",
			"I enjoy analyzing workflows and systems to find ways to improve them.", agree),
		likert("psych_2", SectionPsychometric, "interest",
			"I find it satisfying to identify bottlenecks and inefficiencies in processes.", agree),
		likert("psych_3", SectionPsychometric, "interest",
			"I am naturally curious about how organizations operate and could be improved.", agree),
		likert("psych_4", SectionPsychometric, "personality",
			"I prefer structured approaches to problem-solving over creative brainstorming.", agree),
		likert("psych_5", SectionPsychometric, "personality",
			"I pay close attention to details and rarely overlook important information.", agree),
		likert("psych_6", SectionPsychometric, "personality",
			"I am comfortable with change and adapting to new methodologies.", agree),
		likert("psych_7", SectionPsychometric, "cognitive_style",
			"I excel at breaking down complex problems into manageable components.", agree),
		choice("psych_8", SectionPsychometric, "motivation",
			"What primarily motivates you to consider process optimization consulting?",
			"Helping businesses become more efficient and profitable",
			"The intellectual challenge of solving complex operational problems",
			"The opportunity to work with diverse industries and companies",
			"The potential for high income and career advancement",
			"The satisfaction of creating measurable improvements",
		),

		// Technical & aptitude
		choice("tech_1", SectionTechnical, "logical_reasoning",
			"In a manufacturing process, if Step A takes 5 minutes, Step B takes 3 minutes, and Step C takes 7 minutes, and all steps must be completed in sequence, what is the bottleneck?",
			"Step A (5 minutes)",
			"Step B (3 minutes)",
			"Step C (7 minutes)",
			"There is no bottleneck",
			"All steps are equally important",
		),
		choice("tech_2", SectionTechnical, "numerical_reasoning",
			"A process currently produces 100 units per hour with a 15% defect rate. After optimization, it produces 120 units per hour with a 5% defect rate. What is the percentage increase in good units produced per hour?",
			"20%",
			"34%",
			"40%",
			"46%",
			"56%",
		),
		choice("tech_3", SectionTechnical, "process_knowledge",
			"Which of the following is a core principle of Lean methodology?",
			"Maximize inventory to ensure availability",
			"Eliminate waste (muda) in all forms",
			"Focus on individual performance over team results",
			"Prioritize speed over quality",
			"Implement changes without employee input",
		),
		choice("tech_4", SectionTechnical, "process_knowledge",
			`What does the "5S" methodology stand for in Lean?`,
			"Sort, Set in order, Shine, Standardize, Sustain",
			"Speed, Scale, Scope, Structure, Strategy",
			"Start, Study, Solve, Support, Success",
			"System, Standard, Simplify, Streamline, Stabilize",
			"Survey, Structure, Sanitize, Secure, Schedule",
		),
		choice("tech_5", SectionTechnical, "data_interpretation",
			"A process map shows that 40% of customer complaints come from Step 1, 25% from Step 2, 20% from Step 3, and 15% from other steps. Which step should be prioritized for improvement?",
			"Step 1 - highest complaint percentage",
			"Step 2 - good balance of impact and feasibility",
			"Step 3 - easier to fix than Steps 1 and 2",
			"Other steps - they represent multiple opportunities",
			"All steps should be improved simultaneously",
		),
		choice("tech_6", SectionTechnical, "tools_knowledge",
			"Which tool would be most appropriate for documenting a current-state process?",
			"Fishbone diagram",
			"Pareto chart",
			"Process flowchart",
			"Control chart",
			"Scatter plot",
		),

		// WISCAR
		likert("wiscar_will_1", SectionWISCAR, string(DimensionWill),
			"How likely are you to persist with a complex optimization project even when initial results are disappointing?",
			LikertScale{Min: 1, Max: 5, MinLabel: "Very Unlikely", MaxLabel: "Very Likely"}),
		likert("wiscar_will_2", SectionWISCAR, string(DimensionWill),
			"I am willing to invest 6-12 months learning process optimization methodologies before expecting significant income.", agree),
		likert("wiscar_interest_1", SectionWISCAR, string(DimensionInterest),
			"How often do you find yourself thinking about ways to improve everyday processes (at work, home, etc.)?",
			LikertScale{Min: 1, Max: 5, MinLabel: "Never", MaxLabel: "Very Often"}),
		likert("wiscar_interest_2", SectionWISCAR, string(DimensionInterest),
			"I would enjoy spending hours analyzing data to identify process improvements.", agree),
		choice("wiscar_skill_1", SectionWISCAR, string(DimensionSkill),
			"What is your current level of experience with process improvement methodologies?",
			"No formal experience or training",
			"Basic understanding from reading or brief training",
			"Some practical experience in a work setting",
			"Significant experience leading improvement projects",
			"Expert level with certifications (Six Sigma, Lean, etc.)",
		),
		choice("wiscar_skill_2", SectionWISCAR, string(DimensionSkill),
			"How comfortable are you with data analysis tools like Excel, SQL, or specialized software?",
			"Not comfortable - would need extensive training",
			"Basic skills - can perform simple tasks",
			"Intermediate - comfortable with most functions",
			"Advanced - can create complex analyses",
			"Expert - can train others and build sophisticated models",
		),
		likert("wiscar_cognitive_1", SectionWISCAR, string(DimensionCognitive),
			"When faced with a complex system, I can quickly identify the key relationships and dependencies.", agree),
		choice("wiscar_ability_1", SectionWISCAR, string(DimensionAbility),
			"How do you typically respond to constructive feedback about your work?",
			"I sometimes get defensive but try to learn from it",
			"I appreciate it and actively seek ways to improve",
			"I listen politely but rarely change my approach",
			"I get frustrated and prefer to work independently",
			"I eagerly ask for more specific guidance and examples",
		),
		choice("wiscar_realworld_1", SectionWISCAR, string(DimensionRealWorld),
			"Which work environment would you prefer as a process optimization consultant?",
			"Large corporations with established processes",
			"Small to medium businesses needing significant improvements",
			"Manufacturing companies with physical processes",
			"Service organizations with people-centered processes",
			"Mix of different industries and company sizes",
		),
		choice("wiscar_realworld_2", SectionWISCAR, string(DimensionRealWorld),
			"What type of compensation structure would you prefer?",
			"Steady salary with predictable income",
			"Project-based fees with variable income",
			"Combination of base pay and performance bonuses",
			"Equity/profit-sharing in client improvements",
			"Hourly consulting rates",
		),
	}
}

func seedRules() RuleSource {
	return RuleSource{
		"psych_8": {
			"Helping businesses become more efficient and profitable":            5,
			"The intellectual challenge of solving complex operational problems": 4,
			"The satisfaction of creating measurable improvements":               5,
			"The opportunity to work with diverse industries and companies":      3,
			"The potential for high income and career advancement":               2,
		},
		"tech_1": {
			"Step C (7 minutes)":              5,
			"Step A (5 minutes)":              2,
			"Step B (3 minutes)":              1,
			"There is no bottleneck":          0,
			"All steps are equally important": 0,
		},
		// (120*0.95 - 100*0.85) / 85 is the 34% answer.
		"tech_2": {
			"34%": 5,
			"46%": 3,
			"40%": 2,
			"20%": 1,
			"56%": 1,
		},
		"tech_3": {
			"Eliminate waste (muda) in all forms":                5,
			"Focus on individual performance over team results": 1,
			"Prioritize speed over quality":                      1,
			"Maximize inventory to ensure availability":          0,
			"Implement changes without employee input":           0,
		},
		"tech_4": {
			"Sort, Set in order, Shine, Standardize, Sustain":   5,
			"Speed, Scale, Scope, Structure, Strategy":          1,
			"Start, Study, Solve, Support, Success":             1,
			"System, Standard, Simplify, Streamline, Stabilize": 2,
			"Survey, Structure, Sanitize, Secure, Schedule":     1,
		},
		"tech_5": {
			"Step 1 - highest complaint percentage":               5,
			"Step 2 - good balance of impact and feasibility":     3,
			"Step 3 - easier to fix than Steps 1 and 2":           2,
			"Other steps - they represent multiple opportunities": 2,
			"All steps should be improved simultaneously":         1,
		},
		"tech_6": {
			"Process flowchart": 5,
			"Fishbone diagram":  2,
			"Pareto chart":      2,
			"Control chart":     1,
			"Scatter plot":      1,
		},
		"wiscar_skill_1": {
			"Expert level with certifications (Six Sigma, Lean, etc.)": 5,
			"Significant experience leading improvement projects":      4,
			"Some practical experience in a work setting":              3,
			"Basic understanding from reading or brief training":       2,
			"No formal experience or training":                         1,
		},
		"wiscar_skill_2": {
			"Expert - can train others and build sophisticated models": 5,
			"Advanced - can create complex analyses":                   4,
			"Intermediate - comfortable with most functions":           3,
			"Basic skills - can perform simple tasks":                  2,
			"Not comfortable - would need extensive training":          1,
		},
		"wiscar_ability_1": {
			"I eagerly ask for more specific guidance and examples": 5,
			"I appreciate it and actively seek ways to improve":     4,
			"I sometimes get defensive but try to learn from it":    3,
			"I listen politely but rarely change my approach":       2,
			"I get frustrated and prefer to work independently":     1,
		},
		"wiscar_realworld_1": {
			"Mix of different industries and company sizes":               5,
			"Small to medium businesses needing significant improvements": 4,
			"Large corporations with established processes":               3,
			"Manufacturing companies with physical processes":             3,
			"Service organizations with people-centered processes":        3,
		},
		"wiscar_realworld_2": {
			"Project-based fees with variable income":          4,
			"Combination of base pay and performance bonuses": 5,
			"Hourly consulting rates":                          4,
			"Equity/profit-sharing in client improvements":     3,
			"Steady salary with predictable income":            2,
		},
	}
}
