// Package learning carries the built-in training content: courses on
// business-continuity risk, their lessons and quiz questions.
package learning

type CourseSeed struct {
	Name        string
	Description string
	Lessons     []LessonSeed
}

type LessonSeed struct {
	Title     string
	Content   string
	Questions []QuestionSeed
}

type QuestionSeed struct {
	Text        string
	Options     []string
	Correct     string // option letter, A..D
	Explanation string
}

var Courses = []CourseSeed{
	{
		Name: "Continuity disruption risk",
		Description: "What continuity disruption risk is, what counts as a " +
			"continuity threat, which threat types exist and how they are " +
			"assessed. This course is the foundation for managing continuity " +
			"risk in an organization.",
		Lessons: []LessonSeed{
			{
				Title: "What is continuity disruption risk",
				Content: "Continuity disruption risk is the risk that an " +
					"organization loses its ability to keep critical operations " +
					"running at an acceptable level after a disruptive event.\n\n" +
					"A continuity threat (an emergency) is a situation in a " +
					"given area that may interrupt business processes: fire, " +
					"flooding, power loss, infrastructure failure, or loss of " +
					"key personnel.\n\n" +
					"Managing this risk means identifying critical processes, " +
					"understanding which threats can interrupt them, and " +
					"preparing recovery measures in advance.",
				Questions: []QuestionSeed{
					{
						Text: "What does continuity disruption risk describe?",
						Options: []string{
							"The risk of losing the ability to keep critical operations running",
							"The risk of exceeding the annual budget",
							"The risk of hiring unqualified staff",
						},
						Correct:     "A",
						Explanation: "Continuity disruption risk is about sustaining critical operations through disruptive events.",
					},
					{
						Text: "Which of the following is a continuity threat?",
						Options: []string{
							"A marketing campaign underperforming",
							"A fire in the primary data center",
							"A delayed quarterly report",
						},
						Correct:     "B",
						Explanation: "A continuity threat is an emergency capable of interrupting business processes, such as a data-center fire.",
					},
					{
						Text: "What is the first step of managing continuity risk?",
						Options: []string{
							"Buying insurance for all assets",
							"Outsourcing every process",
							"Identifying the critical processes",
						},
						Correct:     "C",
						Explanation: "Recovery planning starts from knowing which processes are critical.",
					},
				},
			},
			{
				Title: "Threat types and their assessment",
				Content: "Threats are commonly grouped by their source: natural " +
					"(floods, earthquakes), technogenic (fires, utility " +
					"failures), social (strikes, pandemics) and informational " +
					"(cyber attacks, data loss).\n\n" +
					"Each threat is assessed by two dimensions: the likelihood " +
					"of occurrence and the severity of impact on the processes " +
					"it can interrupt. The combination places the threat on a " +
					"risk map which drives the order of mitigation work.",
				Questions: []QuestionSeed{
					{
						Text: "Which pair of dimensions is used to assess a threat?",
						Options: []string{
							"Cost and duration",
							"Likelihood and impact severity",
							"Visibility and popularity",
						},
						Correct:     "B",
						Explanation: "Threats are placed on a risk map by likelihood and severity of impact.",
					},
					{
						Text: "A city-wide power outage is an example of which threat type?",
						Options: []string{
							"Technogenic",
							"Social",
							"Informational",
						},
						Correct:     "A",
						Explanation: "Utility failures belong to the technogenic group.",
					},
					{
						Text: "What does the risk map drive?",
						Options: []string{
							"The marketing calendar",
							"Salary reviews",
							"The order of mitigation work",
						},
						Correct:     "C",
						Explanation: "Higher-placed threats are mitigated first.",
					},
				},
			},
		},
	},
	{
		Name: "Process criticality assessment",
		Description: "How to rank business processes by criticality: loss " +
			"categories, downtime cost, and the time objectives used in the " +
			"assessment. Needed to prioritize continuity measures correctly.",
		Lessons: []LessonSeed{
			{
				Title: "Criticality categories and downtime loss",
				Content: "Processes are ranked by the damage their downtime " +
					"causes: financial loss, regulatory penalties, and " +
					"reputational harm. The faster the damage grows, the more " +
					"critical the process.\n\n" +
					"Two time objectives anchor the assessment. RTO (Recovery " +
					"Time Objective) is the target time to restore a process " +
					"after disruption. MTPD (Maximum Tolerable Period of " +
					"Disruption) is the longest outage the organization can " +
					"survive; beyond it the damage becomes unacceptable or " +
					"irreversible. RTO must always be shorter than MTPD.",
				Questions: []QuestionSeed{
					{
						Text: "What does RTO stand for?",
						Options: []string{
							"Real Time Operations",
							"Recovery Time Objective",
							"Risk Tolerance Order",
						},
						Correct:     "B",
						Explanation: "RTO is the target time to restore a process after disruption.",
					},
					{
						Text: "What does exceeding the MTPD mean?",
						Options: []string{
							"The damage becomes unacceptable or irreversible",
							"The process restarts automatically",
							"Nothing, MTPD is informational",
						},
						Correct:     "A",
						Explanation: "MTPD is the longest outage the organization can survive.",
					},
					{
						Text: "How must RTO relate to MTPD?",
						Options: []string{
							"RTO must be longer than MTPD",
							"They must be equal",
							"RTO must be shorter than MTPD",
						},
						Correct:     "C",
						Explanation: "Recovery has to complete before the tolerable period runs out.",
					},
				},
			},
		},
	},
	{
		Name: "Continuity risk evaluation",
		Description: "Evaluating the impact of threats on the objects around " +
			"a process, computing the risk magnitude and rating, and choosing " +
			"response measures. Completes the training cycle with practical " +
			"tools for day-to-day risk management.",
		Lessons: []LessonSeed{
			{
				Title: "Risk magnitude, rating and response",
				Content: "A threat acts on the objects a process depends on: " +
					"premises, equipment, personnel, suppliers and data. The " +
					"risk magnitude combines the threat's likelihood with the " +
					"share of affected objects and the criticality of the " +
					"process.\n\n" +
					"The resulting rating (low, medium, high) selects the " +
					"response: accept and monitor, reduce through preventive " +
					"measures and redundancy, or transfer through insurance " +
					"and outsourcing. High-rated risks always require a " +
					"documented recovery plan.",
				Questions: []QuestionSeed{
					{
						Text: "Which objects of a process can a threat act on?",
						Options: []string{
							"Only the IT systems",
							"Premises, equipment, personnel, suppliers and data",
							"Only the personnel",
						},
						Correct:     "B",
						Explanation: "Impact is assessed across every object the process depends on.",
					},
					{
						Text: "What does a high risk rating always require?",
						Options: []string{
							"A documented recovery plan",
							"Immediate process shutdown",
							"A bigger marketing budget",
						},
						Correct:     "A",
						Explanation: "High-rated risks must have a documented recovery plan.",
					},
					{
						Text: "Transferring risk through insurance is which response type?",
						Options: []string{
							"Acceptance",
							"Reduction",
							"Transfer",
						},
						Correct:     "C",
						Explanation: "Insurance and outsourcing move the risk to a third party.",
					},
				},
			},
		},
	},
}
