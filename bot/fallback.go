package bot

import "strings"

// fallbackAnswer gives a canned reply on core terminology when the model
// backend is unreachable, keyed on simple substring rules.
func fallbackAnswer(question string) string {
	q := strings.ToLower(question)

	switch {
	case strings.Contains(q, "continuity risk") || strings.Contains(q, "disruption risk"):
		return "Business continuity disruption risk is the risk that an organization " +
			"loses its ability to keep critically important processes and operations " +
			"running when a continuity threat materializes.\n\n" +
			"It is a subtype of operational risk and is managed through the classic " +
			"cycle: identification, assessment, response, monitoring."

	case strings.Contains(q, "continuity threat") || strings.Contains(q, "emergency"):
		return "A continuity threat (emergency situation) is a condition caused by an " +
			"accident, a hazardous natural event, a catastrophe, the spread of disease " +
			"or another disaster.\n\n" +
			"Threats are grouped by type: technogenic, natural, geopolitical, social, " +
			"biological-social and economic."

	case strings.Contains(q, "rto") || strings.Contains(q, "recovery time"):
		return "RTO (Recovery Time Objective) is the period of time set for resuming a " +
			"process after it has been interrupted by a continuity threat."

	case strings.Contains(q, "mtpd") || strings.Contains(q, "maximum tolerable"):
		return "MTPD (Maximum Tolerable Period of Disruption) is the period of time " +
			"after which the adverse consequences of an outage become unacceptable."

	case strings.Contains(q, "risk object"):
		return "The object of continuity disruption risk is a process categorized as " +
			"critically important, together with its attributes: RTO, MTPD, automated " +
			"systems, offices, personnel, response procedures, outsourcing and the " +
			"rest of the process environment."

	case strings.Contains(q, "threat scenario"):
		return "A continuity threat scenario is a sequence of events that can lead to " +
			"the risk materializing. Scenarios are built from threat types and " +
			"describe the threat, its possible consequences and its impact on " +
			"critically important processes."

	case strings.Contains(q, "risk rating"):
		return "A risk rating is a characteristic of the risk that sets the priority " +
			"of mitigation measures. The rating is derived from matrices combining " +
			"the impact of the risk with the likelihood of the threat."

	default:
		return "Thanks for your question about business continuity risk.\n\n" +
			"I cannot give a detailed answer right now. In the meantime:\n" +
			"1. Review the lesson material\n" +
			"2. Study the core terms: continuity disruption risk, continuity threats, RTO, MTPD\n" +
			"3. Take the quiz to check your understanding\n\n" +
			"If you have a more specific question, try rephrasing it."
	}
}
