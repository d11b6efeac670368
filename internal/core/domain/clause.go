package domain

// Clause is an optional entry from the clause library.
type Clause struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Body        string `json:"body"`
	Description string `json:"description"`
}

var clauseLibrary = []Clause{
	{
		ID:          "demurrage",
		Title:       "Demurrage",
		Description: "Rate and time bar for demurrage claims",
		Body: "Charterers shall pay demurrage per running hour and pro rata for a part thereof " +
			"at the rate specified in Part I for all time that loading and discharging exceed the " +
			"allowed laytime. Owners shall submit demurrage claims within 90 days of completion of discharge.",
	},
	{
		ID:          "force-majeure",
		Title:       "Force Majeure",
		Description: "Excuses performance for events beyond the parties' control",
		Body: "Neither party shall be liable for any loss, damage or delay caused by act of God, war, " +
			"epidemic, pandemic, strikes, port closure or any other cause beyond its reasonable control, " +
			"provided written notice is given within 48 hours of the event.",
	},
	{
		ID:          "sanctions",
		Title:       "Sanctions",
		Description: "Right to refuse orders that expose either party to sanctions",
		Body: "Owners shall not be obliged to comply with any orders which would expose the vessel, " +
			"Owners or their insurers to any sanction or prohibition imposed by the United Nations, " +
			"the European Union, the United Kingdom or the United States of America.",
	},
	{
		ID:          "ice",
		Title:       "Ice",
		Description: "Vessel not obliged to force ice",
		Body: "The vessel shall not be obliged to force ice or to follow icebreakers. If on arrival the " +
			"nominated port is inaccessible by reason of ice, Charterers shall nominate an alternative ice-free port.",
	},
	{
		ID:          "war-risks",
		Title:       "War Risks",
		Description: "Deviation and additional premium in war risk areas",
		Body: "If any port of loading or discharge becomes dangerous by reason of war, hostilities or " +
			"piracy, Owners may decline to proceed. Additional war risk insurance premia shall be for Charterers' account.",
	},
	{
		ID:          "pollution",
		Title:       "Pollution Liability",
		Description: "Owners' participation in the TOVALOP pollution scheme",
		Body: "Owners warrant that the vessel is a tanker owned by a Participating Owner in TOVALOP and will " +
			"so remain during the currency of this Charter.",
	},
}

// ClauseLibrary returns the clause library in library order.
func ClauseLibrary() []Clause {
	out := make([]Clause, len(clauseLibrary))
	copy(out, clauseLibrary)
	return out
}
