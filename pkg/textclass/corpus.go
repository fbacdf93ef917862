package textclass

// Fixed, versioned training corpora bundled with the binary. The classifiers
// are trained from these once at startup; the default label's examples come
// first so score ties resolve toward it.

const (
	// CorpusVersion identifies the bundled corpora revision.
	CorpusVersion = "2024-05"

	DefaultPriority = "medium"
	DefaultCategory = "general"
)

// PriorityCorpus maps phrasing to task priority labels.
var PriorityCorpus = []Example{
	// medium (default)
	{"finish the report sometime this week", "medium"},
	{"schedule a meeting with the team", "medium"},
	{"review the draft when you get to it", "medium"},
	{"prepare slides for the demo", "medium"},
	{"write up the notes from the call", "medium"},
	{"plan the next sprint", "medium"},
	{"follow up on the email thread", "medium"},
	{"update the project board", "medium"},

	// low
	{"someday maybe read that book", "low"},
	{"no rush just whenever you have time", "low"},
	{"low priority cleanup of old files", "low"},
	{"eventually organize the photo album", "low"},
	{"minor nice to have improvement", "low"},
	{"if you get a chance water the plants", "low"},

	// high
	{"important prepare for the board meeting", "high"},
	{"high priority fix before the release", "high"},
	{"make sure this gets done today", "high"},
	{"critical review needed for the contract", "high"},
	{"must finish the tax filing this week", "high"},
	{"important deadline for the grant application", "high"},

	// urgent
	{"urgent respond to the client immediately", "urgent"},
	{"asap the server is down", "urgent"},
	{"emergency call the doctor right now", "urgent"},
	{"drop everything production outage", "urgent"},
	{"urgent asap reply before end of day", "urgent"},
	{"immediately escalate the security incident", "urgent"},
}

// CategoryCorpus maps phrasing to task category labels.
var CategoryCorpus = []Example{
	// general (default)
	{"do the thing we talked about", "general"},
	{"misc errand to run", "general"},
	{"remember to check on that", "general"},
	{"various small chores", "general"},
	{"pick up the package", "general"},
	{"drop off the keys", "general"},
	{"return the borrowed ladder", "general"},
	{"random odds and ends", "general"},

	// work
	{"prepare the quarterly presentation for the client", "work"},
	{"review the pull request before standup", "work"},
	{"send the invoice to the customer", "work"},
	{"sync with the manager about the roadmap", "work"},
	{"deploy the new release to staging", "work"},
	{"write the design document for the project", "work"},

	// personal
	{"call mom for her birthday", "personal"},
	{"plan the weekend trip with friends", "personal"},
	{"book a table for the anniversary dinner", "personal"},
	{"send thank you cards to the family", "personal"},
	{"organize the birthday party", "personal"},

	// health
	{"call dentist to schedule a cleaning", "health"},
	{"doctor appointment for the annual checkup", "health"},
	{"refill the prescription at the pharmacy", "health"},
	{"gym workout session", "health"},
	{"book a physiotherapy appointment", "health"},

	// finance
	{"pay the electricity bill", "finance"},
	{"transfer rent money to the landlord", "finance"},
	{"review the budget and bank statements", "finance"},
	{"file the taxes before the deadline", "finance"},
	{"renew the insurance policy", "finance"},

	// shopping
	{"buy groceries milk bread and eggs", "shopping"},
	{"order new running shoes online", "shopping"},
	{"pick up vegetables from the market", "shopping"},
	{"purchase a gift for the wedding", "shopping"},
	{"shop for a new laptop", "shopping"},

	// home
	{"fix the leaking kitchen faucet", "home"},
	{"mow the lawn and trim the hedges", "home"},
	{"clean the garage this weekend", "home"},
	{"schedule the boiler maintenance", "home"},
	{"repaint the bedroom wall", "home"},
}
