package engine

// Command words and user-facing strings, kept in one place so a transport
// can expose them as persistent keyboard labels.
const (
	CmdStart = "/start"
	CmdList  = "/list"
	CmdNew   = "/new"

	LabelList = "📋 My goals"
	LabelNew  = "➕ New goal"
)

const (
	msgHello = "Hi! I track progress on your goals.\n" +
		"Send " + CmdNew + " to create a goal or " + CmdList + " to see them."
	msgHint    = "I didn't catch that. Send " + CmdNew + " or " + CmdList + "."
	msgNoGoals = "No goals yet. Send " + CmdNew + " to create one."

	msgAskName       = "What should the goal be called?"
	msgNameError     = "The name can't be empty. What should the goal be called?"
	msgAskTarget     = "How many units does it take to finish?"
	msgTargetError   = "I need a whole number, zero or more. How many units?"
	msgAskDeadline   = "When is the deadline? (YYYY-MM-DD)\nSuggestion: %s"
	msgDeadlineError = "I couldn't read that date. Please use YYYY-MM-DD."
	msgAskPriority   = "How important is it? (0-100)"
	msgPriorityError = "Priority must be a whole number from 0 to 100."
	msgCreated       = "Created! %s, due %s, priority %d."

	msgAskCount   = "Send the new completed count (0-%d)."
	msgCountError = "That doesn't work — send a whole number from 0 to %d."

	msgCounted     = "Counted!"
	msgAlreadyZero = "Already at zero."
	msgAlreadyDone = "Already complete — congratulations!"

	msgEnsure        = "Are you sure?"
	msgConfirmDelete = "Delete this goal?\n\n%s"
	msgDeleted       = "Deleted: %s"
	msgKept          = "Kept: %s"

	msgGone      = "That goal no longer exists."
	msgBadAction = "This button no longer works here."
	msgStoreFail = "Something went wrong on my side — please try again."
)
