package wizard

// Step names for the four report flows
const (
	StepWhat   = "what"
	StepWhere  = "where"
	StepWhen   = "when"
	StepWho    = "who"
	StepWhy    = "why"
	StepHow    = "how"
	StepForm   = "form"
	StepResult = "result"

	StepInput       = "input"
	StepEditLists   = "edit-lists"
	StepCompetitors = "configure-competitors"
	StepReport      = "report"

	StepValidate = "validate"
)

// NewA3 builds the 6-question 5W1H stepper. The guard gates each answer,
// typically with the validate-input verdict.
func NewA3(guard Guard) *Machine {
	return NewMachine([]string{StepWhat, StepWhere, StepWhen, StepWho, StepWhy, StepHow, StepResult}, guard)
}

// NewVSM builds the single-form flow.
func NewVSM(guard Guard) *Machine {
	return NewMachine([]string{StepForm, StepResult}, guard)
}

// NewQFD builds the four-stage flow with back-navigation between stages.
func NewQFD(guard Guard) *Machine {
	return NewMachine([]string{StepInput, StepEditLists, StepCompetitors, StepReport}, guard)
}

// NewHoshin builds the form -> consistency check -> result flow.
func NewHoshin(guard Guard) *Machine {
	return NewMachine([]string{StepForm, StepValidate, StepResult}, guard)
}
