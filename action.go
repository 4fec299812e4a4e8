package enquire

// Action prompts for one of a short, fixed set of action labels, e.g.
// {"Overwrite", "Skip", "Abort"}. It reuses the Select rendering with
// filtering disabled and every action visible at once.
type Action struct {
	Message string
	Actions []string
	Help    string
	// StartingIndex is the action under the cursor on the first render.
	StartingIndex int
	RenderConfig  *RenderConfig
}

// Run executes the prompt on the process terminal and returns the chosen
// action label together with its index in Actions.
func (a *Action) Run() (OptionAnswer, error) {
	if len(a.Actions) == 0 {
		return OptionAnswer{}, configError("action prompt requires at least one action")
	}
	sel := a.toSelect()
	if err := sel.validateConfig(); err != nil {
		return OptionAnswer{}, err
	}
	b, err := newDefaultBackend(a.RenderConfig)
	if err != nil {
		return OptionAnswer{}, err
	}
	defer b.close()
	return sel.runWith(b)
}

func (a *Action) runWith(b *backend) (OptionAnswer, error) {
	if len(a.Actions) == 0 {
		return OptionAnswer{}, configError("action prompt requires at least one action")
	}
	return a.toSelect().runWith(b)
}

func (a *Action) toSelect() *Select {
	pageSize := len(a.Actions)
	if pageSize == 0 {
		pageSize = 1
	}
	return &Select{
		Message:       a.Message,
		Options:       a.Actions,
		Help:          a.helpMessage(),
		PageSize:      pageSize,
		DisableFilter: true,
		StartingIndex: a.StartingIndex,
		RenderConfig:  a.RenderConfig,
	}
}

func (a *Action) helpMessage() string {
	if a.Help != "" {
		return a.Help
	}
	return "↑↓ to move, enter to choose"
}
