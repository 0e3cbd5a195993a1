package ui

import (
	"github.com/derailed/tview"
)

// Pages represents a stack of views.
type Pages struct {
	*tview.Pages
	*Stack
}

// NewPages returns a new pages manager
func NewPages() *Pages {
	p := Pages{
		Pages: tview.NewPages(),
		Stack: NewStack(),
	}
	p.Stack.AddListener(&p)

	return &p
}

// Show pushes a component and makes it the visible page.
func (p *Pages) Show(c Component) {
	p.Push(c)
}

// Current returns the current page name
func (p *Pages) Current() string {
	if top := p.Top(); top != nil {
		return top.Name()
	}
	return ""
}

// CurrentPage returns the current page component
func (p *Pages) CurrentPage() Component {
	return p.Top()
}

// StackSize returns the stack depth
func (p *Pages) StackSize() int {
	return p.Len()
}

// ClearStack pops every page.
func (p *Pages) ClearStack() {
	for !p.Empty() {
		p.Pop()
	}
}

// ShowModal layers a modal over the current page.
func (p *Pages) ShowModal(name string, m tview.Primitive) {
	p.AddPage(name, m, true, true)
}

// DismissModal removes a modal.
func (p *Pages) DismissModal(name string) {
	p.RemovePage(name)
	if top := p.Top(); top != nil {
		p.SwitchToPage(pageID(top))
	}
}

func pageID(c Component) string {
	return c.Name()
}

// StackPushed notifies a new component was pushed.
func (p *Pages) StackPushed(c Component) {
	p.AddPage(pageID(c), c, true, true)
	p.SwitchToPage(pageID(c))
}

// StackPopped notifies a component was removed.
func (p *Pages) StackPopped(o, top Component) {
	p.RemovePage(pageID(o))
	if top != nil {
		p.SwitchToPage(pageID(top))
	}
}

// StackTop notifies the top component.
func (p *Pages) StackTop(top Component) {
	if top != nil {
		p.SwitchToPage(pageID(top))
	}
}
