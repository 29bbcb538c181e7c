package browser

// NavigationState tracks the current page plus back/forward stacks.
//
// The top of each stack is the last element of its slice. A new visit always
// discards the forward stack.
type NavigationState struct {
	current string
	back    []string
	forward []string
}

// NewNavigationState creates an empty navigation state with no page loaded.
func NewNavigationState() *NavigationState {
	return &NavigationState{}
}

// Visit makes url the current page. The previous page, if any, is pushed on
// the back stack and the forward stack is cleared. Visiting the same URL twice
// still pushes a duplicate. An empty url leaves no page loaded.
func (n *NavigationState) Visit(url string) {
	if n.current != "" {
		n.back = append(n.back, n.current)
	}
	n.forward = nil
	n.current = url
}

// Back moves one step back. Returns the new current page, or ErrNoBack with no
// state change when the back stack is empty.
func (n *NavigationState) Back() (string, error) {
	if len(n.back) == 0 {
		return "", ErrNoBack
	}
	n.forward = append(n.forward, n.current)
	n.current, n.back = pop(n.back)
	return n.current, nil
}

// Forward moves one step forward. Returns the new current page, or
// ErrNoForward with no state change when the forward stack is empty.
func (n *NavigationState) Forward() (string, error) {
	if len(n.forward) == 0 {
		return "", ErrNoForward
	}
	n.back = append(n.back, n.current)
	n.current, n.forward = pop(n.forward)
	return n.current, nil
}

// Current returns the current page and whether one is loaded.
func (n *NavigationState) Current() (string, bool) {
	return n.current, n.current != ""
}

// CanGoBack reports whether there is a previous page.
func (n *NavigationState) CanGoBack() bool {
	return len(n.back) > 0
}

// CanGoForward reports whether there is an undone page to replay.
func (n *NavigationState) CanGoForward() bool {
	return len(n.forward) > 0
}

// BackStack returns a copy of the back stack, most recently left page first.
func (n *NavigationState) BackStack() []string {
	return reversed(n.back)
}

// ForwardStack returns a copy of the forward stack, most recently undone page first.
func (n *NavigationState) ForwardStack() []string {
	return reversed(n.forward)
}

func pop(stack []string) (string, []string) {
	last := len(stack) - 1
	top := stack[last]
	stack[last] = ""
	return top, stack[:last]
}

func reversed(stack []string) []string {
	out := make([]string, len(stack))
	for i, s := range stack {
		out[len(stack)-1-i] = s
	}
	return out
}
