package graph

// Listener is notified after every structural change to a Graph.
type Listener interface {
	GraphChanged()
}

// ListenerFunc adapts a plain function to the Listener interface.
type ListenerFunc func()

// GraphChanged calls f.
func (f ListenerFunc) GraphChanged() { f() }

// AddListener registers l. Listeners are called in registration order.
func (g *Graph) AddListener(l Listener) {
	g.listeners = append(g.listeners, l)
}

func (g *Graph) notify() {
	for _, l := range g.listeners {
		l.GraphChanged()
	}
}
