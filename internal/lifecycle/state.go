package lifecycle

type State int

const (
	Uninitialized State = iota
	WindowReady
	GraphicsReady
	Running
	ShutDown
)

var stateNames = map[State]string{
	Uninitialized: "Uninitialized",
	WindowReady:   "WindowReady",
	GraphicsReady: "GraphicsReady",
	Running:       "Running",
	ShutDown:      "ShutDown",
}

func (s State) String() string {
	name, ok := stateNames[s]
	if !ok {
		return "Unknown"
	}
	return name
}
