package core

// Event is a discrete UI request consumed by the session state machine
type Event uint8

const (
	EventNone Event = iota
	EventStart
	EventPause
	EventResume
	EventRestart
	EventOpenSettings
	EventCloseSettings
	EventOpenAchievements
	EventClose
	eventCount
)

var eventNames = [eventCount]string{
	EventNone:             "None",
	EventStart:            "Start",
	EventPause:            "Pause",
	EventResume:           "Resume",
	EventRestart:          "Restart",
	EventOpenSettings:     "OpenSettings",
	EventCloseSettings:    "CloseSettings",
	EventOpenAchievements: "OpenAchievements",
	EventClose:            "Close",
}

func (e Event) String() string {
	if e < eventCount {
		return eventNames[e]
	}
	return "Unknown"
}
