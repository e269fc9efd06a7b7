// internal/event/types.go
package event

const (
	RedrawRequested EventType = "RedrawRequested" // виджет изменил стиль и просит перерисовку
	SpeechReady     EventType = "SpeechReady"     // движок речи готов, Data — bool
)
