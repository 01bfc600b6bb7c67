package model

// MessageKind tags what a fetch Message carries
type MessageKind int

const (
	// MessageData carries one Article
	MessageData MessageKind = iota
	// MessageDone marks the end of a successful fetch
	MessageDone
	// MessageFailed carries the error that ended the fetch
	MessageFailed
)

// String returns a readable name for the kind
func (k MessageKind) String() string {
	switch k {
	case MessageData:
		return "Data"
	case MessageDone:
		return "Done"
	case MessageFailed:
		return "Failed"
	default:
		return "Unknown"
	}
}

// Message is what the fetch worker sends to the UI goroutine. Exactly one
// terminal message (Done or Failed) ends every fetch.
type Message struct {
	Kind    MessageKind
	Article Article
	Count   int   // number of articles delivered, set on Done
	Err     error // set on Failed
}

// DataMessage wraps one article
func DataMessage(a Article) Message {
	return Message{Kind: MessageData, Article: a}
}

// DoneMessage reports a completed fetch of count articles
func DoneMessage(count int) Message {
	return Message{Kind: MessageDone, Count: count}
}

// FailedMessage reports a fetch that ended with err
func FailedMessage(err error) Message {
	return Message{Kind: MessageFailed, Err: err}
}

// IsTerminal returns true for Done and Failed messages
func (m Message) IsTerminal() bool {
	return m.Kind == MessageDone || m.Kind == MessageFailed
}
