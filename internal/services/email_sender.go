package services

// EmailSender delivers one fully-built message. Implementations must be
// stateless per call; the message value is constructed fresh for every send.
type EmailSender interface {
	Send(to string, subject string, body string) error
}
