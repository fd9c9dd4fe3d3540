package mail

import "context"

type Address struct {
	Name  string
	Email string
}

type Message struct {
	From     Address
	To       []Address
	ReplyTo  *Address
	Subject  string
	TextBody string
	HTMLBody string
}

type Mailer interface {
	Send(ctx context.Context, msg Message) error
	Name() string
}
