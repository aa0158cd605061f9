package cli

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/intramail/intramail/internal/client/api"
)

func formatMessage(m *api.Message) string {
	return fmt.Sprintf("%s  %s  from: %s  to: %s  %s", m.ID, m.CreatedAt, m.From, m.To, m.Subject)
}

func (a *App) Inbox(ctx context.Context) error {
	msgs, err := a.mailService.Inbox(ctx)
	if err != nil {
		log.Printf("error: %v", err)
		return err
	}

	if len(msgs) == 0 {
		printlnFn("No messages")
		return nil
	}

	for _, m := range msgs {
		printlnFn(formatMessage(m))
	}
	return nil
}

// Show prints one message in full. Messages are fetched through the same
// list endpoint the inbox uses and matched by id.
func (a *App) Show(ctx context.Context) error {
	id, err := GetSimpleText(a.reader, "Enter message id", os.Stdout)
	if err != nil {
		log.Printf("error: %v", err)
		return err
	}

	msgs, err := a.mailService.Inbox(ctx)
	if err != nil {
		log.Printf("error: %v", err)
		return err
	}

	for _, m := range msgs {
		if m.ID == id {
			printlnFn(fmt.Sprintf("From: %s\nTo: %s\nDate: %s\nSubject: %s\n\n%s",
				m.From, m.To, m.CreatedAt, m.Subject, m.Body))
			return nil
		}
	}

	printlnFn("Message not found:", id)
	return nil
}

// Compose prompts for a new message and either sends it or saves it as a
// local draft.
func (a *App) Compose(ctx context.Context) error {

	to, err := GetSimpleText(a.reader, "To (email)", os.Stdout)
	if err != nil {
		log.Printf("error: %v", err)
		return err
	}

	subject, err := GetSimpleText(a.reader, "Subject", os.Stdout)
	if err != nil {
		log.Printf("error: %v", err)
		return err
	}

	body, err := GetMultiline(a.reader, "Body", os.Stdout)
	if err != nil {
		log.Printf("error: %v", err)
		return err
	}

	action, err := GetSimpleText(a.reader, "(s)end now or save as (d)raft?", os.Stdout)
	if err != nil {
		log.Printf("error: %v", err)
		return err
	}

	if action == "d" || action == "draft" {
		return a.saveDraft(ctx, to, subject, body)
	}

	msg, err := a.mailService.Send(ctx, to, subject, body)
	if err != nil {
		log.Printf("Send unsuccessful: %s", err.Error())
		return err
	}

	log.Printf("Sent %s", msg.ID)
	return nil
}
