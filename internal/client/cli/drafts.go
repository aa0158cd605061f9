package cli

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/intramail/intramail/internal/client/models"
)

func (a *App) saveDraft(ctx context.Context, to, subject, body string) error {
	draft, err := a.mailService.SaveDraft(ctx, &models.Draft{To: to, Subject: subject, Body: body})
	if err != nil {
		log.Printf("error: %v", err)
		return err
	}
	log.Printf("Saved draft %s", draft.ID)
	return nil
}

func (a *App) Drafts(ctx context.Context) error {
	list, err := a.mailService.ListDrafts(ctx)
	if err != nil {
		log.Printf("error: %v", err)
		return err
	}

	if len(list) == 0 {
		printlnFn("No drafts")
		return nil
	}

	for _, d := range list {
		printlnFn(fmt.Sprintf("%s  %s  to: %s  %s",
			d.ID, d.UpdatedAt.Format("2006-01-02 15:04"), d.To, d.Subject))
	}
	return nil
}

func (a *App) SendDraft(ctx context.Context) error {
	id, err := GetSimpleText(a.reader, "Enter draft id", os.Stdout)
	if err != nil {
		log.Printf("error: %v", err)
		return err
	}

	msg, err := a.mailService.SendDraft(ctx, id)
	if err != nil {
		log.Printf("Send unsuccessful: %s", err.Error())
		return err
	}

	log.Printf("Sent %s", msg.ID)
	return nil
}

func (a *App) DeleteDraft(ctx context.Context) error {
	id, err := GetSimpleText(a.reader, "Enter draft id", os.Stdout)
	if err != nil {
		log.Printf("error: %v", err)
		return err
	}

	if err := a.mailService.DeleteDraft(ctx, id); err != nil {
		log.Printf("error: %v", err)
		return err
	}

	log.Printf("Deleted draft %s", id)
	return nil
}
