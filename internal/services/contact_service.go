package services

import (
	"context"

	"safesteps/internal/capability"
	"safesteps/internal/contacts"
	"safesteps/internal/models/response_models"
)

type ContactServiceInterface interface {
	Directory(ctx context.Context) *response_models.DirectoryResponse
	Call(ctx context.Context, client capability.Client, name, number string) *response_models.ActionResponse
	Share(ctx context.Context, client capability.Client, pageURL string) *response_models.ActionResponse
	Export(ctx context.Context) (filename string, body string)
}

type ContactService struct {
	contacts  []contacts.Contact
	quickTips []string
}

func NewContactService(catalogs *Catalogs, quickTips []string) ContactServiceInterface {
	return &ContactService{contacts: catalogs.Contacts, quickTips: quickTips}
}

func (s *ContactService) Directory(ctx context.Context) *response_models.DirectoryResponse {
	resp := &response_models.DirectoryResponse{
		Hotline:   toContactView(contacts.Hotline),
		Contacts:  make([]response_models.ContactView, 0, len(s.contacts)),
		QuickTips: append([]string(nil), s.quickTips...),
	}
	for _, c := range s.contacts {
		resp.Contacts = append(resp.Contacts, toContactView(c))
	}
	return resp
}

func (s *ContactService) Call(ctx context.Context, client capability.Client, name, number string) *response_models.ActionResponse {
	return toActionResponse(contacts.InitiateCall(client, name, number))
}

func (s *ContactService) Share(ctx context.Context, client capability.Client, pageURL string) *response_models.ActionResponse {
	return toActionResponse(contacts.SharePage(client, pageURL))
}

func (s *ContactService) Export(ctx context.Context) (string, string) {
	return contacts.ExportFilename, contacts.ExportText(s.contacts)
}

func toContactView(c contacts.Contact) response_models.ContactView {
	return response_models.ContactView{
		ID:          c.ID,
		Name:        c.Name,
		Number:      c.Number,
		Description: c.Description,
		Type:        string(c.Kind),
		Available:   c.Available,
	}
}

func toActionResponse(a contacts.Action) *response_models.ActionResponse {
	return &response_models.ActionResponse{
		Kind:   string(a.Kind),
		URI:    a.URI,
		Text:   a.Text,
		Title:  a.Title,
		URL:    a.URL,
		Notice: a.Notice,
	}
}
