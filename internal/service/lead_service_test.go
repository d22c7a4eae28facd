package service

import (
	"context"
	"errors"
	"net/url"
	"strings"
	"testing"
	"time"

	"carmarket/internal/models"
	"carmarket/pkg/config"
	"carmarket/pkg/validation"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
)

type fakeLeadStore struct {
	created []*models.Lead
	err     error
}

func (f *fakeLeadStore) Create(_ context.Context, lead *models.Lead) error {
	if f.err != nil {
		return f.err
	}
	f.created = append(f.created, lead)
	return nil
}

const validLead = `{
	"title": "Civic Touring impecável",
	"brand": "Honda",
	"model": "Civic",
	"year": 2019,
	"price": 120000,
	"name": "Maria Souza",
	"email": "maria@example.com",
	"phone": "(19) 99999-0000",
	"notes": "Único dono"
}`

func newTestLeadService(t *testing.T, store *fakeLeadStore) *LeadService {
	svc := NewLeadService(store, config.LeadConfig{WhatsAppNumber: "5519993626264", FeatureFee: "15,00"}, zaptest.NewLogger(t))
	svc.now = func() time.Time { return time.Date(2024, 3, 10, 9, 0, 0, 0, time.UTC) }
	return svc
}

func TestLeadService_Create(t *testing.T) {
	store := &fakeLeadStore{}
	svc := newTestLeadService(t, store)

	resp, err := svc.Create(context.Background(), []byte(validLead))

	require.NoError(t, err)
	require.Len(t, store.created, 1)
	assert.Equal(t, store.created[0].ID.String(), resp.ID)
	assert.Equal(t, "2024-03-10T09:00:00Z", resp.CreatedAt)
	assert.True(t, strings.HasPrefix(resp.WhatsAppLink, "https://wa.me/5519993626264?text="))
	assert.NotContains(t, resp.WhatsAppLink, "+")
	assert.Contains(t, resp.WhatsAppLink, "%20")

	link, err := url.Parse(resp.WhatsAppLink)
	require.NoError(t, err)
	text := link.Query().Get("text")
	for _, want := range []string{
		"Título: Civic Touring impecável",
		"Marca: Honda",
		"Modelo: Civic",
		"Ano: 2019",
		"Preço: R$ 120000",
		"Nome: Maria Souza",
		"Email: maria@example.com",
		"Telefone: (19) 99999-0000",
		"Observações: Único dono",
		"pagamento de R$ 15,00",
	} {
		assert.Contains(t, text, want)
	}
}

func TestLeadService_SchemaViolations(t *testing.T) {
	tests := []struct {
		name  string
		body  string
		field string
	}{
		{"missing phone", `{"title":"t","brand":"b","model":"m","year":2019,"price":1000,"name":"n","email":"a@b.co"}`, "phone"},
		{"bad email", `{"title":"t","brand":"b","model":"m","year":2019,"price":1000,"name":"n","email":"nope","phone":"1999990000"}`, "email"},
		{"year as text", `{"title":"t","brand":"b","model":"m","year":"2019","price":1000,"name":"n","email":"a@b.co","phone":"1999990000"}`, "year"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := &fakeLeadStore{}
			_, err := newTestLeadService(t, store).Create(context.Background(), []byte(tt.body))

			var verr *validation.Error
			require.True(t, errors.As(err, &verr), "got %v", err)
			fields := make([]string, len(verr.Errors))
			for i, e := range verr.Errors {
				fields[i] = e.Field
			}
			assert.Contains(t, fields, tt.field)
			assert.Empty(t, store.created)
		})
	}
}

func TestLeadService_StoreError(t *testing.T) {
	store := &fakeLeadStore{err: errStoreDown}

	_, err := newTestLeadService(t, store).Create(context.Background(), []byte(validLead))

	assert.ErrorIs(t, err, errStoreDown)
}

func TestLeadMessage_OmitsEmptyNotes(t *testing.T) {
	msg := LeadMessage(&models.Lead{Title: "Gol", Price: 25000.5}, "15,00")

	assert.NotContains(t, msg, "Observações")
	assert.Contains(t, msg, "Preço: R$ 25000.50")
}

func TestLeadService_CreateRejectsBlankFields(t *testing.T) {
	store := &fakeLeadStore{}
	svc := newTestLeadService(t, store)

	body := `{
		"title": "   ", "brand": "\t", "model": "\u0000", "year": 2019, "price": 50000,
		"name": "  ", "email": "maria@example.com", "phone": "        "
	}`

	_, err := svc.Create(context.Background(), []byte(body))

	var verr *validation.Error
	require.True(t, errors.As(err, &verr), "got %v", err)
	fields := make([]string, 0, len(verr.Errors))
	for _, e := range verr.Errors {
		fields = append(fields, e.Field)
	}
	assert.ElementsMatch(t, []string{"title", "brand", "model", "name", "phone"}, fields)
	assert.Empty(t, store.created)
}

func TestWhatsAppLink(t *testing.T) {
	link := WhatsAppLink("5511999999999", "Olá mundo & 1+1")

	assert.Equal(t, "https://wa.me/5511999999999?text=Ol%C3%A1%20mundo%20%26%201%2B1", link)
}

func TestCleanText(t *testing.T) {
	tests := []struct {
		name  string
		in    string
		line  string
		notes string
	}{
		{"plain", "Família", "Família", "Família"},
		{"invalid byte", "a\xffb", "ab", "ab"},
		{"padding", "  Gol \n", "Gol", "Gol"},
		{"inner whitespace", "Gol\t  City", "Gol City", "Gol City"},
		{"control char", "Gol\x00City", "GolCity", "GolCity"},
		{"line breaks", "revisado\r\n  pneus novos ", "revisado pneus novos", "revisado\npneus novos"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.line, cleanLine(tt.in))
			assert.Equal(t, tt.notes, cleanNotes(tt.in))
		})
	}
}
