package adminclient

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strings"
	"testing"
	"time"

	"planora/internal/dto"
	"planora/internal/model"
	"planora/pkg/routes"
)

type notifyRecorder struct {
	successes []string
	errors    []string
}

func (n *notifyRecorder) Success(msg string) { n.successes = append(n.successes, msg) }
func (n *notifyRecorder) Error(msg string)   { n.errors = append(n.errors, msg) }

type navRecorder struct {
	paths []string
}

func (n *navRecorder) NavigateTo(path string) { n.paths = append(n.paths, path) }

type fakeUploader struct {
	mediaID string
	err     error
	calls   int
}

func (u *fakeUploader) Upload(ctx context.Context, folder, fileName string, body io.Reader, size int64, progress func(int)) (string, error) {
	u.calls++
	if u.err != nil {
		return "", u.err
	}
	return u.mediaID, nil
}

// payloadServer captures the JSON body of every mutation request.
type payloadServer struct {
	hits     int
	payloads []map[string]any
}

func (s *payloadServer) handler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		s.hits++
		if r.Body != nil {
			var p map[string]any
			if err := json.NewDecoder(r.Body).Decode(&p); err == nil {
				s.payloads = append(s.payloads, p)
			}
		}
		writeOK(w, nil)
	})
}

func legalDetails() *dto.CustomerDetails {
	return &dto.CustomerDetails{
		ID:                          4,
		Type:                        model.CustomerLegal,
		Name:                        "Acme SARL",
		CompanyIdentificationNumber: "123456789",
		Email:                       "contact@acme.fr",
		MediaID:                     "media-old",
		CreatedAt:                   time.Now(),
	}
}

func TestLegalDetailsFormRoundTrip(t *testing.T) {
	d := &dto.CustomerDetails{
		ID:                          4,
		Type:                        model.CustomerLegal,
		Name:                        "Acme SARL",
		CompanyIdentificationNumber: "12345678901234",
		ContactFirstName:            "Paul",
		ContactLastName:             "Lefèvre",
		ContactEmail:                "paul@acme.fr",
		Address:                     "12 rue de la Paix, Paris",
		Email:                       "contact@acme.fr",
		PhoneNumber:                 "+33 1 23 45 67 89",
		MediaID:                     "media-logo",
	}

	form := CustomerFormFromDetails(d)

	if form.Type != d.Type || form.Name != d.Name ||
		form.CompanyIdentificationNumber != d.CompanyIdentificationNumber ||
		form.ContactFirstName != d.ContactFirstName ||
		form.ContactLastName != d.ContactLastName ||
		form.ContactEmail != d.ContactEmail ||
		form.Address != d.Address || form.Email != d.Email ||
		form.PhoneNumber != d.PhoneNumber || form.MediaID != d.MediaID {
		t.Errorf("form lost fields: %+v", form)
	}

	// an untouched edit submits an empty change set
	f := NewCustomerEditForm(d, &fakeUploader{}, nil, &notifyRecorder{}, &navRecorder{})
	if p := f.buildUpdatePayload(); len(p) != 0 {
		t.Errorf("untouched form produced payload %v", p)
	}
}

func TestLegalCustomerWithoutLogoRejectedClientSide(t *testing.T) {
	srv := &payloadServer{}
	upl := &fakeUploader{mediaID: "unused"}
	notify := &notifyRecorder{}
	f := NewCustomerCreateForm(upl, NewCustomerActions(newTestClient(t, srv.handler()), nil), notify, &navRecorder{})

	f.SetType(model.CustomerLegal)
	f.Form.Name = "Acme SARL"
	f.Form.Email = "contact@acme.fr"

	if f.Submit(context.Background()) {
		t.Fatal("submit succeeded without a logo")
	}
	if len(notify.errors) != 1 || notify.errors[0] != "Veuillez uploader le logo de l'entreprise" {
		t.Errorf("errors = %v", notify.errors)
	}
	if srv.hits != 0 {
		t.Error("create action was called despite the missing logo")
	}
	if upl.calls != 0 {
		t.Error("uploader was called despite the missing logo")
	}
}

func TestPhysicalEditOmitsImageWhenNotReuploaded(t *testing.T) {
	srv := &payloadServer{}
	details := &dto.CustomerDetails{
		ID:          9,
		Type:        model.CustomerPhysical,
		FirstName:   "Marie",
		LastName:    "Durand",
		Email:       "marie@exemple.fr",
		PhoneNumber: "0600000000",
		MediaID:     "media-old",
	}
	f := NewCustomerEditForm(details, &fakeUploader{}, NewCustomerActions(newTestClient(t, srv.handler()), nil), &notifyRecorder{}, &navRecorder{})

	f.Form.PhoneNumber = "0611111111"

	if !f.Submit(context.Background()) {
		t.Fatal("submit failed")
	}
	if len(srv.payloads) != 1 {
		t.Fatalf("payloads = %d", len(srv.payloads))
	}
	p := srv.payloads[0]
	if p["phoneNumber"] != "0611111111" {
		t.Errorf("phoneNumber = %v", p["phoneNumber"])
	}
	// not null, not the old value: the key must be absent entirely
	if _, ok := p["mediaId"]; ok {
		t.Error("payload carries mediaId without a new upload")
	}
	if _, ok := p["firstName"]; ok {
		t.Error("payload carries an unchanged field")
	}
}

func TestLegalCreateUploadsLogoBeforePayload(t *testing.T) {
	srv := &payloadServer{}
	upl := &fakeUploader{mediaID: "media-fresh"}
	nav := &navRecorder{}
	notify := &notifyRecorder{}
	f := NewCustomerCreateForm(upl, NewCustomerActions(newTestClient(t, srv.handler()), nil), notify, nav)

	f.SetType(model.CustomerLegal)
	f.Form.Name = "Acme SARL"
	f.Form.CompanyIdentificationNumber = "123456789"
	f.Form.Email = "contact@acme.fr"
	f.AttachFile("logo.png", strings.NewReader("png-bytes"), 9)

	if !f.Submit(context.Background()) {
		t.Fatalf("submit failed: %v", notify.errors)
	}
	if upl.calls != 1 {
		t.Errorf("uploader calls = %d", upl.calls)
	}
	if srv.payloads[0]["mediaId"] != "media-fresh" {
		t.Errorf("payload mediaId = %v", srv.payloads[0]["mediaId"])
	}
	if len(nav.paths) != 1 || nav.paths[0] != routes.AdminCustomers {
		t.Errorf("navigated to %v", nav.paths)
	}
	if len(notify.successes) != 1 {
		t.Errorf("successes = %v", notify.successes)
	}
}

func TestUploadFailureAbortsBeforeAction(t *testing.T) {
	srv := &payloadServer{}
	upl := &fakeUploader{err: errors.New("connexion perdue")}
	notify := &notifyRecorder{}
	f := NewCustomerCreateForm(upl, NewCustomerActions(newTestClient(t, srv.handler()), nil), notify, &navRecorder{})

	f.Form.FirstName = "Marie"
	f.Form.LastName = "Durand"
	f.Form.Email = "marie@exemple.fr"
	f.AttachFile("photo.jpg", strings.NewReader("jpg"), 3)

	if f.Submit(context.Background()) {
		t.Fatal("submit succeeded despite upload failure")
	}
	if srv.hits != 0 {
		t.Error("action was called after a failed upload")
	}
	if len(notify.errors) != 1 || !strings.Contains(notify.errors[0], "connexion perdue") {
		t.Errorf("errors = %v", notify.errors)
	}
}

func TestSetTypeResetsVariantFields(t *testing.T) {
	f := NewCustomerCreateForm(&fakeUploader{}, nil, &notifyRecorder{}, &navRecorder{})
	f.Form.FirstName = "Marie"
	f.Form.Email = "marie@exemple.fr"
	f.Form.MediaID = "media-uploaded"
	f.AttachFile("photo.jpg", strings.NewReader("jpg"), 3)

	f.SetType(model.CustomerLegal)

	if f.Form.Type != model.CustomerLegal {
		t.Errorf("type = %s", f.Form.Type)
	}
	if f.Form.FirstName != "" || f.Form.Email != "" {
		t.Error("variant switch kept old field values")
	}
	if f.Form.MediaID != "" {
		t.Error("variant switch kept the uploaded media reference")
	}
	if f.pending != nil {
		t.Error("variant switch kept the pending file")
	}
}

func TestSetTypeIsNoOpInEditMode(t *testing.T) {
	f := NewCustomerEditForm(legalDetails(), &fakeUploader{}, nil, &notifyRecorder{}, &navRecorder{})

	f.SetType(model.CustomerPhysical)

	if f.Form.Type != model.CustomerLegal {
		t.Error("type changed in edit mode")
	}
	if f.Form.Name != "Acme SARL" {
		t.Error("fields reset in edit mode")
	}
}

func TestActionFailureKeepsFormPopulated(t *testing.T) {
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeError(w, http.StatusBadRequest, dto.FieldIncorrect, "Adresse e-mail déjà utilisée")
	}))
	nav := &navRecorder{}
	notify := &notifyRecorder{}
	f := NewCustomerCreateForm(&fakeUploader{}, NewCustomerActions(c, nil), notify, nav)
	f.Form.FirstName = "Marie"
	f.Form.LastName = "Durand"
	f.Form.Email = "marie@exemple.fr"

	if f.Submit(context.Background()) {
		t.Fatal("submit succeeded")
	}
	if len(notify.errors) != 1 || notify.errors[0] != "Adresse e-mail déjà utilisée" {
		t.Errorf("errors = %v", notify.errors)
	}
	if len(nav.paths) != 0 {
		t.Error("navigation happened on failure")
	}
	if f.Form.FirstName != "Marie" {
		t.Error("form was cleared on failure")
	}
}
