package adminclient

import (
	"context"
	"io"

	"planora/internal/dto"
	"planora/internal/model"
	"planora/pkg/routes"
	"planora/pkg/validator"
)

const msgLegalLogoRequired = "Veuillez uploader le logo de l'entreprise"

type FormMode int

const (
	ModeCreate FormMode = iota
	ModeEdit
)

// PendingFile is a file the user attached but that has not been
// uploaded yet. Upload happens inside Submit, before the payload is
// built, so a failed upload never produces a half-written record.
type PendingFile struct {
	Name string
	Body io.Reader
	Size int64
}

// CustomerForm is the bound form state for both customer variants. The
// variant fields coexist in one struct; which ones are meaningful is
// decided by Type, the same way the wire contract works.
type CustomerForm struct {
	Type model.CustomerType `json:"type" validate:"required"`

	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`

	Name                        string `json:"name"`
	CompanyIdentificationNumber string `json:"companyIdentificationNumber" validate:"omitempty,companyid"`
	ContactFirstName            string `json:"contactFirstName"`
	ContactLastName             string `json:"contactLastName"`
	ContactEmail                string `json:"contactEmail" validate:"omitempty,email"`

	Address     string `json:"address"`
	Email       string `json:"email" validate:"required,email"`
	PhoneNumber string `json:"phoneNumber" validate:"omitempty,phone"`
	MediaID     string `json:"mediaId"`
}

// CustomerFormFromDetails maps a detail record into form state for
// edit mode.
func CustomerFormFromDetails(d *dto.CustomerDetails) CustomerForm {
	return CustomerForm{
		Type:                        d.Type,
		FirstName:                   d.FirstName,
		LastName:                    d.LastName,
		Name:                        d.Name,
		CompanyIdentificationNumber: d.CompanyIdentificationNumber,
		ContactFirstName:            d.ContactFirstName,
		ContactLastName:             d.ContactLastName,
		ContactEmail:                d.ContactEmail,
		Address:                     d.Address,
		Email:                       d.Email,
		PhoneNumber:                 d.PhoneNumber,
		MediaID:                     d.MediaID,
	}
}

// CustomerFormController drives the create/edit customer form: schema
// validation, the upload-before-payload step, changed-field payload
// construction and the post-submit route change.
type CustomerFormController struct {
	mode    FormMode
	id      int64
	Form    CustomerForm
	initial CustomerForm

	pending       *PendingFile
	imageUploaded bool

	media   MediaUploader
	actions *CustomerActions
	notify  Notifier
	nav     Navigator
}

func NewCustomerCreateForm(media MediaUploader, actions *CustomerActions, notify Notifier, nav Navigator) *CustomerFormController {
	return &CustomerFormController{
		mode:    ModeCreate,
		Form:    CustomerForm{Type: model.CustomerPhysical},
		media:   media,
		actions: actions,
		notify:  notify,
		nav:     nav,
	}
}

func NewCustomerEditForm(details *dto.CustomerDetails, media MediaUploader, actions *CustomerActions, notify Notifier, nav Navigator) *CustomerFormController {
	form := CustomerFormFromDetails(details)
	return &CustomerFormController{
		mode:    ModeEdit,
		id:      details.ID,
		Form:    form,
		initial: form,
		media:   media,
		actions: actions,
		notify:  notify,
		nav:     nav,
	}
}

func (f *CustomerFormController) Mode() FormMode { return f.mode }

// SetType switches the customer variant. Switching resets every other
// field to the new variant's defaults and discards any attached or
// already-uploaded image; there is no migration between variants. In
// edit mode the type is immutable and the call is a no-op.
func (f *CustomerFormController) SetType(t model.CustomerType) {
	if f.mode == ModeEdit || t == f.Form.Type {
		return
	}
	f.Form = CustomerForm{Type: t}
	f.pending = nil
	f.imageUploaded = false
}

// AttachFile stages a logo or photo for upload on submit.
func (f *CustomerFormController) AttachFile(name string, body io.Reader, size int64) {
	f.pending = &PendingFile{Name: name, Body: body, Size: size}
}

// Submit runs the full submission sequence. Each step's failure aborts
// the rest: validation, then the pending upload, then the action call.
// Returns whether the action succeeded.
func (f *CustomerFormController) Submit(ctx context.Context) bool {
	if f.Form.Type == model.CustomerLegal && f.Form.MediaID == "" && f.pending == nil {
		f.notify.Error(msgLegalLogoRequired)
		return false
	}
	if err := validator.Validate(ctx, f.Form); err != nil {
		f.notify.Error(err.Error())
		return false
	}

	if f.pending != nil {
		mediaID, err := f.media.Upload(ctx, "customers", f.pending.Name, f.pending.Body, f.pending.Size, nil)
		if err != nil {
			f.notify.Error("Échec de l'upload de l'image : " + err.Error())
			return false
		}
		f.Form.MediaID = mediaID
		f.pending = nil
		f.imageUploaded = true
	}

	var res Result
	if f.mode == ModeCreate {
		res = f.actions.Create(ctx, f.buildCreatePayload())
	} else {
		res = f.actions.Update(ctx, f.id, f.buildUpdatePayload())
	}
	if !res.OK {
		f.notify.Error(res.Err)
		return false
	}

	f.initial = f.Form
	f.imageUploaded = false
	if f.mode == ModeCreate {
		f.notify.Success("Client créé avec succès")
	} else {
		f.notify.Success("Client modifié avec succès")
	}
	f.nav.NavigateTo(routes.AdminCustomers)
	return true
}

func (f *CustomerFormController) buildCreatePayload() map[string]any {
	p := map[string]any{
		"type":        f.Form.Type,
		"address":     f.Form.Address,
		"email":       f.Form.Email,
		"phoneNumber": f.Form.PhoneNumber,
		"mediaId":     f.Form.MediaID,
	}
	if f.Form.Type == model.CustomerPhysical {
		p["firstName"] = f.Form.FirstName
		p["lastName"] = f.Form.LastName
	} else {
		p["name"] = f.Form.Name
		p["companyIdentificationNumber"] = f.Form.CompanyIdentificationNumber
		p["contactFirstName"] = f.Form.ContactFirstName
		p["contactLastName"] = f.Form.ContactLastName
		p["contactEmail"] = f.Form.ContactEmail
	}
	return p
}

// buildUpdatePayload carries only the fields that differ from the
// loaded snapshot, so an untouched field can never clobber server
// state. The image key is gated by imageUploaded, not by comparison:
// re-selecting the same picture still counts as a change, and no
// upload means no key at all.
func (f *CustomerFormController) buildUpdatePayload() map[string]any {
	p := map[string]any{}
	setChanged(p, "firstName", f.Form.FirstName, f.initial.FirstName)
	setChanged(p, "lastName", f.Form.LastName, f.initial.LastName)
	setChanged(p, "name", f.Form.Name, f.initial.Name)
	setChanged(p, "companyIdentificationNumber", f.Form.CompanyIdentificationNumber, f.initial.CompanyIdentificationNumber)
	setChanged(p, "contactFirstName", f.Form.ContactFirstName, f.initial.ContactFirstName)
	setChanged(p, "contactLastName", f.Form.ContactLastName, f.initial.ContactLastName)
	setChanged(p, "contactEmail", f.Form.ContactEmail, f.initial.ContactEmail)
	setChanged(p, "address", f.Form.Address, f.initial.Address)
	setChanged(p, "email", f.Form.Email, f.initial.Email)
	setChanged(p, "phoneNumber", f.Form.PhoneNumber, f.initial.PhoneNumber)
	if f.imageUploaded {
		p["mediaId"] = f.Form.MediaID
	}
	return p
}

func setChanged[T comparable](p map[string]any, key string, current, initial T) {
	if current != initial {
		p[key] = current
	}
}
