package adminclient

import (
	"context"
	"io"
	"slices"
	"time"

	"planora/internal/dto"
	"planora/pkg/routes"
	"planora/pkg/validator"
)

// EventForm is the bound form state of the event create/edit pages.
type EventForm struct {
	Name         string    `json:"name" validate:"required,min=3,max=255"`
	Location     string    `json:"location"`
	Description  string    `json:"description"`
	MediaID      string    `json:"mediaId"`
	StartTime    time.Time `json:"startTime" validate:"required"`
	EndTime      time.Time `json:"endTime" validate:"required"`
	CustomerID   int64     `json:"customerId" validate:"required"`
	EventTypeID  int64     `json:"eventTypeId" validate:"required"`
	OrganizerIDs []int64   `json:"organizerIds"`
}

// EventFormFromDetails maps a detail record into form state. The type
// id comes from resolution, not from the raw record, so a label-only
// legacy record still lands on a valid select option.
func EventFormFromDetails(d *dto.EventDetails, eventTypeID int64) EventForm {
	return EventForm{
		Name:         d.Name,
		Location:     d.Location,
		Description:  d.Description,
		MediaID:      d.MediaID,
		StartTime:    d.StartTime,
		EndTime:      d.EndTime,
		CustomerID:   d.CustomerID,
		EventTypeID:  eventTypeID,
		OrganizerIDs: d.OrganizerIDs,
	}
}

// EventFormController drives the event form with the same submission
// sequence as the customer form: validate, upload any pending poster,
// build the mode-appropriate payload, call the action, route.
type EventFormController struct {
	mode    FormMode
	id      int64
	Form    EventForm
	initial EventForm

	pending       *PendingFile
	imageUploaded bool

	media   MediaUploader
	actions *EventActions
	notify  Notifier
	nav     Navigator
}

func NewEventCreateForm(media MediaUploader, actions *EventActions, notify Notifier, nav Navigator) *EventFormController {
	return &EventFormController{
		mode:    ModeCreate,
		media:   media,
		actions: actions,
		notify:  notify,
		nav:     nav,
	}
}

func NewEventEditForm(id int64, form EventForm, media MediaUploader, actions *EventActions, notify Notifier, nav Navigator) *EventFormController {
	return &EventFormController{
		mode:    ModeEdit,
		id:      id,
		Form:    form,
		initial: form,
		media:   media,
		actions: actions,
		notify:  notify,
		nav:     nav,
	}
}

func (f *EventFormController) Mode() FormMode { return f.mode }

func (f *EventFormController) AttachFile(name string, body io.Reader, size int64) {
	f.pending = &PendingFile{Name: name, Body: body, Size: size}
}

func (f *EventFormController) Submit(ctx context.Context) bool {
	if err := validator.Validate(ctx, f.Form); err != nil {
		f.notify.Error(err.Error())
		return false
	}
	if !f.Form.EndTime.After(f.Form.StartTime) {
		f.notify.Error("La date de fin doit être postérieure à la date de début")
		return false
	}

	if f.pending != nil {
		mediaID, err := f.media.Upload(ctx, "events", f.pending.Name, f.pending.Body, f.pending.Size, nil)
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
		f.notify.Success("Événement créé avec succès")
	} else {
		f.notify.Success("Événement modifié avec succès")
	}
	f.nav.NavigateTo(routes.AdminEvents)
	return true
}

func (f *EventFormController) buildCreatePayload() map[string]any {
	return map[string]any{
		"name":         f.Form.Name,
		"location":     f.Form.Location,
		"description":  f.Form.Description,
		"mediaId":      f.Form.MediaID,
		"startTime":    f.Form.StartTime,
		"endTime":      f.Form.EndTime,
		"customerId":   f.Form.CustomerID,
		"eventTypeId":  f.Form.EventTypeID,
		"organizerIds": f.Form.OrganizerIDs,
	}
}

func (f *EventFormController) buildUpdatePayload() map[string]any {
	p := map[string]any{}
	setChanged(p, "name", f.Form.Name, f.initial.Name)
	setChanged(p, "location", f.Form.Location, f.initial.Location)
	setChanged(p, "description", f.Form.Description, f.initial.Description)
	if !f.Form.StartTime.Equal(f.initial.StartTime) {
		p["startTime"] = f.Form.StartTime
	}
	if !f.Form.EndTime.Equal(f.initial.EndTime) {
		p["endTime"] = f.Form.EndTime
	}
	setChanged(p, "customerId", f.Form.CustomerID, f.initial.CustomerID)
	setChanged(p, "eventTypeId", f.Form.EventTypeID, f.initial.EventTypeID)
	if !slices.Equal(f.Form.OrganizerIDs, f.initial.OrganizerIDs) {
		p["organizerIds"] = f.Form.OrganizerIDs
	}
	if f.imageUploaded {
		p["mediaId"] = f.Form.MediaID
	}
	return p
}
