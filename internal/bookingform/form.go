package bookingform

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/m04kA/kinetic-booking/internal/domain"
	submitBooking "github.com/m04kA/kinetic-booking/internal/usecase/submit_booking"
)

// Phase состояние попытки бронирования
type Phase int

const (
	PhaseSelecting Phase = iota
	PhaseSubmitting
	PhaseConfirmed
)

func (p Phase) String() string {
	switch p {
	case PhaseSelecting:
		return "selecting"
	case PhaseSubmitting:
		return "submitting"
	case PhaseConfirmed:
		return "confirmed"
	default:
		return "unknown"
	}
}

// Field контактное поле формы
type Field string

const (
	FieldName    Field = "name"
	FieldEmail   Field = "email"
	FieldPhone   Field = "phone"
	FieldCompany Field = "company"
)

// Имена неконтактных полей в ошибках валидации
const (
	fieldDate = "date"
	fieldSlot = "slot"
)

// Config статическая конфигурация формы
type Config struct {
	Period domain.BookingPeriod
	Slots  []domain.TimeSlot
}

// Form машина состояний одной попытки бронирования:
//
//	Selecting --Submit--> Submitting --ok--> Confirmed --Reset--> Selecting
//	                           \--ошибка хранилища--> Selecting (ввод сохранен)
//
// Form принадлежит одному экземпляру виджета и не переиспользуется между попытками.
type Form struct {
	mu sync.Mutex

	period  domain.BookingPeriod
	slots   []domain.TimeSlot
	rules   AvailabilityRules
	useCase SubmitBookingUseCase
	logger  Logger

	phase        Phase
	day          int // 0 = не выбран
	slot         *domain.TimeSlot
	contact      domain.ContactDetails
	fieldErrors  map[Field]string
	submitErr    string
	confirmation *submitBooking.Response
}

// New создает форму в фазе Selecting
func New(cfg Config, rules AvailabilityRules, useCase SubmitBookingUseCase, logger Logger) *Form {
	slots := cfg.Slots
	if len(slots) == 0 {
		slots = domain.DefaultSlots
	}

	return &Form{
		period:      cfg.Period,
		slots:       slots,
		rules:       rules,
		useCase:     useCase,
		logger:      logger,
		phase:       PhaseSelecting,
		fieldErrors: make(map[Field]string),
	}
}

// SelectDate выбирает день периода и сбрасывает выбранный слот.
// Недоступные дни игнорируются; возвращает, применен ли выбор.
func (f *Form) SelectDate(day int) bool {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.phase != PhaseSelecting {
		return false
	}
	if !f.period.Contains(day) || !f.rules.IsSelectable(f.period.Year, f.period.Month, day) {
		return false
	}

	f.day = day
	f.slot = nil
	return true
}

// SelectSlot выбирает слот для выбранной даты; игнорируется, если дата не выбрана
// или слот неизвестен или занят.
func (f *Form) SelectSlot(id string) bool {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.phase != PhaseSelecting || f.day == 0 {
		return false
	}

	slot, ok := domain.FindSlot(f.slots, id)
	if !ok {
		return false
	}
	if f.rules.IsSlotBooked(f.period.Year, f.period.Month, f.day, slot) {
		return false
	}

	f.slot = &slot
	return true
}

// UpdateContactField сохраняет значение контактного поля.
// Из телефона остаются только цифры; ввод длиннее PhoneDigits цифр отклоняется
// и сохраняется прежнее значение.
func (f *Form) UpdateContactField(field Field, value string) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if err := f.checkEditable(); err != nil {
		return err
	}

	switch field {
	case FieldName:
		f.contact.Name = value
	case FieldEmail:
		f.contact.Email = value
	case FieldCompany:
		f.contact.Company = value
	case FieldPhone:
		digits := StripNonDigits(value)
		if len(digits) > domain.PhoneDigits {
			return nil
		}
		f.contact.Phone = digits
		if len(digits) != 0 && len(digits) != domain.PhoneDigits {
			f.fieldErrors[FieldPhone] = domain.MsgPhoneDigits
		} else {
			delete(f.fieldErrors, FieldPhone)
		}
	default:
		return fmt.Errorf("%w: %q", ErrUnknownField, field)
	}

	return nil
}

// CanSubmit возвращает true, если все обязательные поля заполнены и корректны
func (f *Form) CanSubmit() bool {
	f.mu.Lock()
	defer f.mu.Unlock()

	return f.phase == PhaseSelecting && f.validate() == nil
}

// Submit сохраняет бронирование через use case.
// При успехе форма переходит в Confirmed; при ошибке возвращается в Selecting с
// заполненным SubmitError и сохраненным вводом для повторной отправки.
func (f *Form) Submit(ctx context.Context) error {
	f.mu.Lock()

	if err := f.checkEditable(); err != nil {
		f.mu.Unlock()
		return err
	}

	// у пустого телефона нет ошибки при вводе, но при отправке она нужна
	if len(f.contact.Phone) != domain.PhoneDigits {
		f.fieldErrors[FieldPhone] = domain.MsgPhoneDigits
	}

	if verr := f.validate(); verr != nil {
		f.mu.Unlock()
		return verr
	}

	req := &domain.BookingRequest{
		Period:  f.period,
		Day:     f.day,
		Slot:    *f.slot,
		Contact: f.contact,
	}
	f.phase = PhaseSubmitting
	f.submitErr = ""
	f.mu.Unlock()

	resp, err := f.useCase.Execute(ctx, req)

	f.mu.Lock()
	defer f.mu.Unlock()

	if err != nil {
		f.logger.Error("BookingForm: submission failed for %s at %s: %v",
			req.FormattedDate(), req.FormattedTime(), err)
		f.phase = PhaseSelecting
		f.submitErr = MsgSubmitFailed
		return fmt.Errorf("%w: %v", ErrSubmitFailed, err)
	}

	f.phase = PhaseConfirmed
	f.confirmation = resp
	f.logger.Info("BookingForm: booking confirmed for %s at %s", req.FormattedDate(), req.FormattedTime())
	return nil
}

// Reset начинает новую попытку после подтверждения; в других фазах игнорируется
func (f *Form) Reset() bool {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.phase != PhaseConfirmed {
		return false
	}

	f.phase = PhaseSelecting
	f.day = 0
	f.slot = nil
	f.contact = domain.ContactDetails{}
	f.fieldErrors = make(map[Field]string)
	f.submitErr = ""
	f.confirmation = nil
	return true
}

func (f *Form) Phase() Phase {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.phase
}

// SelectedDate возвращает номер выбранного дня, 0 если не выбран
func (f *Form) SelectedDate() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.day
}

// SelectedSlot возвращает выбранный слот
func (f *Form) SelectedSlot() (domain.TimeSlot, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.slot == nil {
		return domain.TimeSlot{}, false
	}
	return *f.slot, true
}

func (f *Form) Contact() domain.ContactDetails {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.contact
}

// FieldErrors возвращает сообщения, показываемые при вводе
func (f *Form) FieldErrors() map[Field]string {
	f.mu.Lock()
	defer f.mu.Unlock()

	out := make(map[Field]string, len(f.fieldErrors))
	for k, v := range f.fieldErrors {
		out[k] = v
	}
	return out
}

// SubmitError возвращает блокирующее сообщение последней неудачной отправки
func (f *Form) SubmitError() string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.submitErr
}

// Confirmation возвращает сохраненное бронирование в фазе Confirmed
func (f *Form) Confirmation() *submitBooking.Response {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.confirmation
}

func (f *Form) checkEditable() error {
	switch f.phase {
	case PhaseSubmitting:
		return ErrSubmitInProgress
	case PhaseConfirmed:
		return ErrAlreadyConfirmed
	default:
		return nil
	}
}

// validate вызывается под mu
func (f *Form) validate() *ValidationError {
	verr := newValidationError()

	if f.day == 0 {
		verr.add(fieldDate, MsgDateRequired)
	}
	if f.slot == nil {
		verr.add(fieldSlot, MsgSlotRequired)
	}
	if strings.TrimSpace(f.contact.Name) == "" {
		verr.add(string(FieldName), MsgNameRequired)
	}

	email := strings.TrimSpace(f.contact.Email)
	switch {
	case email == "":
		verr.add(string(FieldEmail), MsgEmailRequired)
	case !isValidEmail(email):
		verr.add(string(FieldEmail), MsgEmailInvalid)
	}

	if strings.TrimSpace(f.contact.Company) == "" {
		verr.add(string(FieldCompany), MsgCompanyRequired)
	}
	if len(f.contact.Phone) != domain.PhoneDigits {
		verr.add(string(FieldPhone), domain.MsgPhoneDigits)
	}

	if verr.fieldsCount() > 0 {
		return verr
	}
	return nil
}
