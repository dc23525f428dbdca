package ticket

import (
	"fmt"
	"net/mail"
	"strings"
	"time"
	"unicode/utf8"

	vo "ticketdesk/internal/domain/ticket/valueobjects"
)

const (
	MaxTitleLength       = 255
	MaxDescriptionLength = 4000
	MaxEmailLength       = 255
)

// Ticket is a support ticket. Category and priority are always derived from
// the title and description and never set directly.
type Ticket struct {
	id            uint
	title         string
	description   string
	reporterEmail string
	category      vo.Category
	priority      vo.Priority
	status        vo.TicketStatus
	createdAt     time.Time
	updatedAt     time.Time
	resolvedAt    *time.Time
}

func NewTicket(title, description, reporterEmail string) (*Ticket, error) {
	if err := validateContent(title, description); err != nil {
		return nil, err
	}
	if err := validateEmail(reporterEmail); err != nil {
		return nil, err
	}

	c := Classify(title, description)
	now := time.Now().UTC()

	return &Ticket{
		title:         title,
		description:   description,
		reporterEmail: reporterEmail,
		category:      c.Category,
		priority:      c.Priority,
		status:        vo.StatusOpen,
		createdAt:     now,
		updatedAt:     now,
	}, nil
}

func ReconstructTicket(
	id uint,
	title string,
	description string,
	reporterEmail string,
	category vo.Category,
	priority vo.Priority,
	status vo.TicketStatus,
	createdAt, updatedAt time.Time,
	resolvedAt *time.Time,
) (*Ticket, error) {
	if id == 0 {
		return nil, fmt.Errorf("ticket ID cannot be zero")
	}
	if !category.IsValid() {
		return nil, fmt.Errorf("invalid category: %s", category)
	}
	if !priority.IsValid() {
		return nil, fmt.Errorf("invalid priority: %s", priority)
	}
	if !status.IsValid() {
		return nil, fmt.Errorf("invalid status: %s", status)
	}

	return &Ticket{
		id:            id,
		title:         title,
		description:   description,
		reporterEmail: reporterEmail,
		category:      category,
		priority:      priority,
		status:        status,
		createdAt:     createdAt,
		updatedAt:     updatedAt,
		resolvedAt:    resolvedAt,
	}, nil
}

func (t *Ticket) ID() uint {
	return t.id
}

func (t *Ticket) Title() string {
	return t.title
}

func (t *Ticket) Description() string {
	return t.description
}

func (t *Ticket) ReporterEmail() string {
	return t.reporterEmail
}

func (t *Ticket) Category() vo.Category {
	return t.category
}

func (t *Ticket) Priority() vo.Priority {
	return t.priority
}

func (t *Ticket) Status() vo.TicketStatus {
	return t.status
}

func (t *Ticket) CreatedAt() time.Time {
	return t.createdAt
}

func (t *Ticket) UpdatedAt() time.Time {
	return t.updatedAt
}

func (t *Ticket) ResolvedAt() *time.Time {
	return t.resolvedAt
}

func (t *Ticket) SetID(id uint) error {
	if t.id != 0 {
		return fmt.Errorf("ticket ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("ticket ID cannot be zero")
	}
	t.id = id
	return nil
}

// SetTimestamps is used by repositories to copy store-assigned times back.
func (t *Ticket) SetTimestamps(createdAt, updatedAt time.Time) {
	t.createdAt = createdAt
	t.updatedAt = updatedAt
}

// UpdateContent replaces title and/or description. Nil leaves the field
// unchanged. The ticket is re-classified whenever the text changes.
func (t *Ticket) UpdateContent(title, description *string) (bool, error) {
	newTitle, newDesc := t.title, t.description
	if title != nil {
		newTitle = *title
	}
	if description != nil {
		newDesc = *description
	}
	if newTitle == t.title && newDesc == t.description {
		return false, nil
	}
	if err := validateContent(newTitle, newDesc); err != nil {
		return false, err
	}

	c := Classify(newTitle, newDesc)
	t.title = newTitle
	t.description = newDesc
	t.category = c.Category
	t.priority = c.Priority
	t.touch()
	return true, nil
}

func (t *Ticket) SetReporterEmail(email string) error {
	if err := validateEmail(email); err != nil {
		return err
	}
	if email == t.reporterEmail {
		return nil
	}
	t.reporterEmail = email
	t.touch()
	return nil
}

// ChangeStatus moves the ticket between open and resolved. Resolving stamps
// resolvedAt; reopening clears it.
func (t *Ticket) ChangeStatus(status vo.TicketStatus) error {
	if !status.IsValid() {
		return fmt.Errorf("invalid status: %s", status)
	}
	if status == t.status {
		return nil
	}

	t.status = status
	if status.IsResolved() {
		now := time.Now().UTC()
		t.resolvedAt = &now
	} else {
		t.resolvedAt = nil
	}
	t.touch()
	return nil
}

// Resolve is a no-op on an already resolved ticket.
func (t *Ticket) Resolve() error {
	return t.ChangeStatus(vo.StatusResolved)
}

func (t *Ticket) touch() {
	t.updatedAt = time.Now().UTC()
}

// Field implements query.Record.
func (t *Ticket) Field(name string) (any, bool) {
	switch name {
	case FieldID:
		return t.id, true
	case FieldTitle:
		return t.title, true
	case FieldDescription:
		return t.description, true
	case FieldReporterEmail:
		return t.reporterEmail, true
	case FieldCategory:
		return t.category.String(), true
	case FieldPriority:
		return t.priority.String(), true
	case FieldPriorityRank:
		return t.priority.Rank(), true
	case FieldStatus:
		return t.status.String(), true
	case FieldCreatedAt:
		return t.createdAt, true
	case FieldUpdatedAt:
		return t.updatedAt, true
	case FieldResolvedAt:
		if t.resolvedAt == nil {
			return nil, false
		}
		return *t.resolvedAt, true
	}
	return nil, false
}

func validateContent(title, description string) error {
	if strings.TrimSpace(title) == "" {
		return fmt.Errorf("title is required")
	}
	if utf8.RuneCountInString(title) > MaxTitleLength {
		return fmt.Errorf("title exceeds maximum length of %d characters", MaxTitleLength)
	}
	if utf8.RuneCountInString(description) > MaxDescriptionLength {
		return fmt.Errorf("description exceeds maximum length of %d characters", MaxDescriptionLength)
	}
	return nil
}

func validateEmail(email string) error {
	if email == "" {
		return nil
	}
	if len(email) > MaxEmailLength {
		return fmt.Errorf("reporter email exceeds maximum length of %d characters", MaxEmailLength)
	}
	addr, err := mail.ParseAddress(email)
	if err != nil || addr.Address != email {
		return fmt.Errorf("invalid reporter email: %s", email)
	}
	return nil
}
