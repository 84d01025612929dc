package ticket

import (
	"fmt"
	"time"
)

// Attachment is a stored file belonging to a ticket. StoredName is the
// server-generated unique filename; Link is the public URL path it is
// served from.
type Attachment struct {
	id         uint
	ticketID   uint
	fileName   string
	storedName string
	link       string
	size       int64
	createdAt  time.Time
}

func NewAttachment(fileName, storedName, link string, size int64) (*Attachment, error) {
	if fileName == "" {
		return nil, fmt.Errorf("file name is required")
	}
	if storedName == "" {
		return nil, fmt.Errorf("stored name is required")
	}
	if link == "" {
		return nil, fmt.Errorf("link is required")
	}
	if size < 0 {
		return nil, fmt.Errorf("size cannot be negative")
	}

	return &Attachment{
		fileName:   fileName,
		storedName: storedName,
		link:       link,
		size:       size,
		createdAt:  time.Now(),
	}, nil
}

func ReconstructAttachment(id, ticketID uint, fileName, storedName, link string, size int64, createdAt time.Time) (*Attachment, error) {
	if id == 0 {
		return nil, fmt.Errorf("attachment ID cannot be zero")
	}
	return &Attachment{
		id:         id,
		ticketID:   ticketID,
		fileName:   fileName,
		storedName: storedName,
		link:       link,
		size:       size,
		createdAt:  createdAt,
	}, nil
}

func (a *Attachment) ID() uint {
	return a.id
}

func (a *Attachment) TicketID() uint {
	return a.ticketID
}

func (a *Attachment) FileName() string {
	return a.fileName
}

func (a *Attachment) StoredName() string {
	return a.storedName
}

func (a *Attachment) Link() string {
	return a.link
}

func (a *Attachment) Size() int64 {
	return a.size
}

func (a *Attachment) CreatedAt() time.Time {
	return a.createdAt
}

func (a *Attachment) SetID(id uint) error {
	if a.id != 0 {
		return fmt.Errorf("attachment ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("attachment ID cannot be zero")
	}
	a.id = id
	return nil
}

func (a *Attachment) BindTicket(ticketID uint) {
	a.ticketID = ticketID
}
