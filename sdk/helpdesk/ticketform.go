package helpdesk

import (
	"bytes"
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"strconv"
)

// StagedFile is an attachment copied into a temp file so the UI can preview
// it before submission. The temp file lives until the staged file is
// released by RemoveFile, Reset, or a successful Build consumer.
type StagedFile struct {
	Name string
	Size int64

	tempPath string
	released bool
}

// PreviewPath is the local temp file holding the staged content.
func (f *StagedFile) PreviewPath() string {
	return f.tempPath
}

func (f *StagedFile) release() {
	if f.released {
		return
	}
	f.released = true
	_ = os.Remove(f.tempPath)
}

// TicketForm stages a ticket submission: text fields plus attachments held
// as temp-file previews until Build produces the multipart body.
type TicketForm struct {
	Nome          string
	Descricao     string
	TipoChamadoID uint
	UsuarioID     uint

	files []*StagedFile
}

func NewTicketForm() *TicketForm {
	return &TicketForm{}
}

// AddFile copies the content into a temp file and stages it.
func (t *TicketForm) AddFile(name string, content io.Reader) (*StagedFile, error) {
	tmp, err := os.CreateTemp("", "helpdesk-upload-*")
	if err != nil {
		return nil, fmt.Errorf("failed to create preview file: %w", err)
	}

	size, err := io.Copy(tmp, content)
	closeErr := tmp.Close()
	if err == nil {
		err = closeErr
	}
	if err != nil {
		_ = os.Remove(tmp.Name())
		return nil, fmt.Errorf("failed to stage file %q: %w", name, err)
	}

	staged := &StagedFile{
		Name:     name,
		Size:     size,
		tempPath: tmp.Name(),
	}
	t.files = append(t.files, staged)
	return staged, nil
}

// Files returns the currently staged attachments.
func (t *TicketForm) Files() []*StagedFile {
	return t.files
}

// RemoveFile unstages the named attachment and deletes its preview. Removing
// a name that is not staged is a no-op.
func (t *TicketForm) RemoveFile(name string) {
	kept := t.files[:0]
	for _, f := range t.files {
		if f.Name == name {
			f.release()
			continue
		}
		kept = append(kept, f)
	}
	t.files = kept
}

// Reset clears all fields and releases every staged preview.
func (t *TicketForm) Reset() {
	for _, f := range t.files {
		f.release()
	}
	t.files = nil
	t.Nome = ""
	t.Descricao = ""
	t.TipoChamadoID = 0
	t.UsuarioID = 0
}

// Build emits the multipart body the backend expects: nome, descricao,
// tipoChamadoId, UsuarioId and one formFiles part per staged attachment.
// A zero UsuarioID means "open as myself" and the field is omitted; the
// backend then owns the ticket to the session user, and it ignores the
// field anyway unless the caller is an admin. With no attachments the
// formFiles field is absent entirely.
func (t *TicketForm) Build() (io.Reader, string, error) {
	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)

	if err := writer.WriteField("nome", t.Nome); err != nil {
		return nil, "", fmt.Errorf("failed to write nome: %w", err)
	}
	if err := writer.WriteField("descricao", t.Descricao); err != nil {
		return nil, "", fmt.Errorf("failed to write descricao: %w", err)
	}
	if err := writer.WriteField("tipoChamadoId", strconv.FormatUint(uint64(t.TipoChamadoID), 10)); err != nil {
		return nil, "", fmt.Errorf("failed to write tipoChamadoId: %w", err)
	}
	if t.UsuarioID != 0 {
		if err := writer.WriteField("UsuarioId", strconv.FormatUint(uint64(t.UsuarioID), 10)); err != nil {
			return nil, "", fmt.Errorf("failed to write UsuarioId: %w", err)
		}
	}

	for _, staged := range t.files {
		if staged.released {
			continue
		}

		part, err := writer.CreateFormFile("formFiles", staged.Name)
		if err != nil {
			return nil, "", fmt.Errorf("failed to create file part: %w", err)
		}

		f, err := os.Open(staged.tempPath)
		if err != nil {
			return nil, "", fmt.Errorf("failed to open staged file %q: %w", staged.Name, err)
		}
		_, err = io.Copy(part, f)
		f.Close()
		if err != nil {
			return nil, "", fmt.Errorf("failed to copy staged file %q: %w", staged.Name, err)
		}
	}

	if err := writer.Close(); err != nil {
		return nil, "", fmt.Errorf("failed to finalize form: %w", err)
	}

	return body, writer.FormDataContentType(), nil
}
