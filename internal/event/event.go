// Package event defines the activity events the capture service emits to the
// companion GUI, and the queue they flow through on the way out.
//
// Every event is one flat JSON record with a "type" discriminator. The field
// names are the GUI's wire contract and must not change.
package event

import (
	"time"

	"github.com/google/uuid"
)

// Type discriminates the kind of an activity event.
type Type string

const (
	TypeClipboardCopy    Type = "clipboard_copy"
	TypeCrossAppPaste    Type = "cross_app_paste"
	TypeExcelSelection   Type = "excel_selection"
	TypeFileCreated      Type = "file_created"
	TypeFileDeleted      Type = "file_deleted"
	TypeFileModified     Type = "file_modified"
	TypeFileMoved        Type = "file_moved"
	TypeServiceConnected Type = "python_service_connected"
)

// Event is anything the sink will accept and the bridge will forward.
type Event interface {
	Kind() Type
}

// Header carries the fields common to every activity event.
type Header struct {
	Type      Type      `json:"type"`
	ID        string    `json:"id"`
	Timestamp time.Time `json:"timestamp"`
}

// NewHeader stamps a header with a fresh ID and the given wall-clock time.
func NewHeader(t Type, now time.Time) Header {
	return Header{Type: t, ID: uuid.NewString(), Timestamp: now}
}

func (h Header) Kind() Type { return h.Type }

// ClipboardCopy is emitted for every new clipboard capture.
type ClipboardCopy struct {
	Header
	Content        string          `json:"content"`
	ContentPreview string          `json:"content_preview"`
	DataType       ContentType     `json:"data_type"`
	Source         Context         `json:"source"`
	Length         int             `json:"length"`
	Lines          int             `json:"lines"`
	ExcelCells     *SheetSelection `json:"excel_cells,omitempty"`
}

// CrossAppPaste is the unified paste event correlating a copy with its
// destination. Source is nil when no ledger entry was available.
type CrossAppPaste struct {
	Header
	PasteTimestamp string   `json:"paste_timestamp,omitempty"`
	Source         *Context `json:"source,omitempty"`
	Destination    *Context `json:"destination,omitempty"`
	DataFlow       DataFlow `json:"data_flow"`
	Description    string   `json:"description"`
}

// DataFlow describes the inferred source→destination mapping of a paste.
// Zero value means the context was too incomplete to infer anything.
type DataFlow struct {
	From           string         `json:"from,omitempty"`
	To             string         `json:"to,omitempty"`
	Transformation Transformation `json:"transformation,omitempty"`
}

// ExcelSelection reports a change of the live spreadsheet selection.
type ExcelSelection struct {
	Header
	Address      string `json:"address"`
	Sheet        string `json:"sheet"`
	Workbook     string `json:"workbook"`
	WorkbookPath string `json:"workbook_path,omitempty"`
	Value        string `json:"value,omitempty"`
}

// FileContext flags where on disk a file event happened.
type FileContext struct {
	IsDownload   bool   `json:"is_download"`
	IsDesktop    bool   `json:"is_desktop"`
	IsDocuments  bool   `json:"is_documents"`
	IsCloud      bool   `json:"is_cloud"`
	ParentFolder string `json:"parent_folder"`
}

// FileEvent covers file_created, file_deleted, file_modified and file_moved.
type FileEvent struct {
	Header
	Path       string       `json:"path,omitempty"`
	SourcePath string       `json:"source_path,omitempty"` // file_moved only
	DestPath   string       `json:"dest_path,omitempty"`   // file_moved only
	Filename   string       `json:"filename"`
	Extension  string       `json:"extension"`
	Size       int64        `json:"size,omitempty"`
	Context    *FileContext `json:"context,omitempty"`
}

// ServiceConnected is the handshake record sent once per bridge connection.
// The type name is kept from the legacy service for GUI compatibility.
type ServiceConnected struct {
	Header
	Platform     string   `json:"platform"`
	Capabilities []string `json:"capabilities"`
}
