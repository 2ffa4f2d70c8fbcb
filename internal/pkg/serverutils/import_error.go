package serverutils

import "fmt"

// ImportErrorKind distinguishes the failure stages of a bulk note import.
type ImportErrorKind string

const (
	ImportErrorParse           ImportErrorKind = "parse"
	ImportErrorShape           ImportErrorKind = "shape"
	ImportErrorEmptyBatch      ImportErrorKind = "empty_batch"
	ImportErrorField           ImportErrorKind = "field_validation"
	ImportErrorUnknownCategory ImportErrorKind = "unknown_category"
	ImportErrorPersistence     ImportErrorKind = "persistence"
)

const ImportRequiredFieldsTip = "each note needs a non-empty title, a non-empty content and an existing numeric category_id; tags, when present, must be an array of strings"

// ImportError carries a user-facing message plus a remediation tip. The error
// middleware turns every ImportError into an HTTP 400 response.
type ImportError struct {
	Kind           ImportErrorKind
	Message        string
	Tip            string
	ExpectedFormat any
}

func (e *ImportError) Error() string {
	return e.Message
}

func NewImportParseError() *ImportError {
	return &ImportError{
		Kind:    ImportErrorParse,
		Message: "the uploaded file is not valid JSON, please fix it and try again",
		Tip:     "the file must contain a JSON array of note objects",
	}
}

func NewImportShapeError() *ImportError {
	return &ImportError{
		Kind:    ImportErrorShape,
		Message: "the uploaded document must be a JSON array of notes",
		Tip:     ImportRequiredFieldsTip,
		ExpectedFormat: map[string]any{
			"format": "array",
			"example": []map[string]any{
				{
					"title":       "My first note (required)",
					"content":     "Note body, plain text or markdown (required)",
					"category_id": 1,
					"tags":        []string{"personal", "todo"},
				},
			},
		},
	}
}

func NewImportEmptyBatchError() *ImportError {
	return &ImportError{
		Kind:    ImportErrorEmptyBatch,
		Message: "the uploaded document contains no notes",
		Tip:     "add at least one note to the array before importing",
	}
}

func NewImportFieldError(position int, problems string) *ImportError {
	return &ImportError{
		Kind:    ImportErrorField,
		Message: fmt.Sprintf("note %d is invalid: %s", position, problems),
		Tip:     ImportRequiredFieldsTip,
	}
}

func NewImportUnknownCategoryError(position int, categoryId int64) *ImportError {
	return &ImportError{
		Kind:    ImportErrorUnknownCategory,
		Message: fmt.Sprintf("note %d references unknown category %d", position, categoryId),
		Tip:     "create the category first or point the note at an existing one",
	}
}

func NewImportPersistenceError(err error) *ImportError {
	return &ImportError{
		Kind:    ImportErrorPersistence,
		Message: fmt.Sprintf("failed to import notes, nothing was saved: %v", err),
		Tip:     ImportRequiredFieldsTip,
	}
}
