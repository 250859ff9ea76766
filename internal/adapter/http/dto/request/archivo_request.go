package request

// ArchivoRegisterRequest records an uploaded document version's metadata.
// The bytes themselves already live in the document store.
type ArchivoRegisterRequest struct {
	TipoDoc     string `json:"tipo_doc" binding:"required"`
	FileName    string `json:"file_name" binding:"required"`
	ContentType string `json:"content_type"`
	Size        int64  `json:"size"`
}

// ArchivoReviewRequest approves or observes a document version.
type ArchivoReviewRequest struct {
	Decision string `json:"decision" binding:"required"`
	Notes    string `json:"notes"`
	Reviewer string `json:"reviewer"`
}
