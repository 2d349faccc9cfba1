package types

import "github.com/go-playground/validator/v10"

// ScanRequest is the inbound payload for scoring a single document.
type ScanRequest struct {
	Document
	Profile RoleProfile `json:"profile"`
}

// CompareRequest is the inbound payload for comparing two documents.
// Preferences are shared by both sides.
type CompareRequest struct {
	A           Document    `json:"a"`
	B           Document    `json:"b"`
	Preferences RoleProfile `json:"preferences"`
}

// MaxBatchDocuments caps the documents accepted by one batch scan request.
const MaxBatchDocuments = 100

// BatchScanRequest is the inbound payload for scoring several documents under
// one profile.
type BatchScanRequest struct {
	Documents []Document  `json:"documents" validate:"required,min=1,max=100,dive"`
	Profile   RoleProfile `json:"profile"`
}

// BatchScanResponse carries one report per input document, in input order.
type BatchScanResponse struct {
	Reports []ScanReport `json:"reports"`
}

// Validate validates the ScanRequest using the validator.
func (r *ScanRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}

// Validate validates the CompareRequest using the validator.
func (r *CompareRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}

// Validate validates the BatchScanRequest using the validator.
func (r *BatchScanRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}
